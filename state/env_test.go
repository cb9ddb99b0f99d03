package state

import (
	"bytes"
	"context"
	"log"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"rtfc/config"
)

func TestEnvFromContext(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	if env.start.IsZero() {
		t.Error("start time is not set")
	}
	if env.DefaultEncoding != charmap.Windows1252 {
		t.Errorf("DefaultEncoding = %v, want windows-1252", env.DefaultEncoding)
	}
	if env.Uptime() < 0 {
		t.Errorf("Uptime() = %v", env.Uptime())
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for context without environment")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_StdLog(t *testing.T) {
	var buf bytes.Buffer
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.AddSync(&buf), zap.DebugLevel)
	env := &LocalEnv{Log: zap.New(core)}

	env.RedirectStdLog()
	// second call keeps the first redirection
	env.RedirectStdLog()
	log.Print("from standard logger")
	env.RestoreStdLog()
	if env.restoreLog != nil {
		t.Error("redirection was not undone")
	}
	if !bytes.Contains(buf.Bytes(), []byte("from standard logger")) {
		t.Errorf("standard log output was not redirected:\n%s", buf.String())
	}

	// no logger - nothing to do
	env = &LocalEnv{}
	env.RedirectStdLog()
	if env.restoreLog != nil {
		t.Error("redirected without logger")
	}
	env.RestoreStdLog()
}

func TestResolveEncoding(t *testing.T) {
	tests := []struct {
		name    string
		want    encoding.Encoding
		wantErr bool
	}{
		{"windows-1252", charmap.Windows1252, false},
		{"Windows-1251", charmap.Windows1251, false},
		{"koi8-r", charmap.KOI8R, false},
		{"no-such-encoding", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveEncoding(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveEncoding() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveEncoding() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocalEnv_Prepare(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	env.Log = zaptest.NewLogger(t)

	// nothing loaded yet
	if err := env.Prepare(); err != nil {
		t.Fatalf("Prepare() without configuration error = %v", err)
	}
	if opts := env.ParserOptions(); opts.DefaultEncoding != charmap.Windows1252 || opts.MaxChildren != 0 {
		t.Errorf("ParserOptions() without configuration = %+v", opts)
	}

	env.Cfg = &config.Config{
		Version: 1,
		Parser: config.ParserConfig{
			DefaultTextEncoding:  "windows-1251",
			CheckStyleAttributes: true,
			MaxChildren:          7,
		},
		Output: config.OutputConfig{Format: config.OutputFormatText, Overwrite: true},
	}
	if err := env.Prepare(); err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if env.DefaultEncoding != charmap.Windows1251 {
		t.Errorf("DefaultEncoding = %v, want windows-1251", env.DefaultEncoding)
	}
	if env.Format != config.OutputFormatText || !env.Overwrite {
		t.Errorf("output settings not applied: format %s, overwrite %v", env.Format, env.Overwrite)
	}

	opts := env.ParserOptions()
	if opts.DefaultEncoding != charmap.Windows1251 || !opts.CheckStyleAttr || opts.MaxChildren != 7 || opts.NewDocument {
		t.Errorf("ParserOptions() = %+v", opts)
	}

	env.Cfg.Parser.DefaultTextEncoding = "bogus"
	if err := env.Prepare(); err == nil {
		t.Error("expected error for unknown encoding")
	}
}
