package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Parser.DefaultTextEncoding != "windows-1252" {
		t.Errorf("DefaultTextEncoding = %q, want windows-1252", cfg.Parser.DefaultTextEncoding)
	}
	if cfg.Parser.CheckStyleAttributes {
		t.Error("CheckStyleAttributes should be off by default")
	}
	if cfg.Parser.MaxChildren != 50 {
		t.Errorf("MaxChildren = %d, want 50", cfg.Parser.MaxChildren)
	}
	if !cfg.Parser.NewDocument {
		t.Error("NewDocument should be on by default")
	}
	if cfg.Output.Format != OutputFormatXml {
		t.Errorf("Format = %s, want xml", cfg.Output.Format)
	}
	if len(cfg.Output.Extensions) != 1 || cfg.Output.Extensions[0] != ".rtf" {
		t.Errorf("Extensions = %v, want [.rtf]", cfg.Output.Extensions)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("file level = %q, want none", cfg.Logging.FileLogger.Level)
	}
	if !strings.HasSuffix(cfg.Logging.FileLogger.Destination, "rtfc.log") {
		t.Errorf("file destination = %q, want expanded rtfc.log path", cfg.Logging.FileLogger.Destination)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
parser:
  default_text_encoding: windows-1251
  check_style_attributes: true
  max_children: 10
output:
  format: tree
  transliterate_names: true
logging:
  console:
    level: debug
  file:
    level: debug
    destination: ` + filepath.Join(tmpDir, "logs", "test.log") + `
    mode: append
reporting:
  destination: ` + filepath.Join(tmpDir, "report.zip") + `
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Parser.DefaultTextEncoding != "windows-1251" {
		t.Errorf("DefaultTextEncoding = %q, want windows-1251", cfg.Parser.DefaultTextEncoding)
	}
	if !cfg.Parser.CheckStyleAttributes {
		t.Error("Expected CheckStyleAttributes to be true")
	}
	if cfg.Parser.MaxChildren != 10 {
		t.Errorf("MaxChildren = %d, want 10", cfg.Parser.MaxChildren)
	}
	// not in file, kept from template
	if !cfg.Parser.NewDocument {
		t.Error("Expected NewDocument default to survive merge")
	}
	if cfg.Output.Format != OutputFormatTree {
		t.Errorf("Format = %s, want tree", cfg.Output.Format)
	}
	if !cfg.Output.TransliterateNames {
		t.Error("Expected TransliterateNames to be true")
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("file mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
	// sanitizer makes sure log directory exists
	if _, err := os.Stat(filepath.Join(tmpDir, "logs")); err != nil {
		t.Errorf("log directory was not created: %v", err)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\nparser:\n  max_children: 5\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"unknown nested field", "version: 1\nparser:\n  fan_out: 3\n"},
		{"wrong version", "version: 2\n"},
		{"max children too small", "version: 1\nparser:\n  max_children: 1\n"},
		{"bad format", "version: 1\noutput:\n  format: epub\n"},
		{"bad console level", "version: 1\nlogging:\n  console:\n    level: verbose\n"},
		{"empty encoding", "version: 1\nparser:\n  default_text_encoding: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}
			if _, err := LoadConfiguration(configPath); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Prepare() returned empty data")
	}
	if strings.Contains(string(data), "{{") {
		t.Errorf("Prepare() left template expressions unexpanded:\n%s", data)
	}
	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Output.Format = OutputFormatText

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "format: text") {
		t.Errorf("Dump() does not contain format as text:\n%s", data)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Output.Format != OutputFormatText {
		t.Errorf("Format after dump/load = %s, want text", cfg2.Output.Format)
	}
	if cfg2.Parser.MaxChildren != cfg.Parser.MaxChildren {
		t.Errorf("MaxChildren after dump/load = %d, want %d", cfg2.Parser.MaxChildren, cfg.Parser.MaxChildren)
	}
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	_, err := unmarshalConfig([]byte("version: 99\n"), &Config{}, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error, got bare error: %v", err)
	}
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		name string
		fmt  OutputFormat
		ext  string
	}{
		{"xml", OutputFormatXml, ".xml"},
		{"text", OutputFormatText, ".txt"},
		{"tree", OutputFormatTree, ".tree.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fmt.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.fmt.Ext(); got != tt.ext {
				t.Errorf("Ext() = %q, want %q", got, tt.ext)
			}
			parsed, err := ParseOutputFormat(strings.ToUpper(tt.name))
			if err != nil {
				t.Fatalf("ParseOutputFormat() error = %v", err)
			}
			if parsed != tt.fmt {
				t.Errorf("ParseOutputFormat() = %v, want %v", parsed, tt.fmt)
			}
		})
	}

	if _, err := ParseOutputFormat("epub"); !errors.Is(err, ErrInvalidOutputFormat) {
		t.Errorf("ParseOutputFormat(epub) error = %v, want ErrInvalidOutputFormat", err)
	}
	if OutputFormat(99).IsValid() {
		t.Error("OutputFormat(99) should not be valid")
	}
	if got := len(OutputFormatNames()); got != 3 {
		t.Errorf("OutputFormatNames() has %d names, want 3", got)
	}
}

func TestOutputFormat_Ext_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Ext() should panic for invalid format")
		}
	}()
	OutputFormat(99).Ext()
}

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report", "report"},
		{"..hidden", "hidden"},
		{"a" + string(os.PathSeparator) + "b", "ab"},
		{"tab\there", "tabhere"},
		{"...", "_bad_file_name_"},
		{"", "_bad_file_name_"},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.want {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
