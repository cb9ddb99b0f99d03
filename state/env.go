// Package state holds program state of a single run, shared through context.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"rtfc/config"
)

type envKey struct{}

// LocalEnv is the program state of a single run.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// parse command settings: configured values possibly overridden by flags
	Format          config.OutputFormat
	DefaultEncoding encoding.Encoding
	NoDirs          bool
	Overwrite       bool

	start      time.Time
	restoreLog func()
}

// ContextWithEnv returns ctx carrying fresh environment.
func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

// EnvFromContext panics when ctx was not prepared with ContextWithEnv.
func EnvFromContext(ctx context.Context) *LocalEnv {
	env, ok := ctx.Value(envKey{}).(*LocalEnv)
	if !ok {
		panic("state: no environment in context")
	}
	return env
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// RedirectStdLog sends output of the standard library logger to the
// environment logger until RestoreStdLog is called.
func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil || e.restoreLog != nil {
		return
	}
	e.restoreLog = zap.RedirectStdLog(e.Log.Named("stdlog"))
}

// RestoreStdLog flushes the logger and undoes RedirectStdLog.
func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreLog != nil {
		e.restoreLog()
		e.restoreLog = nil
	}
}
