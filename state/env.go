// Package state defines shared program state.
package state

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"cssync/config"
	"cssync/css"
	"cssync/profile"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// used by read and write subcommands
	CodePage     encoding.Encoding
	InPlace      bool
	DefaultStyle []byte

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// Engine returns synchronization engine set up according to loaded
// configuration, or with defaults when there is none.
func (e *LocalEnv) Engine() *profile.Engine {
	if e.Cfg == nil {
		return profile.NewEngine(e.Log)
	}
	ec := e.Cfg.Engine
	return profile.NewEngine(e.Log,
		profile.WithRootSelector(ec.RootSelector),
		profile.WithConsolidation(ec.Consolidate...),
		profile.WithFormatter(css.Printer{Indent: strings.Repeat(" ", ec.Indent)}),
	)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
