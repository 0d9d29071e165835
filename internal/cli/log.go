// Package cli implements the releaseorder command-line interface.
//
// This package provides commands for ordering release manifests, drawing
// their reference graphs, generating release notes and serving the ordering
// API over HTTP. The CLI is built using cobra and logs through the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - order: Print items in dependency order, or every reference cycle
//   - graph: Write the reference graph as DOT or SVG
//   - notes: Generate asciidoc release notes from an issue list
//   - serve: Serve the ordering API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger. Timestamps read like "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command. Fields given to newProgress appear on the
// completion line along with the elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger, keyvals ...any) *progress {
	return &progress{logger: l.With(keyvals...), start: time.Now()}
}

// done logs msg at info level with a "took" field rounded to milliseconds,
// e.g. `ordered manifest items=42 took=1ms`.
func (p *progress) done(msg string, keyvals ...any) {
	took := time.Since(p.start).Round(time.Millisecond)
	p.logger.Info(msg, append(keyvals, "took", took)...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for the command handlers.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() if there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
