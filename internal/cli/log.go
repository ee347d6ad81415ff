// Package cli implements the mermaidgraph command-line interface.
//
// This package provides commands for rendering catalog aggregates as Mermaid
// diagrams, watching aggregate files, serving the HTTP API and managing the
// diagram cache. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Draw an aggregate document as Mermaid (and Graphviz previews)
//   - watch: Re-render documents whenever they change
//   - serve: Expose the pipeline over HTTP
//   - kinds: List the diagram kinds
//   - cache: Manage the diagram cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging; otherwise the
// [log] level from the config file applies. The [log] format picks text,
// JSON or logfmt output. Each command gets a logger prefixed with its name
// through context.Context.
package cli

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/odpi/mermaidgraph/pkg/config"
	"github.com/odpi/mermaidgraph/pkg/pipeline"
)

// newLogger returns the text logger used until the config file is read.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// applyLogConfig reconfigures l from the [log] section. --verbose wins
// over the configured level.
func applyLogConfig(l *log.Logger, cfg config.Log, verbose bool) {
	l.SetLevel(logLevel(cfg.Level, verbose))
	l.SetFormatter(logFormatter(cfg.Format))
}

// logLevel parses a [log] level name. Unknown or empty names mean info.
func logLevel(name string, verbose bool) log.Level {
	if verbose {
		return log.DebugLevel
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func logFormatter(name string) log.Formatter {
	switch strings.ToLower(name) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// progress times one render of a diagram kind.
type progress struct {
	logger *log.Logger
	kind   string
	start  time.Time
}

func newProgress(l *log.Logger, kind string) *progress {
	return &progress{logger: l, kind: kind, start: time.Now()}
}

// done logs the finished diagram with its size, whether the Mermaid text
// came from the cache and the elapsed time.
func (p *progress) done(result *pipeline.Result) {
	p.logger.Info("rendered "+result.Title,
		"kind", p.kind,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"cached", result.CacheInfo.DiagramHit,
		"elapsed", time.Since(p.start).Round(time.Millisecond),
	)
}

// empty logs a render that produced nothing to draw.
func (p *progress) empty() {
	p.logger.Warn("nothing to draw", "kind", p.kind)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for commands that only receive a context.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
