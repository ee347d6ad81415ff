package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/odpi/mermaidgraph/pkg/config"
	"github.com/odpi/mermaidgraph/pkg/pipeline"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		verbose bool
		want    log.Level
	}{
		{"configured", "warn", false, log.WarnLevel},
		{"verbose wins", "error", true, log.DebugLevel},
		{"empty", "", false, log.InfoLevel},
		{"unknown", "loud", false, log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := logLevel(tt.level, tt.verbose); got != tt.want {
				t.Errorf("logLevel(%q, %v) = %v, want %v", tt.level, tt.verbose, got, tt.want)
			}
		})
	}
}

func TestApplyLogConfigFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)
	applyLogConfig(logger, config.Log{Level: "warn", Format: "text"}, false)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestApplyLogConfigJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	applyLogConfig(logger, config.Log{Level: "info", Format: "json"}, false)

	logger.Info("ready", "kind", "lineage")

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if line["msg"] != "ready" || line["kind"] != "lineage" {
		t.Errorf("line = %v", line)
	}
}

func TestProgressDoneReportsCounts(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger, "lineage")
	prog.done(&pipeline.Result{
		Title:     "Orders",
		Stats:     pipeline.Stats{NodeCount: 7, EdgeCount: 9},
		CacheInfo: pipeline.CacheInfo{DiagramHit: true},
	})

	out := buf.String()
	for _, want := range []string{"rendered Orders", "kind=lineage", "nodes=7", "edges=9", "cached=true", "elapsed="} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestProgressEmpty(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel), "glossary").empty()

	out := buf.String()
	if !strings.Contains(out, "nothing to draw") || !strings.Contains(out, "kind=glossary") {
		t.Errorf("output = %q", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext() without a logger should return log.Default()")
	}

	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel).WithPrefix("watch")
	ctx := withLogger(context.Background(), logger)
	loggerFromContext(ctx).Info("changed")

	if !strings.Contains(buf.String(), "watch") {
		t.Errorf("output = %q, want the command prefix", buf.String())
	}
}
