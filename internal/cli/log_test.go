package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		log   func(*log.Logger)
		want  bool
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("loaded manifest") }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("loaded manifest") }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("loaded manifest") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("wrote output = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgress_Fields(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel), "manifest", "release.yaml")
	prog.done("ordered manifest", "items", 3)

	out := buf.String()
	for _, want := range []string{"ordered manifest", "manifest=release.yaml", "items=3", "took="} {
		if !strings.Contains(out, want) {
			t.Errorf("done() output = %q, want %q", out, want)
		}
	}
}

func TestOrderCommand_LogsCompletion(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		want     []string
	}{
		{"ordered", orderedManifest, []string{"ordered manifest", "items=3", "run=", "took="}},
		{"cyclic", cyclicManifest, []string{"found reference cycles", "cycles=1", "took="}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "release.yaml", tt.manifest)

			var logs bytes.Buffer
			root := New(&logs, log.InfoLevel).RootCommand()
			root.SetOut(io.Discard)
			root.SetErr(io.Discard)
			root.SetArgs([]string{"order", path})
			_ = root.Execute()

			for _, want := range tt.want {
				if !strings.Contains(logs.String(), want) {
					t.Errorf("log = %q, want %q", logs.String(), want)
				}
			}
		})
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext() without a logger should return log.Default()")
	}

	l := newLogger(io.Discard, log.InfoLevel)
	if got := loggerFromContext(withLogger(context.Background(), l)); got != l {
		t.Errorf("loggerFromContext() = %p, want %p", got, l)
	}
}
