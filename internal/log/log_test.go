package log

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	t.Setenv("GO_ENV", "")
	var buf bytes.Buffer
	l := New(&buf, "warn")
	l.Info("hidden")
	l.Warn("shown", "run", "portfolio_1")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record should be filtered")
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "run=portfolio_1") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestLConcurrentFirstUse(t *testing.T) {
	var wg sync.WaitGroup
	loggers := make([]*slog.Logger, 8)
	for i := range loggers {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			loggers[i] = L()
		}()
	}
	wg.Wait()
	for _, l := range loggers {
		if l == nil || l != loggers[0] {
			t.Fatal("L should return one shared logger")
		}
	}
}

func TestNewProductionJSON(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	var buf bytes.Buffer
	New(&buf, "info").Info("started", "addr", ":8080")
	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"addr":":8080"`) {
		t.Errorf("expected JSON record, got %q", buf.String())
	}
}
