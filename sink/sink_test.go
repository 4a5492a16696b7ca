package sink

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// newBufLogger builds a debug-level text logger writing into buf.
func newBufLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestSlog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := Slog(newBufLogger(&buf))

	s.Debug("futures_log", "Polling future 'immediate future'")

	out := buf.String()
	if !strings.Contains(out, "Polling future 'immediate future'") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "target=futures_log") {
		t.Errorf("output missing target attribute: %q", out)
	}
	if !strings.Contains(out, "level=DEBUG") {
		t.Errorf("output not at debug severity: %q", out)
	}
}

func TestDefaultFollowsProcessLogger(t *testing.T) {
	// Swaps the process logger; must not run in parallel.
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(newBufLogger(&buf))
	defer slog.SetDefault(prev)

	Default().Debug("futures_log", "hello")

	if out := buf.String(); !strings.Contains(out, "hello") || !strings.Contains(out, "target=futures_log") {
		t.Fatalf("default sink did not reach the process logger: %q", out)
	}
}

func TestDefaultFilteredWhenUnconfigured(t *testing.T) {
	// The stock slog default logs at info; debug lines are dropped rather
	// than failing.
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	Default().Debug("futures_log", "invisible")

	if out := buf.String(); out != "" {
		t.Fatalf("expected debug line to be filtered, got %q", out)
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	// Must simply not panic.
	Discard.Debug("futures_log", "dropped")
}
