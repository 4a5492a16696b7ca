package sink

import "log/slog"

// Sink is the narrow logging surface poll instrumentation writes to: a
// debug-severity message routed under a target tag. Implementations decide
// what the target maps to (an attribute, a namespace, a sub-logger). Sinks
// never report errors back; a misconfigured or absent backend drops lines
// per that backend's own rules.
type Sink interface {
	Debug(target, message string)
}

// Default returns the process-wide default sink: debug messages forwarded
// to slog.Default() with the target attached as a "target" attribute. The
// slog default logger is resolved on every write, so reconfiguring slog
// later is picked up without rebuilding sinks.
func Default() Sink {
	return slogSink{}
}

// Slog adapts an explicit slog logger into a Sink. A nil logger falls back
// to the process default at write time.
func Slog(l *slog.Logger) Sink {
	return slogSink{logger: l}
}

type slogSink struct {
	logger *slog.Logger
}

func (s slogSink) Debug(target, message string) {
	l := s.logger
	if l == nil {
		l = slog.Default()
	}
	l.Debug(message, "target", target)
}

// Discard is a Sink that drops everything.
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) Debug(string, string) {}
