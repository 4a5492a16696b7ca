package zapsink

import (
	"go.uber.org/zap"

	"github.com/futurelog-project/sdk/sink"
)

// Config controls construction of the zap-backed sink.
type Config struct {
	// Logger is the zap logger log lines are written to. A nil logger
	// results in a no-op sink.
	Logger *zap.Logger
}

// New creates a Sink that emits debug entries through the configured zap
// logger, carrying the routing target as a "target" field.
func New(config Config) sink.Sink {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapSink{logger: logger}
}

type zapSink struct {
	logger *zap.Logger
}

func (s *zapSink) Debug(target, message string) {
	s.logger.Debug(message, zap.String("target", target))
}
