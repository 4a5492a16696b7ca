package phuslusink

import (
	"github.com/phuslu/log"

	"github.com/futurelog-project/sdk/sink"
)

// Config controls construction of the phuslu/log-backed sink.
type Config struct {
	// Logger is the phuslu logger log lines are written to. A nil logger
	// falls back to log.DefaultLogger.
	Logger *log.Logger
}

// New creates a Sink that emits debug entries through the configured phuslu
// logger, carrying the routing target as a "target" field.
func New(config Config) sink.Sink {
	logger := config.Logger
	if logger == nil {
		logger = &log.DefaultLogger
	}
	return &phusluSink{logger: logger}
}

type phusluSink struct {
	logger *log.Logger
}

func (s *phusluSink) Debug(target, message string) {
	s.logger.Debug().Str("target", target).Msg(message)
}
