package zerologsink

import (
	"github.com/rs/zerolog"

	"github.com/futurelog-project/sdk/sink"
)

// Config controls construction of the zerolog-backed sink.
type Config struct {
	// Logger is the zerolog logger log lines are written to.
	Logger zerolog.Logger
}

// New creates a Sink that emits debug events through the configured zerolog
// logger, carrying the routing target as a "target" field.
func New(config Config) sink.Sink {
	return &zerologSink{logger: config.Logger}
}

type zerologSink struct {
	logger zerolog.Logger
}

func (s *zerologSink) Debug(target, message string) {
	s.logger.Debug().Str("target", target).Msg(message)
}
