//go:build !silence

package inspect

import (
	"fmt"

	sdk "github.com/futurelog-project/sdk"
	"github.com/futurelog-project/sdk/future"
	"github.com/futurelog-project/sdk/sink"
)

// Config controls how an Inspected future reports its polls. Only present
// in normal builds.
type Config struct {
	// Label identifies the future in log messages. Labels need not be
	// unique; lines from same-labelled futures disambiguate by ordering.
	Label string

	// Target overrides the log routing target. Defaults to
	// sdk.DefaultTarget.
	Target string

	// Sink overrides where log lines are written. Defaults to
	// sink.Default().
	Sink sink.Sink
}

// Inspected forwards every poll to an inner future, logging the attempt and
// its outcome. The outcome itself reaches the caller untouched: same
// variant, same payload, no transformation. Only present in normal builds.
type Inspected[T any] struct {
	inner  future.Future[T]
	label  string
	target string
	sink   sink.Sink
}

var _ future.Future[int] = (*Inspected[int])(nil)

// New wraps inner according to config. Construction cannot fail.
func New[T any](inner future.Future[T], config Config) *Inspected[T] {
	target := config.Target
	if target == "" {
		target = sdk.DefaultTarget
	}

	s := config.Sink
	if s == nil {
		s = sink.Default()
	}

	return &Inspected[T]{
		inner:  inner,
		label:  config.Label,
		target: target,
		sink:   s,
	}
}

// Inspect wraps f so every poll is logged under label, writing to the
// default sink and target. The returned future reports the exact outcomes
// f would have reported, and composes anywhere f would.
func Inspect[T any](f future.Future[T], label string) future.Future[T] {
	return New(f, Config{Label: label})
}

// Poll logs the attempt, delegates to the inner future, logs the outcome,
// and returns it unchanged. Exactly two lines per call.
func (i *Inspected[T]) Poll() future.Poll[T] {
	i.sink.Debug(i.target, fmt.Sprintf("Polling future '%s'", i.label))
	p := i.inner.Poll()
	i.sink.Debug(i.target, fmt.Sprintf("Future '%s' polled: %s", i.label, p))
	return p
}
