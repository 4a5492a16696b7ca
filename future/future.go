package future

import "fmt"

// Future is the capability shared by every asynchronous value in this
// module: a computation that is advanced by polling and eventually settles
// into a value or an error.
//
// Poll must never block. A pending outcome returns control to the caller,
// which is expected to poll again later. A future is owned by a single
// logical poller; implementations do not synchronize concurrent polls.
// Polling again after a terminal outcome is a caller bug unless the
// concrete implementation documents otherwise.
type Future[T any] interface {
	Poll() Poll[T]
}

// pollState enumerates the three ways a poll attempt can settle.
type pollState uint8

const (
	statePending pollState = iota
	stateReady
	stateFailed
)

// Poll is the outcome of a single poll attempt: still pending, ready with a
// value, or failed with an error.
type Poll[T any] struct {
	state pollState
	value T
	err   error
}

// PollPending returns a pending outcome.
func PollPending[T any]() Poll[T] {
	return Poll[T]{state: statePending}
}

// PollReady returns a ready outcome carrying v.
func PollReady[T any](v T) Poll[T] {
	return Poll[T]{state: stateReady, value: v}
}

// PollFailed returns a failed outcome carrying err.
func PollFailed[T any](err error) Poll[T] {
	return Poll[T]{state: stateFailed, err: err}
}

// Pending reports whether the computation has not settled yet.
func (p Poll[T]) Pending() bool {
	return p.state == statePending
}

// Ready returns the value and true when the computation settled
// successfully. For pending or failed outcomes the value is the zero value
// and the bool is false.
func (p Poll[T]) Ready() (T, bool) {
	return p.value, p.state == stateReady
}

// Err returns the failure when the computation settled with an error, nil
// otherwise.
func (p Poll[T]) Err() error {
	if p.state != stateFailed {
		return nil
	}
	return p.err
}

// String renders the outcome in the fixed form used by poll logging:
// "Ok(NotReady)" while pending, "Ok(Ready(<value>))" on success and
// "Err(<error>)" on failure. Values render with their type's own %v rule;
// error text is quoted.
func (p Poll[T]) String() string {
	switch p.state {
	case stateReady:
		return fmt.Sprintf("Ok(Ready(%v))", p.value)
	case stateFailed:
		return fmt.Sprintf("Err(%q)", p.err)
	default:
		return "Ok(NotReady)"
	}
}
