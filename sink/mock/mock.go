package mock

import "github.com/futurelog-project/sdk/sink"

// MockSink implements sink.Sink, recording every line for assertions. It
// never writes anywhere.
//
// revive:disable:exported // Name mirrors package for discoverability; stutter is acceptable here.
type MockSink struct {
	// Calls records each emitted line in order.
	Calls []Call
}

// revive:enable:exported

// Call captures a single log line observed by the mock.
type Call struct {
	// Target is the routing target the line was tagged with.
	Target string

	// Message is the log line text.
	Message string
}

// Config controls construction of a MockSink.
type Config struct{}

// New creates a new recording sink.
func New(config Config) *MockSink {
	return &MockSink{Calls: []Call{}}
}

var _ sink.Sink = (*MockSink)(nil)

// Debug records the line.
func (m *MockSink) Debug(target, message string) {
	m.Calls = append(m.Calls, Call{Target: target, Message: message})
}

// Messages returns the message text of each recorded call, in order.
func (m *MockSink) Messages() []string {
	msgs := make([]string, 0, len(m.Calls))
	for _, c := range m.Calls {
		msgs = append(msgs, c.Message)
	}
	return msgs
}

// Reset clears all recorded calls.
func (m *MockSink) Reset() {
	m.Calls = m.Calls[:0]
}
