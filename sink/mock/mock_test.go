package mock

import (
	"reflect"
	"testing"
)

func TestRecordsInOrder(t *testing.T) {
	t.Parallel()

	m := New(Config{})

	m.Debug("futures_log", "Polling future 'a'")
	m.Debug("futures_log", "Future 'a' polled: Ok(NotReady)")
	m.Debug("poll_trace", "Polling future 'b'")

	want := []Call{
		{Target: "futures_log", Message: "Polling future 'a'"},
		{Target: "futures_log", Message: "Future 'a' polled: Ok(NotReady)"},
		{Target: "poll_trace", Message: "Polling future 'b'"},
	}
	if !reflect.DeepEqual(m.Calls, want) {
		t.Fatalf("Calls = %+v, want %+v", m.Calls, want)
	}

	wantMsgs := []string{
		"Polling future 'a'",
		"Future 'a' polled: Ok(NotReady)",
		"Polling future 'b'",
	}
	if got := m.Messages(); !reflect.DeepEqual(got, wantMsgs) {
		t.Fatalf("Messages() = %q, want %q", got, wantMsgs)
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	m := New(Config{})
	m.Debug("futures_log", "line")
	m.Reset()

	if got := len(m.Calls); got != 0 {
		t.Fatalf("Calls has %d entries after Reset, want 0", got)
	}
}
