package hostmock

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedNamespace is returned when the namespace is not as expected.
	ErrUnexpectedNamespace = errors.New("unexpected namespace")

	// ErrUnexpectedCapability is returned when the capability is not as expected.
	ErrUnexpectedCapability = errors.New("unexpected capability")

	// ErrUnexpectedFunction is returned when the function is not as expected.
	ErrUnexpectedFunction = errors.New("unexpected function")

	// ErrHostUnavailable is returned when Fail is set without a custom error.
	ErrHostUnavailable = errors.New("host unavailable")
)

// Mock stands in for the waPC host side of a host-routed sink. It validates
// routing, runs an optional payload check, and records every call so tests
// can assert on what the sink actually shipped.
type Mock struct {
	// ExpectedNamespace defines the namespace expected in the host call.
	ExpectedNamespace string

	// ExpectedCapability defines the capability expected in the host call.
	ExpectedCapability string

	// ExpectedFunction defines the function name expected in the host call.
	ExpectedFunction string

	// PayloadValidator validates the payload passed to the host call.
	PayloadValidator func([]byte) error

	// Error is the error to return if the mock is configured to fail.
	Error error

	// Fail indicates whether the mock should return an error.
	Fail bool

	// Calls records each host call observed by the mock, valid or not.
	Calls []Call
}

// Call captures a single host call.
type Call struct {
	// Namespace is the namespace the call was routed under.
	Namespace string

	// Capability is the capability the call addressed.
	Capability string

	// Function is the function name the call invoked.
	Function string

	// Payload holds the raw bytes shipped with the call.
	Payload []byte
}

// Config represents the configuration for creating a Mock instance.
type Config struct {
	// ExpectedNamespace defines the namespace expected in the host call.
	ExpectedNamespace string

	// ExpectedCapability defines the capability expected in the host call.
	ExpectedCapability string

	// ExpectedFunction defines the function name expected in the host call.
	ExpectedFunction string

	// PayloadValidator validates the payload passed to the host call.
	PayloadValidator func([]byte) error

	// Error is the error to return if the mock is configured to fail.
	Error error

	// Fail indicates whether the mock should return an error.
	Fail bool
}

// New creates a new instance of the Mock based on the provided Config.
func New(config Config) (*Mock, error) {
	return &Mock{
		ExpectedNamespace:  config.ExpectedNamespace,
		ExpectedCapability: config.ExpectedCapability,
		ExpectedFunction:   config.ExpectedFunction,
		PayloadValidator:   config.PayloadValidator,
		Error:              config.Error,
		Fail:               config.Fail,
	}, nil
}

// HostCall records the call, then validates it against the configured
// expectations. Expectations left blank are wildcards. A logging host
// returns no payload, so the success response is always nil.
func (m *Mock) HostCall(namespace, capability, function string, payload []byte) ([]byte, error) {
	m.Calls = append(m.Calls, Call{
		Namespace:  namespace,
		Capability: capability,
		Function:   function,
		Payload:    payload,
	})

	if m.Fail {
		if m.Error != nil {
			return nil, m.Error
		}
		return nil, ErrHostUnavailable
	}

	if m.ExpectedNamespace != "" && m.ExpectedNamespace != namespace {
		return nil, fmt.Errorf("%w: expected namespace %s, got %s", ErrUnexpectedNamespace, m.ExpectedNamespace, namespace)
	}

	if m.ExpectedCapability != "" && m.ExpectedCapability != capability {
		return nil, fmt.Errorf("%w: expected capability %s, got %s", ErrUnexpectedCapability, m.ExpectedCapability, capability)
	}

	if m.ExpectedFunction != "" && m.ExpectedFunction != function {
		return nil, fmt.Errorf("%w: expected function %s, got %s", ErrUnexpectedFunction, m.ExpectedFunction, function)
	}

	if m.PayloadValidator != nil {
		if err := m.PayloadValidator(payload); err != nil {
			return nil, err
		}
	}

	return nil, nil
}
