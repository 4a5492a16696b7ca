package sdk

// DefaultTarget is the log routing target poll instrumentation writes under
// when no explicit target is provided.
const DefaultTarget = "futures_log"

// DefaultNamespace is used by host-routed sinks when no explicit namespace
// is provided.
const DefaultNamespace = "futurelog"

// RuntimeConfig carries configuration shared by SDK components.
type RuntimeConfig struct {
	// Namespace scopes host interactions for host-routed sinks.
	Namespace string
}
