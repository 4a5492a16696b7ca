package hostsink

import (
	wapc "github.com/wapc/wapc-guest-tinygo"

	sdk "github.com/futurelog-project/sdk"
	"github.com/futurelog-project/sdk/sink"
)

const (
	capabilityName = "logging"
	fnDebug        = "Debug"
)

// HostCall defines the waPC host function signature used to deliver log
// lines.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Config controls how the sink reaches the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig sdk.RuntimeConfig

	// HostCall overrides the waPC host function used to deliver log lines.
	HostCall HostCall
}

// New creates a Sink that ships debug log lines to the host runtime as
// hostCall(namespace, "logging", "Debug", payload). The payload is the
// message prefixed with its routing target ("<target>: <message>"), the
// way console backends render targets. Host errors are swallowed; logging
// must never fail the poll that produced it.
func New(config Config) sink.Sink {
	runtimeCfg := config.SDKConfig
	if runtimeCfg.Namespace == "" {
		runtimeCfg.Namespace = sdk.DefaultNamespace
	}

	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &hostSink{runtime: runtimeCfg, hostCall: hostCall}
}

type hostSink struct {
	runtime  sdk.RuntimeConfig
	hostCall HostCall
}

func (s *hostSink) Debug(target, message string) {
	_, _ = s.hostCall(s.runtime.Namespace, capabilityName, fnDebug, []byte(target+": "+message))
}
