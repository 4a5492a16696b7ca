/*
Package hostsink routes poll instrumentation to a waPC host runtime.

It is meant for WebAssembly guests whose host exposes a logging capability.
Each debug line becomes one host call; the HostCall override in Config
exists so tests can substitute a mock host (see the hostmock package).
*/
package hostsink
