/*
Package sdk holds the shared constants and runtime configuration for the
future inspection SDK.

The interesting parts live in the subpackages: future defines the poll-based
asynchronous value capability and its combinators, inspect wraps any future
so every poll attempt and outcome is logged, and sink defines the narrow
logging surface the instrumentation writes to, together with adapters for
common logging backends.
*/
package sdk
