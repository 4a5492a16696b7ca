/*
Package inspect makes polling visible: it wraps any future with a label and
logs every poll attempt plus the outcome that attempt settled on, useful
for both teaching and debugging poll-driven code.

	f := inspect.Inspect(future.Ready(3), "immediate future")
	f.Poll()

emits two debug lines to the "futures_log" target:

	Polling future 'immediate future'
	Future 'immediate future' polled: Ok(Ready(3))

The wrapper changes nothing else. Pending, success, and failure outcomes
pass through verbatim, no poll is added or skipped, and the wrapped future
composes with combinators exactly as the inner one would. Where the lines
go is configurable through New and Config.

Building with the "silence" build tag removes the instrumentation entirely:
Inspect returns the inner future untouched, no label is retained, and the
package drops its sink dependency. The switch is per build, never per call.
New, Config, and Inspected exist only in normal builds.
*/
package inspect
