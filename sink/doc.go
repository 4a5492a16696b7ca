/*
Package sink defines the logging surface consumed by poll instrumentation.

The Sink interface is deliberately narrow: one debug-severity message plus a
routing target. The SDK never configures a logging backend; it only writes
to whichever sink it is handed. The default sink forwards to the process
slog logger, and the sibling adapter packages (zerologsink, zapsink,
phuslusink, hostsink) bridge to other backends. mock provides a recording
sink for tests.
*/
package sink
