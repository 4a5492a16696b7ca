/*
Package zerologsink adapts a zerolog logger to the sink.Sink interface.

Severity filtering stays with zerolog: a logger levelled above debug drops
the instrumentation output entirely.
*/
package zerologsink
