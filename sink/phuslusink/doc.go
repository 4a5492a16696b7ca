/*
Package phuslusink adapts a phuslu/log logger to the sink.Sink interface.

Severity filtering stays with the logger: one levelled above debug drops
the instrumentation output entirely.
*/
package phuslusink
