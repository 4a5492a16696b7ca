/*
Package zapsink adapts a zap logger to the sink.Sink interface.

Severity filtering stays with zap: a logger built above debug level drops
the instrumentation output entirely.
*/
package zapsink
