/*
Package mock provides a recording sink.Sink for tests.

Inject a MockSink where a Sink is expected, run the code under test, then
assert on Calls (or Messages for text-only checks). Lines are recorded in
emission order, which is what most poll-logging tests care about.
*/
package mock
