/*
Package future defines the poll-based asynchronous value capability used
throughout the SDK.

A Future produces a three-way Poll outcome on every poll attempt: still
pending, ready with a value, or failed with an error. Polling never blocks;
a pending outcome hands control back to whoever is driving the future.

The package ships immediate sources (Ready, Fail), a closure-backed source
(Func), a goroutine bridge (Async), the Map and Then combinators, and a
Wait helper that drives a future to completion.
*/
package future
