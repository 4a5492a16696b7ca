package future

import "runtime"

// Wait polls f until it settles and returns the result. It yields the
// processor between pending polls rather than sleeping, which keeps it
// honest for tests and examples; production callers are expected to bring
// their own scheduling.
func Wait[T any](f Future[T]) (T, error) {
	for {
		p := f.Poll()
		if v, ok := p.Ready(); ok {
			return v, nil
		}
		if err := p.Err(); err != nil {
			var zero T
			return zero, err
		}
		runtime.Gosched()
	}
}
