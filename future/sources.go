package future

// Compile-time checks that every source implements the Future capability.
var (
	_ Future[int] = (*readyFuture[int])(nil)
	_ Future[int] = (*failFuture[int])(nil)
	_ Future[int] = (*funcFuture[int])(nil)
	_ Future[int] = (*asyncFuture[int])(nil)
)

// readyFuture is terminal from construction.
type readyFuture[T any] struct {
	value T
}

// Ready returns a future that is immediately ready with v. It stays
// terminal: every poll repeats the same outcome.
func Ready[T any](v T) Future[T] {
	return &readyFuture[T]{value: v}
}

func (f *readyFuture[T]) Poll() Poll[T] {
	return PollReady(f.value)
}

// failFuture is terminal from construction.
type failFuture[T any] struct {
	err error
}

// Fail returns a future that immediately fails with err. It stays terminal:
// every poll repeats the same outcome.
func Fail[T any](err error) Future[T] {
	return &failFuture[T]{err: err}
}

func (f *failFuture[T]) Poll() Poll[T] {
	return PollFailed[T](f.err)
}

// funcFuture delegates every poll to a closure.
type funcFuture[T any] struct {
	poll func() Poll[T]
}

// Func returns a future whose polls are answered by poll. The closure owns
// the state machine; it is invoked once per Poll call, never concurrently.
func Func[T any](poll func() Poll[T]) Future[T] {
	return &funcFuture[T]{poll: poll}
}

func (f *funcFuture[T]) Poll() Poll[T] {
	return f.poll()
}

// asyncFuture settles when its goroutine finishes.
type asyncFuture[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Async runs fn once in its own goroutine and returns a future that is
// pending until fn returns, then ready with its value or failed with its
// error. The channel close orders the goroutine's writes before any poll
// that observes completion.
func Async[T any](fn func() (T, error)) Future[T] {
	f := &asyncFuture[T]{done: make(chan struct{})}
	go func() {
		f.value, f.err = fn()
		close(f.done)
	}()
	return f
}

func (f *asyncFuture[T]) Poll() Poll[T] {
	select {
	case <-f.done:
		if f.err != nil {
			return PollFailed[T](f.err)
		}
		return PollReady(f.value)
	default:
		return PollPending[T]()
	}
}
