package future

var (
	_ Future[int] = (*mapFuture[string, int])(nil)
	_ Future[int] = (*thenFuture[string, int])(nil)
)

// mapFuture applies fn to the inner future's value once it is ready.
type mapFuture[T, U any] struct {
	inner Future[T]
	fn    func(T) U
}

// Map returns a future that resolves to fn applied to f's value. Pending
// and failed outcomes pass through untouched. fn runs inside the poll that
// observes readiness, so it must not block.
func Map[T, U any](f Future[T], fn func(T) U) Future[U] {
	return &mapFuture[T, U]{inner: f, fn: fn}
}

func (m *mapFuture[T, U]) Poll() Poll[U] {
	p := m.inner.Poll()
	if p.Pending() {
		return PollPending[U]()
	}
	if err := p.Err(); err != nil {
		return PollFailed[U](err)
	}
	v, _ := p.Ready()
	return PollReady(m.fn(v))
}

// thenFuture polls inner until it is ready, then switches to the future
// produced by fn and forwards all further polls to it.
type thenFuture[T, U any] struct {
	inner Future[T]
	fn    func(T) Future[U]
	next  Future[U]
}

// Then returns a future that, once f is ready, continues with the future
// returned by fn. A failure of f short-circuits and is reported as-is. The
// continuation is polled immediately within the poll that observed f's
// readiness, and exclusively from then on.
func Then[T, U any](f Future[T], fn func(T) Future[U]) Future[U] {
	return &thenFuture[T, U]{inner: f, fn: fn}
}

func (c *thenFuture[T, U]) Poll() Poll[U] {
	if c.next == nil {
		p := c.inner.Poll()
		if p.Pending() {
			return PollPending[U]()
		}
		if err := p.Err(); err != nil {
			return PollFailed[U](err)
		}
		v, _ := p.Ready()
		c.next = c.fn(v)
		c.inner = nil
		c.fn = nil
	}
	return c.next.Poll()
}
