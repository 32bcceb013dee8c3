// Package weakref implements shared ownership handles with weak observers,
// where the final release of the shared value can be confined to the
// goroutine that owns it. A holder on a foreign goroutine upgrades the weak
// handle, uses the value, and then ships the strong reference back to the
// owner's executor to die there, so teardown never runs on the wrong
// goroutine.
package weakref

import "sync"

// Executor submits a fire-and-forget unit of work to the goroutine owning a
// shared value.
type Executor interface {
	Submit(task func())
}

type control[T any] struct {
	mu       sync.Mutex
	val      T
	refs     int
	finalize func(T)
}

// Strong is a counted reference keeping the shared value alive. Each Strong
// must be released exactly once.
type Strong[T any] struct {
	c *control[T]
}

// Weak observes the liveness of a shared value without extending it.
type Weak[T any] struct {
	c *control[T]
}

// New shares val, returning the root strong reference and a weak observer.
// finalize, if non-nil, runs exactly once, on whichever goroutine releases
// the last strong reference; ReleaseOn exists to steer that onto the owner.
func New[T any](val T, finalize func(T)) (*Strong[T], *Weak[T]) {
	c := &control[T]{val: val, refs: 1, finalize: finalize}
	return &Strong[T]{c: c}, &Weak[T]{c: c}
}

// Upgrade attempts to obtain a new strong reference. It fails once every
// strong reference has been released, and never blocks.
func (w *Weak[T]) Upgrade() (*Strong[T], bool) {
	w.c.mu.Lock()
	defer w.c.mu.Unlock()
	if w.c.refs == 0 {
		return nil, false
	}
	w.c.refs++
	return &Strong[T]{c: w.c}, true
}

// Value returns the shared value. Only valid before Release.
func (s *Strong[T]) Value() T {
	return s.c.val
}

// Release drops this reference. The last release runs the finalizer.
func (s *Strong[T]) Release() {
	c := s.c
	c.mu.Lock()
	c.refs--
	last := c.refs == 0
	c.mu.Unlock()
	if last && c.finalize != nil {
		c.finalize(c.val)
	}
}

// ReleaseOn hands this reference to ex so that the release, and any
// finalization it triggers, happens on the owning goroutine instead of the
// calling one.
func (s *Strong[T]) ReleaseOn(ex Executor) {
	ex.Submit(s.Release)
}
