package session

import (
	"sync"
)

// eventLoop processes the owner context's tasks on a single goroutine. It
// mirrors the reserve-then-enqueue contract expected by
// taskqueue.TaskQueue: registerCallback reserves a slot from any goroutine,
// and the returned enqueue function hands the actual callback over, waking
// the loop up if it is idle.
type eventLoop struct {
	lock                sync.Mutex
	queue               []func() error
	wakeupCh            chan struct{} // maximum 1 buffer size
	registeredCallbacks int
}

func newEventLoop() *eventLoop {
	return &eventLoop{
		wakeupCh: make(chan struct{}, 1),
	}
}

func (e *eventLoop) wakeup() {
	select {
	case e.wakeupCh <- struct{}{}:
	default:
	}
}

// registerCallback reserves a slot in the loop and returns the function that
// enqueues the real callback. The loop will not exit until every reserved
// slot has been consumed. The returned function may be called at most once,
// from any goroutine.
func (e *eventLoop) registerCallback() func(func() error) {
	e.lock.Lock()
	e.registeredCallbacks++
	e.lock.Unlock()

	var once sync.Once
	return func(f func() error) {
		once.Do(func() {
			e.lock.Lock()
			e.queue = append(e.queue, f)
			e.registeredCallbacks--
			e.lock.Unlock()
			e.wakeup()
		})
	}
}

// start runs firstCallback and then keeps executing enqueued callbacks until
// none are queued and none are registered. The first callback error stops the
// loop; outstanding callbacks are dropped.
func (e *eventLoop) start(firstCallback func() error) error {
	e.queue = []func() error{firstCallback}

	for {
		e.lock.Lock()
		queue := e.queue
		e.queue = make([]func() error, 0, len(queue))
		awaiting := e.registeredCallbacks != 0
		e.lock.Unlock()

		if len(queue) == 0 {
			if !awaiting {
				return nil
			}
			<-e.wakeupCh
			continue
		}

		for _, f := range queue {
			if err := f(); err != nil {
				return err
			}
		}
	}
}
