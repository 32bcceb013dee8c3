// Package session implements the owner context of a debugging session: the
// goroutine that owns the console message delegate, the task loop confined to
// it, and the weakly-observable handle through which intercepted console
// methods reach the delegate from the script goroutine.
package session

import (
	"sync"

	"github.com/dop251/goja"
	"github.com/mstoykov/k6-taskqueue-lib/taskqueue"
	"github.com/sirupsen/logrus"

	"github.com/consolehook/consolehook/console"
	"github.com/consolehook/consolehook/js"
	"github.com/consolehook/consolehook/lib/weakref"
)

// Session owns a console message delegate and runs the owner loop on its own
// goroutine. Script goroutines never block on it; the only cross-goroutine
// traffic is the fire-and-forget reference handoff after each delegate
// access.
//
// The registration contract: whoever wires a runtime to a Session must
// guarantee that the delegate stays usable for as long as any script may be
// executing. Close may happen at any time; intercepted calls after that
// degrade to plain forwarding.
type Session struct {
	logger   logrus.FieldLogger
	delegate console.Delegate
	loop     *eventLoop
	tq       *taskqueue.TaskQueue

	root *weakref.Strong[js.Target]
	weak *weakref.Weak[js.Target]

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// New creates a session around delegate and starts its owner loop.
func New(logger logrus.FieldLogger, delegate console.Delegate) *Session {
	s := &Session{
		logger:   logger.WithField("source", "session"),
		delegate: delegate,
		loop:     newEventLoop(),
		done:     make(chan struct{}),
	}
	// The task queue reserves a slot in the loop right away, which keeps the
	// loop running until Close.
	s.tq = taskqueue.New(s.loop.registerCallback)
	s.root, s.weak = weakref.New[js.Target](s, func(js.Target) {
		s.logger.Debug("Released the last session reference")
	})
	go s.run()
	return s
}

func (s *Session) run() {
	defer close(s.done)
	if err := s.loop.start(func() error { return nil }); err != nil {
		s.logger.WithError(err).Error("Session loop terminated")
	}
}

// RegisterRuntime installs this session's console interceptor on rt. It must
// be called from the goroutine that owns rt, before the runtime executes
// further script.
func (s *Session) RegisterRuntime(rt *goja.Runtime) error {
	return js.InstallConsole(rt, s.weak)
}

// Delegate implements js.Target.
func (s *Session) Delegate() console.Delegate {
	return s.delegate
}

// Executor implements js.Target.
func (s *Session) Executor() weakref.Executor {
	return s
}

// Submit queues a fire-and-forget task onto the session goroutine. After
// Close the task runs inline on the caller: the owner goroutine is gone, so
// there is nothing left to confine the work to.
func (s *Session) Submit(task func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		task()
		return
	}
	s.tq.Queue(func() error {
		task()
		return nil
	})
	s.mu.Unlock()
}

// Close releases the session's own reference, so that weak upgrades from
// intercepted calls start failing, and shuts the owner loop down after any
// already-queued handoffs have run. It blocks until the loop goroutine has
// exited and is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	alreadyClosed := s.closed
	s.closed = true
	s.mu.Unlock()

	if !alreadyClosed {
		s.root.Release()
		s.tq.Close()
	}
	<-s.done
}
