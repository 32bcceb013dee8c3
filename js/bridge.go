package js

import (
	"github.com/consolehook/consolehook/console"
	"github.com/consolehook/consolehook/lib/weakref"
)

// Target is the session-side surface the interceptor needs: the message sink
// and the executor of the goroutine that owns it.
type Target interface {
	Delegate() console.Delegate
	Executor() weakref.Executor
}

// delegateBridge obtains safe, time-bounded access to the session delegate
// from the script goroutine.
type delegateBridge struct {
	weak *weakref.Weak[Target]
}

// withDelegate runs fn inline on the calling (script) goroutine if the
// session is still alive, and reports whether it ran. This is safe because
// the registration contract guarantees the delegate stays valid for as long
// as any script may be executing. Afterwards the strong reference is handed
// to the session's executor so that its release happens on the owner
// goroutine, never here.
//
// If the session is already gone this degrades to a no-op: the script must
// never observe a failure or delay because the debugging session ended.
func (b delegateBridge) withDelegate(fn func(console.Delegate)) bool {
	strong, ok := b.weak.Upgrade()
	if !ok {
		return false
	}
	target := strong.Value()
	fn(target.Delegate())
	strong.ReleaseOn(target.Executor())
	return true
}
