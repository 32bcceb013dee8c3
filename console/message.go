// Package console implements the stateful semantics of the intercepted
// console API methods: counting, timing and assertion formatting as defined
// by https://console.spec.whatwg.org/, plus the message model handed to the
// session delegate.
package console

import (
	"github.com/dop251/goja"
)

// Kind identifies which console API produced a message.
type Kind string

const (
	KindClear               Kind = "clear"
	KindDebug               Kind = "debug"
	KindDir                 Kind = "dir"
	KindDirXML              Kind = "dirxml"
	KindError               Kind = "error"
	KindStartGroup          Kind = "startGroup"
	KindStartGroupCollapsed Kind = "startGroupCollapsed"
	KindEndGroup            Kind = "endGroup"
	KindInfo                Kind = "info"
	KindLog                 Kind = "log"
	KindTable               Kind = "table"
	KindTrace               Kind = "trace"
	KindWarning             Kind = "warning"
	KindCount               Kind = "count"
	KindTimeEnd             Kind = "timeEnd"
	KindAssert              Kind = "assert"
)

// Message is a single structured console API call, as delivered to the
// session delegate. Args are live runtime values and must only be touched on
// the goroutine that owns the originating runtime.
type Message struct {
	TimestampMs float64
	Kind        Kind
	Args        []goja.Value
}

// Delegate is the sink that receives console messages for delivery to a
// debugging client. AddConsoleMessage is called inline on the goroutine
// executing the script, so implementations may inspect the message arguments
// but must not retain them past the call unless they export them first.
type Delegate interface {
	AddConsoleMessage(msg Message)
}
