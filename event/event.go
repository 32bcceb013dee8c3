// Package event provides the delivery channel between a debugging session
// and its consumers: captured console API calls and session lifecycle changes
// are published here as events carrying runtime-independent payloads.
package event

import (
	"github.com/consolehook/consolehook/console"
)

// Type is the event type constant.
type Type string

const (
	// SessionAttached is emitted after a session installs its interceptor on
	// a runtime.
	SessionAttached Type = "sessionAttached"
	// SessionDetached is emitted when a session is closed.
	SessionDetached Type = "sessionDetached"
	// ConsoleAPICalled is emitted once per captured console message; Data is
	// a ConsoleMessage.
	ConsoleAPICalled Type = "consoleAPICalled"
)

// Event is what subscribers receive.
type Event struct {
	Type Type
	Data any
	// Done must be called by every subscriber once it has processed the
	// event, if the emitter asked to wait for processing.
	Done func()
}

// ConsoleMessage is the rendered form of a captured console message. Unlike
// console.Message it holds no live runtime values and is safe to pass
// between goroutines.
type ConsoleMessage struct {
	TimestampMs float64
	Kind        console.Kind
	Args        []string
}
