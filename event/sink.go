package event

import (
	"github.com/consolehook/consolehook/console"
)

// ConsoleSink is a console.Delegate that renders each captured message on
// the spot, while still on the script goroutine, and emits it as a
// ConsoleAPICalled event. Emission never blocks the script; if subscriber
// buffers are full the event is dropped.
type ConsoleSink struct {
	system *System
}

// NewConsoleSink returns a ConsoleSink publishing to system.
func NewConsoleSink(system *System) *ConsoleSink {
	return &ConsoleSink{system: system}
}

// AddConsoleMessage implements console.Delegate.
func (s *ConsoleSink) AddConsoleMessage(msg console.Message) {
	s.system.Emit(&Event{
		Type: ConsoleAPICalled,
		Data: ConsoleMessage{
			TimestampMs: msg.TimestampMs,
			Kind:        msg.Kind,
			Args:        console.RenderArgs(msg.Args),
		},
	})
}
