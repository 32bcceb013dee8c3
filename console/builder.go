package console

import (
	"strconv"

	"github.com/dop251/goja"
)

// Builder computes the zero-or-one message emitted by a single console
// method call. args are the raw call arguments, timestampMs the wall-clock
// time captured at call entry. The second return value is false when the
// call produces no visible output (e.g. a passing assertion).
//
// Builders run on the script goroutine; misuse never fails the call, it is
// reported as a Warning-kind message instead.
type Builder func(rt *goja.Runtime, args []goja.Value, state *State, timestampMs float64) (Message, bool)

// PassthroughMethods maps the console methods that have no behaviour beyond
// emitting a message to their message kinds.
var PassthroughMethods = map[string]Kind{ //nolint:gochecknoglobals
	"clear":          KindClear,
	"debug":          KindDebug,
	"dir":            KindDir,
	"dirxml":         KindDirXML,
	"error":          KindError,
	"group":          KindStartGroup,
	"groupCollapsed": KindStartGroupCollapsed,
	"groupEnd":       KindEndGroup,
	"info":           KindInfo,
	"log":            KindLog,
	"table":          KindTable,
	"trace":          KindTrace,
	"warn":           KindWarning,
}

// Passthrough returns a builder that forwards the call arguments verbatim as
// a message of the given kind.
func Passthrough(kind Kind) Builder {
	return func(_ *goja.Runtime, args []goja.Value, _ *State, timestampMs float64) (Message, bool) {
		body := make([]goja.Value, len(args))
		copy(body, args)
		return Message{TimestampMs: timestampMs, Kind: kind, Args: body}, true
	}
}

// StatefulBuilders returns the builders for the six methods with counting,
// timing or assertion semantics, keyed by method name.
func StatefulBuilders() map[string]Builder {
	return map[string]Builder{
		"count":      Count,
		"countReset": CountReset,
		"time":       Time,
		"timeEnd":    TimeEnd,
		"timeLog":    TimeLog,
		"assert":     Assert,
	}
}

// Count implements console.count: it bumps the counter for the resolved
// label and emits "<label>: <count>".
func Count(rt *goja.Runtime, args []goja.Value, state *State, timestampMs float64) (Message, bool) {
	label := ResolveLabel(args)
	n := state.BumpCount(label)
	return Message{
		TimestampMs: timestampMs,
		Kind:        KindCount,
		Args:        []goja.Value{rt.ToValue(label + ": " + strconv.Itoa(n))},
	}, true
}

// CountReset implements console.countReset: it zeroes an existing counter, or
// warns if the counter was never created.
func CountReset(rt *goja.Runtime, args []goja.Value, state *State, timestampMs float64) (Message, bool) {
	label := ResolveLabel(args)
	if !state.ResetCount(label) {
		return warning(rt, timestampMs, "Count for '"+label+"' does not exist")
	}
	return Message{}, false
}

// Time implements console.time: it records the call timestamp under the
// resolved label, or warns if a timer with that label is already running.
func Time(rt *goja.Runtime, args []goja.Value, state *State, timestampMs float64) (Message, bool) {
	label := ResolveLabel(args)
	if !state.StartTimer(label, timestampMs) {
		return warning(rt, timestampMs, "Timer '"+label+"' already exists")
	}
	return Message{}, false
}

// TimeEnd implements console.timeEnd: it stops the timer for the resolved
// label and emits "<label>: <elapsed> ms", or warns if no such timer exists.
func TimeEnd(rt *goja.Runtime, args []goja.Value, state *State, timestampMs float64) (Message, bool) {
	label := ResolveLabel(args)
	startMs, ok := state.StopTimer(label)
	if !ok {
		return warning(rt, timestampMs, "Timer '"+label+"' does not exist")
	}
	return Message{
		TimestampMs: timestampMs,
		Kind:        KindTimeEnd,
		Args:        []goja.Value{rt.ToValue(label + ": " + numberString(rt, timestampMs-startMs) + " ms")},
	}, true
}

// TimeLog implements console.timeLog: like timeEnd, but the timer keeps
// running, the kind is "log", and any extra call arguments beyond the label
// are appended to the message verbatim.
func TimeLog(rt *goja.Runtime, args []goja.Value, state *State, timestampMs float64) (Message, bool) {
	label := ResolveLabel(args)
	startMs, ok := state.TimerStart(label)
	if !ok {
		return warning(rt, timestampMs, "Timer '"+label+"' does not exist")
	}
	body := []goja.Value{rt.ToValue(label + ": " + numberString(rt, timestampMs-startMs) + " ms")}
	if len(args) > 1 {
		body = append(body, args[1:]...)
	}
	return Message{TimestampMs: timestampMs, Kind: KindLog, Args: body}, true
}

const assertFailed = "Assertion failed"

// Assert implements console.assert, per the formatting steps of
// https://console.spec.whatwg.org/#assert. A truthy first argument emits
// nothing.
func Assert(rt *goja.Runtime, args []goja.Value, _ *State, timestampMs float64) (Message, bool) {
	if len(args) >= 1 && Truthy(args[0]) {
		return Message{}, false
	}
	var body []goja.Value
	if len(args) > 1 {
		body = make([]goja.Value, len(args)-1)
		copy(body, args[1:])
	}
	switch {
	case len(body) == 0:
		body = []goja.Value{rt.ToValue(assertFailed)}
	case isString(body[0]):
		body[0] = rt.ToValue(assertFailed + ": " + body[0].String())
	default:
		body = append([]goja.Value{rt.ToValue(assertFailed)}, body...)
	}
	return Message{TimestampMs: timestampMs, Kind: KindAssert, Args: body}, true
}

func warning(rt *goja.Runtime, timestampMs float64, text string) (Message, bool) {
	return Message{
		TimestampMs: timestampMs,
		Kind:        KindWarning,
		Args:        []goja.Value{rt.ToValue(text)},
	}, true
}

// numberString converts f the way the scripting language itself would, so
// elapsed times read exactly like native console output.
func numberString(rt *goja.Runtime, f float64) string {
	return rt.ToValue(f).String()
}
