// Package js installs the console interceptor on a goja runtime. The
// installed methods capture every console API call as a structured message
// for the debugging session while chaining to whatever console implementation
// existed before, so interception is invisible to the running script.
package js

import (
	"fmt"
	"time"

	"github.com/dop251/goja"

	"github.com/consolehook/consolehook/console"
	"github.com/consolehook/consolehook/lib/weakref"
)

// InstallConsole replaces the runtime's global console binding with an
// intercepting object. The previous binding, if it was an object, becomes the
// prototype of the new one, so any property not re-installed here falls
// through to it untouched, and each installed method also chains to the
// original method of the same name with the unmodified arguments.
//
// It must be called on the goroutine that owns rt, before the runtime
// executes further script.
func InstallConsole(rt *goja.Runtime, weak *weakref.Weak[Target]) error {
	var original *goja.Object
	if v := rt.GlobalObject().Get("console"); v != nil {
		if obj, ok := v.(*goja.Object); ok {
			original = obj
		}
	}
	proto := original
	if proto == nil {
		proto = rt.NewObject()
	}

	intercepted := rt.CreateObject(proto)
	state := console.NewState()
	bridge := delegateBridge{weak: weak}

	install := func(name string, build console.Builder) error {
		handler := func(call goja.FunctionCall) goja.Value {
			timestampMs := nowMs()
			bridge.withDelegate(func(delegate console.Delegate) {
				if msg, ok := build(rt, call.Arguments, state, timestampMs); ok {
					delegate.AddConsoleMessage(msg)
				}
			})
			forwardToOriginal(original, name, call.Arguments)
			return goja.Undefined()
		}
		if err := intercepted.Set(name, rt.ToValue(handler)); err != nil {
			return fmt.Errorf("error installing console.%s: %w", name, err)
		}
		return nil
	}

	for name, kind := range console.PassthroughMethods {
		if err := install(name, console.Passthrough(kind)); err != nil {
			return err
		}
	}
	for name, build := range console.StatefulBuilders() {
		if err := install(name, build); err != nil {
			return err
		}
	}

	if err := rt.GlobalObject().Set("console", intercepted); err != nil {
		return fmt.Errorf("error replacing the global console binding: %w", err)
	}
	return nil
}

// forwardToOriginal invokes name on the console object that was in place
// before installation, with the original receiver and unmodified arguments.
// A missing or non-callable property skips forwarding; the return value and
// any raised error are discarded. Interception is additive, never
// suppressive, toward pre-existing console implementations.
func forwardToOriginal(original *goja.Object, name string, args []goja.Value) {
	if original == nil {
		return
	}
	fn, ok := goja.AssertFunction(original.Get(name))
	if !ok {
		return
	}
	_, _ = fn(original, args...)
}

func nowMs() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
