package console

import (
	"github.com/dop251/goja"
)

// DefaultLabel is used by the counting and timing methods when no label
// argument is given.
const DefaultLabel = "default"

// State holds the per-installation counter and timer tables.
//
// One State is shared by all methods of a single console installation and is
// only ever accessed on the goroutine executing the script, so it needs no
// locking.
type State struct {
	// https://console.spec.whatwg.org/#counting
	countMap map[string]int
	// https://console.spec.whatwg.org/#timing
	timerTable map[string]float64
}

// NewState returns an empty State.
func NewState() *State {
	return &State{
		countMap:   make(map[string]int),
		timerTable: make(map[string]float64),
	}
}

// ResolveLabel returns the counter/timer label for a call: the first argument
// coerced to a string, unless it is absent or undefined, in which case the
// default label is used. String coercion of pathological values may throw,
// which propagates to the script like any uninstrumented call would.
func ResolveLabel(args []goja.Value) string {
	if len(args) > 0 && !goja.IsUndefined(args[0]) {
		return args[0].String()
	}
	return DefaultLabel
}

// BumpCount increments the counter for label, creating it at 1 if absent, and
// returns the new value.
func (s *State) BumpCount(label string) int {
	s.countMap[label]++
	return s.countMap[label]
}

// ResetCount zeroes the counter for label. It reports false if the counter
// was never created; it never creates one.
func (s *State) ResetCount(label string) bool {
	if _, ok := s.countMap[label]; !ok {
		return false
	}
	s.countMap[label] = 0
	return true
}

// StartTimer records startMs under label. It reports false, leaving the table
// unchanged, if a timer with that label already exists.
func (s *State) StartTimer(label string, startMs float64) bool {
	if _, ok := s.timerTable[label]; ok {
		return false
	}
	s.timerTable[label] = startMs
	return true
}

// TimerStart returns the recorded start timestamp for label without removing
// the entry.
func (s *State) TimerStart(label string) (float64, bool) {
	startMs, ok := s.timerTable[label]
	return startMs, ok
}

// StopTimer removes the timer for label and returns its start timestamp.
func (s *State) StopTimer(label string) (float64, bool) {
	startMs, ok := s.timerTable[label]
	if ok {
		delete(s.timerTable, label)
	}
	return startMs, ok
}
