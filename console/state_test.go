package console

import (
	"testing"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLabel(t *testing.T) {
	t.Parallel()
	rt := goja.New()

	assert.Equal(t, "default", ResolveLabel(nil))
	assert.Equal(t, "default", ResolveLabel([]goja.Value{goja.Undefined()}))
	assert.Equal(t, "null", ResolveLabel([]goja.Value{goja.Null()}))
	assert.Equal(t, "lbl", ResolveLabel([]goja.Value{rt.ToValue("lbl")}))
	assert.Equal(t, "42", ResolveLabel([]goja.Value{rt.ToValue(42)}))
	// extra arguments are ignored
	assert.Equal(t, "a", ResolveLabel([]goja.Value{rt.ToValue("a"), rt.ToValue("b")}))
}

func TestStateCounting(t *testing.T) {
	t.Parallel()
	s := NewState()

	assert.Equal(t, 1, s.BumpCount("a"))
	assert.Equal(t, 2, s.BumpCount("a"))
	assert.Equal(t, 1, s.BumpCount("b"))

	// countReset never creates entries
	assert.False(t, s.ResetCount("missing"))
	require.True(t, s.ResetCount("a"))
	assert.Equal(t, 1, s.BumpCount("a"))
}

func TestStateTiming(t *testing.T) {
	t.Parallel()
	s := NewState()

	require.True(t, s.StartTimer("a", 100))
	// a second start with the same label leaves the original start in place
	assert.False(t, s.StartTimer("a", 200))

	startMs, ok := s.TimerStart("a")
	require.True(t, ok)
	assert.Equal(t, float64(100), startMs)

	startMs, ok = s.StopTimer("a")
	require.True(t, ok)
	assert.Equal(t, float64(100), startMs)

	_, ok = s.StopTimer("a")
	assert.False(t, ok)
	_, ok = s.TimerStart("a")
	assert.False(t, ok)
}
