package weakref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualExecutor struct {
	tasks []func()
}

func (e *manualExecutor) Submit(task func()) {
	e.tasks = append(e.tasks, task)
}

func (e *manualExecutor) drain() {
	for _, task := range e.tasks {
		task()
	}
	e.tasks = nil
}

func TestUpgradeWhileAlive(t *testing.T) {
	t.Parallel()
	root, weak := New("v", nil)

	strong, ok := weak.Upgrade()
	require.True(t, ok)
	assert.Equal(t, "v", strong.Value())
	strong.Release()

	root.Release()
	_, ok = weak.Upgrade()
	assert.False(t, ok)
}

func TestStrongRefExtendsLifetime(t *testing.T) {
	t.Parallel()
	var finalized int
	root, weak := New("v", func(string) { finalized++ })

	strong, ok := weak.Upgrade()
	require.True(t, ok)

	// the root going away does not kill the value while a strong ref exists
	root.Release()
	assert.Equal(t, 0, finalized)

	again, ok := weak.Upgrade()
	require.True(t, ok)
	again.Release()
	assert.Equal(t, 0, finalized)

	strong.Release()
	assert.Equal(t, 1, finalized)

	_, ok = weak.Upgrade()
	assert.False(t, ok)
}

func TestReleaseOnConfinesFinalization(t *testing.T) {
	t.Parallel()
	ex := &manualExecutor{}
	var finalized int
	root, weak := New("v", func(string) { finalized++ })

	strong, ok := weak.Upgrade()
	require.True(t, ok)
	root.Release()

	// handing the reference off must not finalize on this side
	strong.ReleaseOn(ex)
	assert.Equal(t, 0, finalized)
	require.Len(t, ex.tasks, 1)

	// only the executor's side does
	ex.drain()
	assert.Equal(t, 1, finalized)
}
