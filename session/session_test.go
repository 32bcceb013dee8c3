package session

import (
	"sync"
	"testing"
	"time"

	"github.com/dop251/goja"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consolehook/consolehook/console"
)

type syncDelegate struct {
	mu       sync.Mutex
	messages []console.Message
}

func (d *syncDelegate) AddConsoleMessage(msg console.Message) {
	d.mu.Lock()
	d.messages = append(d.messages, msg)
	d.mu.Unlock()
}

func (d *syncDelegate) all() []console.Message {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]console.Message(nil), d.messages...)
}

func TestSessionDeliversConsoleMessages(t *testing.T) {
	t.Parallel()
	logger, _ := test.NewNullLogger()
	delegate := &syncDelegate{}
	sess := New(logger, delegate)
	defer sess.Close()

	rt := goja.New()
	require.NoError(t, sess.RegisterRuntime(rt))

	_, err := rt.RunString(`console.log("hello", 42); console.warn("w")`)
	require.NoError(t, err)

	msgs := delegate.all()
	require.Len(t, msgs, 2)
	assert.Equal(t, console.KindLog, msgs[0].Kind)
	assert.Equal(t, "hello", msgs[0].Args[0].Export())
	assert.Equal(t, int64(42), msgs[0].Args[1].Export())
	assert.Equal(t, console.KindWarning, msgs[1].Kind)
}

func TestSessionSubmitRunsOnOwnGoroutine(t *testing.T) {
	t.Parallel()
	logger, _ := test.NewNullLogger()
	sess := New(logger, &syncDelegate{})
	defer sess.Close()

	ran := make(chan struct{})
	sess.Submit(func() { close(ran) })
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("submitted task never ran")
	}
}

func TestSessionCloseStopsDelivery(t *testing.T) {
	t.Parallel()
	logger, _ := test.NewNullLogger()
	delegate := &syncDelegate{}
	sess := New(logger, delegate)

	rt := goja.New()
	require.NoError(t, sess.RegisterRuntime(rt))
	sess.Close()

	// the script keeps running, the hooks just go quiet
	v, err := rt.RunString(`console.log("late"); "ok"`)
	require.NoError(t, err)
	assert.Equal(t, "ok", v.Export())
	assert.Empty(t, delegate.all())
}

func TestSessionSubmitAfterCloseRunsInline(t *testing.T) {
	t.Parallel()
	logger, _ := test.NewNullLogger()
	sess := New(logger, &syncDelegate{})
	sess.Close()

	var ran bool
	sess.Submit(func() { ran = true })
	assert.True(t, ran)
}

func TestSessionCloseIsIdempotent(t *testing.T) {
	t.Parallel()
	logger, _ := test.NewNullLogger()
	sess := New(logger, &syncDelegate{})
	sess.Close()
	sess.Close()
}
