package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consolehook/consolehook/console"
	"github.com/consolehook/consolehook/event"
)

func TestPrinterPrint(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p := NewTo(&buf)

	p.Print(event.ConsoleMessage{Kind: console.KindLog, Args: []string{"a", "1"}})
	p.Print(event.ConsoleMessage{Kind: console.KindWarning, Args: []string{"careful"}})
	p.Print(event.ConsoleMessage{Kind: console.KindClear})

	assert.Equal(t, "[log] a 1\n[warning] careful\n[clear] \n", buf.String())
}

func TestPrinterColoredTag(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p := &Printer{out: &buf, theme: newTheme()}

	p.Print(event.ConsoleMessage{Kind: console.KindError, Args: []string{"boom"}})

	out := buf.String()
	assert.Contains(t, out, "\x1b[31m")
	assert.Contains(t, out, "error")
	assert.Contains(t, out, "boom")
}
