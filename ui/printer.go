// Package ui renders captured console messages to a terminal, with per-kind
// colors when the output supports them.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/consolehook/consolehook/console"
	"github.com/consolehook/consolehook/event"
)

// Printer writes one line per captured console message. Writes are synced
// with a mutex so a printer can be shared between goroutines.
type Printer struct {
	outMx sync.Mutex
	out   io.Writer
	theme map[console.Kind]*color.Color
}

// New returns a Printer for out. Colors are only enabled when colorize is
// set and out is a TTY (interactive terminal).
func New(out *os.File, colorize bool) *Printer {
	isTTY := isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	if !isTTY || !colorize {
		return &Printer{out: out}
	}
	return &Printer{
		out:   colorable.NewColorable(out),
		theme: newTheme(),
	}
}

// NewTo returns an uncolored Printer writing to w.
func NewTo(w io.Writer) *Printer {
	return &Printer{out: w}
}

// Print renders msg as "[kind] arg1 arg2 ...".
func (p *Printer) Print(msg event.ConsoleMessage) {
	tag := string(msg.Kind)
	if c, ok := p.theme[msg.Kind]; ok {
		tag = c.Sprint(tag)
	}

	p.outMx.Lock()
	defer p.outMx.Unlock()
	if _, err := fmt.Fprintf(p.out, "[%s] %s\n", tag, strings.Join(msg.Args, " ")); err != nil {
		fmt.Fprintf(os.Stderr, "could not print console message: %s\n", err.Error())
	}
}

func newTheme() map[console.Kind]*color.Color {
	return map[console.Kind]*color.Color{
		console.KindError:   newColor(color.FgRed),
		console.KindAssert:  newColor(color.FgRed),
		console.KindWarning: newColor(color.FgYellow),
		console.KindDebug:   newColor(color.FgHiBlack),
		console.KindTrace:   newColor(color.FgHiBlack),
		console.KindCount:   newColor(color.FgCyan),
		console.KindTimeEnd: newColor(color.FgCyan),
	}
}

// newColor returns the requested color with the given attributes.
func newColor(attributes ...color.Attribute) *color.Color {
	c := color.New(attributes...)
	c.EnableColor()
	return c
}
