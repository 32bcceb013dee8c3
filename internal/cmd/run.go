package cmd

import (
	"fmt"
	"os"

	"github.com/dop251/goja"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/consolehook/consolehook/event"
	"github.com/consolehook/consolehook/session"
	"github.com/consolehook/consolehook/ui"
)

// eventBufferSize is the subscriber channel buffer; messages beyond it are
// dropped rather than blocking the script.
const eventBufferSize = 100

type cmdRun struct {
	root *rootCommand
	gs   *globalState
}

func getCmdRun(root *rootCommand) *cobra.Command {
	c := &cmdRun{root: root, gs: root.gs}
	return &cobra.Command{
		Use:   "run <script.js>",
		Short: "Run a script with console interception installed",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}
}

func (c *cmdRun) run(_ *cobra.Command, args []string) error {
	path := args[0]
	src, err := afero.ReadFile(c.gs.fs, path)
	if err != nil {
		return fmt.Errorf("could not read script %s: %w", path, err)
	}

	events := event.NewSystem(eventBufferSize, c.gs.logger)
	subID, evtCh := events.Subscribe(event.ConsoleAPICalled)

	printer := c.printer()
	quiet := c.root.opts.Quiet.Bool
	printerDone := make(chan struct{})
	go func() {
		defer close(printerDone)
		for evt := range evtCh {
			msg, ok := evt.Data.(event.ConsoleMessage)
			if !ok {
				continue
			}
			if !quiet {
				printer.Print(msg)
			}
		}
	}()

	sess := session.New(c.gs.logger, event.NewConsoleSink(events))
	rt := goja.New()
	if err := sess.RegisterRuntime(rt); err != nil {
		sess.Close()
		return fmt.Errorf("could not install the console interceptor: %w", err)
	}
	events.Emit(&event.Event{Type: event.SessionAttached})

	_, runErr := rt.RunScript(path, string(src))

	sess.Close()
	events.Emit(&event.Event{Type: event.SessionDetached})
	events.Unsubscribe(subID)
	<-printerDone

	if runErr != nil {
		return fmt.Errorf("script error: %w", runErr)
	}
	return nil
}

func (c *cmdRun) printer() *ui.Printer {
	colorize := !c.root.opts.NoColor.Bool
	if f, ok := c.gs.stdout.(*os.File); ok {
		return ui.New(f, colorize)
	}
	return ui.NewTo(c.gs.stdout)
}
