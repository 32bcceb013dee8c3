// Package cmd implements the consolehook command line interface.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/guregu/null.v3"

	"github.com/consolehook/consolehook/log"
	"github.com/consolehook/consolehook/lib"
)

// globalState bundles everything the commands touch in the environment, so
// tests can swap in an in-memory filesystem and buffers for the real thing.
type globalState struct {
	ctx    context.Context
	args   []string
	env    func(key string) (string, bool)
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
	logger *logrus.Logger
}

func newGlobalState(ctx context.Context) *globalState {
	logger := &logrus.Logger{
		Out:       os.Stderr,
		Formatter: &logrus.TextFormatter{},
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.InfoLevel,
	}
	return &globalState{
		ctx:    ctx,
		args:   os.Args[1:],
		env:    os.LookupEnv,
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: logger,
	}
}

type rootCommand struct {
	gs   *globalState
	cmd  *cobra.Command
	opts lib.Options
}

func newRootCommand(gs *globalState) *rootCommand {
	c := &rootCommand{gs: gs}

	rootCmd := &cobra.Command{
		Use:               "consolehook",
		Short:             "Run JavaScript with its console API intercepted and streamed back to you",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	rootCmd.PersistentFlags().AddFlagSet(rootCmdPersistentFlagSet())
	rootCmd.AddCommand(getCmdRun(c))

	rootCmd.SetArgs(gs.args)
	rootCmd.SetOut(gs.stdout)
	rootCmd.SetErr(gs.stderr)

	c.cmd = rootCmd
	return c
}

func rootCmdPersistentFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.String("log-level", "info", "minimum level for consolehook's own logs")
	flags.String("log-output", "", "additional log sink (file=path[,level=levelname])")
	flags.Bool("no-color", false, "disable colored output")
	flags.BoolP("quiet", "q", false, "do not print captured console messages")
	return flags
}

// persistentPreRunE consolidates options (flags over environment over
// defaults) and configures the logger accordingly.
func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, _ []string) error {
	envOpts, err := lib.OptionsFromEnv(c.gs.env)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	flagOpts := lib.Options{}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		flagOpts.LogLevel = null.StringFrom(v)
	}
	if flags.Changed("log-output") {
		v, _ := flags.GetString("log-output")
		flagOpts.LogOutput = null.StringFrom(v)
	}
	if flags.Changed("no-color") {
		v, _ := flags.GetBool("no-color")
		flagOpts.NoColor = null.BoolFrom(v)
	}
	if flags.Changed("quiet") {
		v, _ := flags.GetBool("quiet")
		flagOpts.Quiet = null.BoolFrom(v)
	}
	c.opts = envOpts.Apply(flagOpts)

	if c.opts.LogLevel.Valid {
		lvl, err := logrus.ParseLevel(c.opts.LogLevel.String)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		c.gs.logger.SetLevel(lvl)
	}
	if c.opts.LogOutput.Valid && c.opts.LogOutput.String != "" {
		hook, err := log.FileHookFromConfigLine(c.gs.ctx, c.gs.logger, c.opts.LogOutput.String)
		if err != nil {
			return fmt.Errorf("could not create log output: %w", err)
		}
		c.gs.logger.AddHook(hook)
	}

	return nil
}

// Execute parses the command line and runs the selected command. It is
// called by main.main() and returns the process exit code.
func Execute() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gs := newGlobalState(ctx)
	if err := newRootCommand(gs).cmd.Execute(); err != nil {
		gs.logger.Error(err.Error())
		return 1
	}
	return 0
}
