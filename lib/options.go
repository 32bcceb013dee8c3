// Package lib holds option types shared between the CLI and embedders.
package lib

import (
	"github.com/mstoykov/envconfig"
	"gopkg.in/guregu/null.v3"
)

// Options configures a consolehook invocation. Unset fields keep their
// defaults; Apply implements the flags-over-environment precedence.
type Options struct {
	// Minimum level for consolehook's own logs.
	LogLevel null.String `json:"logLevel" envconfig:"CONSOLEHOOK_LOG_LEVEL"`
	// Extra log sink in the form `file=path[,level=levelname]`.
	LogOutput null.String `json:"logOutput" envconfig:"CONSOLEHOOK_LOG_OUTPUT"`
	// Disable colored output even on a TTY.
	NoColor null.Bool `json:"noColor" envconfig:"CONSOLEHOOK_NO_COLOR"`
	// Suppress printing of captured console messages.
	Quiet null.Bool `json:"quiet" envconfig:"CONSOLEHOOK_QUIET"`
}

// Apply overlays every set field of other onto o and returns the result.
func (o Options) Apply(other Options) Options {
	if other.LogLevel.Valid {
		o.LogLevel = other.LogLevel
	}
	if other.LogOutput.Valid {
		o.LogOutput = other.LogOutput
	}
	if other.NoColor.Valid {
		o.NoColor = other.NoColor
	}
	if other.Quiet.Valid {
		o.Quiet = other.Quiet
	}
	return o
}

// OptionsFromEnv builds Options from the process environment via lookup,
// typically os.LookupEnv.
func OptionsFromEnv(lookup func(key string) (string, bool)) (Options, error) {
	opts := Options{}
	if err := envconfig.Process("", &opts, lookup); err != nil {
		return opts, err
	}
	return opts, nil
}
