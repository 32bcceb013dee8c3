package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

func TestOptionsApply(t *testing.T) {
	t.Parallel()

	base := Options{
		LogLevel: null.StringFrom("info"),
		Quiet:    null.BoolFrom(false),
	}
	result := base.Apply(Options{
		LogLevel: null.StringFrom("debug"),
		NoColor:  null.BoolFrom(true),
	})

	assert.Equal(t, "debug", result.LogLevel.String)
	assert.True(t, result.NoColor.Bool)
	// unset fields in the overlay leave the base untouched
	assert.True(t, result.Quiet.Valid)
	assert.False(t, result.Quiet.Bool)
	assert.False(t, result.LogOutput.Valid)
}

func TestOptionsFromEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"CONSOLEHOOK_LOG_LEVEL": "warning",
		"CONSOLEHOOK_QUIET":     "true",
	}
	opts, err := OptionsFromEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	require.NoError(t, err)

	assert.Equal(t, null.StringFrom("warning"), opts.LogLevel)
	assert.Equal(t, null.BoolFrom(true), opts.Quiet)
	assert.False(t, opts.NoColor.Valid)
	assert.False(t, opts.LogOutput.Valid)
}
