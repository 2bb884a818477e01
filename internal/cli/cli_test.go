package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	appConfig, shouldExit, err := Parse(nil, out)

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Empty(t, appConfig.ConfigPath)
	require.False(t, appConfig.GUI)
	require.Equal(t, "text", appConfig.LogFormat)
	require.Equal(t, "info", appConfig.LogLevel)
	require.Equal(t, "Thorium", appConfig.MenuName)
}

func TestParse_ConfigPathPrecedence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"positional argument", []string{"pos.hcl"}, "pos.hcl"},
		{"shorthand flag", []string{"-c", "short.hcl", "pos.hcl"}, "short.hcl"},
		{"config flag wins", []string{"-config", "long.hcl", "-c", "short.hcl", "pos.hcl"}, "long.hcl"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			appConfig, _, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			require.Equal(t, tc.want, appConfig.ConfigPath)
		})
	}
}

func TestParse_EnvPathOverriddenByArgs(t *testing.T) {
	// t.Setenv is incompatible with t.Parallel.
	t.Setenv("THORIUM_CONFIG", "env.hcl")

	appConfig, _, err := Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "env.hcl", appConfig.ConfigPath)

	appConfig, _, err = Parse([]string{"arg.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "arg.hcl", appConfig.ConfigPath, "arguments beat the environment")
}

func TestParse_GUIAndLoggingFlags(t *testing.T) {
	t.Parallel()

	appConfig, _, err := Parse(
		[]string{"-gui", "-log-format", "JSON", "-log-level", "Debug"},
		&bytes.Buffer{})

	require.NoError(t, err)
	require.True(t, appConfig.GUI)
	require.Equal(t, "json", appConfig.LogFormat, "format is normalized to lowercase")
	require.Equal(t, "debug", appConfig.LogLevel)
}

func TestParse_InvalidLogFormat(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"-log-format", "xml"}, &bytes.Buffer{})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "invalid log-format")
}

func TestParse_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"-log-level", "verbose"}, &bytes.Buffer{})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "invalid log-level")
}

func TestParse_HelpRequestsExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	appConfig, shouldExit, err := Parse([]string{"-h"}, out)

	// --- Assert ---
	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, appConfig)
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "CONFIG_PATH")
}
