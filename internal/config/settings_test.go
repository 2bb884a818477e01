package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings()
	require.NoError(t, err)
	require.Equal(t, "info", s.LogLevel)
	require.Equal(t, "text", s.LogFormat)
	require.Equal(t, "Thorium", s.MenuName)
}

func TestLoadSettings_FromEnvironment(t *testing.T) {
	t.Setenv("THORIUM_LOG_LEVEL", "debug")
	t.Setenv("THORIUM_CONFIG", "/etc/thorium.hcl")
	t.Setenv("THORIUM_ICON_PATH", "/opt/icons:/home/comp/icons")

	s, err := LoadSettings()
	require.NoError(t, err)
	require.Equal(t, "debug", s.LogLevel)
	require.Equal(t, "/etc/thorium.hcl", s.ConfigPath)
	require.Equal(t, []string{"/opt/icons", "/home/comp/icons"}, s.IconPath)
}
