package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParse_FullConfig(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
default = true

module "viewersync" {
  enabled = false
}

module "keying" {
  enabled = true
}
`

	// --- Act ---
	act, err := Parse([]byte(src), "test.hcl")

	// --- Assert ---
	require.NoError(t, err)
	want := Activation{
		Default: true,
		Modules: map[string]bool{"viewersync": false, "keying": true},
	}
	require.Empty(t, cmp.Diff(want, act))
}

func TestParse_DefaultOmittedMeansTrue(t *testing.T) {
	t.Parallel()

	act, err := Parse([]byte(`module "keying" { enabled = false }`), "test.hcl")
	require.NoError(t, err)
	require.True(t, act.Default, "an absent default must fall back to true")
}

func TestParse_DefaultFalse(t *testing.T) {
	t.Parallel()

	act, err := Parse([]byte(`default = false`), "test.hcl")
	require.NoError(t, err)
	require.False(t, act.Default)
	require.False(t, act.Enabled("anything"))
}

func TestParse_NonBoolEnabledIsFatal(t *testing.T) {
	t.Parallel()

	src := `
module "keying" {
  enabled = "yes"
}
`
	_, err := Parse([]byte(src), "test.hcl")
	require.Error(t, err, "a non-bool enabled value is malformed config")
	require.Contains(t, err.Error(), "must be a bool")
	require.Contains(t, err.Error(), `module "keying"`)
}

func TestParse_NonBoolDefaultIsFatal(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`default = 1`), "test.hcl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be a bool")
}

func TestParse_DuplicateModuleBlockIsFatal(t *testing.T) {
	t.Parallel()

	src := `
module "keying" { enabled = true }
module "keying" { enabled = false }
`
	_, err := Parse([]byte(src), "test.hcl")
	require.Error(t, err)
	require.Contains(t, err.Error(), `module "keying" configured twice`)
}

func TestParse_SyntaxErrorIsFatal(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`module "keying" {`), "broken.hcl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken.hcl")
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	path := filepath.Join(dir, "thorium.hcl")
	err := os.WriteFile(path, []byte(`module "iconpanel" { enabled = false }`), 0o600)
	require.NoError(t, err)

	// --- Act ---
	act, err := LoadFile(path)

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, act.Enabled("iconpanel"))
	require.True(t, act.Enabled("keying"), "unlisted modules follow the default")
}

func TestLoadFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}

func TestActivation_Enabled(t *testing.T) {
	t.Parallel()

	act := Activation{Default: true, Modules: map[string]bool{"keying": false}}
	require.False(t, act.Enabled("keying"), "an explicit false beats the default")
	require.True(t, act.Enabled("viewersync"))

	act = Activation{Default: false, Modules: map[string]bool{"keying": true}}
	require.True(t, act.Enabled("keying"), "an explicit true beats a false default")
	require.False(t, act.Enabled("viewersync"))
}
