package spyce

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfgLoaded = false
	t.Setenv("SPYCE_CONFIG", t.TempDir())
	cfg := LoadConfig()
	require.Equal(t, ".", cfg.OutputDir)
	require.Equal(t, "", cfg.SystemsDir)
	require.Equal(t, "kerbol", cfg.DefaultSystem)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	toml := `[general]
output_path = "/somewhere/out"

[systems]
directory = "/somewhere/systems"
default = "solar"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spyce.toml"), []byte(toml), 0o644))
	cfgLoaded = false
	t.Setenv("SPYCE_CONFIG", dir)
	cfg := LoadConfig()
	require.Equal(t, "/somewhere/out", cfg.OutputDir)
	require.Equal(t, "/somewhere/systems", cfg.SystemsDir)
	require.Equal(t, "solar", cfg.DefaultSystem)

	// Later calls return the cached copy without re-reading the file.
	config.DefaultSystem = "changed"
	require.Equal(t, "changed", LoadConfig().DefaultSystem)
	cfgLoaded = false
}
