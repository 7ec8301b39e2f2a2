package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "readprobe.yml"))
		require.NoError(t, err)
		assert.Empty(t, cfg.OutputDir)
		assert.Empty(t, cfg.Fixtures)
	})

	t.Run("valid file is parsed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "readprobe.yml")
		content := `output_dir: /srv/probes
fixtures:
  - example.py
  - analysis.ipynb
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/srv/probes", cfg.OutputDir)
		assert.Equal(t, []string{"example.py", "analysis.ipynb"}, cfg.Fixtures)
	})

	t.Run("unknown fixture name is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "readprobe.yml")
		require.NoError(t, os.WriteFile(path, []byte("fixtures: [nope.bin]\n"), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope.bin")
	})

	t.Run("malformed YAML is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "readprobe.yml")
		require.NoError(t, os.WriteFile(path, []byte(":\n  - not yaml"), 0644))

		_, err := Load(path)
		require.Error(t, err)
	})
}
