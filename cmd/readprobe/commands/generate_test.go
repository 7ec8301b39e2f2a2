package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asterlab/readprobe/internal/fixture"
)

func TestRunGenerate(t *testing.T) {
	parent := t.TempDir()
	generateDir = parent
	defer func() { generateDir = "" }()

	require.NoError(t, runGenerate(generateCmd, nil))

	// Exactly one workspace appears under the parent.
	entries, err := os.ReadDir(parent)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.True(t, entries[0].IsDir())

	dir := filepath.Join(parent, entries[0].Name())
	for _, name := range fixture.Names() {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "fixture %s missing", name)
		assert.Greater(t, info.Size(), int64(0))
	}

	created, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, created, len(fixture.Names()))
}

func TestRunListRejectsMissingWorkspace(t *testing.T) {
	err := runList(listCmd, []string{filepath.Join(t.TempDir(), "gone")})
	require.Error(t, err)
}
