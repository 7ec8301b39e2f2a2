package fixture

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderConfigFixture(t *testing.T) {
	var cfg ReaderConfig
	require.NoError(t, json.Unmarshal([]byte(readerConfigJSON), &cfg))

	// Exactly the four analysis feature flags, all enabled.
	assert.Len(t, cfg.Features, 4)
	for _, flag := range []string{"image_analysis", "pdf_processing", "svg_rendering", "notebook_analysis"} {
		assert.True(t, cfg.Features[flag], "feature %s should be enabled", flag)
	}

	for _, format := range []string{"png", "pdf", "svg", "ipynb"} {
		assert.Contains(t, cfg.SupportedFormats, format)
	}

	assert.NotEmpty(t, cfg.AppName)
	assert.NotEmpty(t, cfg.Version)
}

func TestNotebookFixture(t *testing.T) {
	var nb Notebook
	require.NoError(t, json.Unmarshal([]byte(notebookJSON), &nb))

	assert.Equal(t, 4, nb.NBFormat)
	require.Len(t, nb.Cells, 3)

	// Narrative cell first, then two executable cells.
	assert.Equal(t, "markdown", nb.Cells[0].CellType)
	assert.Equal(t, "code", nb.Cells[1].CellType)
	assert.Equal(t, "code", nb.Cells[2].CellType)

	// First code cell carries recorded stdout; the second ran unrecorded.
	require.Len(t, nb.Cells[1].Outputs, 1)
	assert.Equal(t, "stream", nb.Cells[1].Outputs[0].OutputType)
	assert.Equal(t, "stdout", nb.Cells[1].Outputs[0].Name)
	assert.NotEmpty(t, nb.Cells[1].Outputs[0].Text)
	assert.Empty(t, nb.Cells[2].Outputs)

	require.NotNil(t, nb.Cells[1].ExecutionCount)
	assert.Equal(t, 1, *nb.Cells[1].ExecutionCount)

	assert.Equal(t, "python", nb.Metadata.LanguageInfo.Name)
}
