package fixture

// Notebook models the nbformat 4 document structure of the notebook
// fixture. Used by Validate and by consumers that want to inspect the
// generated cells without hand-parsing JSON.
type Notebook struct {
	Cells         []NotebookCell   `json:"cells"`
	Metadata      NotebookMetadata `json:"metadata"`
	NBFormat      int              `json:"nbformat"`
	NBFormatMinor int              `json:"nbformat_minor"`
}

// NotebookCell is a single notebook cell, either narrative ("markdown")
// or executable ("code"). Only code cells carry outputs.
type NotebookCell struct {
	CellType       string           `json:"cell_type"`
	ExecutionCount *int             `json:"execution_count,omitempty"`
	Outputs        []NotebookOutput `json:"outputs,omitempty"`
	Source         []string         `json:"source"`
}

// NotebookOutput is one recorded output of a code cell.
type NotebookOutput struct {
	Name       string   `json:"name,omitempty"`
	OutputType string   `json:"output_type"`
	Text       []string `json:"text,omitempty"`
}

// NotebookMetadata holds the kernel and language descriptors.
type NotebookMetadata struct {
	KernelSpec struct {
		DisplayName string `json:"display_name"`
		Language    string `json:"language"`
		Name        string `json:"name"`
	} `json:"kernelspec"`
	LanguageInfo struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"language_info"`
}

// ReaderConfig models the structured configuration fixture consumed by
// the external read tool.
type ReaderConfig struct {
	AppName          string          `json:"app_name"`
	Version          string          `json:"version"`
	Features         map[string]bool `json:"features"`
	SupportedFormats []string        `json:"supported_formats"`
}
