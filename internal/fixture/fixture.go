package fixture

import (
	"fmt"
	"os"
	"path/filepath"
)

// File represents a single sample file to be written into a workspace.
type File struct {
	Name        string
	Content     []byte
	Permissions os.FileMode
}

// All returns the full fixture set in creation order.
func All() []File {
	return []File{
		{Name: "example.py", Content: []byte(pythonSource), Permissions: 0644},
		{Name: "example.rs", Content: []byte(rustSource), Permissions: 0644},
		{Name: "config.json", Content: []byte(readerConfigJSON), Permissions: 0644},
		{Name: "diagram.svg", Content: []byte(svgDiagram), Permissions: 0644},
		{Name: "analysis.ipynb", Content: []byte(notebookJSON), Permissions: 0644},
		{Name: "notes.md", Content: []byte(markdownNotes), Permissions: 0644},
	}
}

// Names returns the filenames of the full fixture set.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, f := range all {
		names[i] = f.Name
	}
	return names
}

// Named returns the fixtures matching the given filenames, preserving
// creation order. An empty or nil list selects the full set. Unknown
// names are an error.
func Named(names []string) ([]File, error) {
	all := All()
	if len(names) == 0 {
		return all, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	var files []File
	for _, f := range all {
		if wanted[f.Name] {
			files = append(files, f)
			delete(wanted, f.Name)
		}
	}

	for name := range wanted {
		return nil, fmt.Errorf("unknown fixture %q", name)
	}

	return files, nil
}

// WriteAll writes each fixture into dir, overwriting any existing file
// of the same name. A failed write aborts immediately; earlier files
// are left behind.
func WriteAll(dir string, files []File) error {
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, f.Content, f.Permissions); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	return nil
}
