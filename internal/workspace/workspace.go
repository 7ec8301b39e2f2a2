package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
)

// Create makes a fresh, uniquely-named workspace directory under parent.
// An empty parent selects the platform temp directory. The directory is
// never removed by this program; the generated files are meant to be
// inspected afterwards by an external tool.
func Create(parent string) (string, error) {
	if parent == "" {
		parent = os.TempDir()
	}

	dir := filepath.Join(parent, fmt.Sprintf("readprobe-%s", uuid.New().String()))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create workspace directory %s: %w", dir, err)
	}

	return dir, nil
}

// Entry is one file in a workspace listing.
type Entry struct {
	Name string
	Size int64
}

// List returns the files directly inside dir, sorted by name ascending,
// with sizes taken from filesystem metadata.
func List(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace %s: %w", dir, err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", de.Name(), err)
		}
		entries = append(entries, Entry{Name: de.Name(), Size: info.Size()})
	}

	// os.ReadDir already sorts by filename, but the listing contract is
	// lexicographic ascending, so keep it explicit.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// Report writes the sorted name/size listing for dir to w.
func Report(w io.Writer, dir string) error {
	entries, err := List(dir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Fprintf(w, "  - %s (%d bytes)\n", e.Name, e.Size)
	}

	return nil
}
