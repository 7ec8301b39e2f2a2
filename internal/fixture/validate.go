package fixture

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Validate re-reads the written fixtures and checks that each structured
// one is valid in its own format: the JSON fixtures must parse and the
// SVG must be well-formed XML. Plain-text fixtures are accepted as-is.
func Validate(dir string, files []File) error {
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read created %s: %w", f.Name, err)
		}

		switch {
		case f.Name == "config.json":
			var cfg ReaderConfig
			if err := json.Unmarshal(content, &cfg); err != nil {
				return fmt.Errorf("created %s is not valid JSON: %w", f.Name, err)
			}
		case f.Name == "analysis.ipynb":
			var nb Notebook
			if err := json.Unmarshal(content, &nb); err != nil {
				return fmt.Errorf("created %s is not a valid notebook: %w", f.Name, err)
			}
			if nb.NBFormat != 4 {
				return fmt.Errorf("created %s has unexpected nbformat %d", f.Name, nb.NBFormat)
			}
		case strings.HasSuffix(f.Name, ".svg"):
			if err := checkWellFormedXML(content); err != nil {
				return fmt.Errorf("created %s is not well-formed: %w", f.Name, err)
			}
		}
	}

	return nil
}

// checkWellFormedXML walks the full token stream so unbalanced or
// malformed markup is reported even deep inside the document.
func checkWellFormedXML(content []byte) error {
	decoder := xml.NewDecoder(bytes.NewReader(content))
	for {
		_, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
