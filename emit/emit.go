package emit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Torimune29/cppcodegen/manifest"
)

// ErrNoOutputPath is returned by Generate when the manifest does not name an
// output file.
var ErrNoOutputPath = errors.New("manifest has no output path")

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Generate loads the manifest at manifestPath, renders it, and writes the
// result to the output path the manifest names. Relative output paths
// resolve against the manifest's directory. It returns the resolved output
// path and the rendered content.
func Generate(manifestPath string) (string, string, error) {
	doc, err := manifest.Load(manifestPath)
	if err != nil {
		return "", "", err
	}
	if doc.Path == "" {
		return "", "", ErrNoOutputPath
	}

	content, err := doc.Render()
	if err != nil {
		return "", "", err
	}

	out := doc.Path
	if !filepath.IsAbs(out) {
		out = filepath.Join(filepath.Dir(manifestPath), out)
	}
	if err := WriteFile(out, content); err != nil {
		return "", "", err
	}
	return out, content, nil
}
