package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
)

// requireExtension rejects unsupported input files before any work is done.
// The check is case-insensitive.
func requireExtension(path, ext string) error {
	actual := strings.ToLower(filepath.Ext(path))
	if actual != ext {
		return fmt.Errorf("unsupported file type %q: only %s files are supported", actual, ext)
	}
	return nil
}

// outputName derives a default output file name from the input's base name,
// swapping the extension. The file lands in the current directory.
func outputName(path, ext string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}
