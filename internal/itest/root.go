//go:build integration

package itest

import (
	"errors"
	"os"
	"path/filepath"
)

// findModuleRoot walks up from the working directory to the directory
// holding go.mod, so the CLI can be run from anywhere inside the tree.
func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("no go.mod above the working directory")
		}
		dir = parent
	}
}
