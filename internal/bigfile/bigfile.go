// Package bigfile lists regular files above a size threshold in a
// single directory, without descending into subdirectories.
package bigfile

import (
	"fmt"
	"os"
)

// List returns the names of regular files in dir strictly larger than
// minSize bytes, sorted by name. Subdirectories, symlinks, and other
// non-regular entries are skipped.
func List(dir string, minSize int64) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Entry vanished between ReadDir and Info.
			continue
		}
		if info.Size() > minSize {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
