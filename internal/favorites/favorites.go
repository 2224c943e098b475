// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package favorites persists the pinned-folder list as a small JSON file.
// Implements: docs/ARCHITECTURE § Favorites.
//
// The load path is forgiving: a missing or unparsable file yields an empty
// list (with a warning for the unparsable case) so a damaged favorites file
// never blocks the tool.
package favorites

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
)

// List is the pinned-folder collection bound to its backing file.
type List struct {
	path string

	// Folders are the pinned folder paths in pin order.
	Folders []string `json:"folders"`
}

// Load reads the favorites file at path. A missing file yields an empty
// list; an unreadable or unparsable file yields an empty list and a warning
// on w.
func Load(path string, w io.Writer) *List {
	l := &List{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(w, "warning: could not read favorites %s: %v\n", path, err)
		}
		return l
	}
	if err := json.Unmarshal(data, l); err != nil {
		fmt.Fprintf(w, "warning: favorites file %s is damaged, starting empty: %v\n", path, err)
		l.Folders = nil
	}
	return l
}

// Add pins folder, reporting whether it was newly added.
func (l *List) Add(folder string) bool {
	if slices.Contains(l.Folders, folder) {
		return false
	}
	l.Folders = append(l.Folders, folder)
	return true
}

// Remove unpins folder, reporting whether it was present.
func (l *List) Remove(folder string) bool {
	i := slices.Index(l.Folders, folder)
	if i < 0 {
		return false
	}
	l.Folders = slices.Delete(l.Folders, i, i+1)
	return true
}

// Save writes the list back to its file via a temporary file and rename, so
// a crash mid-write never leaves a truncated favorites file.
func (l *List) Save() error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling favorites: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".favorites-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing favorites: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, l.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
