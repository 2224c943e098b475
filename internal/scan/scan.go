// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan enumerates PDF files under a folder tree.
// Implements: docs/ARCHITECTURE § Folder Scan.
package scan

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/pdfdesk/internal/pdfdoc"
)

// Entry is one discovered PDF file.
type Entry struct {
	Path  string
	Pages int
}

// PDFs walks the tree rooted at root and returns every .pdf file path in
// sorted order. The extension check is case-insensitive. Unreadable
// subdirectories abort the walk with an error; the caller decides whether a
// partial listing is acceptable.
func PDFs(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// Enrich opens each path to attach its page count. Files that do not parse
// as PDFs are reported on w and omitted from the result.
func Enrich(lib pdfdoc.Library, paths []string, w io.Writer) []Entry {
	entries := make([]Entry, 0, len(paths))
	for _, path := range paths {
		doc, err := lib.Open(path)
		if err != nil {
			fmt.Fprintf(w, "skipped: %s (%v)\n", path, err)
			continue
		}
		entries = append(entries, Entry{Path: path, Pages: doc.PageCount()})
		doc.Close()
	}
	return entries
}
