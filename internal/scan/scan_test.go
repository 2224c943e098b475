// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdfdesk/internal/pdfdoc"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestPDFsWalksTree(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.pdf"))
	touch(t, filepath.Join(root, "a.PDF"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "sub", "c.pdf"))
	touch(t, filepath.Join(root, "sub", "image.png"))

	paths, err := PDFs(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.PDF"),
		filepath.Join(root, "b.pdf"),
		filepath.Join(root, "sub", "c.pdf"),
	}, paths)
}

func TestPDFsEmptyTree(t *testing.T) {
	paths, err := PDFs(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestPDFsMissingRoot(t *testing.T) {
	_, err := PDFs(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

// fakeLibrary reports fixed page counts without parsing anything.
type fakeLibrary struct {
	pages map[string]int
}

func (f fakeLibrary) Open(path string) (pdfdoc.Document, error) {
	n, ok := f.pages[path]
	if !ok {
		return nil, errors.New("parsing " + path + ": not a pdf")
	}
	return fakeDoc{path: path, pages: n}, nil
}

func (fakeLibrary) NewOutput() pdfdoc.Output { return nil }

type fakeDoc struct {
	path  string
	pages int
}

func (d fakeDoc) Path() string   { return d.path }
func (d fakeDoc) PageCount() int { return d.pages }
func (fakeDoc) Close() error     { return nil }

func TestEnrich(t *testing.T) {
	lib := fakeLibrary{pages: map[string]int{"a.pdf": 4, "c.pdf": 1}}

	var w bytes.Buffer
	entries := Enrich(lib, []string{"a.pdf", "broken.pdf", "c.pdf"}, &w)

	assert.Equal(t, []Entry{{Path: "a.pdf", Pages: 4}, {Path: "c.pdf", Pages: 1}}, entries)
	assert.Contains(t, w.String(), "skipped: broken.pdf")
}
