// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package favorites

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileStartsEmpty(t *testing.T) {
	var w bytes.Buffer
	l := Load(filepath.Join(t.TempDir(), "favorites.json"), &w)

	assert.Empty(t, l.Folders)
	assert.Empty(t, w.String(), "a missing file is not worth a warning")
}

func TestLoadDamagedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var w bytes.Buffer
	l := Load(path, &w)

	assert.Empty(t, l.Folders)
	assert.Contains(t, w.String(), "damaged")
}

func TestAddRemove(t *testing.T) {
	l := Load(filepath.Join(t.TempDir(), "favorites.json"), os.Stderr)

	assert.True(t, l.Add("/scores"))
	assert.True(t, l.Add("/invoices"))
	assert.False(t, l.Add("/scores"), "duplicate add is a no-op")
	assert.Equal(t, []string{"/scores", "/invoices"}, l.Folders)

	assert.True(t, l.Remove("/scores"))
	assert.False(t, l.Remove("/scores"), "removing an absent folder reports false")
	assert.Equal(t, []string{"/invoices"}, l.Folders)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "favorites.json")

	l := Load(path, os.Stderr)
	l.Add("/scores")
	l.Add("/invoices")
	require.NoError(t, l.Save())

	reloaded := Load(path, os.Stderr)
	assert.Equal(t, []string{"/scores", "/invoices"}, reloaded.Folders)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "favorites.json")

	l := Load(path, os.Stderr)
	l.Add("/scores")
	require.NoError(t, l.Save())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "favorites.json", entries[0].Name())
}
