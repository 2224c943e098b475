// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdfdesk/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.HistoryConfig{HistoryDir: t.TempDir(), MaxResults: 20})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	started := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	id, err := s.Record(ctx, Run{
		Operation: "merge",
		Source:    "3 files",
		Output:    "output/merged.pdf",
		Started:   started,
		Duration:  450 * time.Millisecond,
		Succeeded: 2,
		Failed:    1,
		Items: []Item{
			{Item: "a.pdf", Output: "output/merged.pdf", Pages: 4},
			{Item: "b.pdf", Output: "output/merged.pdf", Pages: 2},
			{Item: "c.pdf", Error: "opening c.pdf: no such file"},
		},
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	runs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, id, run.ID)
	assert.Equal(t, "merge", run.Operation)
	assert.Equal(t, "3 files", run.Source)
	assert.Equal(t, "output/merged.pdf", run.Output)
	assert.True(t, run.Started.Equal(started))
	assert.Equal(t, 450*time.Millisecond, run.Duration)
	assert.Equal(t, 2, run.Succeeded)
	assert.Equal(t, 1, run.Failed)

	require.Len(t, run.Items, 3)
	assert.Equal(t, "a.pdf", run.Items[0].Item)
	assert.Equal(t, 4, run.Items[0].Pages)
	assert.Empty(t, run.Items[0].Error)
	assert.Equal(t, "opening c.pdf: no such file", run.Items[2].Error)
}

func TestRecentNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := s.Record(ctx, Run{
			Operation: "split-ranges",
			Source:    fmt.Sprintf("doc%d.pdf", i),
			Started:   time.Now(),
		})
		require.NoError(t, err)
	}

	runs, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "doc3.pdf", runs[0].Source)
	assert.Equal(t, "doc2.pdf", runs[1].Source)
}

func TestRecentDefaultLimit(t *testing.T) {
	s, err := NewStore(types.HistoryConfig{HistoryDir: t.TempDir(), MaxResults: 2})
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		_, err := s.Record(ctx, Run{Operation: "merge", Started: time.Now()})
		require.NoError(t, err)
	}

	runs, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestRecentEmpty(t *testing.T) {
	s := newTestStore(t)

	runs, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStoreReopens(t *testing.T) {
	dir := t.TempDir()
	cfg := types.HistoryConfig{HistoryDir: dir, MaxResults: 20}
	ctx := context.Background()

	s, err := NewStore(cfg)
	require.NoError(t, err)
	_, err = s.Record(ctx, Run{Operation: "merge", Started: time.Now()})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := NewStore(cfg)
	require.NoError(t, err)
	defer s2.Close()

	runs, err := s2.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestItemsFromResult(t *testing.T) {
	result := &types.BatchResult{Items: []types.ItemOutcome{
		{Item: "a.pdf", Output: "out/part_001.pdf", Pages: 3},
		{Item: "b.pdf", Err: errors.New("parsing b.pdf: bad xref")},
	}}

	items := ItemsFromResult(result)
	require.Len(t, items, 2)
	assert.Equal(t, Item{Item: "a.pdf", Output: "out/part_001.pdf", Pages: 3}, items[0])
	assert.Equal(t, "parsing b.pdf: bad xref", items[1].Error)
}
