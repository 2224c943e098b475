// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge assembles one PDF from an ordered list of source files.
// Implements: prd001-merge (R1-R5); docs/ARCHITECTURE § Merge.
//
// The source order is the final page order of the merged output. A source
// that cannot be opened, or that fails partway through page copying, is
// skipped, logged, and recorded in the result; a partial copy is rolled back
// so the output never carries part of a skipped source. Only
// "no pages produced" and "save failed" abort the whole merge. Every opened
// source handle stays open until the output has been saved; the output
// handle is closed before the sources on every exit path.
package merge

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/pdfdesk/internal/pdfdoc"
	"github.com/pdiddy/pdfdesk/pkg/progress"
	"github.com/pdiddy/pdfdesk/pkg/types"
)

// ErrNoPages is returned when no pages were copied from any source. No
// output file is written in that case.
var ErrNoPages = errors.New("merge: no pages copied from any source")

// Options carries the optional collaborators of a merge call.
type Options struct {
	// Progress receives one update per processed source. Nil means no
	// reporting; skipped sources still advance the percentage.
	Progress progress.Sink

	// Log receives per-item status lines. Nil discards them.
	Log io.Writer
}

// Merge copies every page of every readable source, in order, into a single
// new PDF at outputPath. It returns the per-item outcomes together with the
// whole-batch error, if any. Cancelling ctx stops the batch at the next
// source boundary after releasing all handles.
func Merge(ctx context.Context, lib pdfdoc.Library, sourcePaths []string, outputPath string, opts Options) (*types.BatchResult, error) {
	sink := progress.OrDiscard(opts.Progress)
	w := opts.Log
	if w == nil {
		w = io.Discard
	}

	out := lib.NewOutput()
	var sources []pdfdoc.Document
	defer func() {
		// Output before sources: the output may still reference source
		// pages until it is released.
		out.Close()
		for _, src := range sources {
			src.Close()
		}
	}()

	result := &types.BatchResult{}
	copied := 0
	total := len(sourcePaths)

	for i, path := range sourcePaths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		outcome := types.ItemOutcome{Item: path}
		src, err := lib.Open(path)
		if err != nil {
			fmt.Fprintf(w, "skipped: %s (%v)\n", path, err)
			outcome.Err = err
		} else {
			sources = append(sources, src)
			outcome.Pages, outcome.Err = appendAll(out, src, copied)
			if outcome.Err != nil {
				fmt.Fprintf(w, "skipped: %s (%v)\n", path, outcome.Err)
			} else {
				copied += outcome.Pages
				fmt.Fprintf(w, "added:   %s (%d pages)\n", path, outcome.Pages)
			}
		}
		result.Items = append(result.Items, outcome)
		sink.Update(progress.Percent(i+1, total))
	}

	if copied == 0 {
		return result, ErrNoPages
	}

	if err := out.Save(outputPath); err != nil {
		return result, fmt.Errorf("saving %s: %w", outputPath, err)
	}

	fmt.Fprintf(w, "\nmerged %d pages from %d of %d sources into %s\n",
		copied, result.Succeeded(), total, outputPath)
	return result, nil
}

// appendAll copies pages 0..PageCount-1 of src onto out. mark is the output
// length before this source; a failure partway through rolls the output back
// to it, so a skipped source never leaves a partial contribution behind.
func appendAll(out pdfdoc.Output, src pdfdoc.Document, mark int) (int, error) {
	n := src.PageCount()
	for p := 0; p < n; p++ {
		if err := out.Append(src, p); err != nil {
			out.Truncate(mark)
			return 0, err
		}
	}
	return n, nil
}
