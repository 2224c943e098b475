// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package split partitions one PDF into several output files.
// Implements: prd002-split (R1-R5); docs/ARCHITECTURE § Split.
//
// Three partitioning strategies share one source-open/source-close envelope:
// explicit page ranges, one page per file, and equal-count parts. Arguments
// are validated before any output is produced. A failure producing one
// part's file is logged, recorded, and skipped; the batch continues with the
// next part. A batch in which no part was produced at all fails with
// ErrNoOutputs.
package split

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/pdfdesk/internal/pdfdoc"
	"github.com/pdiddy/pdfdesk/pkg/progress"
	"github.com/pdiddy/pdfdesk/pkg/types"
)

var (
	// ErrInvalidParts is returned by Equally for a parts count below 1.
	ErrInvalidParts = errors.New("split: parts must be at least 1")

	// ErrInvalidRange is returned by ByRanges when a supplied range falls
	// outside the source document, before any output is written.
	ErrInvalidRange = errors.New("split: page range out of bounds")

	// ErrBadPattern is returned when the naming pattern has no [N]
	// placeholder.
	ErrBadPattern = errors.New("split: naming pattern missing [N] placeholder")

	// ErrNoOutputs is returned when every part failed and no output file
	// was produced.
	ErrNoOutputs = errors.New("split: no output files produced")
)

// Options carries the optional collaborators of a split call.
type Options struct {
	// Progress receives one update per attempted part, success or failure.
	Progress progress.Sink

	// Log receives per-part status lines. Nil discards them.
	Log io.Writer
}

// ByRanges writes one output file per supplied page range, in the given
// order. The sequence number of each part is its 1-based position among the
// supplied ranges. Every range must satisfy 1 <= start <= end <= page count.
func ByRanges(ctx context.Context, lib pdfdoc.Library, sourcePath string, ranges []types.PageRange, outputDir, pattern string, opts Options) (*types.BatchResult, error) {
	env, err := openEnvelope(lib, sourcePath, outputDir, pattern, opts)
	if err != nil {
		return nil, err
	}
	defer env.close()

	for _, r := range ranges {
		if err := r.Validate(env.src.PageCount()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
	}

	result := &types.BatchResult{}
	for i, r := range ranges {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Items = append(result.Items, env.writePart(i+1, r.Start, r.End))
		env.sink.Update(progress.Percent(i+1, len(ranges)))
	}
	return finish(result)
}

// ByPage writes one single-page output file per page of the source,
// sequence-numbered 1..pageCount.
func ByPage(ctx context.Context, lib pdfdoc.Library, sourcePath, outputDir, pattern string, opts Options) (*types.BatchResult, error) {
	env, err := openEnvelope(lib, sourcePath, outputDir, pattern, opts)
	if err != nil {
		return nil, err
	}
	defer env.close()

	total := env.src.PageCount()
	result := &types.BatchResult{}
	for page := 1; page <= total; page++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Items = append(result.Items, env.writePart(page, page, page))
		env.sink.Update(progress.Percent(page, total))
	}
	return finish(result)
}

// Equally partitions the source into parts of ceil(pageCount/parts) pages
// each. Trailing parts whose start page falls past the last page produce no
// file; sequence numbering keeps the part's position, so a trailing sequence
// number can go unused in the output directory.
func Equally(ctx context.Context, lib pdfdoc.Library, sourcePath string, parts int, outputDir, pattern string, opts Options) (*types.BatchResult, error) {
	if parts < 1 {
		return nil, ErrInvalidParts
	}

	env, err := openEnvelope(lib, sourcePath, outputDir, pattern, opts)
	if err != nil {
		return nil, err
	}
	defer env.close()

	total := env.src.PageCount()
	perPart := (total + parts - 1) / parts

	result := &types.BatchResult{}
	for i := 0; i < parts; i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		start := i*perPart + 1
		if start > total {
			break
		}
		end := min((i+1)*perPart, total)
		result.Items = append(result.Items, env.writePart(i+1, start, end))
		env.sink.Update(progress.Percent(i+1, parts))
	}
	return finish(result)
}

// envelope holds the per-call state shared by the three strategies: the open
// source, the output location, and the reporting collaborators. The source
// is opened once per call and closed exactly once, whatever the outcome.
type envelope struct {
	lib     pdfdoc.Library
	src     pdfdoc.Document
	dir     string
	pattern string
	sink    progress.Sink
	w       io.Writer
}

func openEnvelope(lib pdfdoc.Library, sourcePath, outputDir, pattern string, opts Options) (*envelope, error) {
	if !ValidPattern(pattern) {
		return nil, ErrBadPattern
	}
	if _, err := os.Stat(sourcePath); err != nil {
		return nil, fmt.Errorf("source %s: %w", sourcePath, err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	src, err := lib.Open(sourcePath)
	if err != nil {
		return nil, err
	}

	w := opts.Log
	if w == nil {
		w = io.Discard
	}
	return &envelope{
		lib:     lib,
		src:     src,
		dir:     outputDir,
		pattern: pattern,
		sink:    progress.OrDiscard(opts.Progress),
		w:       w,
	}, nil
}

func (e *envelope) close() {
	e.src.Close()
}

// writePart copies pages first..last (1-based, inclusive) into a fresh
// output and saves it under the rendered sequence name. The output handle
// lives only for this part.
func (e *envelope) writePart(seq, first, last int) types.ItemOutcome {
	name := Render(e.pattern, seq)
	outcome := types.ItemOutcome{
		Item: types.PageRange{Start: first, End: last}.String(),
	}

	out := e.lib.NewOutput()
	defer out.Close()

	for page := first; page <= last; page++ {
		if err := out.Append(e.src, page-1); err != nil {
			outcome.Err = err
			fmt.Fprintf(e.w, "failed:  %s (%v)\n", name, err)
			return outcome
		}
	}

	path := filepath.Join(e.dir, name)
	if err := out.Save(path); err != nil {
		outcome.Err = err
		fmt.Fprintf(e.w, "failed:  %s (%v)\n", name, err)
		return outcome
	}

	outcome.Output = path
	outcome.Pages = last - first + 1
	fmt.Fprintf(e.w, "wrote:   %s (%d pages)\n", name, outcome.Pages)
	return outcome
}

func finish(result *types.BatchResult) (*types.BatchResult, error) {
	if result.Produced() == 0 {
		return result, ErrNoOutputs
	}
	return result, nil
}
