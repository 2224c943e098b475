// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// library is the pdfcpu-backed Library.
type library struct{}

// New returns the pdfcpu-backed Library.
func New() Library {
	return library{}
}

func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Open reads the whole file into memory and parses it. Reading up front
// means no OS handle stays open on the source file, so the file can be
// renamed or deleted while its pages are still being copied out.
func (library) Open(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), newConfiguration())
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &document{path: path, ctx: ctx, pages: ctx.PageCount}, nil
}

// NewOutput returns an empty accumulator.
func (library) NewOutput() Output {
	return &output{}
}

type document struct {
	path   string
	ctx    *model.Context
	pages  int
	closed bool
}

func (d *document) Path() string {
	return d.path
}

func (d *document) PageCount() int {
	return d.pages
}

func (d *document) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.ctx = nil
	return nil
}

// pageRun is a sequence of pages appended from one source. Save serializes
// the output run by run, so consecutive appends from the same source cost
// one extraction.
type pageRun struct {
	src   *document
	pages []int // 1-based
}

type output struct {
	runs   []pageRun
	closed bool
}

func (o *output) Append(src Document, pageIndex int) error {
	if o.closed {
		return errors.New("append to closed output")
	}
	d, ok := src.(*document)
	if !ok {
		return fmt.Errorf("source document %T is not from this library", src)
	}
	if d.closed {
		return fmt.Errorf("source %s is closed", d.path)
	}
	if pageIndex < 0 || pageIndex >= d.pages {
		return fmt.Errorf("page %d out of range for %s (%d pages)", pageIndex+1, d.path, d.pages)
	}

	page := pageIndex + 1
	if n := len(o.runs); n > 0 && o.runs[n-1].src == d {
		o.runs[n-1].pages = append(o.runs[n-1].pages, page)
		return nil
	}
	o.runs = append(o.runs, pageRun{src: d, pages: []int{page}})
	return nil
}

func (o *output) Truncate(n int) error {
	if o.closed {
		return errors.New("truncate on closed output")
	}
	if n < 0 {
		return fmt.Errorf("negative output length %d", n)
	}

	kept := 0
	for i, run := range o.runs {
		if kept+len(run.pages) <= n {
			kept += len(run.pages)
			continue
		}
		if keep := n - kept; keep > 0 {
			o.runs[i].pages = run.pages[:keep]
			o.runs = o.runs[:i+1]
		} else {
			o.runs = o.runs[:i]
		}
		return nil
	}
	return nil
}

func (o *output) Save(path string) error {
	if o.closed {
		return errors.New("save on closed output")
	}
	if len(o.runs) == 0 {
		return errors.New("no pages to save")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	segments := make([][]byte, 0, len(o.runs))
	for _, run := range o.runs {
		part, err := pdfcpu.ExtractPages(run.src.ctx, run.pages, false)
		if err != nil {
			return fmt.Errorf("copying pages from %s: %w", run.src.path, err)
		}
		var buf bytes.Buffer
		if err := api.WriteContext(part, &buf); err != nil {
			return fmt.Errorf("serializing pages from %s: %w", run.src.path, err)
		}
		segments = append(segments, buf.Bytes())
	}

	if len(segments) == 1 {
		if err := os.WriteFile(path, segments[0], 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return nil
	}

	readers := make([]io.ReadSeeker, len(segments))
	for i, segment := range segments {
		readers[i] = bytes.NewReader(segment)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := api.MergeRaw(readers, f, false, newConfiguration()); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (o *output) Close() error {
	if o.closed {
		return nil
	}
	o.closed = true
	o.runs = nil
	return nil
}
