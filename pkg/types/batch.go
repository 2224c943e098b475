// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ItemOutcome records the result of one item within a batch operation: one
// source file in a merge, or one produced part in a split. Per prd001-merge
// R4.1 and prd002-split R4.1 the engines collect these instead of reporting
// failures only through log lines.
type ItemOutcome struct {
	// Item identifies the batch item (a source path, or a page-range label).
	Item string `json:"item" yaml:"item"`

	// Output is the path of the file this item produced, if any.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Pages is the number of pages this item contributed.
	Pages int `json:"pages" yaml:"pages"`

	// Err is the per-item failure, nil when the item succeeded.
	Err error `json:"-" yaml:"-"`
}

// OK reports whether the item succeeded.
func (o ItemOutcome) OK() bool {
	return o.Err == nil
}

// BatchResult is the per-batch outcome: one entry per attempted item, in
// attempt order. Per-item failures are recorded here and do not abort the
// batch; the engines return an error only for whole-batch failures.
type BatchResult struct {
	Items []ItemOutcome
}

// Succeeded returns the number of items that completed without error.
func (r *BatchResult) Succeeded() int {
	n := 0
	for _, item := range r.Items {
		if item.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of items that failed.
func (r *BatchResult) Failed() int {
	return len(r.Items) - r.Succeeded()
}

// Pages returns the total pages contributed by successful items.
func (r *BatchResult) Pages() int {
	n := 0
	for _, item := range r.Items {
		if item.OK() {
			n += item.Pages
		}
	}
	return n
}

// Produced returns the number of output files written, which can be fewer
// than the number of requested parts when trailing parts fall past the last
// page or individual parts fail.
func (r *BatchResult) Produced() int {
	n := 0
	for _, item := range r.Items {
		if item.OK() && item.Output != "" {
			n++
		}
	}
	return n
}
