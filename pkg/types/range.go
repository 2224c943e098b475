// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strconv"
	"strings"
)

// PageRange is a closed interval of 1-based page numbers over one source
// document. Per prd002-split R2.1.
type PageRange struct {
	// Start is the first page of the range, 1-based.
	Start int `json:"start" yaml:"start"`

	// End is the last page of the range, inclusive.
	End int `json:"end" yaml:"end"`
}

// Validate checks the range against a document's page count. The invariant
// is 1 <= Start <= End <= totalPages; violations are rejected here, never
// silently clamped.
func (r PageRange) Validate(totalPages int) error {
	if r.Start < 1 {
		return fmt.Errorf("range %s: start page must be at least 1", r)
	}
	if r.End < r.Start {
		return fmt.Errorf("range %s: end page precedes start page", r)
	}
	if r.End > totalPages {
		return fmt.Errorf("range %s: end page exceeds page count %d", r, totalPages)
	}
	return nil
}

// Pages returns the number of pages the range covers.
func (r PageRange) Pages() int {
	return r.End - r.Start + 1
}

func (r PageRange) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// ParseRanges parses a comma-separated range list such as "1-3,5,9-12".
// A bare number is a single-page range. Whitespace around entries is
// ignored. Bounds against a concrete document are checked later by
// Validate; ParseRanges only rejects malformed syntax.
func ParseRanges(s string) ([]PageRange, error) {
	var ranges []PageRange
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		first, last, found := strings.Cut(part, "-")
		start, err := strconv.Atoi(strings.TrimSpace(first))
		if err != nil {
			return nil, fmt.Errorf("invalid page range %q", part)
		}
		end := start
		if found {
			end, err = strconv.Atoi(strings.TrimSpace(last))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
		}
		if start < 1 || end < start {
			return nil, fmt.Errorf("invalid page range %q", part)
		}
		ranges = append(ranges, PageRange{Start: start, End: end})
	}
	if len(ranges) == 0 {
		return nil, fmt.Errorf("no page ranges in %q", s)
	}
	return ranges, nil
}
