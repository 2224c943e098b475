// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"fmt"
	"strings"
)

// SequenceToken is the placeholder in an output naming pattern that is
// substituted with the part's sequence number.
const SequenceToken = "[N]"

// Render replaces every occurrence of SequenceToken in pattern with seq
// rendered as a zero-padded three digit decimal. Three digits is a minimum
// width, not a maximum: Render("doc_[N].pdf", 1234) is "doc_1234.pdf".
func Render(pattern string, seq int) string {
	return strings.ReplaceAll(pattern, SequenceToken, fmt.Sprintf("%03d", seq))
}

// ValidPattern reports whether pattern contains the sequence placeholder.
func ValidPattern(pattern string) bool {
	return strings.Contains(pattern, SequenceToken)
}
