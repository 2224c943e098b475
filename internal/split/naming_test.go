// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import "testing"

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		seq     int
		want    string
	}{
		{"pads to three digits", "doc_[N].pdf", 7, "doc_007.pdf"},
		{"two digits padded", "doc_[N].pdf", 42, "doc_042.pdf"},
		{"three digits unchanged", "doc_[N].pdf", 123, "doc_123.pdf"},
		{"wider than three digits", "doc_[N].pdf", 1234, "doc_1234.pdf"},
		{"placeholder at start", "[N]-part.pdf", 1, "001-part.pdf"},
		{"every occurrence replaced", "[N]_copy_[N].pdf", 9, "009_copy_009.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.pattern, tt.seq); got != tt.want {
				t.Errorf("Render(%q, %d) = %q, want %q", tt.pattern, tt.seq, got, tt.want)
			}
		})
	}
}

func TestValidPattern(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{"part_[N].pdf", true},
		{"[N]", true},
		{"part.pdf", false},
		{"part_[n].pdf", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidPattern(tt.pattern); got != tt.want {
			t.Errorf("ValidPattern(%q) = %v, want %v", tt.pattern, got, tt.want)
		}
	}
}
