// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRangeValidate(t *testing.T) {
	tests := []struct {
		name       string
		r          PageRange
		totalPages int
		wantErr    string
	}{
		{"full document", PageRange{1, 10}, 10, ""},
		{"single page", PageRange{5, 5}, 10, ""},
		{"first page", PageRange{1, 1}, 1, ""},
		{"start below one", PageRange{0, 3}, 10, "start page must be at least 1"},
		{"negative start", PageRange{-2, 3}, 10, "start page must be at least 1"},
		{"end before start", PageRange{5, 4}, 10, "end page precedes start page"},
		{"end past page count", PageRange{8, 11}, 10, "end page exceeds page count 10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate(tt.totalPages)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPageRangePages(t *testing.T) {
	assert.Equal(t, 1, PageRange{3, 3}.Pages())
	assert.Equal(t, 4, PageRange{2, 5}.Pages())
}

func TestPageRangeString(t *testing.T) {
	assert.Equal(t, "3", PageRange{3, 3}.String())
	assert.Equal(t, "2-5", PageRange{2, 5}.String())
}

func TestParseRanges(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []PageRange
		wantErr bool
	}{
		{"single range", "1-3", []PageRange{{1, 3}}, false},
		{"bare number", "5", []PageRange{{5, 5}}, false},
		{"mixed list", "1-3,5,9-12", []PageRange{{1, 3}, {5, 5}, {9, 12}}, false},
		{"whitespace tolerated", " 1-3 , 5 ", []PageRange{{1, 3}, {5, 5}}, false},
		{"trailing comma tolerated", "1-3,", []PageRange{{1, 3}}, false},
		{"empty", "", nil, true},
		{"not a number", "a-b", nil, true},
		{"reversed", "5-3", nil, true},
		{"zero page", "0-3", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRanges(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
