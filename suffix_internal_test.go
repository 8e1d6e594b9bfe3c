// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuffixTokens(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{path: "a.tar.gz", want: []string{"gz", "tar"}},
		{path: "/x/y/A.TAR.GZ", want: []string{"gz", "tar"}},
		{path: "release-1.2.tgz", want: []string{"tgz", "2"}},
		{path: "a.tar.", want: []string{"", "tar"}},
		{path: "archive", want: nil},
		{path: ".tar", want: nil},
		{path: ".hidden.tar", want: []string{"tar"}},
		{path: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, suffixTokens(tt.path))
		})
	}
}

func TestHasTokenPrefix(t *testing.T) {
	assert.True(t, hasTokenPrefix([]string{"gz", "tar"}, []string{"gz", "tar"}))
	assert.True(t, hasTokenPrefix([]string{"gz", "tar", "x"}, []string{"gz"}))
	assert.False(t, hasTokenPrefix([]string{"gz"}, []string{"gz", "tar"}))
	assert.False(t, hasTokenPrefix([]string{"tar", "gz"}, []string{"gz", "tar"}))
	assert.False(t, hasTokenPrefix([]string{"gz"}, nil))
}

// TestPatternsUnambiguous checks that no pattern of one format is a prefix
// of a pattern of another format, so the priority order never decides
// between formats.
func TestPatternsUnambiguous(t *testing.T) {
	for f := FormatTar; f < formatEnd; f++ {
		for g := FormatTar; g < formatEnd; g++ {
			if f == g {
				continue
			}
			for _, p := range formats[f].patterns {
				for _, q := range formats[g].patterns {
					if hasTokenPrefix(p, q) {
						t.Errorf("pattern %v of %s is shadowed by %v of %s", p, f.Name(), q, g.Name())
					}
				}
			}
		}
	}
}

func TestFormatTableComplete(t *testing.T) {
	for f := FormatTar; f < formatEnd; f++ {
		info, ok := formats[f]
		if !ok {
			t.Fatalf("format %d has no table entry", int(f))
		}
		assert.NotEmpty(t, info.name)
		assert.NotEmpty(t, info.description)
		assert.NotEmpty(t, info.patterns)
	}
	assert.Len(t, formats, int(formatEnd)-1)
}
