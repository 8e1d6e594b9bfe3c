// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"path/filepath"
	"strings"
)

// suffixTokens splits the file name of path into its lower-case suffix tokens,
// most specific first: "data.tar.gz" yields ["gz", "tar"]. The part before
// the first dot is the stem and never a token; a leading dot marks a hidden
// file and not a suffix.
func suffixTokens(path string) []string {
	name := filepath.Base(path)
	var tokens []string
	for {
		i := strings.LastIndexByte(name, '.')
		if i <= 0 {
			return tokens
		}
		tokens = append(tokens, strings.ToLower(name[i+1:]))
		name = name[:i]
	}
}

// hasTokenPrefix reports whether pattern equals the leading tokens.
func hasTokenPrefix(tokens []string, pattern []string) bool {
	if len(pattern) == 0 || len(pattern) > len(tokens) {
		return false
	}
	for i, p := range pattern {
		if tokens[i] != p {
			return false
		}
	}
	return true
}

// matchFormat returns the first enabled format, in [AllFormats] order, with a
// pattern matching the tokens.
func matchFormat(tokens []string) (Format, bool) {
	for _, f := range AllFormats() {
		for _, pattern := range formats[f].patterns {
			if hasTokenPrefix(tokens, pattern) {
				return f, true
			}
		}
	}
	return formatUnknown, false
}

// DetectFormat returns the format that [Open] selects for path. The format is
// derived from the file name only; the file is not accessed. If no enabled
// format matches, an [*UnsupportedFormatError] carrying path is returned.
func DetectFormat(path string) (Format, error) {
	if f, ok := matchFormat(suffixTokens(path)); ok {
		return f, nil
	}
	return formatUnknown, &UnsupportedFormatError{Path: path}
}
