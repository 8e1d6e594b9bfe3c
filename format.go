// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"fmt"
	"strings"
)

// Format identifies one supported combination of the tar container and an
// optional compression layer.
//
// The declaration order of the formats is the priority order used when a
// path is matched against suffix patterns: the first enabled format with a
// matching pattern wins.
type Format int

const (
	formatUnknown Format = iota

	// FormatTar is a plain tarball.
	FormatTar

	// FormatTarBzip2 is a bzip2-compressed tarball.
	FormatTarBzip2

	// FormatTarGzip is a gzip-compressed tarball.
	FormatTarGzip

	// FormatTarLz4 is a lz4-compressed tarball.
	FormatTarLz4

	// FormatTarXz is a xz-compressed tarball.
	FormatTarXz

	// FormatTarZstd is a zstd-compressed tarball.
	FormatTarZstd

	// FormatTarBrotli is a brotli-compressed tarball.
	FormatTarBrotli

	// FormatTarSnappy is a tarball compressed with the snappy framing format.
	FormatTarSnappy

	formatEnd
)

// formatInfo holds the static description of a format.
type formatInfo struct {
	name        string
	description string

	// patterns are suffix token sequences, most specific token first
	patterns [][]string
}

// formats is the static table of all known formats, independent of the
// build tags.
var formats = map[Format]formatInfo{
	FormatTar: {
		name:        "Tar",
		description: "tarball",
		patterns:    [][]string{{"tar"}},
	},
	FormatTarBzip2: {
		name:        "TarBzip2",
		description: "bzip2-compressed tarball",
		patterns:    [][]string{{"bz2", "tar"}, {"tbz"}, {"tbz2"}},
	},
	FormatTarGzip: {
		name:        "TarGz",
		description: "gzip-compressed tarball",
		patterns:    [][]string{{"gz", "tar"}, {"tgz"}},
	},
	FormatTarLz4: {
		name:        "TarLz4",
		description: "lz4-compressed tarball",
		patterns:    [][]string{{"lz4", "tar"}},
	},
	FormatTarXz: {
		name:        "TarXz",
		description: "xz-compressed tarball",
		patterns:    [][]string{{"xz", "tar"}, {"txz"}},
	},
	FormatTarZstd: {
		name:        "TarZstd",
		description: "zstd-compressed tarball",
		patterns:    [][]string{{"zst", "tar"}},
	},
	FormatTarBrotli: {
		name:        "TarBrotli",
		description: "brotli-compressed tarball",
		patterns:    [][]string{{"br", "tar"}},
	},
	FormatTarSnappy: {
		name:        "TarSnappy",
		description: "snappy-compressed tarball",
		patterns:    [][]string{{"sz", "tar"}},
	},
}

// AllFormats returns the formats compiled into the binary in priority order.
func AllFormats() []Format {
	var all []Format
	for f := FormatTar; f < formatEnd; f++ {
		if f.Enabled() {
			all = append(all, f)
		}
	}
	return all
}

// DescribeAll returns one line per enabled format in the form
// "<name> <description> [<file endings>]".
func DescribeAll() []string {
	all := AllFormats()
	lines := make([]string, 0, len(all))
	for _, f := range all {
		lines = append(lines, f.Describe())
	}
	return lines
}

// ParseFormat returns the enabled format with the given name. The name is
// compared case-insensitively, "targz" and "TarGz" both select
// [FormatTarGzip].
func ParseFormat(name string) (Format, error) {
	for _, f := range AllFormats() {
		if strings.EqualFold(f.Name(), name) {
			return f, nil
		}
	}
	return formatUnknown, fmt.Errorf("%w: %q", ErrUnknownFormatName, name)
}

// Name returns the short identifier of the format, e.g. "TarGz".
func (f Format) Name() string {
	if info, ok := formats[f]; ok {
		return info.name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Description returns a human readable description, e.g.
// "gzip-compressed tarball".
func (f Format) Description() string {
	return formats[f].description
}

// SuffixPatterns returns the suffix token sequences recognized for the
// format. Every sequence lists the tokens right to left, e.g. {"gz", "tar"}
// for "*.tar.gz". The returned slices are copies.
func (f Format) SuffixPatterns() [][]string {
	patterns := formats[f].patterns
	out := make([][]string, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, append([]string(nil), p...))
	}
	return out
}

// FileEndings returns the suffix patterns as glob-style file name endings,
// e.g. "*.tar.gz" and "*.tgz".
func (f Format) FileEndings() []string {
	patterns := formats[f].patterns
	endings := make([]string, 0, len(patterns))
	for _, p := range patterns {
		var sb strings.Builder
		sb.WriteString("*")
		for i := len(p) - 1; i >= 0; i-- {
			sb.WriteString(".")
			sb.WriteString(p[i])
		}
		endings = append(endings, sb.String())
	}
	return endings
}

// Enabled returns true if a decoder for the format is compiled in.
func (f Format) Enabled() bool {
	_, ok := decoders[f]
	return ok
}

// Implementation returns the package that decodes the compression layer of
// the format, or an empty string if the format is not enabled.
func (f Format) Implementation() string {
	return decoders[f].impl
}

// Describe returns "<name> <description> [<file endings>]".
func (f Format) Describe() string {
	return fmt.Sprintf("%s %s [%s]", f.Name(), f.Description(), strings.Join(f.FileEndings(), " "))
}

// String returns the description of the format.
func (f Format) String() string {
	if _, ok := formats[f]; !ok {
		return f.Name()
	}
	return f.Description()
}
