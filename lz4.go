// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

//go:build !no_lz4

package archive

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

func init() {
	registerDecoder(FormatTarLz4, "github.com/pierrec/lz4/v4", openLz4Stream)
}

// openLz4Stream returns a reader that decompresses the lz4 frame format.
// The frame header is validated lazily on the first read.
//
// reference https://android.googlesource.com/platform/external/lz4/+/HEAD/doc/lz4_Frame_format.md
func openLz4Stream(src io.Reader) (io.ReadCloser, error) {
	return withNoopClose(lz4.NewReader(src)), nil
}
