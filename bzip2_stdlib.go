// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

//go:build !no_bzip2 && bzip2_stdlib

package archive

import (
	"compress/bzip2"
	"io"
)

func init() {
	registerDecoder(FormatTarBzip2, "compress/bzip2", openBzip2Stream)
}

// openBzip2Stream returns a reader that decompresses src with the bzip2
// implementation of the standard library.
func openBzip2Stream(src io.Reader) (io.ReadCloser, error) {
	return withNoopClose(bzip2.NewReader(src)), nil
}
