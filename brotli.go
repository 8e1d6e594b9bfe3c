// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

//go:build !no_brotli

package archive

import (
	"io"

	"github.com/andybalholm/brotli"
)

func init() {
	registerDecoder(FormatTarBrotli, "github.com/andybalholm/brotli", openBrotliStream)
}

// openBrotliStream returns a reader that decompresses src with the brotli
// algorithm. Brotli streams carry no magic bytes, errors show up on read.
func openBrotliStream(src io.Reader) (io.ReadCloser, error) {
	return withNoopClose(brotli.NewReader(src)), nil
}
