// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

//go:build !no_zstd

package archive

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

func init() {
	registerDecoder(FormatTarZstd, "github.com/klauspost/compress/zstd", openZstdStream)
}

// openZstdStream returns a reader that decompresses src with the zstandard
// algorithm. Decoding runs on the calling goroutine, frames are validated
// lazily on read.
//
// reference: https://www.rfc-editor.org/rfc/rfc8878.html
func openZstdStream(src io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(src, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return dec.IOReadCloser(), nil
}
