// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

//go:build !no_bzip2 && !bzip2_stdlib

package archive

import (
	"io"

	"github.com/dsnet/compress/bzip2"
)

func init() {
	registerDecoder(FormatTarBzip2, "github.com/dsnet/compress/bzip2", openBzip2Stream)
}

// openBzip2Stream returns a reader that decompresses src with the bzip2
// algorithm.
//
// reference: https://github.com/dsnet/compress/blob/master/doc/bzip2-format.pdf
func openBzip2Stream(src io.Reader) (io.ReadCloser, error) {
	r, err := bzip2.NewReader(src, &bzip2.ReaderConfig{})
	if err != nil {
		return nil, err
	}
	return r, nil
}
