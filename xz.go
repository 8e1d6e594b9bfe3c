// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

//go:build !no_xz

package archive

import (
	"io"

	"github.com/ulikunitz/xz"
)

func init() {
	registerDecoder(FormatTarXz, "github.com/ulikunitz/xz", openXzStream)
}

// openXzStream returns a reader that decompresses src with the xz algorithm.
// The stream header is read and validated immediately.
//
// reference https://tukaani.org/xz/xz-file-format-1.0.4.txt
func openXzStream(src io.Reader) (io.ReadCloser, error) {
	r, err := xz.NewReader(src)
	if err != nil {
		return nil, err
	}
	return withNoopClose(r), nil
}
