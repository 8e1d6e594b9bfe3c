// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

//go:build !no_gzip

package archive

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

func init() {
	registerDecoder(FormatTarGzip, "github.com/klauspost/compress/gzip", openGzipStream)
}

// openGzipStream returns a reader that decompresses src with the gzip
// algorithm. The gzip header is read and validated immediately.
func openGzipStream(src io.Reader) (io.ReadCloser, error) {
	r, err := gzip.NewReader(src)
	if err != nil {
		return nil, err
	}
	return r, nil
}
