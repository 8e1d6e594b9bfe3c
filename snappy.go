// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

//go:build !no_snappy

package archive

import (
	"io"

	"github.com/golang/snappy"
)

func init() {
	registerDecoder(FormatTarSnappy, "github.com/golang/snappy", openSnappyStream)
}

// openSnappyStream returns a reader that decompresses the snappy framing
// format. Block-format snappy without stream identifier is not supported.
func openSnappyStream(src io.Reader) (io.ReadCloser, error) {
	return withNoopClose(snappy.NewReader(src)), nil
}
