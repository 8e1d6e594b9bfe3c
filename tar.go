// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archive

import "io"

// implTar names the tar parser shared by all formats
const implTar = "archive/tar"

func init() {
	registerDecoder(FormatTar, implTar, openTarStream)
}

// openTarStream passes src through, a plain tarball has no compression layer.
func openTarStream(src io.Reader) (io.ReadCloser, error) {
	return &noopReaderCloser{src}, nil
}
