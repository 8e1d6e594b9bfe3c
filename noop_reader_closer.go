// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archive

import "io"

// noopReaderCloser turns a decoder without a Close method into an
// io.ReadCloser. The wrapped reader is never closed.
type noopReaderCloser struct {
	io.Reader
}

// Close is a no-op method that satisfies the io.Closer interface.
func (n *noopReaderCloser) Close() error {
	return nil
}

// withNoopClose wraps r unless it already implements io.ReadCloser.
func withNoopClose(r io.Reader) io.ReadCloser {
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}
	return &noopReaderCloser{r}
}
