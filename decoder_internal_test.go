// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// withDecoders runs fn with a private copy of the decoder registry
func withDecoders(t *testing.T, fn func()) {
	t.Helper()

	saved := decoders
	decoders = map[Format]decoder{}
	for f, d := range saved {
		decoders[f] = d
	}
	defer func() { decoders = saved }()

	fn()
}

func TestRegisterDecoderDuplicate(t *testing.T) {
	withDecoders(t, func() {
		delete(decoders, FormatTarGzip)
		registerDecoder(FormatTarGzip, "first", openTarStream)

		assert.PanicsWithValue(t,
			"archive: format TarGz has two decoders compiled in: first and second",
			func() { registerDecoder(FormatTarGzip, "second", openTarStream) },
		)
		assert.Equal(t, "first", FormatTarGzip.Implementation())
	})
}

func TestRegisterDecoderUnknownFormat(t *testing.T) {
	withDecoders(t, func() {
		assert.Panics(t, func() { registerDecoder(formatEnd, "unknown", openTarStream) })
		assert.Panics(t, func() { registerDecoder(formatUnknown, "unknown", openTarStream) })
		assert.False(t, formatEnd.Enabled())
	})
}

func TestDisabledFormat(t *testing.T) {
	withDecoders(t, func() {
		delete(decoders, FormatTarXz)

		assert.NotContains(t, AllFormats(), FormatTarXz)
		assert.Empty(t, FormatTarXz.Implementation())

		// the suffix of a disabled format is unsupported
		_, err := DetectFormat("a.tar.xz")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
		_, err = ParseFormat("TarXz")
		assert.ErrorIs(t, err, ErrUnknownFormatName)

		// forcing a disabled format fails before the file is touched
		_, err = Open("does-not-exist.bin", WithFormat(FormatTarXz))
		var unsupported *UnsupportedFormatError
		assert.ErrorAs(t, err, &unsupported)
	})
}

func TestWithNoopClose(t *testing.T) {
	rc := io.NopCloser(nil)
	assert.Equal(t, rc, withNoopClose(rc))

	wrapped := withNoopClose(io.LimitReader(nil, 0))
	assert.NoError(t, wrapped.Close())
}
