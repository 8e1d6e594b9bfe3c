// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"fmt"
	"io"
)

// decoderFunc wraps src with a streaming decoder for one compression layer.
// Decoders may read and validate a header from src before returning.
type decoderFunc func(src io.Reader) (io.ReadCloser, error)

// decoder is the compiled-in implementation of a format.
type decoder struct {
	// impl names the package doing the decoding
	impl string
	open decoderFunc
}

// decoders holds the enabled formats. It is filled by the init functions of
// the per-format files, which are selected with build tags.
var decoders = map[Format]decoder{}

// registerDecoder enables format f with the given implementation. Only one
// implementation per format may be compiled in; a second registration is a
// build configuration error and panics during program initialization.
func registerDecoder(f Format, impl string, open decoderFunc) {
	if _, known := formats[f]; !known {
		panic(fmt.Sprintf("archive: register decoder for unknown format %d", int(f)))
	}
	if prev, dup := decoders[f]; dup {
		panic(fmt.Sprintf("archive: format %s has two decoders compiled in: %s and %s", f.Name(), prev.impl, impl))
	}
	decoders[f] = decoder{impl: impl, open: open}
}
