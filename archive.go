// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"archive/tar"
	"io"
	"os"
	"time"
)

// Archive is an opened archive file: the file handle, the decoder of the
// compression layer and the tar parser on top of it.
//
// An Archive is not safe for concurrent use. Independent archives can be used
// from different goroutines.
type Archive struct {
	path   string
	format Format
	cfg    *Config

	file   *os.File
	input  *limitErrorReader
	stream io.ReadCloser
	tr     *tar.Reader

	entries *Entries
	closed  bool

	td    *TelemetryData
	start time.Time
}

// Open opens the archive at path. The format is detected from the suffix of
// the file name, see [DetectFormat], unless it is forced with [WithFormat].
//
// If no enabled format matches, an [*UnsupportedFormatError] is returned. If
// the file cannot be opened or the decoder of the compression layer rejects
// the stream header, an [*IOError] is returned.
//
// The caller must call [Archive.Close] to release the file handle.
func Open(path string, opts ...ConfigOption) (*Archive, error) {
	cfg := NewConfig(opts...)
	start := time.Now()

	format, err := selectFormat(path, cfg)
	if err != nil {
		cfg.Logger().Error("unsupported archive format", "path", path)
		return nil, err
	}
	dec := decoders[format]
	td := &TelemetryData{Format: format.Name(), Decoder: dec.impl}

	// fail reports a broken decoder chain to the telemetry hook
	fail := func(err error) (*Archive, error) {
		td.captureError(err)
		td.Duration = time.Since(start)
		cfg.Logger().Error("cannot open archive", "path", path, "format", format.Name(), "error", err)
		cfg.TelemetryHook()(td)
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return fail(newIOError("open", path, err))
	}
	input := newLimitErrorReader(file, cfg.MaxInputSize())

	stream, err := dec.open(input)
	if err != nil {
		td.InputSize = input.ReadBytes()
		file.Close()
		return fail(newIOError("decode", path, err))
	}

	cfg.Logger().Debug("opened archive", "path", path, "format", format.Name(), "decoder", dec.impl)

	return &Archive{
		path:   path,
		format: format,
		cfg:    cfg,
		file:   file,
		input:  input,
		stream: stream,
		tr:     tar.NewReader(stream),
		td:     td,
		start:  start,
	}, nil
}

// selectFormat returns the forced format of cfg or detects it from path.
func selectFormat(path string, cfg *Config) (Format, error) {
	forced, ok := cfg.Format()
	if !ok {
		return DetectFormat(path)
	}
	if !forced.Enabled() {
		return formatUnknown, &UnsupportedFormatError{Path: path}
	}
	return forced, nil
}

// Path returns the path the archive was opened with.
func (a *Archive) Path() string {
	return a.path
}

// Format returns the format the archive is decoded with.
func (a *Archive) Format() Format {
	return a.format
}

// Entries starts the iteration over the entries of the archive. The stream
// of an archive can only be iterated once: a second call returns
// [ErrEntriesStarted].
func (a *Archive) Entries() (*Entries, error) {
	if a.closed {
		return nil, newIOError("entries", a.path, ErrArchiveClosed)
	}
	if a.entries != nil {
		return nil, newIOError("entries", a.path, ErrEntriesStarted)
	}
	a.entries = &Entries{archive: a}
	return a.entries, nil
}

// Close releases the decoder and the file handle. Entries and entries
// derived from the archive must not be used afterwards; they return
// [ErrArchiveClosed]. Closing an archive twice is a no-op.
func (a *Archive) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	if a.entries != nil {
		a.entries.current = nil
	}

	// close decoder first, it may hold buffers on top of the file
	err := newIOError("close", a.path, a.stream.Close())
	if ferr := a.file.Close(); ferr != nil && err == nil {
		err = newIOError("close", a.path, ferr)
	}
	a.td.captureError(err)

	a.td.InputSize = a.input.ReadBytes()
	a.td.Duration = time.Since(a.start)
	a.cfg.Logger().Debug("closed archive", "path", a.path, "entries", a.td.Entries, "inputSize", a.td.InputSize)
	a.cfg.TelemetryHook()(a.td)

	return err
}
