// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedFormat is matched by every [UnsupportedFormatError].
	ErrUnsupportedFormat = errors.New("unsupported archive file type")

	// ErrEntriesStarted is returned by [Archive.Entries] when the iteration
	// of the archive has already been started.
	ErrEntriesStarted = errors.New("entries of archive already started")

	// ErrStaleEntry is returned when an [Entry] is read after its iterator
	// has advanced past it.
	ErrStaleEntry = errors.New("entry is no longer the current entry")

	// ErrArchiveClosed is returned by every operation on a closed [Archive].
	ErrArchiveClosed = errors.New("archive is closed")

	// ErrInvalidPath is returned by [Entry.Path] if the name stored in the
	// header is not valid UTF-8.
	ErrInvalidPath = errors.New("entry path is not valid UTF-8")

	// ErrMaxEntriesExceeded indicates that the archive holds more entries than
	// configured with [WithMaxEntries].
	ErrMaxEntriesExceeded = errors.New("maximum entries exceeded")

	// ErrMaxInputSizeExceeded indicates that more bytes than configured with
	// [WithMaxInputSize] have been read from the archive file.
	ErrMaxInputSizeExceeded = errors.New("maximum input size exceeded")

	// ErrUnknownFormatName is returned by [ParseFormat] for names that do not
	// belong to an enabled format.
	ErrUnknownFormatName = errors.New("unknown archive format name")
)

// UnsupportedFormatError is returned when no enabled [Format] recognizes the
// suffix of a path.
type UnsupportedFormatError struct {
	// Path is the path of the archive as given by the caller.
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedFormat, e.Path)
}

// Is reports true for [ErrUnsupportedFormat].
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// IOError wraps every failure of the underlying file, decoder or tar parser.
type IOError struct {
	// Op is the operation that failed, e.g. "open", "decode", "next", "read".
	Op string

	// Path is the path of the archive.
	Path string

	// Err is the underlying error.
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("I/O error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// newIOError wraps err with the operation and archive path. A nil err yields
// nil.
func newIOError(op string, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: errors.WithStack(err)}
}
