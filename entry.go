// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Entry is one object stored in an archive. Its content is read through
// [Entry.Read] while it is the current entry of its [Entries]; the metadata
// stays available after the iterator has moved on.
type Entry struct {
	hdr     *tar.Header
	entries *Entries
}

// Type returns the type of the entry.
func (e *Entry) Type() EntryType {
	return entryTypeFromFlag(e.hdr.Typeflag)
}

// Size returns the content length in bytes as declared in the header. The
// value is not checked against the bytes actually stored in the archive.
func (e *Entry) Size() int64 {
	return e.hdr.Size
}

// Path returns the name of the entry, using the platform path separator.
// Names from GNU long name and PAX extensions are already merged into the
// entry. If the name is not valid UTF-8, an [*IOError] wrapping
// [ErrInvalidPath] is returned.
func (e *Entry) Path() (string, error) {
	name := e.hdr.Name
	if !utf8.ValidString(name) {
		return "", newIOError("path", e.entries.archive.path, fmt.Errorf("%w: %q", ErrInvalidPath, name))
	}
	return filepath.FromSlash(name), nil
}

// Linkname returns the target of a hard or symbolic link.
func (e *Entry) Linkname() string {
	return e.hdr.Linkname
}

// Mode returns the file mode of the entry.
func (e *Entry) Mode() fs.FileMode {
	return e.hdr.FileInfo().Mode()
}

// ModTime returns the modification time of the entry.
func (e *Entry) ModTime() time.Time {
	return e.hdr.ModTime
}

// Uid returns the user id of the owner.
func (e *Entry) Uid() int {
	return e.hdr.Uid
}

// Gid returns the group id of the owner.
func (e *Entry) Gid() int {
	return e.hdr.Gid
}

// Read reads the content of the entry. It returns [io.EOF] once the declared
// size has been consumed, regardless of the size of p.
//
// Reading an entry after its iterator advanced fails with [ErrStaleEntry].
func (e *Entry) Read(p []byte) (int, error) {
	a := e.entries.archive
	if a.closed {
		return 0, newIOError("read", a.path, ErrArchiveClosed)
	}
	if e.entries.current != e {
		return 0, newIOError("read", a.path, ErrStaleEntry)
	}

	n, err := a.tr.Read(p)
	a.td.ReadSize += int64(n)
	if err != nil && !errors.Is(err, io.EOF) {
		err = newIOError("read", a.path, err)
		a.td.captureError(err)
		a.cfg.Logger().Error("cannot read entry", "path", a.path, "name", e.hdr.Name, "error", err)
	}
	return n, err
}
