// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"io"
	"iter"

	"github.com/pkg/errors"
)

// Entries is a forward-only iterator over the entries of an [Archive].
// It is created by [Archive.Entries] and cannot be restarted.
type Entries struct {
	archive *Archive

	// current is the only entry that may be read
	current *Entry

	count int64
	done  bool
	err   error
}

// Next advances to the next entry of the archive. Unread content of the
// previous entry is skipped and the previous entry becomes stale.
//
// At the end of the archive Next returns [io.EOF]. Any other error is an
// [*IOError]; it terminates the iteration and is returned again by every
// further call.
func (e *Entries) Next() (*Entry, error) {
	a := e.archive
	if a.closed {
		return nil, newIOError("next", a.path, ErrArchiveClosed)
	}
	if e.err != nil {
		return nil, e.err
	}
	if e.done {
		return nil, io.EOF
	}

	e.current = nil
	hdr, err := a.tr.Next()
	if errors.Is(err, io.EOF) {
		e.done = true
		a.cfg.Logger().Debug("end of archive", "path", a.path, "entries", e.count)
		return nil, io.EOF
	}
	if err != nil {
		return nil, e.fail(newIOError("next", a.path, err))
	}

	e.count++
	if err := a.cfg.CheckMaxEntries(e.count); err != nil {
		return nil, e.fail(newIOError("next", a.path, err))
	}

	a.td.Entries++
	a.td.DeclaredSize += hdr.Size
	a.cfg.Logger().Debug("next entry", "path", a.path, "name", hdr.Name, "size", hdr.Size)

	e.current = &Entry{hdr: hdr, entries: e}
	return e.current, nil
}

// All returns an iterator over the remaining entries. The iteration stops
// after the last entry or after the first error, which is yielded with a
// nil entry.
func (e *Entries) All() iter.Seq2[*Entry, error] {
	return func(yield func(*Entry, error) bool) {
		for {
			entry, err := e.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(entry, err) || err != nil {
				return
			}
		}
	}
}

// fail makes err the terminal state of the iteration.
func (e *Entries) fail(err error) error {
	e.err = err
	e.archive.td.captureError(err)
	e.archive.cfg.Logger().Error("cannot read archive", "path", e.archive.path, "error", err)
	return err
}
