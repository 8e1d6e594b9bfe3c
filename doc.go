// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

// Package archive provides uniform, streaming read access to tar archives,
// optionally wrapped in a compression layer.
//
// The archive format is selected from the file name. The suffix tokens of the
// name are read right to left ("backup.tar.gz" yields "gz", "tar") and matched
// against the patterns of every enabled [Format] in [AllFormats] order; the
// first match wins. No content sniffing is performed.
//
// Which formats are enabled is decided at build time. Every compression layer
// can be removed with a build tag (no_bzip2, no_gzip, no_lz4, no_xz, no_zstd,
// no_brotli, no_snappy); plain tar is always available. The bzip2 layer has
// two mutually exclusive implementations, github.com/dsnet/compress/bzip2 by
// default and compress/bzip2 with the bzip2_stdlib tag.
//
// An [Archive] is opened with [Open] and iterated with [Archive.Entries]:
//
//	a, err := archive.Open("backup.tar.zst")
//	if err != nil {
//		return err
//	}
//	defer a.Close()
//
//	entries, err := a.Entries()
//	if err != nil {
//		return err
//	}
//	for entry, err := range entries.All() {
//		if err != nil {
//			return err
//		}
//		name, err := entry.Path()
//		...
//	}
//
// Entries form a single forward-only stream. An [Entry] can only be read
// while it is the current entry of its iterator; advancing the iterator
// invalidates it.
package archive
