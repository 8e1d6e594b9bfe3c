// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archive

import "archive/tar"

// EntryType is the kind of file system object stored in an entry.
type EntryType int

const (
	// Other is any type flag not known to this package.
	Other EntryType = iota

	// Regular is a regular file.
	Regular

	// Link is a hard link.
	Link

	// Symlink is a symbolic link.
	Symlink

	// Char is a character device.
	Char

	// Block is a block device.
	Block

	// Directory is a directory.
	Directory

	// Fifo is a named pipe.
	Fifo

	// Continuous is an implementation-defined high-performance file, treated
	// as a regular file.
	Continuous

	// GNULongName is the GNU extension for long file names.
	GNULongName

	// GNULongLink is the GNU extension for long link targets.
	GNULongLink

	// GNUSparse is the GNU extension for sparse files.
	GNUSparse

	// XGlobalHeader is a PAX global extended header.
	XGlobalHeader

	// XHeader is a PAX extended header.
	XHeader
)

var entryTypeNames = map[EntryType]string{
	Other:         "Other",
	Regular:       "Regular",
	Link:          "Link",
	Symlink:       "Symlink",
	Char:          "Char",
	Block:         "Block",
	Directory:     "Directory",
	Fifo:          "Fifo",
	Continuous:    "Continuous",
	GNULongName:   "GNULongName",
	GNULongLink:   "GNULongLink",
	GNUSparse:     "GNUSparse",
	XGlobalHeader: "XGlobalHeader",
	XHeader:       "XHeader",
}

// entryTypeFromFlag maps a tar type flag to its EntryType.
func entryTypeFromFlag(flag byte) EntryType {
	switch flag {
	case tar.TypeReg, tar.TypeRegA:
		return Regular
	case tar.TypeLink:
		return Link
	case tar.TypeSymlink:
		return Symlink
	case tar.TypeChar:
		return Char
	case tar.TypeBlock:
		return Block
	case tar.TypeDir:
		return Directory
	case tar.TypeFifo:
		return Fifo
	case tar.TypeCont:
		return Continuous
	case tar.TypeGNULongName:
		return GNULongName
	case tar.TypeGNULongLink:
		return GNULongLink
	case tar.TypeGNUSparse:
		return GNUSparse
	case tar.TypeXGlobalHeader:
		return XGlobalHeader
	case tar.TypeXHeader:
		return XHeader
	default:
		return Other
	}
}

// IsFile returns true for regular files.
func (t EntryType) IsFile() bool {
	return t == Regular
}

func (t EntryType) String() string {
	if name, ok := entryTypeNames[t]; ok {
		return name
	}
	return "Other"
}
