// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archive_test

import (
	"archive/tar"
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/dsnet/compress/bzip2"
	"github.com/golang/snappy"
	"github.com/hashicorp/go-archive"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// tarContent describes one entry written by packTarWithContent
type tarContent struct {
	name       string
	content    []byte
	mode       fs.FileMode
	fileType   byte
	linktarget string
}

// packTarWithContent creates a tar archive in memory
func packTarWithContent(t *testing.T, content []tarContent) []byte {
	t.Helper()

	// create tar writer
	writeBuffer := bytes.NewBuffer([]byte{})
	tw := tar.NewWriter(writeBuffer)

	// write content
	for _, c := range content {
		mode := c.mode
		if mode == 0 {
			mode = 0640
		}

		// create header
		hdr := &tar.Header{
			Name:     c.name,
			Mode:     int64(mode),
			Size:     int64(len(c.content)),
			Linkname: c.linktarget,
			Typeflag: c.fileType,
			ModTime:  time.Unix(1700000000, 0),
			Format:   tar.FormatUSTAR,
		}

		// write header
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("error writing tar header: %v", err)
		}

		// write content
		if len(c.content) > 0 {
			if _, err := tw.Write(c.content); err != nil {
				t.Fatalf("error writing tar content: %v", err)
			}
		}
	}

	// close tar writer
	if err := tw.Close(); err != nil {
		t.Fatalf("error closing tar writer: %v", err)
	}

	return writeBuffer.Bytes()
}

// regularFile returns the tarContent of a regular file
func regularFile(name string, content string) tarContent {
	return tarContent{name: name, content: []byte(content), fileType: tar.TypeReg}
}

// newTestFile writes data to name inside a temporary directory and returns
// the path
func newTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0640); err != nil {
		t.Fatalf("error writing test file: %v", err)
	}
	return path
}

// compressors holds a compression function per format
var compressors = map[archive.Format]func(*testing.T, []byte) []byte{
	archive.FormatTar:       func(_ *testing.T, data []byte) []byte { return data },
	archive.FormatTarBzip2:  compressBzip2,
	archive.FormatTarGzip:   compressGzip,
	archive.FormatTarLz4:    compressLZ4,
	archive.FormatTarXz:     compressXz,
	archive.FormatTarZstd:   compressZstd,
	archive.FormatTarBrotli: compressBrotli,
	archive.FormatTarSnappy: compressSnappy,
}

func compressBzip2(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := bzip2.NewWriter(&buf, &bzip2.WriterConfig{
		Level: bzip2.DefaultCompression,
	})
	if err != nil {
		t.Fatalf("error creating bzip2 writer: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("error writing data to bzip2 writer: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("error closing bzip2 writer: %v", err)
	}
	return buf.Bytes()
}

func compressGzip(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("error writing data to gzip writer: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("error closing gzip writer: %v", err)
	}
	return buf.Bytes()
}

func compressLZ4(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("error writing data to lz4 writer: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("error closing lz4 writer: %v", err)
	}
	return buf.Bytes()
}

func compressXz(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("error creating xz writer: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("error writing data to xz writer: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("error closing xz writer: %v", err)
	}
	return buf.Bytes()
}

func compressZstd(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		t.Fatalf("error creating zstd writer: %v", err)
	}
	if _, err := enc.Write(data); err != nil {
		t.Fatalf("error writing data to zstd writer: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("error closing zstd writer: %v", err)
	}
	return buf.Bytes()
}

func compressBrotli(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("error writing data to brotli writer: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("error closing brotli writer: %v", err)
	}
	return buf.Bytes()
}

func compressSnappy(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := snappy.NewBufferedWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("error writing data to snappy writer: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("error closing snappy writer: %v", err)
	}
	return buf.Bytes()
}
