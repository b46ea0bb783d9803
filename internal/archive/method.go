// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"archive/zip"
	"flag"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
)

// Method is the compression method of an entry.
type Method uint16

const (
	Store   = Method(zip.Store)
	Deflate = Method(zip.Deflate)
	Zstd    = Method(93)
)

var _ flag.Value = (*Method)(nil)

func (m Method) String() string {
	switch m {
	case Store:
		return "store"
	case Deflate:
		return "deflate"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("method(%d)", uint16(m))
	}
}

// Set parses the method from its string representation.
func (m *Method) Set(s string) error {
	switch s {
	case "store":
		*m = Store
	case "deflate":
		*m = Deflate
	case "zstd":
		*m = Zstd
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMethod, s)
	}

	return nil
}

func (m Method) valid() bool {
	return m == Store || m == Deflate || m == Zstd
}

func newWriter(w io.Writer) *zip.Writer {
	writer := zip.NewWriter(w)
	writer.RegisterCompressor(zip.Deflate, compressDeflate)
	writer.RegisterCompressor(uint16(Zstd), compressZstd)

	return writer
}

func newReader(r io.ReaderAt, size int64) (*zip.Reader, error) {
	reader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	reader.RegisterDecompressor(zip.Deflate, flate.NewReader)
	reader.RegisterDecompressor(uint16(Zstd), decompressZstd)

	return reader, nil
}

func compressDeflate(w io.Writer) (io.WriteCloser, error) {
	writer, err := flate.NewWriter(w, flate.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("deflate: %w", err)
	}

	return writer, nil
}

func compressZstd(w io.Writer) (io.WriteCloser, error) {
	encoder, err := zstd.NewWriter(w, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}

	return encoder, nil
}

func decompressZstd(r io.Reader) io.ReadCloser {
	decoder, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return errReadCloser{fmt.Errorf("zstd: %w", err)}
	}

	return decoder.IOReadCloser()
}

type errReadCloser struct {
	err error
}

func (e errReadCloser) Read([]byte) (int, error) { return 0, e.err }
func (errReadCloser) Close() error               { return nil }
