// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package initramfs

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/cavaliergopher/cpio"
)

const numLinks = 2

var _ Writer = (*CPIOWriter)(nil)

// CPIOWriter implements [Writer] for [cpio.Writer].
type CPIOWriter struct {
	cpioWriter *cpio.Writer
}

// NewCPIOWriter creates a new archive writer.
func NewCPIOWriter(w io.Writer) *CPIOWriter {
	return &CPIOWriter{cpio.NewWriter(w)}
}

// Close writes the trailer of the archive. Flush is called by the underlying
// closer.
func (w *CPIOWriter) Close() error {
	err := w.cpioWriter.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

func (w *CPIOWriter) writeHeader(hdr *cpio.Header) error {
	err := w.cpioWriter.WriteHeader(hdr)
	if err != nil {
		return fmt.Errorf("write header for %s: %w", hdr.Name, err)
	}

	return nil
}

// WriteDirectory adds a directory entry for the given path to the archive.
func (w *CPIOWriter) WriteDirectory(path string, mode fs.FileMode) error {
	header := &cpio.Header{
		Name:  path,
		Mode:  cpio.TypeDir | cpio.FileMode(mode.Perm()),
		Links: numLinks,
	}

	return w.writeHeader(header)
}

// WriteRegular copies the content of source into the archive.
func (w *CPIOWriter) WriteRegular(path string, source fs.File, mode fs.FileMode) error {
	info, err := source.Stat()
	if err != nil {
		return fmt.Errorf("read info: %w", err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrFileNotRegular, path)
	}

	header := &cpio.Header{
		Name:    path,
		Mode:    cpio.TypeReg | cpio.FileMode(mode.Perm()),
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Links:   1,
	}

	err = w.writeHeader(header)
	if err != nil {
		return err
	}

	_, err = io.Copy(w.cpioWriter, source)
	if err != nil {
		return fmt.Errorf("write body for %s: %w", path, err)
	}

	return nil
}
