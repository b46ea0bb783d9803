// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"archive/zip"
	"fmt"
	"io"
)

// rawEntry is a present entry with its still compressed data. The data is
// copied out of the container, since rewriting overwrites it.
type rawEntry struct {
	header zip.FileHeader
	data   []byte
}

func readRawEntries(reader *zip.Reader) ([]rawEntry, error) {
	entries := make([]rawEntry, 0, len(reader.File))

	for _, file := range reader.File {
		raw, err := file.OpenRaw()
		if err != nil {
			return nil, fmt.Errorf("open raw %s: %w", file.Name, err)
		}

		data, err := io.ReadAll(raw)
		if err != nil {
			return nil, fmt.Errorf("read raw %s: %w", file.Name, err)
		}

		entries = append(entries, rawEntry{
			header: file.FileHeader,
			data:   data,
		})
	}

	return entries, nil
}

func (e *rawEntry) writeTo(writer *zip.Writer) error {
	header := e.header

	file, err := writer.CreateRaw(&header)
	if err != nil {
		return fmt.Errorf("create raw %s: %w", header.Name, err)
	}

	_, err = file.Write(e.data)
	if err != nil {
		return fmt.Errorf("write raw %s: %w", header.Name, err)
	}

	return nil
}
