// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package trailer

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
)

// Locator finds the record in the given data.
type Locator func(rs io.ReadSeeker) (*Record, error)

var _ Locator = Locate

// Locate scans rs backwards from its end for the record.
//
// Only the last [Size]+[MaxCommentLen] bytes are searched. Candidates are
// skipped if their comment would overrun the data or if their central
// directory would overlap the record itself. It returns [ErrNotFound] if no
// candidate is valid. The position of rs is left behind the searched range.
func Locate(rs io.ReadSeeker) (*Record, error) {
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("seek end: %w", err)
	}

	if size < Size {
		return nil, ErrNotFound
	}

	start := max(size-(Size+MaxCommentLen), 0)

	_, err = rs.Seek(start, io.SeekStart)
	if err != nil {
		return nil, fmt.Errorf("seek search start: %w", err)
	}

	block := make([]byte, size-start)

	_, err = io.ReadFull(rs, block)
	if err != nil {
		return nil, fmt.Errorf("read search block: %w", err)
	}

	for pos := len(block) - Size; pos >= 0; pos-- {
		if binary.LittleEndian.Uint32(block[pos:]) != Signature {
			continue
		}

		record := &Record{}
		if err := record.UnmarshalBinary(block[pos:]); err != nil {
			slog.Debug("Skip trailer candidate",
				slog.Int64("offset", start+int64(pos)),
				slog.Any("error", err))

			continue
		}

		record.Offset = start + int64(pos)

		dirEnd := int64(record.DirectoryOffset) + int64(record.DirectorySize)
		if dirEnd > record.Offset {
			slog.Debug("Skip trailer candidate overlapping its directory",
				slog.Int64("offset", record.Offset),
				slog.Int64("directory_end", dirEnd))

			continue
		}

		return record, nil
	}

	return nil, ErrNotFound
}
