// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package trailer

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"slices"
)

const (
	// Signature is the magic number each record starts with ("PK\x05\x06").
	Signature uint32 = 0x06054b50

	// Size is the length of the fixed size part of the record.
	Size = 22

	// MaxCommentLen is the maximum length of the comment.
	MaxCommentLen = 0xffff
)

var (
	_ encoding.BinaryMarshaler   = (*Record)(nil)
	_ encoding.BinaryUnmarshaler = (*Record)(nil)
)

// Record is the end of central directory record.
type Record struct {
	DiskNumber      uint16
	DirectoryDisk   uint16
	DiskEntries     uint16
	TotalEntries    uint16
	DirectorySize   uint32
	DirectoryOffset uint32
	Comment         []byte

	// Offset is the position the record was found at. It is not part of the
	// serialized form.
	Offset int64
}

// Empty returns a record of an empty container.
func Empty() *Record {
	return &Record{Comment: []byte{}}
}

// IsEmpty reports whether all counters are zero and the comment is empty.
func (r *Record) IsEmpty() bool {
	return r.DiskNumber == 0 &&
		r.DirectoryDisk == 0 &&
		r.DiskEntries == 0 &&
		r.TotalEntries == 0 &&
		r.DirectorySize == 0 &&
		r.DirectoryOffset == 0 &&
		len(r.Comment) == 0
}

// Len returns the serialized length of the record.
func (r *Record) Len() int {
	return Size + len(r.Comment)
}

// MarshalBinary returns the serialized record.
func (r *Record) MarshalBinary() ([]byte, error) {
	if len(r.Comment) > MaxCommentLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrCommentTooLong, len(r.Comment))
	}

	b := make([]byte, Size, r.Len())

	binary.LittleEndian.PutUint32(b[0:], Signature)
	binary.LittleEndian.PutUint16(b[4:], r.DiskNumber)
	binary.LittleEndian.PutUint16(b[6:], r.DirectoryDisk)
	binary.LittleEndian.PutUint16(b[8:], r.DiskEntries)
	binary.LittleEndian.PutUint16(b[10:], r.TotalEntries)
	binary.LittleEndian.PutUint32(b[12:], r.DirectorySize)
	binary.LittleEndian.PutUint32(b[16:], r.DirectoryOffset)
	binary.LittleEndian.PutUint16(b[20:], uint16(len(r.Comment))) //nolint:gosec

	return append(b, r.Comment...), nil
}

// UnmarshalBinary parses the record from the start of b. Data behind the
// comment is ignored.
func (r *Record) UnmarshalBinary(b []byte) error {
	if len(b) < Size {
		return ErrShortRecord
	}

	if binary.LittleEndian.Uint32(b[0:]) != Signature {
		return ErrSignature
	}

	commentLen := int(binary.LittleEndian.Uint16(b[20:]))
	if len(b) < Size+commentLen {
		return fmt.Errorf("%w: comment needs %d bytes", ErrShortRecord, commentLen)
	}

	r.DiskNumber = binary.LittleEndian.Uint16(b[4:])
	r.DirectoryDisk = binary.LittleEndian.Uint16(b[6:])
	r.DiskEntries = binary.LittleEndian.Uint16(b[8:])
	r.TotalEntries = binary.LittleEndian.Uint16(b[10:])
	r.DirectorySize = binary.LittleEndian.Uint32(b[12:])
	r.DirectoryOffset = binary.LittleEndian.Uint32(b[16:])
	r.Comment = slices.Clone(b[Size : Size+commentLen])

	return nil
}
