// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package memstream

import (
	"math"
	"slices"
)

// MaxSize is the largest size a [Buffer] can grow to. Containers without
// 64 bit extensions can not address more.
const MaxSize int64 = math.MaxUint32

// Buffer owns the bytes a [Stream] operates on.
//
// A [Buffer] may be referenced by any number of streams and other holders.
// Closing a [Stream] only drops the stream's reference, so the contents stay
// available through every other reference.
type Buffer struct {
	data []byte
}

// NewBuffer creates a new [Buffer] holding a copy of the given data.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: slices.Clone(data)}
}

// Len returns the current length of the data.
func (b *Buffer) Len() int64 {
	return int64(len(b.data))
}

// Bytes returns a copy of the current contents.
func (b *Buffer) Bytes() []byte {
	if b.data == nil {
		return []byte{}
	}

	return slices.Clone(b.data)
}

func (b *Buffer) truncate(size int64) {
	if size <= b.Len() {
		b.data = b.data[:size]
		return
	}

	b.data = append(b.data, make([]byte, size-b.Len())...)
}

// fits reports whether size bytes starting at offset stay within [MaxSize].
func fits(offset, size int64) bool {
	return offset >= 0 && size >= 0 && size <= MaxSize && offset <= MaxSize-size
}

// writeAt writes p at offset and returns the new end position. The caller
// ensures the end position [fits]. Gaps between
// the current end and offset are zero filled. A write that starts within the
// data and extends past its end discards everything behind offset first.
func (b *Buffer) writeAt(p []byte, offset int64) int64 {
	end := offset + int64(len(p))

	switch {
	case len(p) == 0:
	case offset > b.Len():
		b.truncate(offset)
		b.data = append(b.data, p...)
	case end > b.Len():
		b.data = append(b.data[:offset], p...)
	default:
		copy(b.data[offset:], p)
	}

	return end
}

func (b *Buffer) readAt(p []byte, offset int64) int {
	if offset >= b.Len() {
		return 0
	}

	return copy(p, b.data[offset:])
}
