// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package memstream

import (
	"io"
	"math"
)

var (
	_ io.ReadWriteSeeker = (*Stream)(nil)
	_ io.ReaderAt        = (*Stream)(nil)
	_ io.Closer          = (*Stream)(nil)
)

// Stream is an open handle on a [Buffer] with its own cursor.
//
// The cursor may be positioned beyond the end of the data. Reading there
// returns [io.EOF], writing there fills the gap with zeros first.
type Stream struct {
	buf    *Buffer
	cursor int64
	mode   openMode
}

// Open binds a new [Stream] to the given [Buffer].
//
// The mode follows fopen: "r" opens for reading, "w" truncates the buffer and
// opens for writing, "a" opens for writing with the cursor at the end. A
// trailing "+" opens for reading and writing, a "b" is accepted and ignored.
// It returns an [*OpenError] if the mode is invalid or buf is nil.
func Open(buf *Buffer, mode string) (*Stream, error) {
	if buf == nil {
		return nil, &OpenError{Mode: mode, Err: ErrNilBuffer}
	}

	m, err := parseMode(mode)
	if err != nil {
		return nil, &OpenError{Mode: mode, Err: err}
	}

	stream := &Stream{
		buf:  buf,
		mode: m,
	}

	if m.truncate {
		buf.truncate(0)
	}

	if m.append {
		stream.cursor = buf.Len()
	}

	return stream, nil
}

// Read reads up to len(p) bytes from the cursor position and advances the
// cursor by the number of bytes read. At or beyond the end of the data it
// returns 0 and [io.EOF].
func (s *Stream) Read(p []byte) (int, error) {
	if err := s.check("read", s.mode.read); err != nil {
		return 0, err
	}

	if len(p) == 0 {
		return 0, nil
	}

	n := s.buf.readAt(p, s.cursor)
	if n == 0 {
		return 0, io.EOF
	}

	s.cursor += int64(n)

	return n, nil
}

// ReadAt reads len(p) bytes starting at offset without moving the cursor. It
// returns [io.EOF] if fewer bytes are available.
func (s *Stream) ReadAt(p []byte, offset int64) (int, error) {
	if err := s.check("readat", s.mode.read); err != nil {
		return 0, err
	}

	if offset < 0 {
		return 0, &Error{Op: "readat", Err: ErrNegativeOffset}
	}

	n := s.buf.readAt(p, offset)
	if n < len(p) {
		return n, io.EOF
	}

	return n, nil
}

// Write writes p at the cursor position and advances the cursor by len(p).
//
// If the cursor is beyond the end of the data, the gap is filled with zeros.
// If the write starts within the data and extends past its end, the data
// behind the cursor is discarded before p is appended. Otherwise the range
// is overwritten in place. A write ending beyond [MaxSize] fails with
// [ErrTooLarge] and changes nothing.
func (s *Stream) Write(p []byte) (int, error) {
	if err := s.check("write", s.mode.write); err != nil {
		return 0, err
	}

	if len(p) > 0 && !fits(s.cursor, int64(len(p))) {
		return 0, &Error{Op: "write", Err: ErrTooLarge}
	}

	s.cursor = s.buf.writeAt(p, s.cursor)

	return len(p), nil
}

// Seek sets the cursor relative to whence and returns the new position.
//
// Positions beyond the end of the data are allowed. A resulting negative
// position is rejected with [ErrNegativeOffset], a position beyond the int64
// range with [ErrOffsetOverflow]. Both leave the cursor untouched.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if err := s.check("seek", true); err != nil {
		return 0, err
	}

	var base int64

	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = s.cursor
	case io.SeekEnd:
		base = s.buf.Len()
	default:
		return 0, &Error{Op: "seek", Err: ErrInvalidWhence}
	}

	// base is never negative, so only positive offsets can overflow.
	if offset > math.MaxInt64-base {
		return 0, &Error{Op: "seek", Err: ErrOffsetOverflow}
	}

	target := base + offset
	if target < 0 {
		return 0, &Error{Op: "seek", Err: ErrNegativeOffset}
	}

	s.cursor = target

	return target, nil
}

// Truncate changes the size of the data. Growing fills with zeros, growing
// beyond [MaxSize] fails with [ErrTooLarge]. The cursor is not moved.
func (s *Stream) Truncate(size int64) error {
	if err := s.check("truncate", s.mode.write); err != nil {
		return err
	}

	if size < 0 {
		return &Error{Op: "truncate", Err: ErrNegativeOffset}
	}

	if size > MaxSize {
		return &Error{Op: "truncate", Err: ErrTooLarge}
	}

	s.buf.truncate(size)

	return nil
}

// Size returns the current length of the underlying data.
func (s *Stream) Size() int64 {
	if s.buf == nil {
		return 0
	}

	return s.buf.Len()
}

// Close releases the stream's reference to its [Buffer]. The buffer contents
// are left as they are. It always succeeds.
func (s *Stream) Close() error {
	s.buf = nil
	return nil
}

func (s *Stream) check(op string, permitted bool) error {
	if s.buf == nil {
		return &Error{Op: op, Err: ErrClosed}
	}

	if permitted {
		return nil
	}

	if s.mode.write {
		return &Error{Op: op, Err: ErrNotReadable}
	}

	return &Error{Op: op, Err: ErrNotWritable}
}
