// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package memstream

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrClosed is returned for any operation on a closed [Stream].
	ErrClosed = fs.ErrClosed

	// ErrInvalidMode is returned by [Open] for mode strings it does not
	// understand.
	ErrInvalidMode = errors.New("invalid open mode")

	// ErrNilBuffer is returned by [Open] if no [Buffer] is given.
	ErrNilBuffer = errors.New("no buffer")

	// ErrNegativeOffset is returned by [Stream.Seek] and [Stream.Truncate]
	// if the resulting position would be negative.
	ErrNegativeOffset = errors.New("negative offset")

	// ErrTooLarge is returned by [Stream.Write] and [Stream.Truncate] if the
	// data would grow beyond [MaxSize].
	ErrTooLarge = errors.New("data too large")

	// ErrOffsetOverflow is returned by [Stream.Seek] if the resulting
	// position does not fit into an int64.
	ErrOffsetOverflow = errors.New("offset overflow")

	// ErrInvalidWhence is returned by [Stream.Seek] for unknown whence
	// values.
	ErrInvalidWhence = errors.New("invalid whence")

	// ErrNotReadable is returned if a write-only [Stream] is read from.
	ErrNotReadable = errors.New("stream not open for reading")

	// ErrNotWritable is returned if a read-only [Stream] is written to.
	ErrNotWritable = errors.New("stream not open for writing")
)

// Error records a failed stream operation.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// OpenError is returned by [Open] if no [Stream] could be bound to the
// buffer.
type OpenError struct {
	Mode string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open mode %q: %v", e.Mode, e.Err)
}

func (e *OpenError) Is(other error) bool {
	_, ok := other.(*OpenError)
	return ok
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
