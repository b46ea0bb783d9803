// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package memstream

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Errno returns the error number a file descriptor based stream would have
// reported for the given error. It returns 0 for nil.
func Errno(err error) unix.Errno {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrNegativeOffset),
		errors.Is(err, ErrInvalidWhence),
		errors.Is(err, ErrInvalidMode):
		return unix.EINVAL
	case errors.Is(err, ErrClosed),
		errors.Is(err, ErrNotReadable),
		errors.Is(err, ErrNotWritable):
		return unix.EBADF
	case errors.Is(err, ErrTooLarge):
		return unix.EFBIG
	case errors.Is(err, ErrOffsetOverflow):
		return unix.EOVERFLOW
	case errors.Is(err, ErrNilBuffer):
		return unix.ENOMEM
	default:
		return unix.EIO
	}
}
