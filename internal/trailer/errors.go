// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package trailer

import "errors"

var (
	// ErrNotFound is returned by [Locate] if the data does not contain a
	// valid record.
	ErrNotFound = errors.New("trailer record not found")

	// ErrShortRecord is returned if there is less data than the fixed size
	// part of the record or its comment requires.
	ErrShortRecord = errors.New("short trailer record")

	// ErrSignature is returned if the record does not start with
	// [Signature].
	ErrSignature = errors.New("invalid trailer signature")

	// ErrCommentTooLong is returned if the comment exceeds
	// [MaxCommentLen].
	ErrCommentTooLong = errors.New("trailer comment too long")
)
