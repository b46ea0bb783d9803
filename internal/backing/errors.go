// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package backing

import "errors"

var (
	// ErrStreamOpen is returned if no stream could be opened on the buffer.
	ErrStreamOpen = errors.New("stream open failed")

	// ErrTrailerNotFound is returned if the data does not contain a trailer
	// record, so it is not a valid container.
	ErrTrailerNotFound = errors.New("trailer record not found")

	// ErrTrailerWrite is returned if the empty trailer record of a new
	// container could not be written.
	ErrTrailerWrite = errors.New("trailer record write failed")

	// ErrInvalidMode is returned for unknown access modes.
	ErrInvalidMode = errors.New("invalid access mode")
)
