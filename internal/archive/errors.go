// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import "errors"

var (
	// ErrReadOnly is returned when modifying an [Archive] opened with
	// [Open].
	ErrReadOnly = errors.New("archive is read-only")

	// ErrEntryExists is returned if an entry with the same name is already
	// present.
	ErrEntryExists = errors.New("entry already exists")

	// ErrInvalidName is returned for empty entry names and names that do not
	// fit into an entry header.
	ErrInvalidName = errors.New("invalid entry name")

	// ErrUnknownMethod is returned for unsupported compression methods.
	ErrUnknownMethod = errors.New("unknown compression method")
)
