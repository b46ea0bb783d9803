// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package initramfs

import "errors"

var (
	// ErrFileNotRegular is returned if the source is not a regular file.
	ErrFileNotRegular = errors.New("source is not a regular file")

	// ErrUnsupportedType is returned for file types that can not be written.
	ErrUnsupportedType = errors.New("unsupported file type")
)
