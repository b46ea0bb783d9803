// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package memstream

import "strings"

type openMode struct {
	read     bool
	write    bool
	truncate bool
	append   bool
}

// parseMode parses fopen style mode strings: "r", "w" or "a", optionally
// followed by "b" and "+" in any order.
func parseMode(mode string) (openMode, error) {
	if mode == "" {
		return openMode{}, ErrInvalidMode
	}

	var m openMode

	switch mode[0] {
	case 'r':
		m.read = true
	case 'w':
		m.write = true
		m.truncate = true
	case 'a':
		m.write = true
		m.append = true
	default:
		return openMode{}, ErrInvalidMode
	}

	flags := mode[1:]
	if strings.Count(flags, "b") > 1 || strings.Count(flags, "+") > 1 ||
		strings.Trim(flags, "b+") != "" {
		return openMode{}, ErrInvalidMode
	}

	if strings.Contains(flags, "+") {
		m.read = true
		m.write = true
	}

	return m, nil
}
