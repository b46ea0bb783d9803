// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package backing

import (
	"flag"
	"fmt"
)

// Mode is the access mode a container is opened with.
type Mode int

const (
	// ModeRead opens an existing container read-only.
	ModeRead Mode = iota
	// ModeCreate starts a new, empty container.
	ModeCreate
	// ModeUpdate opens an existing container for modification.
	ModeUpdate
)

var _ flag.Value = (*Mode)(nil)

func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeCreate:
		return "create"
	case ModeUpdate:
		return "update"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Set parses the mode from its string representation.
func (m *Mode) Set(s string) error {
	switch s {
	case "read":
		*m = ModeRead
	case "create":
		*m = ModeCreate
	case "update":
		*m = ModeUpdate
	default:
		return fmt.Errorf("%w: %s", ErrInvalidMode, s)
	}

	return nil
}

// streamMode returns the fopen mode the stream is opened with.
func (m Mode) streamMode() (string, error) {
	switch m {
	case ModeRead:
		return "rb", nil
	case ModeCreate:
		return "w+b", nil
	case ModeUpdate:
		return "r+b", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidMode, m)
	}
}
