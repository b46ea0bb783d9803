// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
)

// Action is the operation the command performs on the archive.
type Action int

const (
	// ActionList prints the entries of the archive.
	ActionList Action = iota
	// ActionCreate creates a new archive from the given files.
	ActionCreate
	// ActionAppend adds the given files to an existing archive.
	ActionAppend
	// ActionCat prints the content of entries.
	ActionCat
	// ActionExport writes the archive content as CPIO archive.
	ActionExport
)

var _ flag.Value = (*Action)(nil)

func (a Action) String() string {
	switch a {
	case ActionList:
		return "list"
	case ActionCreate:
		return "create"
	case ActionAppend:
		return "append"
	case ActionCat:
		return "cat"
	case ActionExport:
		return "export"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Set parses the action from its string representation.
func (a *Action) Set(s string) error {
	for candidate := ActionList; candidate <= ActionExport; candidate++ {
		if candidate.String() == s {
			*a = candidate
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalidAction, s)
}

// modifies reports whether the action writes the archive file.
func (a Action) modifies() bool {
	return a == ActionCreate || a == ActionAppend
}
