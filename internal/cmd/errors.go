// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
)

var (
	// ErrHelp is returned when help or version is requested.
	ErrHelp = flag.ErrHelp

	// ErrReadBuildInfo is returned if build info can not be read.
	ErrReadBuildInfo = errors.New("failed to read build info")

	// ErrEmptyFilePath is returned if a file path flag is given an empty
	// value.
	ErrEmptyFilePath = errors.New("file path must not be empty")

	// ErrNotRegularFile is returned if an input file is not a regular file.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrInvalidAction is returned for unknown actions.
	ErrInvalidAction = errors.New("invalid action")

	// ErrValueOutOfRange is returned if a numeric flag value exceeds its
	// limits.
	ErrValueOutOfRange = errors.New("value is outside of range")
)

// ParseArgsError wraps errors that occur during argument parsing.
type ParseArgsError struct {
	err error
	msg string
}

func (e *ParseArgsError) Error() string {
	if e.err == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *ParseArgsError) Is(other error) bool {
	_, ok := other.(*ParseArgsError)
	return ok
}

func (e *ParseArgsError) Unwrap() error {
	return e.err
}
