// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"strconv"
)

type limitedIntValue struct {
	Value    *int
	min, max int
}

func (u *limitedIntValue) String() string {
	if u.Value == nil {
		return "0"
	}

	return strconv.Itoa(*u.Value)
}

func (u *limitedIntValue) Set(s string) error {
	value, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if value < u.min {
		return fmt.Errorf("%d < %d: %w", value, u.min, ErrValueOutOfRange)
	}

	if value > u.max {
		return fmt.Errorf("%d > %d: %w", value, u.max, ErrValueOutOfRange)
	}

	*u.Value = value

	return nil
}
