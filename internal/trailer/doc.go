// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package trailer handles the end of central directory record of ZIP
// containers. The record is the anchor of the container: it carries the
// entry counts and the position of the central directory and is located by
// scanning backwards from the end of the data.
package trailer
