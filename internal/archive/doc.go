// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package archive builds, inspects and modifies ZIP containers entirely in
// memory. Each [Archive] works on a [backing.Config], so the regular
// [archive/zip] reader and writer operate on a [memstream.Stream] instead of
// a file.
//
// Besides the stored and deflate methods, entries may be compressed with
// zstd (method 93).
package archive
