// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package backing prepares in-memory containers for an archive engine. It
// opens a [memstream.Stream] over the given bytes in one of the access modes
// [ModeRead], [ModeCreate] or [ModeUpdate], locates or initializes the
// trailer record and bundles everything in a [Config].
package backing
