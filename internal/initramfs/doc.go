// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package initramfs writes file trees as CPIO (newc) archives, the format the
// Linux kernel expects for initramfs images. Any [io/fs.FS] can be written,
// in particular the content of an in-memory container.
package initramfs
