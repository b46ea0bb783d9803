// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package initramfs

import (
	"fmt"
	"io/fs"
)

// Writer defines the archive writer interface.
type Writer interface {
	WriteRegular(path string, source fs.File, mode fs.FileMode) error
	WriteDirectory(path string, mode fs.FileMode) error
}

// WriteFS writes all files of the given [fs.FS] into the [Writer] in lexical
// order. Only directories and regular files are supported.
func WriteFS(fsys fs.FS, writer Writer) error {
	return fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == "." {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("info %s: %w", path, err)
		}

		switch info.Mode().Type() {
		case fs.ModeDir:
			return writer.WriteDirectory(path, info.Mode())
		case 0:
			return writeRegular(fsys, writer, path, info.Mode())
		default:
			return fmt.Errorf("%w: %s (%s)", ErrUnsupportedType, path, info.Mode().Type())
		}
	})
}

func writeRegular(fsys fs.FS, writer Writer, path string, mode fs.FileMode) error {
	source, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer source.Close()

	return writer.WriteRegular(path, source, mode)
}
