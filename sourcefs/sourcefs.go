// Package sourcefs is the file system capability the generator core runs on:
// read a file, list source files under a root, write a file.
//
// OS works on disk. Mem is an in-memory tree, usually built from a txtar
// archive, used by tests and by "enumgen scan --txtar".
package sourcefs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/teranos/enumgen/errors"
)

// FS is the minimal file system surface used by the generator.
type FS interface {
	// ReadFile returns the full text of a file. Missing files return an
	// error matching fs.ErrNotExist.
	ReadFile(path string) (string, error)

	// Glob lists files with extension ext (without dot) below root, recursively,
	// in lexical walk order. Hidden files and directories are skipped.
	// A missing root yields no files and no error.
	Glob(root, ext string) ([]string, error)

	// WriteFile replaces the content of path. The parent directory must exist.
	WriteFile(path, content string) error
}

// OS implements FS on the local disk
type OS struct{}

// NewOS returns the disk-backed FS
func NewOS() OS {
	return OS{}
}

// ReadFile implements FS
func (OS) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Glob implements FS
func (OS) Glob(root, ext string) ([]string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	suffix := "." + ext
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), suffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk %s", root)
	}
	return files, nil
}

// WriteFile implements FS
func (OS) WriteFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

// IsNotExist reports whether err says a file is missing, through wrapping
func IsNotExist(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, fs.ErrNotExist) || os.IsNotExist(errors.UnwrapAll(err))
}

// Dirs lists root and every non-hidden directory below it. Used by watch mode
// to register fsnotify watches, which are not recursive.
func Dirs(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk %s", root)
	}
	return dirs, nil
}

// isHidden matches the "**" glob rule: dot-entries are not traversed
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
