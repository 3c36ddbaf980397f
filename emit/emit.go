// Package emit writes generated files and compares them with what is on disk.
package emit

import (
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/teranos/enumgen/errors"
	"github.com/teranos/enumgen/sourcefs"
)

// File is a rendered output together with what the path held before
type File struct {
	Path     string
	Content  string
	Previous string
	Exists   bool
}

// Changed reports whether writing would alter the file
func (f File) Changed() bool {
	return !f.Exists || f.Previous != f.Content
}

// Emitter renders headers and reads and writes output files
type Emitter struct {
	FS  sourcefs.FS
	Now func() time.Time
}

// New returns an Emitter on fsys using the wall clock
func New(fsys sourcefs.FS) *Emitter {
	return &Emitter{FS: fsys, Now: time.Now}
}

// Prepare renders header plus body for path without writing anything.
// A missing file is fine; any other read failure is an output error for
// this file only.
func (e *Emitter) Prepare(path string, header Header, body string) (File, error) {
	f := File{Path: path}

	previous, err := e.FS.ReadFile(path)
	switch {
	case err == nil:
		f.Previous = previous
		f.Exists = true
	case sourcefs.IsNotExist(err):
	default:
		return f, errors.WrapOutputWrite(err, "failed to read existing "+path)
	}

	header.Year = ResolveYear(header.Year, f.Previous, e.Now())
	f.Content = header.String() + body
	return f, nil
}

// Write replaces the file content. The output directory is never created.
func (e *Emitter) Write(f File) error {
	if err := e.FS.WriteFile(f.Path, f.Content); err != nil {
		missingDir := sourcefs.IsNotExist(err)
		err = errors.WrapOutputWrite(err, "failed to write "+f.Path)
		if missingDir {
			err = errors.WithHint(err, "create the output directory or fix custom_string_convertible_dir")
		}
		return err
	}
	return nil
}

// Diff returns a unified diff from the on-disk content to the generated one.
// Empty when the file is unchanged.
func Diff(f File) (string, error) {
	if !f.Changed() {
		return "", nil
	}
	from := f.Path
	if !f.Exists {
		from = "/dev/null"
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(f.Previous),
		B:        difflib.SplitLines(f.Content),
		FromFile: from,
		ToFile:   f.Path + " (generated)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", errors.Wrapf(err, "failed to diff %s", f.Path)
	}
	return text, nil
}
