package sourcefs

import (
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/txtar"

	"github.com/teranos/enumgen/errors"
)

// Mem is an in-memory FS. Paths are slash-separated and cleaned on entry.
type Mem struct {
	files map[string]string
	dirs  map[string]bool
}

// NewMem returns an empty in-memory FS. "." always exists.
func NewMem() *Mem {
	return &Mem{
		files: make(map[string]string),
		dirs:  map[string]bool{".": true},
	}
}

// FromTxtar builds a Mem from a txtar archive. An entry whose name ends in
// "/" declares an empty directory.
//
//	-- Core/Status.swift --
//	@objc public enum Status: Int { case ok }
//	-- Core/Generated/ --
func FromTxtar(data []byte) *Mem {
	m := NewMem()
	archive := txtar.Parse(data)
	for _, f := range archive.Files {
		if strings.HasSuffix(f.Name, "/") {
			m.MkdirAll(f.Name)
			continue
		}
		m.Add(f.Name, string(f.Data))
	}
	return m
}

// Add stores a file, creating its parent directories
func (m *Mem) Add(name, content string) {
	name = clean(name)
	m.files[name] = content
	m.MkdirAll(path.Dir(name))
}

// MkdirAll registers dir and its parents
func (m *Mem) MkdirAll(dir string) {
	for dir = clean(dir); ; dir = path.Dir(dir) {
		m.dirs[dir] = true
		if dir == "." || dir == "/" {
			return
		}
	}
}

// Files returns all file names in sorted order
func (m *Mem) Files() []string {
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReadFile implements FS
func (m *Mem) ReadFile(name string) (string, error) {
	content, ok := m.files[clean(name)]
	if !ok {
		return "", &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return content, nil
}

// Glob implements FS
func (m *Mem) Glob(root, ext string) ([]string, error) {
	root = clean(root)
	suffix := "." + ext

	var matches []string
	for _, name := range m.Files() {
		rel, ok := relativeTo(root, name)
		if !ok || !strings.HasSuffix(name, suffix) || hasHiddenSegment(rel) {
			continue
		}
		matches = append(matches, name)
	}
	return matches, nil
}

// WriteFile implements FS
func (m *Mem) WriteFile(name, content string) error {
	name = clean(name)
	if !m.dirs[path.Dir(name)] {
		return errors.WithStack(&fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist})
	}
	m.files[name] = content
	return nil
}

func clean(name string) string {
	return path.Clean(filepath.ToSlash(name))
}

func relativeTo(root, name string) (string, bool) {
	if root == "." {
		return name, true
	}
	if !strings.HasPrefix(name, root+"/") {
		return "", false
	}
	return strings.TrimPrefix(name, root+"/"), true
}

func hasHiddenSegment(rel string) bool {
	for _, seg := range strings.Split(rel, "/") {
		if isHidden(seg) {
			return true
		}
	}
	return false
}
