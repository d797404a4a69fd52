package lib

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type memoryFS struct {
	files map[string][]byte
	dirs  map[string]bool
}

func newMemoryFS() *memoryFS {
	return &memoryFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (m *memoryFS) addFile(path string, content string) {
	m.files[path] = []byte(content)
	m.dirs[filepath.Dir(path)] = true
}

func (m *memoryFS) addDir(path string) {
	m.dirs[path] = true
}

func (m *memoryFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return data, nil
}

func (m *memoryFS) ReadDir(path string) ([]os.DirEntry, error) {
	if !m.dirs[path] {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	var entries []os.DirEntry
	prefix := path + "/"
	for filePath := range m.files {
		if rest := strings.TrimPrefix(filePath, prefix); rest != filePath && !strings.Contains(rest, "/") {
			entries = append(entries, &memDirEntry{name: rest})
		}
	}
	for dirPath := range m.dirs {
		if rest := strings.TrimPrefix(dirPath, prefix); rest != dirPath && !strings.Contains(rest, "/") {
			entries = append(entries, &memDirEntry{name: rest, isDir: true})
		}
	}
	return entries, nil
}

func (m *memoryFS) Stat(path string) (os.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: filepath.Base(path)}, nil
	}
	if m.dirs[path] {
		return &memFileInfo{name: filepath.Base(path), isDir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

type memDirEntry struct {
	name  string
	isDir bool
}

func (e *memDirEntry) Name() string { return e.name }
func (e *memDirEntry) IsDir() bool  { return e.isDir }
func (e *memDirEntry) Type() fs.FileMode {
	if e.isDir {
		return fs.ModeDir
	}
	return 0
}
func (e *memDirEntry) Info() (fs.FileInfo, error) { return &memFileInfo{name: e.name, isDir: e.isDir}, nil }

type memFileInfo struct {
	name  string
	isDir bool
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0 }
func (f *memFileInfo) ModTime() time.Time { return time.Time{} }
func (f *memFileInfo) IsDir() bool        { return f.isDir }
func (f *memFileInfo) Sys() any           { return nil }

// writeCases lays out name -> content files in a fresh temporary folder.
func writeCases(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Error writing %s: %s", name, err)
		}
	}
	return dir
}
