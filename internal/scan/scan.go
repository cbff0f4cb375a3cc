// Package scan reads the immediate children of a directory and splits them
// into subdirectories and files carrying the target extension.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Listing is the result of scanning one directory.
type Listing struct {
	Dirs  []string
	Files []string
}

// Entries returns the directory names followed by the file names.
func (l Listing) Entries() []string {
	out := make([]string, 0, len(l.Dirs)+len(l.Files))
	out = append(out, l.Dirs...)
	out = append(out, l.Files...)
	return out
}

// Scan lists subdirectories and matching files of path. Either both succeed
// or an error is returned; a partial listing is never produced.
func Scan(path, ext string) (Listing, error) {
	dirs, err := ListSubdirectories(path)
	if err != nil {
		return Listing{}, err
	}
	files, err := ListFilesWithExtension(path, ext)
	if err != nil {
		return Listing{}, err
	}
	return Listing{Dirs: dirs, Files: files}, nil
}

// ListSubdirectories returns the names of the immediate subdirectories of
// path. Symlinks to directories count as directories.
func ListSubdirectories(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("directory does not exist: %s: %w", path, fs.ErrNotExist)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", path, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		info, ok := stat(path, entry)
		if !ok || !info.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// ListFilesWithExtension returns the names of immediate regular files whose
// extension matches ext, ignoring case. Entries whose metadata cannot be read
// are skipped.
func ListFilesWithExtension(path, ext string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", path, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !HasExtension(entry.Name(), ext) {
			continue
		}
		info, ok := stat(path, entry)
		if !ok || !info.Mode().IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// HasExtension reports whether name ends in ext, compared case-insensitively.
// ext may be given with or without its leading dot.
func HasExtension(name, ext string) bool {
	want := strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if want == "" {
		return false
	}
	got := strings.TrimPrefix(filepath.Ext(name), ".")
	return strings.EqualFold(got, want)
}

func stat(dir string, entry fs.DirEntry) (fs.FileInfo, bool) {
	if entry.Type()&fs.ModeSymlink == 0 {
		info, err := entry.Info()
		return info, err == nil
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return info, err == nil
}
