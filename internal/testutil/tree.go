package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Tree creates a temporary directory populated with entries and returns its
// path. See MakeTree for the entry syntax.
func Tree(t testing.TB, entries ...string) string {
	t.Helper()
	root := t.TempDir()
	MakeTree(t, root, entries...)
	return root
}

// MakeTree creates entries beneath root. Names ending in "/" become
// directories, anything else becomes an empty file. Missing parents are
// created.
func MakeTree(t testing.TB, root string, entries ...string) {
	t.Helper()
	for _, entry := range entries {
		path := filepath.Join(root, filepath.FromSlash(entry))
		if strings.HasSuffix(entry, "/") {
			if err := os.MkdirAll(path, 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", path, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

// Symlink creates a symbolic link at root/name pointing to target, skipping
// the test when the platform refuses.
func Symlink(t testing.TB, root, target, name string) {
	t.Helper()
	if err := os.Symlink(target, filepath.Join(root, name)); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
}
