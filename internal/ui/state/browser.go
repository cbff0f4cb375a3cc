package state

import (
	"path/filepath"

	"github.com/atomicstack/wallpicker/internal/scan"
)

// NoSelection marks a browser without a highlighted entry.
const NoSelection = -1

// Browser holds the directory being browsed, its entries and the selection.
// Entries lists subdirectories first, then files carrying Extension.
type Browser struct {
	Path           string
	Entries        []string
	Selected       int
	ViewportOffset int
	Extension      string

	dirCount int
}

// New scans path and returns a browser positioned on its first entry.
func New(path, ext string) (*Browser, error) {
	b := &Browser{Extension: ext, Selected: NoSelection}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if err := b.load(abs); err != nil {
		return nil, err
	}
	if len(b.Entries) > 0 {
		b.Selected = 0
	}
	return b, nil
}

// Len returns the number of entries.
func (b *Browser) Len() int {
	return len(b.Entries)
}

// HasSelection reports whether an entry is highlighted.
func (b *Browser) HasSelection() bool {
	return b.Selected >= 0 && b.Selected < len(b.Entries)
}

// SelectedEntry returns the highlighted entry name.
func (b *Browser) SelectedEntry() (string, bool) {
	if !b.HasSelection() {
		return "", false
	}
	return b.Entries[b.Selected], true
}

// IsDir reports whether the entry at idx came from the subdirectory scan.
func (b *Browser) IsDir(idx int) bool {
	return idx >= 0 && idx < b.dirCount && idx < len(b.Entries)
}

// IsFile reports whether the entry at idx is a file with the target extension.
func (b *Browser) IsFile(idx int) bool {
	if idx < b.dirCount || idx >= len(b.Entries) {
		return false
	}
	return scan.HasExtension(b.Entries[idx], b.Extension)
}

// load replaces the browser contents with a fresh scan of path. Nothing is
// modified when the scan fails.
func (b *Browser) load(path string) error {
	listing, err := scan.Scan(path, b.Extension)
	if err != nil {
		return err
	}
	b.Path = path
	b.Entries = listing.Entries()
	b.dirCount = len(listing.Dirs)
	b.Selected = NoSelection
	b.ViewportOffset = 0
	return nil
}
