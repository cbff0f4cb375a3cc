package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/wallpicker/internal/logging"
	"github.com/atomicstack/wallpicker/internal/ui/command"
	uistate "github.com/atomicstack/wallpicker/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func resultFor(label string, err error) command.Result {
	return command.Result{ID: dispatchID, Label: label, Path: "/pics/" + label, Err: err}
}

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wallpicker.log")
	logging.Configure(path)
	t.Cleanup(func() { logging.Configure("") })
	return path
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func selectEntry(t *testing.T, b *uistate.Browser, name string) {
	t.Helper()
	for i, entry := range b.Entries {
		if entry == name {
			b.Selected = i
			return
		}
	}
	t.Fatalf("entry %q not found in %v", name, b.Entries)
}

func TestQuitKey(t *testing.T) {
	m, _, _ := newTestModel(t, Options{}, "bg.jpg")
	h := NewHarness(m)
	h.Send(runeMsg('q'))
	if !h.Quit() {
		t.Fatalf("expected q to quit")
	}
}

func TestArrowKeysMoveSelection(t *testing.T) {
	m, _, _ := newTestModel(t, Options{}, "a/", "b/", "c.jpg")
	h := NewHarness(m)
	b := m.Browser()
	if b.Selected != 0 {
		t.Fatalf("expected initial selection 0, got %d", b.Selected)
	}
	h.Send(keyMsg(tea.KeyDown))
	if b.Selected != 1 {
		t.Fatalf("expected 1 after down, got %d", b.Selected)
	}
	h.Send(keyMsg(tea.KeyUp))
	h.Send(keyMsg(tea.KeyUp))
	if b.Selected != 2 {
		t.Fatalf("expected wrap to 2 after two ups, got %d", b.Selected)
	}
	h.Send(keyMsg(tea.KeyLeft))
	if b.Selected != uistate.NoSelection {
		t.Fatalf("expected left to clear selection, got %d", b.Selected)
	}
	h.Send(keyMsg(tea.KeyUp))
	if b.Selected != 2 {
		t.Fatalf("expected up from no selection to pick last, got %d", b.Selected)
	}
}

func TestOtherKeysAreIgnored(t *testing.T) {
	m, d, root := newTestModel(t, Options{}, "a/", "c.jpg")
	h := NewHarness(m)
	for _, msg := range []tea.KeyMsg{runeMsg('j'), runeMsg('k'), keyMsg(tea.KeyRight), keyMsg(tea.KeyEsc), keyMsg(tea.KeyTab), keyMsg(tea.KeyCtrlC)} {
		h.Send(msg)
	}
	b := m.Browser()
	if h.Quit() || b.Selected != 0 || b.Path != root || len(d.paths) != 0 {
		t.Fatalf("expected unmapped keys to do nothing, got quit=%v selected=%d path=%q", h.Quit(), b.Selected, b.Path)
	}
}

func TestEnterDescendsAndBackspaceAscends(t *testing.T) {
	m, _, root := newTestModel(t, Options{}, "Nature/", "Abstract/", "bg.jpg", "notes.txt", "Nature/lake.jpg")
	h := NewHarness(m)
	b := m.Browser()
	selectEntry(t, b, "Nature")
	h.Send(keyMsg(tea.KeyEnter))
	if b.Path != filepath.Join(root, "Nature") {
		t.Fatalf("expected to descend into Nature, got %q", b.Path)
	}
	if len(b.Entries) != 1 || b.Entries[0] != "lake.jpg" || b.Selected != uistate.NoSelection {
		t.Fatalf("unexpected state after descend: %#v", b)
	}

	h.Send(keyMsg(tea.KeyBackspace))
	if b.Path != root {
		t.Fatalf("expected to ascend to %q, got %q", root, b.Path)
	}
	if b.Len() != 3 || b.Selected != uistate.NoSelection {
		t.Fatalf("unexpected state after ascend: %#v", b)
	}
}

func TestEnterWithoutSelectionDoesNothing(t *testing.T) {
	m, d, root := newTestModel(t, Options{}, "Nature/", "bg.jpg")
	h := NewHarness(m)
	h.Send(keyMsg(tea.KeyLeft))
	h.Send(keyMsg(tea.KeyEnter))
	if m.Browser().Path != root || len(d.paths) != 0 {
		t.Fatalf("expected no change without a selection")
	}
}

func TestEnterOnFileDispatches(t *testing.T) {
	m, d, root := newTestModel(t, Options{Verbose: true}, "Nature/", "bg.jpg")
	h := NewHarness(m)
	b := m.Browser()
	selectEntry(t, b, "bg.jpg")
	before := append([]string(nil), b.Entries...)
	h.Send(keyMsg(tea.KeyEnter))
	if len(d.paths) != 1 || d.paths[0] != filepath.Join(root, "bg.jpg") {
		t.Fatalf("expected dispatch of bg.jpg, got %v", d.paths)
	}
	if b.Path != root || len(b.Entries) != len(before) {
		t.Fatalf("expected browser unchanged after dispatch, got %#v", b)
	}
	if m.dispatching {
		t.Fatalf("expected dispatch to have completed")
	}
	if m.currentInfo() != "Wallpaper set: bg.jpg" {
		t.Fatalf("expected verbose info, got %q", m.currentInfo())
	}
}

func TestEnterDescendsWhileDispatching(t *testing.T) {
	m, d, root := newTestModel(t, Options{}, "Nature/", "bg.jpg")
	b := m.Browser()
	selectEntry(t, b, "bg.jpg")
	pending := m.activate()
	if pending == nil || !m.dispatching {
		t.Fatalf("expected a dispatch to be in flight")
	}

	h := NewHarness(m)
	selectEntry(t, b, "Nature")
	h.Send(keyMsg(tea.KeyEnter))
	if b.Path != filepath.Join(root, "Nature") {
		t.Fatalf("expected to descend while dispatching, got %q", b.Path)
	}
	if !m.dispatching {
		t.Fatalf("expected the first dispatch to still be pending")
	}

	h.Send(pending())
	if m.dispatching {
		t.Fatalf("expected dispatch result to clear the pending state")
	}
	if len(d.paths) != 1 || d.paths[0] != filepath.Join(root, "bg.jpg") {
		t.Fatalf("expected one dispatch of bg.jpg, got %v", d.paths)
	}
}

func TestSecondFileSkippedWhileDispatching(t *testing.T) {
	m, d, root := newTestModel(t, Options{}, "a.jpg", "b.jpg")
	b := m.Browser()
	selectEntry(t, b, "a.jpg")
	pending := m.activate()
	if pending == nil {
		t.Fatalf("expected first activation to dispatch")
	}
	selectEntry(t, b, "b.jpg")
	if cmd := m.activate(); cmd != nil {
		t.Fatalf("expected second file activation to be skipped")
	}
	pending()
	if len(d.paths) != 1 || d.paths[0] != filepath.Join(root, "a.jpg") {
		t.Fatalf("expected only a.jpg to be dispatched, got %v", d.paths)
	}
	if b.Path != root {
		t.Fatalf("expected browser to stay in %q, got %q", root, b.Path)
	}
}

func TestScanFailureIsLoggedAndStateKept(t *testing.T) {
	logPath := useTempLog(t)
	m, _, root := newTestModel(t, Options{}, "Nature/", "bg.jpg")
	h := NewHarness(m)
	b := m.Browser()
	selectEntry(t, b, "Nature")
	if err := os.RemoveAll(filepath.Join(root, "Nature")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	h.Send(keyMsg(tea.KeyEnter))
	if b.Path != root || b.Len() != 2 {
		t.Fatalf("expected state unchanged, got %#v", b)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected scan failure in log")
	}
	if view := h.View(); containsAny(view, "directory does not exist") {
		t.Fatalf("expected scan failure to stay out of the view:\n%s", view)
	}
}

func TestViewportFollowsSelection(t *testing.T) {
	entries := make([]string, 0, 12)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		entries = append(entries, name+".jpg")
	}
	m, _, _ := newTestModel(t, Options{Width: 40, Height: 6}, entries...)
	h := NewHarness(m)
	for i := 0; i < 7; i++ {
		h.Send(keyMsg(tea.KeyDown))
	}
	b := m.Browser()
	if b.Selected != 7 {
		t.Fatalf("expected selection 7, got %d", b.Selected)
	}
	if b.ViewportOffset != 4 {
		t.Fatalf("expected offset 4 with 4 visible rows, got %d", b.ViewportOffset)
	}
}
