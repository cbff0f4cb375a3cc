package ui

import (
	"path/filepath"

	"github.com/atomicstack/wallpicker/internal/logging"
	"github.com/atomicstack/wallpicker/internal/logging/events"
	"github.com/atomicstack/wallpicker/internal/ui/command"
	uistate "github.com/atomicstack/wallpicker/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const dispatchID = "wallpaper"

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		events.App.Quit(m.browser.Path)
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Unselect):
		m.unselect()
	case key.Matches(keyMsg, m.keys.Next):
		m.moveNext()
	case key.Matches(keyMsg, m.keys.Previous):
		m.movePrevious()
	case key.Matches(keyMsg, m.keys.Ascend):
		m.ascend()
	case key.Matches(keyMsg, m.keys.Activate):
		return m.activate()
	}
	return nil
}

func (m *Model) moveNext() {
	if m.browser.MoveNext() {
		events.Nav.Cursor(m.browser.Path, m.browser.Selected)
	}
	m.syncViewport()
}

func (m *Model) movePrevious() {
	if m.browser.MovePrevious() {
		events.Nav.Cursor(m.browser.Path, m.browser.Selected)
	}
	m.syncViewport()
}

func (m *Model) unselect() {
	if m.browser.Unselect() {
		events.Nav.Unselect(m.browser.Path)
	}
}

func (m *Model) ascend() {
	from := m.browser.Path
	moved, err := m.browser.Ascend()
	if err != nil {
		m.logScanError(filepath.Dir(from), err)
		return
	}
	if moved {
		events.Nav.Ascend(from, m.browser.Path, m.browser.Len())
		m.syncViewport()
	}
}

// activate descends into a directory or queues a dispatch for a file. A file
// activated while another dispatch is running is dropped; directories are
// always entered.
func (m *Model) activate() tea.Cmd {
	from := m.browser.Path
	act, err := m.browser.Activate()
	if err != nil {
		m.logScanError(act.Path, err)
		return nil
	}
	switch act.Kind {
	case uistate.ActivationDescend:
		events.Nav.Descend(from, m.browser.Path, m.browser.Len())
		m.syncViewport()
	case uistate.ActivationDispatch:
		if m.dispatching {
			events.Command.Skip(dispatchID, act.Path)
			return nil
		}
		m.dispatching = true
		m.pendingLabel = filepath.Base(act.Path)
		return m.bus.Execute(command.Request{ID: dispatchID, Label: m.pendingLabel, Path: act.Path})
	}
	return nil
}

func (m *Model) logScanError(path string, err error) {
	logging.Error(err)
	events.Nav.ScanError(path, err)
}

func (m *Model) syncViewport() {
	if m.browser == nil {
		return
	}
	m.browser.EnsureCursorVisible(m.maxVisibleItems())
}
