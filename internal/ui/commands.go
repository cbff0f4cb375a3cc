package ui

import (
	"fmt"
	"time"

	"github.com/atomicstack/wallpicker/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

const infoDuration = 5 * time.Second

type tickMsg struct {
	at time.Time
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg{at: t}
	})
}

// handleTickMsg re-arms the tick; the redraw that follows every Update is
// what keeps the screen current.
func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tickMsg); !ok {
		return nil
	}
	if m.infoMsg != "" && m.currentInfo() == "" {
		m.syncViewport()
	}
	return tickCmd(m.tick)
}

// handleDispatchResultMsg clears the in-flight marker. Failures were already
// logged by the dispatcher and are not shown.
func (m *Model) handleDispatchResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	m.dispatching = false
	m.pendingLabel = ""
	if result.Err == nil && m.verbose {
		m.setInfo(fmt.Sprintf("Wallpaper set: %s", result.Label))
	}
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoDuration)
	m.syncViewport()
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
