package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	titleBase           = "Change Wallpaper"
	breadcrumbSeparator = " » "
	selectedMarker      = ">> "
	emptyListText       = "(no entries)"
)

// View implements tea.Model. It only reads state; the viewport is kept in
// sync from Update.
func (m *Model) View() string {
	width, height := m.viewSize()
	var below []string
	if info := m.currentInfo(); info != "" {
		below = append(below, styles.Info.Render(truncateText(info, width)))
	}
	if m.showFooter {
		below = append(below, styles.Footer.Render(truncateText(m.help.View(m.keys), width)))
	}
	panelH := height - len(below)
	if panelH < 3 {
		panelH = 3
	}
	rows := []string{m.renderListPanel(width, panelH)}
	rows = append(rows, below...)
	return strings.Join(rows, "\n")
}

func (m *Model) viewSize() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// renderListPanel builds the bordered entry list with exactly height rows and
// totalWidth columns. The title and scroll position sit in the top border.
func (m *Model) renderListPanel(totalWidth, height int) string {
	const (
		tlc = "┌"
		trc = "┐"
		blc = "└"
		brc = "┘"
		hz  = "─"
		vt  = "│"
	)

	innerW := totalWidth - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	entries := m.browser.Entries
	offset := m.browser.ViewportOffset
	if offset < 0 || offset >= len(entries) {
		offset = 0
	}

	titleSeg := " " + m.title() + " "
	scrollSeg := ""
	if n := len(entries); n > 0 {
		last := offset + innerH
		if last > n {
			last = n
		}
		scrollSeg = fmt.Sprintf(" %d/%d ", last, n)
	}
	// tlc + hz + title + dashes + scroll + hz + trc spans totalWidth.
	dashes := totalWidth - 4 - lipgloss.Width(titleSeg) - lipgloss.Width(scrollSeg)
	if dashes < 0 {
		scrollSeg = ""
		dashes = totalWidth - 4 - lipgloss.Width(titleSeg)
	}
	if dashes < 0 {
		room := totalWidth - 4
		if room < 1 {
			room = 1
		}
		titleSeg = truncate.StringWithTail(titleSeg, uint(room), "…")
		dashes = totalWidth - 4 - lipgloss.Width(titleSeg)
	}
	if dashes < 0 {
		dashes = 0
	}
	topLine := styles.Border.Render(tlc+hz) +
		styles.Title.Render(titleSeg) +
		styles.Border.Render(strings.Repeat(hz, dashes)) +
		styles.Scroll.Render(scrollSeg) +
		styles.Border.Render(hz+trc)
	bottomLine := styles.Border.Render(blc + strings.Repeat(hz, innerW) + brc)

	pad := strings.Repeat(" ", lipgloss.Width(selectedMarker))
	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		idx := offset + i
		var content string
		style := styles.Item
		switch {
		case len(entries) == 0 && i == 0:
			content = emptyListText
			style = styles.Empty
		case idx < len(entries):
			if idx == m.browser.Selected {
				content = selectedMarker + entries[idx]
				style = styles.SelectedItem
			} else {
				content = pad + entries[idx]
			}
		}
		rows = append(rows, styles.Border.Render(vt)+style.Render(fitWidth(content, innerW))+styles.Border.Render(vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}

// title joins the fixed heading with the breadcrumb for the current path.
func (m *Model) title() string {
	crumb := breadcrumb(m.browser.Path, m.titlePrefix)
	if crumb == "" {
		return titleBase
	}
	return titleBase + breadcrumbSeparator + crumb
}

// breadcrumb strips prefix from path and joins the remaining path segments
// with breadcrumbSeparator. When path equals prefix only its last segment is
// kept.
func breadcrumb(path, prefix string) string {
	rel := path
	if trimmed := strings.TrimSpace(prefix); trimmed != "" {
		clean := filepath.Clean(trimmed)
		base := strings.TrimRight(clean, string(filepath.Separator))
		switch {
		case path == clean:
			rel = filepath.Base(clean)
		case strings.HasPrefix(path, base+string(filepath.Separator)):
			rel = path[len(base)+1:]
		}
	}
	parts := strings.FieldsFunc(rel, func(r rune) bool {
		return r == filepath.Separator || r == '/'
	})
	return strings.Join(parts, breadcrumbSeparator)
}

func (m *Model) maxVisibleItems() int {
	_, height := m.viewSize()
	used := 2 // top and bottom border
	if m.currentInfo() != "" {
		used++
	}
	if m.showFooter {
		used++
	}
	remain := height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	m.syncViewport()
	return nil
}

// fitWidth truncates or pads text to exactly width columns.
func fitWidth(text string, width int) string {
	w := lipgloss.Width(text)
	if w > width {
		text = truncate.StringWithTail(text, uint(width), "…")
		w = lipgloss.Width(text)
	}
	if w < width {
		text += strings.Repeat(" ", width-w)
	}
	return text
}

func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
