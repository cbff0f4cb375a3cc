package state

// MoveNext highlights the following entry, wrapping to the first. With no
// selection the first entry is highlighted.
func (b *Browser) MoveNext() bool {
	n := len(b.Entries)
	if n == 0 {
		return false
	}
	old := b.Selected
	if !b.HasSelection() {
		b.Selected = 0
	} else {
		b.Selected = (b.Selected + 1) % n
	}
	return old != b.Selected
}

// MovePrevious highlights the preceding entry, wrapping to the last. With no
// selection the last entry is highlighted.
func (b *Browser) MovePrevious() bool {
	n := len(b.Entries)
	if n == 0 {
		return false
	}
	old := b.Selected
	if !b.HasSelection() || b.Selected == 0 {
		b.Selected = n - 1
	} else {
		b.Selected--
	}
	return old != b.Selected
}

// Unselect clears the highlight.
func (b *Browser) Unselect() bool {
	old := b.Selected
	b.Selected = NoSelection
	return old != NoSelection
}

// EnsureCursorVisible adjusts the viewport offset so the selection stays
// visible. Without a selection the offset is only clamped.
func (b *Browser) EnsureCursorVisible(maxVisible int) {
	if len(b.Entries) == 0 {
		b.Selected = NoSelection
		b.ViewportOffset = 0
		return
	}
	if b.Selected >= len(b.Entries) {
		b.Selected = len(b.Entries) - 1
	}
	if maxVisible <= 0 {
		b.ViewportOffset = 0
		return
	}
	maxOffset := len(b.Entries) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if b.ViewportOffset > maxOffset {
		b.ViewportOffset = maxOffset
	}
	if b.ViewportOffset < 0 {
		b.ViewportOffset = 0
	}
	if !b.HasSelection() {
		return
	}
	if b.Selected < b.ViewportOffset {
		b.ViewportOffset = b.Selected
	}
	upper := b.ViewportOffset + maxVisible - 1
	if b.Selected > upper {
		b.ViewportOffset = b.Selected - maxVisible + 1
		if b.ViewportOffset > maxOffset {
			b.ViewportOffset = maxOffset
		}
	}
}
