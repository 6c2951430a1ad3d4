package state

// List tracks cursor and viewport position over a counted collection. The
// items themselves live in the data stores; the list only knows how many
// there are.
type List struct {
	Cursor         int
	Count          int
	ViewportOffset int
}

// SetCount updates the collection size and clamps the cursor into range.
func (l *List) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	l.Count = count
	if l.Count == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor >= l.Count {
		l.Cursor = l.Count - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
}

// Up moves the cursor toward the first item, saturating.
func (l *List) Up() bool {
	return l.moveBy(-1)
}

// Down moves the cursor toward the last item, saturating.
func (l *List) Down() bool {
	return l.moveBy(1)
}

// Home moves the cursor to the first item.
func (l *List) Home() bool {
	if l.Count == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// End moves the cursor to the last item.
func (l *List) End() bool {
	if l.Count == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = l.Count - 1
	return old != l.Cursor
}

// PageUp moves the cursor up by the given page size.
func (l *List) PageUp(maxVisible int) bool {
	return l.moveBy(-l.pageSize(maxVisible))
}

// PageDown moves the cursor down by the given page size.
func (l *List) PageDown(maxVisible int) bool {
	return l.moveBy(l.pageSize(maxVisible))
}

func (l *List) moveBy(delta int) bool {
	if l.Count == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= l.Count {
		l.Cursor = l.Count - 1
	}
	return l.Cursor != old
}

func (l *List) pageSize(maxVisible int) int {
	if l.Count == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > l.Count {
		size = l.Count
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureVisible adjusts the viewport offset so the cursor stays on screen.
func (l *List) EnsureVisible(maxVisible int) {
	if l.Count == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= l.Count {
		l.Cursor = l.Count - 1
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := l.Count - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	upper := l.ViewportOffset + maxVisible - 1
	if l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
		if l.ViewportOffset < 0 {
			l.ViewportOffset = 0
		}
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
	}
}
