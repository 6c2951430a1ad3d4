package state

// TextBuffer is a rune-addressed edit buffer with a cursor, used by the
// commit message, branch creation and search inputs.
type TextBuffer struct {
	runes  []rune
	cursor int
}

// String returns the buffer contents.
func (t *TextBuffer) String() string {
	return string(t.runes)
}

// Len reports the number of runes held.
func (t *TextBuffer) Len() int {
	return len(t.runes)
}

// Cursor reports the insertion point in runes.
func (t *TextBuffer) Cursor() int {
	return t.cursor
}

// Empty reports whether the buffer holds no runes.
func (t *TextBuffer) Empty() bool {
	return len(t.runes) == 0
}

// Set replaces the contents and moves the cursor to the end.
func (t *TextBuffer) Set(text string) {
	t.runes = []rune(text)
	t.cursor = len(t.runes)
}

// Clear empties the buffer.
func (t *TextBuffer) Clear() {
	t.runes = t.runes[:0]
	t.cursor = 0
}

// Insert places r at the cursor and advances past it.
func (t *TextBuffer) Insert(r rune) {
	t.runes = append(t.runes, 0)
	copy(t.runes[t.cursor+1:], t.runes[t.cursor:])
	t.runes[t.cursor] = r
	t.cursor++
}

// Backspace removes the rune before the cursor.
func (t *TextBuffer) Backspace() bool {
	if t.cursor == 0 {
		return false
	}
	t.runes = append(t.runes[:t.cursor-1], t.runes[t.cursor:]...)
	t.cursor--
	return true
}

// Delete removes the rune under the cursor.
func (t *TextBuffer) Delete() bool {
	if t.cursor >= len(t.runes) {
		return false
	}
	t.runes = append(t.runes[:t.cursor], t.runes[t.cursor+1:]...)
	return true
}

// Left moves the cursor one rune toward the start.
func (t *TextBuffer) Left() bool {
	if t.cursor == 0 {
		return false
	}
	t.cursor--
	return true
}

// Right moves the cursor one rune toward the end.
func (t *TextBuffer) Right() bool {
	if t.cursor >= len(t.runes) {
		return false
	}
	t.cursor++
	return true
}

// Home moves the cursor to the start.
func (t *TextBuffer) Home() {
	t.cursor = 0
}

// End moves the cursor past the last rune.
func (t *TextBuffer) End() {
	t.cursor = len(t.runes)
}
