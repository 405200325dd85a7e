// Package state holds UI-local editing state that the picker itself does not
// model: the filter line editor and the item list viewport.
package state

import "unicode"

// Input is a single-line text editor with a rune-indexed cursor.
type Input struct {
	Text   string
	Cursor int
}

// Set replaces the text and places the cursor, clamped to the text.
func (in *Input) Set(text string, cursor int) {
	in.Text = text
	n := len([]rune(text))
	if cursor < 0 {
		cursor = 0
	}
	if cursor > n {
		cursor = n
	}
	in.Cursor = cursor
}

// CursorPos returns the rune offset of the cursor.
func (in *Input) CursorPos() int {
	if in.Cursor < 0 {
		return 0
	}
	if n := len([]rune(in.Text)); in.Cursor > n {
		return n
	}
	return in.Cursor
}

// Insert inserts text at the cursor.
func (in *Input) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(in.Text)
	pos := in.CursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	in.Set(string(updated), pos+len(insert))
	return true
}

// DeleteRuneBackward deletes the rune before the cursor.
func (in *Input) DeleteRuneBackward() bool {
	runes := []rune(in.Text)
	pos := in.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	in.Set(string(updated), pos-1)
	return true
}

// DeleteWordBackward deletes the word preceding the cursor.
func (in *Input) DeleteWordBackward() bool {
	runes := []rune(in.Text)
	pos := in.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	in.Set(string(updated), i)
	return true
}

// DeleteToStart removes everything before the cursor.
func (in *Input) DeleteToStart() bool {
	runes := []rune(in.Text)
	pos := in.CursorPos()
	if pos == 0 {
		return false
	}
	in.Set(string(runes[pos:]), 0)
	return true
}

// MoveStart moves the cursor to the start.
func (in *Input) MoveStart() bool {
	if in.CursorPos() == 0 {
		return false
	}
	in.Cursor = 0
	return true
}

// MoveEnd moves the cursor to the end.
func (in *Input) MoveEnd() bool {
	end := len([]rune(in.Text))
	if in.CursorPos() == end {
		return false
	}
	in.Cursor = end
	return true
}

// MoveWordBackward moves the cursor to the start of the previous word.
func (in *Input) MoveWordBackward() bool {
	pos := in.CursorPos()
	i := wordStart([]rune(in.Text), pos)
	if i == pos {
		return false
	}
	in.Cursor = i
	return true
}

// MoveWordForward moves the cursor past the next word.
func (in *Input) MoveWordForward() bool {
	runes := []rune(in.Text)
	pos := in.CursorPos()
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	in.Cursor = i
	return true
}

// MoveRuneBackward moves the cursor one rune left.
func (in *Input) MoveRuneBackward() bool {
	pos := in.CursorPos()
	if pos == 0 {
		return false
	}
	in.Cursor = pos - 1
	return true
}

// MoveRuneForward moves the cursor one rune right.
func (in *Input) MoveRuneForward() bool {
	pos := in.CursorPos()
	if pos >= len([]rune(in.Text)) {
		return false
	}
	in.Cursor = pos + 1
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
