package ui

import (
	"unicode"

	"github.com/atomicstack/emojid/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.input.CursorPos() {
		m.filterCursorDirty = true
	}
}

// editFilter runs a text edit and pushes the result into the picker.
func (m *Model) editFilter(edit func() bool) bool {
	before := m.input.CursorPos()
	if !edit() {
		return false
	}
	m.noteFilterCursorChange(before)
	m.errMsg = ""
	m.picker.SetFilter(m.input.Text)
	m.syncViewport()
	return true
}

// moveFilterCursor runs a cursor-only move.
func (m *Model) moveFilterCursor(move func() bool, word bool) bool {
	before := m.input.CursorPos()
	if !move() {
		return false
	}
	m.noteFilterCursorChange(before)
	if word {
		events.Filter.CursorWord(m.input.Cursor)
	} else {
		events.Filter.Cursor(m.input.Cursor)
	}
	return true
}

func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+u":
		if !m.editFilter(m.input.DeleteToStart) {
			return false
		}
		if m.input.Text == "" {
			events.Filter.Cleared(m.picker.ActiveCategory())
		}
		return true
	case "ctrl+w":
		return m.editFilter(m.input.DeleteWordBackward)
	case "ctrl+a":
		return m.moveFilterCursor(m.input.MoveStart, false)
	case "ctrl+e":
		return m.moveFilterCursor(m.input.MoveEnd, false)
	case "alt+b":
		return m.moveFilterCursor(m.input.MoveWordBackward, true)
	case "alt+f":
		return m.moveFilterCursor(m.input.MoveWordForward, true)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.editFilter(m.input.DeleteRuneBackward)
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		text := string(msg.Runes)
		return m.editFilter(func() bool { return m.input.Insert(text) })
	case tea.KeySpace:
		return m.editFilter(func() bool { return m.input.Insert(" ") })
	case tea.KeyLeft:
		return m.moveFilterCursor(m.input.MoveRuneBackward, false)
	case tea.KeyRight:
		return m.moveFilterCursor(m.input.MoveRuneForward, false)
	}
	return false
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.input.Text
	if text == "" {
		runes := []rune("(type to filter)")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := m.input.CursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
