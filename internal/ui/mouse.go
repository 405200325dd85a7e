package ui

import (
	"github.com/atomicstack/emojid/internal/picker"
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg maps clicks on tabs and items to picker events. The wheel
// moves the highlight.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || m.picker.Closed() {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		return m.apply(picker.MoveSelection{Delta: -1})
	case tea.MouseButtonWheelDown:
		return m.apply(picker.MoveSelection{Delta: 1})
	case tea.MouseButtonLeft:
		if ev.Action != tea.MouseActionPress {
			return nil
		}
	default:
		return nil
	}
	if ev.Y == tabsRow {
		if idx := m.tabAt(ev.X); idx >= 0 {
			return m.apply(picker.SelectCategory{Index: idx})
		}
		return nil
	}
	if idx := m.itemAt(ev.Y); idx >= 0 {
		return m.apply(picker.SelectItem{Index: idx})
	}
	return nil
}

func (m *Model) tabAt(x int) int {
	for i, span := range m.tabSpans() {
		if x >= span.start && x < span.end {
			return i
		}
	}
	return -1
}

// itemAt returns the view index drawn on row y, or -1.
func (m *Model) itemAt(y int) int {
	if y < itemsTop {
		return -1
	}
	total := len(m.picker.View())
	start, end := m.viewport.Window(total, m.maxVisibleItems())
	idx := start + (y - itemsTop)
	if idx >= end {
		return -1
	}
	return idx
}
