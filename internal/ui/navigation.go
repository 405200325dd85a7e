package ui

import (
	"github.com/atomicstack/emojid/internal/commit"
	"github.com/atomicstack/emojid/internal/picker"
	"github.com/atomicstack/emojid/internal/ui/command"
	uistate "github.com/atomicstack/emojid/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// commitResultMsg reports the pipeline outcome for a committed symbol.
type commitResultMsg struct {
	outcome commit.Outcome
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.picker.Closed() {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.cancel):
		return m.apply(picker.Cancel{})
	case key.Matches(keyMsg, m.keys.up):
		return m.apply(picker.MoveSelection{Delta: -1})
	case key.Matches(keyMsg, m.keys.down):
		return m.apply(picker.MoveSelection{Delta: 1})
	case key.Matches(keyMsg, m.keys.pageUp):
		return m.apply(picker.MoveSelection{Delta: -m.pageSize()})
	case key.Matches(keyMsg, m.keys.pageDown):
		return m.apply(picker.MoveSelection{Delta: m.pageSize()})
	case key.Matches(keyMsg, m.keys.next):
		return m.apply(picker.NextCategory{})
	case key.Matches(keyMsg, m.keys.prev):
		return m.apply(picker.PrevCategory{})
	case key.Matches(keyMsg, m.keys.commit):
		return m.apply(picker.CommitSelection{})
	}
	m.handleTextInput(keyMsg)
	return nil
}

// apply feeds one event to the picker and turns the outcome into a command.
func (m *Model) apply(ev picker.Event) tea.Cmd {
	out := m.picker.Apply(ev)
	m.syncViewport()
	if out.Committed {
		return m.commitCmd(out.Symbol)
	}
	if out.Closed {
		return tea.Quit
	}
	return nil
}

func (m *Model) commitCmd(symbol string) tea.Cmd {
	m.committing = true
	m.errMsg = ""
	pipeline := m.pipeline
	autoPaste := m.autoPaste
	return m.bus.Execute(command.Request{
		ID:    "commit",
		Label: symbol,
		Run: func() tea.Msg {
			return commitResultMsg{outcome: pipeline.Commit(symbol, autoPaste)}
		},
	})
}

func (m *Model) handleCommitResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(commitResultMsg)
	if !ok {
		return nil
	}
	m.committing = false
	m.result = Result{Committed: res.outcome.Err == nil, Outcome: res.outcome}
	if res.outcome.Err != nil {
		m.errMsg = res.outcome.Err.Error()
	}
	return tea.Quit
}

func (m *Model) pageSize() int {
	return uistate.PageSize(len(m.picker.View()), m.maxVisibleItems())
}

func (m *Model) syncViewport() {
	m.viewport.EnsureVisible(m.picker.Highlighted(), len(m.picker.View()), m.maxVisibleItems())
}
