package ui

import (
	"reflect"

	"github.com/atomicstack/emojid/internal/commit"
	"github.com/atomicstack/emojid/internal/picker"
	"github.com/atomicstack/emojid/internal/theme"
	"github.com/atomicstack/emojid/internal/ui/command"
	uistate "github.com/atomicstack/emojid/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Picker     *picker.Picker
	Pipeline   *commit.Pipeline
	AutoPaste  bool
	Width      int
	Height     int
	ShowFooter bool
}

// Result summarises how the session ended.
type Result struct {
	Committed bool
	Outcome   commit.Outcome
}

// Model implements the Bubble Tea model for the picker.
type Model struct {
	picker      *picker.Picker
	pipeline    *commit.Pipeline
	autoPaste   bool
	input       uistate.Input
	viewport    uistate.Viewport
	keys        keyMap
	help        help.Model
	errMsg      string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	committing  bool
	result      Result

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
	bus      *command.Bus
}

// NewModel initialises the UI around an already constructed picker.
func NewModel(opts Options) *Model {
	pipeline := opts.Pipeline
	if pipeline == nil {
		pipeline = commit.NewPipeline(nil, nil)
	}
	h := help.New()
	h.ShowAll = false
	m := &Model{
		picker:     opts.Picker,
		pipeline:   pipeline,
		autoPaste:  opts.AutoPaste,
		keys:       newKeyMap(),
		help:       h,
		showFooter: opts.ShowFooter,
		bus:        command.New(),
	}
	m.input.Set(opts.Picker.Filter(), len([]rune(opts.Picker.Filter())))
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.syncViewport()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Result reports the session outcome once the program has exited.
func (m *Model) Result() Result {
	return m.result
}

// Picker exposes the underlying picker state.
func (m *Model) Picker() *picker.Picker {
	return m.picker
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(commitResultMsg{}):   m.handleCommitResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
