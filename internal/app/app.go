package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atomicstack/emojid/internal/catalog"
	"github.com/atomicstack/emojid/internal/commit"
	"github.com/atomicstack/emojid/internal/logging/events"
	"github.com/atomicstack/emojid/internal/picker"
	"github.com/atomicstack/emojid/internal/prefs"
	"github.com/atomicstack/emojid/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCommitFailed is returned when the chosen symbol never reached the
// clipboard.
var ErrCommitFailed = errors.New("commit failed")

// Config describes user-provided application options.
type Config struct {
	PrefsPath  string
	Width      int
	Height     int
	ShowFooter bool
	Match      picker.MatchMode
	Paste      commit.Backend
	PasteDelay time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, err := NewSession(cfg, environMap(os.Environ()), commit.SystemClipboard{})
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Exit("killed")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	return Finish(model.Result())
}

// NewSession loads preferences and wires the picker, commit pipeline and UI
// model for one run.
func NewSession(cfg Config, env map[string]string, clip commit.Clipboard) (*ui.Model, error) {
	path := cfg.PrefsPath
	if path == "" {
		path = prefs.DefaultPath()
	}
	store := prefs.NewStore(path)
	loaded := store.Load()

	p, err := picker.New(catalog.Build(loaded.ExtraCategoryItems), picker.Options{
		StartCategory:        loaded.StartCategory(),
		RememberLastCategory: loaded.RememberLastCategory,
		Persister:            store,
		Match:                cfg.Match,
	})
	if err != nil {
		return nil, fmt.Errorf("build picker: %w", err)
	}

	pipeline := commit.NewPipeline(clip, commit.NewInjector(cfg.Paste, cfg.PasteDelay, env))
	events.App.Session(store.Path(), pipeline.Injector().Name(), loaded.AutoPaste)
	return ui.NewModel(ui.Options{
		Picker:     p,
		Pipeline:   pipeline,
		AutoPaste:  loaded.AutoPaste,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
	}), nil
}

// Finish maps the session result to the process outcome.
func Finish(res ui.Result) error {
	if err := res.Outcome.Err; err != nil {
		events.App.Exit("commit-failed")
		return fmt.Errorf("%w: %w", ErrCommitFailed, err)
	}
	if res.Committed {
		events.App.Exit("committed")
	} else {
		events.App.Exit("cancelled")
	}
	return nil
}

func environMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		env[key] = value
	}
	return env
}
