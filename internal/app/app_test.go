package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/emojid/internal/commit"
	"github.com/atomicstack/emojid/internal/logging"
	"github.com/atomicstack/emojid/internal/prefs"
	"github.com/atomicstack/emojid/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

type memoryClipboard struct {
	text string
}

func (c *memoryClipboard) WriteText(text string) error {
	c.text = text
	return nil
}

func setup(t *testing.T, content string) Config {
	t.Helper()
	dir := t.TempDir()
	logging.Configure(filepath.Join(dir, "emojid.log"))
	t.Cleanup(func() { logging.Configure("") })
	path := filepath.Join(dir, "emojid", "config.toml")
	if content != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}
	return Config{PrefsPath: path, Paste: commit.BackendNone}
}

func TestNewSessionStartsOnRememberedCategory(t *testing.T) {
	cfg := setup(t, "last_category = 2\n")
	model, err := NewSession(cfg, nil, &memoryClipboard{})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if got := model.Picker().ActiveCategory(); got != 2 {
		t.Fatalf("expected remembered category 2, got %d", got)
	}
}

func TestNewSessionAppendsExtraCategory(t *testing.T) {
	cfg := setup(t, "[kaomoji]\nitems = [\"(^_^)\"]\n")
	model, err := NewSession(cfg, nil, &memoryClipboard{})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	cats := model.Picker().Categories()
	last := cats[len(cats)-1]
	if last.Name != "Kaomoji" || len(last.Items) != 1 || last.Items[0] != "(^_^)" {
		t.Fatalf("expected extra category last, got %#v", last)
	}
}

func TestNewSessionKeepsEmptyExtraCategory(t *testing.T) {
	cfg := setup(t, "[kaomoji]\nitems = []\n")
	model, err := NewSession(cfg, nil, &memoryClipboard{})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	cats := model.Picker().Categories()
	last := cats[len(cats)-1]
	if last.Name != "Kaomoji" || len(last.Items) != 0 {
		t.Fatalf("expected empty Kaomoji tab last, got %#v", last)
	}
}

func TestSessionPersistsCategoryChange(t *testing.T) {
	cfg := setup(t, "")
	model, err := NewSession(cfg, nil, &memoryClipboard{})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	h := ui.NewHarness(model)
	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	if got := prefs.NewStore(cfg.PrefsPath).Load().LastCategory; got != 1 {
		t.Fatalf("expected persisted category 1, got %d", got)
	}
}

func TestSessionDoesNotPersistWhenNotRemembering(t *testing.T) {
	cfg := setup(t, "remember_last_category = false\nlast_category = 3\n")
	model, err := NewSession(cfg, nil, &memoryClipboard{})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if got := model.Picker().ActiveCategory(); got != 0 {
		t.Fatalf("expected first category when not remembering, got %d", got)
	}
	h := ui.NewHarness(model)
	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	content, err := os.ReadFile(cfg.PrefsPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(content), "last_category = 3") {
		t.Fatalf("expected file untouched, got:\n%s", content)
	}
}

func TestSessionCommitCopiesSymbol(t *testing.T) {
	cfg := setup(t, "")
	clip := &memoryClipboard{}
	model, err := NewSession(cfg, nil, clip)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	h := ui.NewHarness(model)
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if clip.text != "😀" {
		t.Fatalf("expected 😀 copied, got %q", clip.text)
	}
	if err := Finish(model.Result()); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
}

func TestFinishReportsClipboardFailure(t *testing.T) {
	setup(t, "")
	res := ui.Result{Outcome: commit.Outcome{Symbol: "😀", Err: commit.ErrClipboardUnavailable}}
	err := Finish(res)
	if !errors.Is(err, ErrCommitFailed) || !errors.Is(err, commit.ErrClipboardUnavailable) {
		t.Fatalf("expected ErrCommitFailed wrapping the cause, got %v", err)
	}
	if err := Finish(ui.Result{}); err != nil {
		t.Fatalf("expected cancel to succeed, got %v", err)
	}
}

func TestEnvironMap(t *testing.T) {
	env := environMap([]string{"TMUX=/tmp/tmux,1,0", "EMPTY=", "broken"})
	if env["TMUX"] != "/tmp/tmux,1,0" {
		t.Fatalf("unexpected TMUX %q", env["TMUX"])
	}
	if v, ok := env["EMPTY"]; !ok || v != "" {
		t.Fatal("expected empty value kept")
	}
	if _, ok := env["broken"]; ok {
		t.Fatal("expected entry without '=' dropped")
	}
}
