package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "emojid.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
		SetSession("")
	})
	return path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(data)
}

func TestConfigureCreatesDirectory(t *testing.T) {
	path := useTempLog(t)
	if Path() != path {
		t.Fatalf("expected log path %q, got %q", path, Path())
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Fatalf("expected log directory to exist: %v", err)
	}
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	useTempLog(t)
	Configure("   ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default log file, got %q", Path())
	}
}

func TestErrorAppendsLine(t *testing.T) {
	path := useTempLog(t)
	SetSession("session-1")
	Error(errors.New("clipboard exploded"))
	Error(nil)
	content := readLog(t, path)
	if !strings.Contains(content, "clipboard exploded") {
		t.Fatalf("expected error text in log, got %q", content)
	}
	if !strings.Contains(content, "session-1") {
		t.Fatalf("expected session id in log, got %q", content)
	}
	if strings.Count(strings.TrimSpace(content), "\n") != 0 {
		t.Fatalf("expected exactly one entry, got %q", content)
	}
}

func TestTraceRespectsToggle(t *testing.T) {
	path := useTempLog(t)
	Trace("picker.category", map[string]interface{}{"index": 1})
	if _, err := os.Stat(path); err == nil {
		t.Fatalf("expected no log file while tracing disabled")
	}

	SetTraceEnabled(true)
	Trace("picker.category", map[string]interface{}{"index": 1})
	content := readLog(t, path)
	if !strings.Contains(content, "picker.category") {
		t.Fatalf("expected trace event in log, got %q", content)
	}
}

func TestWarnIncludesKeyvals(t *testing.T) {
	path := useTempLog(t)
	Warn("preference write skipped", "path", "/tmp/config.toml")
	content := readLog(t, path)
	if !strings.Contains(content, "preference write skipped") {
		t.Fatalf("expected warn message, got %q", content)
	}
	if !strings.Contains(content, "/tmp/config.toml") {
		t.Fatalf("expected keyval in log, got %q", content)
	}
}
