package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/emojid/internal/app"
	"github.com/atomicstack/emojid/internal/config"
	"github.com/atomicstack/emojid/internal/logging"
	"github.com/atomicstack/emojid/internal/logging/events"
	"github.com/google/uuid"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)
	logging.SetSession(uuid.NewString())

	if logging.TraceEnabled() {
		events.App.Start(startupTracePayload(runtimeCfg, os.Getenv, probeTerminal))
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// sessionEnv lists the variables that decide paste backend detection.
var sessionEnv = []string{"TMUX", "TMUX_PANE", "WAYLAND_DISPLAY", "DISPLAY", "XDG_SESSION_TYPE"}

type terminalInfo struct {
	Source string `json:"source,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Error  string `json:"error,omitempty"`
}

type terminalProbe func() terminalInfo

// startupTracePayload records the options and desktop context a session
// starts with.
func startupTracePayload(cfg config.Config, getenv func(string) string, probe terminalProbe) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	desktop := make(map[string]string, len(sessionEnv))
	for _, name := range sessionEnv {
		if v := getenv(name); v != "" {
			desktop[name] = v
		}
	}

	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"desktop": desktop,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if probe != nil {
		payload["terminal"] = probe()
	}
	return payload
}

// probeTerminal reports the size of the first standard descriptor attached
// to a terminal.
func probeTerminal() terminalInfo {
	candidates := []struct {
		name string
		file *os.File
	}{
		{"stdout", os.Stdout},
		{"stdin", os.Stdin},
		{"stderr", os.Stderr},
	}
	for _, c := range candidates {
		fd := int(c.file.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		info := terminalInfo{Source: c.name}
		width, height, err := term.GetSize(fd)
		if err != nil {
			info.Error = err.Error()
			return info
		}
		info.Width = width
		info.Height = height
		return info
	}
	return terminalInfo{Error: "no terminal attached"}
}
