package commit

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/emojid/internal/logging"
	"github.com/atomicstack/emojid/internal/tmux"
)

// Backend names a paste injection tool.
type Backend string

const (
	BackendAuto    Backend = "auto"
	BackendYdotool Backend = "ydotool"
	BackendWtype   Backend = "wtype"
	BackendXdotool Backend = "xdotool"
	BackendTmux    Backend = "tmux"
	BackendNone    Backend = "none"
)

// DefaultDelay gives the picker window time to close before keys are sent.
const DefaultDelay = 150 * time.Millisecond

// Injector asks the desktop to paste into whatever has focus once the picker
// is gone. Implementations return once the request is handed off.
type Injector interface {
	InjectPaste(symbol string) error
	Name() string
}

// ParseBackend validates a configured backend name. Empty selects auto.
func ParseBackend(value string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(value))); b {
	case "":
		return BackendAuto, nil
	case BackendAuto, BackendYdotool, BackendWtype, BackendXdotool, BackendTmux, BackendNone:
		return b, nil
	default:
		return "", fmt.Errorf("unknown paste backend %q (want auto, ydotool, wtype, xdotool, tmux or none)", value)
	}
}

// Detect picks a backend from the session environment. lookPath reports
// whether a tool is installed.
func Detect(env map[string]string, lookPath func(string) (string, error)) Backend {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	has := func(tool string) bool {
		_, err := lookPath(tool)
		return err == nil
	}
	if env["TMUX"] != "" && has("tmux") {
		return BackendTmux
	}
	if env["WAYLAND_DISPLAY"] != "" {
		if has("ydotool") {
			return BackendYdotool
		}
		if has("wtype") {
			return BackendWtype
		}
	}
	if env["DISPLAY"] != "" && has("xdotool") {
		return BackendXdotool
	}
	return BackendNone
}

// NewInjector builds the injector for backend, resolving auto against env.
func NewInjector(backend Backend, delay time.Duration, env map[string]string) Injector {
	if backend == BackendAuto || backend == "" {
		backend = Detect(env, nil)
	}
	if backend == BackendNone {
		return NopInjector{}
	}
	if delay < 0 {
		delay = 0
	}
	return &CommandInjector{
		backend: backend,
		delay:   delay,
		socket:  tmux.SocketFromEnv(env),
		pane:    tmux.PaneFromEnv(env),
		start:   startDetached,
	}
}

// NopInjector leaves pasting to the user.
type NopInjector struct{}

func (NopInjector) InjectPaste(string) error { return nil }

func (NopInjector) Name() string { return string(BackendNone) }

// CommandInjector runs an external key injection tool after a short delay.
type CommandInjector struct {
	backend Backend
	delay   time.Duration
	socket  string
	pane    string
	start   func(*exec.Cmd) error
}

func (c *CommandInjector) Name() string { return string(c.backend) }

// InjectPaste starts the tool in the background and returns without waiting.
func (c *CommandInjector) InjectPaste(symbol string) error {
	argv, err := c.toolArgs(symbol)
	if err != nil {
		return err
	}
	cmd := delayedCmd(c.delay, argv)
	if err := c.start(cmd); err != nil {
		return fmt.Errorf("%s: %w", c.backend, err)
	}
	return nil
}

func (c *CommandInjector) toolArgs(symbol string) ([]string, error) {
	switch c.backend {
	case BackendYdotool:
		// KEY_LEFTCTRL=29, KEY_V=47
		return []string{"ydotool", "key", "29:1", "47:1", "47:0", "29:0"}, nil
	case BackendWtype:
		return []string{"wtype", "-M", "ctrl", "v", "-m", "ctrl"}, nil
	case BackendXdotool:
		return []string{"xdotool", "key", "--clearmodifiers", "ctrl+v"}, nil
	case BackendTmux:
		return append([]string{"tmux"}, tmux.SendLiteralArgs(c.socket, c.pane, symbol)...), nil
	default:
		return nil, fmt.Errorf("unsupported paste backend %q", c.backend)
	}
}

func delayedCmd(delay time.Duration, argv []string) *exec.Cmd {
	if delay <= 0 {
		return exec.Command(argv[0], argv[1:]...)
	}
	secs := strconv.FormatFloat(delay.Seconds(), 'f', 3, 64)
	args := append([]string{"-c", `sleep "$0"; exec "$@"`, secs}, argv...)
	return exec.Command("sh", args...)
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Warn("paste command failed", "cmd", strings.Join(cmd.Args, " "), "err", err)
		}
	}()
	return nil
}
