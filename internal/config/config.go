package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/emojid/internal/app"
	"github.com/atomicstack/emojid/internal/commit"
	"github.com/atomicstack/emojid/internal/picker"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string

	// HelpRequested is set for -h/--help; Usage holds the flag summary.
	HelpRequested bool
	Usage         string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfigPath = "EMOJID_CONFIG"
	envWidth      = "EMOJID_WIDTH"
	envHeight     = "EMOJID_HEIGHT"
	envShowFooter = "EMOJID_FOOTER"
	envMatch      = "EMOJID_MATCH"
	envPaste      = "EMOJID_PASTE"
	envPasteDelay = "EMOJID_PASTE_DELAY"
	envTrace      = "EMOJID_TRACE"
	envLogFile    = "EMOJID_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("emojid", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configPath := fs.String("config", envOrDefault(env, envConfigPath, ""), "path to the preference file (default <config dir>/emojid/config.toml)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key hint footer")
	match := fs.String("match", envOrDefault(env, envMatch, string(picker.MatchSubstring)), "filter matching: substring or fuzzy")
	paste := fs.String("paste", envOrDefault(env, envPaste, string(commit.BackendAuto)), "paste backend: auto, ydotool, wtype, xdotool, tmux or none")
	pasteDelay := fs.Duration("paste-delay", envOrDuration(env, envPasteDelay, commit.DefaultDelay), "wait before sending the paste keystroke")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, defaultLogFile(env)), "path to the log file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{HelpRequested: true, Usage: fs.FlagUsages(), Args: append([]string(nil), args...)}, nil
		}
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			PrefsPath:  strings.TrimSpace(*configPath),
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Match:      picker.MatchMode(strings.ToLower(strings.TrimSpace(*match))),
			Paste:      commit.Backend(strings.ToLower(strings.TrimSpace(*paste))),
			PasteDelay: *pasteDelay,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"config":     *configPath,
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"footer":     strconv.FormatBool(*footer),
			"match":      *match,
			"paste":      *paste,
			"pasteDelay": pasteDelay.String(),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// defaultLogFile places the log under the user cache dir, honouring an
// absolute XDG_CACHE_HOME from the supplied environment.
func defaultLogFile(env map[string]string) string {
	base := strings.TrimSpace(env["XDG_CACHE_HOME"])
	if base == "" || !filepath.IsAbs(base) {
		dir, err := os.UserCacheDir()
		if err != nil {
			return ""
		}
		base = dir
	}
	return filepath.Join(base, "emojid", "emojid.log")
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	if cfg.HelpRequested {
		fmt.Fprintf(os.Stderr, "Usage: emojid [flags]\n\n%s", cfg.Usage)
		os.Exit(0)
	}
	return cfg
}

// Validate rejects option values the picker cannot run with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if _, err := picker.ParseMatchMode(string(cfg.App.Match)); err != nil {
		return err
	}
	if _, err := commit.ParseBackend(string(cfg.App.Paste)); err != nil {
		return err
	}
	if cfg.App.PasteDelay < 0 {
		return fmt.Errorf("paste delay must be >= 0 (got %s)", cfg.App.PasteDelay)
	}
	return nil
}
