package prefs

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	appName  = "emojid"
	fileName = "config.toml"
)

// DefaultPath returns <user config dir>/emojid/config.toml, or a path relative
// to the working directory when no config dir can be determined.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = ""
	}
	env := map[string]string{
		"XDG_CONFIG_HOME": os.Getenv("XDG_CONFIG_HOME"),
		"APPDATA":         os.Getenv("APPDATA"),
	}
	return PathFor(runtime.GOOS, env, configDir)
}

// PathFor resolves the preference file for a platform and environment.
func PathFor(goos string, env map[string]string, userConfigDir string) string {
	base := strings.TrimSpace(userConfigDir)
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		if v := strings.TrimSpace(env["XDG_CONFIG_HOME"]); v != "" && filepath.IsAbs(v) {
			base = v
		}
	case "windows":
		if v := strings.TrimSpace(env["APPDATA"]); v != "" {
			base = v
		}
	}
	if base == "" {
		base = "."
	}
	return filepath.Join(base, appName, fileName)
}
