// Package tmux builds tmux command lines for the paste injector.
package tmux

import "strings"

// SocketFromEnv returns the server socket the caller's client is attached
// to, taken from the first field of $TMUX.
func SocketFromEnv(env map[string]string) string {
	tmuxEnv := strings.TrimSpace(env["TMUX"])
	if tmuxEnv == "" {
		return ""
	}
	socket, _, _ := strings.Cut(tmuxEnv, ",")
	return socket
}

// PaneFromEnv returns $TMUX_PANE, the pane the picker was launched from.
func PaneFromEnv(env map[string]string) string {
	return strings.TrimSpace(env["TMUX_PANE"])
}

// Args prefixes extra with -S when a socket is known.
func Args(socket string, extra ...string) []string {
	args := make([]string, 0, len(extra)+2)
	if trimmed := strings.TrimSpace(socket); trimmed != "" {
		args = append(args, "-S", trimmed)
	}
	return append(args, extra...)
}

// SendLiteralArgs types text into pane without key-name lookup.
func SendLiteralArgs(socket, pane, text string) []string {
	extra := []string{"send-keys"}
	if pane != "" {
		extra = append(extra, "-t", pane)
	}
	extra = append(extra, "-l", text)
	return Args(socket, extra...)
}
