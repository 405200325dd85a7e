package commit

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable reports that no clipboard tool could be found.
var ErrClipboardUnavailable = errors.New("no system clipboard available (install wl-clipboard, xclip or xsel)")

// Clipboard places text on the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// SystemClipboard writes through the platform clipboard utilities.
type SystemClipboard struct{}

// WriteText copies text to the clipboard.
func (SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}
