// Package commit delivers a chosen symbol: it is copied to the clipboard and,
// when enabled, a paste is requested into the previously focused window.
package commit

import (
	"fmt"

	"github.com/atomicstack/emojid/internal/logging"
	"github.com/atomicstack/emojid/internal/logging/events"
)

// Outcome reports what happened to a committed symbol.
type Outcome struct {
	Symbol         string
	Copied         bool
	PasteRequested bool
	PasteErr       error
	// Err is set when the symbol never reached the clipboard.
	Err error
}

// Pipeline runs the clipboard and paste steps for a committed symbol.
type Pipeline struct {
	clipboard Clipboard
	injector  Injector
}

// NewPipeline wires a clipboard and injector. A nil injector disables pasting.
func NewPipeline(clip Clipboard, injector Injector) *Pipeline {
	if clip == nil {
		clip = SystemClipboard{}
	}
	if injector == nil {
		injector = NopInjector{}
	}
	return &Pipeline{clipboard: clip, injector: injector}
}

// Injector returns the configured paste injector.
func (p *Pipeline) Injector() Injector {
	return p.injector
}

// Commit copies symbol and, if autoPaste is set, requests a paste. Paste
// failures are logged only; the symbol is still on the clipboard.
func (p *Pipeline) Commit(symbol string, autoPaste bool) Outcome {
	out := Outcome{Symbol: symbol}
	if err := p.clipboard.WriteText(symbol); err != nil {
		out.Err = fmt.Errorf("copy %q: %w", symbol, err)
		logging.Error(out.Err)
		events.Commit.ClipboardError(err)
		return out
	}
	out.Copied = true
	events.Commit.Copied(symbol)

	if !autoPaste {
		return out
	}
	if _, ok := p.injector.(NopInjector); ok {
		return out
	}
	name := p.injector.Name()
	out.PasteRequested = true
	events.Commit.PasteRequested(name)
	if err := p.injector.InjectPaste(symbol); err != nil {
		out.PasteErr = err
		logging.Warn("paste injection failed", "backend", name, "err", err)
		events.Commit.PasteError(name, err)
	}
	return out
}
