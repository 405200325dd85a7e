package events

import "github.com/atomicstack/emojid/internal/logging"

type CommitTracer struct{}

var Commit = CommitTracer{}

func (CommitTracer) Copied(symbol string) {
	logging.Trace("commit.copied", map[string]interface{}{"symbol": symbol})
}

func (CommitTracer) ClipboardError(err error) {
	if err == nil {
		return
	}
	logging.Trace("commit.clipboard.error", map[string]interface{}{"error": err.Error()})
}

func (CommitTracer) PasteRequested(backend string) {
	logging.Trace("commit.paste", map[string]interface{}{"backend": backend})
}

func (CommitTracer) PasteError(backend string, err error) {
	if err == nil {
		return
	}
	logging.Trace("commit.paste.error", map[string]interface{}{"backend": backend, "error": err.Error()})
}
