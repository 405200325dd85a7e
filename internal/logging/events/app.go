package events

import "github.com/atomicstack/emojid/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(reason string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason})
}

func (AppTracer) Session(prefsPath, pasteBackend string, autoPaste bool) {
	logging.Trace("app.session", map[string]interface{}{
		"prefs":      prefsPath,
		"paste":      pasteBackend,
		"auto_paste": autoPaste,
	})
}
