package events

import "github.com/atomicstack/emojid/internal/logging"

type PrefsTracer struct{}

var Prefs = PrefsTracer{}

func (PrefsTracer) Loaded(path string, fallbacks []string) {
	logging.Trace("prefs.load", map[string]interface{}{"path": path, "fallbacks": fallbacks})
}

func (PrefsTracer) Saved(path string) {
	logging.Trace("prefs.save", map[string]interface{}{"path": path})
}

func (PrefsTracer) PersistCategory(path string, index int) {
	logging.Trace("prefs.persist-category", map[string]interface{}{"path": path, "index": index})
}
