// Package prefs persists the small set of picker preferences that survive
// between sessions. Every operation is best-effort: a missing, unreadable or
// malformed file degrades to defaults and write failures are only logged.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/atomicstack/emojid/internal/logging"
	"github.com/atomicstack/emojid/internal/logging/events"
)

const (
	keyAutoPaste            = "auto_paste"
	keyRememberLastCategory = "remember_last_category"
	keyLastCategory         = "last_category"
	keyExtraTable           = "kaomoji"
	keyExtraItems           = "items"
)

// Preferences is the persisted picker state.
type Preferences struct {
	AutoPaste            bool
	RememberLastCategory bool
	LastCategory         int
	// ExtraCategoryItems is nil when no extra category is configured. A non-nil
	// empty slice still produces an (empty) extra category.
	ExtraCategoryItems []string
}

// Defaults returns the preferences used when the file or a field is absent.
func Defaults() Preferences {
	return Preferences{
		AutoPaste:            true,
		RememberLastCategory: true,
		LastCategory:         0,
	}
}

// StartCategory returns the category the picker should open on.
func (p Preferences) StartCategory() int {
	if !p.RememberLastCategory || p.LastCategory < 0 {
		return 0
	}
	return p.LastCategory
}

// Store reads and writes preferences at a fixed path. It holds no open
// handles; each call goes back to disk.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) Store {
	return Store{path: path}
}

// Path returns the preference file location.
func (s Store) Path() string {
	return s.path
}

// Load reads the preference file, falling back to defaults per field.
func (s Store) Load() Preferences {
	doc, err := readDocument(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.Error(fmt.Errorf("load preferences %s: %w", s.path, err))
		}
		events.Prefs.Loaded(s.path, []string{"*"})
		return Defaults()
	}
	prefs, fallbacks := decode(doc)
	if len(fallbacks) > 0 {
		logging.Warn("preference fields fell back to defaults", "path", s.path, "fields", fallbacks)
	}
	events.Prefs.Loaded(s.path, fallbacks)
	return prefs
}

// Save writes prefs, keeping any keys in the file it does not know about.
func (s Store) Save(p Preferences) {
	if s.update(func(doc map[string]interface{}) { encode(p, doc) }) {
		events.Prefs.Saved(s.path)
	}
}

// PersistCategory re-reads the file and overwrites only the last category.
func (s Store) PersistCategory(index int) {
	if index < 0 {
		return
	}
	if s.update(func(doc map[string]interface{}) { doc[keyLastCategory] = int64(index) }) {
		events.Prefs.PersistCategory(s.path, index)
	}
}

func (s Store) update(mutate func(map[string]interface{})) bool {
	doc, err := readDocument(s.path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		doc = map[string]interface{}{}
	default:
		// an unparseable file stays untouched so hand edits are not lost
		logging.Warn("preference write skipped", "path", s.path, "err", err)
		return false
	}
	mutate(doc)
	if err := writeDocument(s.path, doc); err != nil {
		logging.Error(fmt.Errorf("save preferences %s: %w", s.path, err))
		return false
	}
	return true
}

func decode(doc map[string]interface{}) (Preferences, []string) {
	prefs := Defaults()
	var fallbacks []string

	if raw, ok := doc[keyAutoPaste]; ok {
		if v, ok := raw.(bool); ok {
			prefs.AutoPaste = v
		} else {
			fallbacks = append(fallbacks, keyAutoPaste)
		}
	}
	if raw, ok := doc[keyRememberLastCategory]; ok {
		if v, ok := raw.(bool); ok {
			prefs.RememberLastCategory = v
		} else {
			fallbacks = append(fallbacks, keyRememberLastCategory)
		}
	}
	if raw, ok := doc[keyLastCategory]; ok {
		if v, ok := raw.(int64); ok && v >= 0 {
			prefs.LastCategory = int(v)
		} else {
			fallbacks = append(fallbacks, keyLastCategory)
		}
	}
	if raw, ok := doc[keyExtraTable]; ok {
		if items, ok := decodeExtra(raw); ok {
			prefs.ExtraCategoryItems = items
		} else {
			fallbacks = append(fallbacks, keyExtraTable)
		}
	}
	return prefs, fallbacks
}

func decodeExtra(raw interface{}) ([]string, bool) {
	table, ok := raw.(map[string]interface{})
	if !ok {
		return nil, false
	}
	rawItems, ok := table[keyExtraItems]
	if !ok {
		return nil, false
	}
	list, ok := rawItems.([]interface{})
	if !ok {
		return nil, false
	}
	items := make([]string, 0, len(list))
	for _, entry := range list {
		s, ok := entry.(string)
		if !ok {
			return nil, false
		}
		items = append(items, s)
	}
	return items, true
}

func encode(p Preferences, doc map[string]interface{}) {
	doc[keyAutoPaste] = p.AutoPaste
	doc[keyRememberLastCategory] = p.RememberLastCategory
	lastCategory := p.LastCategory
	if lastCategory < 0 {
		lastCategory = 0
	}
	doc[keyLastCategory] = int64(lastCategory)
	if p.ExtraCategoryItems == nil {
		delete(doc, keyExtraTable)
		return
	}
	table, ok := doc[keyExtraTable].(map[string]interface{})
	if !ok {
		table = map[string]interface{}{}
	}
	table[keyExtraItems] = append([]string{}, p.ExtraCategoryItems...)
	doc[keyExtraTable] = table
}
