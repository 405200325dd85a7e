package events

import "github.com/atomicstack/emojid/internal/logging"

type PickerTracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	Picker  = PickerTracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (PickerTracer) Category(index int, name string) {
	logging.Trace("picker.category", map[string]interface{}{"index": index, "name": name})
}

func (PickerTracer) Selection(category, highlighted int) {
	logging.Trace("picker.selection", map[string]interface{}{"category": category, "highlighted": highlighted})
}

func (PickerTracer) Commit(category int, symbol string) {
	logging.Trace("picker.commit", map[string]interface{}{"category": category, "symbol": symbol})
}

func (PickerTracer) CommitEmpty(category int, filter string) {
	logging.Trace("picker.commit.empty", map[string]interface{}{"category": category, "filter": filter})
}

func (PickerTracer) Cancel(category int) {
	logging.Trace("picker.cancel", map[string]interface{}{"category": category})
}

func (FilterTracer) Changed(category int, filter string, matches int) {
	logging.Trace("filter.changed", map[string]interface{}{"category": category, "filter": filter, "matches": matches})
}

func (FilterTracer) Cleared(category int) {
	logging.Trace("filter.clear", map[string]interface{}{"category": category})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) CursorWord(pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"cursor": pos})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
