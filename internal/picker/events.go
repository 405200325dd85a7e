package picker

// Event is one discrete input delivered to the picker.
type Event interface {
	isEvent()
}

// FilterChanged replaces the filter text.
type FilterChanged struct{ Text string }

// MoveSelection moves the highlight by Delta rows.
type MoveSelection struct{ Delta int }

// NextCategory advances to the next category, wrapping at the end.
type NextCategory struct{}

// PrevCategory steps back one category, stopping at the first.
type PrevCategory struct{}

// SelectCategory jumps to a category picked with the pointer.
type SelectCategory struct{ Index int }

// SelectItem highlights a visible item picked with the pointer and commits it.
type SelectItem struct{ Index int }

// CommitSelection finalises the highlighted item.
type CommitSelection struct{}

// Cancel closes the session without committing.
type Cancel struct{}

func (FilterChanged) isEvent()   {}
func (MoveSelection) isEvent()   {}
func (NextCategory) isEvent()    {}
func (PrevCategory) isEvent()    {}
func (SelectCategory) isEvent()  {}
func (SelectItem) isEvent()      {}
func (CommitSelection) isEvent() {}
func (Cancel) isEvent()          {}

// Outcome describes the effect of an applied event.
type Outcome struct {
	Changed   bool
	Committed bool
	Symbol    string
	Closed    bool
}

// Apply routes ev to the matching transition.
func (p *Picker) Apply(ev Event) Outcome {
	var out Outcome
	switch e := ev.(type) {
	case FilterChanged:
		out.Changed = p.SetFilter(e.Text)
	case MoveSelection:
		out.Changed = p.MoveSelection(e.Delta)
	case NextCategory:
		out.Changed = p.NextCategory()
	case PrevCategory:
		out.Changed = p.PrevCategory()
	case SelectCategory:
		out.Changed = p.SelectCategory(e.Index)
	case SelectItem:
		out.Symbol, out.Committed = p.SelectItem(e.Index)
	case CommitSelection:
		out.Symbol, out.Committed = p.Commit()
	case Cancel:
		out.Changed = p.Cancel()
	}
	out.Closed = p.Closed()
	return out
}
