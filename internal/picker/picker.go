// Package picker implements the interaction state of one picker session:
// the active category, the filtered view of its items and the highlighted
// row. It has no UI dependency; the terminal front end translates its input
// into calls on Picker (or Events passed to Apply).
//
// Invariants held after every transition:
//   - 0 <= active category < number of categories
//   - the view is recomputed from (active category, filter) and never edited
//   - the highlight is 0 when the view is empty, otherwise < len(view)
package picker

import (
	"errors"

	"github.com/atomicstack/emojid/internal/catalog"
	"github.com/atomicstack/emojid/internal/logging/events"
)

// ErrNoCategories is returned when a picker is built without categories.
var ErrNoCategories = errors.New("picker: at least one category is required")

// Persister records the active category when it changes.
type Persister interface {
	PersistCategory(index int)
}

// Options seeds a new picker from preferences and runtime config.
type Options struct {
	StartCategory        int
	RememberLastCategory bool
	Persister            Persister
	Match                MatchMode
}

// Picker is the state machine for a single session.
type Picker struct {
	categories  []catalog.Category
	filter      string
	active      int
	highlighted int
	view        []string
	closed      bool
	remember    bool
	persister   Persister
	match       Matcher
}

// New creates a picker positioned on opts.StartCategory, clamped into range.
func New(categories []catalog.Category, opts Options) (*Picker, error) {
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}
	start := opts.StartCategory
	if start < 0 {
		start = 0
	}
	if start > len(categories)-1 {
		start = len(categories) - 1
	}
	p := &Picker{
		categories: categories,
		active:     start,
		remember:   opts.RememberLastCategory,
		persister:  opts.Persister,
		match:      MatcherFor(opts.Match),
	}
	p.refresh()
	return p, nil
}

// Categories returns the catalog the picker browses.
func (p *Picker) Categories() []catalog.Category {
	return p.categories
}

// ActiveCategory returns the index of the active category.
func (p *Picker) ActiveCategory() int {
	return p.active
}

// Category returns the active category.
func (p *Picker) Category() catalog.Category {
	return p.categories[p.active]
}

// Filter returns the current filter text.
func (p *Picker) Filter() string {
	return p.filter
}

// Highlighted returns the highlighted index within View.
func (p *Picker) Highlighted() int {
	return p.highlighted
}

// View returns a copy of the filtered items of the active category.
func (p *Picker) View() []string {
	return append(make([]string, 0, len(p.view)), p.view...)
}

// Current returns the highlighted symbol, if the view has one.
func (p *Picker) Current() (string, bool) {
	if len(p.view) == 0 {
		return "", false
	}
	return p.view[p.highlighted], true
}

// Closed reports whether the session has ended.
func (p *Picker) Closed() bool {
	return p.closed
}

// SetFilter replaces the filter text and recomputes the view.
func (p *Picker) SetFilter(text string) bool {
	if p.closed {
		return false
	}
	if text == p.filter {
		return false
	}
	p.filter = text
	p.refresh()
	if p.highlighted >= len(p.view) {
		p.highlighted = 0
	}
	events.Filter.Changed(p.active, p.filter, len(p.view))
	return true
}

// MoveSelection moves the highlight by delta, clamped to the view.
func (p *Picker) MoveSelection(delta int) bool {
	if p.closed {
		return false
	}
	n := len(p.view)
	if n == 0 {
		p.highlighted = 0
		return false
	}
	next := p.highlighted + delta
	if next < 0 {
		next = 0
	}
	if next > n-1 {
		next = n - 1
	}
	if next == p.highlighted {
		return false
	}
	p.highlighted = next
	events.Picker.Selection(p.active, p.highlighted)
	return true
}

// NextCategory advances one category, wrapping from the last to the first.
func (p *Picker) NextCategory() bool {
	if p.closed {
		return false
	}
	return p.setCategory((p.active + 1) % len(p.categories))
}

// PrevCategory steps back one category without wrapping.
func (p *Picker) PrevCategory() bool {
	if p.closed {
		return false
	}
	prev := p.active - 1
	if prev < 0 {
		prev = 0
	}
	return p.setCategory(prev)
}

// SelectCategory activates category i. Out-of-range indexes are ignored.
func (p *Picker) SelectCategory(i int) bool {
	if p.closed || i < 0 || i >= len(p.categories) {
		return false
	}
	return p.setCategory(i)
}

// SelectItem highlights row i of the view and commits it.
func (p *Picker) SelectItem(i int) (string, bool) {
	if p.closed || i < 0 || i >= len(p.view) {
		return "", false
	}
	p.highlighted = i
	return p.Commit()
}

// Commit closes the session and returns the highlighted symbol. With an empty
// view nothing is emitted and the session stays open.
func (p *Picker) Commit() (string, bool) {
	if p.closed {
		return "", false
	}
	symbol, ok := p.Current()
	if !ok {
		events.Picker.CommitEmpty(p.active, p.filter)
		return "", false
	}
	p.closed = true
	events.Picker.Commit(p.active, symbol)
	return symbol, true
}

// Cancel closes the session without a commit.
func (p *Picker) Cancel() bool {
	if p.closed {
		return false
	}
	p.closed = true
	events.Picker.Cancel(p.active)
	return true
}

func (p *Picker) setCategory(i int) bool {
	changed := i != p.active || p.highlighted != 0
	moved := i != p.active
	p.active = i
	p.highlighted = 0
	p.refresh()
	if moved {
		events.Picker.Category(p.active, p.categories[p.active].Name)
		if p.remember && p.persister != nil {
			p.persister.PersistCategory(p.active)
		}
	}
	return changed
}

func (p *Picker) refresh() {
	p.view = FilterItems(p.categories[p.active].Items, p.filter, p.match)
	if len(p.view) == 0 {
		p.highlighted = 0
	}
}
