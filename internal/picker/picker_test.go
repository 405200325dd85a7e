package picker

import (
	"errors"
	"reflect"
	"testing"

	"github.com/atomicstack/emojid/internal/catalog"
)

type recordingPersister struct {
	calls []int
}

func (r *recordingPersister) PersistCategory(index int) {
	r.calls = append(r.calls, index)
}

func testCategories() []catalog.Category {
	return []catalog.Category{
		{Name: "Smileys", Items: []string{"😀", "😁"}},
		{Name: "Gestures", Items: []string{"👍", "🙏", "👏"}},
		{Name: "Symbols", Items: []string{"❤️"}},
	}
}

func newTestPicker(t *testing.T, opts Options) *Picker {
	t.Helper()
	p, err := New(testCategories(), opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func TestNewRequiresCategories(t *testing.T) {
	if _, err := New(nil, Options{}); !errors.Is(err, ErrNoCategories) {
		t.Fatalf("expected ErrNoCategories, got %v", err)
	}
}

func TestNewClampsStartCategory(t *testing.T) {
	p := newTestPicker(t, Options{StartCategory: 9})
	if got := p.ActiveCategory(); got != 2 {
		t.Fatalf("expected start category clamped to 2, got %d", got)
	}
	p = newTestPicker(t, Options{StartCategory: -3})
	if got := p.ActiveCategory(); got != 0 {
		t.Fatalf("expected negative start clamped to 0, got %d", got)
	}
}

func TestInitialViewIsWholeCategory(t *testing.T) {
	p := newTestPicker(t, Options{StartCategory: 1})
	if got, want := p.View(), []string{"👍", "🙏", "👏"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected view %v, got %v", want, got)
	}
	if p.Highlighted() != 0 {
		t.Fatalf("expected highlight 0, got %d", p.Highlighted())
	}
}

func TestCommitHighlightedItem(t *testing.T) {
	p, err := New([]catalog.Category{
		{Name: "Smileys", Items: []string{"😀", "😁"}},
		{Name: "Gestures", Items: []string{"👍"}},
	}, Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	p.MoveSelection(1)
	out := p.Apply(CommitSelection{})
	if !out.Committed || out.Symbol != "😁" {
		t.Fatalf("expected commit of 😁, got %#v", out)
	}
	if !out.Closed || !p.Closed() {
		t.Fatal("expected picker closed after commit")
	}
}

func TestFilterNarrowsViewAndCommits(t *testing.T) {
	p := newTestPicker(t, Options{StartCategory: 1})
	p.Apply(FilterChanged{Text: "🙏"})
	if got := p.View(); !reflect.DeepEqual(got, []string{"🙏"}) {
		t.Fatalf("expected filtered view [🙏], got %v", got)
	}
	if p.Highlighted() != 0 {
		t.Fatalf("expected highlight 0, got %d", p.Highlighted())
	}
	symbol, ok := p.Commit()
	if !ok || symbol != "🙏" {
		t.Fatalf("expected commit of 🙏, got %q ok=%v", symbol, ok)
	}
}

func TestFilterResetsOutOfRangeHighlight(t *testing.T) {
	p := newTestPicker(t, Options{StartCategory: 1})
	p.MoveSelection(2)
	p.SetFilter("👍")
	if p.Highlighted() != 0 {
		t.Fatalf("expected highlight reset to 0, got %d", p.Highlighted())
	}
}

func TestFilterKeepsInRangeHighlight(t *testing.T) {
	p := newTestPicker(t, Options{StartCategory: 1})
	p.MoveSelection(1)
	p.SetFilter("🙏")
	p.SetFilter("")
	if p.Highlighted() != 0 {
		t.Fatalf("expected highlight 0 after narrowing, got %d", p.Highlighted())
	}
	p.MoveSelection(2)
	p.SetFilter("")
	if p.Highlighted() != 2 {
		t.Fatalf("expected unchanged filter to keep highlight 2, got %d", p.Highlighted())
	}
}

func TestFilterWithoutMatchesLeavesEmptyView(t *testing.T) {
	p := newTestPicker(t, Options{})
	p.SetFilter("zzz")
	if len(p.View()) != 0 {
		t.Fatalf("expected empty view, got %v", p.View())
	}
	if p.Highlighted() != 0 {
		t.Fatalf("expected highlight 0 on empty view, got %d", p.Highlighted())
	}
	if _, ok := p.Current(); ok {
		t.Fatal("expected no current item on empty view")
	}
}

func TestCommitOnEmptyViewKeepsSessionOpen(t *testing.T) {
	p := newTestPicker(t, Options{})
	p.SetFilter("zzz")
	out := p.Apply(CommitSelection{})
	if out.Committed || out.Closed || p.Closed() {
		t.Fatalf("expected session to stay open, got %#v", out)
	}
}

func TestMoveSelectionClamps(t *testing.T) {
	p := newTestPicker(t, Options{StartCategory: 1})
	if p.MoveSelection(-1) {
		t.Fatal("expected no change moving above first item")
	}
	if p.Highlighted() != 0 {
		t.Fatalf("expected highlight 0, got %d", p.Highlighted())
	}
	p.MoveSelection(10)
	if p.Highlighted() != 2 {
		t.Fatalf("expected highlight clamped to last item 2, got %d", p.Highlighted())
	}
	if p.MoveSelection(1) {
		t.Fatal("expected no change moving past last item")
	}
}

func TestPrevCategoryStopsAtFirst(t *testing.T) {
	p := newTestPicker(t, Options{})
	p.PrevCategory()
	if p.ActiveCategory() != 0 {
		t.Fatalf("expected category 0, got %d", p.ActiveCategory())
	}
}

func TestNextCategoryWraps(t *testing.T) {
	p := newTestPicker(t, Options{StartCategory: 2})
	p.NextCategory()
	if p.ActiveCategory() != 0 {
		t.Fatalf("expected wrap to category 0, got %d", p.ActiveCategory())
	}
}

func TestCategoryChangeResetsHighlightAndKeepsFilter(t *testing.T) {
	p := newTestPicker(t, Options{})
	p.MoveSelection(1)
	p.SetFilter("😁")
	p.NextCategory()
	if p.Highlighted() != 0 {
		t.Fatalf("expected highlight reset, got %d", p.Highlighted())
	}
	if p.Filter() != "😁" {
		t.Fatalf("expected filter preserved, got %q", p.Filter())
	}
	if len(p.View()) != 0 {
		t.Fatalf("expected filter applied to new category, got %v", p.View())
	}
}

func TestSelectCategoryIgnoresOutOfRange(t *testing.T) {
	p := newTestPicker(t, Options{StartCategory: 1})
	if p.SelectCategory(7) || p.SelectCategory(-1) {
		t.Fatal("expected out-of-range selection to be ignored")
	}
	if p.ActiveCategory() != 1 {
		t.Fatalf("expected category 1, got %d", p.ActiveCategory())
	}
	p.SelectCategory(2)
	if p.ActiveCategory() != 2 {
		t.Fatalf("expected category 2, got %d", p.ActiveCategory())
	}
}

func TestSelectItemCommits(t *testing.T) {
	p := newTestPicker(t, Options{StartCategory: 1})
	out := p.Apply(SelectItem{Index: 2})
	if !out.Committed || out.Symbol != "👏" {
		t.Fatalf("expected commit of 👏, got %#v", out)
	}
	if p.Highlighted() != 2 {
		t.Fatalf("expected highlight moved to 2, got %d", p.Highlighted())
	}
}

func TestSelectItemOutOfRangeIsIgnored(t *testing.T) {
	p := newTestPicker(t, Options{})
	out := p.Apply(SelectItem{Index: 5})
	if out.Committed || p.Closed() {
		t.Fatalf("expected no commit, got %#v", out)
	}
}

func TestPersistOnlyWhenRemembering(t *testing.T) {
	rec := &recordingPersister{}
	p := newTestPicker(t, Options{RememberLastCategory: true, Persister: rec})
	p.NextCategory()
	p.NextCategory()
	p.SelectCategory(2)
	p.PrevCategory()
	if want := []int{1, 2, 1}; !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("expected persisted indexes %v, got %v", want, rec.calls)
	}

	rec = &recordingPersister{}
	p = newTestPicker(t, Options{RememberLastCategory: false, Persister: rec})
	p.NextCategory()
	p.SelectCategory(2)
	if len(rec.calls) != 0 {
		t.Fatalf("expected no persistence, got %v", rec.calls)
	}
}

func TestPrevCategoryAtFirstDoesNotPersist(t *testing.T) {
	rec := &recordingPersister{}
	p := newTestPicker(t, Options{RememberLastCategory: true, Persister: rec})
	p.PrevCategory()
	if len(rec.calls) != 0 {
		t.Fatalf("expected no persistence without a change, got %v", rec.calls)
	}
}

func TestCancelClosesWithoutCommit(t *testing.T) {
	p := newTestPicker(t, Options{})
	out := p.Apply(Cancel{})
	if out.Committed || !out.Closed {
		t.Fatalf("expected closed without commit, got %#v", out)
	}
}

func TestClosedPickerIgnoresEvents(t *testing.T) {
	p := newTestPicker(t, Options{})
	p.Cancel()
	if p.NextCategory() || p.SetFilter("x") || p.MoveSelection(1) {
		t.Fatal("expected closed picker to ignore input")
	}
	if _, ok := p.Commit(); ok {
		t.Fatal("expected closed picker not to commit")
	}
}

func TestInvariantsHoldAcrossEventSequence(t *testing.T) {
	p := newTestPicker(t, Options{})
	seq := []Event{
		MoveSelection{Delta: 5}, NextCategory{}, FilterChanged{Text: "👏"},
		MoveSelection{Delta: -2}, PrevCategory{}, FilterChanged{Text: ""},
		SelectCategory{Index: 2}, MoveSelection{Delta: 3}, NextCategory{},
		FilterChanged{Text: "nope"}, MoveSelection{Delta: 1},
	}
	for i, ev := range seq {
		p.Apply(ev)
		if p.ActiveCategory() < 0 || p.ActiveCategory() >= len(p.Categories()) {
			t.Fatalf("step %d: category %d out of range", i, p.ActiveCategory())
		}
		view := p.View()
		if len(view) == 0 && p.Highlighted() != 0 {
			t.Fatalf("step %d: expected highlight 0 on empty view, got %d", i, p.Highlighted())
		}
		if len(view) > 0 && p.Highlighted() >= len(view) {
			t.Fatalf("step %d: highlight %d outside view of %d", i, p.Highlighted(), len(view))
		}
		want := FilterItems(p.Category().Items, p.Filter(), SubstringMatch)
		if !reflect.DeepEqual(view, want) {
			t.Fatalf("step %d: expected view %v, got %v", i, want, view)
		}
	}
}

func TestViewWithoutMatchesIsEmptyNotNil(t *testing.T) {
	p := newTestPicker(t, Options{})
	p.SetFilter("nope")
	view := p.View()
	if view == nil || len(view) != 0 {
		t.Fatalf("expected empty non-nil view, got %#v", view)
	}
	if !reflect.DeepEqual(view, FilterItems(p.Category().Items, p.Filter(), SubstringMatch)) {
		t.Fatalf("expected View to match FilterItems, got %#v", view)
	}
}
