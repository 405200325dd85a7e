// Package catalog holds the named symbol groups offered by the picker.
package catalog

// ExtraCategoryName labels the category built from user-supplied symbols.
const ExtraCategoryName = "Kaomoji"

// Category is a named, ordered group of selectable symbols.
type Category struct {
	Name  string
	Items []string
}

var builtin = []Category{
	{Name: "Smileys", Items: []string{"😀", "😁", "😂", "🤣", "😊", "😍", "😎", "😭"}},
	{Name: "Gestures", Items: []string{"👍", "👎", "🙏", "👏", "🤝", "✌️"}},
	{Name: "Symbols", Items: []string{"❤️", "💔", "✨", "🔥", "💀", "⭐"}},
	{Name: "Objects", Items: []string{"🎉", "🎮", "🎧", "📦", "💡", "🖥️"}},
}

// Build returns the built-in categories followed, when extra is non-nil, by
// one category holding the extra symbols verbatim.
func Build(extra []string) []Category {
	out := make([]Category, 0, len(builtin)+1)
	for _, c := range builtin {
		out = append(out, c.clone())
	}
	if extra != nil {
		out = append(out, Category{Name: ExtraCategoryName, Items: append([]string{}, extra...)})
	}
	return out
}

// Builtin returns the number of built-in categories.
func Builtin() int {
	return len(builtin)
}

// Names lists category labels in display order.
func Names(categories []Category) []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return names
}

func (c Category) clone() Category {
	return Category{Name: c.Name, Items: append([]string{}, c.Items...)}
}
