package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	tabsRow      = 0
	promptRow    = 1
	separatorRow = 2
	itemsTop     = 3

	tabGap             = " "
	defaultSeparatorW  = 24
	statusRows         = 1
	footerRows         = 1
	itemIndicator      = "▌"
	itemIndicatorWidth = 1
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// tabSpan is the horizontal extent of one category tab on tabsRow.
type tabSpan struct {
	start int
	end   int
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.tabsLine(), raw: true})
	lines = append(lines, styledLine{text: m.filterPrompt(), raw: true})
	lines = append(lines, styledLine{text: m.separatorLine(), style: styles.Separator})

	view := m.picker.View()
	if len(view) == 0 {
		msg := "(empty category)"
		if m.picker.Filter() != "" {
			msg = fmt.Sprintf("No matches for %q", m.picker.Filter())
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	} else {
		m.syncViewport()
		start, end := m.viewport.Window(len(view), m.maxVisibleItems())
		for idx := start; idx < end; idx++ {
			lines = append(lines, m.buildItemLine(view[idx], idx == m.picker.Highlighted()))
		}
	}

	lines = append(lines, m.statusLine())
	if m.showFooter {
		m.help.Width = m.width
		lines = append(lines, styledLine{text: m.help.View(m.keys), raw: true})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) tabsLine() string {
	categories := m.picker.Categories()
	parts := make([]string, len(categories))
	for i, c := range categories {
		style := styles.Tab
		if i == m.picker.ActiveCategory() {
			style = styles.ActiveTab
		}
		label := tabLabel(c.Name)
		if style != nil {
			label = style.Render(label)
		}
		parts[i] = label
	}
	return strings.Join(parts, tabGap)
}

// tabSpans mirrors tabsLine's layout in terminal cells.
func (m *Model) tabSpans() []tabSpan {
	categories := m.picker.Categories()
	spans := make([]tabSpan, len(categories))
	x := 0
	for i, c := range categories {
		w := lipgloss.Width(tabLabel(c.Name))
		spans[i] = tabSpan{start: x, end: x + w}
		x += w + lipgloss.Width(tabGap)
	}
	return spans
}

func tabLabel(name string) string {
	return " " + name + " "
}

func (m *Model) separatorLine() string {
	w := m.width
	if w <= 0 {
		w = defaultSeparatorW
	}
	return strings.Repeat("─", w)
}

// buildItemLine constructs a single styledLine for a symbol. The selected
// row is padded so its background spans the full width.
func (m *Model) buildItemLine(symbol string, selected bool) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := itemIndicator + " " + symbol
	if m.width > 0 {
		if pad := m.width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: itemIndicatorWidth,
	}
}

func (m *Model) statusLine() styledLine {
	if m.errMsg != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	if m.committing {
		return styledLine{text: "Copying…", style: styles.Info}
	}
	view := m.picker.View()
	if len(view) == 0 {
		return styledLine{}
	}
	text := fmt.Sprintf("%d/%d", m.picker.Highlighted()+1, len(view))
	return styledLine{text: text, style: styles.Info}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := itemsTop + statusRows
	if m.showFooter {
		used += footerRows
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText shortens text to width terminal cells. Wide symbols and ANSI
// escapes are measured the way the terminal draws them.
func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}
