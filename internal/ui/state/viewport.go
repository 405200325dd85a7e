package state

// Viewport tracks the first visible row of a scrolling list.
type Viewport struct {
	Offset int
}

// EnsureVisible adjusts the offset so row highlighted of total stays within
// maxVisible rows.
func (v *Viewport) EnsureVisible(highlighted, total, maxVisible int) {
	if total == 0 || maxVisible <= 0 {
		v.Offset = 0
		return
	}
	if highlighted < 0 {
		highlighted = 0
	}
	if highlighted >= total {
		highlighted = total - 1
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if highlighted < v.Offset {
		v.Offset = highlighted
	}
	if upper := v.Offset + maxVisible - 1; highlighted > upper {
		v.Offset = highlighted - maxVisible + 1
	}
}

// Window returns the half-open range of rows to draw.
func (v Viewport) Window(total, maxVisible int) (start, end int) {
	if total == 0 {
		return 0, 0
	}
	start = v.Offset
	if start < 0 || start >= total {
		start = 0
	}
	end = total
	if maxVisible > 0 && start+maxVisible < end {
		end = start + maxVisible
	}
	return start, end
}

// PageSize returns how many rows a page jump moves.
func PageSize(total, maxVisible int) int {
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	return size
}
