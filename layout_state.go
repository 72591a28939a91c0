package gridview

import "fmt"

// LayoutState is a snapshot of the grid's visible window. A Layouter keeps two
// of them: the proposed state computed for a scroll request and the state that
// was last realized into placed cells.
type LayoutState struct {
	// Invalid forces the next prelayout to recompute both axes and the next
	// layout pass to re-populate every placed cell.
	Invalid bool

	ScrollX, ScrollY int
	Width, Height    int

	// First visible body row and column. Both are at least 1.
	FirstBodyRow, FirstBodyCol int
	// How far the first body row and column are scrolled under the headers.
	FirstBodyRowY, FirstBodyColX int

	BodyRowCount, BodyColCount int
}

// Reset returns the state to an unscrolled window right after the headers.
// The Invalid flag is left untouched.
func (s *LayoutState) Reset() {
	invalid := s.Invalid
	*s = LayoutState{
		Invalid:      invalid,
		FirstBodyRow: 1,
		FirstBodyCol: 1,
	}
}

// CopyFrom copies every field but Invalid from other.
func (s *LayoutState) CopyFrom(other *LayoutState) {
	invalid := s.Invalid
	*s = *other
	s.Invalid = invalid
}

// Equal reports whether both states describe the same window. The Invalid
// flag is ignored.
func (s *LayoutState) Equal(other *LayoutState) bool {
	a, b := *s, *other
	a.Invalid, b.Invalid = false, false
	return a == b
}

// rowWindow and colWindow return the per-axis windows used to seed the next
// LayoutAxis call.
func (s *LayoutState) rowWindow() AxisWindow {
	return AxisWindow{StartIndex: s.FirstBodyRow, StartOffset: s.FirstBodyRowY, BodyCount: s.BodyRowCount, Scroll: s.ScrollY}
}

func (s *LayoutState) colWindow() AxisWindow {
	return AxisWindow{StartIndex: s.FirstBodyCol, StartOffset: s.FirstBodyColX, BodyCount: s.BodyColCount, Scroll: s.ScrollX}
}

func (s *LayoutState) setRowWindow(w AxisWindow) {
	s.FirstBodyRow, s.FirstBodyRowY, s.BodyRowCount, s.ScrollY = w.StartIndex, w.StartOffset, w.BodyCount, w.Scroll
}

func (s *LayoutState) setColWindow(w AxisWindow) {
	s.FirstBodyCol, s.FirstBodyColX, s.BodyColCount, s.ScrollX = w.StartIndex, w.StartOffset, w.BodyCount, w.Scroll
}

// IsCellVisible reports whether the given position lies in the window. The
// corner cell is always visible; header cells are visible when their body
// coordinate is.
func (s *LayoutState) IsCellVisible(row, col int) bool {
	rowVisible := row >= s.FirstBodyRow && row < s.FirstBodyRow+s.BodyRowCount
	colVisible := col >= s.FirstBodyCol && col < s.FirstBodyCol+s.BodyColCount
	switch {
	case row == 0 && col == 0:
		return true
	case col == 0:
		return rowVisible
	case row == 0:
		return colVisible
	default:
		return rowVisible && colVisible
	}
}

func (s *LayoutState) String() string {
	return fmt.Sprintf(
		"LayoutState{invalid=%t scroll=(%d,%d) size=%dx%d firstBody=(%d,%d) firstBodyOffset=(%d,%d) bodyCount=(%d,%d)}",
		s.Invalid, s.ScrollX, s.ScrollY, s.Width, s.Height,
		s.FirstBodyRow, s.FirstBodyCol, s.FirstBodyRowY, s.FirstBodyColX,
		s.BodyRowCount, s.BodyColCount,
	)
}
