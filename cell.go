package gridview

import "fmt"

// Cell binds a placed view to its grid position and its box in content
// coordinates. The box includes the divider strip on the bottom and right
// edge; the view itself is sized to the box minus the divider width.
type Cell struct {
	View     CellView
	ViewType int

	X, Y, Width, Height int

	// LT is the position the cell is registered under. RB is the bottom-right
	// position of a merged span and equals LT for plain cells.
	LT, RB Position

	// pass is the layout pass that last placed this cell.
	pass uint64
}

// IsMerged returns true if the cell is the bounding box of a merged span.
func (c *Cell) IsMerged() bool {
	return c.LT != c.RB
}

// ContentRect returns the box available to the view, excluding dividers.
func (c *Cell) ContentRect(dividerWidth int) (x, y, width, height int) {
	return c.X, c.Y, max(c.Width-dividerWidth, 0), max(c.Height-dividerWidth, 0)
}

func (c *Cell) String() string {
	return fmt.Sprintf("Cell{%s-%s type=%d box=(%d,%d %dx%d)}", c.LT, c.RB, c.ViewType, c.X, c.Y, c.Width, c.Height)
}
