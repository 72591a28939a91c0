package gridview

import "github.com/gdamore/tcell/v2"

// Draw lays out the grid if needed and draws it. Body cells are clipped to
// the area right of and below the headers, header column cells to the area
// below the header row, header row cells to the area right of the header
// column, and the corner cell is drawn last.
func (g *Grid) Draw(screen tcell.Screen) {
	g.DrawForSubclass(screen, g)
	g.layoutChildren()
	defer g.MarkClean()

	corner := g.layouter.Get(Position{})
	if corner != nil {
		g.drawCells(screen, corner.Width, corner.Height)
	}
	g.drawScrollBars(screen)
}

func (g *Grid) drawCells(screen tcell.Screen, headerWidth, headerHeight int) {
	x, y, width, height := g.viewportRect()
	dx, dy := x-g.scrollX, y-g.scrollY

	layers := []struct {
		clip  rect
		match func(pos Position) bool
	}{
		{
			clip:  rect{x: x + headerWidth, y: y + headerHeight, width: width - headerWidth, height: height - headerHeight},
			match: func(pos Position) bool { return pos.Row > 0 && pos.Col > 0 },
		},
		{
			clip:  rect{x: x, y: y + headerHeight, width: width, height: height - headerHeight},
			match: func(pos Position) bool { return pos.Row > 0 && pos.Col == 0 },
		},
		{
			clip:  rect{x: x + headerWidth, y: y, width: width - headerWidth, height: height},
			match: func(pos Position) bool { return pos.Row == 0 && pos.Col > 0 },
		},
		{
			clip:  rect{x: x, y: y, width: width, height: height},
			match: func(pos Position) bool { return pos.Row == 0 && pos.Col == 0 },
		},
	}

	cells := g.sortedCells()
	for _, layer := range layers {
		if layer.clip.empty() {
			continue
		}
		viewport := newViewportScreen(screen, dx, dy, layer.clip)
		for _, cell := range cells {
			if !layer.match(cell.LT) {
				continue
			}
			cell.View.Draw(viewport)
			g.drawDividers(viewport, cell)
		}
	}
}

// drawDividers draws the divider strips along the bottom and right edge of a
// cell. One cell wide dividers use the divider set's line glyphs; wider ones
// are solid bars.
func (g *Grid) drawDividers(screen tcell.Screen, cell *Cell) {
	d := g.dividerWidth
	if d <= 0 || cell.Width <= 0 || cell.Height <= 0 {
		return
	}
	right, bottom := cell.X+cell.Width, cell.Y+cell.Height

	if d == 1 {
		fillRect(screen, cell.X, bottom-1, cell.Width-1, 1, g.dividerSet.Bottom, g.dividerStyle)
		fillRect(screen, right-1, cell.Y, 1, cell.Height-1, g.dividerSet.Right, g.dividerStyle)
		putGlyph(screen, right-1, bottom-1, g.dividerSet.Cross, g.dividerStyle)
		return
	}

	fg, _, _ := g.dividerStyle.Decompose()
	bar := tcell.StyleDefault.Background(fg)
	fillRect(screen, cell.X, bottom-d, cell.Width, d, " ", bar)
	fillRect(screen, right-d, cell.Y, d, cell.Height, " ", bar)
}

// drawScrollBars draws the scroll bars along the body part of the right and
// bottom edge.
func (g *Grid) drawScrollBars(screen tcell.Screen) {
	if g.verticalBar == nil && g.horizontalBar == nil {
		return
	}

	x, y, width, height := g.viewportRect()
	headerWidth, headerHeight := 0, 0
	if g.source != nil && g.source.RowCount() > 0 && g.source.ColCount() > 0 {
		headerWidth, headerHeight = g.source.ColWidth(0), g.source.RowHeight(0)
	}

	if g.verticalBar != nil {
		bodyHeight := max(height-headerHeight, 0)
		g.verticalBar.SetRect(x+width, y+headerHeight, 1, bodyHeight)
		g.verticalBar.
			SetLengths(ScrollLengths{ContentLen: AxisExtent(rowAxis{g.source}), ViewportLen: bodyHeight}).
			SetOffset(g.scrollY)
		g.verticalBar.Draw(screen)
	}
	if g.horizontalBar != nil {
		bodyWidth := max(width-headerWidth, 0)
		g.horizontalBar.SetRect(x+headerWidth, y+height, bodyWidth, 1)
		g.horizontalBar.
			SetLengths(ScrollLengths{ContentLen: AxisExtent(colAxis{g.source}), ViewportLen: bodyWidth}).
			SetOffset(g.scrollX)
		g.horizontalBar.Draw(screen)
	}
}
