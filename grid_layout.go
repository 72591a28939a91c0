package gridview

import "fmt"

// layoutChildren realizes the proposed window: it recycles the cells that
// left it, then places every visible cell, headers last. Empty grids recycle
// everything and reset the scroll to the origin. Calls made while a pass is
// running return immediately.
func (g *Grid) layoutChildren() {
	if g.source == nil || g.source.RowCount() <= 0 || g.source.ColCount() <= 0 {
		g.recycleAllCells()
		g.commitScroll(0, 0)
		return
	}
	if g.layouting {
		return
	}

	g.preLayoutAndAdjustScroll(g.scrollX, g.scrollY)
	if !g.layouter.Pending() {
		return
	}

	g.layouter.Commit()
	state := g.layouter.Layout()
	g.logger.V(1).Info("layout", "state", state.String())

	g.layouting = true
	g.pass++
	g.recycleCells()

	headerHeight := g.source.RowHeight(0)
	headerWidth := g.source.ColWidth(0)
	rowY := state.ScrollY - state.FirstBodyRowY + headerHeight
	for row := state.FirstBodyRow; row < state.FirstBodyRow+state.BodyRowCount; row++ {
		g.layoutRow(headerWidth, row, rowY)
		rowY += g.source.RowHeight(row)
	}
	// The header row is pinned to the top edge.
	g.layoutRow(headerWidth, 0, state.ScrollY)
	g.recycleStaleCells()

	state.Invalid = false
	g.layouting = false
	g.MarkDirty()

	// The pass may have seen new sizes; keep the scroll within the content.
	g.ScrollTo(state.ScrollX, state.ScrollY)
}

// layoutRow places the visible cells of a row starting at content offset y,
// then the row's header cell.
func (g *Grid) layoutRow(headerWidth, row, y int) {
	state := g.layouter.Layout()
	x := state.ScrollX - state.FirstBodyColX + headerWidth
	rowHeight := g.source.RowHeight(row)
	end := state.FirstBodyCol + state.BodyColCount
	for col := state.FirstBodyCol; col < end; {
		span, ok := Span{}, false
		if row > 0 {
			span, ok = g.source.QuerySpan(row, col)
		}
		if !ok || !span.IsMerged() {
			colWidth := g.source.ColWidth(col)
			g.layoutCell(Position{Row: row, Col: col}, x, y, colWidth, rowHeight)
			x += colWidth
			col++
			continue
		}

		// The span may start before this row or column; its box starts
		// where its first member would be.
		spanX, spanY := x, y
		spanWidth, spanHeight := 0, 0
		for i := span.LT.Col; i <= span.RB.Col; i++ {
			w := g.source.ColWidth(i)
			spanWidth += w
			if i < col {
				spanX -= w
			}
		}
		for i := span.LT.Row; i <= span.RB.Row; i++ {
			h := g.source.RowHeight(i)
			spanHeight += h
			if i < row {
				spanY -= h
			}
		}

		cell := g.layoutCell(span.LT, spanX, spanY, spanWidth, spanHeight)
		cell.RB = span.RB
		col = span.RB.Col + 1
		x = cell.X + cell.Width
	}

	// The header column is pinned to the left edge.
	g.layoutCell(Position{Row: row, Col: 0}, state.ScrollX, y, headerWidth, rowHeight)
}

// layoutCell places the cell at pos in the given content box, creating its
// view from the pool if the cell is not placed yet. Placed cells are
// re-populated when the window was invalidated, and their views are only
// resized or moved when the box changed.
func (g *Grid) layoutCell(pos Position, x, y, width, height int) *Cell {
	cell := g.layouter.Get(pos)
	needLayout := false
	switch {
	case cell == nil:
		viewType := g.source.CellViewType(pos.Row, pos.Col)
		reuse, _ := g.recycler.Reuse(viewType)
		cell = &Cell{View: g.source.CellView(reuse, pos.Row, pos.Col), ViewType: viewType}
		g.layouter.Add(pos, cell)
		needLayout = true
	case g.layouter.Layout().Invalid:
		needLayout = g.repopulateCell(pos, cell)
	}

	cell.LT, cell.RB = pos, pos
	cell.pass = g.pass

	switch parent := cell.View.GetParent(); parent {
	case nil:
		g.attach(cell.View)
		needLayout = true
	case Primitive(g):
	default:
		panic(fmt.Sprintf("gridview: view of cell %s is attached to another primitive", pos))
	}

	contentWidth, contentHeight := max(width-g.dividerWidth, 0), max(height-g.dividerWidth, 0)
	_, _, viewWidth, viewHeight := cell.View.GetRect()
	if cell.Width != width || cell.Height != height || viewWidth != contentWidth || viewHeight != contentHeight {
		cell.Width, cell.Height = width, height
		needLayout = true
	}
	if cell.X != x || cell.Y != y {
		cell.X, cell.Y = x, y
		needLayout = true
	}
	if needLayout {
		cell.View.SetRect(x, y, contentWidth, contentHeight)
		g.logger.V(2).Info("layout cell", "position", pos.String(), "x", x, "y", y, "width", width, "height", height)
	}
	return cell
}

// repopulateCell refreshes the view of a placed cell from the data source.
// A cell whose view type changed gets a view of the new type. It returns
// whether the cell's view was replaced.
func (g *Grid) repopulateCell(pos Position, cell *Cell) bool {
	viewType := g.source.CellViewType(pos.Row, pos.Col)
	if viewType != cell.ViewType {
		g.detach(cell.View)
		g.recycler.Recycle(cell.ViewType, cell.View)
		reuse, _ := g.recycler.Reuse(viewType)
		cell.View, cell.ViewType = g.source.CellView(reuse, pos.Row, pos.Col), viewType
		return true
	}

	view := g.source.CellView(cell.View, pos.Row, pos.Col)
	if view == cell.View {
		return false
	}
	g.detach(cell.View)
	cell.View = view
	return true
}

func (g *Grid) attach(view CellView) {
	view.SetParent(g)
	bindDirtyParent(view, g.Box)
}

func (g *Grid) detach(view CellView) {
	view.SetParent(nil)
	unbindDirtyParent(view, g.Box)
}

// recycleCells recycles the cells outside the committed window. Header cells
// follow the window along their body axis and the corner cell always stays.
// A merged cell stays while its top-left or bottom-right position is inside.
func (g *Grid) recycleCells() {
	state := g.layouter.Layout()
	for pos, cell := range g.layouter.cells {
		visible := state.IsCellVisible(cell.LT.Row, cell.LT.Col)
		if !visible && cell.IsMerged() {
			visible = state.IsCellVisible(cell.RB.Row, cell.RB.Col)
		}
		if !visible {
			g.recycleCell(pos, cell)
		}
	}
}

// recycleStaleCells recycles the cells the latest pass did not place, such as
// a cell that a new span now covers.
func (g *Grid) recycleStaleCells() {
	for pos, cell := range g.layouter.cells {
		if cell.pass != g.pass {
			g.recycleCell(pos, cell)
		}
	}
}

// recycleAllCells recycles every placed cell and resets the window.
func (g *Grid) recycleAllCells() {
	if g.layouter.Len() == 0 {
		return
	}
	for pos, cell := range g.layouter.cells {
		g.recycleCell(pos, cell)
	}
	g.layouter.Clear()
	g.layouter.Invalidate()
	g.MarkDirty()
}

func (g *Grid) recycleCell(pos Position, cell *Cell) {
	g.layouter.Remove(pos)
	g.detach(cell.View)
	g.recycler.Recycle(cell.ViewType, cell.View)
	g.logger.V(2).Info("recycle cell", "position", pos.String(), "viewType", cell.ViewType)
}
