package gridview

import "fmt"

// Layouter owns the cells currently placed in the grid, keyed by the
// top-left position of each cell, and the proposed/committed layout states.
type Layouter struct {
	cells     map[Position]*Cell
	prelayout LayoutState
	layout    LayoutState
}

// NewLayouter returns a layouter with both states invalid, so the first
// layout pass computes and populates everything.
func NewLayouter() *Layouter {
	l := &Layouter{cells: make(map[Position]*Cell)}
	l.prelayout.Reset()
	l.layout.Reset()
	l.Invalidate()
	return l
}

// Add registers a cell. Registering a position twice means a layout pass
// placed the same cell twice and panics.
func (l *Layouter) Add(pos Position, cell *Cell) {
	if _, ok := l.cells[pos]; ok {
		panic(fmt.Sprintf("gridview: cell %s is already placed", pos))
	}
	l.cells[pos] = cell
}

// Get returns the cell registered at pos, or nil.
func (l *Layouter) Get(pos Position) *Cell {
	return l.cells[pos]
}

// Remove unregisters and returns the cell at pos, or nil.
func (l *Layouter) Remove(pos Position) *Cell {
	cell, ok := l.cells[pos]
	if !ok {
		return nil
	}
	delete(l.cells, pos)
	return cell
}

// Len returns the number of registered cells.
func (l *Layouter) Len() int {
	return len(l.cells)
}

// Prelayout returns the state computed for the latest scroll request.
func (l *Layouter) Prelayout() *LayoutState {
	return &l.prelayout
}

// Layout returns the state realized by the latest layout pass.
func (l *Layouter) Layout() *LayoutState {
	return &l.layout
}

// Pending reports whether the proposed window differs from the realized one
// or the realized one was invalidated.
func (l *Layouter) Pending() bool {
	return l.layout.Invalid || !l.layout.Equal(&l.prelayout)
}

// Commit copies the proposed window into the realized one.
func (l *Layouter) Commit() {
	l.layout.CopyFrom(&l.prelayout)
}

// Invalidate marks both states invalid so the next layout pass recomputes the
// window and re-populates every placed cell.
func (l *Layouter) Invalidate() {
	l.prelayout.Invalid = true
	l.layout.Invalid = true
}

// Clear unregisters every cell and resets both states.
func (l *Layouter) Clear() {
	l.prelayout.Reset()
	l.layout.Reset()
	clear(l.cells)
}
