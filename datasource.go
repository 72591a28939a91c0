package gridview

import "sync"

// CellView is a primitive that can be placed into a grid cell. Views are
// attached to the grid while placed and detached when recycled, which is what
// GetParent and SetParent track. Box implements both.
type CellView interface {
	Primitive
	GetParent() Primitive
	SetParent(parent Primitive)
}

// DataSource supplies the grid's content. Row 0 and column 0 are the frozen
// header row and column and are included in the counts. Sizes are measured in
// screen cells and must stay stable until the source reports a change.
type DataSource interface {
	RowCount() int
	ColCount() int
	RowHeight(row int) int
	ColWidth(col int) int

	// QuerySpan returns the merged span covering the coordinate, if any. Every
	// coordinate inside a span must return the same span. Spans are laid out
	// in the body only.
	QuerySpan(row, col int) (Span, bool)

	// CellViewType classifies the view of a coordinate. Views are only reused
	// for coordinates of the same type.
	CellViewType(row, col int) int

	// CellView populates reuse for the coordinate and returns it, or creates
	// a new view when reuse is nil.
	CellView(reuse CellView, row, col int) CellView
}

// ChangeNotifier is implemented by data sources that can report changes. The
// grid installs its handler when the source is set and removes it (by
// installing nil) when the source is replaced.
type ChangeNotifier interface {
	SetChangedFunc(handler func())
}

// BaseDataSource implements ChangeNotifier. Embed it in a data source and
// call NotifyDataChanged after modifying the data.
type BaseDataSource struct {
	mu      sync.Mutex
	changed func()
}

// SetChangedFunc sets the handler called by NotifyDataChanged.
func (b *BaseDataSource) SetChangedFunc(handler func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.changed = handler
}

// NotifyDataChanged tells the grid that counts, sizes, spans or content have
// changed. Placed views are kept and re-populated in place on the next
// layout pass. It must be called from the goroutine that drives the grid,
// e.g. through Application.QueueUpdateDraw.
func (b *BaseDataSource) NotifyDataChanged() {
	b.mu.Lock()
	handler := b.changed
	b.mu.Unlock()
	if handler != nil {
		handler()
	}
}
