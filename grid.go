package gridview

import (
	"cmp"
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
)

const (
	// DefaultTouchSlop is the distance in cells a pointer must travel before a
	// press turns into a drag.
	DefaultTouchSlop = 1
	// DefaultMinimumFlingVelocity is the speed, in cells per second, a drag
	// must exceed on release to start a fling.
	DefaultMinimumFlingVelocity = 20
	// DefaultMaximumFlingVelocity caps the release speed, in cells per second.
	DefaultMaximumFlingVelocity = 400
	// DefaultWheelStep is the number of cells scrolled per wheel notch.
	DefaultWheelStep = 3
)

// Grid is a scrollable spreadsheet view. Row 0 and column 0 of its data
// source stay pinned to the top and left edges while the body scrolls under
// them. Only the cells inside the visible window have views; views of cells
// that scroll out are recycled for cells that scroll in. Rows and columns may
// be merged into spans.
//
// Scroll values and cell boxes are in content coordinates: a cell at x is
// drawn at column x-scrollX of the viewport, and the header column sits at
// x == scrollX.
type Grid struct {
	*Box

	source   DataSource
	layouter *Layouter
	recycler *Recycler[CellView]

	// Committed scroll, always the corrected value of the latest request.
	scrollX, scrollY int

	dividerWidth int
	dividerStyle tcell.Style
	dividerSet   BorderSet

	touchSlop        int
	minFlingVelocity int
	maxFlingVelocity int
	wheelStep        int
	flinger          Flinger
	velocity         velocityTracker

	// Pointer state of a press that may turn into a drag.
	pointerDown  bool
	dragging     bool
	lastX, lastY int

	// layouting guards the layout pass against re-entry.
	layouting bool
	// pass numbers layout passes so cells not placed by the latest one can be
	// found.
	pass uint64

	verticalBar   *ScrollBar
	horizontalBar *ScrollBar

	keyMap GridKeyMap
	logger logr.Logger

	scrolled func(x, y int)
}

// NewGrid returns a grid without a data source.
func NewGrid() *Grid {
	return &Grid{
		Box:              NewBox(),
		layouter:         NewLayouter(),
		recycler:         NewRecycler[CellView](),
		dividerWidth:     1,
		dividerStyle:     tcell.StyleDefault.Foreground(Styles.DividerColor).Background(Styles.PrimitiveBackgroundColor),
		dividerSet:       BorderSetPlain(),
		touchSlop:        DefaultTouchSlop,
		minFlingVelocity: DefaultMinimumFlingVelocity,
		maxFlingVelocity: DefaultMaximumFlingVelocity,
		wheelStep:        DefaultWheelStep,
		flinger:          NewScroller(),
		keyMap:           DefaultGridKeyMap(),
		logger:           logr.Discard(),
	}
}

// SetDataSource replaces the data source. Every placed view is detached and
// all pooled views are dropped, since they were created by the old source.
// The scroll position is kept and clamped to the new content.
func (g *Grid) SetDataSource(source DataSource) *Grid {
	if notifier, ok := g.source.(ChangeNotifier); ok {
		notifier.SetChangedFunc(nil)
	}

	g.recycleAllCells()
	g.recycler.Clear()
	g.layouter.Clear()
	g.layouter.Invalidate()

	g.source = source
	if notifier, ok := source.(ChangeNotifier); ok {
		notifier.SetChangedFunc(g.dataChanged)
	}
	g.MarkDirty()
	return g
}

// DataSource returns the current data source.
func (g *Grid) DataSource() DataSource {
	return g.source
}

// dataChanged invalidates the window. The next layout pass re-populates the
// placed views in place.
func (g *Grid) dataChanged() {
	g.logger.V(1).Info("data changed")
	g.layouter.Invalidate()
	g.MarkDirty()
}

// SetDividerWidth sets the width of the lines between cells. Cell views are
// sized to their cell minus the divider, so this re-lays out every cell.
func (g *Grid) SetDividerWidth(width int) *Grid {
	width = max(width, 0)
	if g.dividerWidth != width {
		g.dividerWidth = width
		g.layouter.Invalidate()
		g.MarkDirty()
	}
	return g
}

// DividerWidth returns the width of the lines between cells.
func (g *Grid) DividerWidth() int {
	return g.dividerWidth
}

// SetDividerColor sets the color of the lines between cells.
func (g *Grid) SetDividerColor(color tcell.Color) *Grid {
	style := g.dividerStyle.Foreground(color)
	if g.dividerStyle != style {
		g.dividerStyle = style
		g.MarkDirty()
	}
	return g
}

// DividerColor returns the color of the lines between cells.
func (g *Grid) DividerColor() tcell.Color {
	fg, _, _ := g.dividerStyle.Decompose()
	return fg
}

// SetDividerSet sets the glyphs used to draw dividers one cell wide. Wider
// dividers are drawn as solid bars.
func (g *Grid) SetDividerSet(set BorderSet) *Grid {
	if g.dividerSet != set {
		g.dividerSet = set
		g.MarkDirty()
	}
	return g
}

// SetTouchSlop sets how far, in cells, a pressed pointer must move before the
// grid starts dragging.
func (g *Grid) SetTouchSlop(slop int) *Grid {
	g.touchSlop = max(slop, 0)
	return g
}

// SetMinimumFlingVelocity sets the speed, in cells per second, a release
// must exceed to start a fling.
func (g *Grid) SetMinimumFlingVelocity(velocity int) *Grid {
	g.minFlingVelocity = max(velocity, 0)
	return g
}

// SetMaximumFlingVelocity caps the speed of a fling.
func (g *Grid) SetMaximumFlingVelocity(velocity int) *Grid {
	g.maxFlingVelocity = max(velocity, 1)
	return g
}

// SetWheelStep sets the number of cells scrolled per mouse wheel notch.
func (g *Grid) SetWheelStep(step int) *Grid {
	g.wheelStep = max(step, 1)
	return g
}

// SetFlinger replaces the fling animation.
func (g *Grid) SetFlinger(flinger Flinger) *Grid {
	if flinger == nil {
		flinger = NewScroller()
	}
	g.flinger = flinger
	return g
}

// SetLogger sets the logger. Layout passes are logged at V(1), single cell
// placement and recycling at V(2).
func (g *Grid) SetLogger(logger logr.Logger) *Grid {
	g.logger = logger.WithName("grid")
	return g
}

// SetKeyMap sets the key bindings used to scroll.
func (g *Grid) SetKeyMap(keyMap GridKeyMap) *Grid {
	g.keyMap = keyMap
	return g
}

// KeyMap returns the key bindings used to scroll.
func (g *Grid) KeyMap() GridKeyMap {
	return g.keyMap
}

// SetScrollBars shows or hides the vertical and horizontal scroll bars. Each
// visible bar takes one row or column from the viewport.
func (g *Grid) SetScrollBars(vertical, horizontal bool) *Grid {
	switch {
	case vertical && g.verticalBar == nil:
		g.verticalBar = NewScrollBar(OrientationVertical)
	case !vertical:
		g.verticalBar = nil
	}
	switch {
	case horizontal && g.horizontalBar == nil:
		g.horizontalBar = NewScrollBar(OrientationHorizontal)
	case !horizontal:
		g.horizontalBar = nil
	}
	g.MarkDirty()
	return g
}

// ScrollBars returns the vertical and horizontal scroll bars for styling.
// A hidden bar is nil.
func (g *Grid) ScrollBars() (vertical, horizontal *ScrollBar) {
	return g.verticalBar, g.horizontalBar
}

// SetScrollChangedFunc sets a handler called with the committed scroll
// whenever it changes.
func (g *Grid) SetScrollChangedFunc(handler func(x, y int)) *Grid {
	g.scrolled = handler
	return g
}

// Scroll returns the committed scroll.
func (g *Grid) Scroll() (x, y int) {
	return g.scrollX, g.scrollY
}

// ScrollTo scrolls to the given content offset. Offsets outside the content
// are clamped, and a running fling is stopped when that happens.
func (g *Grid) ScrollTo(x, y int) *Grid {
	g.preLayoutAndAdjustScroll(x, y)
	state := g.layouter.Prelayout()
	if state.ScrollX != x || state.ScrollY != y {
		if !g.flinger.IsFinished() {
			g.flinger.ForceFinished(true)
		}
	}
	if g.commitScroll(state.ScrollX, state.ScrollY) {
		g.layoutChildren()
	}
	return g
}

// commitScroll sets the committed scroll and reports whether it changed.
func (g *Grid) commitScroll(x, y int) bool {
	if x == g.scrollX && y == g.scrollY {
		return false
	}
	g.scrollX, g.scrollY = x, y
	g.MarkDirty()
	if g.scrolled != nil {
		g.scrolled(x, y)
	}
	return true
}

// ScrollBy scrolls by the given delta.
func (g *Grid) ScrollBy(dx, dy int) *Grid {
	return g.ScrollTo(g.scrollX+dx, g.scrollY+dy)
}

// ScrollToEnd scrolls to the bottom-right corner of the content.
func (g *Grid) ScrollToEnd() *Grid {
	return g.ScrollTo(math.MaxInt32, math.MaxInt32)
}

// Fling starts a fling with the given scroll velocity in cells per second.
// Only the faster axis is kept, and velocities not above the minimum are
// dropped. The returned command steps the fling once per frame.
func (g *Grid) Fling(velocityX, velocityY int) Command {
	velocityX, velocityY = dominantFling(velocityX, velocityY, g.minFlingVelocity)
	if (velocityX == 0 && velocityY == 0) || g.layouter.Len() == 0 {
		return nil
	}
	g.logger.V(1).Info("fling", "velocityX", velocityX, "velocityY", velocityY)
	g.flinger.Fling(g.scrollX, g.scrollY, velocityX, velocityY, 0, math.MaxInt32, 0, math.MaxInt32)
	return AnimateCommand{Step: g.ComputeScroll}
}

// ComputeScroll advances a running fling by one frame. It returns false once
// the fling has finished.
func (g *Grid) ComputeScroll() bool {
	if !g.flinger.ComputeScrollOffset() {
		return false
	}
	g.ScrollTo(g.flinger.CurrX(), g.flinger.CurrY())
	return !g.flinger.IsFinished()
}

// IsFlinging returns whether a fling is running.
func (g *Grid) IsFlinging() bool {
	return !g.flinger.IsFinished()
}

func (g *Grid) cancelFling() {
	if !g.flinger.IsFinished() {
		g.flinger.ForceFinished(true)
	}
}

// viewportRect returns the screen area cells are drawn into: the inner rect
// minus the scroll bars.
func (g *Grid) viewportRect() (x, y, width, height int) {
	x, y, width, height = g.GetInnerRect()
	if g.verticalBar != nil && width > 0 {
		width--
	}
	if g.horizontalBar != nil && height > 0 {
		height--
	}
	return x, y, width, height
}

// preLayoutAndAdjustScroll computes the proposed window for the requested
// scroll. An axis is only recomputed when it was invalidated or its scroll
// or viewport extent changed. The proposed state's scroll is the corrected
// value callers must apply.
func (g *Grid) preLayoutAndAdjustScroll(scrollX, scrollY int) {
	_, _, width, height := g.viewportRect()
	state := g.layouter.Prelayout()
	colSeed, rowSeed := state.colWindow(), state.rowWindow()
	if state.Invalid {
		// Sizes and counts may have changed, so the old windows and their
		// scroll are dropped and each axis walks from the first index.
		colSeed, rowSeed = AxisWindow{StartIndex: 1}, AxisWindow{StartIndex: 1}
	}
	rows, cols := rowAxis{g.source}, colAxis{g.source}
	if rows.Count() <= 0 || cols.Count() <= 0 {
		// An empty sheet has nothing to scroll on either axis.
		rows, cols = rowAxis{}, colAxis{}
	}
	changed := false
	if state.Invalid || state.Width != width || state.ScrollX != scrollX {
		state.setColWindow(LayoutAxis(cols, colSeed, width, scrollX))
		changed = true
	}
	if state.Invalid || state.Height != height || state.ScrollY != scrollY {
		state.setRowWindow(LayoutAxis(rows, rowSeed, height, scrollY))
		changed = true
	}
	state.Width, state.Height = width, height
	state.Invalid = false
	if changed {
		g.logger.V(1).Info("prelayout", "state", state.String())
	}
}

// LayoutState returns a copy of the window realized by the latest layout
// pass.
func (g *Grid) LayoutState() LayoutState {
	return *g.layouter.Layout()
}

// Cell returns the cell registered at the given position, or nil. Merged
// spans are registered at their top-left position only.
func (g *Grid) Cell(pos Position) *Cell {
	return g.layouter.Get(pos)
}

// CellCount returns the number of placed cells.
func (g *Grid) CellCount() int {
	return g.layouter.Len()
}

// ForEachCell calls fn for every placed cell in row-major order until fn
// returns false.
func (g *Grid) ForEachCell(fn func(cell *Cell) bool) {
	for _, cell := range g.sortedCells() {
		if !fn(cell) {
			return
		}
	}
}

func (g *Grid) sortedCells() []*Cell {
	cells := make([]*Cell, 0, g.layouter.Len())
	for _, cell := range g.layouter.cells {
		cells = append(cells, cell)
	}
	slices.SortFunc(cells, func(a, b *Cell) int {
		if c := cmp.Compare(a.LT.Row, b.LT.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.LT.Col, b.LT.Col)
	})
	return cells
}

var _ Primitive = &Grid{}
