package gridview

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// Box is a rectangle with a background, an optional frame and a title. It
// implements every Primitive method but Draw in a useful way, so primitives
// embed it: the grid, the views shown in grid cells and the layers of the
// demo are all boxes.
type Box struct {
	x, y, width, height int

	backgroundColor tcell.Color

	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style

	title      string
	titleStyle tcell.Style

	hasFocus bool

	// parent is the primitive showing this box. A grid sets itself as the
	// parent of the views it places.
	parent Primitive

	dirty atomic.Bool
	// dirtyParent is dirtied along with this box. Only the transition from
	// clean to dirty is forwarded.
	dirtyParent atomic.Pointer[Box]
}

// NewBox returns a box without a frame, filled with the primitive background
// color.
func NewBox() *Box {
	b := &Box{
		width:           15,
		height:          10,
		backgroundColor: Styles.PrimitiveBackgroundColor,
		borderSet:       BorderSetPlain(),
		borderStyle:     tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		titleStyle:      tcell.StyleDefault.Foreground(Styles.TitleColor),
	}
	b.dirty.Store(true)
	return b
}

func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

func (b *Box) SetRect(x, y, width, height int) {
	if b.x == x && b.y == y && b.width == width && b.height == height {
		return
	}
	b.x, b.y, b.width, b.height = x, y, width, height
	b.MarkDirty()
}

// GetInnerRect returns the rect inside the frame. A title takes the top row
// even without a top border. Width and height are never negative.
func (b *Box) GetInnerRect() (int, int, int, int) {
	x, y, width, height := b.GetRect()
	if b.title != "" || b.borders.Has(BordersTop) {
		y++
		height--
	}
	if b.borders.Has(BordersBottom) {
		height--
	}
	if b.borders.Has(BordersLeft) {
		x++
		width--
	}
	if b.borders.Has(BordersRight) {
		width--
	}
	return x, y, max(width, 0), max(height, 0)
}

func (b *Box) InRect(x, y int) bool {
	return inRect(x, y, b.GetRect)
}

func (b *Box) InInnerRect(x, y int) bool {
	return inRect(x, y, b.GetInnerRect)
}

func inRect(x, y int, rect func() (int, int, int, int)) bool {
	rx, ry, width, height := rect()
	return x >= rx && x < rx+width && y >= ry && y < ry+height
}

// IsDirty reports whether the box changed since it was last drawn.
func (b *Box) IsDirty() bool {
	return b.dirty.Load()
}

// MarkDirty flags the box and its dirty parent for a redraw.
func (b *Box) MarkDirty() {
	if b.dirty.Swap(true) {
		return
	}
	if parent := b.dirtyParent.Load(); parent != nil {
		parent.MarkDirty()
	}
}

func (b *Box) MarkClean() {
	b.dirty.Store(false)
}

type dirtyParentSetter interface {
	setDirtyParent(parent *Box)
	clearDirtyParent(parent *Box)
}

func (b *Box) setDirtyParent(parent *Box) {
	if parent != nil && parent != b {
		b.dirtyParent.Store(parent)
	}
}

func (b *Box) clearDirtyParent(parent *Box) {
	if parent != nil {
		b.dirtyParent.CompareAndSwap(parent, nil)
	}
}

// bindDirtyParent makes child dirty parent when child embeds a Box.
func bindDirtyParent(child any, parent *Box) {
	if setter, ok := child.(dirtyParentSetter); ok {
		setter.setDirtyParent(parent)
	}
}

func unbindDirtyParent(child any, parent *Box) {
	if setter, ok := child.(dirtyParentSetter); ok {
		setter.clearDirtyParent(parent)
	}
}

func (b *Box) GetParent() Primitive {
	return b.parent
}

// SetParent attaches the box to parent, or detaches it when parent is nil.
func (b *Box) SetParent(parent Primitive) {
	b.parent = parent
}

func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

func (b *Box) PasteHandler(text string) Command {
	return nil
}

func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	return nil, nil
}

// SetBackgroundColor sets the fill color. The frame keeps its foreground and
// takes the new background.
func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	if b.backgroundColor != color {
		b.backgroundColor = color
		b.borderStyle = b.borderStyle.Background(color)
		b.MarkDirty()
	}
	return b
}

func (b *Box) SetBorders(borders Borders) *Box {
	if b.borders != borders {
		b.borders = borders
		b.MarkDirty()
	}
	return b
}

func (b *Box) SetBorderSet(set BorderSet) *Box {
	if b.borderSet != set {
		b.borderSet = set
		b.MarkDirty()
	}
	return b
}

func (b *Box) SetBorderStyle(style tcell.Style) *Box {
	if b.borderStyle != style {
		b.borderStyle = style
		b.MarkDirty()
	}
	return b
}

// SetTitle sets the title centered in the top row.
func (b *Box) SetTitle(title string) *Box {
	if b.title != title {
		b.title = title
		b.MarkDirty()
	}
	return b
}

func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws the background, the frame and the title of a
// primitive p that embeds b. Call it first from p's Draw.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	if b.width <= 0 || b.height <= 0 {
		return
	}
	fillRect(screen, b.x, b.y, b.width, b.height, " ", tcell.StyleDefault.Background(b.backgroundColor))
	if b.borders != BordersNone && b.width >= 2 && b.height >= 2 {
		b.drawBorders(screen)
	}
	if b.title != "" && b.width >= 4 {
		b.drawTitle(screen)
	}
}

func (b *Box) drawBorders(screen tcell.Screen) {
	left, top := b.x, b.y
	right, bottom := b.x+b.width-1, b.y+b.height-1
	set, style := b.borderSet, b.borderStyle

	if b.borders.Has(BordersTop) {
		fillRect(screen, left+1, top, b.width-2, 1, set.Top, style)
	}
	if b.borders.Has(BordersBottom) {
		fillRect(screen, left+1, bottom, b.width-2, 1, set.Bottom, style)
	}
	if b.borders.Has(BordersLeft) {
		fillRect(screen, left, top+1, 1, b.height-2, set.Left, style)
	}
	if b.borders.Has(BordersRight) {
		fillRect(screen, right, top+1, 1, b.height-2, set.Right, style)
	}

	corners := []struct {
		sides Borders
		x, y  int
		glyph string
	}{
		{BordersTop | BordersLeft, left, top, set.TopLeft},
		{BordersTop | BordersRight, right, top, set.TopRight},
		{BordersBottom | BordersLeft, left, bottom, set.BottomLeft},
		{BordersBottom | BordersRight, right, bottom, set.BottomRight},
	}
	for _, c := range corners {
		if b.borders.Has(c.sides) {
			putGlyph(screen, c.x, c.y, c.glyph, style)
		}
	}
}

// drawTitle centers the title between the corners and ends a title that
// does not fit with an ellipsis.
func (b *Box) drawTitle(screen tcell.Screen) {
	maxWidth := b.width - 2
	_, printed := PrintStyled(screen, b.title, b.x+1, b.y, maxWidth, AlignmentCenter, b.titleStyle)
	if printed > 0 && printed < StringWidth(b.title) {
		PrintStyled(screen, SemigraphicsHorizontalEllipsis, b.x+maxWidth, b.y, 1, AlignmentLeft, b.titleStyle)
	}
}

func (b *Box) Focus(delegate func(p Primitive)) {
	if !b.hasFocus {
		b.hasFocus = true
		b.MarkDirty()
	}
}

func (b *Box) Blur() {
	if b.hasFocus {
		b.hasFocus = false
		b.MarkDirty()
	}
}

func (b *Box) HasFocus() bool {
	return b.hasFocus
}

var _ Primitive = &Box{}
