package gridview

import (
	"math"

	"github.com/ayn2op/gridview/keybind"
	"github.com/gdamore/tcell/v2"
)

// GridKeyMap holds the key bindings of a grid.
type GridKeyMap struct {
	Up       keybind.Keybind
	Down     keybind.Keybind
	Left     keybind.Keybind
	Right    keybind.Keybind
	PageUp   keybind.Keybind
	PageDown keybind.Keybind
	Home     keybind.Keybind
	End      keybind.Keybind
}

// DefaultGridKeyMap returns the default grid key bindings.
func DefaultGridKeyMap() GridKeyMap {
	return GridKeyMap{
		Up:       keybind.NewKeybind(keybind.WithKeys("up", "k"), keybind.WithHelp("↑/k", "row up")),
		Down:     keybind.NewKeybind(keybind.WithKeys("down", "j"), keybind.WithHelp("↓/j", "row down")),
		Left:     keybind.NewKeybind(keybind.WithKeys("left", "h"), keybind.WithHelp("←/h", "column left")),
		Right:    keybind.NewKeybind(keybind.WithKeys("right", "l"), keybind.WithHelp("→/l", "column right")),
		PageUp:   keybind.NewKeybind(keybind.WithKeys("pgup", "ctrl+b"), keybind.WithHelp("pgup", "page up")),
		PageDown: keybind.NewKeybind(keybind.WithKeys("pgdn", "ctrl+f"), keybind.WithHelp("pgdn", "page down")),
		Home:     keybind.NewKeybind(keybind.WithKeys("home", "g"), keybind.WithHelp("home/g", "go to top")),
		End:      keybind.NewKeybind(keybind.WithKeys("end", "G"), keybind.WithHelp("end/G", "go to bottom")),
	}
}

// ShortHelp returns the bindings shown in single-line help.
func (k GridKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Up, k.Down, k.Left, k.Right}
}

// FullHelp returns the bindings grouped into help columns.
func (k GridKeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.Home, k.End},
	}
}

// InputHandler scrolls the grid by row, column or page.
func (g *Grid) InputHandler(event *tcell.EventKey) Command {
	if g.source == nil {
		return nil
	}
	state := g.layouter.Layout()
	rows, cols := rowAxis{g.source}, colAxis{g.source}
	_, _, _, height := g.viewportRect()

	switch {
	case keybind.Matches(event, g.keyMap.Up):
		g.ScrollBy(0, -stepBack(rows, state.rowWindow()))
	case keybind.Matches(event, g.keyMap.Down):
		g.ScrollBy(0, stepForward(rows, state.rowWindow()))
	case keybind.Matches(event, g.keyMap.Left):
		g.ScrollBy(-stepBack(cols, state.colWindow()), 0)
	case keybind.Matches(event, g.keyMap.Right):
		g.ScrollBy(stepForward(cols, state.colWindow()), 0)
	case keybind.Matches(event, g.keyMap.PageUp):
		g.ScrollBy(0, -bodyPage(rows, height))
	case keybind.Matches(event, g.keyMap.PageDown):
		g.ScrollBy(0, bodyPage(rows, height))
	case keybind.Matches(event, g.keyMap.Home):
		g.ScrollTo(g.scrollX, 0)
	case keybind.Matches(event, g.keyMap.End):
		g.ScrollTo(g.scrollX, math.MaxInt32)
	default:
		return nil
	}
	g.cancelFling()
	return RedrawCommand{}
}

// stepForward returns the distance that aligns the next body index with the
// header edge.
func stepForward(sizer AxisSizer, w AxisWindow) int {
	if w.StartIndex <= 0 || w.StartIndex >= sizer.Count() {
		return 0
	}
	return sizer.Size(w.StartIndex) - w.StartOffset
}

// stepBack returns the distance that aligns the current body index with the
// header edge, or the previous one if it already is.
func stepBack(sizer AxisSizer, w AxisWindow) int {
	if w.StartOffset > 0 {
		return w.StartOffset
	}
	if w.StartIndex <= 1 || w.StartIndex > sizer.Count() {
		return 0
	}
	return sizer.Size(w.StartIndex - 1)
}

// bodyPage returns the body extent of a viewport, at least one cell.
func bodyPage(sizer AxisSizer, extent int) int {
	if sizer.Count() == 0 {
		return 1
	}
	return max(extent-sizer.Size(0), 1)
}

// MouseHandler drags the content with the pointer, flings it on release and
// scrolls it with the wheel.
func (g *Grid) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	switch action {
	case MouseLeftDown:
		if !g.InInnerRect(x, y) {
			return nil, nil
		}
		g.cancelFling()
		g.pointerDown, g.dragging = true, false
		g.lastX, g.lastY = x, y
		g.velocity.clear()
		g.velocity.add(x, y, event.When())
		return g, RedrawCommand{}

	case MouseMove:
		if !g.pointerDown {
			return nil, nil
		}
		g.velocity.add(x, y, event.When())
		dx, dy := x-g.lastX, y-g.lastY
		if !g.dragging && max(abs(dx), abs(dy)) >= g.touchSlop {
			g.dragging = true
		}
		if !g.dragging {
			return g, nil
		}
		// The content follows the pointer.
		g.ScrollTo(g.scrollX-dx, g.scrollY-dy)
		g.lastX, g.lastY = x, y
		return g, RedrawCommand{}

	case MouseLeftUp:
		if !g.pointerDown {
			return nil, nil
		}
		g.velocity.add(x, y, event.When())
		velocityX, velocityY := g.velocity.velocity(g.maxFlingVelocity)
		g.velocity.clear()
		dragging := g.dragging
		g.pointerDown, g.dragging = false, false
		if !dragging {
			return nil, nil
		}
		return nil, AppendCommand(RedrawCommand{}, g.Fling(-velocityX, -velocityY))

	case MouseScrollUp, MouseScrollDown, MouseScrollLeft, MouseScrollRight:
		if !g.InInnerRect(x, y) {
			return nil, nil
		}
		g.cancelFling()
		switch action {
		case MouseScrollUp:
			g.ScrollBy(0, -g.wheelStep)
		case MouseScrollDown:
			g.ScrollBy(0, g.wheelStep)
		case MouseScrollLeft:
			g.ScrollBy(-g.wheelStep, 0)
		case MouseScrollRight:
			g.ScrollBy(g.wheelStep, 0)
		}
		return nil, RedrawCommand{}
	}
	return nil, nil
}
