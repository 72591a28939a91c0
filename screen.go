package gridview

import "github.com/gdamore/tcell/v2"

// viewportScreen lets primitives draw in content coordinates. Every write is
// shifted by (dx, dy) into screen coordinates and dropped unless it lands
// inside the clip rectangle, which is given in screen coordinates.
type viewportScreen struct {
	tcell.Screen
	dx, dy int
	clip   rect
}

type rect struct {
	x, y, width, height int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.width && y >= r.y && y < r.y+r.height
}

func (r rect) empty() bool {
	return r.width <= 0 || r.height <= 0
}

func newViewportScreen(screen tcell.Screen, dx, dy int, clip rect) *viewportScreen {
	return &viewportScreen{
		Screen: screen,
		dx:     dx,
		dy:     dy,
		clip:   clip,
	}
}

// Size reports the clip's far edge in content coordinates so text printers
// stop at the visible boundary.
func (s *viewportScreen) Size() (int, int) {
	return s.clip.x + s.clip.width - s.dx, s.clip.y + s.clip.height - s.dy
}

func (s *viewportScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	x, y = x+s.dx, y+s.dy
	if !s.clip.contains(x, y) {
		return
	}
	s.Screen.SetContent(x, y, primary, combining, style)
}

func (s *viewportScreen) GetContent(x, y int) (rune, []rune, tcell.Style, int) {
	return s.Screen.GetContent(x+s.dx, y+s.dy)
}

func (s *viewportScreen) ShowCursor(x int, y int) {
	x, y = x+s.dx, y+s.dy
	if !s.clip.contains(x, y) {
		s.Screen.HideCursor()
		return
	}
	s.Screen.ShowCursor(x, y)
}
