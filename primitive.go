package gridview

import "github.com/gdamore/tcell/v2"

// Primitive is anything the Application can lay out, draw and send events
// to. Embedding *Box provides all methods but Draw.
type Primitive interface {
	// Draw draws the primitive inside its rect.
	Draw(screen tcell.Screen)

	// GetRect returns x, y, width and height.
	GetRect() (int, int, int, int)
	SetRect(x, y, width, height int)

	// InputHandler handles a key while the primitive has the focus.
	InputHandler(event *tcell.EventKey) Command
	// MouseHandler handles a mouse action. A non-nil capture receives the
	// following mouse actions, wherever they happen, until it is released.
	MouseHandler(action MouseAction, event *tcell.EventMouse) (capture Primitive, cmd Command)
	// PasteHandler handles bracketed paste text.
	PasteHandler(text string) Command

	// HasFocus reports whether the primitive or one of its children has the
	// focus.
	HasFocus() bool
	// Focus gives the primitive the focus. It may hand it on with delegate.
	Focus(delegate func(p Primitive))
	Blur()
}
