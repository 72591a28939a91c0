package layers

import (
	"slices"

	"github.com/ayn2op/gridview"
	"github.com/gdamore/tcell/v2"
)

// layer represents one layer of a Layers object.
type layer struct {
	name    string
	item    gridview.Primitive
	resize  bool // Whether the layer fills the container's inner rect.
	visible bool
	enabled bool // Whether the layer receives focus and input.
	overlay bool // Whether the layer styles the layers behind it.
}

// Layers is a container for primitives laid out on top of each other. The
// layers are drawn from back to front. An overlay layer dims the layers
// behind it and keeps input away from them, e.g. for a help popup over the
// grid.
type Layers struct {
	*gridview.Box

	layers []*layer
	// The style applied to layers behind the active overlay layer.
	backgroundLayerStyle tcell.Style

	// setFocus passes the focus to a newly visible layer.
	setFocus func(p gridview.Primitive)
	changed  func()
}

// Option configures a layer on Add.
type Option func(*layer)

// WithName sets the layer's name.
func WithName(name string) Option {
	return func(l *layer) {
		l.name = name
	}
}

// WithResize sets whether the layer is resized to the container's inner rect.
func WithResize(resize bool) Option {
	return func(l *layer) {
		l.resize = resize
	}
}

// WithVisible sets the initial visibility of the layer.
func WithVisible(visible bool) Option {
	return func(l *layer) {
		l.visible = visible
	}
}

// WithEnabled sets whether the layer can receive focus and input.
func WithEnabled(enabled bool) Option {
	return func(l *layer) {
		l.enabled = enabled
	}
}

// WithOverlay marks this layer as an overlay layer.
func WithOverlay() Option {
	return func(l *layer) {
		l.overlay = true
	}
}

// New returns a new Layers object. Layers behind an overlay are dimmed.
func New() *Layers {
	return &Layers{
		Box:                  gridview.NewBox(),
		backgroundLayerStyle: tcell.StyleDefault.Dim(true),
	}
}

// SetChangedFunc sets a handler which is called whenever the visibility or the
// order of any visible layers changes.
func (l *Layers) SetChangedFunc(handler func()) *Layers {
	l.changed = handler
	return l
}

// Len returns the number of layers.
func (l *Layers) Len() int {
	return len(l.layers)
}

// Names returns all layer names ordered from front to back, optionally
// limited to visible layers.
func (l *Layers) Names(visibleOnly bool) []string {
	var names []string
	for _, layer := range slices.Backward(l.layers) {
		if !visibleOnly || layer.visible {
			names = append(names, layer.name)
		}
	}
	return names
}

// Add adds a new, visible and enabled layer on top. A layer with the same
// name is replaced.
func (l *Layers) Add(item gridview.Primitive, opts ...Option) *Layers {
	hasFocus := l.HasFocus()
	added := &layer{item: item, visible: true, enabled: true}
	for _, opt := range opts {
		if opt != nil {
			opt(added)
		}
	}
	if added.name != "" {
		l.layers = slices.DeleteFunc(l.layers, func(existing *layer) bool {
			return existing.name == added.name
		})
	}
	l.layers = append(l.layers, added)
	l.update(added.visible, hasFocus)
	return l
}

// Remove removes the layer with the given name.
func (l *Layers) Remove(name string) *Layers {
	hasFocus := l.HasFocus()
	if index := l.index(name); index >= 0 {
		removed := l.layers[index]
		l.layers = slices.Delete(l.layers, index, index+1)
		l.update(removed.visible, hasFocus)
	}
	return l
}

// Has returns true if a layer with the given name exists.
func (l *Layers) Has(name string) bool {
	return l.index(name) >= 0
}

// Get returns the primitive of the named layer, or nil.
func (l *Layers) Get(name string) gridview.Primitive {
	if index := l.index(name); index >= 0 {
		return l.layers[index].item
	}
	return nil
}

// Visible returns whether the named layer is visible.
func (l *Layers) Visible(name string) bool {
	index := l.index(name)
	return index >= 0 && l.layers[index].visible
}

// Show makes the named layer visible.
func (l *Layers) Show(name string) *Layers {
	return l.setVisible(name, true)
}

// Hide hides the named layer.
func (l *Layers) Hide(name string) *Layers {
	return l.setVisible(name, false)
}

// Toggle flips the visibility of the named layer.
func (l *Layers) Toggle(name string) *Layers {
	return l.setVisible(name, !l.Visible(name))
}

func (l *Layers) setVisible(name string, visible bool) *Layers {
	index := l.index(name)
	if index < 0 || l.layers[index].visible == visible {
		return l
	}
	hasFocus := l.HasFocus()
	item := l.layers[index].item
	if !visible && item.HasFocus() {
		item.Blur()
	}
	l.layers[index].visible = visible
	l.update(true, hasFocus)
	return l
}

// SendToFront moves the named layer to the top.
func (l *Layers) SendToFront(name string) *Layers {
	index := l.index(name)
	if index < 0 || index == len(l.layers)-1 {
		return l
	}
	hasFocus := l.HasFocus()
	moved := l.layers[index]
	l.layers = append(slices.Delete(l.layers, index, index+1), moved)
	l.update(moved.visible, hasFocus)
	return l
}

// Front returns the front-most visible layer, or ("", nil).
func (l *Layers) Front() (string, gridview.Primitive) {
	for _, layer := range slices.Backward(l.layers) {
		if layer.visible {
			return layer.name, layer.item
		}
	}
	return "", nil
}

// SetBackgroundLayerStyle sets the style applied to layers behind the active
// overlay layer. Only set colors and attributes are applied.
func (l *Layers) SetBackgroundLayerStyle(style tcell.Style) *Layers {
	if l.backgroundLayerStyle != style {
		l.backgroundLayerStyle = style
		l.MarkDirty()
	}
	return l
}

func (l *Layers) index(name string) int {
	return slices.IndexFunc(l.layers, func(layer *layer) bool {
		return layer.name == name
	})
}

// update marks the container dirty and reports visible changes. If the
// container had focus before the change, the focus moves to the new top layer.
func (l *Layers) update(visibleChange, hadFocus bool) {
	l.MarkDirty()
	if visibleChange && l.changed != nil {
		l.changed()
	}
	if l.setFocus != nil && hadFocus {
		l.Focus(l.setFocus)
	}
}

// HasFocus returns whether or not this primitive has focus.
func (l *Layers) HasFocus() bool {
	for _, layer := range l.layers {
		if layer.enabled && layer.item.HasFocus() {
			return true
		}
	}
	return l.Box.HasFocus()
}

// Focus passes the focus to the top visible and enabled layer.
func (l *Layers) Focus(delegate func(p gridview.Primitive)) {
	if delegate == nil {
		return
	}
	l.setFocus = delegate
	if top := l.topLayer(); top != nil {
		delegate(top.item)
		return
	}
	l.Box.Focus(delegate)
}

// Draw draws the visible layers from back to front.
func (l *Layers) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)
	defer l.MarkClean()

	overlayIndex := l.overlayIndex()
	for index, layer := range l.layers {
		if !layer.visible {
			continue
		}
		layerScreen := screen
		if overlayIndex >= 0 && index < overlayIndex {
			layerScreen = &overlayScreen{Screen: screen, overlay: l.backgroundLayerStyle}
		}
		if layer.resize {
			layer.item.SetRect(l.GetInnerRect())
		}
		layer.item.Draw(layerScreen)
	}
}

// InputHandler passes key events to the focused layer.
func (l *Layers) InputHandler(event *tcell.EventKey) gridview.Command {
	for _, layer := range slices.Backward(l.layers) {
		if layer.visible && layer.enabled && layer.item.HasFocus() {
			return layer.item.InputHandler(event)
		}
	}
	return nil
}

// PasteHandler passes pasted text to the focused layer.
func (l *Layers) PasteHandler(text string) gridview.Command {
	for _, layer := range slices.Backward(l.layers) {
		if layer.visible && layer.enabled && layer.item.HasFocus() {
			return layer.item.PasteHandler(text)
		}
	}
	return nil
}

// MouseHandler passes mouse events to the front-most layer that takes them,
// but never to layers behind an active overlay.
func (l *Layers) MouseHandler(action gridview.MouseAction, event *tcell.EventMouse) (gridview.Primitive, gridview.Command) {
	if !l.InRect(event.Position()) {
		return nil, nil
	}
	overlayIndex := l.overlayIndex()
	for index := len(l.layers) - 1; index >= 0; index-- {
		layer := l.layers[index]
		if !layer.visible || !layer.enabled {
			continue
		}
		if overlayIndex >= 0 && index < overlayIndex {
			break
		}
		capture, cmd := layer.item.MouseHandler(action, event)
		if capture != nil || cmd != nil {
			return capture, cmd
		}
	}
	return nil, nil
}

func (l *Layers) topLayer() *layer {
	for _, layer := range slices.Backward(l.layers) {
		if layer.visible && layer.enabled {
			return layer
		}
	}
	return nil
}

// overlayIndex returns the index of the top-most visible and enabled overlay
// layer, or -1. Only one overlay is applied at a time.
func (l *Layers) overlayIndex() int {
	for index, layer := range slices.Backward(l.layers) {
		if layer.visible && layer.enabled && layer.overlay {
			return index
		}
	}
	return -1
}

// overlayScreen merges the overlay style into everything drawn through it.
type overlayScreen struct {
	tcell.Screen
	overlay tcell.Style
}

func (s *overlayScreen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	s.Screen.SetContent(x, y, primary, combining, mergeStyle(style, s.overlay))
}

// mergeStyle applies the colors set in overlay and adds its attributes, so
// existing attributes such as underlines survive.
func mergeStyle(base, overlay tcell.Style) tcell.Style {
	fg, bg, attrs := overlay.Decompose()
	if fg != tcell.ColorDefault {
		base = base.Foreground(fg)
	}
	if bg != tcell.ColorDefault {
		base = base.Background(bg)
	}
	_, _, baseAttrs := base.Decompose()
	return base.Attributes(baseAttrs | attrs)
}
