package gridview

import (
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
)

const (
	// queueSize bounds the queued updates and polled events.
	queueSize = 100
	// redrawPause is the minimum time between two resize redraws.
	redrawPause = 50 * time.Millisecond
	// animationFrame is the time between two animation steps.
	animationFrame = 16 * time.Millisecond
)

// DoubleClickInterval is the longest time between two clicks that still
// counts as a double click.
var DoubleClickInterval = 500 * time.Millisecond

// MouseAction is what the mouse is logically doing. The application derives
// actions from raw mouse events.
type MouseAction int16

// Mouse actions.
const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseLeftDoubleClick
	MouseMiddleDown
	MouseMiddleUp
	MouseMiddleClick
	MouseMiddleDoubleClick
	MouseRightDown
	MouseRightUp
	MouseRightClick
	MouseRightDoubleClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

var buttonActions = []struct {
	button                  tcell.ButtonMask
	down, up, click, dclick MouseAction
}{
	{tcell.ButtonPrimary, MouseLeftDown, MouseLeftUp, MouseLeftClick, MouseLeftDoubleClick},
	{tcell.ButtonMiddle, MouseMiddleDown, MouseMiddleUp, MouseMiddleClick, MouseMiddleDoubleClick},
	{tcell.ButtonSecondary, MouseRightDown, MouseRightUp, MouseRightClick, MouseRightDoubleClick},
}

var wheelActions = []struct {
	button tcell.ButtonMask
	action MouseAction
}{
	{tcell.WheelUp, MouseScrollUp},
	{tcell.WheelDown, MouseScrollDown},
	{tcell.WheelLeft, MouseScrollLeft},
	{tcell.WheelRight, MouseScrollRight},
}

type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// mouseState is what the application remembers between mouse events.
type mouseState struct {
	// capture receives all mouse actions until it stops returning itself.
	capture      Primitive
	lastX, lastY int
	downX, downY int
	lastClick    time.Time
	buttons      tcell.ButtonMask
}

// Application owns the screen and runs the event loop. Key, paste and mouse
// events go to the root primitive, and the commands returned by its handlers
// decide whether the screen is redrawn. Animations, such as a grid fling, are
// stepped once per frame on the same loop.
//
//	if err := gridview.NewApplication().SetRoot(grid).Run(); err != nil {
//		log.Fatal(err)
//	}
type Application struct {
	sync.RWMutex

	// screen is nil before Run and after Stop.
	screen tcell.Screen
	root   Primitive
	focus  Primitive

	events  chan tcell.Event
	updates chan queuedUpdate

	mouse mouseState

	// forceRedraw clears the screen before the next frame.
	forceRedraw bool
	enableMouse bool
	enablePaste bool

	animations []func() bool
	frames     *time.Ticker

	logger logr.Logger
}

// NewApplication returns an application without a root primitive.
func NewApplication() *Application {
	return &Application{
		updates: make(chan queuedUpdate, queueSize),
		logger:  logr.Discard(),
	}
}

// SetLogger sets the logger. Animations are logged at V(1).
func (a *Application) SetLogger(logger logr.Logger) *Application {
	a.Lock()
	defer a.Unlock()
	a.logger = logger.WithName("app")
	return a
}

// EnableMouse turns mouse events on or off.
func (a *Application) EnableMouse(enable bool) *Application {
	a.Lock()
	defer a.Unlock()
	a.enableMouse = enable
	if a.screen != nil {
		a.applyInputModes(a.screen)
	}
	return a
}

// EnablePaste turns bracketed paste events on or off.
func (a *Application) EnablePaste(enable bool) *Application {
	a.Lock()
	defer a.Unlock()
	a.enablePaste = enable
	if a.screen != nil {
		a.applyInputModes(a.screen)
	}
	return a
}

func (a *Application) applyInputModes(screen tcell.Screen) {
	if a.enableMouse {
		screen.EnableMouse()
	} else {
		screen.DisableMouse()
	}
	if a.enablePaste {
		screen.EnablePaste()
	} else {
		screen.DisablePaste()
	}
}

// SetScreen sets an initialized screen to run on instead of the terminal.
// It has no effect once a screen is set.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

// Run opens the terminal, unless a screen was set, and handles events until
// Stop is called or the root returns a QuitCommand. The terminal belongs to
// the application while Run is active.
func (a *Application) Run() error {
	a.Lock()
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			a.Unlock()
			return err
		}
		if err := screen.Init(); err != nil {
			a.Unlock()
			return err
		}
		a.screen = screen
	}
	a.applyInputModes(a.screen)
	screen := a.screen
	a.events = make(chan tcell.Event, queueSize)
	events := a.events
	a.Unlock()

	// A panic would leave the terminal in raw mode.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()
	defer a.stopAnimations()

	a.draw()
	go pollEvents(screen, events)

	loop := eventLoop{app: a}
	for {
		select {
		case event := <-events:
			if event == nil {
				return loop.err
			}
			loop.handle(event)

		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}

		case <-a.frameTick():
			if a.stepAnimations() {
				a.draw()
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized, which
// PollEvent reports with nil.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event) {
	for {
		event := screen.PollEvent()
		events <- event
		if event == nil {
			return
		}
	}
}

// eventLoop holds the state of one Run call.
type eventLoop struct {
	app *Application
	err error

	pasting bool
	paste   strings.Builder

	lastResize  time.Time
	resizeTimer *time.Timer
}

func (l *eventLoop) handle(event tcell.Event) {
	a := l.app
	switch event := event.(type) {
	case *tcell.EventKey:
		if l.pasting {
			l.collectPaste(event)
			return
		}
		if root := a.getRoot(); root != nil && root.HasFocus() {
			if a.executeCommand(root.InputHandler(event)) {
				a.draw()
			}
		}

	case *tcell.EventPaste:
		switch {
		case event.Start():
			l.pasting = true
			l.paste.Reset()
		case event.End():
			l.pasting = false
			root := a.getRoot()
			if root != nil && root.HasFocus() && l.paste.Len() > 0 {
				if a.executeCommand(root.PasteHandler(l.paste.String())) {
					a.draw()
				}
			}
		}

	case *tcell.EventResize:
		l.resize(event)

	case *tcell.EventMouse:
		handled, down := a.fireMouseActions(event)
		if handled {
			a.draw()
		}
		a.mouse.buttons = event.Buttons()
		if down {
			a.mouse.downX, a.mouse.downY = event.Position()
		}

	case *tcell.EventError:
		l.err = event
		a.Stop()
	}
}

// collectPaste adds a key of a bracketed paste to the paste buffer.
func (l *eventLoop) collectPaste(event *tcell.EventKey) {
	switch event.Key() {
	case tcell.KeyRune:
		l.paste.WriteRune(event.Rune())
	case tcell.KeyEnter:
		l.paste.WriteRune('\n')
	case tcell.KeyTab:
		l.paste.WriteRune('\t')
	}
}

// resize redraws everything. Bursts of resize events are redrawn again once
// they settle, since the terminal may report stale sizes in between.
func (l *eventLoop) resize(event *tcell.EventResize) {
	a := l.app
	a.Lock()
	a.forceRedraw = true
	events := a.events
	a.Unlock()

	if time.Since(l.lastResize) < redrawPause {
		if l.resizeTimer != nil {
			l.resizeTimer.Stop()
		}
		l.resizeTimer = time.AfterFunc(redrawPause, func() {
			events <- event
		})
	}
	l.lastResize = time.Now()
	a.draw()
}

// fireMouseActions turns a mouse event into mouse actions and hands them to
// the capturing primitive, or the root. It reports whether a handler asked
// for a redraw and whether a button went down.
func (a *Application) fireMouseActions(event *tcell.EventMouse) (handled, down bool) {
	var target Primitive
	fire := func(action MouseAction) {
		switch action {
		case MouseLeftDown, MouseMiddleDown, MouseRightDown:
			down = true
		}

		primitive := a.getRoot()
		switch {
		case a.mouse.capture != nil:
			primitive = a.mouse.capture
			target = a.mouse.capture
		case target != nil:
			primitive = target
		}
		var capture Primitive
		if primitive != nil {
			var cmd Command
			capture, cmd = primitive.MouseHandler(action, event)
			if a.executeCommand(cmd) {
				handled = true
			}
		}
		a.mouse.capture = capture
	}

	x, y := event.Position()
	buttons := event.Buttons()
	moved := x != a.mouse.downX || y != a.mouse.downY
	changed := buttons ^ a.mouse.buttons

	if x != a.mouse.lastX || y != a.mouse.lastY {
		fire(MouseMove)
		a.mouse.lastX, a.mouse.lastY = x, y
	}

	for _, b := range buttonActions {
		if changed&b.button == 0 {
			continue
		}
		if buttons&b.button != 0 {
			fire(b.down)
			continue
		}
		fire(b.up)
		if moved {
			continue
		}
		if a.mouse.lastClick.Add(DoubleClickInterval).Before(time.Now()) {
			fire(b.click)
			a.mouse.lastClick = time.Now()
		} else {
			fire(b.dclick)
			a.mouse.lastClick = time.Time{}
		}
	}

	for _, w := range wheelActions {
		if buttons&w.button != 0 {
			fire(w.action)
		}
	}
	return handled, down
}

// Stop finalizes the screen, which makes Run return.
func (a *Application) Stop() {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		return
	}
	a.screen.Fini()
	a.screen = nil
}

// Draw redraws the screen on the event loop. Do not call it from the event
// loop itself, e.g. from a handler; return a RedrawCommand instead.
func (a *Application) Draw() *Application {
	a.QueueUpdate(func() {
		a.draw()
	})
	return a
}

func (a *Application) draw() *Application {
	a.Lock()
	screen, root, forceRedraw := a.screen, a.root, a.forceRedraw
	a.forceRedraw = false
	a.Unlock()
	if screen == nil || root == nil {
		return a
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	// Show only writes what changed, so the screen is cleared only when the
	// terminal may have lost its content.
	if forceRedraw {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
	return a
}

// SetRoot sets the primitive that fills the screen and gives it the focus.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	if a.screen != nil {
		a.forceRedraw = true
	}
	a.Unlock()

	a.SetFocus(root)
	return a
}

func (a *Application) getRoot() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.root
}

// SetFocus blurs the focused primitive and focuses p. The primitive may
// delegate the focus to one of its children.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	if a.focus != nil {
		a.focus.Blur()
	}
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.Unlock()

	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}
	return a
}

// GetFocus returns the focused primitive, or nil.
func (a *Application) GetFocus() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.focus
}

// QueueUpdate runs f on the event loop and returns once it has run. Use it
// to change primitives, or a data source, from other goroutines.
func (a *Application) QueueUpdate(f func()) *Application {
	done := make(chan struct{})
	a.updates <- queuedUpdate{f: f, done: done}
	<-done
	return a
}

// QueueUpdateDraw is QueueUpdate followed by a redraw.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	a.QueueUpdate(func() {
		f()
		a.draw()
	})
	return a
}

// QueueEvent hands an event to the event loop as if the screen sent it. It
// does nothing before Run.
func (a *Application) QueueEvent(event tcell.Event) *Application {
	a.RLock()
	events := a.events
	a.RUnlock()
	if events != nil {
		events <- event
	}
	return a
}

// executeCommand carries out a command returned by a handler and reports
// whether the screen needs a redraw.
func (a *Application) executeCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case nil:
		return false
	case BatchCommand:
		redraw := false
		for _, item := range c {
			if a.executeCommand(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
		return false
	case SetFocusCommand:
		if c.Target == nil {
			return false
		}
		changed := a.GetFocus() != c.Target
		a.SetFocus(c.Target)
		return changed
	case AnimateCommand:
		if c.Step == nil {
			return false
		}
		a.startAnimation(c.Step)
		return true
	default:
		return false
	}
}

func (a *Application) startAnimation(step func() bool) {
	a.animations = append(a.animations, step)
	if a.frames == nil {
		a.frames = time.NewTicker(animationFrame)
		a.logger.V(1).Info("animation started")
	}
}

// stepAnimations steps every animation once and drops the finished ones. It
// reports whether any animation ran.
func (a *Application) stepAnimations() bool {
	if len(a.animations) == 0 {
		return false
	}
	running := a.animations[:0]
	for _, step := range a.animations {
		if step() {
			running = append(running, step)
		}
	}
	clear(a.animations[len(running):])
	a.animations = running
	if len(running) == 0 {
		a.stopAnimations()
		a.logger.V(1).Info("animations finished")
	}
	return true
}

// frameTick is nil while nothing animates, so the loop sleeps.
func (a *Application) frameTick() <-chan time.Time {
	if a.frames == nil {
		return nil
	}
	return a.frames.C
}

func (a *Application) stopAnimations() {
	if a.frames != nil {
		a.frames.Stop()
		a.frames = nil
	}
	a.animations = nil
}
