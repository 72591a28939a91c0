package gridview

// Command is returned by event handlers and carried out by the Application
// once the handler returns. A nil Command does nothing.
type Command any

// BatchCommand runs its commands in order.
type BatchCommand []Command

// AppendCommand merges next into current. Nil commands are dropped and
// batches are flattened, so the result is nil, a single command or one
// BatchCommand.
func AppendCommand(current, next Command) Command {
	switch {
	case next == nil:
		return current
	case current == nil:
		return next
	}
	var batch BatchCommand
	for _, c := range []Command{current, next} {
		if b, ok := c.(BatchCommand); ok {
			batch = append(batch, b...)
		} else {
			batch = append(batch, c)
		}
	}
	return batch
}

// SetFocusCommand moves the focus to Target.
type SetFocusCommand struct {
	Target Primitive
}

// RedrawCommand redraws the screen after the event.
type RedrawCommand struct{}

// QuitCommand stops the application.
type QuitCommand struct{}

// AnimateCommand calls Step once per frame on the event loop, redrawing after
// each call, until Step returns false. A grid fling is an animation.
type AnimateCommand struct {
	Step func() bool
}
