package main

import (
	"context"

	"github.com/ayn2op/gridview"
	"github.com/ayn2op/gridview/help"
	"github.com/ayn2op/gridview/internal/sheet"
	"github.com/ayn2op/gridview/keybind"
	"github.com/ayn2op/gridview/layers"
	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
)

const (
	mainLayer = "main"
	helpLayer = "help"
)

// jumpX and jumpY is where the scroll key jumps to: past the merged cells in
// the middle of the sample sheet.
const (
	jumpX = 48
	jumpY = 16
)

var (
	dividerWidths = []int{1, 2, 3, 0}
	dividerSets   = []gridview.BorderSet{
		gridview.BorderSetThick(), gridview.BorderSetDouble(), gridview.BorderSetRound(), gridview.BorderSetPlain(),
	}
	dividerColors = []tcell.Color{
		tcell.ColorBlue, tcell.ColorYellow, tcell.ColorGreen, tcell.ColorRed,
		tcell.ColorLightGray, tcell.ColorFuchsia, tcell.ColorAqua,
	}
)

type keyMap struct {
	Jump   keybind.Keybind
	Width  keybind.Keybind
	Color  keybind.Keybind
	Style  keybind.Keybind
	Help   keybind.Keybind
	Close  keybind.Keybind
	Quit   keybind.Keybind
	Grow   keybind.Keybind
	Shrink keybind.Keybind
}

func defaultKeyMap() keyMap {
	return keyMap{
		Jump:   keybind.NewKeybind(keybind.WithKeys("s"), keybind.WithHelp("s", "jump")),
		Width:  keybind.NewKeybind(keybind.WithKeys("w"), keybind.WithHelp("w", "divider width")),
		Color:  keybind.NewKeybind(keybind.WithKeys("c"), keybind.WithHelp("c", "divider color")),
		Style:  keybind.NewKeybind(keybind.WithKeys("b"), keybind.WithHelp("b", "divider style")),
		Help:   keybind.NewKeybind(keybind.WithKeys("?"), keybind.WithHelp("?", "help")),
		Close:  keybind.NewKeybind(keybind.WithKeys("esc", "?"), keybind.WithHelp("esc", "close help")),
		Quit:   keybind.NewKeybind(keybind.WithKeys("q", "ctrl+c"), keybind.WithHelp("q", "quit")),
		Grow:   keybind.NewKeybind(keybind.WithKeys("+"), keybind.WithHelp("+", "add row")),
		Shrink: keybind.NewKeybind(keybind.WithKeys("-"), keybind.WithHelp("-", "remove row")),
	}
}

func (k keyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Jump, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{{k.Jump, k.Width, k.Color, k.Style}, {k.Grow, k.Shrink, k.Help, k.Quit}}
}

// viewer is the demo UI: the grid above a help bar, with a help popup on a
// layer above both.
type viewer struct {
	app    *gridview.Application
	layers *layers.Layers
	main   *mainView
	popup  *helpPopup
	grid   *gridview.Grid
	sheet  *sheet.Sheet
	keys   keyMap
	logger logr.Logger

	widthIndex, colorIndex, setIndex int
}

func newViewer(app *gridview.Application, s *sheet.Sheet, cfg config, logger logr.Logger) *viewer {
	v := &viewer{
		app:    app,
		layers: layers.New(),
		sheet:  s,
		keys:   defaultKeyMap(),
		logger: logger,
	}

	v.grid = gridview.NewGrid().
		SetDividerWidth(cfg.dividerWidth).
		SetDividerColor(cfg.dividerColor).
		SetScrollBars(true, true).
		SetLogger(logger.WithName("grid")).
		SetDataSource(s)
	vertical, horizontal := v.grid.ScrollBars()
	for _, bar := range []*gridview.ScrollBar{vertical, horizontal} {
		bar.SetGlyphSet(gridview.UnicodeGlyphSet()).SetArrows(gridview.ScrollBarArrowsBoth)
	}
	v.grid.SetScrollChangedFunc(func(x, y int) {
		logger.V(2).Info("scrolled", "x", x, "y", y)
	})

	keyMaps := help.KeyMaps{v.keys, v.grid.KeyMap()}
	v.main = &mainView{Box: gridview.NewBox(), viewer: v, bar: help.New().SetKeyMap(keyMaps)}
	v.popup = &helpPopup{Box: gridview.NewBox(), viewer: v, help: help.New().SetKeyMap(keyMaps).SetShowAll(true)}
	v.popup.SetBorders(gridview.BordersAll).SetTitle(" Keys ")

	v.layers.
		Add(v.main, layers.WithName(mainLayer), layers.WithResize(true)).
		Add(v.popup, layers.WithName(helpLayer), layers.WithResize(true), layers.WithOverlay(), layers.WithVisible(false))
	return v
}

// run shows the UI until the user quits.
func (v *viewer) run() error {
	v.app.EnableMouse(true).SetRoot(v.layers)
	return v.app.Run()
}

// reload swaps in a freshly loaded sheet. It may be called from any
// goroutine.
func (v *viewer) reload(loaded *sheet.Sheet) {
	v.app.QueueUpdateDraw(func() {
		v.sheet.Update(loaded)
	})
}

func (v *viewer) toggleHelp() {
	v.layers.Toggle(helpLayer)
}

// handleKey handles the viewer's own keys and passes the rest to the grid.
func (v *viewer) handleKey(event *tcell.EventKey) gridview.Command {
	switch {
	case keybind.Matches(event, v.keys.Quit):
		return gridview.QuitCommand{}
	case keybind.Matches(event, v.keys.Help):
		v.toggleHelp()
	case keybind.Matches(event, v.keys.Jump):
		v.grid.ScrollTo(jumpX, jumpY)
	case keybind.Matches(event, v.keys.Width):
		v.widthIndex = (v.widthIndex + 1) % len(dividerWidths)
		v.grid.SetDividerWidth(dividerWidths[v.widthIndex])
	case keybind.Matches(event, v.keys.Color):
		v.grid.SetDividerColor(dividerColors[v.colorIndex])
		v.colorIndex = (v.colorIndex + 1) % len(dividerColors)
	case keybind.Matches(event, v.keys.Style):
		v.grid.SetDividerSet(dividerSets[v.setIndex])
		v.setIndex = (v.setIndex + 1) % len(dividerSets)
	case keybind.Matches(event, v.keys.Grow):
		v.resize(1)
	case keybind.Matches(event, v.keys.Shrink):
		v.resize(-1)
	default:
		return v.grid.InputHandler(event)
	}
	return gridview.RedrawCommand{}
}

// resize adds or removes rows at the bottom of the sheet.
func (v *viewer) resize(delta int) {
	rows := max(v.sheet.RowCount()+delta, 0)
	if err := v.sheet.Resize(rows, v.sheet.ColCount()); err != nil {
		v.logger.Error(err, "failed to resize sheet")
		return
	}
	v.logger.V(1).Info("sheet resized", "rows", rows, "views", v.sheet.Created())
}

// mainView draws the grid and a help bar below it.
type mainView struct {
	*gridview.Box
	viewer *viewer
	bar    *help.Help
}

func (m *mainView) Draw(screen tcell.Screen) {
	m.DrawForSubclass(screen, m)
	x, y, width, height := m.GetInnerRect()
	barHeight := min(m.bar.Height(), height)
	m.viewer.grid.SetRect(x, y, width, height-barHeight)
	m.bar.SetRect(x, y+height-barHeight, width, barHeight)
	m.viewer.grid.Draw(screen)
	m.bar.Draw(screen)
}

func (m *mainView) InputHandler(event *tcell.EventKey) gridview.Command {
	return m.viewer.handleKey(event)
}

func (m *mainView) MouseHandler(action gridview.MouseAction, event *tcell.EventMouse) (gridview.Primitive, gridview.Command) {
	if !m.viewer.grid.InRect(event.Position()) {
		return nil, nil
	}
	return m.viewer.grid.MouseHandler(action, event)
}

// helpPopup shows the full key help centered over the grid.
type helpPopup struct {
	*gridview.Box
	viewer *viewer
	help   *help.Help
}

func (p *helpPopup) Draw(screen tcell.Screen) {
	x, y, width, height := p.viewer.layers.GetInnerRect()
	popupWidth, popupHeight := min(64, width), min(p.help.Height()+2, height)
	p.Box.SetRect(x+(width-popupWidth)/2, y+(height-popupHeight)/2, popupWidth, popupHeight)
	p.DrawForSubclass(screen, p)
	p.help.SetRect(p.GetInnerRect())
	p.help.Draw(screen)
}

func (p *helpPopup) SetRect(x, y, width, height int) {
	// The popup centers itself when drawn.
}

func (p *helpPopup) InputHandler(event *tcell.EventKey) gridview.Command {
	switch {
	case keybind.Matches(event, p.viewer.keys.Quit):
		return gridview.QuitCommand{}
	case keybind.Matches(event, p.viewer.keys.Close):
		p.viewer.toggleHelp()
		return gridview.RedrawCommand{}
	}
	return nil
}

func (p *helpPopup) MouseHandler(action gridview.MouseAction, event *tcell.EventMouse) (gridview.Primitive, gridview.Command) {
	if action == gridview.MouseLeftClick && !p.InRect(event.Position()) {
		p.viewer.toggleHelp()
		return nil, gridview.RedrawCommand{}
	}
	return nil, nil
}

func run(ctx context.Context, cfg config) error {
	logger, closer, err := newLogger(cfg.logFile, cfg.logLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	s := sheet.Default(cfg.rows, cfg.cols)
	if cfg.sheetPath != "" {
		if s, err = sheet.Load(cfg.sheetPath); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app := gridview.NewApplication().SetLogger(logger)
	v := newViewer(app, s, cfg, logger)
	if cfg.watch {
		if err := watchSheet(ctx, cfg.sheetPath, logger.WithName("watch"), v.reload); err != nil {
			return err
		}
	}
	logger.Info("starting", "rows", s.RowCount(), "cols", s.ColCount())
	return v.run()
}
