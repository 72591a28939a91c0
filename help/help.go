package help

import (
	"strings"

	"github.com/ayn2op/gridview"
	"github.com/ayn2op/gridview/keybind"
	"github.com/gdamore/tcell/v2"
)

type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
	// FullHelp returns keybind groups, where each top-level entry is a column.
	FullHelp() [][]keybind.Keybind
}

// KeyMaps joins several key maps, e.g. the grid's and the application's.
type KeyMaps []KeyMap

func (k KeyMaps) ShortHelp() []keybind.Keybind {
	var out []keybind.Keybind
	for _, keyMap := range k {
		out = append(out, keyMap.ShortHelp()...)
	}
	return out
}

func (k KeyMaps) FullHelp() [][]keybind.Keybind {
	var out [][]keybind.Keybind
	for _, keyMap := range k {
		out = append(out, keyMap.FullHelp()...)
	}
	return out
}

// Help draws the bindings of a key map, either on one line or as columns.
type Help struct {
	*gridview.Box
	Styles Styles

	keyMap         KeyMap
	showAll        bool
	shortSeparator string
	fullSeparator  string
	ellipsis       string
}

func New() *Help {
	return &Help{
		Box:            gridview.NewBox(),
		Styles:         DefaultStyles(),
		shortSeparator: " • ",
		fullSeparator:  "    ",
		ellipsis:       gridview.SemigraphicsHorizontalEllipsis,
	}
}

// SetKeyMap sets the key map used by this help primitive.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	h.MarkDirty()
	return h
}

// SetShowAll enables or disables full help mode.
func (h *Help) SetShowAll(showAll bool) *Help {
	if h.showAll != showAll {
		h.showAll = showAll
		h.MarkDirty()
	}
	return h
}

// ShowAll returns whether full help mode is enabled.
func (h *Help) ShowAll() bool {
	return h.showAll
}

// SetShortSeparator sets the separator used in short help mode.
func (h *Help) SetShortSeparator(separator string) *Help {
	h.shortSeparator = separator
	return h
}

// SetFullSeparator sets the separator used between full help columns.
func (h *Help) SetFullSeparator(separator string) *Help {
	h.fullSeparator = separator
	return h
}

// Height returns the number of lines Draw needs for the current mode.
func (h *Help) Height() int {
	if h.keyMap == nil {
		return 0
	}
	if !h.showAll {
		return 1
	}
	rows := 0
	for _, group := range h.keyMap.FullHelp() {
		rows = max(rows, len(enabledHelp(group)))
	}
	return rows
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)
	if h.keyMap == nil {
		return
	}

	x, y, width, height := h.GetInnerRect()
	var lines [][]segment
	if h.showAll {
		lines = h.fullLines(h.keyMap.FullHelp(), width)
	} else {
		lines = [][]segment{h.shortLine(h.keyMap.ShortHelp(), width)}
	}
	for row := 0; row < len(lines) && row < height; row++ {
		drawSegments(screen, x, y+row, width, lines[row])
	}
}

type segment struct {
	text  string
	style tcell.Style
}

func enabledHelp(bindings []keybind.Keybind) []keybind.Help {
	out := make([]keybind.Help, 0, len(bindings))
	for _, kb := range bindings {
		hp := kb.Help()
		if !kb.Enabled() || (hp.Key == "" && hp.Desc == "") {
			continue
		}
		out = append(out, hp)
	}
	return out
}

// shortLine joins as many bindings as fit into maxWidth and ends with an
// ellipsis when some are left out.
func (h *Help) shortLine(bindings []keybind.Keybind, maxWidth int) []segment {
	var line []segment
	for i, hp := range enabledHelp(bindings) {
		var item []segment
		if i > 0 {
			item = append(item, segment{text: h.shortSeparator, style: h.Styles.ShortSeparatorStyle})
		}
		item = append(item, itemSegments(hp, h.Styles.ShortKeyStyle, h.Styles.ShortDescStyle)...)
		if maxWidth > 0 && width(line)+width(item) > maxWidth {
			return append(line, h.tail(line, maxWidth)...)
		}
		line = append(line, item...)
	}
	return line
}

// fullLines lays the groups out as aligned columns, dropping the columns
// that do not fit.
func (h *Help) fullLines(groups [][]keybind.Keybind, maxWidth int) [][]segment {
	type column struct {
		entries      []keybind.Help
		keyW, totalW int
	}

	var columns []column
	for _, group := range groups {
		col := column{entries: enabledHelp(group)}
		if len(col.entries) == 0 {
			continue
		}
		for _, e := range col.entries {
			col.keyW = max(col.keyW, gridview.StringWidth(e.Key))
		}
		for _, e := range col.entries {
			col.totalW = max(col.totalW, col.keyW+1+gridview.StringWidth(e.Desc))
		}
		columns = append(columns, col)
	}

	sepW := gridview.StringWidth(h.fullSeparator)
	fit, used, rows := 0, 0, 0
	for i, col := range columns {
		next := col.totalW
		if i > 0 {
			next += sepW
		}
		if maxWidth > 0 && used+next > maxWidth {
			break
		}
		fit, used = fit+1, used+next
		rows = max(rows, len(col.entries))
	}
	if fit == 0 {
		if len(columns) == 0 {
			return nil
		}
		return [][]segment{{{text: h.ellipsis, style: h.Styles.EllipsisStyle}}}
	}

	lines := make([][]segment, rows)
	for row := range lines {
		for i, col := range columns[:fit] {
			if i > 0 {
				lines[row] = append(lines[row], segment{text: h.fullSeparator, style: h.Styles.FullSeparatorStyle})
			}
			var cell []segment
			if row < len(col.entries) {
				e := col.entries[row]
				key := e.Key + strings.Repeat(" ", col.keyW-gridview.StringWidth(e.Key))
				cell = []segment{
					{text: key, style: h.Styles.FullKeyStyle},
					{text: " " + e.Desc, style: h.Styles.FullDescStyle},
				}
			}
			// Pad so the next separator stays aligned.
			if i < fit-1 {
				if pad := col.totalW - width(cell); pad > 0 {
					cell = append(cell, segment{text: strings.Repeat(" ", pad), style: h.Styles.FullDescStyle})
				}
			}
			lines[row] = append(lines[row], cell...)
		}
	}
	if fit < len(columns) {
		lines[0] = append(lines[0], h.tail(lines[0], maxWidth)...)
	}
	return lines
}

// tail returns the truncation marker if it fits after line.
func (h *Help) tail(line []segment, maxWidth int) []segment {
	if maxWidth <= 0 || h.ellipsis == "" {
		return nil
	}
	tail := []segment{{text: " " + h.ellipsis, style: h.Styles.EllipsisStyle}}
	if width(line)+width(tail) > maxWidth {
		return nil
	}
	return tail
}

func drawSegments(screen tcell.Screen, x, y, maxWidth int, segments []segment) {
	for _, s := range segments {
		if maxWidth <= 0 {
			return
		}
		_, printed := gridview.PrintStyled(screen, s.text, x, y, maxWidth, gridview.AlignmentLeft, s.style)
		x += printed
		maxWidth -= printed
	}
}

func itemSegments(hp keybind.Help, keyStyle, descStyle tcell.Style) []segment {
	switch {
	case hp.Key == "":
		return []segment{{text: hp.Desc, style: descStyle}}
	case hp.Desc == "":
		return []segment{{text: hp.Key, style: keyStyle}}
	default:
		return []segment{{text: hp.Key, style: keyStyle}, {text: " " + hp.Desc, style: descStyle}}
	}
}

func width(segments []segment) int {
	w := 0
	for _, s := range segments {
		w += gridview.StringWidth(s.text)
	}
	return w
}
