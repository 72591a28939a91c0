package gridview

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// TextCell is a cell view showing text, centered by default. Lines that do
// not fit are cut with an ellipsis.
type TextCell struct {
	*Box

	text      string
	textStyle tcell.Style
	alignment Alignment
	wrap      bool

	// wrapFunc splits text into lines of at most width cells.
	wrapFunc func(text string, width int) []string
}

// NewTextCell returns an empty, word-wrapping text cell.
func NewTextCell() *TextCell {
	return &TextCell{
		Box:       NewBox(),
		textStyle: tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Background(Styles.PrimitiveBackgroundColor),
		alignment: AlignmentCenter,
		wrap:      true,
		wrapFunc:  WordWrap,
	}
}

// SetText sets the text.
func (c *TextCell) SetText(text string) *TextCell {
	if c.text != text {
		c.text = text
		c.MarkDirty()
	}
	return c
}

// GetText returns the text.
func (c *TextCell) GetText() string {
	return c.text
}

// SetTextStyle sets the text style. Its background also becomes the cell's
// background.
func (c *TextCell) SetTextStyle(style tcell.Style) *TextCell {
	if c.textStyle != style {
		c.textStyle = style
		_, bg, _ := style.Decompose()
		c.SetBackgroundColor(bg)
		c.MarkDirty()
	}
	return c
}

// SetAlignment sets the horizontal alignment of each line.
func (c *TextCell) SetAlignment(alignment Alignment) *TextCell {
	if c.alignment != alignment {
		c.alignment = alignment
		c.MarkDirty()
	}
	return c
}

// SetWrap sets whether text is word-wrapped. Unwrapped text is split at
// newlines only.
func (c *TextCell) SetWrap(wrap bool) *TextCell {
	if c.wrap != wrap {
		c.wrap = wrap
		c.MarkDirty()
	}
	return c
}

// SetWrapFunc replaces the word wrapping function, e.g. with a cached one.
func (c *TextCell) SetWrapFunc(wrap func(text string, width int) []string) *TextCell {
	if wrap == nil {
		wrap = WordWrap
	}
	c.wrapFunc = wrap
	c.MarkDirty()
	return c
}

// lines returns the lines to draw into the given width.
func (c *TextCell) lines(width int) []string {
	if c.text == "" || width <= 0 {
		return nil
	}
	var lines []string
	if c.wrap {
		for _, paragraph := range strings.Split(c.text, "\n") {
			lines = append(lines, c.wrapFunc(paragraph, width)...)
		}
	} else {
		lines = strings.Split(c.text, "\n")
	}
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		lines[i] = line
		if runewidth.StringWidth(line) > width {
			lines[i] = runewidth.Truncate(line, width, SemigraphicsHorizontalEllipsis)
		}
	}
	return lines
}

// Draw draws the text, vertically centered.
func (c *TextCell) Draw(screen tcell.Screen) {
	c.DrawForSubclass(screen, c)

	x, y, width, height := c.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	lines := c.lines(width)
	if len(lines) > height {
		lines = lines[:height]
		last := lines[height-1]
		if runewidth.StringWidth(last)+1 > width {
			last = runewidth.Truncate(last, width-1, "")
		}
		lines[height-1] = last + SemigraphicsHorizontalEllipsis
	}

	top := y + (height-len(lines))/2
	for i, line := range lines {
		PrintStyled(screen, line, x, top+i, width, c.alignment, c.textStyle)
	}
}

// SwatchCell is a cell view filled with a horizontal color gradient and an
// optional label.
type SwatchCell struct {
	*Box

	from, to   tcell.Color
	label      string
	labelStyle tcell.Style
}

// NewSwatchCell returns a swatch fading from the contrast background color to
// the header background color.
func NewSwatchCell() *SwatchCell {
	return &SwatchCell{
		Box:        NewBox(),
		from:       Styles.ContrastBackgroundColor,
		to:         Styles.HeaderBackgroundColor,
		labelStyle: tcell.StyleDefault.Foreground(Styles.PrimaryTextColor),
	}
}

// SetColors sets the colors at the left and right edge.
func (s *SwatchCell) SetColors(from, to tcell.Color) *SwatchCell {
	if s.from != from || s.to != to {
		s.from, s.to = from, to
		s.MarkDirty()
	}
	return s
}

// SetLabel sets the text drawn in the middle of the swatch.
func (s *SwatchCell) SetLabel(label string) *SwatchCell {
	if s.label != label {
		s.label = label
		s.MarkDirty()
	}
	return s
}

// Draw draws the gradient and the label.
func (s *SwatchCell) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	x, y, width, height := s.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	for col := 0; col < width; col++ {
		bg := BlendColors(s.from, s.to, gradientStop(col, width))
		fillRect(screen, x+col, y, 1, height, " ", tcell.StyleDefault.Background(bg))
	}

	if s.label == "" {
		return
	}
	label := s.label
	if runewidth.StringWidth(label) > width {
		label = runewidth.Truncate(label, width, SemigraphicsHorizontalEllipsis)
	}
	PrintStyled(screen, label, x, y+height/2, width, AlignmentCenter, s.labelStyle.Background(tcell.ColorDefault))
}

func gradientStop(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// BlendColors blends two colors in the CIE-L*a*b* space; t is 0 for from and
// 1 for to. Colors without an RGB value count as black.
func BlendColors(from, to tcell.Color, t float64) tcell.Color {
	blended := toColorful(from).BlendLab(toColorful(to), t).Clamped()
	r, g, b := blended.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

var (
	_ CellView = &TextCell{}
	_ CellView = &SwatchCell{}
)
