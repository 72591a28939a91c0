package gridview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

type grapheme struct {
	text  string
	width int
}

// graphemes splits text into grapheme clusters and returns them with the
// total screen width.
func graphemes(text string) (clusters []grapheme, width int) {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, grapheme{text: g.Str(), width: g.Width()})
		width += g.Width()
	}
	return clusters, width
}

// PrintStyled prints one line of text into the cells x to x+maxWidth-1 of row
// y. Right aligned text that does not fit loses its start and centered text
// loses both ends. Cells keep their background when style has none.
//
// It returns the number of bytes and the screen width printed.
func PrintStyled(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	screenWidth, screenHeight := screen.Size()
	if maxWidth <= 0 || text == "" || y < 0 || y >= screenHeight {
		return 0, 0
	}

	clusters, width := graphemes(text)
	limit := x + maxWidth
	switch alignment {
	case AlignmentRight:
		for len(clusters) > 0 && width > maxWidth {
			width -= clusters[0].width
			clusters = clusters[1:]
		}
		x += maxWidth - width
	case AlignmentCenter:
		for excess := (width - maxWidth) / 2; len(clusters) > 0 && excess > 0; clusters = clusters[1:] {
			excess -= clusters[0].width
			width -= clusters[0].width
		}
		if width < maxWidth {
			x += maxWidth/2 - width/2
		}
	}

	_, background, _ := style.Decompose()
	var bytes, printed int
	for _, c := range clusters {
		if x >= limit || x >= screenWidth {
			break
		}
		if c.width > 0 {
			cellStyle := style
			if background == tcell.ColorDefault {
				_, _, existing, _ := screen.GetContent(x, y)
				_, bg, _ := existing.Decompose()
				cellStyle = style.Background(bg)
			}
			// Wide clusters own the cells they cover. The glyph is written
			// last so the padding does not overwrite it.
			for offset := c.width - 1; offset > 0; offset-- {
				screen.SetContent(x+offset, y, ' ', nil, cellStyle)
			}
			putGlyph(screen, x, y, c.text, cellStyle)
		}
		x += c.width
		bytes += len(c.text)
		printed += c.width
	}
	return bytes, printed
}

// putGlyph writes one grapheme cluster into a screen cell.
func putGlyph(screen tcell.Screen, x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	screen.SetContent(x, y, runes[0], runes[1:], style)
}

// fillRect paints a rectangle with one glyph.
func fillRect(screen tcell.Screen, x, y, width, height int, glyph string, style tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			putGlyph(screen, col, row, glyph, style)
		}
	}
}
