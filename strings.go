package gridview

import (
	"strings"

	"github.com/rivo/uniseg"
)

// StringWidth returns the number of screen cells text occupies.
func StringWidth(text string) int {
	return uniseg.StringWidth(text)
}

// WordWrap breaks text into lines no wider than width. Lines end at Unicode
// line break opportunities, spaces hang past the edge, and a word wider than
// width is split between grapheme clusters. Trailing spaces are removed.
func WordWrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	emit := func(line string) {
		lines = append(lines, strings.TrimRight(line, " \r\n"))
	}

	var (
		start, pos int
		lineWidth  int
		// breakAt is the last break opportunity in the current line and
		// breakWidth the line width up to it.
		breakAt, breakWidth = -1, 0
		state               = -1
		rest                = text
	)
	for len(rest) > 0 {
		var cluster string
		var boundaries int
		cluster, rest, boundaries, state = uniseg.StepString(rest, state)
		w := boundaries >> uniseg.ShiftWidth

		if lineWidth+w > width && lineWidth > 0 && cluster != " " {
			if breakAt > start {
				emit(text[start:breakAt])
				start, lineWidth = breakAt, lineWidth-breakWidth
			} else {
				emit(text[start:pos])
				start, lineWidth = pos, 0
			}
			breakAt = -1
		}
		pos += len(cluster)
		lineWidth += w

		switch boundaries & uniseg.MaskLine {
		case uniseg.LineCanBreak:
			breakAt, breakWidth = pos, lineWidth
		case uniseg.LineMustBreak:
			// The end of the text is a mandatory break too.
			if len(rest) > 0 {
				emit(text[start:pos])
				start, lineWidth, breakAt = pos, 0, -1
			}
		}
	}
	emit(text[start:])
	return lines
}
