package gridview

import "github.com/gdamore/tcell/v2"

// Orientation is the direction a scroll bar runs in.
type Orientation uint8

const (
	OrientationVertical Orientation = iota
	OrientationHorizontal
)

// ScrollBarArrows controls which endcaps are rendered.
type ScrollBarArrows uint8

const (
	ScrollBarArrowsNone ScrollBarArrows = iota
	ScrollBarArrowsStart
	ScrollBarArrowsEnd
	ScrollBarArrowsBoth
)

func (a ScrollBarArrows) hasStart() bool {
	return a == ScrollBarArrowsStart || a == ScrollBarArrowsBoth
}

func (a ScrollBarArrows) hasEnd() bool {
	return a == ScrollBarArrowsEnd || a == ScrollBarArrowsBoth
}

// ScrollLengths bundles content and viewport lengths in logical units.
type ScrollLengths struct {
	ContentLen  int
	ViewportLen int
}

const subcell = 8

// GlyphSet defines the track, arrow, and fractional thumb glyphs of both
// orientations. Lower/Upper thumbs fill a cell from its bottom/top edge,
// Left/Right thumbs from its left/right edge.
type GlyphSet struct {
	TrackVertical   string
	TrackHorizontal string

	ArrowVerticalStart   string
	ArrowVerticalEnd     string
	ArrowHorizontalStart string
	ArrowHorizontalEnd   string

	ThumbVerticalLower   [8]string
	ThumbVerticalUpper   [8]string
	ThumbHorizontalLeft  [8]string
	ThumbHorizontalRight [8]string
}

// MinimalGlyphSet returns the minimal glyph set (space track, fractional thumbs).
func MinimalGlyphSet() GlyphSet {
	g := UnicodeGlyphSet()
	g.TrackVertical = " "
	g.TrackHorizontal = " "
	return g
}

// UnicodeGlyphSet returns a standard-unicode-only glyph set. Thumb ends that
// have no standard glyph are rounded to the nearest half block.
func UnicodeGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical:   BoxDrawingsLightVertical,
		TrackHorizontal: BoxDrawingsLightHorizontal,

		ArrowVerticalStart:   "▲",
		ArrowVerticalEnd:     "▼",
		ArrowHorizontalStart: "◀",
		ArrowHorizontalEnd:   "▶",

		ThumbVerticalLower:   [8]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		ThumbVerticalUpper:   [8]string{"▔", "▔", "▀", "▀", "▀", "▀", "█", "█"},
		ThumbHorizontalLeft:  [8]string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"},
		ThumbHorizontalRight: [8]string{"▕", "▕", "▐", "▐", "▐", "▐", "█", "█"},
	}
}

// ScrollBar renders a scroll bar for one axis of a scrollable primitive.
type ScrollBar struct {
	*Box

	orientation Orientation
	autoHide    bool
	contentLen  int
	viewportLen int
	offset      int

	trackStyle tcell.Style
	thumbStyle tcell.Style
	arrowStyle tcell.Style

	glyphSet GlyphSet
	arrows   ScrollBarArrows

	showTrack bool
}

// NewScrollBar returns a new scroll bar running in the given direction.
func NewScrollBar(orientation Orientation) *ScrollBar {
	return &ScrollBar{
		Box:         NewBox(),
		orientation: orientation,
		autoHide:    true,
		trackStyle:  tcell.StyleDefault.Foreground(Styles.GraphicsColor).Dim(true),
		thumbStyle:  tcell.StyleDefault.Foreground(Styles.GraphicsColor),
		arrowStyle:  tcell.StyleDefault.Foreground(Styles.GraphicsColor).Dim(true),
		glyphSet:    MinimalGlyphSet(),
		arrows:      ScrollBarArrowsNone,
		showTrack:   true,
	}
}

// Orientation returns the direction of the scroll bar.
func (s *ScrollBar) Orientation() Orientation {
	return s.orientation
}

// SetLengths sets content and viewport lengths.
func (s *ScrollBar) SetLengths(lengths ScrollLengths) *ScrollBar {
	contentLen, viewportLen := max(lengths.ContentLen, 0), max(lengths.ViewportLen, 0)
	if s.contentLen != contentLen || s.viewportLen != viewportLen {
		s.contentLen, s.viewportLen = contentLen, viewportLen
		s.MarkDirty()
	}
	return s
}

// SetOffset sets the logical offset.
func (s *ScrollBar) SetOffset(offset int) *ScrollBar {
	offset = max(offset, 0)
	if s.offset != offset {
		s.offset = offset
		s.MarkDirty()
	}
	return s
}

// SetGlyphSet applies a glyph set.
func (s *ScrollBar) SetGlyphSet(g GlyphSet) *ScrollBar {
	s.glyphSet = g
	s.MarkDirty()
	return s
}

// SetArrows sets which arrow endcaps are rendered.
func (s *ScrollBar) SetArrows(arrows ScrollBarArrows) *ScrollBar {
	if s.arrows != arrows {
		s.arrows = arrows
		s.MarkDirty()
	}
	return s
}

// SetAutoHide controls whether the scroll bar is hidden when there is nothing to scroll.
func (s *ScrollBar) SetAutoHide(autoHide bool) *ScrollBar {
	if s.autoHide != autoHide {
		s.autoHide = autoHide
		s.MarkDirty()
	}
	return s
}

// SetThumbStyle sets the thumb style.
func (s *ScrollBar) SetThumbStyle(style tcell.Style) *ScrollBar {
	if s.thumbStyle != style {
		s.thumbStyle = style
		s.MarkDirty()
	}
	return s
}

// SetTrackGlyph sets the track symbol of the scroll bar's orientation and its
// visibility.
func (s *ScrollBar) SetTrackGlyph(glyph string, visible bool) *ScrollBar {
	if s.orientation == OrientationHorizontal {
		s.glyphSet.TrackHorizontal = glyph
	} else {
		s.glyphSet.TrackVertical = glyph
	}
	s.showTrack = visible
	s.MarkDirty()
	return s
}

// SetTrackStyle sets the track style.
func (s *ScrollBar) SetTrackStyle(style tcell.Style) *ScrollBar {
	if s.trackStyle != style {
		s.trackStyle = style
		s.MarkDirty()
	}
	return s
}

// SetArrowStyle sets the arrow endcap style.
func (s *ScrollBar) SetArrowStyle(style tcell.Style) *ScrollBar {
	if s.arrowStyle != style {
		s.arrowStyle = style
		s.MarkDirty()
	}
	return s
}

func (s *ScrollBar) trackLengthExcludingArrowHeads(length int) int {
	if length <= 0 {
		return 0
	}
	arrows := 0
	if s.arrows.hasStart() {
		arrows++
	}
	if s.arrows.hasEnd() {
		arrows++
	}
	return max(length-arrows, 0)
}

func (s *ScrollBar) viewportLength(length int) int {
	if s.viewportLen > 0 {
		return s.viewportLen
	}
	return max(length, 0)
}

type scrollMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

func (s *ScrollBar) metrics(length int) scrollMetrics {
	trackCells := s.trackLengthExcludingArrowHeads(length)
	return computeScrollMetrics(trackCells, s.contentLen, s.viewportLength(length), s.offset)
}

// computeScrollMetrics computes scroll bar geometry in subcell units.
func computeScrollMetrics(trackCells int, contentLen int, viewportLen int, offset int) scrollMetrics {
	trackLen := trackCells * subcell
	if trackLen == 0 {
		return scrollMetrics{}
	}

	contentLen = max(contentLen, 1)
	viewportLen = min(max(viewportLen, 1), contentLen)
	maxOffset := max(contentLen-viewportLen, 0)
	offset = min(max(offset, 0), maxOffset)

	if maxOffset == 0 {
		return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: trackLen, thumbStart: 0}
	}

	// The thumb moves in 1/8-cell steps and stays proportional to viewport/content.
	thumbLen := min(max((trackLen*viewportLen)/contentLen, subcell), trackLen)
	thumbTravel := max(trackLen-thumbLen, 0)
	thumbStart := (thumbTravel * offset) / maxOffset
	return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: thumbLen, thumbStart: thumbStart}
}

func (s *ScrollBar) shouldDraw(length int, m scrollMetrics) bool {
	if length <= 0 || m.trackLen == 0 || s.contentLen <= 0 {
		return false
	}
	if s.autoHide {
		contentLen := max(s.contentLen, 1)
		viewportLen := min(max(s.viewportLength(length), 1), contentLen)
		if contentLen <= viewportLen {
			return false
		}
	}
	return true
}

// cellFill returns the cell-local [start, start+fillLen) subcell range of the
// thumb inside track cell cellIndex.
func cellFill(m scrollMetrics, cellIndex int) (start int, fillLen int) {
	if m.thumbLen == 0 {
		return 0, 0
	}
	cellStart := cellIndex * subcell
	cellEnd := cellStart + subcell
	thumbEnd := m.thumbStart + m.thumbLen
	start = max(m.thumbStart, cellStart)
	end := min(thumbEnd, cellEnd)
	if end <= start {
		return 0, 0
	}
	fillLen = min(end-start, subcell)
	start = min(max(start-cellStart, 0), subcell)
	return start, fillLen
}

func (s *ScrollBar) glyphFor(start, fillLen int) (string, tcell.Style) {
	horizontal := s.orientation == OrientationHorizontal
	if fillLen <= 0 {
		switch {
		case !s.showTrack:
			return " ", s.trackStyle
		case horizontal:
			return s.glyphSet.TrackHorizontal, s.trackStyle
		default:
			return s.glyphSet.TrackVertical, s.trackStyle
		}
	}

	ix := min(fillLen, subcell) - 1
	// A fill touching the cell's leading edge hangs from the top (or left);
	// anything else grows from the bottom (or right).
	leading := start == 0 && fillLen < subcell
	switch {
	case horizontal && leading:
		return s.glyphSet.ThumbHorizontalLeft[ix], s.thumbStyle
	case horizontal:
		return s.glyphSet.ThumbHorizontalRight[ix], s.thumbStyle
	case leading:
		return s.glyphSet.ThumbVerticalUpper[ix], s.thumbStyle
	default:
		return s.glyphSet.ThumbVerticalLower[ix], s.thumbStyle
	}
}

// Draw draws the scroll bar.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	x, y, width, height := s.GetInnerRect()
	dx, dy, length := 0, 1, height
	startArrow, endArrow := s.glyphSet.ArrowVerticalStart, s.glyphSet.ArrowVerticalEnd
	if s.orientation == OrientationHorizontal {
		dx, dy, length = 1, 0, width
		startArrow, endArrow = s.glyphSet.ArrowHorizontalStart, s.glyphSet.ArrowHorizontalEnd
	}

	m := s.metrics(length)
	if !s.shouldDraw(length, m) {
		return
	}

	idx := 0
	if s.arrows.hasStart() {
		putGlyph(screen, x, y, startArrow, s.arrowStyle)
		idx++
	}

	for cell := 0; cell < m.trackCells; cell++ {
		start, fillLen := cellFill(m, cell)
		glyph, style := s.glyphFor(start, fillLen)
		putGlyph(screen, x+dx*idx, y+dy*idx, glyph, style)
		idx++
	}

	if s.arrows.hasEnd() {
		putGlyph(screen, x+dx*idx, y+dy*idx, endArrow, s.arrowStyle)
	}
}

var _ Primitive = &ScrollBar{}
