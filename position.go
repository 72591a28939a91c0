package gridview

import (
	"errors"
	"fmt"
	"sort"
)

// Position is a grid coordinate. Row 0 is the frozen header row and column 0
// the frozen header column.
type Position struct {
	Row, Col int
}

// IsHeader returns true for positions in the header row or header column.
func (p Position) IsHeader() bool {
	return p.Row == 0 || p.Col == 0
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Span is a rectangle of merged cells from LT (top-left) to RB (bottom-right),
// both inclusive. A merged span is addressed by its top-left position only.
type Span struct {
	LT, RB Position
}

// NewSpan returns the span covering rows r1..r2 and columns c1..c2.
func NewSpan(r1, c1, r2, c2 int) Span {
	return Span{LT: Position{Row: r1, Col: c1}, RB: Position{Row: r2, Col: c2}}
}

// Contains returns whether the given coordinate lies inside the span.
func (s Span) Contains(row, col int) bool {
	return row >= s.LT.Row && row <= s.RB.Row && col >= s.LT.Col && col <= s.RB.Col
}

// IsMerged returns true if the span occupies more than one cell.
func (s Span) IsMerged() bool {
	return s.LT != s.RB
}

// Overlaps returns whether the two spans share at least one cell.
func (s Span) Overlaps(o Span) bool {
	return s.LT.Row <= o.RB.Row && o.LT.Row <= s.RB.Row &&
		s.LT.Col <= o.RB.Col && o.LT.Col <= s.RB.Col
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.LT, s.RB)
}

// ErrSpanOverlap is returned when a span shares cells with a span that was
// added before it.
var ErrSpanOverlap = errors.New("span overlaps an existing span")

// SpanSet holds non-overlapping merged spans, ordered by their left column.
// Data sources can answer QuerySpan through Find.
type SpanSet struct {
	spans []Span
}

// Add inserts a span. Spans that overlap an existing one are rejected with
// ErrSpanOverlap; the first added span wins. Inverted spans are rejected too.
func (s *SpanSet) Add(span Span) error {
	if span.RB.Row < span.LT.Row || span.RB.Col < span.LT.Col || span.LT.Row < 0 || span.LT.Col < 0 {
		return fmt.Errorf("invalid span %s", span)
	}
	for _, existing := range s.spans {
		if existing.Overlaps(span) {
			return fmt.Errorf("%w: %s and %s", ErrSpanOverlap, span, existing)
		}
	}
	i := sort.Search(len(s.spans), func(i int) bool {
		return s.spans[i].LT.Col > span.LT.Col
	})
	s.spans = append(s.spans, Span{})
	copy(s.spans[i+1:], s.spans[i:])
	s.spans[i] = span
	return nil
}

// Find returns the span covering the given coordinate.
func (s *SpanSet) Find(row, col int) (Span, bool) {
	for _, span := range s.spans {
		if span.LT.Col > col {
			break
		}
		if span.Contains(row, col) {
			return span, true
		}
	}
	return Span{}, false
}

// Len returns the number of spans in the set.
func (s *SpanSet) Len() int {
	return len(s.spans)
}

// Spans returns a copy of the spans, ordered by left column.
func (s *SpanSet) Spans() []Span {
	out := make([]Span, len(s.spans))
	copy(out, s.spans)
	return out
}

// Clear removes all spans.
func (s *SpanSet) Clear() {
	s.spans = s.spans[:0]
}
