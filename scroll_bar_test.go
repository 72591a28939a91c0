package gridview

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
)

func TestComputeScrollMetrics(t *testing.T) {
	type tc struct {
		trackCells, contentLen, viewportLen, offset int
		want                                        scrollMetrics
	}

	tests := map[string]tc{
		"top":              {trackCells: 10, contentLen: 100, viewportLen: 10, want: scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 8}},
		"middle":           {trackCells: 10, contentLen: 100, viewportLen: 10, offset: 45, want: scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 8, thumbStart: 36}},
		"bottom":           {trackCells: 10, contentLen: 100, viewportLen: 10, offset: 90, want: scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 8, thumbStart: 72}},
		"past the end":     {trackCells: 10, contentLen: 100, viewportLen: 10, offset: 500, want: scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 8, thumbStart: 72}},
		"half visible":     {trackCells: 4, contentLen: 20, viewportLen: 10, offset: 10, want: scrollMetrics{trackCells: 4, trackLen: 32, thumbLen: 16, thumbStart: 16}},
		"content fits":     {trackCells: 5, contentLen: 8, viewportLen: 10, want: scrollMetrics{trackCells: 5, trackLen: 40, thumbLen: 40}},
		"tiny thumb grows": {trackCells: 2, contentLen: 1000, viewportLen: 1, want: scrollMetrics{trackCells: 2, trackLen: 16, thumbLen: 8}},
		"no track":         {contentLen: 100, viewportLen: 10},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := computeScrollMetrics(tt.trackCells, tt.contentLen, tt.viewportLen, tt.offset)
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(scrollMetrics{})); diff != "" {
				t.Errorf("computeScrollMetrics() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCellFill(t *testing.T) {
	m := scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 8, thumbStart: 36}

	type tc struct {
		cell      int
		wantStart int
		wantLen   int
	}

	tests := map[string]tc{
		"before the thumb": {cell: 3},
		"thumb head":       {cell: 4, wantStart: 4, wantLen: 4},
		"thumb tail":       {cell: 5, wantStart: 0, wantLen: 4},
		"after the thumb":  {cell: 6},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			start, fill := cellFill(m, tt.cell)
			if start != tt.wantStart || fill != tt.wantLen {
				t.Errorf("cellFill(%d) = (%d, %d), want (%d, %d)", tt.cell, start, fill, tt.wantStart, tt.wantLen)
			}
		})
	}

	if start, fill := cellFill(scrollMetrics{}, 0); start != 0 || fill != 0 {
		t.Errorf("cellFill() without a thumb = (%d, %d), want (0, 0)", start, fill)
	}
}

func TestScrollBarDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(3, 4)

	bar := NewScrollBar(OrientationVertical).
		SetLengths(ScrollLengths{ContentLen: 8, ViewportLen: 4}).
		SetOffset(0)
	bar.SetRect(1, 0, 1, 4)
	bar.Draw(screen)

	// The thumb covers the top half of the track.
	full := UnicodeGlyphSet().ThumbVerticalLower[7]
	for y, want := range []bool{true, true, false, false} {
		got, _, _, _ := screen.GetContent(1, y)
		if (string(got) == full) != want {
			t.Errorf("cell %d = %q, thumb %t", y, got, want)
		}
	}
}
