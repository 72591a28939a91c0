package gridview

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sizeList is an axis given by the size of every index.
type sizeList []int

func (s sizeList) Count() int         { return len(s) }
func (s sizeList) Size(index int) int { return s[index] }

func uniform(count, size int) sizeList {
	s := make(sizeList, count)
	for i := range s {
		s[i] = size
	}
	return s
}

var firstWindow = AxisWindow{StartIndex: 1}

func TestLayoutAxis(t *testing.T) {
	type tc struct {
		sizes       sizeList
		seed        AxisWindow
		visibleSize int
		scroll      int
		want        AxisWindow
	}

	tests := map[string]tc{
		"unscrolled": {
			sizes:       uniform(20, 150),
			seed:        firstWindow,
			visibleSize: 800,
			want:        AxisWindow{StartIndex: 1, BodyCount: 5},
		},
		"unscrolled columns": {
			sizes:       uniform(15, 200),
			seed:        firstWindow,
			visibleSize: 1000,
			want:        AxisWindow{StartIndex: 1, BodyCount: 4},
		},
		"scrolled into an index": {
			sizes:       uniform(20, 150),
			seed:        firstWindow,
			visibleSize: 800,
			scroll:      800,
			want:        AxisWindow{StartIndex: 6, StartOffset: 50, BodyCount: 5, Scroll: 800},
		},
		"scrolled back from a seed": {
			sizes:       uniform(20, 150),
			seed:        AxisWindow{StartIndex: 6, StartOffset: 50, BodyCount: 5, Scroll: 800},
			visibleSize: 800,
			scroll:      420,
			want:        AxisWindow{StartIndex: 3, StartOffset: 120, BodyCount: 6, Scroll: 420},
		},
		"clamped past the end": {
			sizes:       uniform(20, 150),
			seed:        firstWindow,
			visibleSize: 800,
			scroll:      10000,
			want:        AxisWindow{StartIndex: 15, StartOffset: 100, BodyCount: 5, Scroll: 2200},
		},
		"negative scroll": {
			sizes:       uniform(20, 150),
			seed:        AxisWindow{StartIndex: 6, StartOffset: 50, BodyCount: 5, Scroll: 800},
			visibleSize: 800,
			scroll:      -40,
			want:        AxisWindow{StartIndex: 1, BodyCount: 5},
		},
		"content smaller than viewport": {
			sizes:       sizeList{3, 3, 3},
			seed:        firstWindow,
			visibleSize: 20,
			scroll:      5,
			want:        AxisWindow{StartIndex: 1, BodyCount: 2},
		},
		"header only": {
			sizes:       sizeList{3},
			seed:        firstWindow,
			visibleSize: 20,
			scroll:      5,
			want:        AxisWindow{StartIndex: 1},
		},
		"empty axis": {
			sizes:       sizeList{},
			seed:        firstWindow,
			visibleSize: 20,
			scroll:      5,
			want:        AxisWindow{StartIndex: 1},
		},
		"viewport no larger than the header": {
			sizes:       sizeList{5, 3, 3, 3},
			seed:        firstWindow,
			visibleSize: 5,
			scroll:      100,
			want:        AxisWindow{StartIndex: 3, StartOffset: 2, BodyCount: 1, Scroll: 8},
		},
		"index larger than the viewport": {
			sizes:       sizeList{1, 50, 2, 2},
			seed:        firstWindow,
			visibleSize: 10,
			scroll:      30,
			want:        AxisWindow{StartIndex: 1, StartOffset: 30, BodyCount: 1, Scroll: 30},
		},
		"index larger than the viewport clamped": {
			sizes:       sizeList{1, 50, 2, 2},
			seed:        firstWindow,
			visibleSize: 10,
			scroll:      100,
			want:        AxisWindow{StartIndex: 1, StartOffset: 45, BodyCount: 3, Scroll: 45},
		},
		"out of range seed": {
			sizes:       uniform(5, 4),
			seed:        AxisWindow{StartIndex: 9, StartOffset: 12, Scroll: 0},
			visibleSize: 12,
			scroll:      0,
			want:        AxisWindow{StartIndex: 1, BodyCount: 2},
		},
		"out of range seed drops its scroll": {
			sizes:       uniform(5, 4),
			seed:        AxisWindow{StartIndex: 9, StartOffset: 1, Scroll: 40},
			visibleSize: 12,
			scroll:      6,
			want:        AxisWindow{StartIndex: 2, StartOffset: 2, BodyCount: 3, Scroll: 6},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := LayoutAxis(tt.sizes, tt.seed, tt.visibleSize, tt.scroll)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LayoutAxis() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLayoutAxisProperties(t *testing.T) {
	axes := map[string]struct {
		sizes       sizeList
		visibleSize int
	}{
		"uniform":         {sizes: uniform(20, 3), visibleSize: 12},
		"mixed":           {sizes: sizeList{2, 1, 4, 3, 5, 1, 2, 6, 3}, visibleSize: 10},
		"large index":     {sizes: sizeList{1, 2, 40, 2, 1}, visibleSize: 8},
		"tiny viewport":   {sizes: sizeList{4, 3, 3, 3}, visibleSize: 4},
		"fits in window":  {sizes: sizeList{2, 2, 2}, visibleSize: 30},
		"header overflow": {sizes: sizeList{9, 1, 1, 1}, visibleSize: 6},
	}

	for name, axis := range axes {
		t.Run(name, func(t *testing.T) {
			body := AxisExtent(axis.sizes)
			maxScroll := max(body-(axis.visibleSize-axis.sizes[0]), 0)

			chained := firstWindow
			previous := 0
			for scroll := 0; scroll <= body+10; scroll++ {
				fresh := LayoutAxis(axis.sizes, firstWindow, axis.visibleSize, scroll)
				chained = LayoutAxis(axis.sizes, chained, axis.visibleSize, scroll)

				if diff := cmp.Diff(fresh, chained); diff != "" {
					t.Fatalf("scroll %d: incremental window differs (-fresh +chained):\n%s", scroll, diff)
				}
				if again := LayoutAxis(axis.sizes, fresh, axis.visibleSize, fresh.Scroll); again != fresh {
					t.Fatalf("scroll %d: re-applying the window gives %+v, want %+v", scroll, again, fresh)
				}
				if fresh.Scroll < previous {
					t.Fatalf("scroll %d: corrected scroll %d went below %d", scroll, fresh.Scroll, previous)
				}
				previous = fresh.Scroll

				if fresh.StartIndex < 1 || fresh.StartIndex >= len(axis.sizes) {
					t.Fatalf("scroll %d: start index %d out of range", scroll, fresh.StartIndex)
				}
				if fresh.StartOffset < 0 || fresh.StartOffset >= axis.sizes[fresh.StartIndex] {
					t.Fatalf("scroll %d: start offset %d out of range", scroll, fresh.StartOffset)
				}
				if fresh.StartIndex+fresh.BodyCount > len(axis.sizes) {
					t.Fatalf("scroll %d: window %+v runs past the axis", scroll, fresh)
				}
				if scroll <= maxScroll && fresh.Scroll != scroll && axis.visibleSize > axis.sizes[0] {
					t.Fatalf("scroll %d: corrected to %d within range", scroll, fresh.Scroll)
				}
				if scroll > maxScroll && axis.visibleSize > axis.sizes[0] && fresh.Scroll != maxScroll {
					t.Fatalf("scroll %d: corrected to %d, want %d", scroll, fresh.Scroll, maxScroll)
				}
			}
		})
	}
}

func TestBodyCount(t *testing.T) {
	type tc struct {
		sizes  sizeList
		start  int
		offset int
		extent int
		want   int
	}

	tests := map[string]tc{
		"exact fit":       {sizes: uniform(10, 3), start: 1, extent: 9, want: 3},
		"partial last":    {sizes: uniform(10, 3), start: 1, extent: 10, want: 4},
		"offset":          {sizes: uniform(10, 3), start: 1, offset: 1, extent: 9, want: 4},
		"runs out":        {sizes: uniform(4, 3), start: 2, extent: 30, want: 2},
		"no extent":       {sizes: uniform(4, 3), start: 2, extent: 0, want: 1},
		"one large index": {sizes: sizeList{1, 100, 1}, start: 1, extent: 5, want: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := bodyCount(tt.sizes, tt.start, tt.offset, tt.extent); got != tt.want {
				t.Errorf("bodyCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAxisExtent(t *testing.T) {
	if got := AxisExtent(sizeList{5, 1, 2, 3}); got != 6 {
		t.Errorf("AxisExtent() = %d, want 6", got)
	}
	if got := AxisExtent(sizeList{5}); got != 0 {
		t.Errorf("AxisExtent() of a header only axis = %d, want 0", got)
	}
	if got := (rowAxis{}).Count(); got != 0 {
		t.Errorf("rowAxis{}.Count() = %d, want 0", got)
	}
}
