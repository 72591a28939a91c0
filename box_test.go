package gridview

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBoxDraw(t *testing.T) {
	type tc struct {
		width, height int
		title         string
		want          []string
	}

	tests := map[string]tc{
		"frame with title": {
			width: 8, height: 3, title: "ab",
			want: []string{"┌──ab──┐", "│      │", "└──────┘"},
		},
		"title cut with an ellipsis": {
			width: 6, height: 2, title: "abcdef",
			want: []string{"┌bcd…┐", "└────┘"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			screen := newTestScreen(t, tt.width, tt.height)
			box := NewBox().SetBorders(BordersAll).SetTitle(tt.title)
			box.SetRect(0, 0, tt.width, tt.height)
			box.Draw(screen)

			var got []string
			for y := range tt.height {
				got = append(got, screenRow(screen, y, tt.width))
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Draw() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBoxInnerRect(t *testing.T) {
	type tc struct {
		rect    [4]int
		borders Borders
		title   string
		want    [4]int
	}

	tests := map[string]tc{
		"no frame":   {rect: [4]int{2, 1, 10, 5}, want: [4]int{2, 1, 10, 5}},
		"full frame": {rect: [4]int{2, 1, 10, 5}, borders: BordersAll, want: [4]int{3, 2, 8, 3}},
		"title only": {rect: [4]int{2, 1, 10, 5}, title: "t", want: [4]int{2, 2, 10, 4}},
		"left side":  {rect: [4]int{0, 0, 4, 4}, borders: BordersLeft, want: [4]int{1, 0, 3, 4}},
		"too small":  {rect: [4]int{0, 0, 1, 1}, borders: BordersAll, want: [4]int{1, 1, 0, 0}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			box := NewBox().SetBorders(tt.borders).SetTitle(tt.title)
			box.SetRect(tt.rect[0], tt.rect[1], tt.rect[2], tt.rect[3])
			var got [4]int
			got[0], got[1], got[2], got[3] = box.GetInnerRect()
			if got != tt.want {
				t.Errorf("GetInnerRect() = %v, want %v", got, tt.want)
			}
			if box.InInnerRect(tt.rect[0]-1, tt.rect[1]) {
				t.Error("InInnerRect() = true left of the box")
			}
		})
	}
}

func TestBoxDirtyParent(t *testing.T) {
	parent := NewBox()
	child := NewTextCell()
	parent.MarkClean()
	child.MarkClean()

	bindDirtyParent(child, parent)
	child.SetText("changed")
	if !child.IsDirty() || !parent.IsDirty() {
		t.Fatalf("after a change: child dirty = %t, parent dirty = %t, want both", child.IsDirty(), parent.IsDirty())
	}

	unbindDirtyParent(child, parent)
	parent.MarkClean()
	child.MarkClean()
	child.MarkDirty()
	if parent.IsDirty() {
		t.Error("parent dirtied by an unbound child")
	}

	// Values without a Box are ignored.
	bindDirtyParent(struct{}{}, parent)
}
