package sheet

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ayn2op/gridview"
	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
)

const sampleYAML = `
rows: 6
cols: 5
rowHeight: 2
colWidth: 8
rowHeights:
  0: 1
colWidths:
  0: 4
spans:
  - from: [1, 1]
    to: [2, 3]
cells:
  - row: 0
    col: 1
    text: Name
  - row: 4
    col: 4
    kind: swatch
    from: "#ff0000"
    to: blue
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}

	if s.RowCount() != 6 || s.ColCount() != 5 {
		t.Errorf("size = %dx%d, want 6x5", s.RowCount(), s.ColCount())
	}
	sizes := []int{s.RowHeight(0), s.RowHeight(3), s.ColWidth(0), s.ColWidth(2)}
	if diff := cmp.Diff([]int{1, 2, 4, 8}, sizes); diff != "" {
		t.Errorf("sizes mismatch (-want +got):\n%s", diff)
	}

	span, ok := s.QuerySpan(2, 2)
	if !ok || span != gridview.NewSpan(1, 1, 2, 3) {
		t.Errorf("QuerySpan(2, 2) = %s, %t, want (1,1)-(2,3)", span, ok)
	}
	if _, ok := s.QuerySpan(3, 1); ok {
		t.Error("QuerySpan(3, 1) found a span")
	}

	if got := s.Text(0, 1); got != "Name" {
		t.Errorf("Text(0, 1) = %q, want %q", got, "Name")
	}
	if got := s.Text(3, 2); got != "3, 2" {
		t.Errorf("Text(3, 2) = %q, want %q", got, "3, 2")
	}
	if got := s.CellViewType(4, 4); got != TypeSwatch {
		t.Errorf("CellViewType(4, 4) = %d, want TypeSwatch", got)
	}
	if got := s.CellViewType(3, 3); got != TypeText {
		t.Errorf("CellViewType(3, 3) = %d, want TypeText", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]struct {
		yaml string
		want string
	}{
		"not yaml":          {yaml: "rows: [", want: "failed to decode sheet"},
		"negative size":     {yaml: "rows: -1\ncols: 3", want: "invalid size"},
		"negative height":   {yaml: "rows: 3\ncols: 3\nrowHeight: -2", want: "must be positive"},
		"row out of range":  {yaml: "rows: 3\ncols: 3\nrowHeights:\n  5: 2", want: "rowHeights"},
		"zero column width": {yaml: "rows: 3\ncols: 3\ncolWidths:\n  1: 0", want: "colWidths"},
		"span in header":    {yaml: "rows: 5\ncols: 5\nspans:\n  - {from: [0, 1], to: [1, 2]}", want: "outside the body"},
		"span past the end": {yaml: "rows: 5\ncols: 5\nspans:\n  - {from: [3, 3], to: [5, 4]}", want: "outside the body"},
		"cell out of range": {yaml: "rows: 2\ncols: 2\ncells:\n  - {row: 2, col: 0}", want: "outside the sheet"},
		"unknown kind":      {yaml: "rows: 2\ncols: 2\ncells:\n  - {row: 1, col: 1, kind: chart}", want: "unknown kind"},
		"unknown color":     {yaml: "rows: 2\ncols: 2\ncells:\n  - {row: 1, col: 1, kind: swatch, from: mauvish}", want: "unknown color"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() = %v, want an error containing %q", err, tt.want)
			}
		})
	}
}

func TestParseOverlappingSpans(t *testing.T) {
	data := "rows: 6\ncols: 6\nspans:\n  - {from: [1, 1], to: [2, 2]}\n  - {from: [2, 2], to: [3, 3]}"
	_, err := Parse([]byte(data))
	if !errors.Is(err, gridview.ErrSpanOverlap) {
		t.Errorf("Parse() = %v, want ErrSpanOverlap", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if s.RowCount() != 6 {
		t.Errorf("RowCount() = %d, want 6", s.RowCount())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() of a missing file = %v, want ErrNotExist", err)
	}

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(broken, []byte("rows: -4"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil || !strings.HasPrefix(err.Error(), broken) {
		t.Errorf("Load() = %v, want an error naming the file", err)
	}
}

func TestDefault(t *testing.T) {
	s := Default(DefaultRows, DefaultCols)
	want := []gridview.Span{
		gridview.NewSpan(2, 2, 4, 3),
		gridview.NewSpan(7, 4, 9, 4),
		gridview.NewSpan(3, 8, 4, 10),
		gridview.NewSpan(6, 8, 8, 8),
	}
	if diff := cmp.Diff(want, s.spans.Spans()); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
	if got := s.CellViewType(2, 2); got != TypeSwatch {
		t.Errorf("CellViewType(2, 2) = %d, want TypeSwatch", got)
	}

	small := Default(4, 4)
	if small.spans.Len() != 0 || small.CellViewType(2, 2) != TypeText {
		t.Error("a sheet too small for the sample spans kept them")
	}
}

func TestCellView(t *testing.T) {
	s := Default(DefaultRows, DefaultCols)

	view := s.CellView(nil, 1, 1)
	text, ok := view.(*gridview.TextCell)
	if !ok {
		t.Fatalf("CellView(1, 1) = %T, want *gridview.TextCell", view)
	}
	if got := text.GetText(); got != "1, 1" {
		t.Errorf("text = %q, want %q", got, "1, 1")
	}

	// A reused view is populated for its new position.
	if again := s.CellView(text, 5, 6); again != gridview.CellView(text) || text.GetText() != "5, 6" {
		t.Errorf("reused view shows %q, want %q", text.GetText(), "5, 6")
	}
	if _, ok := s.CellView(nil, 2, 2).(*gridview.SwatchCell); !ok {
		t.Error("CellView(2, 2) is not a swatch")
	}
	if got := s.Created(); got != 2 {
		t.Errorf("Created() = %d, want 2", got)
	}
}

func TestUpdate(t *testing.T) {
	s := Default(DefaultRows, DefaultCols)
	notified := 0
	s.SetChangedFunc(func() { notified++ })

	other, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	s.Update(other)

	if notified != 1 {
		t.Errorf("notified %d times, want 1", notified)
	}
	if s.RowCount() != 6 || s.Text(0, 1) != "Name" {
		t.Errorf("Update() did not copy the content: %d rows, header %q", s.RowCount(), s.Text(0, 1))
	}

	s.SetText(3, 3, "changed")
	if notified != 2 || s.Text(3, 3) != "changed" {
		t.Errorf("SetText() = %q after %d notifications", s.Text(3, 3), notified)
	}
}

func TestResize(t *testing.T) {
	s := Default(DefaultRows, DefaultCols)
	notified := 0
	s.SetChangedFunc(func() { notified++ })

	if err := s.Resize(8, 9); err != nil {
		t.Fatalf("Resize() = %v", err)
	}
	if notified != 1 {
		t.Errorf("notified %d times, want 1", notified)
	}
	// Only the spans that still fit remain.
	want := []gridview.Span{gridview.NewSpan(2, 2, 4, 3)}
	if diff := cmp.Diff(want, s.spans.Spans()); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
	if got := s.CellViewType(2, 2); got != TypeSwatch {
		t.Error("swatch inside the new bounds was dropped")
	}

	if err := s.Resize(2, 2); err != nil {
		t.Fatalf("Resize() = %v", err)
	}
	if s.CellViewType(2, 2) != TypeText || s.spans.Len() != 0 {
		t.Error("content outside the new bounds was kept")
	}
	if err := s.Resize(-1, 2); err == nil {
		t.Error("Resize() accepted a negative size")
	}
}

func TestWrapCache(t *testing.T) {
	s := Default(DefaultRows, DefaultCols)
	first := s.wrap("merged cells wrap", 6)
	if len(first) < 2 {
		t.Fatalf("wrap() = %q, want several lines", first)
	}
	if s.wrapCache.Len() != 1 {
		t.Errorf("cache holds %d entries, want 1", s.wrapCache.Len())
	}
	s.wrap("merged cells wrap", 6)
	if s.wrapCache.Len() != 1 {
		t.Errorf("cache holds %d entries after a hit, want 1", s.wrapCache.Len())
	}
}

func TestParseColor(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		"hex":        {in: "#ff8000", want: tcell.NewRGBColor(255, 128, 0)},
		"short hex":  {in: "#f00", want: tcell.NewRGBColor(255, 0, 0)},
		"name":       {in: "red", want: tcell.ColorRed},
		"mixed case": {in: "LightGray", want: tcell.ColorLightGray},
		"bad hex":    {in: "#zz", wantErr: true},
		"unknown":    {in: "mauvish", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %t", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
