// Package sheet implements a grid data source described by a YAML file.
package sheet

import (
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/ayn2op/gridview"
	"github.com/gdamore/tcell/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Cell view types.
const (
	TypeText = iota
	TypeSwatch
)

const (
	DefaultRows      = 20
	DefaultCols      = 15
	DefaultRowHeight = 3
	DefaultColWidth  = 12

	wrapCacheSize = 512
)

// File is the YAML representation of a sheet.
type File struct {
	Rows       int         `yaml:"rows"`
	Cols       int         `yaml:"cols"`
	RowHeight  int         `yaml:"rowHeight,omitempty"`
	ColWidth   int         `yaml:"colWidth,omitempty"`
	RowHeights map[int]int `yaml:"rowHeights,omitempty"`
	ColWidths  map[int]int `yaml:"colWidths,omitempty"`
	Spans      []SpanFile  `yaml:"spans,omitempty"`
	Cells      []CellFile  `yaml:"cells,omitempty"`
}

// SpanFile is a merged region given by its top-left and bottom-right
// coordinates, both as [row, col].
type SpanFile struct {
	From [2]int `yaml:"from"`
	To   [2]int `yaml:"to"`
}

// CellFile overrides the content of one cell. Kind is "text" (the default)
// or "swatch". Colors are hex values ("#3366ff") or color names.
type CellFile struct {
	Row  int    `yaml:"row"`
	Col  int    `yaml:"col"`
	Kind string `yaml:"kind,omitempty"`
	Text string `yaml:"text,omitempty"`
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to,omitempty"`
}

type cell struct {
	viewType int
	text     string
	from, to tcell.Color
}

type wrapKey struct {
	text  string
	width int
}

// Sheet is a grid data source. Cells without an override show their
// coordinate.
type Sheet struct {
	gridview.BaseDataSource

	rows, cols          int
	rowHeight, colWidth int
	rowHeights          map[int]int
	colWidths           map[int]int
	spans               gridview.SpanSet
	cells               map[gridview.Position]cell

	wrapCache *lru.Cache[wrapKey, []string]
	created   int
}

// Default returns the sample sheet: rows x cols cells, four merged regions
// and a swatch at (2, 2).
func Default(rows, cols int) *Sheet {
	f := &File{
		Rows: rows,
		Cols: cols,
		Spans: []SpanFile{
			{From: [2]int{2, 2}, To: [2]int{4, 3}},
			{From: [2]int{3, 8}, To: [2]int{4, 10}},
			{From: [2]int{7, 4}, To: [2]int{9, 4}},
			{From: [2]int{6, 8}, To: [2]int{8, 8}},
		},
		Cells: []CellFile{
			{Row: 2, Col: 2, Kind: "swatch", Text: "swatch", From: "#1e3c72", To: "#ff6f61"},
		},
	}
	s, err := New(f)
	if err != nil {
		// The spans above only fall outside a sheet that is too small to
		// hold them; such a sheet drops them.
		f.Spans, f.Cells = nil, nil
		s, err = New(f)
		if err != nil {
			panic(err)
		}
	}
	return s
}

// Load reads a sheet from a YAML file.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML sheet.
func Parse(data []byte) (*Sheet, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode sheet: %w", err)
	}
	return New(&f)
}

// New validates f and builds a sheet from it.
func New(f *File) (*Sheet, error) {
	if f.Rows < 0 || f.Cols < 0 {
		return nil, fmt.Errorf("invalid size %dx%d", f.Rows, f.Cols)
	}
	s := &Sheet{
		rows:       f.Rows,
		cols:       f.Cols,
		rowHeight:  orDefault(f.RowHeight, DefaultRowHeight),
		colWidth:   orDefault(f.ColWidth, DefaultColWidth),
		rowHeights: make(map[int]int, len(f.RowHeights)),
		colWidths:  make(map[int]int, len(f.ColWidths)),
		cells:      make(map[gridview.Position]cell, len(f.Cells)),
	}
	if s.rowHeight < 1 || s.colWidth < 1 {
		return nil, fmt.Errorf("rowHeight and colWidth must be positive")
	}
	for row, height := range f.RowHeights {
		if row < 0 || row >= s.rows || height < 1 {
			return nil, fmt.Errorf("rowHeights: invalid height %d for row %d", height, row)
		}
		s.rowHeights[row] = height
	}
	for col, width := range f.ColWidths {
		if col < 0 || col >= s.cols || width < 1 {
			return nil, fmt.Errorf("colWidths: invalid width %d for column %d", width, col)
		}
		s.colWidths[col] = width
	}

	for i, sf := range f.Spans {
		span := gridview.NewSpan(sf.From[0], sf.From[1], sf.To[0], sf.To[1])
		if span.LT.Row < 1 || span.LT.Col < 1 || span.RB.Row >= s.rows || span.RB.Col >= s.cols {
			return nil, fmt.Errorf("spans[%d]: %s is outside the body", i, span)
		}
		if err := s.spans.Add(span); err != nil {
			return nil, fmt.Errorf("spans[%d]: %w", i, err)
		}
	}

	for i, cf := range f.Cells {
		if cf.Row < 0 || cf.Row >= s.rows || cf.Col < 0 || cf.Col >= s.cols {
			return nil, fmt.Errorf("cells[%d]: (%d, %d) is outside the sheet", i, cf.Row, cf.Col)
		}
		c, err := parseCell(cf)
		if err != nil {
			return nil, fmt.Errorf("cells[%d]: %w", i, err)
		}
		s.cells[gridview.Position{Row: cf.Row, Col: cf.Col}] = c
	}

	cache, err := lru.New[wrapKey, []string](wrapCacheSize)
	if err != nil {
		return nil, err
	}
	s.wrapCache = cache
	return s, nil
}

func parseCell(cf CellFile) (cell, error) {
	c := cell{text: cf.Text}
	switch strings.ToLower(cf.Kind) {
	case "", "text":
		c.viewType = TypeText
	case "swatch":
		c.viewType = TypeSwatch
		var err error
		if c.from, err = ParseColor(orDefaultString(cf.From, "navy")); err != nil {
			return cell{}, fmt.Errorf("from: %w", err)
		}
		if c.to, err = ParseColor(orDefaultString(cf.To, "blue")); err != nil {
			return cell{}, fmt.Errorf("to: %w", err)
		}
	default:
		return cell{}, fmt.Errorf("unknown kind %q", cf.Kind)
	}
	return c, nil
}

// ParseColor parses a hex color ("#ff8800") or a color name ("red").
func ParseColor(s string) (tcell.Color, error) {
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return tcell.ColorDefault, err
		}
		r, g, b := c.RGB255()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
	}
	if c, ok := tcell.ColorNames[strings.ToLower(s)]; ok {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
}

// Update replaces the content of s with the content of other and notifies
// the grid. Views placed in the grid are kept and re-populated.
func (s *Sheet) Update(other *Sheet) {
	s.rows, s.cols = other.rows, other.cols
	s.rowHeight, s.colWidth = other.rowHeight, other.colWidth
	s.rowHeights, s.colWidths = other.rowHeights, other.colWidths
	s.spans = other.spans
	s.cells = other.cells
	s.wrapCache.Purge()
	s.NotifyDataChanged()
}

// Resize changes the number of rows and columns and notifies the grid.
// Spans, cells and sizes outside the new bounds are dropped.
func (s *Sheet) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("invalid size %dx%d", rows, cols)
	}
	var spans gridview.SpanSet
	for _, span := range s.spans.Spans() {
		if span.RB.Row >= rows || span.RB.Col >= cols {
			continue
		}
		if err := spans.Add(span); err != nil {
			return err
		}
	}
	maps.DeleteFunc(s.cells, func(pos gridview.Position, _ cell) bool {
		return pos.Row >= rows || pos.Col >= cols
	})
	maps.DeleteFunc(s.rowHeights, func(row, _ int) bool { return row >= rows })
	maps.DeleteFunc(s.colWidths, func(col, _ int) bool { return col >= cols })

	s.rows, s.cols = rows, cols
	s.spans = spans
	s.NotifyDataChanged()
	return nil
}

// SetText sets the text of a cell and notifies the grid.
func (s *Sheet) SetText(row, col int, text string) {
	pos := gridview.Position{Row: row, Col: col}
	c := s.cells[pos]
	c.text = text
	s.cells[pos] = c
	s.NotifyDataChanged()
}

// Text returns the text shown in a cell.
func (s *Sheet) Text(row, col int) string {
	if c, ok := s.cells[gridview.Position{Row: row, Col: col}]; ok && c.text != "" {
		return c.text
	}
	return fmt.Sprintf("%d, %d", row, col)
}

// Created returns how many views the sheet has created.
func (s *Sheet) Created() int {
	return s.created
}

func (s *Sheet) RowCount() int { return s.rows }
func (s *Sheet) ColCount() int { return s.cols }

func (s *Sheet) RowHeight(row int) int {
	if height, ok := s.rowHeights[row]; ok {
		return height
	}
	return s.rowHeight
}

func (s *Sheet) ColWidth(col int) int {
	if width, ok := s.colWidths[col]; ok {
		return width
	}
	return s.colWidth
}

func (s *Sheet) QuerySpan(row, col int) (gridview.Span, bool) {
	return s.spans.Find(row, col)
}

func (s *Sheet) CellViewType(row, col int) int {
	return s.cells[gridview.Position{Row: row, Col: col}].viewType
}

// CellView populates a TextCell or a SwatchCell.
func (s *Sheet) CellView(reuse gridview.CellView, row, col int) gridview.CellView {
	c := s.cells[gridview.Position{Row: row, Col: col}]
	if c.viewType == TypeSwatch {
		swatch, ok := reuse.(*gridview.SwatchCell)
		if !ok {
			swatch = gridview.NewSwatchCell()
			s.created++
		}
		return swatch.SetColors(c.from, c.to).SetLabel(c.text)
	}

	text, ok := reuse.(*gridview.TextCell)
	if !ok {
		text = gridview.NewTextCell().SetWrapFunc(s.wrap)
		s.created++
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	if row == 0 || col == 0 {
		style = tcell.StyleDefault.
			Foreground(gridview.Styles.HeaderTextColor).
			Background(gridview.Styles.HeaderBackgroundColor).
			Bold(true)
	}
	return text.SetTextStyle(style).SetText(s.Text(row, col))
}

// wrap word-wraps text, remembering recent results.
func (s *Sheet) wrap(text string, width int) []string {
	key := wrapKey{text: text, width: width}
	if lines, ok := s.wrapCache.Get(key); ok {
		return lines
	}
	lines := gridview.WordWrap(text, width)
	s.wrapCache.Add(key, lines)
	return lines
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func orDefaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

var _ gridview.DataSource = &Sheet{}
