package help

import (
	"strings"
	"testing"

	"github.com/ayn2op/gridview/keybind"
	"github.com/gdamore/tcell/v2"
)

type testKeyMap struct {
	short []keybind.Keybind
	full  [][]keybind.Keybind
}

func (k testKeyMap) ShortHelp() []keybind.Keybind  { return k.short }
func (k testKeyMap) FullHelp() [][]keybind.Keybind { return k.full }

func binding(key, desc string) keybind.Keybind {
	return keybind.NewKeybind(keybind.WithKeys(key), keybind.WithHelp(key, desc))
}

func text(segments []segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.text)
	}
	return b.String()
}

func TestShortLine(t *testing.T) {
	bindings := []keybind.Keybind{
		binding("a", "one"),
		binding("b", "two"),
		keybind.NewKeybind(keybind.WithKeys("x"), keybind.WithHelp("x", "hidden"), keybind.WithDisabled()),
		binding("c", "three"),
	}

	tests := map[string]struct {
		width int
		want  string
	}{
		"unlimited":      {width: 0, want: "a one • b two • c three"},
		"exact":          {width: 23, want: "a one • b two • c three"},
		"truncated":      {width: 15, want: "a one • b two …"},
		"no room at all": {width: 1, want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := New()
			if got := text(h.shortLine(bindings, tt.width)); got != tt.want {
				t.Errorf("shortLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFullLines(t *testing.T) {
	groups := [][]keybind.Keybind{
		{binding("a", "one"), binding("bb", "two")},
		{binding("c", "three")},
	}

	tests := map[string]struct {
		width int
		want  []string
	}{
		"all columns":  {want: []string{"a  one    c three", "bb two    "}},
		"last dropped": {width: 9, want: []string{"a  one …", "bb two"}},
		"nothing fits": {width: 3, want: []string{"…"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := New()
			lines := h.fullLines(groups, tt.width)
			got := make([]string, len(lines))
			for i, line := range lines {
				got[i] = text(line)
			}
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("fullLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeight(t *testing.T) {
	keyMap := testKeyMap{
		short: []keybind.Keybind{binding("a", "one")},
		full:  [][]keybind.Keybind{{binding("a", "one")}, {binding("b", "two"), binding("c", "three"), binding("d", "four")}},
	}

	h := New()
	if got := h.Height(); got != 0 {
		t.Errorf("Height() without a key map = %d, want 0", got)
	}
	h.SetKeyMap(keyMap)
	if got := h.Height(); got != 1 {
		t.Errorf("short Height() = %d, want 1", got)
	}
	h.SetShowAll(true)
	if got := h.Height(); got != 3 {
		t.Errorf("full Height() = %d, want 3", got)
	}
}

func TestKeyMaps(t *testing.T) {
	first := testKeyMap{short: []keybind.Keybind{binding("a", "one")}, full: [][]keybind.Keybind{{binding("a", "one")}}}
	second := testKeyMap{short: []keybind.Keybind{binding("b", "two")}, full: [][]keybind.Keybind{{binding("b", "two")}}}
	joined := KeyMaps{first, second}

	if got := len(joined.ShortHelp()); got != 2 {
		t.Errorf("len(ShortHelp()) = %d, want 2", got)
	}
	if got := len(joined.FullHelp()); got != 2 {
		t.Errorf("len(FullHelp()) = %d, want 2", got)
	}
}

func TestDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(20, 1)

	h := New().SetKeyMap(testKeyMap{short: []keybind.Keybind{binding("q", "quit"), binding("?", "help")}})
	h.SetRect(0, 0, 20, 1)
	h.Draw(screen)

	var b strings.Builder
	for x := range 15 {
		r, _, _, _ := screen.GetContent(x, 0)
		b.WriteRune(r)
	}
	if got, want := b.String(), "q quit • ? help"; got != want {
		t.Errorf("drawn help = %q, want %q", got, want)
	}
}
