package keybind

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestMatches(t *testing.T) {
	type tc struct {
		keys  []string
		event *tcell.EventKey
		want  bool
	}

	char := func(r rune, mod tcell.ModMask) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, mod) }
	key := func(k tcell.Key, mod tcell.ModMask) *tcell.EventKey { return tcell.NewEventKey(k, 0, mod) }

	tests := map[string]tc{
		"rune":                {keys: []string{"q"}, event: char('q', tcell.ModNone), want: true},
		"other rune":          {keys: []string{"q"}, event: char('w', tcell.ModNone)},
		"upper case":          {keys: []string{"G"}, event: char('G', tcell.ModShift), want: true},
		"case matters":        {keys: []string{"g"}, event: char('G', tcell.ModShift)},
		"plus":                {keys: []string{"+"}, event: char('+', tcell.ModNone), want: true},
		"ctrl":                {keys: []string{"ctrl+c"}, event: key(tcell.KeyCtrlC, tcell.ModCtrl), want: true},
		"ctrl without mod":    {keys: []string{"ctrl+c"}, event: key(tcell.KeyCtrlC, tcell.ModNone), want: true},
		"alt normalized":      {keys: []string{"Alt+X"}, event: char('x', tcell.ModAlt), want: true},
		"named key":           {keys: []string{"up", "k"}, event: key(tcell.KeyUp, tcell.ModNone), want: true},
		"page alias":          {keys: []string{"pagedown"}, event: key(tcell.KeyPgDn, tcell.ModNone), want: true},
		"escape alias":        {keys: []string{"escape"}, event: key(tcell.KeyEscape, tcell.ModNone), want: true},
		"tab is not ctrl+i":   {keys: []string{"ctrl+i"}, event: key(tcell.KeyTab, tcell.ModNone)},
		"backtab":             {keys: []string{"backtab"}, event: key(tcell.KeyBacktab, tcell.ModNone), want: true},
		"shift tab":           {keys: []string{"shift+tab"}, event: key(tcell.KeyBacktab, tcell.ModNone), want: true},
		"modifier order":      {keys: []string{"shift+ctrl+up"}, event: key(tcell.KeyUp, tcell.ModCtrl|tcell.ModShift), want: true},
		"missing modifier":    {keys: []string{"ctrl+up"}, event: key(tcell.KeyUp, tcell.ModNone)},
		"blank keys are gone": {keys: []string{" ", ""}, event: char(' ', tcell.ModNone)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			kb := NewKeybind(WithKeys(tt.keys...))
			if got := Matches(tt.event, kb); got != tt.want {
				t.Errorf("Matches(%q, %v) = %t, want %t", EventKeyString(tt.event), kb.Keys(), got, tt.want)
			}
		})
	}
}

func TestMatchesDisabled(t *testing.T) {
	kb := NewKeybind(WithKeys("q"), WithDisabled())
	event := tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	if Matches(event, kb) {
		t.Error("disabled binding matched")
	}
	if kb.Enabled() {
		t.Error("Enabled() = true for a disabled binding")
	}

	kb.SetEnabled(true)
	if !Matches(event, kb) {
		t.Error("re-enabled binding did not match")
	}
	if Matches(nil, kb) {
		t.Error("nil event matched")
	}
}

func TestKeybindHelp(t *testing.T) {
	kb := NewKeybind(WithHelp("?", "help"))
	if kb.Enabled() {
		t.Error("binding without keys is enabled")
	}

	kb.SetKeys("?")
	kb.SetHelp("?", "toggle help")
	if !kb.Enabled() {
		t.Error("binding with keys is not enabled")
	}
	if got := kb.Help(); got != (Help{Key: "?", Desc: "toggle help"}) {
		t.Errorf("Help() = %+v", got)
	}
}
