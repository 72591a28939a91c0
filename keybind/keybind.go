// Package keybind describes key bindings as strings like "q", "ctrl+c" or
// "shift+pgdn" and matches them against tcell key events.
package keybind

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Keybind is a set of keys triggering one action, plus the help shown for it.
type Keybind struct {
	keys     []string
	help     Help
	disabled bool
}

// Help is what a help view shows for a binding.
type Help struct {
	Key  string
	Desc string
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

// WithKeys sets the keys. They are normalized, so "Control+X", "ctrl+x" and
// "ctrl+X" are the same binding.
func WithKeys(keys ...string) Option {
	return func(k *Keybind) { k.SetKeys(keys...) }
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) { k.SetHelp(key, desc) }
}

// WithDisabled creates the binding disabled.
func WithDisabled() Option {
	return func(k *Keybind) { k.disabled = true }
}

func (k Keybind) Keys() []string { return k.keys }
func (k Keybind) Help() Help     { return k.help }

func (k *Keybind) SetKeys(keys ...string) {
	k.keys = make([]string, 0, len(keys))
	for _, key := range keys {
		if key = normalizeKey(key); key != "" {
			k.keys = append(k.keys, key)
		}
	}
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

// Enabled reports whether the binding matches events and shows up in help.
func (k Keybind) Enabled() bool {
	return !k.disabled && len(k.keys) > 0
}

func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

// Matches reports whether event triggers any of the enabled keybinds.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	key := EventKeyString(event)
	return slices.ContainsFunc(keybinds, func(k Keybind) bool {
		return !k.disabled && slices.Contains(k.keys, key)
	})
}

// modifiers lists the modifier names in the order they are written.
var modifiers = []struct {
	name string
	mask tcell.ModMask
}{
	{"ctrl", tcell.ModCtrl},
	{"alt", tcell.ModAlt},
	{"shift", tcell.ModShift},
	{"meta", tcell.ModMeta},
}

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
}

// aliases maps alternative spellings to key names.
var aliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdn",
	"space":    " ",
}

// format writes a key with its modifiers. Single characters are lowered when
// a modifier is present, since the modifier already says what shift did.
func format(mods tcell.ModMask, primary string) string {
	if mods == 0 {
		return primary
	}
	parts := make([]string, 0, len(modifiers)+1)
	for _, m := range modifiers {
		if mods&m.mask != 0 {
			parts = append(parts, m.name)
		}
	}
	if utf8.RuneCountInString(primary) == 1 {
		primary = strings.ToLower(primary)
	}
	return strings.Join(append(parts, primary), "+")
}

func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" || key == "+" {
		return key
	}

	var (
		mods    tcell.ModMask
		primary string
	)
	for part := range strings.SplitSeq(key, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if mask, ok := modifierMask(part); ok {
			mods |= mask
			continue
		}
		primary = normalizePrimary(part)
	}

	switch primary {
	case "":
		return ""
	case "backtab":
		primary = "tab"
		mods |= tcell.ModShift
	}
	return format(mods, primary)
}

func modifierMask(name string) (tcell.ModMask, bool) {
	name = strings.ToLower(name)
	if name == "control" {
		name = "ctrl"
	}
	for _, m := range modifiers {
		if m.name == name {
			return m.mask, true
		}
	}
	return 0, false
}

func normalizePrimary(key string) string {
	// tcell names runes "Rune[x]".
	if inner, ok := strings.CutPrefix(key, "Rune["); ok && strings.HasSuffix(inner, "]") && len(inner) > 1 {
		return strings.TrimSuffix(inner, "]")
	}
	if utf8.RuneCountInString(key) == 1 {
		return key
	}

	lower := strings.ToLower(key)
	if alias, ok := aliases[lower]; ok {
		return alias
	}
	if letter, ok := strings.CutPrefix(lower, "ctrl-"); ok && letter != "" {
		return "ctrl+" + letter
	}
	return lower
}

// EventKeyString returns the normalized binding string of a key event, such
// as "up", "shift+pgdn", "ctrl+c" or "q".
func EventKeyString(event *tcell.EventKey) string {
	if event == nil {
		return ""
	}

	key, mods := event.Key(), event.Modifiers()
	// Named keys share codes with the ctrl range (Tab is Ctrl-I, Enter is
	// Ctrl-M), so they are looked up first.
	primary, named := keyNames[key]
	switch {
	case named:
	case key == tcell.KeyBacktab:
		primary = "tab"
		mods |= tcell.ModShift
	case key == tcell.KeyRune:
		primary = string(event.Rune())
		// The rune already carries shift.
		mods &^= tcell.ModShift
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
		primary = string(rune('a' + (key - tcell.KeyCtrlA)))
		mods |= tcell.ModCtrl
	default:
		return normalizeKey(event.Name())
	}
	return format(mods, primary)
}
