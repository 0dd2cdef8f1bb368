package session

import (
	"strings"
	"unicode"

	"github.com/verte-zerg/dvorakdrill/internal/model"
)

var namedKeys = map[model.KeyCode]string{
	model.KeyBackspace: "⌫",
	model.KeyEnter:     "↵",
	model.KeyTab:       "⇥",
	model.KeyEsc:       "ESC",
	model.KeyUp:        "↑",
	model.KeyDown:      "↓",
	model.KeyLeft:      "←",
	model.KeyRight:     "→",
}

// DisplayFor returns the label shown for a key press, or "" when the key has
// no label. Printable keys carry a <C-A-S-x> prefix for held modifiers; shift
// is omitted when it already produced an uppercase letter.
func DisplayFor(k model.Key) string {
	if k.Code != model.KeyRune {
		return namedKeys[k.Code]
	}
	var mods []string
	if k.Mods.Has(model.ModCtrl) {
		mods = append(mods, "C")
	}
	if k.Mods.Has(model.ModAlt) {
		mods = append(mods, "A")
	}
	if k.Mods.Has(model.ModShift) && !unicode.IsUpper(k.Rune) {
		mods = append(mods, "S")
	}
	if len(mods) == 0 {
		return string(k.Rune)
	}
	return "<" + strings.Join(mods, "-") + "-" + string(k.Rune) + ">"
}
