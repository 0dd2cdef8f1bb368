// Package model defines shared data structures.
package model

import (
	"strconv"
	"strings"
	"time"
)

// Layout is the keyboard arrangement being practiced.
type Layout int

const (
	LayoutDvorak Layout = iota
	LayoutQwerty
)

// ParseLayout maps a CLI/config layout name to a Layout. Only "qwerty" selects QWERTY.
func ParseLayout(name string) Layout {
	if strings.EqualFold(strings.TrimSpace(name), "qwerty") {
		return LayoutQwerty
	}
	return LayoutDvorak
}

// Toggle returns the other layout.
func (l Layout) Toggle() Layout {
	if l == LayoutDvorak {
		return LayoutQwerty
	}
	return LayoutDvorak
}

// Name returns the display name of the layout.
func (l Layout) Name() string {
	if l == LayoutQwerty {
		return "QWERTY"
	}
	return "Dvorak Programmer"
}

// ExerciseCount controls how many exercises run before returning to the menu.
type ExerciseCount int

const (
	CountAll ExerciseCount = iota
	Count10
	Count25
	Count50
	Count100
)

// ExerciseCounts lists the selectable counts in menu order.
var ExerciseCounts = []ExerciseCount{CountAll, Count10, Count25, Count50, Count100}

// Limit returns the finite limit, or false for CountAll.
func (c ExerciseCount) Limit() (int, bool) {
	switch c {
	case Count10:
		return 10, true
	case Count25:
		return 25, true
	case Count50:
		return 50, true
	case Count100:
		return 100, true
	default:
		return 0, false
	}
}

func (c ExerciseCount) String() string {
	if n, ok := c.Limit(); ok {
		return strconv.Itoa(n)
	}
	return "All"
}

// Category identifies an exercise corpus.
type Category int

const (
	CategoryNone Category = iota
	CategoryWordsSimple
	CategoryVimCommands
	CategoryWordsLua
	CategoryWordsRuby
	CategoryWordsTypescript
	CategoryWordsRust
	CategoryWordsPython
	CategorySentencesNormal
	CategorySentencesDvorak
	CategorySentencesQwerty
	CategoryCodeLua
	CategoryCodeRuby
	CategoryCodeTypescript
	CategoryCodeRust
	CategoryCodePython
	CategoryCustomKeymaps
)

var categoryNames = map[Category]string{
	CategoryNone:            "none",
	CategoryWordsSimple:     "words-simple",
	CategoryVimCommands:     "vim-commands",
	CategoryWordsLua:        "words-lua",
	CategoryWordsRuby:       "words-ruby",
	CategoryWordsTypescript: "words-typescript",
	CategoryWordsRust:       "words-rust",
	CategoryWordsPython:     "words-python",
	CategorySentencesNormal: "sentences-normal",
	CategorySentencesDvorak: "sentences-dvorak",
	CategorySentencesQwerty: "sentences-qwerty",
	CategoryCodeLua:         "code-lua",
	CategoryCodeRuby:        "code-ruby",
	CategoryCodeTypescript:  "code-typescript",
	CategoryCodeRust:        "code-rust",
	CategoryCodePython:      "code-python",
	CategoryCustomKeymaps:   "custom-keymaps",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// CodeLanguage returns the programming language of a code-snippet category.
func (c Category) CodeLanguage() (string, bool) {
	switch c {
	case CategoryCodeLua:
		return "lua", true
	case CategoryCodeRuby:
		return "ruby", true
	case CategoryCodeTypescript:
		return "typescript", true
	case CategoryCodeRust:
		return "rust", true
	case CategoryCodePython:
		return "python", true
	default:
		return "", false
	}
}

// Screen is the state-machine state without its payload.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenSettings
	ScreenAbout
	ScreenWordsCommandsMenu
	ScreenWordsMenu
	ScreenSentencesMenu
	ScreenCodeTestMenu
	ScreenCountSelection
	ScreenPractice
)

// IsSubmenu reports whether the screen is one of the category submenus.
func (s Screen) IsSubmenu() bool {
	switch s {
	case ScreenWordsCommandsMenu, ScreenWordsMenu, ScreenSentencesMenu, ScreenCodeTestMenu:
		return true
	default:
		return false
	}
}

// Mode is the current state. Category is the pending drill while in
// ScreenCountSelection and the active drill while in ScreenPractice; it is
// CategoryNone on every other screen.
type Mode struct {
	Screen   Screen
	Category Category
}

// MenuMode returns a payload-free mode for a menu screen.
func MenuMode(s Screen) Mode {
	return Mode{Screen: s}
}

// CountSelectionMode returns the count selector holding the pending drill.
func CountSelectionMode(pending Category) Mode {
	return Mode{Screen: ScreenCountSelection, Category: pending}
}

// PracticeMode returns an active drill mode.
func PracticeMode(c Category) Mode {
	return Mode{Screen: ScreenPractice, Category: c}
}

// Pending returns the drill captured by the count selector.
func (m Mode) Pending() (Category, bool) {
	if m.Screen != ScreenCountSelection {
		return CategoryNone, false
	}
	return m.Category, true
}

// KeyCode identifies the key of an input event.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyRune
	KeyBackspace
	KeyEnter
	KeyTab
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether all bits of m2 are set.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// Key is one input event.
type Key struct {
	Code KeyCode
	Rune rune
	Mods Modifiers
}

// RuneKey builds a printable key event.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// HighlightWindow is how long a pressed key stays highlighted.
const HighlightWindow = 200 * time.Millisecond

// PressedKey is the transient record of the last pressed key.
type PressedKey struct {
	Display string
	At      time.Time
}

// ActiveAt reports whether the record is still highlighted at now.
func (p *PressedKey) ActiveAt(now time.Time) bool {
	if p == nil {
		return false
	}
	return now.Sub(p.At) <= HighlightWindow
}
