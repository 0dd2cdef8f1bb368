// Package keyboard renders the on-screen keyboard with the pressed key highlighted.
package keyboard

import (
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/dvorakdrill/internal/model"
)

const indent = "  "

var (
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	pressedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#3FB950")).
			Bold(true)
	frameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// glyphNames maps the labels of named keys to their key caps.
var glyphNames = map[string]string{
	"↵": "enter",
	"⇥": "tab",
}

// Render draws the layout. pressed is the active key label, "" for none.
func Render(layout model.Layout, shifted bool, pressed string) string {
	d := dvorak
	if layout == model.LayoutQwerty {
		d = qwerty
	}
	rows := d.normal
	if shifted {
		rows = d.shifted
	}
	modifiers := pcModifiers
	if runtime.GOOS == "darwin" {
		modifiers = macModifiers
	}

	lines := make([]string, 0, len(rows)*2+3)
	for i, r := range rows {
		lines = append(lines, frameStyle.Render(indent+separators[i]))
		lines = append(lines, renderRow(r, pressed))
	}
	lines = append(lines, frameStyle.Render(indent+separators[len(rows)]))
	lines = append(lines, renderModifierRow(modifiers, pressed))
	lines = append(lines, frameStyle.Render(indent+separators[len(rows)+1]))
	return strings.Join(lines, "\n")
}

func renderRow(r row, pressed string) string {
	var b strings.Builder
	b.WriteString(frameStyle.Render(indent + "│"))
	for i, key := range r.keys {
		width := 4
		if i < len(r.widths) {
			width = r.widths[i]
		}
		style := keyStyle
		if pressed != "" && KeyMatches(pressed, key) {
			style = pressedStyle
		}
		b.WriteString(style.Render(pad(key, width)))
		b.WriteString(frameStyle.Render("│"))
	}
	return b.String()
}

func renderModifierRow(modifiers []modifierKey, pressed string) string {
	var b strings.Builder
	b.WriteString(frameStyle.Render(indent + "│"))
	for _, mod := range modifiers {
		style := keyStyle
		if pressed != "" && ModifierMatches(pressed, mod.label) {
			style = pressedStyle
		}
		b.WriteString(style.Render(pad(mod.label, mod.width)))
		b.WriteString(frameStyle.Render("│"))
	}
	return b.String()
}

// pad centers label in width terminal cells.
func pad(label string, width int) string {
	w := runewidth.StringWidth(label)
	if w >= width {
		return label
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", width-w-left)
}

// KeyMatches reports whether the pressed label lights up the key cap.
func KeyMatches(pressed, key string) bool {
	pressedLower := strings.ToLower(pressed)
	if name, ok := glyphNames[pressed]; ok {
		pressedLower = name
	}
	keyLower := strings.ToLower(key)

	switch keyLower {
	case "tab", "caps", "enter", "shift", "backspace", "⌫":
		return strings.Contains(pressedLower, keyLower)
	}

	if strings.HasPrefix(pressed, "<") && strings.HasSuffix(pressed, ">") {
		parts := strings.Split(pressed, "-")
		base := strings.TrimSuffix(parts[len(parts)-1], ">")
		if isSingleRune(base) && isSingleRune(key) {
			return strings.EqualFold(base, key)
		}
	}

	if isSingleRune(key) && isSingleRune(pressed) {
		return strings.EqualFold(pressed, key)
	}
	return pressed == key
}

// ModifierMatches reports whether the pressed label lights up a modifier-row key.
func ModifierMatches(pressed, modifier string) bool {
	p := strings.ToLower(pressed)
	switch strings.ToLower(modifier) {
	case "ctrl":
		return strings.Contains(p, "ctrl") || strings.Contains(p, "<c-")
	case "alt", "opt":
		return strings.Contains(p, "alt") || strings.Contains(p, "opt") ||
			strings.Contains(p, "<a-") || strings.Contains(p, "<m-") || strings.Contains(p, "-a-")
	case "cmd":
		return strings.Contains(p, "cmd") || strings.Contains(p, "<d-")
	case "shift":
		return strings.Contains(p, "shift") || strings.Contains(p, "<s-") || strings.Contains(p, "-s-")
	case "fn":
		return strings.Contains(p, "fn")
	case "space":
		return strings.Contains(p, "space") || pressed == " "
	default:
		return false
	}
}

func isSingleRune(s string) bool {
	return len([]rune(s)) == 1
}
