package tui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/dvorakdrill/internal/model"
)

// translateKey converts a terminal key message into session input events.
// Pasted or batched runes become one event per rune.
func translateKey(msg tea.KeyMsg) []model.Key {
	var mods model.Modifiers
	if msg.Alt {
		mods |= model.ModAlt
	}
	switch msg.Type {
	case tea.KeyRunes:
		keys := make([]model.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			runeMods := mods
			if unicode.IsUpper(r) {
				runeMods |= model.ModShift
			}
			keys = append(keys, model.Key{Code: model.KeyRune, Rune: r, Mods: runeMods})
		}
		return keys
	case tea.KeySpace:
		return []model.Key{{Code: model.KeyRune, Rune: ' ', Mods: mods}}
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		return []model.Key{{Code: model.KeyBackspace, Mods: mods}}
	case tea.KeyEnter:
		return []model.Key{{Code: model.KeyEnter, Mods: mods}}
	case tea.KeyTab:
		return []model.Key{{Code: model.KeyTab, Mods: mods}}
	case tea.KeyShiftTab:
		return []model.Key{{Code: model.KeyTab, Mods: mods | model.ModShift}}
	case tea.KeyEsc:
		return []model.Key{{Code: model.KeyEsc, Mods: mods}}
	case tea.KeyUp:
		return []model.Key{{Code: model.KeyUp, Mods: mods}}
	case tea.KeyDown:
		return []model.Key{{Code: model.KeyDown, Mods: mods}}
	case tea.KeyLeft:
		return []model.Key{{Code: model.KeyLeft, Mods: mods}}
	case tea.KeyRight:
		return []model.Key{{Code: model.KeyRight, Mods: mods}}
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		r := rune('a' + int(msg.Type-tea.KeyCtrlA))
		return []model.Key{{Code: model.KeyRune, Rune: r, Mods: mods | model.ModCtrl}}
	}
	return []model.Key{{Code: model.KeyOther, Mods: mods}}
}
