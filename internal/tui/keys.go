package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/dvorakdrill/internal/i18n"
	"github.com/verte-zerg/dvorakdrill/internal/model"
)

// keyMap holds the bindings shown in the footer. The session interprets the
// keys itself; ForceQuit is the only binding matched by the TUI.
type keyMap struct {
	ForceQuit key.Binding
	Move      key.Binding
	Select    key.Binding
	Toggle    key.Binding
	Back      key.Binding
	Quit      key.Binding
	Keymaps   key.Binding
	Erase     key.Binding
	Abort     key.Binding
}

func newKeyMap(tr i18n.Translations) keyMap {
	return keyMap{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Move:      key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", tr.HelpMove)),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", tr.HelpSelect)),
		Toggle:    key.NewBinding(key.WithKeys("enter", "left", "right"), key.WithHelp("←/→", tr.HelpToggle)),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", tr.HelpBack)),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", tr.HelpQuit)),
		Keymaps:   key.NewBinding(key.WithKeys("k"), key.WithHelp("k", tr.HelpKeymaps)),
		Erase:     key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", tr.HelpErase)),
		Abort:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", tr.HelpAbort)),
	}
}

// bindingsFor returns the footer hints of a screen.
func (k keyMap) bindingsFor(screen model.Screen) []key.Binding {
	switch screen {
	case model.ScreenMenu:
		return []key.Binding{k.Move, k.Select, k.Quit}
	case model.ScreenSettings:
		return []key.Binding{k.Move, k.Toggle, k.Back}
	case model.ScreenAbout:
		return []key.Binding{k.Back}
	case model.ScreenWordsCommandsMenu:
		return []key.Binding{k.Move, k.Select, k.Keymaps, k.Back}
	case model.ScreenPractice:
		return []key.Binding{k.Erase, k.Abort}
	default:
		return []key.Binding{k.Move, k.Select, k.Back}
	}
}
