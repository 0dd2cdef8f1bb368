package session

import (
	"github.com/verte-zerg/dvorakdrill/internal/i18n"
	"github.com/verte-zerg/dvorakdrill/internal/model"
	"github.com/verte-zerg/dvorakdrill/internal/stats"
)

// Mode returns the current state.
func (s *Session) Mode() model.Mode { return s.mode }

// Layout returns the selected keyboard layout.
func (s *Session) Layout() model.Layout { return s.layout }

// Translations returns the active display strings.
func (s *Session) Translations() i18n.Translations { return s.translations }

// MenuSelected returns the main menu cursor.
func (s *Session) MenuSelected() int { return s.menuSelected }

// SubmenuSelected returns the cursor of the settings screen and submenus.
func (s *Session) SubmenuSelected() int { return s.submenuSelected }

// SubmenuItems returns the entry count of the current submenu.
func (s *Session) SubmenuItems() int {
	if s.mode.Screen == model.ScreenSettings {
		return settingsRows
	}
	return len(submenuTargets[s.mode.Screen])
}

// CountSelected returns the exercise count cursor.
func (s *Session) CountSelected() int { return s.countSelected }

// ExerciseCount returns the configured exercise count policy.
func (s *Session) ExerciseCount() model.ExerciseCount { return s.exerciseCount }

// ExercisesCompleted returns the exercises finished in the current drill.
func (s *Session) ExercisesCompleted() int { return s.exercisesCompleted }

// TargetText returns the text to type; empty when no exercise is active.
func (s *Session) TargetText() string { return string(s.target) }

// TypedText returns the correctly typed prefix of the target.
func (s *Session) TypedText() string { return string(s.typed) }

// CurrentKeyIndex returns the index of the next expected character.
func (s *Session) CurrentKeyIndex() int { return s.keyIndex }

// Stats returns a copy of the drill statistics.
func (s *Session) Stats() stats.Tracker { return *s.stats }

// WPM returns the live words-per-minute.
func (s *Session) WPM() float64 { return s.stats.WPM(s.now()) }

// Accuracy returns the accuracy percentage.
func (s *Session) Accuracy() float64 { return s.stats.Accuracy() }

// CustomKeymaps returns the custom keymap drill list.
func (s *Session) CustomKeymaps() []string {
	return s.corpus.Lookup(model.CategoryCustomKeymaps)
}

// LastPressedKey returns a copy of the last pressed key record.
func (s *Session) LastPressedKey() (model.PressedKey, bool) {
	if s.lastPressed == nil {
		return model.PressedKey{}, false
	}
	return *s.lastPressed, true
}

// ActiveKey returns the label of the last pressed key while it is still highlighted.
func (s *Session) ActiveKey() (string, bool) {
	if !s.lastPressed.ActiveAt(s.now()) {
		return "", false
	}
	return s.lastPressed.Display, true
}

// Modifiers returns the modifier state of the most recent event.
func (s *Session) Modifiers() model.Modifiers { return s.mods }
