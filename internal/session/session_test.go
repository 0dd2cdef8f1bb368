package session

import (
	"testing"
	"time"

	"github.com/verte-zerg/dvorakdrill/internal/corpus"
	"github.com/verte-zerg/dvorakdrill/internal/generator"
	"github.com/verte-zerg/dvorakdrill/internal/model"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestSession(t *testing.T, lists map[model.Category][]string) (*Session, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := New(Options{
		Lang:   "en",
		Layout: model.LayoutDvorak,
		Corpus: corpus.New(lists),
		Gen:    generator.NewSeeded(1),
		Now:    clock.Now,
	})
	return s, clock
}

func press(s *Session, keys ...model.Key) bool {
	cont := true
	for _, k := range keys {
		cont = s.HandleInput(k)
	}
	return cont
}

func typeString(s *Session, text string) {
	for _, r := range text {
		switch r {
		case '\n':
			s.HandleInput(model.Key{Code: model.KeyEnter})
		case '\t':
			s.HandleInput(model.Key{Code: model.KeyTab})
		default:
			s.HandleInput(model.RuneKey(r))
		}
	}
}

var (
	keyUp    = model.Key{Code: model.KeyUp}
	keyDown  = model.Key{Code: model.KeyDown}
	keyEnter = model.Key{Code: model.KeyEnter}
	keyEsc   = model.Key{Code: model.KeyEsc}
	keyBack  = model.Key{Code: model.KeyBackspace}
	keyLeft  = model.Key{Code: model.KeyLeft}
)

// startSimpleWords walks Menu -> WordsCommandsMenu -> CountSelection -> drill.
func startSimpleWords(t *testing.T, s *Session, countIndex int) {
	t.Helper()
	press(s, keyEnter, keyEnter)
	for i := 0; i < countIndex; i++ {
		press(s, keyDown)
	}
	press(s, keyEnter)
	if s.Mode() != model.PracticeMode(model.CategoryWordsSimple) {
		t.Fatalf("expected simple words drill, got %+v", s.Mode())
	}
}

func TestInitialState(t *testing.T) {
	s, _ := newTestSession(t, nil)
	if s.Mode() != model.MenuMode(model.ScreenMenu) {
		t.Fatalf("expected main menu, got %+v", s.Mode())
	}
	if s.TargetText() != "" || s.CurrentKeyIndex() != 0 {
		t.Fatalf("expected no active exercise")
	}
	if s.ExerciseCount() != model.CountAll {
		t.Fatalf("expected All exercise count")
	}
}

func TestMenuQuit(t *testing.T) {
	s, _ := newTestSession(t, nil)
	if press(s, model.RuneKey('q')) {
		t.Fatalf("expected q to quit from main menu")
	}
	s, _ = newTestSession(t, nil)
	if press(s, keyEsc) {
		t.Fatalf("expected esc to quit from main menu")
	}
}

func TestMenuCursorClamped(t *testing.T) {
	s, _ := newTestSession(t, nil)
	press(s, keyUp)
	if s.MenuSelected() != 0 {
		t.Fatalf("expected cursor clamped at 0, got %d", s.MenuSelected())
	}
	for i := 0; i < 10; i++ {
		press(s, keyDown)
	}
	if s.MenuSelected() != 4 {
		t.Fatalf("expected cursor clamped at 4, got %d", s.MenuSelected())
	}
}

func TestMenuTransitions(t *testing.T) {
	want := []model.Screen{
		model.ScreenWordsCommandsMenu,
		model.ScreenSentencesMenu,
		model.ScreenCodeTestMenu,
		model.ScreenSettings,
		model.ScreenAbout,
	}
	for i, screen := range want {
		s, _ := newTestSession(t, nil)
		for j := 0; j < i; j++ {
			press(s, keyDown)
		}
		if !press(s, keyEnter) {
			t.Fatalf("enter must not quit")
		}
		if s.Mode() != model.MenuMode(screen) {
			t.Fatalf("item %d: expected screen %v, got %+v", i, screen, s.Mode())
		}
		if s.SubmenuSelected() != 0 {
			t.Fatalf("item %d: expected submenu cursor reset", i)
		}
		press(s, keyEsc)
		if s.Mode() != model.MenuMode(model.ScreenMenu) {
			t.Fatalf("item %d: expected esc back to menu, got %+v", i, s.Mode())
		}
	}
}

func TestAboutEnterReturns(t *testing.T) {
	s, _ := newTestSession(t, nil)
	press(s, keyDown, keyDown, keyDown, keyDown, keyEnter)
	press(s, keyEnter)
	if s.Mode().Screen != model.ScreenMenu {
		t.Fatalf("expected enter to leave about, got %+v", s.Mode())
	}
}

func TestSettingsToggleLayout(t *testing.T) {
	s, _ := newTestSession(t, nil)
	press(s, keyDown, keyDown, keyDown, keyEnter)
	press(s, keyEnter)
	if s.Layout() != model.LayoutQwerty {
		t.Fatalf("expected qwerty after toggle")
	}
	press(s, keyLeft)
	if s.Layout() != model.LayoutDvorak {
		t.Fatalf("expected dvorak after second toggle")
	}
}

func TestSettingsLanguageCycle(t *testing.T) {
	s, _ := newTestSession(t, nil)
	press(s, keyDown, keyDown, keyDown, keyEnter)
	press(s, keyDown, keyDown)
	if s.SubmenuSelected() != 1 {
		t.Fatalf("expected settings cursor clamped at 1, got %d", s.SubmenuSelected())
	}
	var seen []string
	for i := 0; i < 3; i++ {
		press(s, keyEnter)
		seen = append(seen, s.Translations().Code)
	}
	if seen[0] != "es" || seen[1] != "ja" || seen[2] != "en" {
		t.Fatalf("unexpected language rotation %v", seen)
	}
	if s.Layout() != model.LayoutDvorak {
		t.Fatalf("language row must not touch the layout")
	}
}

func TestSubmenuCursorBounds(t *testing.T) {
	cases := []struct {
		menuIndex int
		screen    model.Screen
		max       int
	}{
		{0, model.ScreenWordsCommandsMenu, 2},
		{1, model.ScreenSentencesMenu, 2},
		{2, model.ScreenCodeTestMenu, 4},
	}
	for _, tc := range cases {
		s, _ := newTestSession(t, nil)
		for i := 0; i < tc.menuIndex; i++ {
			press(s, keyDown)
		}
		press(s, keyEnter)
		for i := 0; i < 10; i++ {
			press(s, keyDown)
		}
		if s.Mode().Screen != tc.screen || s.SubmenuSelected() != tc.max {
			t.Fatalf("screen %v: expected cursor %d, got %d", tc.screen, tc.max, s.SubmenuSelected())
		}
		if s.SubmenuItems() != tc.max+1 {
			t.Fatalf("screen %v: expected %d items, got %d", tc.screen, tc.max+1, s.SubmenuItems())
		}
	}
}

func TestWordsMenuReachedWithoutCountSelection(t *testing.T) {
	s, _ := newTestSession(t, nil)
	press(s, keyEnter, keyDown, keyDown, keyEnter)
	if s.Mode() != model.MenuMode(model.ScreenWordsMenu) {
		t.Fatalf("expected words menu, got %+v", s.Mode())
	}
	for i := 0; i < 10; i++ {
		press(s, keyDown)
	}
	if s.SubmenuSelected() != 4 {
		t.Fatalf("expected cursor clamped at 4, got %d", s.SubmenuSelected())
	}
	press(s, keyEnter)
	if pending, ok := s.Mode().Pending(); !ok || pending != model.CategoryWordsPython {
		t.Fatalf("expected pending python words, got %+v", s.Mode())
	}
}

func TestCountSelectionCapturesPending(t *testing.T) {
	s, _ := newTestSession(t, nil)
	press(s, keyDown, keyDown, keyEnter, keyDown, keyDown, keyDown, keyEnter)
	if pending, ok := s.Mode().Pending(); !ok || pending != model.CategoryCodeRust {
		t.Fatalf("expected pending rust code test, got %+v", s.Mode())
	}
	if s.CountSelected() != 0 {
		t.Fatalf("expected count cursor reset")
	}
	for i := 0; i < 10; i++ {
		press(s, keyDown)
	}
	if s.CountSelected() != 4 {
		t.Fatalf("expected count cursor clamped at 4, got %d", s.CountSelected())
	}
}

func TestCountSelectionEscDiscardsPending(t *testing.T) {
	s, _ := newTestSession(t, nil)
	press(s, keyEnter, keyEnter, keyEsc)
	if s.Mode() != model.MenuMode(model.ScreenMenu) {
		t.Fatalf("expected menu, got %+v", s.Mode())
	}
	if _, ok := s.Mode().Pending(); ok {
		t.Fatalf("expected pending drill discarded")
	}
}

func TestCustomKeymapsHotkey(t *testing.T) {
	s, _ := newTestSession(t, map[model.Category][]string{
		model.CategoryCustomKeymaps: {"<C-n>"},
	})
	press(s, keyEnter, model.RuneKey('k'))
	if pending, ok := s.Mode().Pending(); !ok || pending != model.CategoryCustomKeymaps {
		t.Fatalf("expected pending custom keymaps, got %+v", s.Mode())
	}
	press(s, keyEnter)
	if s.TargetText() != "<C-n>" {
		t.Fatalf("expected custom keymap target, got %q", s.TargetText())
	}
}

func TestCorrectTypingMatchesTarget(t *testing.T) {
	s, _ := newTestSession(t, map[model.Category][]string{
		model.CategoryWordsSimple: {"hello world"},
	})
	startSimpleWords(t, s, 0)
	typeString(s, "hello worl")
	if s.TypedText() != "hello worl" || s.CurrentKeyIndex() != 10 {
		t.Fatalf("unexpected progress %q at %d", s.TypedText(), s.CurrentKeyIndex())
	}
	st := s.Stats()
	if st.Correct != 10 || st.Errors != 0 {
		t.Fatalf("unexpected counts %d/%d", st.Correct, st.Errors)
	}
	typeString(s, "d")
	st = s.Stats()
	if st.Correct != 11 || st.TotalChars != 11 || s.ExercisesCompleted() != 1 {
		t.Fatalf("unexpected completion stats %+v completed=%d", st, s.ExercisesCompleted())
	}
	if s.TypedText() != "" || s.CurrentKeyIndex() != 0 || s.TargetText() != "hello world" {
		t.Fatalf("expected a fresh exercise after completion")
	}
}

func TestMismatchDoesNotAdvance(t *testing.T) {
	s, _ := newTestSession(t, map[model.Category][]string{
		model.CategoryWordsSimple: {"fn main() {}"},
	})
	startSimpleWords(t, s, 0)
	typeString(s, "fn nain")

	st := s.Stats()
	// "fn " matches, 'n' against 'm' misses; the remaining "ain" misses too.
	if st.Correct != 3 {
		t.Fatalf("expected 3 correct, got %d", st.Correct)
	}
	if st.Errors != 4 {
		t.Fatalf("expected 4 errors, got %d", st.Errors)
	}
	if s.CurrentKeyIndex() != 3 || s.TypedText() != "fn " {
		t.Fatalf("expected progress held at 3, got %d %q", s.CurrentKeyIndex(), s.TypedText())
	}
	typeString(s, "m")
	if s.CurrentKeyIndex() != 4 {
		t.Fatalf("expected expected char to advance, got %d", s.CurrentKeyIndex())
	}
}

func TestSpaceMismatchExample(t *testing.T) {
	s, _ := newTestSession(t, map[model.Category][]string{
		model.CategoryWordsSimple: {"fn main() {}"},
	})
	startSimpleWords(t, s, 0)
	typeString(s, "fn")
	typeString(s, "n")
	if s.CurrentKeyIndex() != 2 || s.Stats().Errors != 1 {
		t.Fatalf("expected mismatch at space to hold index 2")
	}
	typeString(s, " ")
	if s.CurrentKeyIndex() != 3 {
		t.Fatalf("expected space to advance to 3, got %d", s.CurrentKeyIndex())
	}
}

func TestBackspace(t *testing.T) {
	s, _ := newTestSession(t, map[model.Category][]string{
		model.CategoryWordsSimple: {"abc"},
	})
	startSimpleWords(t, s, 0)
	press(s, keyBack, keyBack)
	if s.CurrentKeyIndex() != 0 || s.TypedText() != "" {
		t.Fatalf("backspace on empty input must be a no-op")
	}
	typeString(s, "ab")
	press(s, keyBack)
	if s.CurrentKeyIndex() != 1 || s.TypedText() != "a" {
		t.Fatalf("expected rewind to 1, got %d %q", s.CurrentKeyIndex(), s.TypedText())
	}
	if s.Stats().Correct != 2 {
		t.Fatalf("backspace must not change correct count")
	}
	press(s, keyBack, keyBack, keyBack)
	if s.CurrentKeyIndex() != 0 {
		t.Fatalf("expected index floored at 0, got %d", s.CurrentKeyIndex())
	}
}

func TestMultilineTarget(t *testing.T) {
	s, _ := newTestSession(t, map[model.Category][]string{
		model.CategoryCodePython: {"if x:\n\treturn"},
	})
	press(s, keyDown, keyDown, keyEnter)
	for i := 0; i < 4; i++ {
		press(s, keyDown)
	}
	press(s, keyEnter, keyEnter)
	if s.Mode() != model.PracticeMode(model.CategoryCodePython) {
		t.Fatalf("expected python code drill, got %+v", s.Mode())
	}
	typeString(s, "if x:\n\treturn")
	if s.ExercisesCompleted() != 1 || s.Stats().Errors != 0 {
		t.Fatalf("expected clean completion across newline and tab")
	}
}

func TestFiniteCountReturnsToMenuPreservingStats(t *testing.T) {
	s, _ := newTestSession(t, map[model.Category][]string{
		model.CategoryWordsSimple: {"ab"},
	})
	startSimpleWords(t, s, 1)
	if s.ExerciseCount() != model.Count10 {
		t.Fatalf("expected count 10, got %v", s.ExerciseCount())
	}
	for i := 0; i < 9; i++ {
		typeString(s, "ab")
		if s.Mode().Screen != model.ScreenPractice {
			t.Fatalf("left drill early after %d exercises", i+1)
		}
	}
	typeString(s, "ab")
	if s.Mode() != model.MenuMode(model.ScreenMenu) {
		t.Fatalf("expected menu after 10 exercises, got %+v", s.Mode())
	}
	st := s.Stats()
	if st.Correct != 20 || st.TotalChars != 20 {
		t.Fatalf("expected preserved stats, got %+v", st)
	}
	if s.ExercisesCompleted() != 10 {
		t.Fatalf("expected 10 completed, got %d", s.ExercisesCompleted())
	}
}

func TestUnlimitedCountOnlyEscReturns(t *testing.T) {
	s, _ := newTestSession(t, map[model.Category][]string{
		model.CategoryWordsSimple: {"ab"},
	})
	startSimpleWords(t, s, 0)
	typeString(s, "x")
	for i := 0; i < 150; i++ {
		typeString(s, "ab")
	}
	if s.Mode().Screen != model.ScreenPractice {
		t.Fatalf("unlimited drill must not auto-exit")
	}
	press(s, keyEsc)
	if s.Mode() != model.MenuMode(model.ScreenMenu) {
		t.Fatalf("expected esc to abort to menu")
	}
	st := s.Stats()
	if st.Correct != 0 || st.Errors != 0 || st.TotalChars != 0 || st.Started() {
		t.Fatalf("expected stats reset on abort, got %+v", st)
	}
	if s.ExercisesCompleted() != 0 {
		t.Fatalf("expected completion counter reset")
	}
	if _, ok := s.LastPressedKey(); ok {
		t.Fatalf("expected last pressed key cleared on abort")
	}
}

func TestNewDrillStartsFreshTally(t *testing.T) {
	s, _ := newTestSession(t, map[model.Category][]string{
		model.CategoryWordsSimple: {"ab"},
	})
	startSimpleWords(t, s, 1)
	for i := 0; i < 10; i++ {
		typeString(s, "ab")
	}
	startSimpleWords(t, s, 0)
	if st := s.Stats(); st.Correct != 0 || st.Started() {
		t.Fatalf("expected fresh stats for new drill, got %+v", st)
	}
}

func TestEmptyCorpusIsNoop(t *testing.T) {
	s, clock := newTestSession(t, map[model.Category][]string{
		model.CategoryWordsSimple: {},
	})
	startSimpleWords(t, s, 0)
	if s.TargetText() != "" {
		t.Fatalf("expected empty target")
	}
	typeString(s, "abc")
	press(s, keyBack)
	st := s.Stats()
	if st.Correct != 0 || st.Errors != 0 || s.CurrentKeyIndex() != 0 {
		t.Fatalf("expected no-op keystrokes, got %+v", st)
	}
	if !st.StartTime.Equal(clock.Now()) {
		t.Fatalf("expected lazy start time to be recorded")
	}
}

func TestStartTimeIsLazy(t *testing.T) {
	s, clock := newTestSession(t, map[model.Category][]string{
		model.CategoryWordsSimple: {"abcde"},
	})
	startSimpleWords(t, s, 0)
	if s.Stats().Started() || s.WPM() != 0 {
		t.Fatalf("expected no start time before typing")
	}
	if s.Accuracy() != 100 {
		t.Fatalf("expected 100%% accuracy before typing")
	}
	clock.Advance(5 * time.Second)
	start := clock.Now()
	typeString(s, "abcd")
	clock.Advance(time.Minute)
	if !s.Stats().StartTime.Equal(start) {
		t.Fatalf("expected start at first keystroke")
	}
	// 4 correct chars = 0.8 words in one minute.
	if got := s.WPM(); got < 0.79 || got > 0.81 {
		t.Fatalf("unexpected wpm %f", got)
	}
}

func TestLastPressedKeyDecays(t *testing.T) {
	s, clock := newTestSession(t, nil)
	press(s, keyDown)
	label, ok := s.ActiveKey()
	if !ok || label != "↓" {
		t.Fatalf("expected active down arrow, got %q %v", label, ok)
	}
	clock.Advance(150 * time.Millisecond)
	if _, ok := s.ActiveKey(); !ok {
		t.Fatalf("expected key active within window")
	}
	clock.Advance(50 * time.Millisecond)
	if _, ok := s.ActiveKey(); !ok {
		t.Fatalf("expected key active at exactly %v", model.HighlightWindow)
	}
	clock.Advance(time.Nanosecond)
	if _, ok := s.ActiveKey(); ok {
		t.Fatalf("expected key inactive just after the window")
	}
	clock.Advance(10 * time.Millisecond)
	if _, ok := s.ActiveKey(); ok {
		t.Fatalf("expected key inactive after window")
	}
	if _, ok := s.LastPressedKey(); !ok {
		t.Fatalf("decay must not clear the record")
	}
}

func TestModifiersOverwritten(t *testing.T) {
	s, _ := newTestSession(t, nil)
	press(s, model.Key{Code: model.KeyRune, Rune: 'x', Mods: model.ModCtrl | model.ModAlt})
	if !s.Modifiers().Has(model.ModCtrl | model.ModAlt) {
		t.Fatalf("expected ctrl+alt held")
	}
	press(s, keyDown)
	if s.Modifiers() != 0 {
		t.Fatalf("expected modifiers cleared by next event, got %v", s.Modifiers())
	}
}

func TestUnhandledKeysIgnored(t *testing.T) {
	s, _ := newTestSession(t, nil)
	if !press(s, model.Key{Code: model.KeyOther}, model.RuneKey('z'), keyLeft) {
		t.Fatalf("unhandled keys must not quit")
	}
	if s.Mode() != model.MenuMode(model.ScreenMenu) || s.MenuSelected() != 0 {
		t.Fatalf("unhandled keys must not change state")
	}
}

func TestChordsDoNotType(t *testing.T) {
	s, _ := newTestSession(t, map[model.Category][]string{
		model.CategoryWordsSimple: {"ab"},
	})
	startSimpleWords(t, s, 0)
	press(s, model.Key{Code: model.KeyRune, Rune: 'a', Mods: model.ModCtrl})
	press(s, model.Key{Code: model.KeyRune, Rune: 'a', Mods: model.ModAlt})
	if s.CurrentKeyIndex() != 0 || s.Stats().Errors != 0 || s.Stats().Started() {
		t.Fatalf("chords must not count as typing")
	}
	if got, ok := s.ActiveKey(); !ok || got != "<A-a>" {
		t.Fatalf("expected chord highlighted, got %q", got)
	}
}

func TestSettingsItems(t *testing.T) {
	s, _ := newTestSession(t, nil)
	press(s, keyDown, keyDown, keyDown, keyEnter)
	if s.Mode().Screen != model.ScreenSettings || s.SubmenuItems() != 2 {
		t.Fatalf("expected two settings rows, got %d on %+v", s.SubmenuItems(), s.Mode())
	}
}
