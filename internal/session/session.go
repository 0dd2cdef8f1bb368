// Package session implements the typing tutor state machine.
package session

import (
	"time"

	"github.com/verte-zerg/dvorakdrill/internal/corpus"
	"github.com/verte-zerg/dvorakdrill/internal/generator"
	"github.com/verte-zerg/dvorakdrill/internal/i18n"
	"github.com/verte-zerg/dvorakdrill/internal/model"
	"github.com/verte-zerg/dvorakdrill/internal/stats"
)

const (
	mainMenuItems = 5
	settingsRows  = 2
)

const (
	settingsRowLayout = iota
	settingsRowLanguage
)

// wordsMenuIndex is the WordsCommandsMenu entry that opens WordsMenu.
const wordsMenuIndex = 2

// customKeymapsRune opens the custom keymap drill from WordsCommandsMenu.
const customKeymapsRune = 'k'

var mainMenuTargets = []model.Screen{
	model.ScreenWordsCommandsMenu,
	model.ScreenSentencesMenu,
	model.ScreenCodeTestMenu,
	model.ScreenSettings,
	model.ScreenAbout,
}

var submenuTargets = map[model.Screen][]model.Category{
	model.ScreenWordsCommandsMenu: {
		model.CategoryWordsSimple,
		model.CategoryVimCommands,
		model.CategoryNone,
	},
	model.ScreenSentencesMenu: {
		model.CategorySentencesNormal,
		model.CategorySentencesDvorak,
		model.CategorySentencesQwerty,
	},
	model.ScreenWordsMenu: {
		model.CategoryWordsLua,
		model.CategoryWordsRuby,
		model.CategoryWordsTypescript,
		model.CategoryWordsRust,
		model.CategoryWordsPython,
	},
	model.ScreenCodeTestMenu: {
		model.CategoryCodeLua,
		model.CategoryCodeRuby,
		model.CategoryCodeTypescript,
		model.CategoryCodeRust,
		model.CategoryCodePython,
	},
}

// Options configures a new Session.
type Options struct {
	Lang   string
	Layout model.Layout
	Corpus *corpus.Registry
	// Gen defaults to a time-seeded generator.
	Gen *generator.Generator
	// Now defaults to time.Now.
	Now func() time.Time
}

// Session owns all mutable tutor state. It is not safe for concurrent use.
type Session struct {
	mode         model.Mode
	layout       model.Layout
	translations i18n.Translations

	menuSelected    int
	submenuSelected int
	countSelected   int

	exerciseCount      model.ExerciseCount
	exercisesCompleted int

	target   []rune
	typed    []rune
	keyIndex int

	lastPressed *model.PressedKey
	mods        model.Modifiers

	stats  *stats.Tracker
	corpus *corpus.Registry
	gen    *generator.Generator
	now    func() time.Time
}

// New returns a session on the main menu.
func New(opts Options) *Session {
	s := &Session{
		mode:          model.MenuMode(model.ScreenMenu),
		layout:        opts.Layout,
		translations:  i18n.Load(opts.Lang),
		exerciseCount: model.CountAll,
		stats:         stats.NewTracker(),
		corpus:        opts.Corpus,
		gen:           opts.Gen,
		now:           opts.Now,
	}
	if s.gen == nil {
		s.gen = generator.New()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// HandleInput processes one input event. It returns false when the user asked to quit.
func (s *Session) HandleInput(k model.Key) bool {
	s.mods = k.Mods
	if display := DisplayFor(k); display != "" {
		s.lastPressed = &model.PressedKey{Display: display, At: s.now()}
	}

	switch s.mode.Screen {
	case model.ScreenMenu:
		return s.handleMenu(k)
	case model.ScreenSettings:
		s.handleSettings(k)
	case model.ScreenAbout:
		s.handleAbout(k)
	case model.ScreenCountSelection:
		s.handleCountSelection(k)
	case model.ScreenPractice:
		s.handlePractice(k)
	default:
		if s.mode.Screen.IsSubmenu() {
			s.handleSubmenu(k)
		}
	}
	return true
}

func (s *Session) handleMenu(k model.Key) bool {
	switch k.Code {
	case model.KeyEsc:
		return false
	case model.KeyRune:
		if k.Rune == 'q' {
			return false
		}
	case model.KeyUp:
		s.menuSelected = moveUp(s.menuSelected)
	case model.KeyDown:
		s.menuSelected = moveDown(s.menuSelected, mainMenuItems-1)
	case model.KeyEnter:
		if s.menuSelected < 0 || s.menuSelected >= len(mainMenuTargets) {
			return true
		}
		target := mainMenuTargets[s.menuSelected]
		s.mode = model.MenuMode(target)
		if target != model.ScreenAbout {
			s.submenuSelected = 0
		}
	}
	return true
}

func (s *Session) handleSettings(k model.Key) {
	switch k.Code {
	case model.KeyEsc:
		s.mode = model.MenuMode(model.ScreenMenu)
	case model.KeyUp:
		s.submenuSelected = moveUp(s.submenuSelected)
	case model.KeyDown:
		s.submenuSelected = moveDown(s.submenuSelected, settingsRows-1)
	case model.KeyEnter, model.KeyLeft, model.KeyRight:
		switch s.submenuSelected {
		case settingsRowLayout:
			s.layout = s.layout.Toggle()
		case settingsRowLanguage:
			s.translations = i18n.Load(i18n.Next(s.translations.Code))
		}
	}
}

func (s *Session) handleAbout(k model.Key) {
	if k.Code == model.KeyEsc || k.Code == model.KeyEnter {
		s.mode = model.MenuMode(model.ScreenMenu)
	}
}

func (s *Session) handleSubmenu(k model.Key) {
	targets := submenuTargets[s.mode.Screen]
	switch k.Code {
	case model.KeyEsc:
		s.mode = model.MenuMode(model.ScreenMenu)
	case model.KeyUp:
		s.submenuSelected = moveUp(s.submenuSelected)
	case model.KeyDown:
		s.submenuSelected = moveDown(s.submenuSelected, len(targets)-1)
	case model.KeyRune:
		if s.mode.Screen == model.ScreenWordsCommandsMenu && k.Rune == customKeymapsRune {
			s.requestCount(model.CategoryCustomKeymaps)
		}
	case model.KeyEnter:
		if s.mode.Screen == model.ScreenWordsCommandsMenu && s.submenuSelected == wordsMenuIndex {
			s.mode = model.MenuMode(model.ScreenWordsMenu)
			s.submenuSelected = 0
			return
		}
		if s.submenuSelected < 0 || s.submenuSelected >= len(targets) {
			return
		}
		s.requestCount(targets[s.submenuSelected])
	}
}

// requestCount captures the drill to start and opens the count selector.
func (s *Session) requestCount(target model.Category) {
	s.mode = model.CountSelectionMode(target)
	s.countSelected = 0
}

func (s *Session) handleCountSelection(k model.Key) {
	switch k.Code {
	case model.KeyEsc:
		s.mode = model.MenuMode(model.ScreenMenu)
	case model.KeyUp:
		s.countSelected = moveUp(s.countSelected)
	case model.KeyDown:
		s.countSelected = moveDown(s.countSelected, len(model.ExerciseCounts)-1)
	case model.KeyEnter:
		pending, ok := s.mode.Pending()
		if !ok {
			return
		}
		s.exerciseCount = model.ExerciseCounts[s.countSelected]
		s.exercisesCompleted = 0
		s.stats.Reset()
		s.mode = model.PracticeMode(pending)
		s.startExercise()
	}
}

func (s *Session) handlePractice(k model.Key) {
	switch k.Code {
	case model.KeyEsc:
		s.mode = model.MenuMode(model.ScreenMenu)
		s.stats.Reset()
		s.lastPressed = nil
		s.exercisesCompleted = 0
		s.clearExercise()
	case model.KeyRune:
		// Chords only light up the keyboard.
		if k.Mods.Has(model.ModCtrl) || k.Mods.Has(model.ModAlt) {
			return
		}
		s.processChar(k.Rune)
	case model.KeyBackspace:
		if len(s.typed) == 0 {
			return
		}
		s.typed = s.typed[:len(s.typed)-1]
		if s.keyIndex > 0 {
			s.keyIndex--
		}
	case model.KeyEnter:
		s.processChar('\n')
	case model.KeyTab:
		s.processChar('\t')
	}
}

// processChar matches one typed character against the expected one. A
// mismatch is counted but never advances; only the expected character does.
func (s *Session) processChar(r rune) {
	s.stats.MarkStart(s.now())
	if len(s.target) == 0 || s.keyIndex >= len(s.target) {
		return
	}
	expected := s.target[s.keyIndex]
	if r != expected {
		s.stats.Miss(expected)
		return
	}
	s.typed = append(s.typed, r)
	s.keyIndex++
	s.stats.Hit(expected)
	if s.keyIndex < len(s.target) {
		return
	}

	s.stats.CompleteExercise(len(s.target), s.now())
	s.exercisesCompleted++
	if limit, ok := s.exerciseCount.Limit(); ok && s.exercisesCompleted >= limit {
		// Stats stay visible on the menu until the next drill starts.
		s.mode = model.MenuMode(model.ScreenMenu)
		s.clearExercise()
		return
	}
	s.startExercise()
}

func (s *Session) startExercise() {
	s.clearExercise()
	if target, ok := s.gen.Pick(s.corpus.Lookup(s.mode.Category)); ok {
		s.target = []rune(target)
	}
}

func (s *Session) clearExercise() {
	s.target = nil
	s.typed = nil
	s.keyIndex = 0
}

func moveUp(i int) int {
	if i > 0 {
		return i - 1
	}
	return i
}

func moveDown(i, maxIndex int) int {
	if i < maxIndex {
		return i + 1
	}
	return i
}
