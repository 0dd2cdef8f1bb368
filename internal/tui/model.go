// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/dvorakdrill/internal/model"
	"github.com/verte-zerg/dvorakdrill/internal/session"
	"github.com/verte-zerg/dvorakdrill/internal/stats"
)

// refreshInterval drives live WPM redraws during a drill.
const refreshInterval = 250 * time.Millisecond

type refreshMsg struct{}

// decayMsg redraws once the key highlight window has passed.
type decayMsg struct{}

// Model implements the Bubble Tea tutor UI.
type Model struct {
	session *session.Session
	logger  *log.Logger

	width  int
	height int

	help       help.Model
	progress   progress.Model
	refreshing bool

	// syntax caches pending styles for the current code target.
	syntaxTarget string
	syntax       []lipgloss.Style
}

// NewModel wraps a session. logger may be nil.
func NewModel(sess *session.Session, logger *log.Logger) *Model {
	return &Model{
		session:  sess,
		logger:   logger,
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case refreshMsg:
		if m.session.Mode().Screen != model.ScreenPractice {
			m.refreshing = false
			return m, nil
		}
		return m, refreshTick()
	case decayMsg:
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, newKeyMap(m.session.Translations()).ForceQuit) {
		return m, tea.Quit
	}
	for _, k := range translateKey(msg) {
		before := m.session.Mode()
		drill := m.session.Stats()
		if !m.session.HandleInput(k) {
			m.logf("quit requested")
			return m, tea.Quit
		}
		m.logTransition(before, k, drill)
	}

	cmds := []tea.Cmd{decayTick()}
	if m.session.Mode().Screen == model.ScreenPractice && !m.refreshing {
		m.refreshing = true
		cmds = append(cmds, refreshTick())
	}
	return m, tea.Batch(cmds...)
}

// logTransition records drill start, finish and abort in the debug log.
func (m *Model) logTransition(before model.Mode, k model.Key, drill stats.Tracker) {
	after := m.session.Mode()
	if before == after {
		return
	}
	switch {
	case after.Screen == model.ScreenPractice:
		m.logf("drill started: %s, %s exercises", after.Category, m.session.ExerciseCount())
	case before.Screen == model.ScreenPractice && k.Code == model.KeyEsc:
		m.logf("drill aborted: %s, %d correct, %d errors", before.Category, drill.Correct, drill.Errors)
	case before.Screen == model.ScreenPractice:
		st := m.session.Stats()
		m.logf("drill finished: %s, %d exercises, %.1f%% accuracy, %.1f wpm",
			before.Category, m.session.ExercisesCompleted(), st.Accuracy(), m.session.WPM())
	}
}

func (m *Model) logf(format string, args ...any) {
	if m.logger == nil {
		return
	}
	m.logger.Printf(format, args...)
}

func refreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return refreshMsg{} })
}

func decayTick() tea.Cmd {
	return tea.Tick(model.HighlightWindow+10*time.Millisecond, func(time.Time) tea.Msg { return decayMsg{} })
}
