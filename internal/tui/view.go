package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/dvorakdrill/internal/keyboard"
	"github.com/verte-zerg/dvorakdrill/internal/model"
	"github.com/verte-zerg/dvorakdrill/internal/stats"
)

const weakKeyCount = 5

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = pendingStyle.Copy().Underline(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3FB950"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6E6E6E")).
			Padding(0, 1)
)

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	if width == 0 {
		width = 100
	}
	// Borders and padding take four columns per panel.
	leftWidth := max(width*60/100-4, 10)
	rightWidth := max(width-leftWidth-8, 10)

	left := panelStyle.Width(leftWidth).Render(m.renderMain(leftWidth))
	right := panelStyle.Width(rightWidth).Render(m.renderStats())
	top := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	board := panelStyle.Width(max(width-4, 10)).Render(m.renderKeyboard())
	footer := footerStyle.Render(m.help.ShortHelpView(newKeyMap(m.session.Translations()).bindingsFor(m.session.Mode().Screen)))
	return lipgloss.JoinVertical(lipgloss.Left, top, board, footer)
}

func (m *Model) renderMain(width int) string {
	tr := m.session.Translations()
	mode := m.session.Mode()
	switch mode.Screen {
	case model.ScreenMenu:
		return titleStyle.Render(tr.MainMenu) + "\n\n" + renderList([]string{
			tr.WordsCommands, tr.SentencePractice, tr.RealCodeTest, tr.Settings, tr.About,
		}, m.session.MenuSelected())
	case model.ScreenSettings:
		return titleStyle.Render(tr.Settings) + "\n\n" + m.renderSubmenu([]string{
			fmt.Sprintf("%s: %s", tr.KeyboardLayout, m.session.Layout().Name()),
			fmt.Sprintf("%s: %s", tr.Language, tr.LanguageName),
		})
	case model.ScreenAbout:
		return titleStyle.Render(tr.About) + "\n\n" + lipgloss.NewStyle().Width(width).Render(tr.AboutText)
	case model.ScreenWordsCommandsMenu:
		return titleStyle.Render(tr.WordsCommands) + "\n\n" +
			m.renderSubmenu([]string{tr.SimpleWords, tr.VimCommands, tr.WordsByLanguage}) +
			"\n\n" + labelStyle.Render(fmt.Sprintf("[k] %s (%d)", tr.CustomKeymaps, len(m.session.CustomKeymaps())))
	case model.ScreenWordsMenu:
		return titleStyle.Render(tr.WordsByLanguage) + "\n\n" + m.renderSubmenu(m.languageLabels())
	case model.ScreenSentencesMenu:
		return titleStyle.Render(tr.SentencePractice) + "\n\n" + m.renderSubmenu([]string{
			tr.SentencesNormal, tr.SentencesDvorak, tr.SentencesQwerty,
		})
	case model.ScreenCodeTestMenu:
		return titleStyle.Render(tr.RealCodeTest) + "\n\n" + m.renderSubmenu(m.languageLabels())
	case model.ScreenCountSelection:
		labels := make([]string, len(model.ExerciseCounts))
		for i, c := range model.ExerciseCounts {
			labels[i] = c.String()
		}
		return titleStyle.Render(tr.SelectCount) + "\n\n" + renderList(labels, m.session.CountSelected())
	case model.ScreenPractice:
		return m.renderPractice(width)
	default:
		return ""
	}
}

func (m *Model) languageLabels() []string {
	tr := m.session.Translations()
	return []string{tr.Lua, tr.Ruby, tr.Typescript, tr.Rust, tr.Python}
}

// renderSubmenu lists the labels the session can select on this screen.
func (m *Model) renderSubmenu(labels []string) string {
	if n := m.session.SubmenuItems(); n < len(labels) {
		labels = labels[:n]
	}
	return renderList(labels, m.session.SubmenuSelected())
}

func renderList(items []string, selected int) string {
	lines := make([]string, len(items))
	for i, item := range items {
		if i == selected {
			lines[i] = selectedStyle.Render("> " + item)
			continue
		}
		lines[i] = "  " + item
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderPractice(width int) string {
	tr := m.session.Translations()
	header := titleStyle.Render(tr.Practice)
	completed := m.session.ExercisesCompleted()
	limit, finite := m.session.ExerciseCount().Limit()
	if finite {
		header += labelStyle.Render(fmt.Sprintf("  %s %d/%d", tr.Exercise, completed+1, limit))
	} else {
		header += labelStyle.Render(fmt.Sprintf("  %s %d", tr.Exercise, completed+1))
	}

	target := []rune(m.session.TargetText())
	typedLen := len([]rune(m.session.TypedText()))
	cursor := m.session.CurrentKeyIndex()
	if cursor >= len(target) {
		cursor = -1
	}
	styled := buildStyledRunes(target, typedLen, cursor, m.pendingStyles(m.session.TargetText()))
	body := wrapStyledRunes(styled, width)

	typed := labelStyle.Render(tr.Typed+": ") + correctStyle.Render(m.session.TypedText())
	parts := []string{header, "", labelStyle.Render(tr.Target + ":"), body, "", typed}
	if finite {
		m.progress.Width = width
		parts = append(parts, "", m.progress.ViewAs(float64(completed)/float64(limit)))
	}
	return strings.Join(parts, "\n")
}

// pendingStyles returns syntax colours for code drills, cached per target.
func (m *Model) pendingStyles(target string) []lipgloss.Style {
	lang, ok := m.session.Mode().Category.CodeLanguage()
	if !ok {
		return nil
	}
	if target != m.syntaxTarget {
		m.syntaxTarget = target
		m.syntax = syntaxStyles(lang, target)
	}
	return m.syntax
}

func (m *Model) renderStats() string {
	tr := m.session.Translations()
	st := m.session.Stats()
	weak := stats.SelectWeakChars(st.Tallies(), weakKeyCount)
	weakLabels := make([]string, len(weak))
	for i, r := range weak {
		weakLabels[i] = string(displayGlyph(r))
	}

	rows := []string{
		titleStyle.Render(tr.Statistics),
		"",
		statRow(tr.Correct, fmt.Sprintf("%d", st.Correct)),
		statRow(tr.Errors, fmt.Sprintf("%d", st.Errors)),
		statRow(tr.Accuracy, fmt.Sprintf("%.1f%%", m.session.Accuracy())),
		statRow(tr.WPM, fmt.Sprintf("%.1f", m.session.WPM())),
		statRow(tr.Layout, m.session.Layout().Name()),
		statRow(tr.WeakKeys, strings.Join(weakLabels, " ")),
		statRow(tr.Trend, st.Trend()),
	}
	return strings.Join(rows, "\n")
}

func statRow(label, value string) string {
	return labelStyle.Render(label+": ") + value
}

func (m *Model) renderKeyboard() string {
	tr := m.session.Translations()
	mods := m.session.Modifiers()
	title := fmt.Sprintf("%s: %s", tr.Keyboard, m.session.Layout().Name())
	for _, mod := range []struct {
		bit   model.Modifiers
		label string
	}{
		{model.ModShift, tr.Shift},
		{model.ModCtrl, tr.Ctrl},
		{model.ModAlt, tr.Alt},
	} {
		if mods.Has(mod.bit) {
			title += " [" + mod.label + "]"
		}
	}
	pressed, _ := m.session.ActiveKey()
	return titleStyle.Render(title) + "\n" + keyboard.Render(m.session.Layout(), mods.Has(model.ModShift), pressed)
}
