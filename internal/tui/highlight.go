package tui

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

const codeStyleName = "monokai"

// syntaxStyles returns one pending style per rune of code, coloured by the
// lexer for lang. It returns nil when the language is unknown.
func syntaxStyles(lang, code string) []lipgloss.Style {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return nil
	}
	lexer = chroma.Coalesce(lexer)
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil
	}
	theme := styles.Get(codeStyleName)

	total := len([]rune(code))
	out := make([]lipgloss.Style, 0, total)
	for _, token := range iterator.Tokens() {
		style := pendingStyle
		if entry := theme.Get(token.Type); entry.Colour.IsSet() {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(entry.Colour.String()))
		}
		for range []rune(token.Value) {
			if len(out) == total {
				return out
			}
			out = append(out, style)
		}
	}
	for len(out) < total {
		out = append(out, pendingStyle)
	}
	return out
}
