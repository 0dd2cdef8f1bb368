// Package corpus provides the read-only exercise lists keyed by category.
package corpus

import (
	"slices"

	"github.com/verte-zerg/dvorakdrill/internal/model"
)

// Registry maps exercise categories to ordered candidate lists.
type Registry struct {
	lists map[model.Category][]string
}

// New builds a registry from the given lists. The lists are copied.
func New(lists map[model.Category][]string) *Registry {
	r := &Registry{lists: make(map[model.Category][]string, len(lists))}
	for cat, list := range lists {
		r.lists[cat] = slices.Clone(list)
	}
	return r
}

// Default returns the built-in corpora with the given custom keymap list.
func Default(custom []string) *Registry {
	return New(map[model.Category][]string{
		model.CategoryWordsSimple:     simpleWords,
		model.CategoryVimCommands:     vimCommands,
		model.CategoryWordsLua:        luaWords,
		model.CategoryWordsRuby:       rubyWords,
		model.CategoryWordsTypescript: typescriptWords,
		model.CategoryWordsRust:       rustWords,
		model.CategoryWordsPython:     pythonWords,
		model.CategorySentencesNormal: sentencesNormal,
		model.CategorySentencesDvorak: sentencesDvorak,
		model.CategorySentencesQwerty: sentencesQwerty,
		model.CategoryCodeLua:         luaCode,
		model.CategoryCodeRuby:        rubyCode,
		model.CategoryCodeTypescript:  typescriptCode,
		model.CategoryCodeRust:        rustCode,
		model.CategoryCodePython:      pythonCode,
		model.CategoryCustomKeymaps:   custom,
	})
}

// Lookup returns the candidates for a category. Unknown categories yield nil.
func (r *Registry) Lookup(cat model.Category) []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.lists[cat])
}
