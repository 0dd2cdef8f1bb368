// Package i18n provides the display strings for each supported language.
package i18n

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultLang is used for unknown language codes.
const DefaultLang = "en"

//go:embed translations.yaml
var translationsYAML []byte

// rotation is the settings-screen language cycle.
var rotation = []string{"en", "es", "ja"}

// Translations holds every label rendered by the UI.
type Translations struct {
	// Code is the language code this set was loaded for.
	Code string `yaml:"-"`

	LanguageName     string `yaml:"language_name"`
	MainMenu         string `yaml:"main_menu"`
	WordsCommands    string `yaml:"words_commands"`
	SentencePractice string `yaml:"sentence_practice"`
	RealCodeTest     string `yaml:"real_code_test"`
	Settings         string `yaml:"settings"`
	About            string `yaml:"about"`
	AboutText        string `yaml:"about_text"`
	KeyboardLayout   string `yaml:"keyboard_layout"`
	Language         string `yaml:"language"`

	SimpleWords     string `yaml:"simple_words"`
	VimCommands     string `yaml:"vim_commands"`
	WordsByLanguage string `yaml:"words_by_language"`
	CustomKeymaps   string `yaml:"custom_keymaps"`
	SentencesNormal string `yaml:"sentences_normal"`
	SentencesDvorak string `yaml:"sentences_dvorak"`
	SentencesQwerty string `yaml:"sentences_qwerty"`
	Lua             string `yaml:"lua"`
	Ruby            string `yaml:"ruby"`
	Typescript      string `yaml:"typescript"`
	Rust            string `yaml:"rust"`
	Python          string `yaml:"python"`

	SelectCount string `yaml:"select_count"`
	Practice    string `yaml:"practice"`
	Target      string `yaml:"target"`
	Typed       string `yaml:"typed"`
	Exercise    string `yaml:"exercise"`

	Statistics string `yaml:"statistics"`
	Correct    string `yaml:"correct"`
	Errors     string `yaml:"errors"`
	Accuracy   string `yaml:"accuracy"`
	WPM        string `yaml:"wpm"`
	Layout     string `yaml:"layout"`
	WeakKeys   string `yaml:"weak_keys"`
	Trend      string `yaml:"trend"`

	Keyboard string `yaml:"keyboard"`
	Shift    string `yaml:"shift"`
	Ctrl     string `yaml:"ctrl"`
	Alt      string `yaml:"alt"`

	HelpMove    string `yaml:"help_move"`
	HelpSelect  string `yaml:"help_select"`
	HelpBack    string `yaml:"help_back"`
	HelpQuit    string `yaml:"help_quit"`
	HelpToggle  string `yaml:"help_toggle"`
	HelpKeymaps string `yaml:"help_keymaps"`
	HelpAbort   string `yaml:"help_abort"`
	HelpErase   string `yaml:"help_erase"`
}

var table map[string]Translations

func init() {
	parsed, err := parseTable(translationsYAML)
	if err != nil {
		panic(err)
	}
	table = parsed
}

func parseTable(data []byte) (map[string]Translations, error) {
	var raw map[string]Translations
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode translations: %w", err)
	}
	if _, ok := raw[DefaultLang]; !ok {
		return nil, fmt.Errorf("translations missing default language %q", DefaultLang)
	}
	for code, tr := range raw {
		tr.Code = code
		raw[code] = tr
	}
	return raw, nil
}

// Load returns the translations for code, falling back to DefaultLang.
func Load(code string) Translations {
	if tr, ok := table[code]; ok {
		return tr
	}
	return table[DefaultLang]
}

// Next returns the language after code in the settings rotation.
// Codes outside the rotation restart it at DefaultLang.
func Next(code string) string {
	for i, c := range rotation {
		if c == code {
			return rotation[(i+1)%len(rotation)]
		}
	}
	return DefaultLang
}

// Languages lists the codes in rotation order.
func Languages() []string {
	return append([]string(nil), rotation...)
}
