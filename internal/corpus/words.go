package corpus

var simpleWords = []string{
	"the", "and", "that", "have", "for", "not", "with", "you", "this", "but",
	"his", "from", "they", "say", "her", "she", "will", "one", "all", "would",
	"there", "their", "what", "out", "about", "who", "get", "which", "when", "make",
	"can", "like", "time", "just", "him", "know", "take", "people", "into", "year",
	"your", "good", "some", "could", "them", "see", "other", "than", "then", "now",
	"look", "only", "come", "its", "over", "think", "also", "back", "after", "use",
	"two", "how", "our", "work", "first", "well", "way", "even", "new", "want",
}

var vimCommands = []string{
	"dd", "yy", "p", "P", "u", "ciw", "diw", "yiw", "ci\"", "da(",
	"gg", "G", "0", "$", "^", "w", "b", "e", "x", "r",
	":w", ":q", ":wq", ":q!", "/search", "n", "N", "*", "#", "%",
	"o", "O", "A", "I", "v", "V", "zz", "gd", "gf", ">>",
	"<<", ".", "dt)", "ct,", "f;", "t.", "vi{", "ya[", "=G", "gUiw",
}

var luaWords = []string{
	"function", "local", "end", "if", "then", "else", "elseif", "for", "while", "do", "repeat",
	"until", "return", "break", "nil", "true", "false", "and", "or", "not", "require", "pairs",
	"ipairs", "table", "string", "math", "print", "type",
}

var rubyWords = []string{
	"def", "end", "class", "module", "if", "elsif", "else", "unless", "case", "when",
	"while", "until", "for", "in", "do", "begin", "rescue", "ensure", "raise", "return",
	"yield", "self", "nil", "true", "false", "attr_reader", "attr_accessor", "require",
	"puts", "each", "map", "select", "lambda", "proc",
}

var typescriptWords = []string{
	"const", "let", "var", "function", "return", "if", "else", "for", "while", "switch",
	"case", "break", "continue", "interface", "type", "enum", "class", "extends", "implements",
	"import", "export", "from", "async", "await", "new", "this", "null", "undefined",
	"readonly", "private", "public", "protected", "string", "number", "boolean",
}

var rustWords = []string{
	"fn", "let", "mut", "const", "static", "struct", "enum", "impl", "trait", "pub", "use",
	"mod", "crate", "if", "else", "match", "loop", "while", "for", "in", "return", "break",
	"continue", "as", "type", "where", "async", "await", "move",
}

var pythonWords = []string{
	"def", "class", "if", "elif", "else", "for", "while", "break", "continue", "return",
	"yield", "import", "from", "as", "try", "except", "finally", "raise", "with", "lambda",
	"pass", "assert", "global", "nonlocal", "del", "True", "False", "None",
}
