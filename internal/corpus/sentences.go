package corpus

var sentencesNormal = []string{
	"The quick brown fox jumps over the lazy dog.",
	"Practice makes progress, not perfection.",
	"A journey of a thousand miles begins with a single step.",
	"Every keystroke builds the memory your fingers need.",
	"Slow is smooth and smooth is fast.",
	"She sells sea shells by the sea shore.",
	"Typing well is a habit you earn one line at a time.",
}

// Sentences dense in each layout's home row.
var sentencesDvorak = []string{
	"The hut stood on a hidden site near the south dunes.",
	"Anne used the oven to heat the stone tea set.",
	"He noted that it is a toasted onion tie.",
	"Sid hesitates; the audit shows unsent notes.",
	"Don the hat, then shout it out to the state.",
	"Ethan sees a dense suite of tidy houses.",
}

var sentencesQwerty = []string{
	"A sad lad asks dad for a glass flask.",
	"Jake had a fall as he dashed past the hall.",
	"All lads shall ask for fresh salads.",
	"Dad adds a dash of salsa as a gag.",
	"Sara has a gold flag and a glass jar.",
	"Half the flasks had salt, Klaus said.",
}
