package keyboard

type row struct {
	keys   []string
	widths []int
}

type diagram struct {
	normal  []row
	shifted []row
}

var (
	numberWidths = []int{4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 10}
	topWidths    = []int{7, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 5}
	homeWidths   = []int{8, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 9}
	bottomWidths = []int{11, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 11}
)

// separators sit above each key row; the last one closes the modifier row.
var separators = []string{
	"┌────┬────┬────┬────┬────┬────┬────┬────┬────┬────┬────┬────┬────┬────────┐",
	"├────┴──┬─┴──┬─┴──┬─┴──┬─┴──┬─┴──┬─┴──┬─┴──┬─┴──┬─┴──┬─┴──┬─┴──┬─┴──┬─────┤",
	"├───────┴┬───┴┬───┴┬───┴┬───┴┬───┴┬───┴┬───┴┬───┴┬───┴┬───┴┬───┴┬───┴─────┤",
	"├────────┴──┬─┴──┬─┴──┬─┴──┬─┴──┬─┴──┬─┴──┬─┴──┬─┴──┬─┴──┬─┴──┬─┴─────────┤",
	"├──────┬────┴─┬──┴────┴────┴────┴────┴────┴────┴────┴─┬──┴──┬─┴────┬──────┤",
	"└──────┴──────┴───────────────────────────────────────┴─────┴──────┴──────┘",
}

type modifierKey struct {
	label string
	width int
}

var (
	macModifiers = []modifierKey{
		{"Ctrl", 6}, {"Opt", 6}, {"Space", 39}, {"Cmd", 5}, {"Opt", 6}, {"Ctrl", 6},
	}
	pcModifiers = []modifierKey{
		{"Ctrl", 6}, {"Alt", 6}, {"Space", 39}, {"Alt", 5}, {"Fn", 6}, {"Ctrl", 6},
	}
)

var dvorak = diagram{
	normal: []row{
		{[]string{"`", "$", "&", "[", "{", "}", "(", "=", "*", ")", "+", "]", "!", "⌫"}, numberWidths},
		{[]string{"Tab", ";", ",", ".", "p", "y", "f", "g", "c", "r", "l", "/", "@", "\\"}, topWidths},
		{[]string{"Caps", "a", "o", "e", "u", "i", "d", "h", "t", "n", "s", "-", "Enter"}, homeWidths},
		{[]string{"Shift", "'", "q", "j", "k", "x", "b", "m", "w", "v", "z", "Shift"}, bottomWidths},
	},
	shifted: []row{
		{[]string{"~", "%", "7", "5", "3", "1", "9", "0", "2", "4", "6", "8", "`", "⌫"}, numberWidths},
		{[]string{"Tab", ":", "<", ">", "P", "Y", "F", "G", "C", "R", "L", "?", "^", "|"}, topWidths},
		{[]string{"Caps", "A", "O", "E", "U", "I", "D", "H", "T", "N", "S", "_", "Enter"}, homeWidths},
		{[]string{"Shift", "\"", "Q", "J", "K", "X", "B", "M", "W", "V", "Z", "Shift"}, bottomWidths},
	},
}

var qwerty = diagram{
	normal: []row{
		{[]string{"`", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "=", "⌫"}, numberWidths},
		{[]string{"Tab", "q", "w", "e", "r", "t", "y", "u", "i", "o", "p", "[", "]", "\\"}, topWidths},
		{[]string{"Caps", "a", "s", "d", "f", "g", "h", "j", "k", "l", ";", "'", "Enter"}, homeWidths},
		{[]string{"Shift", "z", "x", "c", "v", "b", "n", "m", ",", ".", "/", "Shift"}, bottomWidths},
	},
	shifted: []row{
		{[]string{"~", "!", "@", "#", "$", "%", "^", "&", "*", "(", ")", "_", "+", "⌫"}, numberWidths},
		{[]string{"Tab", "Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "{", "}", "|"}, topWidths},
		{[]string{"Caps", "A", "S", "D", "F", "G", "H", "J", "K", "L", ":", "\"", "Enter"}, homeWidths},
		{[]string{"Shift", "Z", "X", "C", "V", "B", "N", "M", "<", ">", "?", "Shift"}, bottomWidths},
	},
}
