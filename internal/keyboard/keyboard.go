// Package keyboard carries the physical key-adjacency tables that the
// Insertion and Replacement fuzzers use to model fat-finger typos on three
// common layouts.
package keyboard

// Layout maps a lowercase letter or digit to the string of keys that sit
// physically next to it on a given layout.
type Layout map[byte]string

// QWERTY is the standard US layout.
var QWERTY = Layout{
	'1': "2q", '2': "3wq1", '3': "4ew2", '4': "5re3", '5': "6tr4",
	'6': "7yt5", '7': "8uy6", '8': "9iu7", '9': "0oi8", '0': "po9",
	'q': "12wa", 'w': "3esaq2", 'e': "4rdsw3", 'r': "5tfde4", 't': "6ygfr5",
	'y': "7uhgt6", 'u': "8ijhy7", 'i': "9okju8", 'o': "0plki9", 'p': "lo0",
	'a': "qwsz", 's': "edxzaw", 'd': "rfcxse", 'f': "tgvcdr", 'g': "yhbvft",
	'h': "ujnbgy", 'j': "ikmnhu", 'k': "olmji", 'l': "kop",
	'z': "asx", 'x': "zsdc", 'c': "xdfv", 'v': "cfgb", 'b': "vghn",
	'n': "bhjm", 'm': "njk",
}

// QWERTZ is the common central-European layout (y/z swapped relative to
// QWERTY).
var QWERTZ = Layout{
	'1': "2q", '2': "3wq1", '3': "4ew2", '4': "5re3", '5': "6tr4",
	'6': "7zt5", '7': "8uz6", '8': "9iu7", '9': "0oi8", '0': "po9",
	'q': "12wa", 'w': "3esaq2", 'e': "4rdsw3", 'r': "5tfde4", 't': "6zgfr5",
	'z': "7uhgt6", 'u': "8ijhz7", 'i': "9okju8", 'o': "0plki9", 'p': "lo0",
	'a': "qwsy", 's': "edxyaw", 'd': "rfcxse", 'f': "tgvcdr", 'g': "zhbvft",
	'h': "ujnbgz", 'j': "ikmnhu", 'k': "olmji", 'l': "kop",
	'y': "asx", 'x': "ysdc", 'c': "xdfv", 'v': "cfgb", 'b': "vghn",
	'n': "bhjm", 'm': "njk",
}

// AZERTY is the common French layout.
var AZERTY = Layout{
	'1': "2a", '2': "3za1", '3': "4ez2", '4': "5re3", '5': "6tr4",
	'6': "7yt5", '7': "8uy6", '8': "9iu7", '9': "0oi8", '0': "po9",
	'a': "2zq1", 'z': "3esqa2", 'e': "4rdsz3", 'r': "5tfde4", 't': "6ygfr5",
	'y': "7uhgt6", 'u': "8ijhy7", 'i': "9okju8", 'o': "0plki9", 'p': "lo0m",
	'q': "zswa", 's': "edxwqz", 'd': "rfcxse", 'f': "tgvcdr", 'g': "yhbvft",
	'h': "ujnbgy", 'j': "iknhu", 'k': "olji", 'l': "kopm", 'm': "lp",
	'w': "sxq", 'x': "wsdc", 'c': "xdfv", 'v': "cfgb", 'b': "vghn",
	'n': "bhj",
}

// Layouts enumerates every layout the Insertion and Replacement fuzzers
// walk, in a fixed order so results are reproducible across runs.
var Layouts = []Layout{QWERTY, QWERTZ, AZERTY}

// Neighbors returns the adjacency string for c on this layout, and whether
// c has an entry at all.
func (l Layout) Neighbors(c byte) (string, bool) {
	n, ok := l[c]
	return n, ok
}
