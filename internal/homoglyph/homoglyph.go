// Package homoglyph carries the table of visually-confusable Unicode
// sequences the Homoglyph fuzzer substitutes for ASCII letters. Several
// entries are multi-character (e.g. "b" -> "lb"), which is why the table
// maps to a list of strings rather than a list of runes.
package homoglyph

// Table maps an ASCII letter to the glyphs that can stand in for it.
var Table = map[byte][]string{
	'a': {"à", "á", "â", "ã", "ä", "å", "ɑ", "ạ", "ǎ", "ă", "ȧ", "ą", "а"},
	'b': {"d", "lb", "ʙ", "ɓ", "ḃ", "ḅ", "ḇ", "ƅ"},
	'c': {"e", "ƈ", "ċ", "ć", "ç", "č", "ĉ", "с"},
	'd': {"b", "cl", "dl", "ɗ", "đ", "ď", "ɖ", "ḑ", "ḋ", "ḍ", "ḏ", "ḓ"},
	'e': {"c", "é", "è", "ê", "ë", "ē", "ĕ", "ě", "ė", "ẹ", "ę", "ȩ", "ɇ", "ḛ", "е"},
	'f': {"ƒ", "ḟ"},
	'g': {"q", "ɢ", "ɡ", "ġ", "ğ", "ǵ", "ģ", "ĝ", "ǧ", "ǥ"},
	'h': {"lh", "ĥ", "ȟ", "ħ", "ɦ", "ḧ", "ḩ", "ⱨ", "ḣ", "ḥ", "ḫ", "ẖ"},
	'i': {"1", "l", "í", "ì", "ï", "ı", "ɩ", "ǐ", "ĭ", "ỉ", "ị", "ɨ", "ȋ", "ī", "і"},
	'j': {"ʝ", "ɉ", "ј"},
	'k': {"lk", "ik", "lc", "ḳ", "ḵ", "ⱪ", "ķ"},
	'l': {"1", "i", "ɫ", "ł"},
	'm': {"n", "nn", "rn", "rr", "ṁ", "ṃ", "ᴍ", "ɱ", "ḿ", "м"},
	'n': {"m", "r", "ń", "ṅ", "ṇ", "ṉ", "ñ", "ņ", "ǹ", "ň", "ꞑ", "п"},
	'o': {"0", "ȯ", "ọ", "ỏ", "ơ", "ó", "ö", "о", "ο"},
	'p': {"ƿ", "ƥ", "ṕ", "ṗ", "р"},
	'q': {"g", "ʠ"},
	'r': {"ʀ", "ɼ", "ɽ", "ŕ", "ŗ", "ř", "ɍ", "ɾ", "ȓ", "ȑ", "ṙ", "ṛ", "ṟ"},
	's': {"ʂ", "ś", "ṣ", "ṡ", "ș", "ŝ", "š", "ѕ"},
	't': {"ţ", "ŧ", "ṫ", "ṭ", "ț", "ƫ", "т"},
	'u': {"ᴜ", "ǔ", "ŭ", "ü", "ʉ", "ù", "ú", "û", "ũ", "ū", "ų", "ư", "ů", "ű", "ȕ", "ȗ", "ụ", "υ"},
	'v': {"ṿ", "ⱱ", "ᶌ", "ṽ", "ⱴ", "ѵ"},
	'w': {"vv", "ŵ", "ẁ", "ẃ", "ẅ", "ⱳ", "ẇ", "ẉ", "ẘ"},
	'x': {"х"},
	'y': {"ʏ", "ý", "ÿ", "ŷ", "ƴ", "ȳ", "ɏ", "ỿ", "ẏ", "ỵ", "у"},
	'z': {"ʐ", "ż", "ź", "ᴢ", "ƶ", "ẓ", "ẕ", "ⱬ"},
}
