package engine

import "unicode"

// vowelSeries lists every Vietnamese vowel base with its five toned forms,
// indexed by Tone. Bases include the marked vowels; case is significant.
var vowelSeries = map[rune][6]rune{
	'a': {'a', 'á', 'à', 'ả', 'ã', 'ạ'},
	'A': {'A', 'Á', 'À', 'Ả', 'Ã', 'Ạ'},
	'ă': {'ă', 'ắ', 'ằ', 'ẳ', 'ẵ', 'ặ'},
	'Ă': {'Ă', 'Ắ', 'Ằ', 'Ẳ', 'Ẵ', 'Ặ'},
	'â': {'â', 'ấ', 'ầ', 'ẩ', 'ẫ', 'ậ'},
	'Â': {'Â', 'Ấ', 'Ầ', 'Ẩ', 'Ẫ', 'Ậ'},
	'e': {'e', 'é', 'è', 'ẻ', 'ẽ', 'ẹ'},
	'E': {'E', 'É', 'È', 'Ẻ', 'Ẽ', 'Ẹ'},
	'ê': {'ê', 'ế', 'ề', 'ể', 'ễ', 'ệ'},
	'Ê': {'Ê', 'Ế', 'Ề', 'Ể', 'Ễ', 'Ệ'},
	'i': {'i', 'í', 'ì', 'ỉ', 'ĩ', 'ị'},
	'I': {'I', 'Í', 'Ì', 'Ỉ', 'Ĩ', 'Ị'},
	'o': {'o', 'ó', 'ò', 'ỏ', 'õ', 'ọ'},
	'O': {'O', 'Ó', 'Ò', 'Ỏ', 'Õ', 'Ọ'},
	'ô': {'ô', 'ố', 'ồ', 'ổ', 'ỗ', 'ộ'},
	'Ô': {'Ô', 'Ố', 'Ồ', 'Ổ', 'Ỗ', 'Ộ'},
	'ơ': {'ơ', 'ớ', 'ờ', 'ở', 'ỡ', 'ợ'},
	'Ơ': {'Ơ', 'Ớ', 'Ờ', 'Ở', 'Ỡ', 'Ợ'},
	'u': {'u', 'ú', 'ù', 'ủ', 'ũ', 'ụ'},
	'U': {'U', 'Ú', 'Ù', 'Ủ', 'Ũ', 'Ụ'},
	'ư': {'ư', 'ứ', 'ừ', 'ử', 'ữ', 'ự'},
	'Ư': {'Ư', 'Ứ', 'Ừ', 'Ử', 'Ữ', 'Ự'},
	'y': {'y', 'ý', 'ỳ', 'ỷ', 'ỹ', 'ỵ'},
	'Y': {'Y', 'Ý', 'Ỳ', 'Ỷ', 'Ỹ', 'Ỵ'},
}

// markTable maps a plain letter to its marked forms.
var markTable = map[rune]map[Mark]rune{
	'a': {MarkBreve: 'ă', MarkHat: 'â'},
	'A': {MarkBreve: 'Ă', MarkHat: 'Â'},
	'e': {MarkHat: 'ê'},
	'E': {MarkHat: 'Ê'},
	'o': {MarkHat: 'ô', MarkHorn: 'ơ'},
	'O': {MarkHat: 'Ô', MarkHorn: 'Ơ'},
	'u': {MarkHorn: 'ư'},
	'U': {MarkHorn: 'Ư'},
	'd': {MarkDBar: 'đ'},
	'D': {MarkDBar: 'Đ'},
}

type markedEntry struct {
	base rune
	mark Mark
}

// Reverse lookups built from the tables above.
var (
	toneEntries map[rune]struct {
		base rune
		tone Tone
	}
	markEntries map[rune]markedEntry
)

func init() {
	toneEntries = make(map[rune]struct {
		base rune
		tone Tone
	})
	for base, series := range vowelSeries {
		for t, r := range series {
			toneEntries[r] = struct {
				base rune
				tone Tone
			}{base, Tone(t)}
		}
	}
	markEntries = make(map[rune]markedEntry)
	for base, marks := range markTable {
		for m, r := range marks {
			markEntries[r] = markedEntry{base, m}
		}
	}
}

// toneOf splits r into its toneless base and the tone it carries.
func toneOf(r rune) (rune, Tone) {
	if e, ok := toneEntries[r]; ok {
		return e.base, e.tone
	}
	return r, ToneNone
}

// applyTone returns the form of r carrying tone t. Runes outside the
// vowel series come back unchanged.
func applyTone(r rune, t Tone) rune {
	base, _ := toneOf(r)
	if series, ok := vowelSeries[base]; ok {
		return series[t]
	}
	return r
}

// markOf returns the mark r carries, tone ignored.
func markOf(r rune) Mark {
	base, _ := toneOf(r)
	if e, ok := markEntries[base]; ok {
		return e.mark
	}
	return MarkNone
}

// stripMark returns the plain letter under r's mark, tone ignored.
func stripMark(r rune) rune {
	base, _ := toneOf(r)
	if e, ok := markEntries[base]; ok {
		return e.base
	}
	return base
}

// setMark places mark m on r, replacing any existing mark and keeping
// r's case. The second return is false when the base cannot take m.
func setMark(r rune, m Mark) (rune, bool) {
	plain := stripMark(r)
	marks, ok := markTable[plain]
	if !ok {
		return r, false
	}
	out, ok := marks[m]
	if !ok {
		return r, false
	}
	return out, true
}

// isVowel reports whether r is a Vietnamese vowel in any toned or
// marked form.
func isVowel(r rune) bool {
	switch unicode.ToLower(stripMark(r)) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// isConsonant reports whether r can appear in an onset or coda.
func isConsonant(r rune) bool {
	switch unicode.ToLower(r) {
	case 'b', 'c', 'd', 'đ', 'g', 'h', 'k', 'l', 'm', 'n',
		'p', 'q', 'r', 's', 't', 'v', 'x':
		return true
	}
	return false
}
