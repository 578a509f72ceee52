package engine

import "unicode"

// TelexMethod implements the Telex input method: mnemonic letters
// trigger tones (s f r x j, z removes) and vowel marks (aa ee oo for
// the circumflex, w for horn and breve, dd for đ).
type TelexMethod struct{}

// NewTelexMethod creates a new Telex input method.
func NewTelexMethod() *TelexMethod {
	return &TelexMethod{}
}

// Name returns the method name.
func (t *TelexMethod) Name() string {
	return "Telex"
}

var telexTones = map[rune]Tone{
	's': ToneSac,   // á
	'f': ToneHuyen, // à
	'r': ToneHoi,   // ả
	'x': ToneNga,   // ã
	'j': ToneNang,  // ạ
	'z': ToneNone,  // remove tone (thanh ngang)
}

// telexMarks maps each trigger letter to the bases it modifies.
var telexMarks = map[rune]map[rune]Mark{
	'a': {'a': MarkHat},
	'e': {'e': MarkHat},
	'o': {'o': MarkHat},
	'w': {'a': MarkBreve, 'o': MarkHorn, 'u': MarkHorn},
}

// ToneKey reports the tone triggered by r.
func (t *TelexMethod) ToneKey(r rune) (Tone, bool) {
	tone, ok := telexTones[unicode.ToLower(r)]
	return tone, ok
}

// MarkKey reports the vowel marks triggered by r.
func (t *TelexMethod) MarkKey(r rune) (map[rune]Mark, bool) {
	m, ok := telexMarks[unicode.ToLower(r)]
	return m, ok
}

// StrokeKey reports whether r triggers đ (a second d).
func (t *TelexMethod) StrokeKey(r rune) bool {
	return unicode.ToLower(r) == 'd'
}

// BareW reports whether r is the standalone w that becomes ư.
func (t *TelexMethod) BareW(r rune) bool {
	return unicode.ToLower(r) == 'w'
}
