package engine

// VNIMethod implements the VNI input method: digits 1-5 trigger tones
// (0 removes), 6-8 trigger vowel marks, 9 triggers đ.
type VNIMethod struct{}

// NewVNIMethod creates a new VNI input method.
func NewVNIMethod() *VNIMethod {
	return &VNIMethod{}
}

// Name returns the method name.
func (v *VNIMethod) Name() string {
	return "VNI"
}

var vniTones = map[rune]Tone{
	'1': ToneSac,
	'2': ToneHuyen,
	'3': ToneHoi,
	'4': ToneNga,
	'5': ToneNang,
	'0': ToneNone, // remove tone
}

var vniMarks = map[rune]map[rune]Mark{
	'6': {'a': MarkHat, 'e': MarkHat, 'o': MarkHat},
	'7': {'o': MarkHorn, 'u': MarkHorn},
	'8': {'a': MarkBreve},
}

// ToneKey reports the tone triggered by r.
func (v *VNIMethod) ToneKey(r rune) (Tone, bool) {
	tone, ok := vniTones[r]
	return tone, ok
}

// MarkKey reports the vowel marks triggered by r.
func (v *VNIMethod) MarkKey(r rune) (map[rune]Mark, bool) {
	m, ok := vniMarks[r]
	return m, ok
}

// StrokeKey reports whether r triggers đ.
func (v *VNIMethod) StrokeKey(r rune) bool {
	return r == '9'
}

// BareW always reports false; VNI has no standalone vowel trigger.
func (v *VNIMethod) BareW(r rune) bool {
	return false
}
