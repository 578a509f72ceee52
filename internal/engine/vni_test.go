package engine

import "testing"

func TestVNIMethod_ToneKey(t *testing.T) {
	vni := NewVNIMethod()

	tests := []struct {
		char rune
		tone Tone
		ok   bool
	}{
		{'1', ToneSac, true},
		{'2', ToneHuyen, true},
		{'3', ToneHoi, true},
		{'4', ToneNga, true},
		{'5', ToneNang, true},
		{'0', ToneNone, true}, // removes the tone
		{'6', ToneNone, false},
		{'s', ToneNone, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.char), func(t *testing.T) {
			tone, ok := vni.ToneKey(tt.char)
			if ok != tt.ok || tone != tt.tone {
				t.Errorf("ToneKey(%c) = (%v, %v), want (%v, %v)", tt.char, tone, ok, tt.tone, tt.ok)
			}
		})
	}
}

func TestVNIMethod_MarkKey(t *testing.T) {
	vni := NewVNIMethod()

	for _, tt := range []struct {
		char rune
		ok   bool
	}{
		{'6', true}, {'7', true}, {'8', true},
		{'9', false}, {'1', false}, {'w', false},
	} {
		if _, ok := vni.MarkKey(tt.char); ok != tt.ok {
			t.Errorf("MarkKey(%c) = %v, want %v", tt.char, ok, tt.ok)
		}
	}

	if !vni.StrokeKey('9') || vni.StrokeKey('d') {
		t.Error("StrokeKey should accept 9 only")
	}
	if vni.BareW('w') {
		t.Error("VNI has no bare-w trigger")
	}
}

func TestVNIWords(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// Tones.
		{"a1", "á"},
		{"a2", "à"},
		{"a3", "ả"},
		{"a4", "ã"},
		{"a5", "ạ"},
		{"a10", "a"},

		// Vowel marks and the stroke.
		{"a6", "â"},
		{"e6", "ê"},
		{"o6", "ô"},
		{"o7", "ơ"},
		{"u7", "ư"},
		{"a8", "ă"},
		{"d9", "đ"},
		{"uo7", "ươ"},

		// Double-key reverts.
		{"a66", "a6"},
		{"a88", "a8"},
		{"d99", "d9"},
		{"a11", "a1"},
		{"uo77", "uo7"},

		// Real words.
		{"viet65", "việt"},
		{"tuyen61", "tuyến"},
		{"truong72", "trường"},
		{"nguoi72", "người"},
		{"hoa2", "hoà"},
		{"quy1", "quý"},
		{"d9o6c5", "độc"},

		// Digits with no target pass through and end the word.
		{"15", "15"},
		{"b9", "b9"},

		// Case preservation.
		{"A1", "Á"},
		{"Viet65", "Việt"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ty := newTypist(t, MethodVNI)
			ty.typeString(tt.input)
			if got := ty.text(); got != tt.want {
				t.Errorf("typing %q = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
