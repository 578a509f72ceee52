package engine

import "testing"

func TestClassifyKey(t *testing.T) {
	tests := []struct {
		name    string
		keycode uint16
		caps    bool
		shift   bool
		kind    keyKind
		ch      rune
	}{
		{"letter", vkA, false, false, keyLetter, 'a'},
		{"letter caps", vkA, true, false, keyLetter, 'A'},
		{"letter shift", vkA, false, true, keyLetter, 'A'},
		{"letter caps+shift", vkA, true, true, keyLetter, 'A'},
		{"digit", vk7, false, false, keyDigit, '7'},
		{"digit shift", vk7, false, true, keySymbol, '&'},
		{"digit caps", vk7, true, false, keyDigit, '7'}, // caps never shifts symbols
		{"space", vkSpace, false, false, keySeparator, ' '},
		{"return", vkReturn, false, false, keySeparator, 0},
		{"tab", vkTab, false, false, keySeparator, 0},
		{"comma", vkComma, false, false, keySeparator, ','},
		{"comma shift", vkComma, false, true, keySeparator, '<'},
		{"escape", vkEscape, false, false, keyNavigation, 0},
		{"backspace", vkBackspace, false, false, keyNavigation, 0},
		{"arrow", vkLeft, false, false, keyNavigation, 0},
		{"unknown", 0x0200, false, false, keyUnknown, 0},
		{"modifier-only", 59, false, false, keyUnknown, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ch := classifyKey(tt.keycode, tt.caps, tt.shift)
			if kind != tt.kind || ch != tt.ch {
				t.Errorf("classifyKey(%d, caps=%v, shift=%v) = (%v, %q), want (%v, %q)",
					tt.keycode, tt.caps, tt.shift, kind, ch, tt.kind, tt.ch)
			}
		})
	}
}
