package engine

import "testing"

func TestTelexMethod_ToneKey(t *testing.T) {
	telex := NewTelexMethod()

	tests := []struct {
		char rune
		tone Tone
		ok   bool
	}{
		{'s', ToneSac, true},
		{'f', ToneHuyen, true},
		{'r', ToneHoi, true},
		{'x', ToneNga, true},
		{'j', ToneNang, true},
		{'z', ToneNone, true}, // removes the tone
		{'S', ToneSac, true},  // uppercase also works
		{'a', ToneNone, false},
		{'1', ToneNone, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.char), func(t *testing.T) {
			tone, ok := telex.ToneKey(tt.char)
			if ok != tt.ok || tone != tt.tone {
				t.Errorf("ToneKey(%c) = (%v, %v), want (%v, %v)", tt.char, tone, ok, tt.tone, tt.ok)
			}
		})
	}
}

func TestTelexMethod_MarkKey(t *testing.T) {
	telex := NewTelexMethod()

	for _, tt := range []struct {
		char rune
		ok   bool
	}{
		{'a', true}, {'e', true}, {'o', true}, {'w', true},
		{'W', true}, {'d', false}, {'s', false}, {'b', false},
	} {
		if _, ok := telex.MarkKey(tt.char); ok != tt.ok {
			t.Errorf("MarkKey(%c) = %v, want %v", tt.char, ok, tt.ok)
		}
	}

	if !telex.StrokeKey('d') || !telex.StrokeKey('D') || telex.StrokeKey('9') {
		t.Error("StrokeKey should accept d/D only")
	}
	if !telex.BareW('w') || telex.BareW('u') {
		t.Error("BareW should accept w only")
	}
}

// Full words typed with Telex, checked against the visible text after
// every edit has been applied.
func TestTelexWords(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// Tones on a single vowel.
		{"as", "á"},
		{"af", "à"},
		{"ar", "ả"},
		{"ax", "ã"},
		{"aj", "ạ"},
		{"asz", "a"},
		{"asf", "à"}, // a later tone replaces the first

		// Vowel marks.
		{"aa", "â"},
		{"ee", "ê"},
		{"oo", "ô"},
		{"aw", "ă"},
		{"ow", "ơ"},
		{"uw", "ư"},
		{"w", "ư"},
		{"dd", "đ"},
		{"uow", "ươ"},

		// Double-key reverts.
		{"aaa", "aa"},
		{"eee", "ee"},
		{"ooo", "oo"},
		{"aww", "aw"},
		{"ww", "w"},
		{"ddd", "dd"},
		{"uoww", "uow"},
		{"ass", "as"},

		// Real words.
		{"vieejt", "việt"},
		{"ddoocj", "độc"},
		{"ddejp", "đẹp"},
		{"truowngf", "trường"},
		{"nguowif", "người"},
		{"nguoiwf", "người"},
		{"tieengs", "tiếng"},
		{"khoer", "khoẻ"},
		{"tuyf", "tuỳ"},
		{"quas", "quá"},
		{"quyx", "quỹ"},
		{"giof", "giò"},
		{"gif", "gì"},
		{"muaf", "mùa"},
		{"chaof", "chào"},
		{"thuw", "thư"},
		{"hoaf", "hoà"},
		{"hoafn", "hoàn"},
		{"hoanf", "hoàn"},
		{"tuyeens", "tuyến"},

		// Case preservation.
		{"AS", "Á"},
		{"Vieejt", "Việt"},
		{"DD", "Đ"},
		{"W", "Ư"},

		// Words with no transformation.
		{"ban", "ban"},
		{"xinh", "xinh"},
		{"ce", "ce"},
		{"cef", "cef"}, // spelling rule blocks the tone
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ty := newTypist(t, MethodTelex)
			ty.typeString(tt.input)
			if got := ty.text(); got != tt.want {
				t.Errorf("typing %q = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Every Telex transformation reverts when its trigger is typed again.
func TestTelexDoubleKeyRevertRoundTrip(t *testing.T) {
	pairs := []struct {
		prefix  string
		trigger rune
	}{
		{"a", 's'}, {"a", 'f'}, {"a", 'r'}, {"a", 'x'}, {"a", 'j'},
		{"a", 'a'}, {"e", 'e'}, {"o", 'o'}, {"a", 'w'}, {"o", 'w'},
		{"u", 'w'}, {"d", 'd'}, {"uo", 'w'},
	}
	for _, tt := range pairs {
		ty := newTypist(t, MethodTelex)
		ty.typeString(tt.prefix)
		before := ty.text()
		res := ty.press(tt.trigger)
		if res.Action != ActionSend {
			t.Errorf("%q+%q: trigger did not transform", tt.prefix, tt.trigger)
			continue
		}
		ty.press(tt.trigger)
		if got := ty.text(); got != before+string(tt.trigger) {
			t.Errorf("%q+%q%q: visible %q, want %q", tt.prefix, tt.trigger, tt.trigger, got, before+string(tt.trigger))
		}
	}
}
