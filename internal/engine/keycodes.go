package engine

// Virtual keycodes as delivered by the host shells. These are the
// macOS-style codes all frontends normalize to before calling the core.
const (
	vkA         uint16 = 0
	vkS         uint16 = 1
	vkD         uint16 = 2
	vkF         uint16 = 3
	vkH         uint16 = 4
	vkG         uint16 = 5
	vkZ         uint16 = 6
	vkX         uint16 = 7
	vkC         uint16 = 8
	vkV         uint16 = 9
	vkB         uint16 = 11
	vkQ         uint16 = 12
	vkW         uint16 = 13
	vkE         uint16 = 14
	vkR         uint16 = 15
	vkY         uint16 = 16
	vkT         uint16 = 17
	vk1         uint16 = 18
	vk2         uint16 = 19
	vk3         uint16 = 20
	vk4         uint16 = 21
	vk6         uint16 = 22
	vk5         uint16 = 23
	vkEqual     uint16 = 24
	vk9         uint16 = 25
	vk7         uint16 = 26
	vkMinus     uint16 = 27
	vk8         uint16 = 28
	vk0         uint16 = 29
	vkRBracket  uint16 = 30
	vkO         uint16 = 31
	vkU         uint16 = 32
	vkLBracket  uint16 = 33
	vkI         uint16 = 34
	vkP         uint16 = 35
	vkReturn    uint16 = 36
	vkL         uint16 = 37
	vkJ         uint16 = 38
	vkQuote     uint16 = 39
	vkK         uint16 = 40
	vkSemicolon uint16 = 41
	vkBackslash uint16 = 42
	vkComma     uint16 = 43
	vkSlash     uint16 = 44
	vkN         uint16 = 45
	vkM         uint16 = 46
	vkPeriod    uint16 = 47
	vkTab       uint16 = 48
	vkSpace     uint16 = 49
	vkGrave     uint16 = 50
	vkBackspace uint16 = 51
	vkEscape    uint16 = 53
	vkHome      uint16 = 115
	vkPgUp      uint16 = 116
	vkFwdDelete uint16 = 117
	vkEnd       uint16 = 119
	vkPgDn      uint16 = 121
	vkLeft      uint16 = 123
	vkRight     uint16 = 124
	vkDown      uint16 = 125
	vkUp        uint16 = 126
)

// keyKind is the logical class of a key event.
type keyKind int

const (
	keyLetter keyKind = iota
	keyDigit
	keySymbol
	keySeparator
	keyNavigation
	keyUnknown
)

// keycodeLetters maps virtual codes to the lowercase US-layout letter.
var keycodeLetters = map[uint16]rune{
	vkA: 'a', vkB: 'b', vkC: 'c', vkD: 'd', vkE: 'e', vkF: 'f',
	vkG: 'g', vkH: 'h', vkI: 'i', vkJ: 'j', vkK: 'k', vkL: 'l',
	vkM: 'm', vkN: 'n', vkO: 'o', vkP: 'p', vkQ: 'q', vkR: 'r',
	vkS: 's', vkT: 't', vkU: 'u', vkV: 'v', vkW: 'w', vkX: 'x',
	vkY: 'y', vkZ: 'z',
}

// keycodeDigits maps virtual codes to the digit row.
var keycodeDigits = map[uint16]rune{
	vk0: '0', vk1: '1', vk2: '2', vk3: '3', vk4: '4',
	vk5: '5', vk6: '6', vk7: '7', vk8: '8', vk9: '9',
}

// shiftedDigits is the US layout shifted digit row.
var shiftedDigits = map[rune]rune{
	'1': '!', '2': '@', '3': '#', '4': '$', '5': '%',
	'6': '^', '7': '&', '8': '*', '9': '(', '0': ')',
}

// keycodePunct maps punctuation codes to plain and shifted characters.
var keycodePunct = map[uint16][2]rune{
	vkEqual:     {'=', '+'},
	vkMinus:     {'-', '_'},
	vkRBracket:  {']', '}'},
	vkLBracket:  {'[', '{'},
	vkQuote:     {'\'', '"'},
	vkSemicolon: {';', ':'},
	vkBackslash: {'\\', '|'},
	vkComma:     {',', '<'},
	vkSlash:     {'/', '?'},
	vkPeriod:    {'.', '>'},
	vkGrave:     {'`', '~'},
}

var navigationKeys = map[uint16]bool{
	vkBackspace: true, vkEscape: true, vkFwdDelete: true,
	vkHome: true, vkEnd: true, vkPgUp: true, vkPgDn: true,
	vkLeft: true, vkRight: true, vkDown: true, vkUp: true,
}

// classifyKey resolves a virtual keycode to a logical token. It is total:
// codes it does not know come back as keyUnknown.
func classifyKey(keycode uint16, caps, shift bool) (keyKind, rune) {
	if ch, ok := keycodeLetters[keycode]; ok {
		if caps || shift {
			ch = ch - 'a' + 'A'
		}
		return keyLetter, ch
	}
	if ch, ok := keycodeDigits[keycode]; ok {
		if shift {
			return keySymbol, shiftedDigits[ch]
		}
		return keyDigit, ch
	}
	if pair, ok := keycodePunct[keycode]; ok {
		if shift {
			return keySeparator, pair[1]
		}
		return keySeparator, pair[0]
	}
	switch keycode {
	case vkSpace:
		return keySeparator, ' '
	case vkReturn, vkTab:
		// The host delivers the newline or tab itself.
		return keySeparator, 0
	}
	if navigationKeys[keycode] {
		return keyNavigation, 0
	}
	return keyUnknown, 0
}
