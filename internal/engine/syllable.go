package engine

import "unicode"

// syllable is the parsed view of the visible buffer. Nucleus runes are
// stored with their tone stripped; the tone lives in the tone field and
// is re-placed on compose.
type syllable struct {
	onset   []rune
	nucleus []rune
	coda    []rune
	tone    Tone
	ok      bool // every input rune was consumed
}

// parseSyllable splits the visible runes into onset, nucleus and coda.
// The u of qu and the i of gi are folded into the onset.
func parseSyllable(buf []rune) syllable {
	var s syllable
	runes := make([]rune, len(buf))
	for i, r := range buf {
		base, t := toneOf(r)
		if t != ToneNone {
			s.tone = t
		}
		runes[i] = base
	}

	i, n := 0, len(runes)
	for i < n && isConsonant(runes[i]) {
		s.onset = append(s.onset, runes[i])
		i++
	}
	if len(s.onset) > 0 && i < n {
		last := unicode.ToLower(s.onset[len(s.onset)-1])
		cur := unicode.ToLower(stripMark(runes[i]))
		switch {
		case last == 'q' && cur == 'u':
			// q is always followed by u; the u is part of the onset.
			s.onset = append(s.onset, runes[i])
			i++
		case last == 'g' && cur == 'i' && i+1 < n && isVowel(runes[i+1]):
			// gi before another vowel: the i belongs to the onset.
			s.onset = append(s.onset, runes[i])
			i++
		}
	}
	for i < n && isVowel(runes[i]) {
		s.nucleus = append(s.nucleus, runes[i])
		i++
	}
	for i < n && isConsonant(runes[i]) {
		s.coda = append(s.coda, runes[i])
		i++
	}
	s.ok = i == n
	return s
}

// compose rebuilds the visible runes, placing the tone mark on the
// vowel the cluster table selects.
func (s syllable) compose(modern bool) []rune {
	out := make([]rune, 0, len(s.onset)+len(s.nucleus)+len(s.coda))
	out = append(out, s.onset...)
	if len(s.nucleus) > 0 {
		idx := tonePosition(s.nucleus, len(s.coda) > 0, modern)
		for i, r := range s.nucleus {
			if i == idx {
				r = applyTone(r, s.tone)
			}
			out = append(out, r)
		}
	}
	return append(out, s.coda...)
}

func (s syllable) onsetKey() string {
	return lowerKey(s.onset)
}

func (s syllable) nucleusKey() string {
	return clusterKey(s.nucleus)
}

func (s syllable) codaKey() string {
	return lowerKey(s.coda)
}

func lowerKey(runes []rune) string {
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[i] = unicode.ToLower(r)
	}
	return string(out)
}
