package engine

import "unicode"

// The validator is consulted before any transformation is committed and
// when deciding whether a plain letter still extends the syllable in
// progress. It never errors; every check is a boolean.

// chNhVowels are the nucleus endings that tolerate a ch or nh coda.
var chNhVowels = map[rune]bool{
	'a': true, 'e': true, 'ê': true, 'i': true, 'y': true,
}

// viableStructure reports whether the parsed runes form a syllable in
// progress: onset, nucleus and coda in order, each a recognized cluster
// or on its way to one. Spelling constraints are deliberately not
// checked here; a spelling violation is still a sequence of letters the
// user typed, it just must never be transformed.
func viableStructure(s syllable) bool {
	if !s.ok {
		return false
	}
	if len(s.nucleus) == 0 {
		if len(s.coda) > 0 {
			return false
		}
		return len(s.onset) == 0 || onsetMayGrow(s.onsetKey())
	}
	if len(s.onset) > 0 && !validOnsets[s.onsetKey()] {
		return false
	}
	key := s.nucleusKey()
	info, known := lookupNucleus(key)
	if len(s.coda) == 0 {
		return known || nucleusMayGrow(key)
	}
	if !known || info.coda == codaNone {
		return false
	}
	coda := s.codaKey()
	if !validCodas[coda] {
		return false
	}
	if coda == "ch" || coda == "nh" {
		last := unicode.ToLower(s.nucleus[len(s.nucleus)-1])
		if !chNhVowels[last] {
			return false
		}
	}
	return true
}

// spellingOK enforces the orthographic constraints on the onset/nucleus
// joint: c and ng never precede front vowels (k and ngh do), g never
// precedes e or ê (gh does; gi is its own onset), and q only occurs
// as qu.
func spellingOK(s syllable) bool {
	if len(s.onset) == 0 || len(s.nucleus) == 0 {
		if s.onsetKey() == "q" {
			return false
		}
		return true
	}
	first := unicode.ToLower(s.nucleus[0])
	front := first == 'e' || first == 'ê' || first == 'i'
	switch s.onsetKey() {
	case "c", "ng":
		if front {
			return false
		}
	case "g":
		if first == 'e' || first == 'ê' {
			return false
		}
	case "q":
		return false
	}
	return true
}

// candidateOK is the gate every pipeline candidate passes before it is
// committed: a viable structure, a resolvable nucleus, and clean
// spelling. Prefixes of longer syllables pass; sequences the engine
// would have to disown do not.
func candidateOK(s syllable) bool {
	if !viableStructure(s) || !spellingOK(s) {
		return false
	}
	if len(s.nucleus) > 0 {
		if _, known := lookupNucleus(s.nucleusKey()); !known {
			return false
		}
	}
	return true
}
