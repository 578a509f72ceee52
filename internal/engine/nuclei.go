package engine

import (
	"strings"
	"unicode"
)

// codaClass says whether a vowel nucleus tolerates a final consonant.
type codaClass int

const (
	codaAny      codaClass = iota // open or closed
	codaNone                      // open syllables only
	codaRequired                  // closed syllables only
)

// nucleusInfo describes one recognized vowel cluster. tone is the index
// of the vowel that carries the tone mark under the modern placement
// style; openTrad overrides it for open syllables under the traditional
// style (-1 when the styles agree).
type nucleusInfo struct {
	tone     int
	openTrad int
	coda     codaClass
}

// nucleusTable keys are lowercase clusters with vowel marks kept and
// tones stripped. This table drives tone placement, nucleus recognition,
// and coda compatibility.
var nucleusTable = map[string]nucleusInfo{
	// Single vowels.
	"a": {0, -1, codaAny},
	"ă": {0, -1, codaRequired},
	"â": {0, -1, codaRequired},
	"e": {0, -1, codaAny},
	"ê": {0, -1, codaAny},
	"i": {0, -1, codaAny},
	"o": {0, -1, codaAny},
	"ô": {0, -1, codaAny},
	"ơ": {0, -1, codaAny},
	"u": {0, -1, codaAny},
	"ư": {0, -1, codaAny},
	"y": {0, -1, codaNone},

	// Two-vowel clusters.
	"ai": {0, -1, codaNone},
	"ao": {0, -1, codaNone},
	"au": {0, -1, codaNone},
	"ay": {0, -1, codaNone},
	"âu": {0, -1, codaNone},
	"ây": {0, -1, codaNone},
	"eo": {0, -1, codaNone},
	"êu": {0, -1, codaNone},
	"ia": {0, -1, codaNone},
	"iê": {1, -1, codaRequired},
	"iu": {0, -1, codaNone},
	"oa": {1, 0, codaAny},
	"oă": {1, -1, codaRequired},
	"oe": {1, 0, codaAny},
	"oi": {0, -1, codaNone},
	"oo": {1, -1, codaRequired},
	"ôi": {0, -1, codaNone},
	"ơi": {0, -1, codaNone},
	"ua": {0, -1, codaNone},
	"uâ": {1, -1, codaRequired},
	"uê": {1, -1, codaAny},
	"ui": {0, -1, codaNone},
	"uô": {1, -1, codaRequired},
	"uơ": {1, -1, codaNone},
	"uy": {1, 0, codaAny},
	"ưa": {0, -1, codaNone},
	"ưi": {0, -1, codaNone},
	"ưu": {0, -1, codaNone},
	"ươ": {1, -1, codaRequired},
	"ya": {0, -1, codaNone},
	"yê": {1, -1, codaRequired},

	// Three-vowel clusters.
	"iêu": {1, -1, codaNone},
	"oai": {1, -1, codaNone},
	"oao": {1, -1, codaNone},
	"oay": {1, -1, codaNone},
	"oeo": {1, -1, codaNone},
	"uây": {1, -1, codaNone},
	"uôi": {1, -1, codaNone},
	"uya": {1, -1, codaNone},
	"uyê": {2, -1, codaRequired},
	"uyu": {1, -1, codaNone},
	"ươi": {1, -1, codaNone},
	"ươu": {1, -1, codaNone},
	"yêu": {1, -1, codaNone},
}

// validOnsets are the recognized initial consonant clusters. The u of
// qu and the i of gi are folded into the onset by the parser.
var validOnsets = map[string]bool{
	"b": true, "c": true, "ch": true, "d": true, "đ": true,
	"g": true, "gh": true, "gi": true, "h": true, "k": true,
	"kh": true, "l": true, "m": true, "n": true, "ng": true,
	"ngh": true, "nh": true, "p": true, "ph": true, "qu": true,
	"r": true, "s": true, "t": true, "th": true, "tr": true,
	"v": true, "x": true,
}

// validCodas are the recognized final consonant clusters.
var validCodas = map[string]bool{
	"c": true, "ch": true, "m": true, "n": true,
	"ng": true, "nh": true, "p": true, "t": true,
}

// Derived lookups, built once.
var (
	// skeletonTable resolves a mark-stripped cluster ("uo", "uye") to
	// the info of the marked cluster it is on its way to becoming.
	skeletonTable map[string]nucleusInfo
	// nucleusPrefixes holds every proper prefix of every cluster and
	// skeleton, for in-progress syllables.
	nucleusPrefixes map[string]bool
	// onsetPrefixes holds every prefix of every valid onset.
	onsetPrefixes map[string]bool
)

func init() {
	// Raw clusters typed before their marks arrive. Explicit because
	// several marked clusters share a skeleton (uô/uơ/ươ) and the raw
	// form must keep accepting codas while the word is in progress.
	skeletonTable = map[string]nucleusInfo{
		"uo":  {1, -1, codaAny},
		"ie":  {1, -1, codaAny},
		"ye":  {1, -1, codaAny},
		"uye": {2, -1, codaAny},
	}
	nucleusPrefixes = make(map[string]bool)
	for key, info := range nucleusTable {
		skel := stripClusterMarks(key)
		if _, taken := nucleusTable[skel]; !taken {
			if _, dup := skeletonTable[skel]; !dup {
				skeletonTable[skel] = info
			}
		}
		for _, k := range []string{key, skel} {
			runes := []rune(k)
			for i := 1; i < len(runes); i++ {
				nucleusPrefixes[string(runes[:i])] = true
			}
		}
	}
	onsetPrefixes = make(map[string]bool)
	for o := range validOnsets {
		runes := []rune(o)
		for i := 1; i <= len(runes); i++ {
			onsetPrefixes[string(runes[:i])] = true
		}
	}
	// q alone is a prefix of qu.
	onsetPrefixes["q"] = true
}

func stripClusterMarks(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteRune(stripMark(r))
	}
	return b.String()
}

// lookupNucleus resolves a tone-stripped, lowercased cluster, accepting
// clusters whose marks have not been typed yet ("uo" for ươ).
func lookupNucleus(key string) (nucleusInfo, bool) {
	if info, ok := nucleusTable[key]; ok {
		return info, true
	}
	if info, ok := skeletonTable[stripClusterMarks(key)]; ok {
		return info, true
	}
	return nucleusInfo{}, false
}

// nucleusMayGrow reports whether key is a proper prefix of some
// recognized cluster.
func nucleusMayGrow(key string) bool {
	if nucleusPrefixes[key] {
		return true
	}
	return nucleusPrefixes[stripClusterMarks(key)]
}

// onsetMayGrow reports whether the cluster is a prefix of a valid onset.
func onsetMayGrow(onset string) bool {
	return onsetPrefixes[onset]
}

// tonePosition picks the nucleus index that carries the tone mark.
func tonePosition(nucleus []rune, hasCoda, modern bool) int {
	n := len(nucleus)
	if n <= 1 {
		return 0
	}
	key := clusterKey(nucleus)
	if info, ok := lookupNucleus(key); ok {
		idx := info.tone
		if !modern && !hasCoda && info.openTrad >= 0 {
			idx = info.openTrad
		}
		if idx < n {
			return idx
		}
	}
	// Unrecognized cluster: prefer the rightmost marked vowel, then
	// fall back on position.
	for i := n - 1; i >= 0; i-- {
		if markOf(nucleus[i]) != MarkNone {
			return i
		}
	}
	if n >= 3 {
		return 1
	}
	return 0
}

// clusterKey lowercases a tone-stripped nucleus for table lookup.
func clusterKey(nucleus []rune) string {
	var b strings.Builder
	for _, r := range nucleus {
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
