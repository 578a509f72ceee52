package engine

// undoRecord remembers the buffer as it was before the most recent
// transformation, keyed by the key that triggered it. Typing that key
// again restores the recorded text.
type undoRecord struct {
	valid   bool
	trigger rune
	before  []rune
}

// sessionBuffer shadows the characters visible at the caret for the
// syllable in progress, together with the raw keys typed since the
// last word boundary. A letter that starts a new syllable resets chars
// but not raw or wordLen: those live until the word ends.
type sessionBuffer struct {
	chars   []rune // visible runes of the current syllable
	raw     []rune // keys typed since the last word boundary
	rawDead bool   // raw shadow lost to an overflow
	wordLen int    // visible runes since the last word boundary
	changed bool   // a transformation landed in this word
	undo    undoRecord
}

// set replaces the visible runes after a committed transformation.
func (b *sessionBuffer) set(chars []rune) {
	b.chars = chars
}

// pushRaw records a typed key. When the raw shadow overflows it is
// abandoned for the rest of the word.
func (b *sessionBuffer) pushRaw(ch rune) {
	if b.rawDead {
		return
	}
	if len(b.raw) >= MaxSyllable {
		b.raw = nil
		b.rawDead = true
		return
	}
	b.raw = append(b.raw, ch)
}

// snapshotUndo records the pre-transformation state for trigger.
func (b *sessionBuffer) snapshotUndo(trigger rune, before []rune) {
	b.undo = undoRecord{valid: true, trigger: trigger, before: before}
}

// dropUndo forgets the revert window.
func (b *sessionBuffer) dropUndo() {
	b.undo = undoRecord{}
}

// clear empties the buffer, the raw shadow and the undo record.
func (b *sessionBuffer) clear() {
	b.chars = nil
	b.raw = nil
	b.rawDead = false
	b.wordLen = 0
	b.changed = false
	b.undo = undoRecord{}
}

// newSyllable starts a fresh syllable mid-word: ch ended the previous
// one and is its first rune. The raw shadow and visible count persist.
func (b *sessionBuffer) newSyllable(ch rune) {
	b.chars = []rune{ch}
	b.undo = undoRecord{}
}

// halve drops the oldest half of the buffer. Best-effort recovery for
// unbounded input with no word boundary; the raw shadow cannot survive
// it.
func (b *sessionBuffer) halve() {
	half := len(b.chars) / 2
	b.chars = append([]rune(nil), b.chars[half:]...)
	b.raw = nil
	b.rawDead = true
	b.undo = undoRecord{}
}

// snapshot returns a copy of the visible runes.
func (b *sessionBuffer) snapshot() []rune {
	return append([]rune(nil), b.chars...)
}
