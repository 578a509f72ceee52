// Package engine implements the core Vietnamese input method engine.
package engine

// Action tells the host what to do with the key event that produced a Result.
type Action uint8

const (
	// ActionNone passes the original key event through unchanged.
	ActionNone Action = iota
	// ActionSend deletes Backspace characters, then types Chars.
	ActionSend
	// ActionRestore is a Send that restores previously visible text.
	ActionRestore
)

// Method selects the trigger scheme for diacritics.
type Method uint8

const (
	MethodTelex Method = iota
	MethodVNI
)

// Tone represents Vietnamese tone marks.
type Tone int

const (
	ToneNone  Tone = iota // No tone (thanh ngang)
	ToneSac               // Sắc (á)
	ToneHuyen             // Huyền (à)
	ToneHoi               // Hỏi (ả)
	ToneNga               // Ngã (ã)
	ToneNang              // Nặng (ạ)
)

// Mark represents Vietnamese letter modifications.
type Mark int

const (
	MarkNone  Mark = iota
	MarkHat        // Circumflex (â, ê, ô)
	MarkBreve      // Breve (ă)
	MarkHorn       // Horn (ơ, ư)
	MarkDBar       // Stroke (đ)
)

// MaxSyllable bounds the visible syllable and every edit the result
// struct can carry.
const MaxSyllable = 31

// Result is the edit instruction for a single key event.
type Result struct {
	Action    Action
	Backspace int    // characters the host deletes before inserting
	Chars     []rune // characters to type after the deletes
}

// InputMethod defines the trigger maps of a typing scheme.
type InputMethod interface {
	// Name returns the name of the input method (e.g., "Telex", "VNI").
	Name() string

	// ToneKey reports whether r triggers a tone, and which one.
	// ToneNone with ok=true is an explicit tone removal.
	ToneKey(r rune) (Tone, bool)

	// MarkKey reports whether r triggers a vowel mark. The returned map
	// gives, per lowercase base vowel, the mark r places on it.
	MarkKey(r rune) (map[rune]Mark, bool)

	// StrokeKey reports whether r triggers the đ stroke.
	StrokeKey(r rune) bool

	// BareW reports whether a bare r becomes ư outside vowel context.
	BareW(r rune) bool
}
