package engine

import "unicode"

// Engine is one typing session: it shadows the syllable visible at the
// caret and decides, key by key, which edit the host must apply. All
// methods are synchronous and never block; serialization across host
// threads is the caller's concern.
type Engine struct {
	method     Method
	im         InputMethod
	enabled    bool
	modern     bool
	escRestore bool
	buf        sessionBuffer
	shortcuts  *ShortcutTable
}

// New creates an engine with Telex input and modern tone placement.
func New() *Engine {
	return &Engine{
		method:    MethodTelex,
		im:        NewTelexMethod(),
		enabled:   true,
		modern:    true,
		shortcuts: NewShortcutTable(),
	}
}

// SetMethod switches the trigger scheme and resets the session.
// Values outside the known methods are ignored.
func (e *Engine) SetMethod(m Method) {
	switch m {
	case MethodTelex:
		e.im = NewTelexMethod()
	case MethodVNI:
		e.im = NewVNIMethod()
	default:
		return
	}
	e.method = m
	e.buf.clear()
}

// Method returns the active trigger scheme.
func (e *Engine) Method() Method {
	return e.method
}

// SetEnabled toggles pass-through mode. Any flip resets the session.
func (e *Engine) SetEnabled(on bool) {
	if on == e.enabled {
		return
	}
	e.enabled = on
	e.buf.clear()
}

// Enabled reports whether keys are being processed.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// SetModernTone selects modern (hoà) or traditional (hòa) tone
// placement. A change of style resets the session.
func (e *Engine) SetModernTone(on bool) {
	if on == e.modern {
		return
	}
	e.modern = on
	e.buf.clear()
}

// SetEscRestore controls whether Escape restores the raw keystrokes of
// the word in progress.
func (e *Engine) SetEscRestore(on bool) {
	e.escRestore = on
}

// AddShortcut registers an abbreviation expanded at word boundaries.
func (e *Engine) AddShortcut(trigger, expansion string, priority int) {
	e.shortcuts.Add(trigger, expansion, priority)
}

// ClearShortcuts drops every registered abbreviation.
func (e *Engine) ClearShortcuts() {
	e.shortcuts.Clear()
}

// Clear resets the session buffer and the undo record.
func (e *Engine) Clear() {
	e.buf.clear()
}

// ProcessKey decides the edit for one key event.
func (e *Engine) ProcessKey(keycode uint16, caps, ctrl, shift bool) Result {
	if !e.enabled {
		return Result{}
	}
	if ctrl {
		// App shortcuts belong to the host.
		e.buf.clear()
		return Result{}
	}
	kind, ch := classifyKey(keycode, caps, shift)
	switch kind {
	case keyLetter:
		return e.handleTrigger(ch)
	case keyDigit:
		if e.method == MethodVNI {
			return e.handleTrigger(ch)
		}
		return e.boundary(ch)
	case keySymbol, keySeparator:
		return e.boundary(ch)
	case keyNavigation:
		return e.handleNavigation(keycode)
	default:
		e.buf.clear()
		return Result{}
	}
}

// handleTrigger runs the transformation pipeline for a letter (or, in
// VNI, a digit). Stages are tried in order; a stage whose candidate
// fails validation is skipped, and when every stage skips the key is
// appended literally.
func (e *Engine) handleTrigger(ch rune) Result {
	prev := e.buf.snapshot()
	s := parseSyllable(prev)

	// Stroke: đ from a plain d onset.
	if e.im.StrokeKey(ch) && s.ok && len(s.onset) > 0 && unicode.ToLower(s.onset[0]) == 'd' {
		onset := append([]rune(nil), s.onset...)
		if r, ok := setMark(onset[0], MarkDBar); ok {
			cand := s
			cand.onset = onset
			cand.onset[0] = r
			if res, ok := e.tryCommit(prev, cand, ch); ok {
				return res
			}
		}
	}

	// Tone mark.
	if tone, ok := e.im.ToneKey(ch); ok && s.ok && len(s.nucleus) > 0 && s.tone != tone {
		if _, known := lookupNucleus(s.nucleusKey()); known {
			cand := s
			cand.tone = tone
			if res, ok := e.tryCommit(prev, cand, ch); ok {
				return res
			}
		}
	}

	// Vowel mark.
	if targets, ok := e.im.MarkKey(ch); ok && s.ok && len(s.nucleus) > 0 {
		if nuc, changed := applyMark(s.nucleus, targets); changed {
			cand := s
			cand.nucleus = nuc
			if res, ok := e.tryCommit(prev, cand, ch); ok {
				return res
			}
		}
	}

	// Revert: the same trigger twice undoes its transformation and
	// keeps the key as a literal.
	if e.buf.undo.valid && unicode.ToLower(ch) == unicode.ToLower(e.buf.undo.trigger) {
		next := append(append([]rune(nil), e.buf.undo.before...), ch)
		if len(next) <= MaxSyllable {
			res := buildResult(ActionSend, prev, next)
			e.buf.set(next)
			e.buf.dropUndo()
			e.buf.pushRaw(ch)
			e.buf.wordLen += len(res.Chars) - res.Backspace
			e.buf.changed = true
			return res
		}
	}

	// Bare w outside vowel context becomes ư.
	if e.im.BareW(ch) && s.ok && len(s.nucleus) == 0 {
		u := 'ư'
		if unicode.IsUpper(ch) {
			u = 'Ư'
		}
		next := append(append([]rune(nil), prev...), u)
		if len(next) <= MaxSyllable && candidateOK(parseSyllable(next)) {
			res := buildResult(ActionSend, prev, next)
			e.buf.set(next)
			e.buf.snapshotUndo(ch, prev)
			e.buf.pushRaw(ch)
			e.buf.wordLen += len(res.Chars) - res.Backspace
			e.buf.changed = true
			return res
		}
	}

	// Normal letter.
	if unicode.IsLetter(ch) {
		return e.appendLiteral(prev, ch)
	}
	// A trigger that neither transformed nor is a letter ends the word.
	return e.boundary(ch)
}

// tryCommit composes a candidate syllable, validates it, and commits
// the edit when it holds up.
func (e *Engine) tryCommit(prev []rune, cand syllable, trigger rune) (Result, bool) {
	next := cand.compose(e.modern)
	if len(next) > MaxSyllable {
		return Result{}, false
	}
	if !candidateOK(parseSyllable(next)) {
		return Result{}, false
	}
	res := buildResult(ActionSend, prev, next)
	if res.Action == ActionNone {
		return Result{}, false
	}
	e.buf.set(next)
	e.buf.snapshotUndo(trigger, prev)
	e.buf.pushRaw(trigger)
	e.buf.wordLen += len(res.Chars) - res.Backspace
	e.buf.changed = true
	return res, true
}

// appendLiteral adds ch to the syllable. A letter that no longer fits
// the syllable structure starts a new one. The key passes through,
// except when it moves an already placed tone: then the Send carries
// the letter along with the moved tone.
func (e *Engine) appendLiteral(prev []rune, ch rune) Result {
	if len(prev) >= MaxSyllable {
		e.buf.halve()
		e.buf.chars = append(e.buf.chars, ch)
		return Result{}
	}
	next := append(append([]rune(nil), prev...), ch)
	ns := parseSyllable(next)
	if !viableStructure(ns) {
		e.buf.newSyllable(ch)
		e.buf.pushRaw(ch)
		e.buf.wordLen++
		return Result{}
	}
	e.buf.dropUndo()
	e.buf.pushRaw(ch)
	e.buf.wordLen++
	// A new letter can move an already placed tone mark.
	if ns.tone != ToneNone {
		re := ns.compose(e.modern)
		if string(re) != string(next) {
			e.buf.set(re)
			res := buildResult(ActionSend, prev, re)
			e.buf.wordLen += len(res.Chars) - res.Backspace - 1
			e.buf.changed = true
			return res
		}
	}
	e.buf.set(next)
	return Result{}
}

// applyMark places the trigger's mark on the most recent eligible
// vowel. A uo pair anywhere in the cluster takes the horn together (ươ).
func applyMark(nucleus []rune, targets map[rune]Mark) ([]rune, bool) {
	n := append([]rune(nil), nucleus...)
	k := len(n) - 1
	if targets['o'] == MarkHorn {
		// A uo pair anywhere in the cluster takes the horn together.
		for i := k - 1; i >= 0; i-- {
			u := unicode.ToLower(stripMark(n[i]))
			o := unicode.ToLower(stripMark(n[i+1]))
			if u != 'u' || o != 'o' {
				continue
			}
			if markOf(n[i]) == MarkHorn && markOf(n[i+1]) == MarkHorn {
				break
			}
			if r, ok := setMark(n[i], MarkHorn); ok {
				n[i] = r
			}
			if r, ok := setMark(n[i+1], MarkHorn); ok {
				n[i+1] = r
			}
			return n, true
		}
	}
	for i := k; i >= 0; i-- {
		base := unicode.ToLower(stripMark(n[i]))
		m, ok := targets[base]
		if !ok {
			continue
		}
		if markOf(n[i]) == m {
			// Already carries this mark; the revert stage owns it.
			return nil, false
		}
		if r, ok := setMark(n[i], m); ok {
			n[i] = r
			return n, true
		}
		return nil, false
	}
	return nil, false
}

// boundary closes the word: the separator passes through, and a
// completed shortcut trigger expands in its place. Triggers are
// matched against the raw keys the user typed, case-sensitively.
func (e *Engine) boundary(sep rune) Result {
	raw := string(e.buf.raw)
	wordLen := e.buf.wordLen
	rawDead := e.buf.rawDead
	e.buf.clear()
	if raw == "" || rawDead || wordLen > MaxSyllable {
		return Result{}
	}
	if exp, ok := e.shortcuts.Lookup(raw); ok {
		out := []rune(exp)
		if sep != 0 {
			out = append(out, sep)
		}
		if len(out) <= MaxSyllable {
			return Result{Action: ActionSend, Backspace: wordLen, Chars: out}
		}
	}
	return Result{}
}

// handleNavigation clears the session. With esc-restore on, Escape
// additionally puts the raw keystrokes back in place of the
// transformed word.
func (e *Engine) handleNavigation(keycode uint16) Result {
	raw := append([]rune(nil), e.buf.raw...)
	wordLen := e.buf.wordLen
	rawDead := e.buf.rawDead
	plain := !e.buf.changed
	e.buf.clear()
	if keycode != vkEscape || !e.escRestore || rawDead || plain {
		return Result{}
	}
	if len(raw) == 0 || len(raw) > MaxSyllable || wordLen > MaxSyllable {
		return Result{}
	}
	return Result{Action: ActionRestore, Backspace: wordLen, Chars: raw}
}

// buildResult computes the smallest prefix-preserving edit from prev
// to next.
func buildResult(action Action, prev, next []rune) Result {
	l := 0
	for l < len(prev) && l < len(next) && prev[l] == next[l] {
		l++
	}
	if l == len(prev) && l == len(next) {
		return Result{}
	}
	return Result{
		Action:    action,
		Backspace: len(prev) - l,
		Chars:     append([]rune(nil), next[l:]...),
	}
}
