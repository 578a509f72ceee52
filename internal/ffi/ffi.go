// Package ffi owns the process-wide engine singleton that backs the C
// entry points. Hosts call from keyboard-hook, UI and menu threads; a
// single mutex serializes everything.
package ffi

import (
	"sync"

	"github.com/username/vikey/internal/engine"
)

var (
	mu  sync.Mutex
	eng *engine.Engine
)

// Init creates the engine. Idempotent; calls after the first never
// alter state.
func Init() {
	mu.Lock()
	defer mu.Unlock()
	if eng == nil {
		eng = engine.New()
	}
}

// KeyExt processes one key event. Before Init it is a no-op that
// passes the key through.
func KeyExt(keycode uint16, caps, ctrl, shift bool) engine.Result {
	mu.Lock()
	defer mu.Unlock()
	if eng == nil {
		return engine.Result{}
	}
	return eng.ProcessKey(keycode, caps, ctrl, shift)
}

// Key is the legacy entry point; shift is assumed equal to caps.
func Key(keycode uint16, caps, ctrl bool) engine.Result {
	return KeyExt(keycode, caps, ctrl, caps)
}

// SetMethod selects the trigger scheme: 0 Telex, 1 VNI. Other values
// are ignored.
func SetMethod(m uint8) {
	mu.Lock()
	defer mu.Unlock()
	if eng != nil {
		eng.SetMethod(engine.Method(m))
	}
}

// SetEnabled toggles pass-through mode.
func SetEnabled(on bool) {
	mu.Lock()
	defer mu.Unlock()
	if eng != nil {
		eng.SetEnabled(on)
	}
}

// SetModernTone selects the tone placement style.
func SetModernTone(on bool) {
	mu.Lock()
	defer mu.Unlock()
	if eng != nil {
		eng.SetModernTone(on)
	}
}

// SetEscRestore controls raw-keystroke restore on Escape.
func SetEscRestore(on bool) {
	mu.Lock()
	defer mu.Unlock()
	if eng != nil {
		eng.SetEscRestore(on)
	}
}

// Clear resets the session buffer and undo record.
func Clear() {
	mu.Lock()
	defer mu.Unlock()
	if eng != nil {
		eng.Clear()
	}
}

// AddShortcut registers an abbreviation.
func AddShortcut(trigger, expansion string, priority int) {
	mu.Lock()
	defer mu.Unlock()
	if eng != nil {
		eng.AddShortcut(trigger, expansion, priority)
	}
}

// ClearShortcuts drops every abbreviation.
func ClearShortcuts() {
	mu.Lock()
	defer mu.Unlock()
	if eng != nil {
		eng.ClearShortcuts()
	}
}
