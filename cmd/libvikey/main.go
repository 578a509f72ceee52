// The libvikey binary builds as a C shared library (or archive) and
// exports the engine behind a stable C ABI. Hosts intercept keyboard
// events, feed each keystroke to ime_key_ext, and apply the returned
// edit (delete backspace characters, then type count scalars).
package main

/*
#include <stdint.h>
#include <stdbool.h>
#include <stdlib.h>

typedef struct {
	uint32_t chars[32];
	uint8_t  action;
	uint8_t  backspace;
	uint8_t  count;
	uint8_t  reserved;
} ImeResult;
*/
import "C"

import (
	"unsafe"

	"github.com/username/vikey/internal/engine"
	"github.com/username/vikey/internal/ffi"
)

// newResult copies an engine decision into a heap struct the host owns
// until it calls ime_free.
func newResult(res engine.Result) *C.ImeResult {
	p := (*C.ImeResult)(C.calloc(1, C.sizeof_ImeResult))
	if p == nil {
		return nil
	}
	p.action = C.uint8_t(res.Action)
	p.backspace = C.uint8_t(res.Backspace)
	n := len(res.Chars)
	if n > len(p.chars) {
		n = len(p.chars)
	}
	for i := 0; i < n; i++ {
		p.chars[i] = C.uint32_t(res.Chars[i])
	}
	p.count = C.uint8_t(n)
	return p
}

//export ime_init
func ime_init() {
	ffi.Init()
}

//export ime_key_ext
func ime_key_ext(keycode C.uint16_t, caps, ctrl, shift C.bool) *C.ImeResult {
	return newResult(ffi.KeyExt(uint16(keycode), bool(caps), bool(ctrl), bool(shift)))
}

//export ime_key
func ime_key(keycode C.uint16_t, caps, ctrl C.bool) *C.ImeResult {
	return newResult(ffi.Key(uint16(keycode), bool(caps), bool(ctrl)))
}

//export ime_method
func ime_method(m C.uint8_t) {
	ffi.SetMethod(uint8(m))
}

//export ime_enabled
func ime_enabled(on C.bool) {
	ffi.SetEnabled(bool(on))
}

//export ime_modern
func ime_modern(on C.bool) {
	ffi.SetModernTone(bool(on))
}

//export ime_esc_restore
func ime_esc_restore(on C.bool) {
	ffi.SetEscRestore(bool(on))
}

//export ime_clear
func ime_clear() {
	ffi.Clear()
}

//export ime_shortcut
func ime_shortcut(trigger, expansion *C.char, priority C.int32_t) {
	if trigger == nil || expansion == nil {
		return
	}
	ffi.AddShortcut(C.GoString(trigger), C.GoString(expansion), int(priority))
}

//export ime_shortcuts_clear
func ime_shortcuts_clear() {
	ffi.ClearShortcuts()
}

//export ime_free
func ime_free(p *C.ImeResult) {
	if p != nil {
		C.free(unsafe.Pointer(p))
	}
}

func main() {}
