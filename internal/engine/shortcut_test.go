package engine

import "testing"

func TestShortcutTable_Lookup(t *testing.T) {
	tbl := NewShortcutTable()
	tbl.Add("vn", "Việt Nam", 0)
	tbl.Add("hn", "Hà Nội", 0)
	tbl.Add("vn", "Vietnam", 5)
	tbl.Add("", "never", 9)

	if exp, ok := tbl.Lookup("vn"); !ok || exp != "Vietnam" {
		t.Errorf("Lookup(vn) = (%q, %v), want the higher priority record", exp, ok)
	}
	if exp, ok := tbl.Lookup("hn"); !ok || exp != "Hà Nội" {
		t.Errorf("Lookup(hn) = (%q, %v)", exp, ok)
	}
	if _, ok := tbl.Lookup("VN"); ok {
		t.Error("lookup must be case-sensitive")
	}
	if _, ok := tbl.Lookup("xyz"); ok {
		t.Error("unknown trigger matched")
	}
	if _, ok := tbl.Lookup(""); ok {
		t.Error("empty trigger matched")
	}

	tbl.Clear()
	if tbl.Len() != 0 {
		t.Errorf("Len after Clear = %d", tbl.Len())
	}
}

func TestShortcutTable_InsertionOrderBreaksTies(t *testing.T) {
	tbl := NewShortcutTable()
	tbl.Add("br", "first", 1)
	tbl.Add("br", "second", 1)
	if exp, _ := tbl.Lookup("br"); exp != "first" {
		t.Errorf("Lookup(br) = %q, want the earlier record", exp)
	}
}

func TestEngine_ShortcutAtPunctuation(t *testing.T) {
	ty := newTypist(t, MethodTelex)
	ty.e.AddShortcut("hn", "Hà Nội", 0)
	ty.typeString("hn,")
	if ty.text() != "Hà Nội," {
		t.Fatalf("visible text = %q", ty.text())
	}
}

func TestEngine_ShortcutTriggerMatchesRawKeys(t *testing.T) {
	// The trigger is what the user typed, even when the engine
	// transformed it on screen.
	ty := newTypist(t, MethodTelex)
	ty.e.AddShortcut("dd", "đồng", 0)
	ty.typeString("dd ")
	if ty.text() != "đồng " {
		t.Fatalf("visible text = %q", ty.text())
	}
}

func TestEngine_NoShortcutMidSyllable(t *testing.T) {
	ty := newTypist(t, MethodTelex)
	ty.e.AddShortcut("vn", "Việt Nam", 0)
	ty.typeString("vna ")
	if ty.text() != "vna " {
		t.Fatalf("visible text = %q", ty.text())
	}
}

func TestEngine_ClearShortcuts(t *testing.T) {
	ty := newTypist(t, MethodTelex)
	ty.e.AddShortcut("vn", "Việt Nam", 0)
	ty.e.ClearShortcuts()
	ty.typeString("vn ")
	if ty.text() != "vn " {
		t.Fatalf("visible text = %q", ty.text())
	}
}
