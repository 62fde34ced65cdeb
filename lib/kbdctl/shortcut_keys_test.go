package kbdctl

import "testing"

type keyboard struct {
	down        map[Key]bool
	shouldClose bool
}

func (k *keyboard) KeyDown(key Key) bool {
	return k.down[key]
}

func (k *keyboard) SetShouldClose(value bool) {
	k.shouldClose = value
}

func TestEscapeRequestsClose(t *testing.T) {
	kb := &keyboard{down: map[Key]bool{KeyEscape: true}}
	if !ProcessInput(kb) {
		t.Error("escape should be handled")
	}
	if !kb.shouldClose {
		t.Error("window should be asked to close")
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	kb := &keyboard{down: map[Key]bool{Key(81): true}}
	if ProcessInput(kb) {
		t.Error("only escape is bound")
	}
	if kb.shouldClose {
		t.Error("window should stay open")
	}
}
