package main

import "testing"

func TestKeyboardTranslatesAndLatches(t *testing.T) {
	k := NewKeyboard()
	var p PPI
	p.Reset()

	k.PushKeyEvent(KeyA, true)
	Pump(k, &p)
	if p.a != 0x1e {
		t.Fatalf("ppi.a=%#x after scancode push+pump, want 0x1e", p.a)
	}
	if !p.KIBFSet() {
		t.Errorf("KIBF not set after pump")
	}

	val := p.ReadPortA()
	if val != 0x1e {
		t.Errorf("ReadPortA()=%#x, want 0x1e", val)
	}
	if p.KIBFSet() {
		t.Errorf("KIBF still set after ReadPortA")
	}
}

func TestKeyboardReleaseBit(t *testing.T) {
	k := NewKeyboard()
	k.PushKeyEvent(KeyA, false)
	if got := k.Pop(); got != 0x1e|keyReleaseBit {
		t.Errorf("release code=%#x, want %#x", got, 0x1e|keyReleaseBit)
	}
}

func TestKeyboardDoesNotLatchWhenIBFFull(t *testing.T) {
	k := NewKeyboard()
	var p PPI
	p.Reset()
	p.SetKIBF()
	k.PushRaw(0x42)
	Pump(k, &p)
	if p.a == 0x42 {
		t.Errorf("keyboard latched into port A while KIBF was set")
	}
	if !k.Pending() {
		t.Errorf("scancode was popped despite KIBF blocking the pump")
	}
}

func TestF5DuplicatesF3(t *testing.T) {
	if scancodeTable[KeyF5] != scancodeTable[KeyF3] {
		t.Errorf("F5=%#x, F3=%#x: F5 should duplicate F3", scancodeTable[KeyF5], scancodeTable[KeyF3])
	}
}
