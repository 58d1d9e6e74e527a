// memory_bus.go - Bank-switched memory map for the pac80 machine.
//
// The CPU's 16-bit address space is split into four 16 KiB banks. Each
// bank is independently mapped to either the fixed 16 KiB ROM image or
// one of sixteen 16 KiB windows into a 256 KiB RAM block. Bank state is
// kept as a tagged variant rather than a raw slice pointer, so write
// protection and the BANK-port read-back formula fall out of a single
// type switch instead of pointer-range comparisons.

package main

const (
	ramSize     = 256 * 1024
	romSize     = 16 * 1024
	bankSize    = 16 * 1024
	bankCount   = 4
	ramWindows  = ramSize / bankSize // 16
	bankAddrLSB = 14                 // addr >> 14 selects the bank
)

// bankKind tags what a bank currently points at.
type bankKind int

const (
	bankROM bankKind = iota
	bankRAM
)

// bankSlot is one of the four 16 KiB windows the CPU's address space is
// divided into.
type bankSlot struct {
	kind   bankKind
	window int // RAM window index 0..15, meaningless when kind==bankROM
}

// MemoryMap implements the bank-switched bus backing a Machine. It owns
// the RAM and ROM storage and the per-bank mapping table.
type MemoryMap struct {
	ram  [ramSize]byte
	rom  [romSize]byte
	bank [bankCount]bankSlot
}

// LoadROM copies a 16 KiB ROM image in. Shorter images are zero-padded;
// longer images are truncated to romSize.
func (m *MemoryMap) LoadROM(data []byte) {
	n := copy(m.rom[:], data)
	for i := n; i < romSize; i++ {
		m.rom[i] = 0
	}
}

// ResetBanks maps all four banks to ROM, the machine's power-on state.
func (m *MemoryMap) ResetBanks() {
	for i := range m.bank {
		m.bank[i] = bankSlot{kind: bankROM}
	}
}

// ReadByte implements the CPU's read_byte collaborator interface.
func (m *MemoryMap) ReadByte(addr uint16) uint8 {
	bank := addr >> bankAddrLSB
	offset := addr & (bankSize - 1)
	slot := m.bank[bank]
	if slot.kind == bankROM {
		return m.rom[offset]
	}
	return m.ram[slot.window*bankSize+int(offset)]
}

// WriteByte implements the CPU's write_byte collaborator interface. A
// write through a ROM-mapped bank is silently dropped.
func (m *MemoryMap) WriteByte(addr uint16, val uint8) {
	bank := addr >> bankAddrLSB
	offset := addr & (bankSize - 1)
	slot := m.bank[bank]
	if slot.kind == bankROM {
		return
	}
	m.ram[slot.window*bankSize+int(offset)] = val
}

// MapBank points the given bank (0..3) at ROM, or at RAM window
// (0..15) when rom is false.
func (m *MemoryMap) MapBank(bank int, window int, rom bool) {
	if rom {
		m.bank[bank] = bankSlot{kind: bankROM}
		return
	}
	m.bank[bank] = bankSlot{kind: bankRAM, window: window & (ramWindows - 1)}
}

// BankIsROM reports whether the given bank (0..3) is currently ROM-mapped.
func (m *MemoryMap) BankIsROM(bank int) bool {
	return m.bank[bank].kind == bankROM
}

// BankWindow returns the RAM window index mapped into the given bank.
// Only meaningful when BankIsROM(bank) is false.
func (m *MemoryMap) BankWindow(bank int) int {
	return m.bank[bank].window
}

// RAM exposes the backing RAM slice, used by the framebuffer decoder.
func (m *MemoryMap) RAM() []byte {
	return m.ram[:]
}
