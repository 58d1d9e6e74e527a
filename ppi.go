// ppi.go - 8255-style programmable parallel interface: ports A/B/C and
// mode-0 control-word bit set/reset semantics on port C. Port C doubles
// as the machine's interrupt/status register; see interrupt.go for the
// KINT/VINT/UINT bit assignments aggregated here.

package main

const (
	ppiCVA15  = 1 << 0 // RW: framebuffer bank select
	ppiCVINTE = 1 << 1 // RW: VBLANK interrupt enable
	ppiCUINTE = 1 << 2 // RW: UART RX interrupt enable
	ppiCKINT  = 1 << 3 // R:  keyboard interrupt pending, cleared by reading port A
	ppiCKINTE = 1 << 4 // RW: keyboard strobe / interrupt enable (KSTB)
	ppiCKIBF  = 1 << 5 // R:  port-A input buffer full, cleared by reading port A
	ppiCVINT  = 1 << 6 // R:  VBLANK pending, cleared by reading port C
	ppiCUINT  = 1 << 7 // R:  UART RX pending, cleared by reading UART data

	ppiCWritableMask = ppiCVA15 | ppiCVINTE | ppiCKINTE | ppiCUINTE // 0x17
	ppiCPreserveMask = ppiCKINT | ppiCKIBF | ppiCVINT | ppiCUINT    // 0xE8
)

// PPI models the 8255's three ports plus its port-C control-word logic.
type PPI struct {
	a, b, c uint8
}

// Reset sets port C to 0x01 (VA15 asserted) per the machine's reset
// behaviour, and ports A/B to their idle-high state.
func (p *PPI) Reset() {
	p.a = 0xFF
	p.b = 0xFF
	p.c = ppiCVA15
}

// ReadPortA clears KIBF and KINT and returns the latched byte. Writes to
// port A are ignored by hardware (it is the keyboard controller's
// output-only latch from software's point of view).
func (p *PPI) ReadPortA() uint8 {
	val := p.a
	p.c &^= ppiCKIBF | ppiCKINT
	return val
}

// ReadPortC returns the current port-C value, then clears VINT.
func (p *PPI) ReadPortC() uint8 {
	val := p.c
	p.c &^= ppiCVINT
	return val
}

// WritePortC applies a direct port-C write: the read-only upper bits
// (KIBF, VINT, UINT) are preserved, the writable lower bits are taken
// from val. Returns the resulting port-C value so callers can recompute
// UINT against the (possibly just-changed) UINTE bit.
func (p *PPI) WritePortC(val uint8) uint8 {
	p.c = (p.c & ppiCPreserveMask) | (val & ppiCWritableMask)
	return p.c
}

// WriteControlWord implements the 8255 mode-0 bit set/reset control
// word on port C (bit 7 = 0), or accepts-and-ignores a mode-configure
// word (bit 7 = 1). Returns the resulting port-C value (unchanged for a
// configure word).
func (p *PPI) WriteControlWord(val uint8) uint8 {
	if val&0x80 != 0 {
		return p.c // mode configure: accepted, no side effect
	}
	bit := uint8(1) << ((val >> 1) & 7)
	var next uint8
	if val&1 != 0 {
		next = p.c | bit
	} else {
		next = p.c &^ bit
	}
	p.c = (p.c & ppiCPreserveMask) | (next & ppiCWritableMask)
	return p.c
}

// RecomputeUINT sets or clears UINT := rxReady && uinte, re-evaluated on
// every event that could change either operand rather than latched once.
func (p *PPI) RecomputeUINT(rxReady bool) {
	if rxReady && p.c&ppiCUINTE != 0 {
		p.c |= ppiCUINT
	} else {
		p.c &^= ppiCUINT
	}
}

// SetKINT is set by the keyboard controller when a byte is latched
// under KINTE.
func (p *PPI) SetKINT() {
	p.c |= ppiCKINT
}

// SetKIBF is set by the keyboard controller when a byte is latched into
// port A.
func (p *PPI) SetKIBF() {
	p.c |= ppiCKIBF
}

// KIBFSet reports whether the port-A input buffer is currently full.
func (p *PPI) KIBFSet() bool {
	return p.c&ppiCKIBF != 0
}

// KINTEEnabled reports whether keyboard interrupts are enabled.
func (p *PPI) KINTEEnabled() bool {
	return p.c&ppiCKINTE != 0
}

// VINTEEnabled reports whether VBLANK interrupts are enabled.
func (p *PPI) VINTEEnabled() bool {
	return p.c&ppiCVINTE != 0
}

// RaiseVINT sets VINT, called by the scheduler on each display tick
// when VINTE is enabled.
func (p *PPI) RaiseVINT() {
	p.c |= ppiCVINT
}

// VA15 reports the framebuffer bank-select bit.
func (p *PPI) VA15() bool {
	return p.c&ppiCVA15 != 0
}

// InterruptPending reports whether any of KINT/VINT/UINT is asserted.
func (p *PPI) InterruptPending() bool {
	return p.c&(ppiCKINT|ppiCVINT|ppiCUINT) != 0
}
