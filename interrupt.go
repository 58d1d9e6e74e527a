// interrupt.go - CPU interrupt handoff. The interrupt line is a computed
// predicate rather than a maintained flag, avoiding ordering bugs
// between "a source asserted" and "the line is raised".

package main

// rst7Vector is the single interrupt entry point used by this machine
// (RST 7, opcode 0xFF, vectoring to address 0x38).
const rst7Vector = 0xFF

// ShouldInterrupt reports whether the CPU should be handed an
// interrupt before its next instruction: interrupts enabled AND any of
// KINT/VINT/UINT asserted in PPI-C.
func ShouldInterrupt(iff bool, p *PPI) bool {
	return iff && p.InterruptPending()
}
