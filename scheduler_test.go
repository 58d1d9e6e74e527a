package main

import "testing"

// fakeCPU is a minimal CPU double: every Step consumes a fixed number of
// cycles and executes HLT (0x76) by halting, matching just enough of an
// 8080's observable behaviour for scheduler-level tests.
type fakeCPU struct {
	pc          uint16
	cyc         int
	halted      bool
	iff         bool
	interrupts  []uint8
	mem         *Machine
	cyclesPerOp int
}

func newFakeCPU(m *Machine) *fakeCPU {
	return &fakeCPU{mem: m, cyclesPerOp: 4, iff: true}
}

func (c *fakeCPU) ReadByte(addr uint16) uint8 { return c.mem.ReadByte(addr) }
func (c *fakeCPU) WriteByte(addr uint16, v uint8) { c.mem.WriteByte(addr, v) }
func (c *fakeCPU) PortIn(port uint8) uint8 { return c.mem.PortIn(port) }
func (c *fakeCPU) PortOut(port uint8, v uint8) { c.mem.PortOut(port, v) }
func (c *fakeCPU) Cyc() int { return c.cyc }
func (c *fakeCPU) SetCyc(v int) { c.cyc = v }
func (c *fakeCPU) Halted() bool { return c.halted }
func (c *fakeCPU) IFF() bool { return c.iff }
func (c *fakeCPU) Reset() {
	c.pc, c.cyc, c.halted = 0, 0, false
}

func (c *fakeCPU) Interrupt(vector uint8) {
	c.interrupts = append(c.interrupts, vector)
	c.pc = 0x38
}

func (c *fakeCPU) Step() {
	if c.halted {
		return
	}
	op := c.mem.ReadByte(c.pc)
	c.pc++
	c.cyc += c.cyclesPerOp
	if op == 0x76 { // HLT
		c.halted = true
	}
}

func TestSchedulerBootHalts(t *testing.T) {
	rom := make([]byte, romSize)
	rom[0] = 0x76
	m := NewMachine(rom, make([]byte, 512), nil)
	cpu := newFakeCPU(m)
	s := NewScheduler(m, cpu)

	s.RunCPUSlices(1)
	if !cpu.Halted() {
		t.Fatalf("CPU not halted after boot slice")
	}
	if cpu.pc != 1 {
		t.Errorf("pc=%d after HLT, want 1", cpu.pc)
	}
}

func TestSchedulerKeyboardPumpPerSlice(t *testing.T) {
	rom := make([]byte, romSize) // all NOPs, CPU free-runs the slice
	m := NewMachine(rom, make([]byte, 512), nil)
	cpu := newFakeCPU(m)
	s := NewScheduler(m, cpu)

	m.KB.PushRaw(0x1E)
	s.RunCPUSlices(1)
	if !m.PPI.KIBFSet() {
		t.Errorf("KIBF not set after a CPU slice with a pending scancode")
	}
	if m.PPI.a != 0x1E {
		t.Errorf("ppi.a=%#x, want 0x1E", m.PPI.a)
	}
}

func TestSchedulerVectorsInterruptOnVBlank(t *testing.T) {
	rom := make([]byte, romSize)
	m := NewMachine(rom, make([]byte, 512), nil)
	cpu := newFakeCPU(m)
	s := NewScheduler(m, cpu)

	m.PortOut(0x1D, (1<<1)|1) // VINTE
	m.PPI.RaiseVINT()
	s.RunCPUSlices(1)
	if len(cpu.interrupts) == 0 {
		t.Fatalf("expected at least one RST 7 interrupt during the slice")
	}
	if cpu.interrupts[0] != rst7Vector {
		t.Errorf("interrupt vector=%#x, want %#x", cpu.interrupts[0], rst7Vector)
	}
}

func TestSchedulerJoystickTimeoutAgesPerSlice(t *testing.T) {
	rom := make([]byte, romSize)
	m := NewMachine(rom, make([]byte, 512), nil)
	cpu := newFakeCPU(m)
	s := NewScheduler(m, cpu)

	advanceToPhase(&m.JS, 1)
	if m.JS.state == 0 {
		t.Fatalf("joystick state did not advance")
	}
	for i := 0; i < joystickTimeoutVBlanks; i++ {
		s.RunCPUSlices(1)
	}
	if m.JS.state != 0 {
		t.Errorf("joystick state=%d after %d slices, want 0 (timed out)", m.JS.state, joystickTimeoutVBlanks)
	}
}

type fakeDisplay struct {
	frames [][]byte
}

func (f *fakeDisplay) Present(frame []byte) error {
	f.frames = append(f.frames, frame)
	return nil
}

type fakeInput struct {
	events []InputEvent
}

func (f *fakeInput) Poll() []InputEvent {
	e := f.events
	f.events = nil
	return e
}

func TestSchedulerDisplayTickRaisesVINTAndRenders(t *testing.T) {
	rom := make([]byte, romSize)
	m := NewMachine(rom, make([]byte, 512), nil)
	cpu := newFakeCPU(m)
	s := NewScheduler(m, cpu)
	m.PortOut(0x1D, (1<<1)|1) // VINTE

	disp := &fakeDisplay{}
	in := &fakeInput{}
	quit := s.RunDisplayTick(in, disp)
	if quit {
		t.Fatalf("unexpected quit")
	}
	if len(disp.frames) != 1 {
		t.Fatalf("frames presented=%d, want 1", len(disp.frames))
	}
	if m.PPI.c&ppiCVINT == 0 {
		t.Errorf("VINT not raised by display tick")
	}
}

func TestSchedulerDisplayTickQuit(t *testing.T) {
	rom := make([]byte, romSize)
	m := NewMachine(rom, make([]byte, 512), nil)
	cpu := newFakeCPU(m)
	s := NewScheduler(m, cpu)

	in := &fakeInput{events: []InputEvent{{Kind: InputQuit}}}
	disp := &fakeDisplay{}
	if !s.RunDisplayTick(in, disp) {
		t.Fatalf("expected quit=true")
	}
}

func TestSchedulerResetEventReinitializesMachineAndCPU(t *testing.T) {
	rom := make([]byte, romSize)
	m := NewMachine(rom, make([]byte, 512), nil)
	cpu := newFakeCPU(m)
	s := NewScheduler(m, cpu)

	m.PortOut(0x08, 3) // map bank 0 to RAM window 3
	cpu.pc, cpu.cyc, cpu.halted = 0x1234, 7, true

	s.ApplyInputEvent(InputEvent{Kind: InputReset})

	if got := m.PortIn(0x08); got != 0xFF {
		t.Errorf("bank not reset to ROM: in(0x08)=%#x", got)
	}
	if cpu.pc != 0 || cpu.cyc != 0 || cpu.halted {
		t.Errorf("cpu not reset: pc=%#x cyc=%d halted=%v", cpu.pc, cpu.cyc, cpu.halted)
	}
}
