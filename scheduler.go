// scheduler.go - Cycle-budgeted CPU timeslice execution, VBLANK
// generation, and the pty/keyboard/joystick pumps that feed the
// peripherals. The Scheduler's handler methods are each
// independently callable (and so independently testable without any
// real timer, pty, or display backend); Run wires them to the host
// collaborator interfaces for normal operation.

package main

import "log"

// cpuCyclesPerSlice is the fixed cycle budget awarded per CPU timer
// tick (~320us at the machine's ~3.125MHz nominal clock).
const cpuCyclesPerSlice = 1007

// TimerSource is a periodic tick producer. Real implementations (see
// timersource_linux.go) back this with a timerfd; tests can use a plain
// buffered channel.
type TimerSource interface {
	C() <-chan struct{}
}

// TickCounter optionally augments a TimerSource that can coalesce
// wakeups (a timerfd read reports an expiry count, not one event per
// expiry) with the number of ticks that actually elapsed since the
// last drain. The CPU timer uses this to run its full backlog of
// timeslices per wakeup instead of silently dropping ticks the process
// fell behind on; TimerSources that can't fall behind (a test double
// backed by an unbuffered/size-1 channel) need not implement it.
type TickCounter interface {
	Drain() int
}

// PTYSource is the host pty collaborator carrying UART traffic.
// Readable fires when a byte is available to ReadByte; Hangup fires on
// a pty error/hangup condition.
type PTYSource interface {
	ReadByte() (b byte, ok bool, err error)
	WriteByte(b byte) error
	SlaveName() string
	Reopen() (slaveName string, err error)
	Readable() <-chan struct{}
	Hangup() <-chan struct{}
}

// InputEventKind enumerates the input events InputSource can deliver.
type InputEventKind int

const (
	InputKey InputEventKind = iota
	InputJoyButton
	InputJoyHat
	InputQuit
	InputReset
)

// InputEvent is one host input event, translated into the machine's own
// vocabulary (HostKey / joystick button bits) by the backend.
type InputEvent struct {
	Kind     InputEventKind
	Key      HostKey
	Pressed  bool
	Button   uint16 // btnU..btnM, for InputJoyButton
	HatX     int8   // -1,0,1 for InputJoyHat
	HatY     int8
}

// InputSource polls the host for input events queued since the last
// call; the scheduler drains it once per display tick.
type InputSource interface {
	Poll() []InputEvent
}

// DisplaySink receives one decoded RGB frame per display tick.
type DisplaySink interface {
	Present(frame []byte) error
}

// Scheduler drives a Machine and CPU through the event sources above.
type Scheduler struct {
	Machine *Machine
	CPU     CPU
}

// NewScheduler builds a Scheduler over the given Machine and CPU.
func NewScheduler(m *Machine, cpu CPU) *Scheduler {
	return &Scheduler{Machine: m, CPU: cpu}
}

// RunCPUSlices executes `ticks` CPU timeslices.
// Each slice steps the CPU until its cycle counter reaches
// cpuCyclesPerSlice, raising RST 7 before any instruction where
// ShouldInterrupt holds, and saturating the counter (ending the slice
// early) if the CPU halts. After the slice it debits the budget,
// latches a pending keyboard byte, and ages the joystick timeout.
func (s *Scheduler) RunCPUSlices(ticks int) {
	for i := 0; i < ticks; i++ {
		s.runOneSlice()
	}
}

func (s *Scheduler) runOneSlice() {
	cpu := s.CPU
	for cpu.Cyc() < cpuCyclesPerSlice {
		if ShouldInterrupt(cpu.IFF(), &s.Machine.PPI) {
			cpu.Interrupt(rst7Vector)
		}
		cpu.Step()
		if cpu.Halted() {
			cpu.SetCyc(cpuCyclesPerSlice)
			break
		}
	}
	cpu.SetCyc(cpu.Cyc() - cpuCyclesPerSlice)

	Pump(s.Machine.KB, &s.Machine.PPI)
	s.Machine.JS.Tick()
}

// HandlePTYReadable reads and enqueues one byte from the pty into the
// UART.
func (s *Scheduler) HandlePTYReadable(pty PTYSource) {
	b, ok, err := pty.ReadByte()
	if err != nil {
		log.Printf("pac80emu: pty read: %v", err)
		return
	}
	if !ok {
		return
	}
	s.Machine.PushUARTRx(b)
}

// HandlePTYHangup reopens the pty master and reports the new slave path
// (a runtime-recoverable condition, not a startup failure).
func (s *Scheduler) HandlePTYHangup(pty PTYSource) {
	name, err := pty.Reopen()
	if err != nil {
		log.Printf("pac80emu: pty reopen failed: %v", err)
		return
	}
	log.Println(name)
}

// DrainUARTTx writes a pending tx byte out to the pty.
func (s *Scheduler) DrainUARTTx(pty PTYSource) {
	if !s.Machine.UART.TxPending() {
		return
	}
	if err := pty.WriteByte(s.Machine.UART.TxByte()); err != nil {
		log.Printf("pac80emu: pty write: %v", err)
		return
	}
	s.Machine.UART.TxDrained()
}

// ApplyInputEvent folds one host input event into keyboard/joystick
// state.
func (s *Scheduler) ApplyInputEvent(ev InputEvent) {
	switch ev.Kind {
	case InputKey:
		s.Machine.KB.PushKeyEvent(ev.Key, ev.Pressed)
	case InputJoyButton:
		s.Machine.JS.SetButton(ev.Button, ev.Pressed)
	case InputJoyHat:
		s.Machine.JS.SetButton(btnU, ev.HatY < 0)
		s.Machine.JS.SetButton(btnD, ev.HatY > 0)
		s.Machine.JS.SetButton(btnL, ev.HatX < 0)
		s.Machine.JS.SetButton(btnR, ev.HatX > 0)
	case InputReset:
		s.Machine.Reset()
		s.CPU.Reset()
	}
}

// RunDisplayTick raises VINT (if enabled), applies queued input events,
// and renders the next frame.
func (s *Scheduler) RunDisplayTick(input InputSource, display DisplaySink) (quit bool) {
	if s.Machine.PPI.VINTEEnabled() {
		s.Machine.PPI.RaiseVINT()
	}
	for _, ev := range input.Poll() {
		if ev.Kind == InputQuit {
			quit = true
			continue
		}
		s.ApplyInputEvent(ev)
	}
	frame := RenderFrame(s.Machine.Mem.RAM(), s.Machine.PPI.VA15())
	if err := display.Present(frame); err != nil {
		log.Printf("pac80emu: display present: %v", err)
	}
	return quit
}

// Run multiplexes the CPU timer, pty readiness, and display timer
// until done closes or the display source yields a quit event.
func (s *Scheduler) Run(cpuTimer, displayTimer TimerSource, pty PTYSource, input InputSource, display DisplaySink, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-cpuTimer.C():
			n := 1
			if tc, ok := cpuTimer.(TickCounter); ok {
				if pending := tc.Drain(); pending > 0 {
					n = pending
				}
			}
			s.RunCPUSlices(n)
		case <-pty.Readable():
			s.HandlePTYReadable(pty)
		case <-pty.Hangup():
			s.HandlePTYHangup(pty)
		case <-displayTimer.C():
			if s.RunDisplayTick(input, display) {
				return
			}
		}
		// The tx side has no dedicated readiness wakeup (the pty is
		// always nominally writable for one-byte sends); drained
		// opportunistically every iteration.
		s.DrainUARTTx(pty)
	}
}
