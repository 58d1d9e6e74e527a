// machine.go - Machine integration: holds all peripheral state and
// dispatches port_in/port_out per the port group decode below.
// Peripherals are inlined fields, not separately owned goroutines, so
// there is no shared mutable state to protect beyond the PSG kernel
// (see psg.go).

package main

// Port group selectors, decoded from port&0x38.
const (
	portGroupBank = 0x08
	portGroupPPI  = 0x18
	portGroupUART = 0x28
	portGroupCF   = 0x30
	portGroupPSG  = 0x38
)

// Machine aggregates the full peripheral set of the pac80 machine and
// implements the CPU's memory/port collaborator surface (read_byte,
// write_byte, port_in, port_out).
type Machine struct {
	Mem  *MemoryMap
	UART *UART
	CF   *CFController
	PPI  PPI
	KB   *Keyboard
	JS   Joystick
	PSG  PSGKernel
}

// NewMachine wires a Machine from a loaded ROM image and a CF backing
// store. psg may be nil, in which case writes to port 0x38 are
// discarded and reads return 0xFF even with no kernel attached.
func NewMachine(rom []byte, cfImage []byte, psg PSGKernel) *Machine {
	mem := &MemoryMap{}
	mem.LoadROM(rom)
	if psg == nil {
		psg = NullPSG{}
	}
	m := &Machine{
		Mem:  mem,
		UART: NewUART(),
		CF:   NewCFController(cfImage),
		KB:   NewKeyboard(),
		PSG:  psg,
	}
	m.Reset()
	return m
}

// Reset reinitializes machine-owned peripheral state: banks to
// ROM, UART/CF status cleared, PPI-C to 0x01, keyboard/joystick idle.
// It does not touch the CPU; callers reset the CPU separately.
func (m *Machine) Reset() {
	m.Mem.ResetBanks()
	m.UART.Reset()
	m.CF.Reset()
	m.PPI.Reset()
	m.KB.Reset()
	m.JS.Reset()
}

// ReadByte implements the CPU's read_byte collaborator.
func (m *Machine) ReadByte(addr uint16) uint8 {
	return m.Mem.ReadByte(addr)
}

// WriteByte implements the CPU's write_byte collaborator.
func (m *Machine) WriteByte(addr uint16, val uint8) {
	m.Mem.WriteByte(addr, val)
}

// PortIn implements the CPU's port_in collaborator, decoding the
// peripheral group from port&0x38.
func (m *Machine) PortIn(port uint8) uint8 {
	switch port & 0x38 {
	case portGroupBank:
		return m.bankRead(port)
	case portGroupUART:
		return m.uartRead(port)
	case portGroupCF:
		return m.cfRead(port)
	case portGroupPPI:
		return m.ppiRead(port)
	case portGroupPSG:
		return 0xFF
	default: // 0x00, 0x10, 0x20: reserved/ignored
		return 0xFF
	}
}

// PortOut implements the CPU's port_out collaborator.
func (m *Machine) PortOut(port uint8, val uint8) {
	switch port & 0x38 {
	case portGroupBank:
		m.bankWrite(port, val)
	case portGroupUART:
		m.uartWrite(port, val)
	case portGroupCF:
		m.cfWrite(port, val)
	case portGroupPPI:
		m.ppiWrite(port, val)
	case portGroupPSG:
		m.PSG.WriteIO(val)
	default: // 0x00, 0x10, 0x20: reserved/ignored
	}
}

// --- BANK (port&0xC0 selects one of the four banks) ---

func (m *Machine) bankRead(port uint8) uint8 {
	bank := int(port>>6) & 3
	if m.Mem.BankIsROM(bank) {
		return 0xFF
	}
	return uint8(m.Mem.BankWindow(bank)) | 0xF0
}

func (m *Machine) bankWrite(port uint8, val uint8) {
	bank := int(port>>6) & 3
	if val&0x0F == 0x0F {
		m.Mem.MapBank(bank, 0, true)
	} else {
		m.Mem.MapBank(bank, int(val&0x0F), false)
	}
}

// --- UART (port&1 selects data vs status) ---

func (m *Machine) uartRead(port uint8) uint8 {
	if port&1 == 0 {
		b, _ := m.UART.ReadData()
		m.PPI.RecomputeUINT(m.UART.ReadStatus()&uartStatusRXRDY != 0)
		return b
	}
	return m.UART.ReadStatus()
}

func (m *Machine) uartWrite(port uint8, val uint8) {
	if port&1 == 0 {
		m.UART.WriteData(val)
		return
	}
	// write control: mode word accepted and dropped
}

// PushUARTRx delivers one host-received byte into the UART and
// recomputes UINT, matching the inline re-raise the port dispatcher
// performs on a data read. Called by the scheduler's pty-readable pump.
func (m *Machine) PushUARTRx(b byte) {
	m.UART.PushRx(b)
	m.PPI.RecomputeUINT(m.UART.ReadStatus()&uartStatusRXRDY != 0)
}

// --- CF (port&7 selects register) ---

func (m *Machine) cfRead(port uint8) uint8 {
	switch port & 7 {
	case 0:
		return m.CF.ReadData()
	case 1:
		return m.CF.ReadError()
	case 2:
		return m.CF.ReadSectorCount()
	case 3, 4, 5, 6:
		return m.CF.ReadLBA(int(port&7) - 3)
	case 7:
		return m.CF.ReadStatus()
	}
	return 0xFF
}

func (m *Machine) cfWrite(port uint8, val uint8) {
	switch port & 7 {
	case 0:
		m.CF.WriteData(val)
	case 1:
		// set features: accepted, ignored
	case 2:
		m.CF.WriteSectorCount(val)
	case 3, 4, 5, 6:
		m.CF.WriteLBA(int(port&7)-3, val)
	case 7:
		m.CF.WriteCommand(val)
	}
}

// --- PPI (port&5 selects) ---

func (m *Machine) ppiRead(port uint8) uint8 {
	switch port & 5 {
	case 0:
		return m.PPI.ReadPortA()
	case 1:
		return m.JS.ReadPortB(port&2 != 0)
	case 4:
		return m.PPI.ReadPortC()
	default: // 5: illegal as a read
		return 0xFF
	}
}

func (m *Machine) ppiWrite(port uint8, val uint8) {
	switch port & 5 {
	case 0, 1:
		// writes to ports A/B are ignored
	case 4:
		m.PPI.WritePortC(val)
		m.PPI.RecomputeUINT(m.UART.ReadStatus()&uartStatusRXRDY != 0)
	case 5:
		m.PPI.WriteControlWord(val)
		m.PPI.RecomputeUINT(m.UART.ReadStatus()&uartStatusRXRDY != 0)
	}
}
