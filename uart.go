// uart.go - UART peripheral: one-byte tx holding register, one-byte rx
// holding register backed by a receive FIFO, and TXRDY/RXRDY status
// bits, exposed to the guest as a port-mapped data/status pair.

package main

const (
	uartStatusTXRDY = 1 << 0
	uartStatusRXRDY = 1 << 1
)

// UART models the machine's serial port. It owns the rx FIFO; the tx
// side is a single holding register drained by an external pump (the
// host pty backend) which calls TxDrained once the byte has been
// delivered.
type UART struct {
	rx     uint8
	tx     uint8
	status uint8
	rxFIFO *Ring
}

// NewUART builds a UART with its 256-byte receive FIFO and TXRDY set
// (the machine boots with the tx holding register empty).
func NewUART() *UART {
	return &UART{
		status: uartStatusTXRDY,
		rxFIFO: NewRing(0),
	}
}

// Reset restores power-on state: TXRDY set, RXRDY clear, rx FIFO empty.
func (u *UART) Reset() {
	u.rx = 0
	u.tx = 0
	u.status = uartStatusTXRDY
	u.rxFIFO.Reset()
}

// ReadData returns the rx holding register, clears RXRDY, and — if the
// FIFO still has buffered bytes — immediately reloads rx from the FIFO
// and re-raises RXRDY. Returns the byte read and whether RXRDY ended up
// re-asserted (the caller uses this to recompute PPI-C's UINT).
func (u *UART) ReadData() (b uint8, rxReady bool) {
	b = u.rx
	u.status &^= uartStatusRXRDY
	if u.rxFIFO.Count() > 0 {
		u.rx = u.rxFIFO.Pop()
		u.status |= uartStatusRXRDY
		rxReady = true
	}
	return b, rxReady
}

// ReadStatus returns the status byte {TXRDY=bit0, RXRDY=bit1}.
func (u *UART) ReadStatus() uint8 {
	return u.status
}

// WriteData loads the tx holding register and clears TXRDY. The host
// pump drains it and calls TxDrained to re-raise TXRDY.
func (u *UART) WriteData(val uint8) {
	u.tx = val
	u.status &^= uartStatusTXRDY
}

// TxPending reports whether a byte is waiting to be drained to the host.
func (u *UART) TxPending() bool {
	return u.status&uartStatusTXRDY == 0
}

// TxByte returns the byte waiting in the tx holding register.
func (u *UART) TxByte() uint8 {
	return u.tx
}

// TxDrained is called by the host pump once TxByte has been delivered.
func (u *UART) TxDrained() {
	u.status |= uartStatusTXRDY
}

// PushRx delivers one byte received from the host. If the rx holding
// register is empty (RXRDY clear) it is loaded immediately and RXRDY is
// raised; otherwise the byte queues in the FIFO (silently dropped if the
// FIFO is full). Returns whether RXRDY became newly asserted.
func (u *UART) PushRx(b byte) (rxReady bool) {
	if u.status&uartStatusRXRDY == 0 {
		u.rx = b
		u.status |= uartStatusRXRDY
		return true
	}
	u.rxFIFO.Push(b)
	return false
}
