package main

import "testing"

func TestUARTLoopback(t *testing.T) {
	u := NewUART()
	u.PushRx(0x42)
	b, _ := u.ReadData()
	if b != 0x42 {
		t.Fatalf("ReadData()=%#x, want 0x42", b)
	}
	if u.ReadStatus()&uartStatusRXRDY != 0 {
		t.Errorf("RXRDY still set after draining the only buffered byte")
	}
}

func TestUARTReloadsFromFIFO(t *testing.T) {
	u := NewUART()
	u.PushRx(0x01) // loads rx directly, RXRDY set
	u.PushRx(0x02) // queues in FIFO since rx is occupied
	b, reasserted := u.ReadData()
	if b != 0x01 {
		t.Fatalf("first ReadData()=%#x, want 0x01", b)
	}
	if !reasserted {
		t.Fatalf("expected RXRDY to be reasserted from the FIFO")
	}
	if u.ReadStatus()&uartStatusRXRDY == 0 {
		t.Errorf("RXRDY not set after FIFO reload")
	}
	b2, _ := u.ReadData()
	if b2 != 0x02 {
		t.Errorf("second ReadData()=%#x, want 0x02", b2)
	}
}

func TestUARTTxRoundTrip(t *testing.T) {
	u := NewUART()
	if u.TxPending() {
		t.Fatalf("TxPending() true before any write")
	}
	u.WriteData(0x55)
	if !u.TxPending() {
		t.Fatalf("TxPending() false after WriteData")
	}
	if u.ReadStatus()&uartStatusTXRDY != 0 {
		t.Errorf("TXRDY still set right after WriteData")
	}
	if u.TxByte() != 0x55 {
		t.Errorf("TxByte()=%#x, want 0x55", u.TxByte())
	}
	u.TxDrained()
	if u.TxPending() {
		t.Errorf("TxPending() true after TxDrained")
	}
	if u.ReadStatus()&uartStatusTXRDY == 0 {
		t.Errorf("TXRDY not set after TxDrained")
	}
}
