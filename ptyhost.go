// ptyhost.go - Default PTYSource backed by github.com/daedaluz/goserial's
// pseudoterminal support. This is the host pty abstraction external to
// the core; it is wired here as the program's default adapter so the
// CLI entry point is runnable end to end, while Scheduler only ever
// depends on the PTYSource interface.

package main

import (
	"fmt"
	"os"
	"sync"

	serial "github.com/daedaluz/goserial"
)

// PTYHost owns a pty master/slave pair and a background reader goroutine
// that feeds a byte queue, since serial.Port.Read blocks and the
// scheduler loop must never block on it.
type PTYHost struct {
	mu     sync.Mutex
	master *serial.Port
	slave  *serial.Port

	data     chan byte
	readable chan struct{}
	hangup   chan struct{}
}

// NewPTYHost opens a fresh master/slave pty pair and starts the reader
// goroutine. Call SlaveName to print the path the guest terminal should
// connect to.
func NewPTYHost() (*PTYHost, error) {
	h := &PTYHost{
		data:     make(chan byte, 4096),
		readable: make(chan struct{}, 1),
		hangup:   make(chan struct{}, 1),
	}
	if err := h.open(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *PTYHost) open() error {
	master, slave, err := serial.OpenPTY(nil, nil)
	if err != nil {
		return fmt.Errorf("open pty: %w", err)
	}
	h.mu.Lock()
	h.master = master
	h.slave = slave
	h.mu.Unlock()
	go h.readLoop(master)
	return nil
}

func (h *PTYHost) readLoop(master *serial.Port) {
	buf := make([]byte, 1)
	for {
		n, err := master.Read(buf)
		if err != nil {
			select {
			case h.hangup <- struct{}{}:
			default:
			}
			return
		}
		if n > 0 {
			h.data <- buf[0]
			select {
			case h.readable <- struct{}{}:
			default:
			}
		}
	}
}

// ReadByte returns the next buffered byte, if any. ok is false when no
// byte is currently queued.
func (h *PTYHost) ReadByte() (b byte, ok bool, err error) {
	select {
	case b = <-h.data:
		return b, true, nil
	default:
		return 0, false, nil
	}
}

// WriteByte writes one byte to the pty master.
func (h *PTYHost) WriteByte(b byte) error {
	h.mu.Lock()
	master := h.master
	h.mu.Unlock()
	_, err := master.Write([]byte{b})
	return err
}

// Readable signals whenever a byte has been enqueued by the reader
// goroutine.
func (h *PTYHost) Readable() <-chan struct{} { return h.readable }

// Hangup signals on a pty error/hangup condition.
func (h *PTYHost) Hangup() <-chan struct{} { return h.hangup }

// Close releases the pty master and slave. Closing the master causes
// the blocked reader goroutine's Read to return an error and exit.
func (h *PTYHost) Close() error {
	h.mu.Lock()
	master := h.master
	slave := h.slave
	h.mu.Unlock()

	var err error
	if master != nil {
		err = master.Close()
	}
	if slave != nil {
		if e := slave.Close(); err == nil {
			err = e
		}
	}
	return err
}

// SlaveName resolves the pty slave's path via its /proc fd symlink,
// since goserial's pty helpers hand back a bare fd wrapper with no
// stored path.
func (h *PTYHost) SlaveName() string {
	h.mu.Lock()
	slave := h.slave
	h.mu.Unlock()
	name, _ := procFdPath(slave)
	return name
}

// Reopen closes the current pair and opens a fresh one, returning the
// new slave path.
func (h *PTYHost) Reopen() (string, error) {
	h.mu.Lock()
	oldMaster := h.master
	h.mu.Unlock()
	if oldMaster != nil {
		oldMaster.Close()
	}
	if err := h.open(); err != nil {
		return "", err
	}
	return h.SlaveName(), nil
}

func procFdPath(p *serial.Port) (string, error) {
	if p == nil {
		return "", fmt.Errorf("nil port")
	}
	return os.Readlink(fmt.Sprintf("/proc/self/fd/%d", p.Fd()))
}
