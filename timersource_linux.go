//go:build linux

// timersource_linux.go - Periodic TimerSource backed by a Linux
// timerfd, polled on its own goroutine and forwarded to a channel so
// the scheduler's select loop never touches the fd directly.

package main

import (
	"encoding/binary"
	"sync/atomic"
	"time"

	"golang.org/x/sys/unix"
)

// TimerfdSource wraps a CLOCK_MONOTONIC timerfd armed for a fixed
// period. Each read of the fd returns the number of expiries that
// elapsed since the last read (the timerfd can coalesce ticks the
// reader goroutine fell behind on); ticks accumulates that count so
// Drain can report the real backlog to the scheduler instead of
// exactly one tick per channel wakeup.
type TimerfdSource struct {
	fd    int
	c     chan struct{}
	ticks atomic.Uint64
}

// NewTimerfdSource creates and arms a periodic timerfd with the given
// period, starting a goroutine that reads it and forwards one tick per
// expiry count onto the returned source's channel.
func NewTimerfdSource(period time.Duration) (*TimerfdSource, error) {
	fd, err := unix.TimerfdCreate(unix.CLOCK_MONOTONIC, 0)
	if err != nil {
		return nil, err
	}
	spec := &unix.ItimerSpec{
		Interval: unix.NsecToTimespec(period.Nanoseconds()),
		Value:    unix.NsecToTimespec(period.Nanoseconds()),
	}
	if err := unix.TimerfdSettime(fd, 0, spec, nil); err != nil {
		unix.Close(fd)
		return nil, err
	}
	t := &TimerfdSource{fd: fd, c: make(chan struct{}, 1)}
	go t.run()
	return t, nil
}

func (t *TimerfdSource) run() {
	buf := make([]byte, 8)
	for {
		n, err := unix.Read(t.fd, buf)
		if err != nil || n != 8 {
			return
		}
		t.ticks.Add(binary.LittleEndian.Uint64(buf))
		select {
		case t.c <- struct{}{}:
		default:
		}
	}
}

// C implements TimerSource.
func (t *TimerfdSource) C() <-chan struct{} { return t.c }

// Drain implements TickCounter, returning and resetting the count of
// timer expiries accumulated since the last call.
func (t *TimerfdSource) Drain() int {
	return int(t.ticks.Swap(0))
}

// Close releases the underlying timerfd.
func (t *TimerfdSource) Close() error { return unix.Close(t.fd) }
