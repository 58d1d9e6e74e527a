//go:build headless

// displayhost_headless.go - No-window DisplaySink/InputSource for
// headless builds (CI, fuzzing, scripted runs with no X11/Wayland
// compositor available). Frames are counted, not drawn; Poll never
// yields input, so a headless run only ever stops via an external
// done channel.

package main

import "sync/atomic"

// DisplayHost discards presented frames and reports no input, tracking
// only a frame counter for tests/diagnostics.
type DisplayHost struct {
	frameCount uint64
}

// NewDisplayHost returns a no-op display host; title is accepted for
// interface parity with the windowed backend and otherwise unused.
func NewDisplayHost(title string) *DisplayHost {
	return &DisplayHost{}
}

// Present implements DisplaySink.
func (d *DisplayHost) Present(rgb []byte) error {
	atomic.AddUint64(&d.frameCount, 1)
	return nil
}

// Poll implements InputSource.
func (d *DisplayHost) Poll() []InputEvent { return nil }

// FrameCount reports how many frames have been presented.
func (d *DisplayHost) FrameCount() uint64 {
	return atomic.LoadUint64(&d.frameCount)
}
