//go:build headless

// audiohost_headless.go - No-device audio host for headless builds.
// The PSG kernel is never drained, which is fine: Sample is pull-only
// and nothing accumulates when no player is attached.

package main

// AudioHost discards audio entirely in headless builds.
type AudioHost struct{}

// NewAudioHost returns a no-op audio host; the PSGKernel is accepted
// for interface parity with the oto-backed host and otherwise unused.
func NewAudioHost(psg PSGKernel) (*AudioHost, error) {
	return &AudioHost{}, nil
}

// Start is a no-op.
func (h *AudioHost) Start() {}

// Close is a no-op.
func (h *AudioHost) Close() error { return nil }
