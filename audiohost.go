//go:build !headless

// audiohost.go - Default audio output, pulling samples from a PSGKernel
// through an oto player on a dedicated callback goroutine, the same
// shape as a conventional oto player callback.

package main

import (
	"math"

	"github.com/ebitengine/oto/v3"
)

const audioSampleRate = 44100

// AudioHost drives an oto.Player whose Read callback pulls one sample
// per output frame from the attached PSGKernel. It implements
// io.Reader so it can be handed directly to oto.Context.NewPlayer.
type AudioHost struct {
	ctx    *oto.Context
	player *oto.Player
	psg    PSGKernel
	buf    []float32
}

// NewAudioHost opens a mono 44.1kHz float32 oto context and wires the
// given PSGKernel as its sample source.
func NewAudioHost(psg PSGKernel) (*AudioHost, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   audioSampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	h := &AudioHost{ctx: ctx, psg: psg, buf: make([]float32, 4096)}
	h.player = ctx.NewPlayer(h)
	return h, nil
}

// Read fills p with PCM bytes pulled one sample at a time from the PSG
// kernel, converting its signed 16-bit output to float32LE.
func (h *AudioHost) Read(p []byte) (int, error) {
	n := len(p) / 4
	if cap(h.buf) < n {
		h.buf = make([]float32, n)
	}
	samples := h.buf[:n]
	for i := range samples {
		samples[i] = float32(h.psg.Sample()) / 32768
	}
	for i, s := range samples {
		bits := math.Float32bits(s)
		p[i*4+0] = byte(bits)
		p[i*4+1] = byte(bits >> 8)
		p[i*4+2] = byte(bits >> 16)
		p[i*4+3] = byte(bits >> 24)
	}
	return n * 4, nil
}

// Start begins playback.
func (h *AudioHost) Start() { h.player.Play() }

// Close stops playback and releases the player.
func (h *AudioHost) Close() error { return h.player.Close() }
