package main

import "testing"

func TestFramebufferPlane0Addressing(t *testing.T) {
	ram := make([]byte, ramSize)
	x, y := 10, 5
	idx, mask := pixelAddr(fbPlane0Base0, x, y)
	ram[idx] |= mask

	frame := RenderFrame(ram, false)
	off := (y*fbWidth + x) * 3
	if frame[off] != paletteP1.r || frame[off+1] != paletteP1.g || frame[off+2] != paletteP1.b {
		t.Errorf("pixel (%d,%d) = %v,%v,%v, want p1 color %v", x, y, frame[off], frame[off+1], frame[off+2], paletteP1)
	}
}

func TestFramebufferVA15SelectsBank(t *testing.T) {
	ram := make([]byte, ramSize)
	x, y := 0, 0
	idx, mask := pixelAddr(fbPlane0Base1, x, y)
	ram[idx] |= mask

	frame := RenderFrame(ram, true)
	if frame[0] != paletteP1.r {
		t.Errorf("VA15=true did not read from the VA15 plane-0 bank")
	}

	frameOtherBank := RenderFrame(ram, false)
	if frameOtherBank[0] != paletteP0.r {
		t.Errorf("VA15=false unexpectedly picked up the VA15 bank's bit")
	}
}

func TestFramebufferAdditiveBlend(t *testing.T) {
	ram := make([]byte, ramSize)
	x, y := 0, 0
	i0, m0 := pixelAddr(fbPlane0Base0, x, y)
	i1, m1 := pixelAddr(fbPlane1Base0, x, y)
	ram[i0] |= m0
	ram[i1] |= m1

	frame := RenderFrame(ram, false)
	want := addBlend(paletteP1, paletteP2)
	if frame[0] != want.r || frame[1] != want.g || frame[2] != want.b {
		t.Errorf("blended pixel = %d,%d,%d want %v", frame[0], frame[1], frame[2], want)
	}
}
