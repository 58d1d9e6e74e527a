// framebuffer.go - Dual-plane 1bpp -> 24bpp framebuffer decoder. Each of
// the two monochrome bitplanes lives in an interleaved RAM region
// selected by PPI-C's VA15 bit; the renderer expands both planes into
// one RGB frame, additively blending the second pass atop the first.

package main

const (
	fbWidth  = 320
	fbHeight = 240

	fbPlane0Base0 = 0x11810 // plane 0 (blue-ish), VA15=0
	fbPlane0Base1 = 0x19810 // plane 0, VA15=1
	fbPlane1Base0 = 0x15810 // plane 1 (orange-ish), VA15=0
	fbPlane1Base1 = 0x1D810 // plane 1, VA15=1

	fbColumnStride = 0x100
)

// rgb is a palette color.
type rgb struct{ r, g, b uint8 }

var (
	paletteP0 = rgb{0, 0, 0}
	paletteP1 = rgb{42, 84, 126}
	paletteP2 = rgb{210, 168, 126}
)

// planeBase returns the RAM base address for the given plane (0 or 1)
// given the current VA15 bank-select bit.
func planeBase(plane int, va15 bool) int {
	switch {
	case plane == 0 && !va15:
		return fbPlane0Base0
	case plane == 0 && va15:
		return fbPlane0Base1
	case plane == 1 && !va15:
		return fbPlane1Base0
	default:
		return fbPlane1Base1
	}
}

// pixelAddr returns the byte index and bit mask for pixel (x, y) within
// a plane based at base.
func pixelAddr(base, x, y int) (index int, mask uint8) {
	index = base + (x>>3)*fbColumnStride + y
	mask = 0x80 >> uint(x&7)
	return
}

// RenderFrame decodes both bitplanes out of ram into a packed RGB888
// frame of fbWidth*fbHeight*3 bytes (row-major, top to bottom). Plane 0
// is drawn first against the black background color; plane 1 is then
// additively blended on top, reproducing the two-pass composite the
// video hardware produces.
func RenderFrame(ram []byte, va15 bool) []byte {
	out := make([]byte, fbWidth*fbHeight*3)
	base0 := planeBase(0, va15)
	base1 := planeBase(1, va15)

	for y := 0; y < fbHeight; y++ {
		for x := 0; x < fbWidth; x++ {
			idx0, mask0 := pixelAddr(base0, x, y)
			var c rgb
			if ram[idx0]&mask0 != 0 {
				c = paletteP1
			} else {
				c = paletteP0
			}

			idx1, mask1 := pixelAddr(base1, x, y)
			if ram[idx1]&mask1 != 0 {
				c = addBlend(c, paletteP2)
			}

			off := (y*fbWidth + x) * 3
			out[off+0] = c.r
			out[off+1] = c.g
			out[off+2] = c.b
		}
	}
	return out
}

// addBlend saturates component-wise addition of the plane-1 color atop
// an already-drawn background pixel.
func addBlend(base, add rgb) rgb {
	return rgb{
		r: saturatingAdd(base.r, add.r),
		g: saturatingAdd(base.g, add.g),
		b: saturatingAdd(base.b, add.b),
	}
}

func saturatingAdd(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}
