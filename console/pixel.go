package console

import (
	"fbcon/hal"
	"fbcon/internal/mmio"
)

// Single-channel targets get a binary threshold: anything brighter than
// grayThreshold becomes grayOn, everything else is off.
const (
	grayThreshold = 200
	grayOn        = 0x0F
)

// colorBytes maps an intensity to the raw bytes of one pixel. The first
// Info().BytesPerPixel bytes are stored; the rest is padding.
//
// The RGB and BGR mappings halve the blue channel on purpose, giving the
// console its warm tint instead of true grayscale.
//
// An unknown format is fatal: without the layout there is no way to render
// anything, and this runs before any error reporting exists.
func colorBytes(intensity uint8, format hal.PixelFormat) [4]byte {
	switch format {
	case hal.PixelFormatRGB:
		return [4]byte{intensity, intensity, intensity / 2, 0}
	case hal.PixelFormatBGR:
		return [4]byte{intensity / 2, intensity, intensity, 0}
	case hal.PixelFormatGray:
		if intensity > grayThreshold {
			return [4]byte{grayOn, 0, 0, 0}
		}
		return [4]byte{}
	default:
		panic("console: unsupported pixel format " + format.String())
	}
}

// writePixel composites one pixel into the framebuffer. Pixels outside
// the visible area are dropped.
func (w *Writer) writePixel(x, y int, intensity uint8) {
	if x < 0 || x >= w.info.Width || y < 0 || y >= w.info.Height {
		return
	}
	c := colorBytes(intensity, w.info.Format)
	off := y*w.info.Stride + x*w.info.BytesPerPixel
	copy(w.fb[off:off+w.info.BytesPerPixel], c[:])
	// The framebuffer has no readers the compiler can see; read the first
	// byte back so the store cannot be elided.
	mmio.ReadBack(&w.fb[off])
}
