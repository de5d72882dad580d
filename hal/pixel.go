package hal

// DecodePixel reads the pixel at (x, y) from buf and returns it as 8-bit
// RGB. It is the inverse of the console's compositing step and is used by
// the host viewers to display the emulated framebuffer.
func DecodePixel(info FramebufferInfo, buf []byte, x, y int) (r, g, b uint8) {
	off := y*info.Stride + x*info.BytesPerPixel
	if off < 0 || off+info.BytesPerPixel > len(buf) {
		return 0, 0, 0
	}
	switch info.Format {
	case PixelFormatRGB:
		return buf[off], buf[off+1], buf[off+2]
	case PixelFormatBGR:
		return buf[off+2], buf[off+1], buf[off]
	case PixelFormatGray:
		// Stretch the 4-bit intensity used by single-channel targets.
		v := uint16(buf[off]) * 0x11
		if v > 0xFF {
			v = 0xFF
		}
		return uint8(v), uint8(v), uint8(v)
	default:
		return 0, 0, 0
	}
}

// DecodeRGBA converts the whole framebuffer into tightly packed RGBA
// bytes, dst being at least Width*Height*4 long.
func DecodeRGBA(info FramebufferInfo, buf []byte, dst []byte) {
	for y := 0; y < info.Height; y++ {
		for x := 0; x < info.Width; x++ {
			r, g, b := DecodePixel(info, buf, x, y)
			i := (y*info.Width + x) * 4
			if i+3 >= len(dst) {
				return
			}
			dst[i+0] = r
			dst[i+1] = g
			dst[i+2] = b
			dst[i+3] = 0xFF
		}
	}
}
