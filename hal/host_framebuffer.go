//go:build !tinygo

package hal

import "sync"

// rowAlign pads host framebuffer rows the way real boot firmware tends to,
// so stride != width*bpp is exercised everywhere, not just on hardware.
const rowAlign = 64

type hostFramebuffer struct {
	mu   sync.Mutex
	info FramebufferInfo
	buf  []byte
}

// NewMemFramebuffer returns an in-memory framebuffer with the given
// resolution and pixel format. Rows are padded to rowAlign bytes.
func NewMemFramebuffer(width, height int, format PixelFormat) Framebuffer {
	bpp := 4
	if format == PixelFormatGray {
		bpp = 1
	}
	stride := width * bpp
	if rem := stride % rowAlign; rem != 0 {
		stride += rowAlign - rem
	}
	return &hostFramebuffer{
		info: FramebufferInfo{
			Width:         width,
			Height:        height,
			Stride:        stride,
			BytesPerPixel: bpp,
			Format:        format,
		},
		buf: make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Info() FramebufferInfo { return f.info }
func (f *hostFramebuffer) Buffer() []byte        { return f.buf }
func (f *hostFramebuffer) Present() error        { return nil }

// snapshot copies the buffer for a viewer. Viewers read concurrently with
// the console writer; tearing within a frame is acceptable on the host.
func (f *hostFramebuffer) snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
