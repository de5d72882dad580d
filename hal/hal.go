// Package hal is the only contact point between the console subsystem and
// the outside world: the boot-provided framebuffer, a timestamp source,
// and a host-side diagnostic logger.
package hal

// PixelFormat defines the framebuffer pixel encoding negotiated at boot.
type PixelFormat uint8

const (
	// PixelFormatRGB is byte order red, green, blue, then padding up to
	// BytesPerPixel.
	PixelFormatRGB PixelFormat = iota + 1
	// PixelFormatBGR is byte order blue, green, red, then padding.
	PixelFormatBGR
	// PixelFormatGray is a single intensity channel per pixel.
	PixelFormatGray
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGB:
		return "rgb"
	case PixelFormatBGR:
		return "bgr"
	case PixelFormatGray:
		return "gray"
	default:
		return "unknown"
	}
}

// FramebufferInfo describes the layout of a framebuffer. It is handed over
// once at boot and never changes for the lifetime of the buffer, so it may
// be shared freely without locking.
type FramebufferInfo struct {
	// Width and Height are the visible resolution in pixels.
	Width  int
	Height int
	// Stride is the number of bytes per row. It may exceed
	// Width*BytesPerPixel when rows carry alignment padding.
	Stride int
	// BytesPerPixel is the storage size of one pixel.
	BytesPerPixel int
	Format        PixelFormat
}

// Framebuffer is a linear pixel buffer plus a "present" hook.
//
// Buffer returns the backing bytes directly; whoever takes ownership of
// them is expected to be the only writer from then on.
type Framebuffer interface {
	Info() FramebufferInfo
	Buffer() []byte
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Time provides a base tick stream, one tick per millisecond.
//
// This is the monotonic counter used to throttle periodic prints; nothing
// in the console core depends on it.
type Time interface {
	Ticks() <-chan uint64
}

// Logger writes newline-delimited diagnostic lines on the host side.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// HAL bundles the platform services the subsystem consumes.
type HAL interface {
	Logger() Logger
	Display() Display
	Time() Time
}
