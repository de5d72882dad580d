//go:build !tinygo

package hal

import (
	"go.uber.org/zap"
)

// HostConfig selects the emulated framebuffer handed to the subsystem.
type HostConfig struct {
	Width  int
	Height int
	Format PixelFormat
}

func (c *HostConfig) fill() {
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 400
	}
	if c.Format == 0 {
		c.Format = PixelFormatRGB
	}
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	t      *hostTime
}

// New returns a host HAL with the default framebuffer.
func New() HAL {
	return NewWithConfig(HostConfig{})
}

// NewWithConfig returns a host HAL implementation.
func NewWithConfig(cfg HostConfig) HAL {
	cfg.fill()
	return &hostHAL{
		logger: newHostLogger(),
		fb:     NewMemFramebuffer(cfg.Width, cfg.Height, cfg.Format).(*hostFramebuffer),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

// hostLogger adapts the line-oriented Logger interface onto zap. On real
// hardware the equivalent sink is a serial port; on the host structured
// stderr output is more useful.
type hostLogger struct {
	l *zap.SugaredLogger
}

func newHostLogger() *hostLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		return &hostLogger{l: zap.NewNop().Sugar()}
	}
	return &hostLogger{l: l.Sugar()}
}

func (l *hostLogger) WriteLineString(s string) { l.l.Info(s) }
func (l *hostLogger) WriteLineBytes(b []byte)  { l.l.Info(string(b)) }
