// Package app wires the boot-provided framebuffer to the console and
// drives the periodic status print.
package app

import (
	"fbcon/console"
	"fbcon/hal"
	"fbcon/internal/buildinfo"
)

type system struct {
	fb    hal.Framebuffer
	log   hal.Logger
	ticks <-chan uint64

	now      uint64 // ms since boot, from the tick stream
	lastSecs uint64
	dirty    bool
}

// New claims the framebuffer, installs the process console and returns
// the per-frame step function for the host runner.
func New(h hal.HAL) func() error {
	s := newSystem(h)
	return s.step
}

func newSystem(h hal.HAL) *system {
	s := &system{log: h.Logger()}
	if d := h.Display(); d != nil {
		s.fb = d.Framebuffer()
	}
	if t := h.Time(); t != nil {
		s.ticks = t.Ticks()
	}
	if s.fb == nil {
		if s.log != nil {
			s.log.WriteLineString("boot: no framebuffer, console unavailable")
		}
		return s
	}

	buf := s.fb.Buffer()
	// Paint a ramp so the handoff is visible for the instant before the
	// console claims and clears the buffer.
	for i := range buf {
		buf[i] = byte(i % 255)
	}

	console.Install(console.NewLockedWriter(buf, s.fb.Info()))
	console.Printf("fbcon %s\n", buildinfo.Short())
	s.dirty = true
	return s
}

func (s *system) step() error {
	defer func() {
		if v := recover(); v != nil {
			s.fault(v)
		}
	}()

	if s.fb == nil {
		return nil
	}

	if s.ticks != nil {
		for drained := false; !drained; {
			select {
			case tick := <-s.ticks:
				s.now = tick
			default:
				drained = true
			}
		}
	}

	if secs := s.now / 1000; secs > s.lastSecs {
		s.lastSecs = secs
		console.Printf("Time: %ds\n", secs)
		s.dirty = true
	}

	if s.dirty {
		_ = s.fb.Present()
		s.dirty = false
	}
	return nil
}
