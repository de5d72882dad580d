package console

import "sync/atomic"

// Slot is a write-once holder for a console handle. The zero value is
// empty. There is no teardown; a filled slot stays filled for the process
// lifetime.
type Slot struct {
	p atomic.Pointer[LockedWriter]
}

// Install stores w if the slot is still empty and reports whether it did.
// First writer wins: a second framebuffer handoff is ignored rather than
// silently invalidating writers already using the first console.
func (s *Slot) Install(w *LockedWriter) bool {
	if w == nil {
		return false
	}
	return s.p.CompareAndSwap(nil, w)
}

// Installed reports whether the slot holds a console.
func (s *Slot) Installed() bool {
	return s.p.Load() != nil
}

// Handle returns the installed console. Calling it before Install is
// fatal: there is no render target yet and nowhere to report that.
func (s *Slot) Handle() *LockedWriter {
	w := s.p.Load()
	if w == nil {
		panic("console: used before a framebuffer was installed")
	}
	return w
}

// global is the process-wide console slot, set once when the boot
// framebuffer becomes available.
var global Slot

// Install places w in the process-wide slot; first writer wins.
func Install(w *LockedWriter) bool { return global.Install(w) }

// Installed reports whether the process console is available.
func Installed() bool { return global.Installed() }

// Handle returns the process console, panicking before Install.
func Handle() *LockedWriter { return global.Handle() }

// Printf formats and writes text to the process console. Callable from
// anywhere, including a fault context, once Install has run.
func Printf(format string, args ...any) {
	global.Handle().Printf(format, args...)
}
