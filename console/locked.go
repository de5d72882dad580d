package console

import (
	"fmt"

	"fbcon/hal"
	"fbcon/internal/spin"
)

// LockedWriter serializes access to a Writer behind a spin lock, making a
// single console usable from multiple cores or from an interrupt context
// where no thread scheduler exists.
type LockedWriter struct {
	mu spin.Mutex
	w  *Writer
}

// NewLockedWriter wraps a fresh Writer over fb. See NewWriter for the
// ownership contract.
func NewLockedWriter(fb []byte, info hal.FramebufferInfo) *LockedWriter {
	return &LockedWriter{w: NewWriter(fb, info, nil)}
}

// Printf formats and writes text to the screen. Writes that acquire the
// lock appear byte for byte in acquisition order; the lock is released on
// every non-fatal exit path.
func (lw *LockedWriter) Printf(format string, args ...any) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	fmt.Fprintf(lw.w, format, args...)
}

// WriteString writes s verbatim under the lock.
func (lw *LockedWriter) WriteString(s string) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.w.WriteString(s)
}

// Clear erases the screen under the lock.
func (lw *LockedWriter) Clear() {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.w.Clear()
}

// ForceUnlock clears the lock regardless of its holder.
//
// This is for fault handlers only: a writer that faulted mid-Printf holds
// the lock forever, and the handler still needs to put a last message on
// the screen. The caller must know that no writer is still executing
// inside the critical section; otherwise the buffer and cursor can be
// corrupted. It is deliberately not part of the normal write path.
func (lw *LockedWriter) ForceUnlock() {
	lw.mu.ForceUnlock()
}
