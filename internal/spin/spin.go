// Package spin provides a busy-wait mutual exclusion lock.
//
// Unlike sync.Mutex it never parks the caller in the runtime: acquisition
// retries in place until the lock is free. That makes it usable from
// contexts that have no scheduler to return to (early boot, fault paths).
package spin

import (
	"runtime"
	"sync/atomic"
)

// Mutex is a spin lock. The zero value is unlocked.
//
// There is no fairness: when several callers are spinning, which one
// acquires next is unspecified.
type Mutex struct {
	state atomic.Uint32
}

// Lock acquires the lock, spinning until it is available.
//
// There is no timeout and no cancellation; a holder that never releases
// stalls every other caller.
func (m *Mutex) Lock() {
	for !m.state.CompareAndSwap(0, 1) {
		runtime.Gosched()
	}
}

// TryLock acquires the lock if it is free and reports whether it did.
func (m *Mutex) TryLock() bool {
	return m.state.CompareAndSwap(0, 1)
}

// Unlock releases the lock. It must only be called by the current holder.
func (m *Mutex) Unlock() {
	m.state.Store(0)
}

// ForceUnlock clears the held state regardless of who holds the lock.
//
// This exists for fault handlers that must reacquire a lock whose holder
// faulted mid-critical-section and will never release it. If the holder is
// still running, the exclusion guarantee is gone and the protected state
// may be corrupted. Never use this on a normal code path.
func (m *Mutex) ForceUnlock() {
	m.state.Store(0)
}
