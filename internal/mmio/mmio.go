//go:build !tinygo

// Package mmio provides load/store primitives for memory that is observed
// by hardware, where ordinary accesses could legally be elided.
package mmio

// ReadBack performs a load of *p that the compiler will not remove.
//
// A framebuffer looks like plain memory with no readers, so a store into
// it is a candidate for dead-store elimination. Reading the byte back
// through an opaque call keeps the store observable.
//
//go:noinline
func ReadBack(p *byte) byte {
	return *p
}
