//go:build tinygo

package mmio

import "runtime/volatile"

// ReadBack performs a volatile load of *p.
func ReadBack(p *byte) byte {
	return volatile.LoadUint8(p)
}
