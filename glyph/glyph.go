// Package glyph turns single characters into intensity bitmaps for the
// framebuffer console. The rasterization itself is delegated to tinyfont
// faces; this package fixes the cell geometry and the coverage contract.
package glyph

// CellHeight is the fixed height of every glyph cell in pixels. The
// console's line advance is derived from it.
const CellHeight = 14

// baseline is the row inside the cell on which glyphs sit. Descenders
// below CellHeight-baseline rows are clipped.
const baseline = 11

// Weight selects a font weight. Both the weight and the cell height are
// fixed at the call sites; they are not a user-facing knob.
type Weight uint8

const (
	WeightRegular Weight = iota
	WeightBold
)

// Bitmap is the rasterized form of one character: CellHeight rows of
// intensities 0-255, Width columns each. It is produced per character and
// discarded after blitting; holding on to one is safe but pointless.
type Bitmap struct {
	Width int
	Rows  [][]uint8
}

// Source looks up glyph bitmaps.
//
// Lookup reports ok=false when the character has no glyph at the given
// weight; callers decide whether that is fatal. Implementations are not
// required to be safe for concurrent use.
type Source interface {
	Lookup(r rune, w Weight) (Bitmap, bool)
	// MaxWidth is the widest bitmap Lookup can return. The console uses
	// it as a conservative margin for its bottom-overflow check.
	MaxWidth() int
}
