// Package console renders text straight into a boot-provided linear
// framebuffer. It has no dependency on operating-system services: no
// heap-backed display server, no blocking locks, no recoverable errors.
// Conditions that leave it unable to render at all are panics, modelling
// a machine halt.
package console

import (
	"fmt"

	"fbcon/glyph"
	"fbcon/hal"
)

// Additional vertical space between lines.
const lineSpacing = 0

// weight is the single font weight the console renders with.
const weight = glyph.WeightRegular

// Writer draws characters into a pixel framebuffer and tracks the cursor.
//
// It is not safe for concurrent use; wrap it in a LockedWriter for that.
type Writer struct {
	fb   []byte
	info hal.FramebufferInfo
	src  glyph.Source
	x, y int
}

// NewWriter takes exclusive ownership of fb, which must be at least
// info.Stride*info.Height bytes, and clears it. A nil src selects the
// default glyph source.
func NewWriter(fb []byte, info hal.FramebufferInfo, src glyph.Source) *Writer {
	if src == nil {
		src = glyph.Default()
	}
	w := &Writer{fb: fb, info: info, src: src}
	w.Clear()
	return w
}

// Clear erases the whole screen and homes the cursor.
func (w *Writer) Clear() {
	w.x, w.y = 0, 0
	for i := range w.fb {
		w.fb[i] = 0
	}
}

// Position returns the cursor position in pixels.
func (w *Writer) Position() (x, y int) {
	return w.x, w.y
}

func (w *Writer) newline() {
	w.y += glyph.CellHeight + lineSpacing
	w.carriageReturn()
}

func (w *Writer) carriageReturn() {
	w.x = 0
}

func (w *Writer) writeRune(r rune) {
	switch r {
	case '\n':
		w.newline()
	case '\r':
		w.carriageReturn()
	default:
		if w.x >= w.info.Width {
			w.newline()
		}
		// Conservative bottom margin. When the next line could run past
		// it, throw the whole screen away and start over at the top;
		// there is no scrollback to move things into.
		if w.y >= w.info.Height-w.src.MaxWidth() {
			w.Clear()
		}
		bm, ok := w.src.Lookup(r, weight)
		if !ok {
			panic(fmt.Sprintf("console: no glyph for %q", r))
		}
		w.blit(bm)
	}
}

// blit composites one glyph bitmap at the cursor and advances it by the
// bitmap width.
func (w *Writer) blit(bm glyph.Bitmap) {
	for row, line := range bm.Rows {
		for col, v := range line {
			w.writePixel(w.x+col, w.y+row, v)
		}
	}
	w.x += bm.Width
}

// WriteString renders s rune by rune. It never fails; the signature
// exists so fmt can print into the writer.
func (w *Writer) WriteString(s string) (int, error) {
	for _, r := range s {
		w.writeRune(r)
	}
	return len(s), nil
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.WriteString(string(p))
}
