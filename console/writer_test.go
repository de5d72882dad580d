package console

import (
	"bytes"
	"testing"

	"fbcon/glyph"
	"fbcon/hal"
)

// stubSource produces uniform bitmaps of a fixed width and intensity, so
// tests can predict every byte the writer stores.
type stubSource struct {
	width int
	max   int
	value uint8
	miss  map[rune]bool
}

func (s *stubSource) MaxWidth() int { return s.max }

func (s *stubSource) Lookup(r rune, _ glyph.Weight) (glyph.Bitmap, bool) {
	if s.miss[r] {
		return glyph.Bitmap{}, false
	}
	rows := make([][]uint8, glyph.CellHeight)
	for i := range rows {
		rows[i] = make([]uint8, s.width)
		for j := range rows[i] {
			rows[i][j] = s.value
		}
	}
	return glyph.Bitmap{Width: s.width, Rows: rows}, true
}

func testInfo(w, h int) hal.FramebufferInfo {
	return hal.FramebufferInfo{
		Width:         w,
		Height:        h,
		Stride:        w*4 + 8, // padded rows, like real firmware
		BytesPerPixel: 4,
		Format:        hal.PixelFormatRGB,
	}
}

func newTestWriter(w, h int, src glyph.Source) (*Writer, []byte) {
	info := testInfo(w, h)
	fb := make([]byte, info.Stride*info.Height)
	return NewWriter(fb, info, src), fb
}

func countNonZero(fb []byte) int {
	n := 0
	for _, b := range fb {
		if b != 0 {
			n++
		}
	}
	return n
}

func TestNewWriterClearsBuffer(t *testing.T) {
	info := testInfo(8, 40)
	fb := make([]byte, info.Stride*info.Height)
	for i := range fb {
		fb[i] = 0xAA
	}

	w := NewWriter(fb, info, &stubSource{width: 2, max: 2, value: 200})
	if n := countNonZero(fb); n != 0 {
		t.Errorf("buffer has %d non-zero bytes after construction", n)
	}
	if x, y := w.Position(); x != 0 || y != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0)", x, y)
	}
}

func TestClearIdempotent(t *testing.T) {
	w, fb := newTestWriter(40, 100, &stubSource{width: 2, max: 2, value: 200})
	w.WriteString("hello")

	w.Clear()
	once := append([]byte(nil), fb...)
	x1, y1 := w.Position()

	w.Clear()
	if !bytes.Equal(once, fb) {
		t.Error("second Clear changed the buffer")
	}
	if x2, y2 := w.Position(); x2 != x1 || y2 != y1 || x2 != 0 || y2 != 0 {
		t.Errorf("cursor after double Clear = (%d,%d), want (0,0)", x2, y2)
	}
	if n := countNonZero(fb); n != 0 {
		t.Errorf("buffer has %d non-zero bytes after Clear", n)
	}
}

func TestNewlineAndCarriageReturn(t *testing.T) {
	w, _ := newTestWriter(40, 100, &stubSource{width: 2, max: 2, value: 200})

	w.WriteString("\n")
	if x, y := w.Position(); x != 0 || y != glyph.CellHeight {
		t.Fatalf("cursor after newline = (%d,%d), want (0,%d)", x, y, glyph.CellHeight)
	}

	w.WriteString("ab")
	if x, _ := w.Position(); x != 4 {
		t.Fatalf("cursor x after two glyphs = %d, want 4", x)
	}
	w.WriteString("\r")
	if x, y := w.Position(); x != 0 || y != glyph.CellHeight {
		t.Fatalf("cursor after carriage return = (%d,%d), want (0,%d)", x, y, glyph.CellHeight)
	}
}

func TestWrapPerformsOneNewline(t *testing.T) {
	src := &stubSource{width: 2, max: 2, value: 200}
	w, fb := newTestWriter(4, 100, src)

	w.WriteString("ab")
	if x, y := w.Position(); x != 4 || y != 0 {
		t.Fatalf("cursor before wrap = (%d,%d), want (4,0)", x, y)
	}

	w.WriteString("c")
	if x, y := w.Position(); x != 2 || y != glyph.CellHeight {
		t.Fatalf("cursor after wrap = (%d,%d), want (2,%d)", x, y, glyph.CellHeight)
	}

	// The wrapped glyph rendered at the new line's start.
	info := testInfo(4, 100)
	off := glyph.CellHeight*info.Stride + 0
	if fb[off] != 200 || fb[off+1] != 200 || fb[off+2] != 100 || fb[off+3] != 0 {
		t.Errorf("pixel at wrap target = %v, want [200 200 100 0]", fb[off:off+4])
	}
	// And the first line is still there.
	if fb[0] != 200 {
		t.Error("first line was disturbed by the wrap")
	}
}

func TestBottomOverflowClears(t *testing.T) {
	// height-max = 14, so the first newline lands exactly on the margin.
	src := &stubSource{width: 2, max: 2, value: 200}
	w, fb := newTestWriter(8, glyph.CellHeight+2, src)

	w.WriteString("a\n")
	before := countNonZero(fb)
	if before == 0 {
		t.Fatal("first glyph left no pixels")
	}

	w.WriteString("b")
	if x, y := w.Position(); x != 2 || y != 0 {
		t.Fatalf("cursor after overflow clear = (%d,%d), want (2,0)", x, y)
	}
	// Prior text is gone wholesale, not scrolled: only the new glyph's
	// pixels remain. 2x14 pixels fit the 16-row screen fully, three
	// non-zero bytes each.
	if n := countNonZero(fb); n != before {
		t.Errorf("non-zero bytes after clear+render = %d, want %d", n, before)
	}
}

func TestTinyFramebufferOverflow(t *testing.T) {
	src := &stubSource{width: 2, max: 2, value: 255}
	info := hal.FramebufferInfo{
		Width:         4,
		Height:        2,
		Stride:        32,
		BytesPerPixel: 4,
		Format:        hal.PixelFormatRGB,
	}
	fb := make([]byte, info.Stride*info.Height)
	w := NewWriter(fb, info, src)

	w.WriteString("\n")
	if x, y := w.Position(); x != 0 || y != glyph.CellHeight {
		t.Fatalf("cursor after newline = (%d,%d), want (0,%d)", x, y, glyph.CellHeight)
	}

	// The next visible character cannot fit below the margin; the screen
	// is cleared and the glyph rendered from the top, clipped to the two
	// visible rows.
	w.WriteString("x")
	if x, y := w.Position(); x != 2 || y != 0 {
		t.Fatalf("cursor = (%d,%d), want (2,0)", x, y)
	}
	want := 2 * 2 * 3 // 2x2 visible pixels, 3 non-zero bytes each
	if n := countNonZero(fb); n != want {
		t.Errorf("non-zero bytes = %d, want %d", n, want)
	}
}

func TestBlitHonorsStride(t *testing.T) {
	src := &stubSource{width: 2, max: 2, value: 200}
	w, fb := newTestWriter(8, 40, src)
	info := testInfo(8, 40)

	w.WriteString("a")

	for _, px := range []struct{ x, y int }{{0, 0}, {1, 0}, {0, 13}, {1, 13}} {
		off := px.y*info.Stride + px.x*info.BytesPerPixel
		got := fb[off : off+4]
		if got[0] != 200 || got[1] != 200 || got[2] != 100 || got[3] != 0 {
			t.Errorf("pixel (%d,%d) = %v, want [200 200 100 0]", px.x, px.y, got)
		}
	}
	// Row padding stays untouched.
	pad := fb[0*info.Stride+info.Width*info.BytesPerPixel : 1*info.Stride]
	if countNonZero(pad) != 0 {
		t.Error("blit wrote into row padding")
	}
}

func TestMissingGlyphIsFatal(t *testing.T) {
	src := &stubSource{width: 2, max: 2, value: 200, miss: map[rune]bool{'ŷ': true}}
	w, _ := newTestWriter(40, 100, src)

	defer func() {
		if recover() == nil {
			t.Fatal("missing glyph did not panic")
		}
	}()
	w.WriteString("ŷ")
}

func TestControlRunesSkipLookup(t *testing.T) {
	// \n and \r never reach the glyph source.
	src := &stubSource{width: 2, max: 2, value: 200, miss: map[rune]bool{'\n': true, '\r': true}}
	w, _ := newTestWriter(40, 100, src)
	w.WriteString("\r\n\r\n")
	if x, y := w.Position(); x != 0 || y != 2*glyph.CellHeight {
		t.Fatalf("cursor = (%d,%d), want (0,%d)", x, y, 2*glyph.CellHeight)
	}
}
