package glyph

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

// Printable ASCII. The freemono faces are "7b" conversions: anything
// outside this range has no glyph and Lookup reports a miss rather than
// silently drawing tinyfont's nearest-rune fallback.
const (
	minRune = 0x20
	maxRune = 0x7E
)

var defaultSource = NewFontSource(map[Weight]tinyfont.Fonter{
	WeightRegular: &freemono.Regular9pt7b,
	WeightBold:    &freemono.Bold9pt7b,
})

// Default returns the process-wide glyph source. Not safe for concurrent
// use; the console serializes access through its lock.
func Default() Source {
	return defaultSource
}

type fontSource struct {
	faces map[Weight]tinyfont.Fonter
	max   int
}

// NewFontSource builds a Source from tinyfont faces, one per weight.
func NewFontSource(faces map[Weight]tinyfont.Fonter) Source {
	max := 0
	for _, f := range faces {
		_, outboxWidth := tinyfont.LineWidth(f, "0")
		if int(outboxWidth) > max {
			max = int(outboxWidth)
		}
	}
	if max <= 0 || max > CellHeight {
		max = CellHeight
	}
	return &fontSource{faces: faces, max: max}
}

func (s *fontSource) MaxWidth() int { return s.max }

func (s *fontSource) Lookup(r rune, w Weight) (Bitmap, bool) {
	if r < minRune || r > maxRune {
		return Bitmap{}, false
	}
	face, ok := s.faces[w]
	if !ok {
		return Bitmap{}, false
	}

	g := face.GetGlyph(r)
	width := int(g.Info().XAdvance)
	if width <= 0 || width > s.max {
		width = s.max
	}

	c := canvas{width: width, pix: make([]uint8, width*CellHeight)}
	g.Draw(&c, 0, baseline, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

	bm := Bitmap{Width: width, Rows: make([][]uint8, CellHeight)}
	for y := range bm.Rows {
		bm.Rows[y] = c.pix[y*width : (y+1)*width]
	}
	return bm, true
}

// canvas is a drivers.Displayer that captures draws as intensities. Pixels
// outside the cell are clipped, so oversized descenders cannot smear into
// neighbouring cells.
type canvas struct {
	width int
	pix   []uint8
}

func (c *canvas) Size() (x, y int16) {
	return int16(c.width), int16(CellHeight)
}

func (c *canvas) SetPixel(x, y int16, col color.RGBA) {
	if x < 0 || int(x) >= c.width || y < 0 || int(y) >= CellHeight {
		return
	}
	// Antialiasing fonts scale the draw color; the red channel carries
	// the intensity for the white we pass in.
	c.pix[int(y)*c.width+int(x)] = col.R
}

func (c *canvas) Display() error { return nil }
