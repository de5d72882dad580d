//go:build !tinygo

package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"fbcon/internal/buildinfo"
)

// RunWindow starts a desktop window that displays the framebuffer.
// It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg HostConfig) error {
	h := NewWithConfig(cfg).(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	info := h.fb.Info()
	ebiten.SetWindowTitle("fbcon (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(info.Width*2, info.Height*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	info := fb.Info()
	if g.img == nil || g.img.Bounds().Dx() != info.Width || g.img.Bounds().Dy() != info.Height {
		g.img = image.NewRGBA(image.Rect(0, 0, info.Width, info.Height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(info.Width, info.Height)
	}

	fb.snapshot(g.scratch)
	DecodeRGBA(info, g.scratch, g.img.Pix)

	g.fbImg.ReplacePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	info := g.h.fb.Info()
	return info.Width, info.Height
}
