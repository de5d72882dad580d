//go:build !tinygo

package hal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
)

// RunTUI displays the framebuffer inside the current terminal using
// half-block cells (one cell shows two vertically stacked pixels). It is
// the viewer of choice over ssh, where no window system is available.
// Quit with q, Esc or Ctrl-C.
func RunTUI(ctx context.Context, newApp func(HAL) func() error, cfg HostConfig) error {
	h := NewWithConfig(cfg).(*hostHAL)
	step := newApp(h)

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	quit := make(chan struct{})
	go func() {
		defer close(quit)
		for {
			switch ev := s.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					return
				}
			case nil:
				return
			}
		}
	}()

	info := h.fb.Info()
	scratch := make([]byte, len(h.fb.buf))

	t := time.NewTicker(time.Second / 30)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-quit:
			return nil
		case <-t.C:
			h.t.step()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			h.fb.snapshot(scratch)
			drawHalfBlocks(s, info, scratch)
			s.Show()
		}
	}
}

func drawHalfBlocks(s tcell.Screen, info FramebufferInfo, buf []byte) {
	cols, rows := s.Size()
	for cy := 0; cy < rows && cy*2 < info.Height; cy++ {
		for cx := 0; cx < cols && cx < info.Width; cx++ {
			tr, tg, tb := DecodePixel(info, buf, cx, cy*2)
			br, bg, bb := tr, tg, tb
			if cy*2+1 < info.Height {
				br, bg, bb = DecodePixel(info, buf, cx, cy*2+1)
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(tr), int32(tg), int32(tb))).
				Background(tcell.NewRGBColor(int32(br), int32(bg), int32(bb)))
			s.SetContent(cx, cy, '▀', nil, style)
		}
	}
}
