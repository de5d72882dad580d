// Command fbshot renders text through the framebuffer console into an
// offscreen buffer and writes the result as a PNG. It exists to eyeball
// glyph output and pixel-format handling without starting a viewer.
//
// Usage:
//
//	fbshot -o shot.png "first line" "second line"
//	echo "piped text" | fbshot -format gray -o gray.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"

	"fbcon/console"
	"fbcon/hal"
)

func main() {
	var (
		out    string
		width  int
		height int
		format string
	)
	flag.StringVar(&out, "o", "fbshot.png", "Output PNG path.")
	flag.IntVar(&width, "width", 640, "Framebuffer width in pixels.")
	flag.IntVar(&height, "height", 400, "Framebuffer height in pixels.")
	flag.StringVar(&format, "format", "rgb", "Pixel format: rgb, bgr or gray.")
	flag.Parse()

	pf, err := parseFormat(format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	text, err := inputText(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fb := hal.NewMemFramebuffer(width, height, pf)
	lw := console.NewLockedWriter(fb.Buffer(), fb.Info())
	lw.WriteString(text)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	hal.DecodeRGBA(fb.Info(), fb.Buffer(), img.Pix)

	f, err := os.Create(out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// inputText joins the arguments as lines, or reads stdin when there are
// none. Characters the console has no glyph for are replaced rather than
// letting a screenshot tool halt on them.
func inputText(args []string) (string, error) {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, "\n") + "\n"
	} else {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		text = string(b)
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r':
			return r
		case r == '\t':
			return ' '
		case r < 0x20 || r > 0x7E:
			return '?'
		default:
			return r
		}
	}, text), nil
}

func parseFormat(s string) (hal.PixelFormat, error) {
	switch s {
	case "rgb":
		return hal.PixelFormatRGB, nil
	case "bgr":
		return hal.PixelFormatBGR, nil
	case "gray":
		return hal.PixelFormatGray, nil
	default:
		return 0, fmt.Errorf("unknown pixel format %q (want rgb, bgr or gray)", s)
	}
}
