//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"fbcon/app"
	"fbcon/hal"
)

func main() {
	var (
		headless hal.HeadlessConfig
		tui      bool
		format   string
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a viewer.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&tui, "tui", false, "Render the framebuffer in the terminal instead of a window.")
	flag.IntVar(&headless.Host.Width, "width", 640, "Framebuffer width in pixels.")
	flag.IntVar(&headless.Host.Height, "height", 400, "Framebuffer height in pixels.")
	flag.StringVar(&format, "format", "rgb", "Framebuffer pixel format: rgb, bgr or gray.")
	flag.Parse()

	pf, err := parseFormat(format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	headless.Host.Format = pf

	if headless.Enabled || tui {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		run := hal.RunHeadless
		if tui {
			run = func(ctx context.Context, newApp func(hal.HAL) func() error, cfg hal.HeadlessConfig) error {
				return hal.RunTUI(ctx, newApp, cfg.Host)
			}
		}
		if err := run(ctx, app.New, headless); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(app.New, headless.Host); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
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
