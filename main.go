package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/constellation/internal/config"
	"github.com/iburimskiy/constellation/internal/game"
	"github.com/iburimskiy/constellation/internal/network"
	"github.com/iburimskiy/constellation/internal/raster"
)

func main() {
	var (
		width    = flag.Int("width", config.WindowWidth, "Viewport width in pixels.")
		height   = flag.Int("height", config.WindowHeight, "Viewport height in pixels.")
		seed     = flag.Int64("seed", 0, "Random seed (0 picks one from the clock).")
		headless = flag.Bool("headless", false, "Render frames to a GIF instead of opening a window.")
		frames   = flag.Int("frames", 180, "Frames to render in headless mode.")
		out      = flag.String("out", "constellation.gif", "Output file in headless mode.")
		hud      = flag.Bool("hud", false, "Show the HUD on startup.")
		debug    = flag.Bool("debug", false, "Verbose log timestamps with source locations.")
	)
	flag.Parse()

	setupLogging(*debug)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("starting %dx%d, seed %d", *width, *height, *seed)

	if err := run(*width, *height, *seed, *headless, *frames, *out, *hud); err != nil {
		log.Printf("fatal: %v", err)
		os.Exit(1)
	}
	log.Println("bye")
}

func setupLogging(debug bool) {
	log.SetPrefix("constellation: ")
	if debug {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
		return
	}
	log.SetFlags(log.LstdFlags)
}

func run(width, height int, seed int64, headless bool, frames int, out string, hud bool) error {
	bg, err := colorful.Hex(config.BackgroundColor)
	if err != nil {
		return fmt.Errorf("background color: %w", err)
	}
	r, g, b := bg.RGB255()
	background := color.RGBA{R: r, G: g, B: b, A: 255}

	canvas, err := raster.New(width, height)
	if err != nil {
		return fmt.Errorf("create canvas: %w", err)
	}
	net, err := network.New(canvas, width, height, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("create network: %w", err)
	}

	if headless {
		return renderGIF(net, canvas, background, frames, out)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return game.Run(ctx, net, canvas, game.Options{
		Width:      width,
		Height:     height,
		Background: background,
		ShowHUD:    hud,
	})
}

// renderGIF steps the network synchronously with a pointer circling the
// centre, so repulsion shows up in the recording.
func renderGIF(net *network.Network, canvas *raster.Canvas, background color.Color, frames int, out string) error {
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}

	w, h := net.Size()
	cx, cy := float64(w)/2, float64(h)/2
	orbit := math.Min(cx, cy) / 2

	// 2/100 s per frame is the closest GIF delay to the tick rate.
	rec := raster.NewGIFRecorder(background, 100/config.TickRate+1)
	for i := 0; i < frames; i++ {
		angle := 2 * math.Pi * float64(i) / float64(frames)
		net.PointerMove(cx+orbit*math.Cos(angle), cy+orbit*math.Sin(angle))
		net.Tick()
		rec.AddFrame(canvas.BackBuffer())
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := rec.Encode(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("wrote %d frames to %s", frames, out)
	return nil
}
