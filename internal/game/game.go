// Package game hosts the constellation in an ebiten window: it forwards
// cursor and resize events to the simulation loop and shows the frames the
// loop presents.
package game

import (
	"context"
	"errors"
	"image"
	"image/color"
	"log"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/constellation/internal/config"
	"github.com/iburimskiy/constellation/internal/network"
	"github.com/iburimskiy/constellation/internal/raster"
)

type Options struct {
	Width, Height int
	Background    color.Color
	ShowHUD       bool
}

type game struct {
	ctx        context.Context
	loop       *network.Loop
	canvas     *raster.Canvas
	tap        *frameTap
	background color.Color

	frame         *ebiten.Image
	width, height int
	pointer       network.PointerTracker

	connections atomic.Int64
	started     time.Time

	showHUD bool
	lastErr error
}

// Run opens the window and animates net, which must draw into canvas, until
// the window is closed or ctx is cancelled.
func Run(ctx context.Context, net *network.Network, canvas *raster.Canvas, opts Options) error {
	g := &game{
		canvas:     canvas,
		tap:        newFrameTap(config.FrameTapSize),
		background: opts.Background,
		width:      opts.Width,
		height:     opts.Height,
		showHUD:    opts.ShowHUD,
		started:    time.Now(),
	}
	g.loop = network.NewLoop(net, time.Second/config.TickRate, g.onFrame)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g.ctx = ctx
	if err := g.loop.Start(ctx); err != nil {
		return err
	}
	defer g.loop.Stop()

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("Constellation - H: HUD, S: save snapshot, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// onFrame runs on the loop goroutine after every tick.
func (g *game) onFrame(n *network.Network) {
	g.canvas.Present()
	g.tap.record(time.Now())
	g.connections.Store(int64(n.Connections()))
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.saveSnapshot(); err != nil {
			log.Printf("snapshot: %v", err)
			g.lastErr = err
		}
	}

	x, y := ebiten.CursorPosition()
	g.pointer.Track(x, y, g.width, g.height, g.loop)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	g.canvas.CopyFront(func(img *image.RGBA) {
		w, h := img.Rect.Dx(), img.Rect.Dy()
		if g.frame == nil || g.frame.Bounds().Dx() != w || g.frame.Bounds().Dy() != h {
			if g.frame != nil {
				g.frame.Deallocate()
			}
			g.frame = ebiten.NewImage(w, h)
		}
		g.frame.WritePixels(img.Pix)
	})
	if g.frame != nil {
		screen.DrawImage(g.frame, nil)
	}

	if g.showHUD {
		g.drawHUD(screen)
	}
	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 12, g.height-20)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.loop.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *game) saveSnapshot() error {
	img := g.canvas.Snapshot()
	if img == nil {
		return nil
	}

	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename("constellation.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}

	if err := raster.SavePNG(filename, raster.Flatten(img, g.background)); err != nil {
		return err
	}
	log.Printf("saved snapshot to %s", filename)
	g.lastErr = nil
	return nil
}
