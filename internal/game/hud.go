package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/constellation/internal/config"
)

const (
	hudX = 12
	hudY = 12

	// Frame time that maps to the top of the sparkline.
	hudMaxFrame = 2 * time.Second / config.TickRate
)

func (g *game) drawHUD(screen *ebiten.Image) {
	intervals := g.tap.snapshot(config.FrameTapSize)

	status := fmt.Sprintf("FPS %.1f  links %d  up %s",
		averageFPS(intervals), g.connections.Load(), formatDuration(time.Since(g.started)))
	ebitenutil.DebugPrintAt(screen, status, hudX, hudY)

	boxY := float32(hudY + 20)
	vector.DrawFilledRect(screen, hudX, boxY, config.HUDWidth, config.HUDHeight, color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	vector.StrokeRect(screen, hudX, boxY, config.HUDWidth, config.HUDHeight, 1, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)

	// Target frame time.
	targetY := boxY + config.HUDHeight - float32(config.HUDHeight)*float32(time.Second/config.TickRate)/float32(hudMaxFrame)
	vector.StrokeLine(screen, hudX, targetY, hudX+config.HUDWidth, targetY, 1, color.RGBA{R: 100, G: 110, B: 130, A: 100}, false)

	if len(intervals) < 2 {
		return
	}
	step := float32(config.HUDWidth) / float32(len(intervals)-1)
	lineColor := color.RGBA{R: 0xc9, G: 0xa2, B: 0x27, A: 255}
	prevX, prevY := float32(hudX), sparkY(intervals[0], boxY)
	for i := 1; i < len(intervals); i++ {
		x := hudX + float32(i)*step
		y := sparkY(intervals[i], boxY)
		vector.StrokeLine(screen, prevX, prevY, x, y, 1, lineColor, true)
		prevX, prevY = x, y
	}
}

// sparkY maps a frame interval into the HUD box, capped at hudMaxFrame.
func sparkY(d time.Duration, top float32) float32 {
	ratio := float32(d) / float32(hudMaxFrame)
	if ratio > 1 {
		ratio = 1
	}
	return top + config.HUDHeight - ratio*config.HUDHeight
}
