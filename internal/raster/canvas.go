// Package raster is a software 2D canvas: anti-aliased discs and lines
// composited onto an RGBA back buffer, with a front buffer other goroutines
// can read completed frames from.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/vector"
)

var ErrInvalidSize = errors.New("raster: canvas size must be positive")

// kappa places cubic Bézier control points for a quarter circle.
const kappa = 0.5522847498

type Canvas struct {
	back  *image.RGBA
	alpha float64
	ras   *vector.Rasterizer

	mu    sync.Mutex
	front *image.RGBA
}

func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	c := &Canvas{alpha: 1}
	c.Resize(width, height)
	return c, nil
}

// Resize reallocates the back buffer. Contents are discarded.
func (c *Canvas) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if c.back != nil && c.back.Rect.Dx() == width && c.back.Rect.Dy() == height {
		return
	}
	c.back = image.NewRGBA(image.Rect(0, 0, width, height))
	c.ras = vector.NewRasterizer(width, height)
}

func (c *Canvas) Bounds() image.Rectangle { return c.back.Rect }

func (c *Canvas) Clear() {
	clear(c.back.Pix)
}

func (c *Canvas) SetAlpha(a float64) { c.alpha = clamp01(a) }
func (c *Canvas) Alpha() float64     { return c.alpha }

func (c *Canvas) FillCircle(cx, cy, r float64, col color.NRGBA) {
	if r <= 0 {
		return
	}
	x, y, k := float32(cx), float32(cy), float32(r*kappa)
	rr := float32(r)

	c.begin()
	c.ras.MoveTo(x+rr, y)
	c.ras.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	c.ras.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	c.ras.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	c.ras.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	c.ras.ClosePath()
	c.paint(col, c.alpha)
}

// StrokeLine draws a butt-capped segment. opacity replaces the color's own
// alpha and is scaled by the global alpha.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col color.NRGBA, opacity float64) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	// Half-width normal.
	nx := float32(-dy / length * width / 2)
	ny := float32(dx / length * width / 2)
	ax, ay, bx, by := float32(x0), float32(y0), float32(x1), float32(y1)

	c.begin()
	c.ras.MoveTo(ax+nx, ay+ny)
	c.ras.LineTo(bx+nx, by+ny)
	c.ras.LineTo(bx-nx, by-ny)
	c.ras.LineTo(ax-nx, ay-ny)
	c.ras.ClosePath()
	c.paint(col, opacity*c.alpha)
}

func (c *Canvas) begin() {
	b := c.back.Rect
	c.ras.Reset(b.Dx(), b.Dy())
	c.ras.DrawOp = draw.Over
}

func (c *Canvas) paint(col color.NRGBA, alpha float64) {
	col.A = uint8(clamp01(alpha)*255 + 0.5)
	if col.A == 0 {
		return
	}
	c.ras.Draw(c.back, c.back.Rect, image.NewUniform(col), image.Point{})
}

// Present publishes the back buffer as the current frame.
func (c *Canvas) Present() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.front == nil || c.front.Rect != c.back.Rect {
		c.front = image.NewRGBA(c.back.Rect)
	}
	copy(c.front.Pix, c.back.Pix)
}

// CopyFront calls fn with the last presented frame while holding the lock.
// fn must not retain img. It reports false if nothing was presented yet.
func (c *Canvas) CopyFront(fn func(img *image.RGBA)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.front == nil {
		return false
	}
	fn(c.front)
	return true
}

// Snapshot returns a copy of the last presented frame, or nil.
func (c *Canvas) Snapshot() *image.RGBA {
	var out *image.RGBA
	c.CopyFront(func(img *image.RGBA) {
		out = image.NewRGBA(img.Rect)
		copy(out.Pix, img.Pix)
	})
	return out
}

// BackBuffer exposes the frame being drawn. Only the drawing goroutine may
// use it.
func (c *Canvas) BackBuffer() *image.RGBA { return c.back }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
