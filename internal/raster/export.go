package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"
)

// Flatten composites img over an opaque background.
func Flatten(img *image.RGBA, background color.Color) *image.RGBA {
	out := image.NewRGBA(img.Rect)
	draw.Draw(out, out.Rect, image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(out, out.Rect, img, img.Rect.Min, draw.Over)
	return out
}

func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// GIFRecorder accumulates frames of a looping animation. Each frame is
// flattened and dithered to the Plan 9 palette when added, so only one byte
// per pixel is kept per frame.
type GIFRecorder struct {
	background color.Color
	delay      int
	scratch    *image.RGBA
	anim       gif.GIF
}

// NewGIFRecorder returns a recorder that composites frames over background,
// delay in 1/100 s per frame.
func NewGIFRecorder(background color.Color, delay int) *GIFRecorder {
	return &GIFRecorder{background: background, delay: delay}
}

func (r *GIFRecorder) AddFrame(img *image.RGBA) {
	if r.scratch == nil || r.scratch.Rect != img.Rect {
		r.scratch = image.NewRGBA(img.Rect)
	}
	draw.Draw(r.scratch, r.scratch.Rect, image.NewUniform(r.background), image.Point{}, draw.Src)
	draw.Draw(r.scratch, r.scratch.Rect, img, img.Rect.Min, draw.Over)

	p := image.NewPaletted(img.Rect, palette.Plan9)
	draw.FloydSteinberg.Draw(p, img.Rect, r.scratch, img.Rect.Min)
	r.anim.Image = append(r.anim.Image, p)
	r.anim.Delay = append(r.anim.Delay, r.delay)
}

func (r *GIFRecorder) Len() int { return len(r.anim.Image) }

func (r *GIFRecorder) Encode(w io.Writer) error {
	if len(r.anim.Image) == 0 {
		return fmt.Errorf("encode gif: no frames")
	}
	return gif.EncodeAll(w, &r.anim)
}
