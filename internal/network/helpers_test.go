package network

import (
	"image/color"
	"math/rand"
	"testing"
	"time"
)

type fill struct {
	x, y, r float64
	alpha   float64
}

type stroke struct {
	x0, y0, x1, y1 float64
	width          float64
	opacity        float64
	alpha          float64
}

// recordingSurface captures draw calls for inspection.
type recordingSurface struct {
	width, height int
	alpha         float64
	ops           []string
	fills         []fill
	strokes       []stroke
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{alpha: 1}
}

func (s *recordingSurface) Resize(w, h int) {
	s.width, s.height = w, h
	s.ops = append(s.ops, "resize")
}

func (s *recordingSurface) Clear() {
	s.fills = s.fills[:0]
	s.strokes = s.strokes[:0]
	s.ops = append(s.ops, "clear")
}

func (s *recordingSurface) SetAlpha(a float64) { s.alpha = a }
func (s *recordingSurface) Alpha() float64     { return s.alpha }

func (s *recordingSurface) FillCircle(cx, cy, r float64, _ color.NRGBA) {
	s.fills = append(s.fills, fill{cx, cy, r, s.alpha})
	s.ops = append(s.ops, "fill")
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, width float64, _ color.NRGBA, opacity float64) {
	s.strokes = append(s.strokes, stroke{x0, y0, x1, y1, width, opacity, s.alpha})
	s.ops = append(s.ops, "stroke")
}

func newTestNetwork(t *testing.T, width, height, count int, seed int64) (*Network, *recordingSurface) {
	t.Helper()
	s := newRecordingSurface()
	n, err := newNetwork(s, width, height, count, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("newNetwork failed: %v", err)
	}
	return n, s
}

// place overwrites the particle positions, keeping count and base radii.
func place(n *Network, pts ...[2]float64) {
	for i, pt := range pts {
		n.particles[i].Pos.X = pt[0]
		n.particles[i].Pos.Y = pt[1]
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("Timed out waiting for condition")
		}
		time.Sleep(time.Millisecond)
	}
}
