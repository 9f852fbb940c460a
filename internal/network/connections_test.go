package network

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/constellation/internal/config"
)

func TestConnectionScenario(t *testing.T) {
	n, s := newTestNetwork(t, 800, 600, 3, 1)
	place(n, [2]float64{0, 0}, [2]float64{50, 0}, [2]float64{200, 200})

	n.drawConnections()

	if len(s.strokes) != 1 {
		t.Fatalf("Expected 1 connection, got %d", len(s.strokes))
	}
	st := s.strokes[0]
	if st.x0 != 0 || st.y0 != 0 || st.x1 != 50 || st.y1 != 0 {
		t.Errorf("Expected line (0,0)-(50,0), got (%v,%v)-(%v,%v)", st.x0, st.y0, st.x1, st.y1)
	}
	if math.Abs(st.opacity-0.0875) > 1e-9 {
		t.Errorf("Expected opacity 0.0875, got %v", st.opacity)
	}
	if n.Connections() != 1 {
		t.Errorf("Expected Connections() 1, got %d", n.Connections())
	}
}

func TestConnectionThresholdIsStrict(t *testing.T) {
	tests := []struct {
		name string
		dx   float64
		want int
	}{
		{"Just inside", config.ConnectionDistance - 1e-9, 1},
		{"At threshold", config.ConnectionDistance, 0},
		{"Beyond", config.ConnectionDistance + 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, s := newTestNetwork(t, 800, 600, 2, 1)
			place(n, [2]float64{100, 100}, [2]float64{100 + tt.dx, 100})

			n.drawConnections()

			if len(s.strokes) != tt.want {
				t.Errorf("Expected %d connections, got %d", tt.want, len(s.strokes))
			}
		})
	}
}

func TestConnectionOpacityMonotonic(t *testing.T) {
	prev := math.Inf(1)
	for d := 0.0; d < config.ConnectionDistance; d += 0.5 {
		o := connectionOpacity(d, config.ConnectionDistance)
		if o >= prev {
			t.Fatalf("Expected opacity(%v) < previous %v, got %v", d, prev, o)
		}
		if o <= 0 || o > config.ConnectionAlpha {
			t.Fatalf("Expected opacity(%v) in (0, %v], got %v", d, config.ConnectionAlpha, o)
		}
		prev = o
	}
	if o := connectionOpacity(config.ConnectionDistance, config.ConnectionDistance); o != 0 {
		t.Errorf("Expected opacity 0 at threshold, got %v", o)
	}
}

type segment [4]float64

func normalize(x0, y0, x1, y1 float64) segment {
	if x1 < x0 || (x1 == x0 && y1 < y0) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	return segment{x0, y0, x1, y1}
}

func strokeSet(t *testing.T, s *recordingSurface) map[segment]bool {
	t.Helper()
	set := make(map[segment]bool, len(s.strokes))
	for _, st := range s.strokes {
		key := normalize(st.x0, st.y0, st.x1, st.y1)
		if set[key] {
			t.Fatalf("Duplicate connection %v", key)
		}
		set[key] = true
	}
	return set
}

func TestConnectionSymmetry(t *testing.T) {
	n, s := newTestNetwork(t, 500, 400, 60, 21)

	n.drawConnections()
	forward := strokeSet(t, s)

	want := 0
	for i := range n.particles {
		for j := range n.particles {
			if i < j && r2.Norm(r2.Sub(n.particles[i].Pos, n.particles[j].Pos)) < config.ConnectionDistance {
				want++
			}
		}
	}
	if len(forward) != want {
		t.Fatalf("Expected %d connections, got %d", want, len(forward))
	}

	// Reversing the enumeration order must draw the same set.
	for i, j := 0, len(n.particles)-1; i < j; i, j = i+1, j-1 {
		n.particles[i], n.particles[j] = n.particles[j], n.particles[i]
	}
	s.Clear()
	n.drawConnections()
	reversed := strokeSet(t, s)

	if len(reversed) != len(forward) {
		t.Fatalf("Expected %d connections after reversal, got %d", len(forward), len(reversed))
	}
	for k := range forward {
		if !reversed[k] {
			t.Errorf("Connection %v missing after reversal", k)
		}
	}
}

func TestGridMatchesExhaustiveScan(t *testing.T) {
	n, _ := newTestNetwork(t, 1000, 800, 500, 8)
	rng := rand.New(rand.NewSource(3))
	// Some particles outside the canvas, as after a shrink.
	for _, p := range n.particles[:40] {
		p.Pos.X = -rng.Float64() * 300
		p.Pos.Y = 800 + rng.Float64()*300
	}

	got := make(map[[2]int]float64)
	visitPairs(n.particles, config.ConnectionDistance, func(i, j int, d float64) {
		if i >= j {
			t.Fatalf("Expected i < j, got (%d, %d)", i, j)
		}
		key := [2]int{i, j}
		if _, dup := got[key]; dup {
			t.Fatalf("Duplicate pair %v", key)
		}
		got[key] = d
	})

	want := 0
	for i := 0; i < len(n.particles); i++ {
		for j := i + 1; j < len(n.particles); j++ {
			d := r2.Norm(r2.Sub(n.particles[i].Pos, n.particles[j].Pos))
			if d >= config.ConnectionDistance {
				continue
			}
			want++
			if gd, ok := got[[2]int{i, j}]; !ok {
				t.Errorf("Pair (%d, %d) at %v missing from grid scan", i, j, d)
			} else if gd != d {
				t.Errorf("Pair (%d, %d): Expected distance %v, got %v", i, j, d, gd)
			}
		}
	}
	if len(got) != want {
		t.Errorf("Expected %d pairs, got %d", want, len(got))
	}
}
