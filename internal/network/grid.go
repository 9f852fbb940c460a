package network

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

type cell struct{ x, y int }

// grid buckets particle indices into square cells of the connection
// threshold, so only the 3x3 neighbourhood of a cell needs checking.
type grid struct {
	size  float64
	ps    []*Particle
	cells map[cell][]int
}

func newGrid(ps []*Particle, size float64) *grid {
	g := &grid{
		size:  size,
		ps:    ps,
		cells: make(map[cell][]int, len(ps)),
	}
	for i, p := range ps {
		c := g.cellOf(p.Pos)
		g.cells[c] = append(g.cells[c], i)
	}
	return g
}

func (g *grid) cellOf(v r2.Vec) cell {
	return cell{
		x: int(math.Floor(v.X / g.size)),
		y: int(math.Floor(v.Y / g.size)),
	}
}

func (g *grid) visitPairs(threshold float64, fn func(i, j int, distance float64)) {
	for i, p := range g.ps {
		c := g.cellOf(p.Pos)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				for _, j := range g.cells[cell{c.x + dx, c.y + dy}] {
					if j <= i {
						continue
					}
					d := r2.Norm(r2.Sub(p.Pos, g.ps[j].Pos))
					if d < threshold {
						fn(i, j, d)
					}
				}
			}
		}
	}
}
