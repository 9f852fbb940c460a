package network

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/constellation/internal/config"
)

// connectionOpacity maps a pair distance to stroke opacity. Distances at or
// beyond threshold yield 0.
func connectionOpacity(distance, threshold float64) float64 {
	if distance >= threshold {
		return 0
	}
	return (1 - distance/threshold) * config.ConnectionAlpha
}

// visitPairs calls fn once for every unordered pair (i < j) whose distance is
// strictly below threshold. Small sets are scanned exhaustively; above
// config.GridThreshold a uniform grid prunes the candidates.
func visitPairs(ps []*Particle, threshold float64, fn func(i, j int, distance float64)) {
	if len(ps) > config.GridThreshold {
		newGrid(ps, threshold).visitPairs(threshold, fn)
		return
	}
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			d := r2.Norm(r2.Sub(ps[i].Pos, ps[j].Pos))
			if d < threshold {
				fn(i, j, d)
			}
		}
	}
}

func (n *Network) drawConnections() {
	n.connections = 0
	visitPairs(n.particles, config.ConnectionDistance, func(i, j int, d float64) {
		a, b := n.particles[i].Pos, n.particles[j].Pos
		n.surface.StrokeLine(a.X, a.Y, b.X, b.Y,
			config.ConnectionLineWidth, n.palette.connection,
			connectionOpacity(d, config.ConnectionDistance))
		n.connections++
	})
}
