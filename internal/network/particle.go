package network

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/constellation/internal/config"
)

// Particle is a single drifting point of the constellation.
type Particle struct {
	Pos        r2.Vec
	Vel        r2.Vec
	Radius     float64
	BaseRadius float64

	net *Network
}

func newParticle(n *Network) *Particle {
	radius := n.rng.Float64()*config.BaseRadiusSpread + config.MinBaseRadius
	return &Particle{
		Pos: r2.Vec{
			X: n.rng.Float64() * float64(n.width),
			Y: n.rng.Float64() * float64(n.height),
		},
		Vel: r2.Vec{
			X: n.jitter(),
			Y: n.jitter(),
		},
		Radius:     radius,
		BaseRadius: radius,
		net:        n,
	}
}

// Update advances the particle by one frame. The radius returns to its base
// whenever no push applies, including right after the pointer leaves.
func (p *Particle) Update() {
	n := p.net

	p.Radius = p.BaseRadius
	if n.pointer.Present {
		// Vector from particle to pointer; the push goes the other way.
		d := r2.Sub(r2.Vec{X: n.pointer.X, Y: n.pointer.Y}, p.Pos)
		distance := r2.Norm(d)
		if distance < config.PointerRadius {
			force := (config.PointerRadius - distance) / config.PointerRadius
			// atan2(0, 0) is 0, so a pointer exactly on the particle pushes along -x.
			angle := math.Atan2(d.Y, d.X)
			p.Vel.X -= math.Cos(angle) * force * config.RepulsionStrength
			p.Vel.Y -= math.Sin(angle) * force * config.RepulsionStrength
			p.Radius = p.BaseRadius + force*config.SwellAmount
		}
	}

	p.Pos.X += p.Vel.X
	p.Pos.Y += p.Vel.Y

	// Reflect, don't clamp.
	if p.Pos.X < 0 || p.Pos.X > float64(n.width) {
		p.Vel.X = -p.Vel.X
	}
	if p.Pos.Y < 0 || p.Pos.Y > float64(n.height) {
		p.Vel.Y = -p.Vel.Y
	}

	p.Vel.X *= config.Damping
	p.Vel.Y *= config.Damping

	if math.Abs(p.Vel.X) < config.VelocityFloor {
		p.Vel.X = n.jitter()
	}
	if math.Abs(p.Vel.Y) < config.VelocityFloor {
		p.Vel.Y = n.jitter()
	}
}

// Draw fills the particle disc. Global alpha is restored before returning.
func (p *Particle) Draw(s Surface) {
	s.SetAlpha(config.ParticleAlpha)
	defer s.SetAlpha(1)
	s.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, p.net.palette.particle)
}
