// Package network simulates the particle constellation: drifting particles
// pushed away by the pointer and joined by lines when they come close.
package network

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/constellation/internal/config"
)

var (
	ErrNoSurface   = errors.New("network: no drawing surface")
	ErrInvalidSize = errors.New("network: canvas size must be positive")
)

// Pointer is the last known cursor position. Present is false once the
// cursor has left the canvas.
type Pointer struct {
	X, Y    float64
	Present bool
}

type palette struct {
	particle   color.NRGBA
	connection color.NRGBA
}

// Network owns the surface, the particles and the pointer state. It is not
// safe for concurrent use; drive it from a single goroutine (see Loop).
type Network struct {
	surface   Surface
	width     int
	height    int
	particles []*Particle
	pointer   Pointer
	palette   palette
	rng       *rand.Rand

	connections int
}

// New binds a Network to surface, sizes it to the viewport and seeds
// config.ParticleCount particles.
func New(surface Surface, width, height int, rng *rand.Rand) (*Network, error) {
	return newNetwork(surface, width, height, config.ParticleCount, rng)
}

func newNetwork(surface Surface, width, height, count int, rng *rand.Rand) (*Network, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	pal, err := parsePalette(config.ParticleColor, config.ConnectionColor)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	n := &Network{
		surface: surface,
		palette: pal,
		rng:     rng,
	}
	n.Resize(width, height)

	n.particles = make([]*Particle, count)
	for i := range n.particles {
		n.particles[i] = newParticle(n)
	}
	return n, nil
}

func parsePalette(particle, connection string) (palette, error) {
	p, err := parseColor(particle)
	if err != nil {
		return palette{}, fmt.Errorf("particle color: %w", err)
	}
	c, err := parseColor(connection)
	if err != nil {
		return palette{}, fmt.Errorf("connection color: %w", err)
	}
	return palette{particle: p, connection: c}, nil
}

func parseColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// Resize tracks a new viewport size. Particles keep their positions; any
// left outside bounce back in on their next update. Non-positive sizes, as
// reported for a minimised window, are ignored.
func (n *Network) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	n.width = width
	n.height = height
	n.surface.Resize(width, height)
}

func (n *Network) PointerMove(x, y float64) {
	n.pointer = Pointer{X: x, Y: y, Present: true}
}

func (n *Network) PointerLeave() {
	n.pointer = Pointer{}
}

// Tick renders one frame: clear, update and draw every particle in order,
// then draw connections.
func (n *Network) Tick() {
	n.surface.Clear()
	for _, p := range n.particles {
		p.Update()
		p.Draw(n.surface)
	}
	n.drawConnections()
}

func (n *Network) Size() (int, int)       { return n.width, n.height }
func (n *Network) Pointer() Pointer       { return n.pointer }
func (n *Network) Particles() []*Particle { return n.particles }
func (n *Network) Connections() int       { return n.connections }
func (n *Network) Surface() Surface       { return n.surface }

// jitter returns a velocity component drawn uniformly from
// [-VelocityJitter/2, VelocityJitter/2).
func (n *Network) jitter() float64 {
	return (n.rng.Float64() - 0.5) * config.VelocityJitter
}
