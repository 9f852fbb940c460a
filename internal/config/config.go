package config

const (
	WindowWidth  = 1280
	WindowHeight = 720

	TickRate = 60

	// Network parameters
	ParticleCount      = 60
	ConnectionDistance = 120.0
	PointerRadius      = 150.0
	GridThreshold      = 200

	// Particle physics
	RepulsionStrength = 0.015
	Damping           = 0.995
	VelocityFloor     = 0.05
	VelocityJitter    = 0.3
	SwellAmount       = 1.5
	MinBaseRadius     = 1.0
	BaseRadiusSpread  = 2.0

	// Rendering
	ParticleAlpha       = 0.4
	ConnectionAlpha     = 0.15
	ConnectionLineWidth = 0.5

	ParticleColor   = "#c9a227"
	ConnectionColor = "#c9a227"
	BackgroundColor = "#0a0a0f"

	// HUD
	FrameTapSize = 240
	HUDWidth     = 240
	HUDHeight    = 48
)
