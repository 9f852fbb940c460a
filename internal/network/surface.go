package network

import "image/color"

// Surface is the 2D drawing target a Network renders into. It mirrors the
// subset of an immediate-mode canvas the simulation needs.
type Surface interface {
	Resize(width, height int)
	Clear()
	// SetAlpha sets the global alpha applied to subsequent fills.
	SetAlpha(a float64)
	Alpha() float64
	FillCircle(cx, cy, r float64, c color.NRGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA, opacity float64)
}
