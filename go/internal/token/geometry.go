package token

import "math"

// Point is a position on the touch surface in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Geometry sizes a token on screen.
type Geometry struct {
	Size        float64
	MarginRatio float64
}

// DefaultGeometry scales the reference 115px token by the screen density.
func DefaultGeometry(density float64) Geometry {
	if density <= 0 {
		density = 1
	}
	return Geometry{Size: 115 * density, MarginRatio: 4}
}

func (g Geometry) margin() float64 {
	if g.MarginRatio == 0 {
		return 0
	}
	return g.Size / g.MarginRatio
}

// BaseRadius is the radius of the arc ring.
func (g Geometry) BaseRadius() float64 {
	return g.Size / 2
}

// ActualRadius is the radius of the filled circle at rest.
func (g Geometry) ActualRadius() float64 {
	return g.BaseRadius() - g.margin()
}

// pulse is the breathing offset added to the circle while it holds.
func (g Geometry) pulse(progress float64) float64 {
	return math.Sin(math.Pi*progress) * g.margin() / 2
}

// Visual holds the derived drawing parameters of a token. Angles are in degrees.
type Visual struct {
	Radius       float64 `json:"radius"`
	ArcStart     float64 `json:"arc_start"`
	ArcSweep     float64 `json:"arc_sweep"`
	Overlay      bool    `json:"overlay"`
	OverlayStart float64 `json:"overlay_start"`
	OverlaySweep float64 `json:"overlay_sweep"`
}
