package easing

import "math"

// Func maps a normalized progress value in [0,1] to an eased value.
type Func func(p float64) float64

// Linear is y = x.
func Linear(p float64) float64 {
	return p
}

// QuadraticInOut is the piecewise quadratic
// y = 2x^2 on [0, 0.5) and y = -2x^2 + 4x - 1 on [0.5, 1].
func QuadraticInOut(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	return (-2 * p * p) + (4 * p) - 1
}

// InverseQuadraticInOut returns the progress p for which QuadraticInOut(p) == e.
// Input is clamped to [0,1].
func InverseQuadraticInOut(e float64) float64 {
	e = clamp(e)
	if e < 0.5 {
		return math.Sqrt(e / 2)
	}
	return 1 - math.Sqrt((1-e)/2)
}

// CircularInOut is the piecewise circular ease used for the winner presentation.
func CircularInOut(p float64) float64 {
	if p < 0.5 {
		return 0.5 * (1 - math.Sqrt(1-4*(p*p)))
	}
	return 0.5 * (math.Sqrt(-((2*p)-3)*((2*p)-1)) + 1)
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
