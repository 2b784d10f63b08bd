package field

import "math"

// Advance moves pos by one tick of vel plus an optional drift term
func Advance(pos, vel, drift Vec) Vec {
	return pos.Add(vel).Add(drift)
}

// Drift is the organic sway added to vesicles each tick without touching their velocity
func Drift(t, phase, scale float64) Vec {
	return Vec{math.Sin(t+phase) * scale, math.Cos(t+phase) * scale}
}

// Wrap folds a coordinate that left [-margin, dim+margin] onto the opposite edge
func Wrap(v, dim, margin float64) float64 {
	if v < -margin {
		return dim + margin
	}
	if v > dim+margin {
		return -margin
	}
	return v
}

// WrapVec applies Wrap to both axes of a w x h viewport
func WrapVec(p Vec, w, h, margin float64) Vec {
	return Vec{Wrap(p.X, w, margin), Wrap(p.Y, h, margin)}
}
