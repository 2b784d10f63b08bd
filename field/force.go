package field

import "math"

// Attraction returns the impulse magnitude at distance d from the pointer.
// It falls off linearly and is zero from AttractRadius outward.
func Attraction(d float64, m Motion) float64 {
	return math.Max(0, m.AttractRadius-d) / m.AttractScale
}

// Attract pulls vel toward pointer and applies damping.
// The distance is floored at 1 so an entity sitting on the pointer gets no direction
// instead of a division by zero.
func Attract(pos, vel, pointer Vec, m Motion) Vec {
	delta := pointer.Sub(pos)
	d := math.Max(delta.Len(), 1)
	pull := Attraction(d, m)
	vel = vel.Add(delta.Scale(pull / d))
	return vel.Scale(m.Damping)
}
