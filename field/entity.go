package field

import "math"

// Vec is a point or displacement in logical viewport coordinates
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v * k
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

// Len returns the Euclidean length of v
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Particle is a small point entity that reacts to the pointer and links to neighbours
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity
	R      float64 // Radius
}

// Vesicle is a larger translucent drifting entity drawn above the particles
type Vesicle struct {
	X, Y   float64
	VX, VY float64
	R      float64
	Phase  float64 // Drift phase in radians, fixed at creation
}

// AmbientField is a large soft background region. It never moves; only its drawn
// position wobbles over time.
type AmbientField struct {
	X, Y  float64
	R     float64
	Phase float64
	Tint  int // Index into FieldConfig.Palette
}
