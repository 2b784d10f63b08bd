package field

import (
	"math"
	"math/rand"
	"time"
)

// Factory builds fresh populations for a viewport
type Factory struct {
	cfg *Config
	rng *rand.Rand
}

// NewFactory returns a factory drawing from rng. A nil rng gets a time-seeded source.
func NewFactory(cfg *Config, rng *rand.Rand) *Factory {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Factory{cfg: cfg, rng: rng}
}

// Count returns min(UpperBound, floor(width / DensityDivisor)), never below zero.
// The cap is applied before converting so huge or infinite widths cannot overflow.
func Count(width float64, p Population) int {
	if !(width > 0) || !(p.DensityDivisor > 0) || p.UpperBound <= 0 {
		return 0
	}
	return int(math.Min(math.Floor(width/p.DensityDivisor), float64(p.UpperBound)))
}

// uniform returns a value in [lo, hi)
func (f *Factory) uniform(lo, hi float64) float64 {
	return lo + f.rng.Float64()*(hi-lo)
}

// position returns a point in [0,w) x [0,h)
func (f *Factory) position(w, h float64) (float64, float64) {
	return f.rng.Float64() * w, f.rng.Float64() * h
}

// speed returns a velocity component in [-limit/2, limit/2)
func (f *Factory) speed(limit float64) float64 {
	return (f.rng.Float64() - 0.5) * limit
}

// Particles builds the particle population for a w x h viewport
func (f *Factory) Particles(w, h float64) []Particle {
	pc := f.cfg.Particles
	particles := make([]Particle, Count(w, pc.Population))
	for i := range particles {
		x, y := f.position(w, h)
		particles[i] = Particle{
			X:  x,
			Y:  y,
			R:  f.uniform(pc.MinRadius, pc.MaxRadius),
			VX: f.speed(pc.MaxSpeed),
			VY: f.speed(pc.MaxSpeed),
		}
	}
	return particles
}

// Vesicles builds the vesicle population for a w x h viewport
func (f *Factory) Vesicles(w, h float64) []Vesicle {
	vc := f.cfg.Vesicles
	vesicles := make([]Vesicle, Count(w, vc.Population))
	for i := range vesicles {
		x, y := f.position(w, h)
		vesicles[i] = Vesicle{
			X:     x,
			Y:     y,
			R:     f.uniform(vc.MinRadius, vc.MaxRadius),
			VX:    f.speed(vc.MaxSpeed),
			VY:    f.speed(vc.MaxSpeed),
			Phase: f.rng.Float64() * 2 * math.Pi,
		}
	}
	return vesicles
}

// Fields builds the ambient field layer. Its size follows the larger viewport side.
func (f *Factory) Fields(w, h float64) []AmbientField {
	fc := f.cfg.Fields
	if fc.Count <= 0 || w <= 0 || h <= 0 {
		return nil
	}
	span := math.Max(w, h)
	fields := make([]AmbientField, fc.Count)
	for i := range fields {
		x, y := f.position(w, h)
		tint := 0
		if len(fc.Palette) > 0 {
			tint = i % len(fc.Palette)
		}
		fields[i] = AmbientField{
			X:     x,
			Y:     y,
			R:     f.uniform(fc.MinRadius, fc.MaxRadius) * span,
			Phase: f.rng.Float64() * 2 * math.Pi,
			Tint:  tint,
		}
	}
	return fields
}
