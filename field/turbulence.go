package field

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Perlin parameters: alpha/beta weight the octaves, n is the octave count
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// Turbulence samples a slowly evolving Perlin flow field
type Turbulence struct {
	noise *perlin.Perlin
	cfg   TurbulenceConfig
}

// NewTurbulence returns a flow field, or nil when the config disables it
func NewTurbulence(cfg TurbulenceConfig, seed int64) *Turbulence {
	if cfg.Strength <= 0 {
		return nil
	}
	return &Turbulence{
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
		cfg:   cfg,
	}
}

// Sample returns the velocity nudge at (x, y) and time t. The noise value picks an
// angle; the nudge always has length Strength.
func (tb *Turbulence) Sample(x, y, t float64) Vec {
	if tb == nil {
		return Vec{}
	}
	n := tb.noise.Noise3D(x*tb.cfg.Scale, y*tb.cfg.Scale, t*tb.cfg.Speed)
	angle := (n + 1) * math.Pi
	return Vec{math.Cos(angle) * tb.cfg.Strength, math.Sin(angle) * tb.cfg.Strength}
}
