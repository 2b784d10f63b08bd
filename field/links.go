package field

import "math"

// LinkAlpha returns the opacity of a link between two entities d apart and whether
// a link is drawn at all. Opacity fades linearly from scale at d=0 to 0 at threshold.
func LinkAlpha(d, threshold, scale float64) (float64, bool) {
	if d >= threshold {
		return 0, false
	}
	return (1 - d/threshold) * scale, true
}

// linkFrom draws links from particles[i] to every later particle within the threshold
// and returns how many were drawn. Pairs are only visited once (i < j); the population
// cap is what bounds the quadratic cost.
func linkFrom(dst Surface, particles []Particle, i int, pc *ParticleConfig) int {
	a := &particles[i]
	drawn := 0
	for j := i + 1; j < len(particles); j++ {
		b := &particles[j]
		d := math.Hypot(a.X-b.X, a.Y-b.Y)
		alpha, ok := LinkAlpha(d, pc.LinkThreshold, pc.LinkAlpha)
		if !ok {
			continue
		}
		dst.Line(a.X, a.Y, b.X, b.Y, pc.LinkWidth, WithAlpha(pc.LinkColor, alpha))
		drawn++
	}
	return drawn
}

// Links draws every link of the population in pair order and returns the count
func Links(dst Surface, particles []Particle, pc *ParticleConfig) int {
	drawn := 0
	for i := range particles {
		drawn += linkFrom(dst, particles, i, pc)
	}
	return drawn
}
