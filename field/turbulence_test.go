package field

import (
	"math"
	"testing"
)

func TestTurbulenceDisabled(t *testing.T) {
	if tb := NewTurbulence(TurbulenceConfig{Strength: 0, Scale: 0.01, Speed: 1}, 1); tb != nil {
		t.Fatal("expected nil turbulence at zero strength")
	}
	var tb *Turbulence
	if got := tb.Sample(10, 10, 1); got != (Vec{}) {
		t.Errorf("expected zero nudge from nil turbulence, got %+v", got)
	}
}

func TestTurbulenceSample(t *testing.T) {
	cfg := TurbulenceConfig{Strength: 0.03, Scale: 0.004, Speed: 0.15}
	a := NewTurbulence(cfg, 5)
	b := NewTurbulence(cfg, 5)
	for _, p := range []Vec{{0, 0}, {120, 40}, {800, 600}} {
		ga := a.Sample(p.X, p.Y, 2.5)
		if math.Abs(ga.Len()-cfg.Strength) > 1e-12 {
			t.Errorf("expected nudge of length %v, got %v", cfg.Strength, ga.Len())
		}
		if gb := b.Sample(p.X, p.Y, 2.5); ga != gb {
			t.Errorf("expected identical samples for identical seeds, got %+v vs %+v", ga, gb)
		}
	}
}
