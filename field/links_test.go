package field

import (
	"math"
	"testing"
)

func TestLinkAlpha(t *testing.T) {
	const threshold, scale = 110.0, 0.22

	if a, ok := LinkAlpha(0, threshold, scale); !ok || a != scale {
		t.Errorf("d=0: expected (%v, true), got (%v, %v)", scale, a, ok)
	}
	if a, ok := LinkAlpha(threshold, threshold, scale); ok || a != 0 {
		t.Errorf("d=threshold: expected no link, got (%v, %v)", a, ok)
	}
	if _, ok := LinkAlpha(threshold+5, threshold, scale); ok {
		t.Error("expected no link beyond threshold")
	}

	prev := math.Inf(1)
	for d := 0.0; d < threshold; d += 0.5 {
		a, ok := LinkAlpha(d, threshold, scale)
		if !ok {
			t.Fatalf("d=%v: expected a link", d)
		}
		if a >= prev {
			t.Fatalf("d=%v: alpha %v not decreasing (prev %v)", d, a, prev)
		}
		prev = a
	}
}

func TestLinksVisitEachPairOnce(t *testing.T) {
	pc := DefaultConfig().Particles
	particles := []Particle{
		{X: 0, Y: 0},
		{X: 50, Y: 0},
		{X: 100, Y: 0},
		{X: 400, Y: 400},
	}
	rec := &recorder{}
	n := Links(rec, particles, &pc)

	// 0-1 (50), 1-2 (50), 0-2 (100) are under 110; the far particle links to nothing
	if n != 3 {
		t.Fatalf("expected 3 links, got %d", n)
	}
	if got := rec.count("line"); got != 3 {
		t.Fatalf("expected 3 lines drawn, got %d", got)
	}
	want, _ := LinkAlpha(100, pc.LinkThreshold, pc.LinkAlpha)
	last := rec.ops[1] // pairs are drawn 0-1, 0-2, 1-2
	if last.x1 != 100 {
		t.Fatalf("expected second line to end at x=100, got %+v", last)
	}
	if last.color.A != WithAlpha(pc.LinkColor, want).A {
		t.Errorf("expected alpha %d, got %d", WithAlpha(pc.LinkColor, want).A, last.color.A)
	}
}
