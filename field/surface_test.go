package field

import (
	"image/color"
	"testing"
)

func TestKeyOf(t *testing.T) {
	stops := []GradientStop{
		{Offset: 0, Color: color.NRGBA{40, 160, 140, 60}},
		{Offset: 0.55, Color: color.NRGBA{40, 160, 140, 21}},
		{Offset: 1, Color: color.NRGBA{40, 160, 140, 0}},
	}
	a, ok := KeyOf(stops)
	if !ok || a.N != 3 {
		t.Fatalf("expected a 3-stop key, got %+v ok=%v", a, ok)
	}

	// Reused backing storage yields the same key
	scratch := make([]GradientStop, 3)
	copy(scratch, stops)
	if b, _ := KeyOf(scratch); b != a {
		t.Error("expected equal keys for equal stops")
	}

	cache := map[GradientKey]int{a: 1}
	scratch[1].Color.A = 22
	if b, _ := KeyOf(scratch); b == a || cache[b] != 0 {
		t.Error("expected a different key when a stop changes")
	}
	if b, _ := KeyOf(stops[:2]); b == a {
		t.Error("expected a prefix to key differently")
	}

	if _, ok := KeyOf(make([]GradientStop, MaxKeyStops+1)); ok {
		t.Error("expected oversized stop lists to be rejected")
	}
}
