package field

import "image/color"

// GradientStop is one colour stop of a radial gradient, Offset in [0,1]
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// Surface is a drawing target addressed in logical coordinates.
// Implementations apply their own device scale.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.NRGBA)
	StrokeCircle(x, y, r, width float64, c color.NRGBA)
	Line(x0, y0, x1, y1, width float64, c color.NRGBA)
	RadialGradient(x, y, r float64, stops []GradientStop)
}

// MaxKeyStops is the most stops a GradientKey can hold
const MaxKeyStops = 8

// GradientKey is a comparable identity for a stop list, usable as a map key
type GradientKey struct {
	N     int
	Stops [MaxKeyStops]GradientStop
}

// KeyOf returns the key of stops. ok is false when there are too many stops to fit.
func KeyOf(stops []GradientStop) (key GradientKey, ok bool) {
	if len(stops) > MaxKeyStops {
		return GradientKey{}, false
	}
	key.N = copy(key.Stops[:], stops)
	return key, true
}

// WithAlpha returns c with its alpha multiplied by a, clamped to [0,1]
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}
