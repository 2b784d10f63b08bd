// Package raster renders a field onto an in-memory image with a software rasterizer.
// It backs the headless snapshot mode and needs no window or GPU.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/olivierh59500/cellfield/field"
	"golang.org/x/image/vector"
)

// Segments used to approximate a circle of radius r in device pixels
const (
	minSegments = 12
	maxSegments = 96
)

var _ field.Surface = (*Surface)(nil)

// Surface draws into an RGBA image. Coordinates are logical and scaled by Scale.
type Surface struct {
	Image      *image.RGBA
	Scale      float64
	Background color.NRGBA
	z          *vector.Rasterizer
	src        *image.Uniform
}

// New allocates a surface of w x h logical pixels at the given device scale
func New(w, h int, scale float64, background color.NRGBA) (*Surface, error) {
	if scale <= 0 {
		scale = 1
	}
	pw := int(math.Floor(float64(w) * scale))
	ph := int(math.Floor(float64(h) * scale))
	if pw <= 0 || ph <= 0 {
		return nil, fmt.Errorf("raster: invalid surface size %dx%d at scale %v", w, h, scale)
	}
	return &Surface{
		Image:      image.NewRGBA(image.Rect(0, 0, pw, ph)),
		Scale:      scale,
		Background: background,
		z:          vector.NewRasterizer(pw, ph),
		src:        image.NewUniform(color.NRGBA{}),
	}, nil
}

// Clear fills the whole image with the background colour
func (s *Surface) Clear() {
	draw.Draw(s.Image, s.Image.Bounds(), image.NewUniform(s.Background), image.Point{}, draw.Src)
}

func segments(r float64) int {
	n := int(r * 2)
	if n < minSegments {
		n = minSegments
	} else if n > maxSegments {
		n = maxSegments
	}
	return n
}

// circle adds a closed circular path. Reversed paths wind the other way, which
// cuts a hole when combined with a forward path.
func (s *Surface) circle(cx, cy, r float64, reverse bool) {
	n := segments(r)
	step := 2 * math.Pi / float64(n)
	if reverse {
		step = -step
	}
	s.z.MoveTo(float32(cx+r), float32(cy))
	for i := 1; i < n; i++ {
		a := float64(i) * step
		s.z.LineTo(float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a)))
	}
	s.z.ClosePath()
}

func (s *Surface) fill(c color.NRGBA) {
	b := s.Image.Bounds()
	s.src.C = c
	s.z.DrawOp = draw.Over
	s.z.Draw(s.Image, b, s.src, image.Point{})
	s.z.Reset(b.Dx(), b.Dy())
}

// FillCircle draws a solid disc
func (s *Surface) FillCircle(x, y, r float64, c color.NRGBA) {
	if c.A == 0 || r <= 0 {
		return
	}
	k := s.Scale
	s.circle(x*k, y*k, r*k, false)
	s.fill(c)
}

// StrokeCircle draws a ring of the given width centred on the circle
func (s *Surface) StrokeCircle(x, y, r, width float64, c color.NRGBA) {
	if c.A == 0 || r <= 0 || width <= 0 {
		return
	}
	k := s.Scale
	outer := (r + width/2) * k
	inner := (r - width/2) * k
	s.circle(x*k, y*k, outer, false)
	if inner > 0 {
		s.circle(x*k, y*k, inner, true)
	}
	s.fill(c)
}

// Line draws a segment as a quad of the given width
func (s *Surface) Line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	if c.A == 0 || width <= 0 {
		return
	}
	k := s.Scale
	x0, y0, x1, y1 = x0*k, y0*k, x1*k, y1*k
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	hw := width * k / 2
	nx, ny := -dy/l*hw, dx/l*hw
	s.z.MoveTo(float32(x0+nx), float32(y0+ny))
	s.z.LineTo(float32(x1+nx), float32(y1+ny))
	s.z.LineTo(float32(x1-nx), float32(y1-ny))
	s.z.LineTo(float32(x0-nx), float32(y0-ny))
	s.z.ClosePath()
	s.fill(c)
}

// RadialGradient blends a radial gradient over the disc of radius r.
// Pixels outside the last stop are left untouched.
func (s *Surface) RadialGradient(x, y, r float64, stops []field.GradientStop) {
	if r <= 0 || len(stops) == 0 {
		return
	}
	k := s.Scale
	cx, cy, pr := x*k, y*k, r*k
	area := image.Rect(
		int(math.Floor(cx-pr)), int(math.Floor(cy-pr)),
		int(math.Ceil(cx+pr)), int(math.Ceil(cy+pr)),
	).Intersect(s.Image.Bounds())

	for py := area.Min.Y; py < area.Max.Y; py++ {
		for px := area.Min.X; px < area.Max.X; px++ {
			t := math.Hypot(float64(px)+0.5-cx, float64(py)+0.5-cy) / pr
			if t > 1 {
				continue
			}
			blendOver(s.Image, px, py, Sample(stops, t))
		}
	}
}

// Sample interpolates the gradient colour at t in [0,1]
func Sample(stops []field.GradientStop, t float64) color.NRGBA {
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		f := (t - a.Offset) / span
		return color.NRGBA{
			R: lerp8(a.Color.R, b.Color.R, f),
			G: lerp8(a.Color.G, b.Color.G, f),
			B: lerp8(a.Color.B, b.Color.B, f),
			A: lerp8(a.Color.A, b.Color.A, f),
		}
	}
	return stops[len(stops)-1].Color
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*f + 0.5)
}

// blendOver composites c over the pixel at (x, y) using premultiplied alpha
func blendOver(img *image.RGBA, x, y int, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	i := img.PixOffset(x, y)
	p := img.Pix[i : i+4 : i+4]
	a := uint32(c.A)
	inv := 255 - a
	p[0] = uint8((uint32(c.R)*a + uint32(p[0])*inv + 127) / 255)
	p[1] = uint8((uint32(c.G)*a + uint32(p[1])*inv + 127) / 255)
	p[2] = uint8((uint32(c.B)*a + uint32(p[2])*inv + 127) / 255)
	p[3] = uint8((a*255 + uint32(p[3])*inv + 127) / 255)
}

// WritePNG encodes the current image
func (s *Surface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.Image); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}
