package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/olivierh59500/cellfield/field"
	"github.com/olivierh59500/cellfield/raster"
)

// GradientSize is the side of the pre-rendered gradient sprites
const GradientSize = 128

// ScreenSurface draws a field onto an Ebitengine image. Coordinates are logical;
// Scale maps them to device pixels.
type ScreenSurface struct {
	dst        *ebiten.Image
	Scale      float64
	Background color.NRGBA
	sprites    map[field.GradientKey]*ebiten.Image // Gradient sprites keyed by their stops
	scratch    *ebiten.Image                       // Rewritten for stop lists too long to key
}

// NewScreenSurface returns a surface with an empty sprite cache
func NewScreenSurface(background color.NRGBA) *ScreenSurface {
	return &ScreenSurface{
		Scale:      1,
		Background: background,
		sprites:    make(map[field.GradientKey]*ebiten.Image),
	}
}

// Target sets the image the next frame draws into
func (s *ScreenSurface) Target(dst *ebiten.Image, scale float64) {
	s.dst = dst
	s.Scale = scale
}

func (s *ScreenSurface) Clear() {
	s.dst.Fill(s.Background)
}

func (s *ScreenSurface) FillCircle(x, y, r float64, c color.NRGBA) {
	k := s.Scale
	vector.DrawFilledCircle(s.dst, float32(x*k), float32(y*k), float32(r*k), c, true)
}

func (s *ScreenSurface) StrokeCircle(x, y, r, width float64, c color.NRGBA) {
	k := s.Scale
	vector.StrokeCircle(s.dst, float32(x*k), float32(y*k), float32(r*k), float32(width*k), c, true)
}

func (s *ScreenSurface) Line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	k := s.Scale
	vector.StrokeLine(s.dst, float32(x0*k), float32(y0*k), float32(x1*k), float32(y1*k), float32(width*k), c, true)
}

// RadialGradient stretches a cached gradient sprite over the circle
func (s *ScreenSurface) RadialGradient(x, y, r float64, stops []field.GradientStop) {
	if r <= 0 || len(stops) == 0 {
		return
	}
	sprite := s.sprite(stops)
	k := s.Scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2*r*k/GradientSize, 2*r*k/GradientSize)
	op.GeoM.Translate((x-r)*k, (y-r)*k)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(sprite, op)
}

func (s *ScreenSurface) sprite(stops []field.GradientStop) *ebiten.Image {
	key, ok := field.KeyOf(stops)
	if !ok {
		if s.scratch == nil {
			s.scratch = ebiten.NewImage(GradientSize, GradientSize)
		}
		s.scratch.WritePixels(gradientPixels(stops).Pix)
		return s.scratch
	}
	if img, ok := s.sprites[key]; ok {
		return img
	}
	sprite := ebiten.NewImageFromImage(gradientPixels(stops))
	s.sprites[key] = sprite
	return sprite
}

// gradientPixels renders stops into a square premultiplied image
func gradientPixels(stops []field.GradientStop) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, GradientSize, GradientSize))
	half := GradientSize / 2.0
	for y := 0; y < GradientSize; y++ {
		for x := 0; x < GradientSize; x++ {
			t := math.Hypot(float64(x)+0.5-half, float64(y)+0.5-half) / half
			if t > 1 {
				continue
			}
			img.Set(x, y, raster.Sample(stops, t))
		}
	}
	return img
}
