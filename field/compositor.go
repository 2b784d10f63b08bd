package field

import "math"

// Highlight placement relative to the vesicle radius
const highlightOffset = 0.35

// Compositor updates and draws the three layers of a frame in depth order:
// ambient fields, particles with their links, then vesicles
type Compositor struct {
	cfg        *Config
	turbulence *Turbulence
	stops      []GradientStop // Reused between fields
}

// NewCompositor returns a compositor for cfg. turbulence may be nil.
func NewCompositor(cfg *Config, turbulence *Turbulence) *Compositor {
	return &Compositor{
		cfg:        cfg,
		turbulence: turbulence,
		stops:      make([]GradientStop, 3),
	}
}

// Frame clears dst and draws every layer. When advance is false the entities are
// drawn where they are without being moved. It returns the number of links drawn.
func (c *Compositor) Frame(dst Surface, ctx *Context, advance bool) int {
	dst.Clear()
	c.drawFields(dst, ctx)
	links := c.particles(dst, ctx, advance)
	c.vesicles(dst, ctx, advance)
	return links
}

// Wobble is the drawn offset of an ambient field at time t
func Wobble(t, phase float64, fc *FieldConfig) Vec {
	a := t*fc.WobbleSpeed + phase
	return Vec{math.Sin(a) * fc.WobbleAmp, math.Cos(a) * fc.WobbleAmp}
}

func (c *Compositor) drawFields(dst Surface, ctx *Context) {
	fc := &c.cfg.Fields
	if len(fc.Palette) == 0 {
		return
	}
	for _, f := range ctx.Fields {
		inner := fc.Palette[f.Tint%len(fc.Palette)]
		c.stops[0] = GradientStop{Offset: 0, Color: inner}
		c.stops[1] = GradientStop{Offset: fc.MidStop, Color: WithAlpha(inner, fc.MidFade)}
		c.stops[2] = GradientStop{Offset: 1, Color: WithAlpha(inner, 0)}

		off := Wobble(ctx.Time, f.Phase, fc)
		dst.RadialGradient(f.X+off.X, f.Y+off.Y, f.R, c.stops)
	}
}

// particles moves each particle, fills it and then links it to every later particle.
// Links therefore land above earlier particles and below later ones.
func (c *Compositor) particles(dst Surface, ctx *Context, advance bool) int {
	pc := &c.cfg.Particles
	links := 0
	for i := range ctx.Particles {
		p := &ctx.Particles[i]
		if advance {
			c.stepParticle(p, ctx)
		}
		dst.FillCircle(p.X, p.Y, p.R, pc.Color)
		links += linkFrom(dst, ctx.Particles, i, pc)
	}
	return links
}

func (c *Compositor) stepParticle(p *Particle, ctx *Context) {
	pc := &c.cfg.Particles
	pos := Vec{p.X, p.Y}
	vel := Vec{p.VX, p.VY}
	if c.turbulence != nil {
		vel = vel.Add(c.turbulence.Sample(p.X, p.Y, ctx.Time))
	}
	vel = Attract(pos, vel, ctx.Pointer, pc.Motion)
	pos = WrapVec(Advance(pos, vel, Vec{}), ctx.Width, ctx.Height, pc.Margin)
	p.X, p.Y = pos.X, pos.Y
	p.VX, p.VY = vel.X, vel.Y
}

func (c *Compositor) vesicles(dst Surface, ctx *Context, advance bool) {
	vc := &c.cfg.Vesicles
	for i := range ctx.Vesicles {
		v := &ctx.Vesicles[i]
		if advance {
			pos := Vec{v.X, v.Y}
			vel := Attract(pos, Vec{v.VX, v.VY}, ctx.Pointer, vc.Motion)
			drift := Drift(ctx.Time, v.Phase, vc.DriftScale)
			pos = WrapVec(Advance(pos, vel, drift), ctx.Width, ctx.Height, vc.Margin)
			v.X, v.Y = pos.X, pos.Y
			v.VX, v.VY = vel.X, vel.Y
		}

		dst.FillCircle(v.X, v.Y, v.R, vc.Fill)
		dst.StrokeCircle(v.X, v.Y, v.R, vc.OutlineWidth, vc.Outline)
		dst.FillCircle(v.X-v.R*highlightOffset, v.Y-v.R*highlightOffset, v.R*vc.HighlightScale, vc.Highlight)
	}
}
