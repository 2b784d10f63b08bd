package field

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
)

// Population controls how many entities of a species exist and how they start out
type Population struct {
	DensityDivisor float64 `json:"density_divisor"` // One entity per this many logical pixels of width
	UpperBound     int     `json:"upper_bound"`     // Hard cap on the population
	MinRadius      float64 `json:"min_radius"`
	MaxRadius      float64 `json:"max_radius"`
	MaxSpeed       float64 `json:"max_speed"` // Initial velocity components span [-MaxSpeed/2, MaxSpeed/2]
}

// Motion holds the per-species force field and wrap constants
type Motion struct {
	AttractRadius float64 `json:"attract_radius"` // Pointer influence vanishes beyond this distance
	AttractScale  float64 `json:"attract_scale"`  // Divisor turning (radius - d) into an impulse
	Damping       float64 `json:"damping"`        // Velocity multiplier per tick, in (0,1)
	Margin        float64 `json:"margin"`         // Off-screen band before wrapping
}

// ParticleConfig tunes the particle layer and its proximity links
type ParticleConfig struct {
	Population
	Motion
	Color         color.NRGBA `json:"color"`
	LinkThreshold float64     `json:"link_threshold"`
	LinkAlpha     float64     `json:"link_alpha"` // Link opacity at zero distance
	LinkWidth     float64     `json:"link_width"`
	LinkColor     color.NRGBA `json:"link_color"`
}

// VesicleConfig tunes the foreground vesicle layer
type VesicleConfig struct {
	Population
	Motion
	DriftScale     float64     `json:"drift_scale"` // Amplitude of the sin/cos drift added each tick
	Fill           color.NRGBA `json:"fill"`
	Outline        color.NRGBA `json:"outline"`
	OutlineWidth   float64     `json:"outline_width"`
	Highlight      color.NRGBA `json:"highlight"`
	HighlightScale float64     `json:"highlight_scale"` // Highlight radius relative to the vesicle
}

// FieldConfig tunes the background ambient cell fields
type FieldConfig struct {
	Count       int           `json:"count"`
	MinRadius   float64       `json:"min_radius"` // Fraction of max(W, H)
	MaxRadius   float64       `json:"max_radius"` // Fraction of max(W, H)
	WobbleAmp   float64       `json:"wobble_amp"`
	WobbleSpeed float64       `json:"wobble_speed"`
	Palette     []color.NRGBA `json:"palette"` // Inner colours, one per tint
	MidStop     float64       `json:"mid_stop"`
	MidFade     float64       `json:"mid_fade"` // Alpha multiplier at the middle stop
}

// TurbulenceConfig configures the optional Perlin flow nudge on particles
type TurbulenceConfig struct {
	Strength float64 `json:"strength"` // 0 disables turbulence
	Scale    float64 `json:"scale"`
	Speed    float64 `json:"speed"`
}

// Config is the full tuning set of a simulation
type Config struct {
	Particles  ParticleConfig   `json:"particles"`
	Vesicles   VesicleConfig    `json:"vesicles"`
	Fields     FieldConfig      `json:"fields"`
	Turbulence TurbulenceConfig `json:"turbulence"`
	TimeStep   float64          `json:"time_step"` // Seconds of simulated time per tick
	Background color.NRGBA      `json:"background"`
}

// DefaultConfig returns the stock look of the field
func DefaultConfig() Config {
	return Config{
		Particles: ParticleConfig{
			Population: Population{
				DensityDivisor: 10,
				UpperBound:     110,
				MinRadius:      0.4,
				MaxRadius:      2.4,
				MaxSpeed:       0.55,
			},
			Motion: Motion{
				AttractRadius: 130,
				AttractScale:  3200,
				Damping:       0.988,
				Margin:        10,
			},
			Color:         color.NRGBA{95, 221, 190, 153},
			LinkThreshold: 110,
			LinkAlpha:     0.22,
			LinkWidth:     0.6,
			LinkColor:     color.NRGBA{95, 221, 190, 255},
		},
		Vesicles: VesicleConfig{
			Population: Population{
				DensityDivisor: 90,
				UpperBound:     14,
				MinRadius:      6,
				MaxRadius:      18,
				MaxSpeed:       0.35,
			},
			Motion: Motion{
				AttractRadius: 220,
				AttractScale:  9000,
				Damping:       0.992,
				Margin:        30,
			},
			DriftScale:     0.15,
			Fill:           color.NRGBA{120, 200, 255, 38},
			Outline:        color.NRGBA{160, 225, 255, 110},
			OutlineWidth:   1,
			Highlight:      color.NRGBA{255, 255, 255, 90},
			HighlightScale: 0.28,
		},
		Fields: FieldConfig{
			Count:       4,
			MinRadius:   0.35,
			MaxRadius:   0.6,
			WobbleAmp:   40,
			WobbleSpeed: 0.2,
			Palette: []color.NRGBA{
				{40, 160, 140, 60},
				{70, 110, 200, 55},
				{150, 90, 190, 45},
			},
			MidStop: 0.55,
			MidFade: 0.35,
		},
		Turbulence: TurbulenceConfig{
			Strength: 0,
			Scale:    0.004,
			Speed:    0.15,
		},
		TimeStep:   1.0 / 60,
		Background: color.NRGBA{6, 12, 20, 255},
	}
}

func (p Population) validate(name string) error {
	if p.DensityDivisor <= 0 {
		return fmt.Errorf("%s: density divisor must be positive, got %v", name, p.DensityDivisor)
	}
	if p.UpperBound < 0 {
		return fmt.Errorf("%s: upper bound must not be negative, got %d", name, p.UpperBound)
	}
	if p.MinRadius <= 0 || p.MaxRadius < p.MinRadius {
		return fmt.Errorf("%s: invalid radius range [%v, %v)", name, p.MinRadius, p.MaxRadius)
	}
	if p.MaxSpeed < 0 {
		return fmt.Errorf("%s: max speed must not be negative, got %v", name, p.MaxSpeed)
	}
	return nil
}

func (m Motion) validate(name string) error {
	if m.Damping <= 0 || m.Damping >= 1 {
		return fmt.Errorf("%s: damping must lie in (0,1), got %v", name, m.Damping)
	}
	if m.AttractScale <= 0 {
		return fmt.Errorf("%s: attract scale must be positive, got %v", name, m.AttractScale)
	}
	if m.AttractRadius < 0 || m.Margin < 0 {
		return fmt.Errorf("%s: attract radius and margin must not be negative", name)
	}
	return nil
}

// Validate reports the first inconsistency in the config
func (c Config) Validate() error {
	if err := c.Particles.Population.validate("particles"); err != nil {
		return err
	}
	if err := c.Particles.Motion.validate("particles"); err != nil {
		return err
	}
	if c.Particles.LinkThreshold <= 0 {
		return fmt.Errorf("particles: link threshold must be positive, got %v", c.Particles.LinkThreshold)
	}
	if err := c.Vesicles.Population.validate("vesicles"); err != nil {
		return err
	}
	if err := c.Vesicles.Motion.validate("vesicles"); err != nil {
		return err
	}
	if c.Fields.Count < 0 {
		return fmt.Errorf("fields: count must not be negative, got %d", c.Fields.Count)
	}
	if c.Fields.Count > 0 {
		if len(c.Fields.Palette) == 0 {
			return errors.New("fields: palette is empty")
		}
		if c.Fields.MinRadius <= 0 || c.Fields.MaxRadius < c.Fields.MinRadius {
			return fmt.Errorf("fields: invalid radius range [%v, %v)", c.Fields.MinRadius, c.Fields.MaxRadius)
		}
		if c.Fields.MidStop <= 0 || c.Fields.MidStop >= 1 {
			return fmt.Errorf("fields: mid stop must lie in (0,1), got %v", c.Fields.MidStop)
		}
	}
	if c.Turbulence.Strength < 0 {
		return fmt.Errorf("turbulence: strength must not be negative, got %v", c.Turbulence.Strength)
	}
	if c.TimeStep <= 0 {
		return fmt.Errorf("time step must be positive, got %v", c.TimeStep)
	}
	return nil
}

// LoadConfig reads a JSON config from disk. Missing keys keep their default values.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("decode config %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("config %s: %w", filename, err)
	}
	return cfg, nil
}

// SaveConfig writes the config as indented JSON
func SaveConfig(filename string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
