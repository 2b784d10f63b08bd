package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/olivierh59500/cellfield/field"
	"golang.org/x/image/font/basicfont"
)

// Simulation adapts a field scheduler to Ebitengine: input in Update, one tick per Draw
type Simulation struct {
	Width, Height float64 // Logical window size
	Scale         float64 // Device scale factor
	Sched         *field.Scheduler
	Surface       *ScreenSurface
	ShowStats     bool
	ConfigPath    string // Target of the S/L keys
	touches       []ebiten.TouchID
}

// NewSimulation creates the scheduler and starts it. The Ebitengine screen is always
// available, so only the reduced-motion preference can leave it disabled.
func NewSimulation(cfg field.Config, opts field.Options, configPath string) *Simulation {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	s := &Simulation{
		Width:      opts.Width,
		Height:     opts.Height,
		Scale:      opts.Scale,
		Sched:      field.NewScheduler(cfg, opts),
		Surface:    NewScreenSurface(cfg.Background),
		ConfigPath: configPath,
	}
	state := s.Sched.Start(true)
	log.Printf("field %s: %dx%d, %d particles, %d vesicles, %d fields",
		state, int(opts.Width), int(opts.Height),
		len(s.Sched.Context().Particles), len(s.Sched.Context().Vesicles), len(s.Sched.Context().Fields))
	return s
}

// Update is called each tick by Ebitengine
func (s *Simulation) Update() error {
	s.handleInput()
	return nil
}

// Draw is called once per refresh and runs one simulation tick
func (s *Simulation) Draw(screen *ebiten.Image) {
	if s.Sched.State() == field.Disabled {
		screen.Fill(s.Surface.Background)
		return
	}
	s.Surface.Target(screen, s.Scale)
	s.Sched.Tick(s.Surface)
	if s.ShowStats {
		s.drawStats(screen)
	}
}

// Layout tracks the window size. Any change regenerates every population.
func (s *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	if scale <= 0 {
		scale = 1
	}
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != s.Width || h != s.Height || scale != s.Scale {
		s.Width, s.Height, s.Scale = w, h, scale
		s.Sched.Resize(w, h, scale)
	}
	return int(w * scale), int(h * scale)
}

// handleInput processes keyboard, mouse and touch input
func (s *Simulation) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.Sched.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.ShowStats = !s.ShowStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Sched.Reseed(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.saveConfig()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		s.loadConfig()
	}

	// Touch wins over the mouse while a finger is down
	s.touches = ebiten.AppendTouchIDs(s.touches[:0])
	var px, py int
	if len(s.touches) > 0 {
		px, py = ebiten.TouchPosition(s.touches[0])
	} else {
		px, py = ebiten.CursorPosition()
	}
	s.Sched.SetPointer(float64(px)/s.Scale, float64(py)/s.Scale)
}

// saveConfig writes the active tuning to ConfigPath
func (s *Simulation) saveConfig() {
	if err := field.SaveConfig(s.ConfigPath, s.Sched.Config()); err != nil {
		log.Printf("save: %v", err)
		return
	}
	log.Printf("config saved to %s", s.ConfigPath)
}

// loadConfig replaces the tuning with ConfigPath and regenerates the field
func (s *Simulation) loadConfig() {
	cfg, err := field.LoadConfig(s.ConfigPath)
	if err != nil {
		log.Printf("load: %v", err)
		return
	}
	s.Sched.Reconfigure(cfg)
	s.Surface = NewScreenSurface(cfg.Background)
	log.Printf("config loaded from %s", s.ConfigPath)
}

// drawStats prints counts and timing in the top-left corner
func (s *Simulation) drawStats(screen *ebiten.Image) {
	ctx := s.Sched.Context()
	lines := []string{
		fmt.Sprintf("%s  tick %d  t=%.1fs", s.Sched.State(), ctx.Ticks, ctx.Time),
		fmt.Sprintf("particles %d  vesicles %d  fields %d  links %d",
			len(ctx.Particles), len(ctx.Vesicles), len(ctx.Fields), ctx.Links),
		fmt.Sprintf("TPS %.0f  FPS %.0f  %.0fx%.0f@%.1f", ebiten.ActualTPS(), ebiten.ActualFPS(), s.Width, s.Height, s.Scale),
		"SPACE pause  H stats  R reseed  S/L save/load config",
	}
	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, 8, 16+16*i, color.White)
	}
}
