package field

import (
	"math/rand"
	"sync"
	"time"
)

// State of the frame scheduler
type State int

const (
	Disabled State = iota // Reduced motion or no surface: nothing is ever ticked
	Running
	Stopped // Paused: frames are drawn but nothing moves
)

func (s State) String() string {
	switch s {
	case Disabled:
		return "disabled"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Pointer holds the latest input position. Input handlers may write it from any
// goroutine; the scheduler reads it once per tick.
type Pointer struct {
	mu   sync.Mutex
	x, y float64
}

// Set records a new pointer position
func (p *Pointer) Set(x, y float64) {
	p.mu.Lock()
	p.x, p.y = x, y
	p.mu.Unlock()
}

// Snapshot returns the latest pointer position
func (p *Pointer) Snapshot() Vec {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Vec{p.x, p.y}
}

// Context is the whole mutable state of one simulation
type Context struct {
	Width, Height float64 // Logical viewport size
	Scale         float64 // Device pixels per logical pixel
	Time          float64 // Simulated seconds
	Ticks         uint64
	Pointer       Vec // Pointer snapshot taken at the start of the current tick
	Particles     []Particle
	Vesicles      []Vesicle
	Fields        []AmbientField
	Links         int // Links drawn by the last frame
}

// Options configure a scheduler at construction
type Options struct {
	Width, Height float64
	Scale         float64 // Defaults to 1
	Seed          int64   // 0 seeds from the clock
	ReducedMotion bool
}

// Scheduler owns a simulation context and drives it one tick at a time
type Scheduler struct {
	cfg        Config
	opts       Options
	ctx        *Context
	pointer    Pointer
	rng        *rand.Rand
	factory    *Factory
	compositor *Compositor
	state      State
	started    bool
}

// NewScheduler builds a scheduler and seeds its first populations.
// The scheduler stays Disabled until Start.
func NewScheduler(cfg Config, opts Options) *Scheduler {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Scheduler{
		cfg:   cfg,
		opts:  opts,
		ctx:   &Context{},
		rng:   rand.New(rand.NewSource(seed)),
		state: Disabled,
	}
	s.factory = NewFactory(&s.cfg, s.rng)
	s.compositor = NewCompositor(&s.cfg, NewTurbulence(cfg.Turbulence, seed))
	s.pointer.Set(opts.Width/2, opts.Height/2)
	s.Resize(opts.Width, opts.Height, opts.Scale)
	return s
}

// Start evaluates the reduced-motion preference and surface availability once.
// Later calls return the current state without re-evaluating.
func (s *Scheduler) Start(surfaceAvailable bool) State {
	if s.started {
		return s.state
	}
	s.started = true
	if s.opts.ReducedMotion || !surfaceAvailable {
		s.state = Disabled
	} else {
		s.state = Running
	}
	return s.state
}

// State returns the current scheduler state
func (s *Scheduler) State() State { return s.state }

// Stop pauses a running scheduler
func (s *Scheduler) Stop() {
	if s.state == Running {
		s.state = Stopped
	}
}

// Resume restarts a stopped scheduler
func (s *Scheduler) Resume() {
	if s.state == Stopped {
		s.state = Running
	}
}

// Toggle flips between Running and Stopped
func (s *Scheduler) Toggle() {
	switch s.state {
	case Running:
		s.state = Stopped
	case Stopped:
		s.state = Running
	}
}

// SetPointer records the latest pointer position in logical coordinates
func (s *Scheduler) SetPointer(x, y float64) { s.pointer.Set(x, y) }

// Context exposes the simulation state
func (s *Scheduler) Context() *Context { return s.ctx }

// Config returns the active config
func (s *Scheduler) Config() Config { return s.cfg }

// Tick runs one simulation-and-render step on dst. A Stopped scheduler redraws
// without moving anything. It reports whether the simulation advanced.
func (s *Scheduler) Tick(dst Surface) bool {
	if dst == nil || s.state == Disabled {
		return false
	}
	advance := s.state == Running
	if advance {
		s.ctx.Pointer = s.pointer.Snapshot()
	}
	s.ctx.Links = s.compositor.Frame(dst, s.ctx, advance)
	if advance {
		s.ctx.Time += s.cfg.TimeStep
		s.ctx.Ticks++
	}
	return advance
}

// Step runs up to n ticks and returns how many advanced the simulation
func (s *Scheduler) Step(dst Surface, n int) int {
	advanced := 0
	for i := 0; i < n; i++ {
		if s.Tick(dst) {
			advanced++
		}
	}
	return advanced
}

// Resize records a new viewport and regenerates every population
func (s *Scheduler) Resize(w, h, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.ctx.Width, s.ctx.Height, s.ctx.Scale = w, h, scale
	s.regenerate()
}

// Reseed restarts the random source and the turbulence field from seed and
// regenerates the populations
func (s *Scheduler) Reseed(seed int64) {
	s.rng.Seed(seed)
	s.compositor = NewCompositor(&s.cfg, NewTurbulence(s.cfg.Turbulence, seed))
	s.regenerate()
}

// Reconfigure swaps in a new config and regenerates the populations
func (s *Scheduler) Reconfigure(cfg Config) {
	s.cfg = cfg
	s.compositor = NewCompositor(&s.cfg, NewTurbulence(cfg.Turbulence, s.rng.Int63()))
	s.regenerate()
}

func (s *Scheduler) regenerate() {
	w, h := s.ctx.Width, s.ctx.Height
	s.ctx.Particles = s.factory.Particles(w, h)
	s.ctx.Vesicles = s.factory.Vesicles(w, h)
	s.ctx.Fields = s.factory.Fields(w, h)
	s.ctx.Links = 0
}
