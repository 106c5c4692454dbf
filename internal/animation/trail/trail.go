// Package trail implements the pointer particle trail.
package trail

import (
	"math/rand/v2"
	"time"

	"github.com/AkshayRaj367/Game-Smiths-Club/internal/animation"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/random"
	"golang.org/x/time/rate"
)

// Palette is the fixed trail color set.
var Palette = []animation.Color{
	animation.MustHex("#00ffff"),
	animation.MustHex("#ff00ff"),
	animation.MustHex("#00ff99"),
}

// Options tunes the trail engine.
type Options struct {
	// MaxParticles caps concurrently live particles.
	MaxParticles int
	// SpawnInterval throttles pointer-driven spawns.
	SpawnInterval time.Duration
	// Spread is the half-width of the per-axis velocity range in px/tick.
	Spread float64
	// Size is the edge of each particle square.
	Size float64
	// Decay is the life lost per tick.
	Decay float64
	// Bounds is the owned surface region; zero clears the whole surface.
	Bounds animation.Rect
}

// DefaultOptions returns the landing page trail parameters.
func DefaultOptions() Options {
	return Options{
		MaxParticles:  100,
		SpawnInterval: 50 * time.Millisecond,
		Spread:        0.75,
		Size:          3,
		Decay:         0.02,
	}
}

// Particle is one live trail pixel.
type Particle struct {
	X, Y   float64
	DX, DY float64
	Life   float64
	Size   float64
	Color  animation.Color
}

// Engine owns the live particle set.
type Engine struct {
	opts      Options
	limiter   *rate.Limiter
	rng       *rand.Rand
	particles []Particle
}

// New creates an engine. Zero option fields fall back to DefaultOptions and a
// nil rng is seeded from crypto/rand.
func New(opts Options, rng *rand.Rand) *Engine {
	def := DefaultOptions()
	if opts.MaxParticles <= 0 {
		opts.MaxParticles = def.MaxParticles
	}
	if opts.SpawnInterval <= 0 {
		opts.SpawnInterval = def.SpawnInterval
	}
	if opts.Spread <= 0 {
		opts.Spread = def.Spread
	}
	if opts.Size <= 0 {
		opts.Size = def.Size
	}
	if opts.Decay <= 0 {
		opts.Decay = def.Decay
	}
	if rng == nil {
		rng = random.NewSeeded()
	}
	return &Engine{
		opts:      opts,
		limiter:   rate.NewLimiter(rate.Every(opts.SpawnInterval), 1),
		rng:       rng,
		particles: make([]Particle, 0, opts.MaxParticles),
	}
}

// PointerMoved spawns a particle at (x, y) when the spawn throttle allows it
// at now. It reports whether a particle was added.
func (e *Engine) PointerMoved(now time.Time, x, y float64) bool {
	if len(e.particles) >= e.opts.MaxParticles {
		return false
	}
	if !e.limiter.AllowN(now, 1) {
		return false
	}
	return e.Spawn(x, y)
}

// Spawn adds a particle without throttling. Requests over the cap are dropped.
func (e *Engine) Spawn(x, y float64) bool {
	if len(e.particles) >= e.opts.MaxParticles {
		return false
	}
	e.particles = append(e.particles, Particle{
		X:     x,
		Y:     y,
		DX:    (e.rng.Float64()*2 - 1) * e.opts.Spread,
		DY:    (e.rng.Float64()*2 - 1) * e.opts.Spread,
		Life:  1,
		Size:  e.opts.Size,
		Color: Palette[e.rng.IntN(len(Palette))],
	})
	return true
}

// Step advances every particle by one frame and drops the dead ones. Motion
// is expressed per frame, so dt only matters to the caller's loop.
func (e *Engine) Step(time.Duration) {
	live := e.particles[:0]
	for _, p := range e.particles {
		p.X += p.DX
		p.Y += p.DY
		p.Life -= e.opts.Decay
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	clear(e.particles[len(live):])
	e.particles = live
}

// Draw clears the owned region and paints every particle.
func (e *Engine) Draw(s animation.Surface) {
	if s == nil {
		return
	}
	s.Clear(e.opts.Bounds)
	for _, p := range e.particles {
		s.FillRect(animation.Rect{X: p.X, Y: p.Y, W: p.Size, H: p.Size}, p.Color, max(p.Life, 0))
	}
}

// Len returns the number of live particles.
func (e *Engine) Len() int {
	return len(e.particles)
}

// Particles returns a copy of the live particles.
func (e *Engine) Particles() []Particle {
	out := make([]Particle, len(e.particles))
	copy(out, e.particles)
	return out
}
