// Package follower steers the decorative ghosts that trail the pointer.
package follower

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/AkshayRaj367/Game-Smiths-Club/internal/animation"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/random"
)

const (
	// Size is the ghost edge length in pixels.
	Size = 24

	moveThreshold    = 2.0
	idleThreshold    = 60
	redisperseEvery  = 120
	firstDisperse    = 150.0
	periodicDisperse = 200.0
	eyeBaseX         = 6.0
	eyeBaseY         = 9.0
	eyeReach         = 1.5
	eyeSize          = 4.0
)

var (
	bodyColors = []animation.Color{
		animation.MustHex("#00ffff"),
		animation.MustHex("#ff00ff"),
		animation.MustHex("#00ff99"),
	}
	eyeColor = animation.MustHex("#000000")
)

// Ghost is one follower entity.
type Ghost struct {
	X, Y             float64
	TargetX, TargetY float64
	// Coefficient is the fraction of the remaining distance covered per tick.
	Coefficient float64
	// EyeX and EyeY place the gaze marker relative to the ghost's top-left.
	EyeX, EyeY float64
	Color      animation.Color
}

// Center returns the ghost's rendered center.
func (g Ghost) Center() (float64, float64) {
	return g.X + Size/2, g.Y + Size/2
}

// Flock steers the three ghosts from session pointer state.
type Flock struct {
	session *animation.Session
	rng     *rand.Rand
	ghosts  []Ghost

	lastX, lastY float64
	idleTicks    int
	dispersing   bool
}

// New creates the fast, medium and slow ghosts. A nil rng is seeded from
// crypto/rand.
func New(session *animation.Session, rng *rand.Rand) *Flock {
	if rng == nil {
		rng = random.NewSeeded()
	}
	starts := []struct{ pos, coeff float64 }{
		{pos: 100, coeff: 0.08},
		{pos: 150, coeff: 0.05},
		{pos: 200, coeff: 0.03},
	}
	ghosts := make([]Ghost, len(starts))
	for i, s := range starts {
		ghosts[i] = Ghost{
			X:           s.pos,
			Y:           s.pos,
			TargetX:     s.pos,
			TargetY:     s.pos,
			Coefficient: s.coeff,
			EyeX:        eyeBaseX,
			EyeY:        eyeBaseY,
			Color:       bodyColors[i],
		}
	}
	f := &Flock{session: session, rng: rng, ghosts: ghosts}
	if session != nil {
		f.lastX, f.lastY = session.Pointer()
	}
	return f
}

// Step runs one Update against the flock's session.
func (f *Flock) Step(time.Duration) {
	f.Update(f.session)
}

// Update advances targets, positions and gaze by one tick.
func (f *Flock) Update(s *animation.Session) {
	if s == nil {
		return
	}
	px, py := s.Pointer()
	moved := math.Abs(px-f.lastX) > moveThreshold || math.Abs(py-f.lastY) > moveThreshold

	if moved {
		f.idleTicks = 0
		f.dispersing = false
		for i := range f.ghosts {
			f.ghosts[i].TargetX = px
			f.ghosts[i].TargetY = py
		}
	} else {
		f.idleTicks++
		if f.idleTicks > idleThreshold && !f.dispersing {
			f.dispersing = true
			f.scatter(px, py, firstDisperse)
		}
		if f.dispersing && f.idleTicks%redisperseEvery == 0 {
			f.scatter(px, py, periodicDisperse)
		}
	}
	f.lastX, f.lastY = px, py

	for i := range f.ghosts {
		g := &f.ghosts[i]
		g.X += (g.TargetX - g.X) * g.Coefficient
		g.Y += (g.TargetY - g.Y) * g.Coefficient

		cx, cy := g.Center()
		a := math.Atan2(py-cy, px-cx)
		g.EyeX = eyeBaseX + math.Cos(a)*eyeReach
		g.EyeY = eyeBaseY + math.Sin(a)*eyeReach
	}
}

func (f *Flock) scatter(px, py, radius float64) {
	for i := range f.ghosts {
		f.ghosts[i].TargetX = px + (f.rng.Float64()*2-1)*radius
		f.ghosts[i].TargetY = py + (f.rng.Float64()*2-1)*radius
	}
}

// Draw renders each ghost body and its eye.
func (f *Flock) Draw(s animation.Surface) {
	if s == nil {
		return
	}
	for _, g := range f.ghosts {
		s.FillRect(animation.Rect{X: g.X, Y: g.Y, W: Size, H: Size}, g.Color, 1)
		s.FillRect(animation.Rect{X: g.X + g.EyeX, Y: g.Y + g.EyeY, W: eyeSize, H: eyeSize}, eyeColor, 1)
	}
}

// Ghosts returns a copy of the ghost states.
func (f *Flock) Ghosts() []Ghost {
	out := make([]Ghost, len(f.ghosts))
	copy(out, f.ghosts)
	return out
}

// Dispersing reports whether the ghosts are wandering around an idle pointer.
func (f *Flock) Dispersing() bool {
	return f.dispersing
}

// IdleTicks returns how many consecutive ticks the pointer has been still.
func (f *Flock) IdleTicks() int {
	return f.idleTicks
}
