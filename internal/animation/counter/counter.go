// Package counter animates a displayed integer from zero up to a target.
package counter

import (
	"math"
	"time"
)

// Default timing used by the landing page stat cards.
const (
	DefaultDuration = 2 * time.Second
	DefaultTick     = 16 * time.Millisecond
)

// Animator reveals target over duration with fixed linear increments.
type Animator struct {
	target    int
	duration  time.Duration
	tick      time.Duration
	increment float64
	current   float64
	value     int
	done      bool
	acc       time.Duration
}

// New creates an animator. Non-positive timing falls back to the defaults.
func New(target int, duration, tick time.Duration) *Animator {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if tick <= 0 {
		tick = DefaultTick
	}
	a := &Animator{duration: duration, tick: tick}
	a.Retarget(target)
	return a
}

// Retarget restarts the reveal from zero toward target.
func (a *Animator) Retarget(target int) {
	a.target = target
	a.current = 0
	a.value = 0
	a.acc = 0
	a.done = false
	steps := float64(a.duration) / float64(a.tick)
	if target <= 0 || steps <= 0 {
		a.value = target
		a.done = true
		return
	}
	a.increment = float64(target) / steps
}

// Tick advances one fixed step and returns the displayed value.
func (a *Animator) Tick() int {
	if a.done {
		return a.value
	}
	a.current += a.increment
	if a.current >= float64(a.target) {
		a.value = a.target
		a.done = true
		return a.value
	}
	a.value = int(math.Floor(a.current))
	return a.value
}

// Step advances as many whole ticks as dt covers, carrying the remainder.
func (a *Animator) Step(dt time.Duration) {
	if a.done || dt <= 0 {
		return
	}
	a.acc += dt
	for a.acc >= a.tick && !a.done {
		a.acc -= a.tick
		a.Tick()
	}
}

// Value returns the currently displayed integer.
func (a *Animator) Value() int {
	return a.value
}

// Target returns the value the animation ends on.
func (a *Animator) Target() int {
	return a.target
}

// Done reports whether the target has been reached.
func (a *Animator) Done() bool {
	return a.done
}
