package frameclock

import "time"

// Gate converts variable frame deltas into a count of fixed-interval ticks.
type Gate struct {
	// Interval is the fixed delay between discrete ticks.
	Interval time.Duration
	// MaxCatchUp bounds ticks reported by one Advance; zero means unbounded.
	MaxCatchUp int

	acc time.Duration
}

// NewGate returns a gate that fires every interval.
func NewGate(interval time.Duration, maxCatchUp int) *Gate {
	return &Gate{Interval: interval, MaxCatchUp: maxCatchUp}
}

// Advance accumulates dt and reports how many ticks are due. Ticks beyond
// MaxCatchUp are dropped along with their accumulated time.
func (g *Gate) Advance(dt time.Duration) int {
	if g == nil || g.Interval <= 0 || dt <= 0 {
		return 0
	}
	g.acc += dt
	due := int(g.acc / g.Interval)
	g.acc -= time.Duration(due) * g.Interval
	if g.MaxCatchUp > 0 && due > g.MaxCatchUp {
		due = g.MaxCatchUp
	}
	return due
}

// Reset discards accumulated time.
func (g *Gate) Reset() {
	if g == nil {
		return
	}
	g.acc = 0
}
