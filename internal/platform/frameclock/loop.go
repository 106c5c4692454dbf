package frameclock

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval approximates a 60Hz display refresh.
const DefaultInterval = 16 * time.Millisecond

// Stepper advances its model by one frame.
type Stepper interface {
	Step(dt time.Duration)
}

// StepFunc adapts a function to Stepper.
type StepFunc func(dt time.Duration)

// Step calls f(dt).
func (f StepFunc) Step(dt time.Duration) {
	f(dt)
}

// Loop steps registered subsystems once per tick in registration order.
type Loop struct {
	interval time.Duration

	steppers []Stepper
	last     time.Time
	ticked   bool
	ticks    uint64

	stopOnce sync.Once
	stop     chan struct{}
}

// NewLoop creates a loop ticking every interval, or DefaultInterval when
// interval is not positive.
func NewLoop(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Interval returns the frame interval used by Run.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Add registers steppers. Must not be called concurrently with Run.
func (l *Loop) Add(steppers ...Stepper) {
	for _, s := range steppers {
		if s != nil {
			l.steppers = append(l.steppers, s)
		}
	}
}

// Ticks returns how many ticks have been processed.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Tick steps every subsystem once. The first tick reports a zero delta; a
// clock moving backwards is also treated as zero.
func (l *Loop) Tick(now time.Time) time.Duration {
	var dt time.Duration
	if l.ticked {
		dt = now.Sub(l.last)
		if dt < 0 {
			dt = 0
		}
	}
	l.last = now
	l.ticked = true
	l.ticks++
	for _, s := range l.steppers {
		s.Step(dt)
	}
	return dt
}

// Run ticks on a timer until ctx ends or Stop is called.
func (l *Loop) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if l.Stopped() {
		return nil
	}
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-l.stop:
			return nil
		case now := <-ticker.C:
			// Stop may race the ticker; honor it before stepping.
			if l.Stopped() {
				return nil
			}
			l.Tick(now)
		}
	}
}

// Stop ends Run. Safe to call repeatedly and from any goroutine.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
}

// Stopped reports whether Stop has been called.
func (l *Loop) Stopped() bool {
	select {
	case <-l.stop:
		return true
	default:
		return false
	}
}
