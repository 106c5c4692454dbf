// Package animation holds the per-session state shared by the decorative
// simulations (pointer position, clock) and the drawing surface they render to.
package animation

import (
	"time"

	"github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/frameclock"
)

// Session is the explicit replacement for page-global pointer state. It is
// owned by the goroutine driving the frame loop.
type Session struct {
	clock frameclock.Clock

	pointerX float64
	pointerY float64
}

// NewSession creates a session reading time from clock. A nil clock uses the
// system clock.
func NewSession(clock frameclock.Clock) *Session {
	if clock == nil {
		clock = frameclock.SystemClock{}
	}
	return &Session{clock: clock}
}

// Now returns the session clock time.
func (s *Session) Now() time.Time {
	return s.clock.Now()
}

// MovePointer records the latest pointer position in surface pixels.
func (s *Session) MovePointer(x, y float64) {
	s.pointerX = x
	s.pointerY = y
}

// Pointer returns the latest pointer position.
func (s *Session) Pointer() (float64, float64) {
	return s.pointerX, s.pointerY
}
