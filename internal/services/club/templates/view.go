// Package templates renders the club landing page.
package templates

import (
	"fmt"
	"time"

	"github.com/AkshayRaj367/Game-Smiths-Club/internal/animation/countdown"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/branding"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LandingView carries server-rendered landing page values.
type LandingView struct {
	Title           string
	MemberCount     int
	RegisteredCount int
	Countdown       countdown.Remaining
	Year            int
	JoinOpen        bool
}

// NewLandingView builds the view for now.
func NewLandingView(now time.Time, members, registered int, joinOpen bool) LandingView {
	return LandingView{
		Title:           branding.AppName,
		MemberCount:     members,
		RegisteredCount: registered,
		Countdown:       countdown.Until(now),
		Year:            now.Year(),
		JoinOpen:        joinOpen,
	}
}

var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

type countdownUnit struct {
	ID    string
	Label string
	Value int
}

// Digits zero-pads the value to two places.
func (u countdownUnit) Digits() string {
	return fmt.Sprintf("%02d", u.Value)
}

func countdownUnits(r countdown.Remaining) []countdownUnit {
	return []countdownUnit{
		{ID: "days", Label: "Days", Value: r.Days},
		{ID: "hours", Label: "Hours", Value: r.Hours},
		{ID: "minutes", Label: "Minutes", Value: r.Minutes},
		{ID: "seconds", Label: "Seconds", Value: r.Seconds},
	}
}
