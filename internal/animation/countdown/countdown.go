// Package countdown computes the time left until the club launch date.
package countdown

import (
	"fmt"
	"time"

	"github.com/hako/durafmt"
)

const (
	launchMonth = time.October
	launchDay   = 17
)

// Remaining is the broken-down time until the launch date.
type Remaining struct {
	Days     int
	Hours    int
	Minutes  int
	Seconds  int
	Launched bool

	total time.Duration
}

// Target returns the next launch date at midnight in now's location. Once
// the date has passed for the current year the following year is used.
func Target(now time.Time) time.Time {
	year := now.Year()
	if now.Month() > launchMonth || (now.Month() == launchMonth && now.Day() > launchDay) {
		year++
	}
	return time.Date(year, launchMonth, launchDay, 0, 0, 0, 0, now.Location())
}

// Until returns the time left until Target(now).
func Until(now time.Time) Remaining {
	d := Target(now).Sub(now)
	if d <= 0 {
		return Remaining{Launched: true}
	}
	return Remaining{
		Days:    int(d / (24 * time.Hour)),
		Hours:   int(d % (24 * time.Hour) / time.Hour),
		Minutes: int(d % time.Hour / time.Minute),
		Seconds: int(d % time.Minute / time.Second),
		total:   d,
	}
}

// Duration returns the total time left.
func (r Remaining) Duration() time.Duration {
	return r.total
}

// Clock renders DD:HH:MM:SS.
func (r Remaining) Clock() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", r.Days, r.Hours, r.Minutes, r.Seconds)
}

// Human renders the two most significant units, e.g. "3 days 4 hours".
func (r Remaining) Human() string {
	if r.Launched {
		return "Launched"
	}
	return durafmt.Parse(r.total.Truncate(time.Second)).LimitFirstN(2).String()
}
