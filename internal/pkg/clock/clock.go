// Package clock provides time utilities for the application
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/rpg-idle/internal/pkg/clock Clock

// DateLayout is the calendar-day key used for daily resets and daily stats
const DateLayout = "2006-01-02"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Date returns the calendar-day key for t in t's location
func Date(t time.Time) string {
	return t.Format(DateLayout)
}
