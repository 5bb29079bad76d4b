package queue

import (
	"fmt"
	"time"

	"github.com/ringstack/ringstack/pkg/services"
)

// Window is a campaign calling window: wall-clock HH:MM boundaries
// interpreted in one IANA timezone. Boundaries are inclusive on both ends,
// and windows never cross midnight (rejected at campaign creation).
type Window struct {
	loc      *time.Location
	firstSec int
	lastSec  int
}

// NewWindow parses and validates a calling window.
func NewWindow(timezone, firstCallTime, lastCallTime string) (*Window, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, services.NewValidationError("timezone", fmt.Sprintf("unknown IANA zone %q", timezone))
	}
	first, err := parseClock(firstCallTime)
	if err != nil {
		return nil, services.NewValidationError("first_call_time", err.Error())
	}
	last, err := parseClock(lastCallTime)
	if err != nil {
		return nil, services.NewValidationError("last_call_time", err.Error())
	}
	if last < first {
		return nil, services.NewValidationError("last_call_time",
			"window must not cross midnight (last_call_time before first_call_time)")
	}
	return &Window{loc: loc, firstSec: first, lastSec: last}, nil
}

// Contains reports whether now falls inside the window. The comparison is
// second-granular: 17:00:00 is inside a 09:00-17:00 window, 17:00:01 is not.
func (w Window) Contains(now time.Time) bool {
	local := now.In(w.loc)
	sec := local.Hour()*3600 + local.Minute()*60 + local.Second()
	return sec >= w.firstSec && sec <= w.lastSec
}

// NextOpen returns the earliest instant at or after now when the window is
// open: now itself when inside, today's opening when before it, tomorrow's
// otherwise.
func (w Window) NextOpen(now time.Time) time.Time {
	if w.Contains(now) {
		return now
	}
	local := now.In(w.loc)
	opening := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, w.firstSec, 0, w.loc)
	if !opening.After(now) {
		opening = opening.AddDate(0, 0, 1)
	}
	return opening
}

// parseClock converts "HH:MM" to seconds since midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("must be HH:MM (24h), got %q", s)
	}
	return t.Hour()*3600 + t.Minute()*60, nil
}
