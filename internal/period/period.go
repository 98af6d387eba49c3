// Package period maps calendar dates onto the canonical period keys used for
// completion tracking and penalty idempotence.
//
// A date is a time.Time at midnight UTC. Weekly periods start on Monday and
// monthly periods on the 1st, independent of when an obligation was created.
package period

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/forfeit/internal/models"
)

// DateLayout is the layout of dates and period keys
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a date or period key cannot be parsed
var ErrInvalidDate = errors.New("invalid date")

// Date builds a calendar date
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today returns the calendar date of now as observed in loc
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return truncate(now.In(loc))
}

// ParseDate accepts either a YYYY-MM-DD date or an RFC 3339 instant. Instants
// are converted to the calendar date they fall on in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d, nil
	}

	instant, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Today(instant, loc), nil
}

// Start returns the first day of the period containing d
func Start(d time.Time, cadence models.Cadence) time.Time {
	d = truncate(d)
	switch cadence.Normalize() {
	case models.CadenceWeekly:
		// Weekday() is 0 for Sunday; shift so Monday is 0
		offset := (int(d.Weekday()) + 6) % 7
		return d.AddDate(0, 0, -offset)
	case models.CadenceMonthly:
		return Date(d.Year(), d.Month(), 1)
	default:
		return d
	}
}

// Key returns the canonical key of the period containing d
func Key(d time.Time, cadence models.Cadence) string {
	return Start(d, cadence).Format(DateLayout)
}

// ParseKey parses a stored key back into the start of its period. Raw dates
// are normalized so legacy entries still land on a period boundary.
func ParseKey(key string, cadence models.Cadence) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(key))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: period key %q", ErrInvalidDate, key)
	}
	return Start(d, cadence), nil
}

// Next returns the start of the period after the one containing d
func Next(d time.Time, cadence models.Cadence) time.Time {
	return step(Start(d, cadence), cadence, 1)
}

// Prev returns the start of the period before the one containing d
func Prev(d time.Time, cadence models.Cadence) time.Time {
	return step(Start(d, cadence), cadence, -1)
}

// End returns the last day of the period containing d
func End(d time.Time, cadence models.Cadence) time.Time {
	return Next(d, cadence).AddDate(0, 0, -1)
}

// Concluded returns the start of the most recently finished period that is
// due for enforcement on today. Daily periods are evaluated every day, weekly
// periods only on Mondays and monthly periods only on the 1st.
func Concluded(today time.Time, cadence models.Cadence) (time.Time, bool) {
	today = truncate(today)
	yesterday := today.AddDate(0, 0, -1)

	switch cadence.Normalize() {
	case models.CadenceWeekly:
		if yesterday.Weekday() != time.Sunday {
			return time.Time{}, false
		}
		return Start(yesterday, models.CadenceWeekly), true
	case models.CadenceMonthly:
		if today.Day() != 1 {
			return time.Time{}, false
		}
		return Start(yesterday, models.CadenceMonthly), true
	default:
		return yesterday, true
	}
}

func step(start time.Time, cadence models.Cadence, n int) time.Time {
	switch cadence.Normalize() {
	case models.CadenceWeekly:
		return start.AddDate(0, 0, 7*n)
	case models.CadenceMonthly:
		return start.AddDate(0, n, 0)
	default:
		return start.AddDate(0, 0, n)
	}
}

func truncate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}
