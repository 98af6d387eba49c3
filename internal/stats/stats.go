// Package stats derives adherence statistics from an obligation's completion set.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/KirkDiggler/forfeit/internal/models"
	"github.com/KirkDiggler/forfeit/internal/period"
)

// CurrentStreak counts consecutive satisfied periods ending with the period
// containing today. An unsatisfied current period yields zero.
func CurrentStreak(keys []string, cadence models.Cadence, today time.Time) int {
	set := periodSet(keys, cadence)
	if len(set) == 0 {
		return 0
	}

	streak := 0
	for cursor := period.Start(today, cadence); set[cursor]; cursor = period.Prev(cursor, cadence) {
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of consecutive satisfied periods
func LongestStreak(keys []string, cadence models.Cadence) int {
	set := periodSet(keys, cadence)
	if len(set) == 0 {
		return 0
	}

	starts := make([]time.Time, 0, len(set))
	for start := range set {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool {
		return starts[i].Before(starts[j])
	})

	longest, current := 1, 1
	for i := 1; i < len(starts); i++ {
		if starts[i].Equal(period.Next(starts[i-1], cadence)) {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
	}
	return longest
}

// ExpectedPeriods approximates how many periods have elapsed from reference
// through today inclusive. Months are counted as 30 days.
func ExpectedPeriods(reference, today time.Time, cadence models.Cadence) int {
	days := daysBetween(reference, today) + 1
	if days <= 0 {
		return 0
	}

	switch cadence {
	case models.CadenceDaily, "":
		return days
	case models.CadenceWeekly:
		return int(math.Ceil(float64(days) / 7.0))
	case models.CadenceMonthly:
		return int(math.Ceil(float64(days) / 30.0))
	default:
		return 1
	}
}

// CompletionRate returns observed completions as a percentage of the expected
// periods. The value is not clamped, so back-filled history can exceed 100.
func CompletionRate(observed int, reference, today time.Time, cadence models.Cadence) float64 {
	if observed <= 0 {
		return 0
	}
	expected := ExpectedPeriods(reference, today, cadence)
	if expected <= 0 {
		return 0
	}
	return float64(observed) * 100.0 / float64(expected)
}

// periodSet parses keys into distinct period starts, skipping anything unparsable
func periodSet(keys []string, cadence models.Cadence) map[time.Time]bool {
	set := make(map[time.Time]bool, len(keys))
	for _, key := range keys {
		start, err := period.ParseKey(key, cadence)
		if err != nil {
			continue
		}
		set[start] = true
	}
	return set
}

func daysBetween(from, to time.Time) int {
	from = period.Start(from, models.CadenceDaily)
	to = period.Start(to, models.CadenceDaily)
	return int(to.Sub(from).Hours() / 24)
}
