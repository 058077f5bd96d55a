// Package progress derives streaks and aggregate counts from the set of
// days on which sessions were completed, and records completions and
// partial sessions on the durable user record.
package progress

import (
	"sort"
	"time"

	"github.com/616xold/rehab-budd-islem/pkg/models"
)

// CurrentStreak returns the length in days of the user's run of
// calendar-consecutive completion days, evaluated at now. The most
// recent completion may be today or yesterday; one missed day beyond
// that breaks the streak. Duplicate dates within a day collapse.
func CurrentStreak(dates []string, now time.Time) int {
	days := parseDays(dates)
	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := truncateDay(now)
	yesterday := today.AddDate(0, 0, -1)

	// A streak computed before midnight still counts any time the
	// following day; anything older is broken.
	if !sameDay(days[0], today) && !sameDay(days[0], yesterday) {
		return 0
	}

	streak := 1
	prev := days[0]
	for _, d := range days[1:] {
		gap := int(prev.Sub(d).Hours() / 24)
		switch gap {
		case 0:
			// duplicate day, keep walking
			continue
		case 1:
			streak++
			prev = d
		default:
			return streak
		}
	}
	return streak
}

// WeeklyCount returns the number of distinct completion days inside the
// trailing 7-day window, today inclusive.
func WeeklyCount(dates []string, now time.Time) int {
	today := truncateDay(now)
	windowStart := today.AddDate(0, 0, -6)

	count := 0
	for _, d := range parseDays(dates) {
		if !d.Before(windowStart) && !d.After(today) {
			count++
		}
	}
	return count
}

// parseDays converts the stored YYYY-MM-DD strings to day-truncated
// times, dropping malformed entries and collapsing duplicates.
func parseDays(dates []string) []time.Time {
	seen := make(map[string]bool, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, s := range dates {
		if seen[s] {
			continue
		}
		d, err := time.Parse(models.DateLayout, s)
		if err != nil {
			continue
		}
		seen[s] = true
		days = append(days, d)
	}
	return days
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
