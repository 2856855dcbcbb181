package utils

import (
	"strings"
	"time"
)

// Opening hours are stored per weekday name as "9:00 AM - 5:00 PM". A
// missing, blank, or "notice" entry means no information, which we read as
// always open.

func parseOpenRange(hours string) (open, close time.Time, ok bool) {
	parts := strings.Split(hours, " - ")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, false
	}
	open, err := time.Parse("3:04 PM", strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	close, err = time.Parse("3:04 PM", strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return open, close, true
}

func hoursForDay(openingHours map[string]string, at time.Time) (string, bool) {
	if len(openingHours) == 0 {
		return "", false
	}
	hours, ok := openingHours[at.Weekday().String()]
	if !ok || strings.TrimSpace(hours) == "" || strings.EqualFold(strings.TrimSpace(hours), "notice") {
		return "", false
	}
	return hours, true
}

// IsPlaceOpen reports whether a place is open at the given time. Unknown or
// unparseable hours are assumed open.
func IsPlaceOpen(openingHours map[string]string, at time.Time) bool {
	hours, ok := hoursForDay(openingHours, at)
	if !ok {
		return true
	}
	open, close, ok := parseOpenRange(hours)
	if !ok {
		return true
	}
	openAt := CombineClock(at, open.Format("15:04"))
	closeAt := CombineClock(at, close.Format("15:04"))
	return !at.Before(openAt) && !at.After(closeAt)
}

// BestVisitTime finds a start time on the same day that fits both the
// place's opening hours and the hard cutoff for the visit's duration. The
// second return value is false when no such time exists.
func BestVisitTime(openingHours map[string]string, current time.Time, durationHours float64, cutoff time.Time) (time.Time, bool) {
	finish := current.Add(durationFromHours(durationHours))
	hours, ok := hoursForDay(openingHours, current)
	if !ok {
		if finish.After(cutoff) {
			return time.Time{}, false
		}
		return current, true
	}

	open, close, parsed := parseOpenRange(hours)
	if !parsed {
		if finish.After(cutoff) {
			return time.Time{}, false
		}
		return current, true
	}
	if finish.After(cutoff) {
		return time.Time{}, false
	}

	openAt := CombineClock(current, open.Format("15:04"))
	closeAt := CombineClock(current, close.Format("15:04"))
	visit := durationFromHours(durationHours)

	switch {
	case current.Before(openAt):
		// Place opens later; start at opening if the cutoff still holds.
		if openAt.Add(visit).After(cutoff) {
			return time.Time{}, false
		}
		return openAt, true
	case current.Add(visit).After(closeAt):
		// Visit would run past closing; pull the start back if possible.
		latest := closeAt.Add(-visit)
		if latest.Before(openAt) {
			return time.Time{}, false
		}
		if latest.Add(visit).After(cutoff) {
			return time.Time{}, false
		}
		return latest, true
	default:
		return current, true
	}
}

func durationFromHours(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}
