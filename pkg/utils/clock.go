package utils

import "time"

const DateLayout = "2006-01-02"

// CombineClock anchors an "HH:MM" clock string on the calendar day of t.
// An unparseable clock yields midnight of that day.
func CombineClock(t time.Time, clock string) time.Time {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		parsed = time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), parsed.Hour(), parsed.Minute(), 0, 0, t.Location())
}

// SeasonFromMonth maps a start month to its northern-hemisphere season, the
// auto-detection used when a trip request carries no explicit season.
func SeasonFromMonth(month time.Month) string {
	switch month {
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	case time.September, time.October, time.November:
		return "autumn"
	default:
		return "winter"
	}
}
