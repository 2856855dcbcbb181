package services

import (
	"strings"
	"time"

	"wayfare/pkg/utils"
)

// Travel styles accepted on a route request.
const (
	StyleRelaxed     = "relaxed"
	StyleModerate    = "moderate"
	StyleAccelerated = "accelerated"
)

// worldClassMuseums get a hard floor under relaxed pacing: no amount of
// capping may shrink a full-day institution below a real visit.
var worldClassMuseums = []string{"vatican", "louvre", "uffizi", "hermitage", "prado"}

var quickVisitWords = []string{"fountain", "square", "plaza", "piazza", "small", "mini"}

var landmarkWords = []string{"major", "grand", "central", "national", "royal", "imperial"}

// EstimateVisitHours returns how long a visit to the place should be
// scheduled for, in hours, given the traveler's pace and the clock time the
// visit would start.
//
// A curated duration hint wins over the category heuristics, but famous
// museums still get boosted when the hint undersells them. Without a hint
// the estimate starts from the place category, scales by popularity rank,
// price and rating, applies the pace multiplier, shortens late-afternoon
// starts, then applies a per-pace cap. The world-class floor is applied
// last and beats every cap, late-day included.
func EstimateVisitHours(sp SchedulePlace, pace string, startTime time.Time) float64 {
	name := strings.ToLower(sp.Name())
	category := strings.ToLower(sp.Category())
	price := utils.ParsePrice(sp.Price())
	rating := sp.Rating()
	popularity := sp.Popularity()

	var hours float64
	if minutes, ok := sp.DurationMinutes(); ok && minutes > 0 {
		hours = float64(minutes) / 60
		hours = boostHintedMuseum(hours, name, popularity, price, rating)
	} else {
		hours = baseHoursForCategory(name, category)
		hours = scaleByProfile(hours, name, popularity, price, rating)
	}

	switch pace {
	case StyleRelaxed:
		hours *= 1.5
	case StyleAccelerated:
		hours *= 0.8
	}

	startHour := float64(startTime.Hour()) + float64(startTime.Minute())/60
	if startHour >= 16 && hours > 2.5 {
		hours = 2.0
	} else if startHour >= 14 && hours > 3 {
		hours = 2.5
	}

	hours = capByPace(hours, pace, name, popularity, price, rating)

	if hours < 0.25 {
		hours = 0.25
	}

	if pace == StyleRelaxed && isWorldClassMuseum(name) && hours < 6.0 {
		hours = 6.0
	}
	return hours
}

// boostHintedMuseum corrects duration hints that are implausibly short for
// well-known museums. The tiers key off popularity rank (lower is more
// popular), ticket price and rating.
func boostHintedMuseum(hours float64, name string, popularity, price, rating float64) float64 {
	if !strings.Contains(name, "museum") {
		return hours
	}
	switch {
	case popularity <= 2 && (price > 25 || rating >= 4.7):
		hours = maxf(hours, 6.0)
	case popularity <= 3 || price > 20 || rating >= 4.5:
		hours = maxf(hours, 5.0)
	case popularity <= 5 || price > 15 || rating >= 4.0:
		hours = maxf(hours, 4.0)
	}
	if containsAny(name, []string{"vatican", "complex", "basilica", "cathedral"}) {
		hours = maxf(hours, 6.0)
	}
	return hours
}

func baseHoursForCategory(name, category string) float64 {
	combined := name + " " + category

	switch {
	case strings.Contains(combined, "museum"):
		switch {
		case containsAny(name, []string{"national", "royal", "state", "metropolitan", "major"}):
			return 5.0
		case containsAny(name, []string{"complex", "center", "centre", "palace", "castle"}):
			return 4.5
		case containsAny(category, []string{"specialty", "modern", "contemporary", "science", "history", "natural"}):
			return 3.0
		case containsAny(name, []string{"grand", "grande", "great", "main", "principal"}):
			return 3.5
		default:
			return 2.5
		}
	case containsAny(combined, []string{"church", "cathedral", "basilica", "temple", "mosque", "synagogue", "religious"}):
		if containsAny(combined, []string{"cathedral", "basilica", "major", "historic"}) {
			return 2.5
		}
		return 1.5
	case containsAny(combined, []string{"park", "garden"}):
		if containsAny(combined, []string{"national", "botanical", "large", "major"}) {
			return 3.0
		}
		return 2.0
	case strings.Contains(combined, "historic"):
		if strings.Contains(combined, "major") {
			return 2.5
		}
		return 1.5
	case containsAny(combined, []string{"theater", "theatre", "opera", "concert", "cultural"}):
		return 2.5
	case containsAny(combined, []string{"market", "shopping"}):
		return 1.5
	case containsAny(combined, []string{"restaurant", "dining", "food"}):
		if containsAny(combined, []string{"fine dining", "michelin"}) {
			return 2.5
		}
		return 1.5
	case containsAny(combined, []string{"spa", "wellness"}):
		return 1.5
	case containsAny(combined, []string{"amusement", "theme park"}):
		if strings.Contains(combined, "theme park") {
			return 3.0
		}
		return 1.5
	case containsAny(combined, []string{"cooking", "wine", "tasting"}):
		return 2.5
	case containsAny(combined, []string{"river", "lake", "natural", "scenic"}):
		return 1.5
	case containsAny(combined, []string{"monument", "landmark", "tower", "memorial", "statue"}):
		return 1.0
	case containsAny(combined, []string{"fountain", "square", "plaza", "piazza"}):
		return 0.5
	case containsAny(combined, []string{"stadium", "sports"}):
		if strings.Contains(combined, "stadium") {
			return 3.0
		}
		return 1.5
	case containsAny(combined, []string{"attraction", "point of interest"}):
		return 1.0
	default:
		return 1.0
	}
}

// scaleByProfile adjusts the category base by how prominent and how pricey
// the place is, then bounds quick stops and landmarks.
func scaleByProfile(hours float64, name string, popularity, price, rating float64) float64 {
	switch {
	case popularity <= 3:
		hours *= 1.5
	case popularity > 6:
		hours *= 0.7
	}

	if price > 50 {
		hours *= 1.3
	} else if price > 20 {
		hours *= 1.1
	}

	if rating >= 4.5 {
		hours *= 1.2
	}

	if containsAny(name, quickVisitWords) && hours > 1.0 {
		hours = 1.0
	}
	if containsAny(name, landmarkWords) && hours < 2.0 {
		hours = 2.0
	}
	return hours
}

func capByPace(hours float64, pace, name string, popularity, price, rating float64) float64 {
	majorMuseum := strings.Contains(name, "museum") &&
		(popularity <= 3 || price > 30 || rating >= 4.5)

	var cap float64
	switch pace {
	case StyleRelaxed:
		cap = 5.0
		if majorMuseum {
			cap = 6.0
		}
	case StyleAccelerated:
		cap = 2.5
	default:
		cap = 3.5
		if majorMuseum {
			cap = 4.0
		}
	}

	if hours > cap {
		hours = cap
	}
	return hours
}

func isWorldClassMuseum(name string) bool {
	return containsAny(name, worldClassMuseums)
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
