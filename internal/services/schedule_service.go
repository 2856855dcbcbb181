package services

import (
	"fmt"
	"regexp"
	"time"

	"wayfare/internal/models/db_models"
	"wayfare/pkg/utils"
)

const (
	dayStartClock  = "09:00"
	earliestClock  = "08:00"
	softCutoff     = "20:30"
	nearCutoff     = "20:25"
	hardCutoffHour = 22

	// nextTravelLookahead is the conservative estimate for the travel leg
	// that might follow a committed activity.
	nextTravelLookahead = 30 * time.Minute
)

var visitDurationRe = regexp.MustCompile(`Visit duration: ([\d.]+) hours`)

// ScheduleDay turns one day's place group into a timed activity list: visits
// interleaved with travel legs and meal breaks, all bounded by the 20:30
// soft cutoff. The travel-leg counter continues across days, so it is passed
// in and returned rather than kept anywhere shared.
func ScheduleDay(est *TravelEstimator, places []SchedulePlace, date time.Time, style string, travelCounter int) ([]db_models.Activity, int) {
	if len(places) == 0 {
		return []db_models.Activity{}, travelCounter
	}

	var schedule []db_models.Activity
	current := utils.CombineClock(date, dayStartClock)
	if current.Hour() < 8 {
		current = utils.CombineClock(date, earliestClock)
	}
	if current.Hour() >= 18 {
		current = utils.CombineClock(date, dayStartClock)
	}

	cutoff := utils.CombineClock(date, softCutoff)
	buffer := time.Duration(paceBufferMinutes(style)) * time.Minute
	lunchDone := false
	dinnerDone := false
	teaDone := false

	for i, place := range places {
		if current.After(cutoff) {
			break
		}

		if i > 0 {
			travelMinutes := est.EstimateMinutes(places[i-1].ID(), place.ID())
			travelEnd := current.Add(time.Duration(travelMinutes) * time.Minute)
			if travelEnd.Add(nextTravelLookahead).After(cutoff) {
				break
			}
			if !current.Before(utils.CombineClock(date, "19:30")) {
				break
			}
			if travelMinutes > 5 {
				schedule = append(schedule, db_models.Activity{
					PlaceID:   fmt.Sprintf("travel_%03d", travelCounter),
					PlaceName: "Travel to " + place.Name(),
					Time:      current.Format("15:04"),
					Notes:     fmt.Sprintf("Travel time: %d minutes", int(travelMinutes)),
				})
				travelCounter++
				current = travelEnd
			}
		}

		if h := current.Hour(); h >= 11 && h <= 13 && i > 0 && !lunchDone {
			lunchEnd := current.Add(mealDuration(style))
			if !lunchEnd.After(cutoff) {
				note := "Lunch break - enjoy local cuisine"
				if style == StyleRelaxed {
					note = "Extended lunch break - enjoy local cuisine"
				}
				schedule = append(schedule, db_models.Activity{
					PlaceID:   "break_lunch",
					PlaceName: "Lunch Break",
					Time:      current.Format("15:04"),
					Notes:     note,
				})
				current = lunchEnd
				lunchDone = true
			}
		}

		if style == StyleRelaxed && current.Hour() >= 14 && current.Hour() < 18 && i > 0 && !teaDone {
			teaEnd := current.Add(45 * time.Minute)
			if !teaEnd.After(cutoff) {
				schedule = append(schedule, db_models.Activity{
					PlaceID:   "break_tea",
					PlaceName: "Afternoon Tea Break",
					Time:      current.Format("15:04"),
					Notes:     "Relaxing afternoon tea break",
				})
				current = teaEnd
				teaDone = true
			}
		}

		dinnerStart := 18
		if style == StyleRelaxed {
			dinnerStart = 16
		}
		if h := current.Hour(); h >= dinnerStart && h < 20 && !dinnerDone && i > 0 {
			dinnerEnd := current.Add(mealDuration(style))
			// Leave room for a travel leg after dinner.
			if !dinnerEnd.Add(30 * time.Minute).After(cutoff) {
				note := "Dinner break - try local restaurants"
				if style == StyleRelaxed {
					note = "Extended dinner break - enjoy fine dining"
				}
				schedule = append(schedule, db_models.Activity{
					PlaceID:   "break_dinner",
					PlaceName: "Dinner Break",
					Time:      current.Format("15:04"),
					Notes:     note,
				})
				current = dinnerEnd
				dinnerDone = true
			}
		}

		// Recovery path: relaxed evenings still get a short dinner when
		// the full-length one did not fit.
		if style == StyleRelaxed && !dinnerDone && current.Hour() >= 17 && current.Hour() < 20 {
			shortEnd := current.Add(time.Hour)
			if !shortEnd.After(cutoff) {
				schedule = append(schedule, db_models.Activity{
					PlaceID:   "break_dinner",
					PlaceName: "Dinner Break",
					Time:      current.Format("15:04"),
					Notes:     "Dinner break - enjoy local cuisine",
				})
				current = shortEnd
				dinnerDone = true
			}
		}

		duration := EstimateVisitHours(place, style, current)
		visit := time.Duration(duration * float64(time.Hour))

		if hours := place.OpeningHours(); len(hours) > 0 && !utils.IsPlaceOpen(hours, current) {
			adjusted, ok := utils.BestVisitTime(hours, current, duration, cutoff)
			if !ok {
				break
			}
			if adjusted.Add(visit).Add(buffer).After(cutoff) {
				break
			}
			current = adjusted
		}

		predictedFinish := current.Add(visit).Add(buffer).Add(nextTravelLookahead)
		if predictedFinish.After(cutoff) {
			break
		}
		if current.Hour() >= 17 && predictedFinish.After(utils.CombineClock(date, "19:30")) {
			break
		}
		if duration >= 3.0 && !current.Before(utils.CombineClock(date, "17:30")) {
			break
		}
		if duration >= 2.0 && !current.Before(utils.CombineClock(date, "18:30")) {
			break
		}
		if !current.Before(utils.CombineClock(date, "19:30")) {
			break
		}
		if current.Hour() >= 21 {
			break
		}

		note := fmt.Sprintf("Visit duration: %.1f hours", duration)
		if extra := place.Notes(); extra != "" {
			note = fmt.Sprintf("%s (Visit duration: %.1f hours)", extra, duration)
		}
		schedule = append(schedule, db_models.Activity{
			PlaceID:   place.ID(),
			PlaceName: place.Name(),
			Time:      current.Format("15:04"),
			Notes:     note,
		})

		current = current.Add(visit).Add(buffer)

		if current.After(cutoff) {
			break
		}
		if !current.Before(utils.CombineClock(date, nearCutoff)) {
			break
		}
	}

	return validateSchedule(schedule, date), travelCounter
}

// validateSchedule is the hard-ceiling pass: nothing may start at or after
// 22:00, and no visit may run into 22:00, whatever the main loop committed.
func validateSchedule(schedule []db_models.Activity, date time.Time) []db_models.Activity {
	validated := make([]db_models.Activity, 0, len(schedule))
	for _, activity := range schedule {
		start, err := time.Parse("15:04", activity.Time)
		if err != nil {
			continue
		}
		if start.Hour() >= hardCutoffHour {
			continue
		}
		if m := visitDurationRe.FindStringSubmatch(activity.Notes); m != nil {
			var hours float64
			if _, err := fmt.Sscanf(m[1], "%f", &hours); err == nil {
				end := utils.CombineClock(date, activity.Time).Add(time.Duration(hours * float64(time.Hour)))
				if !end.Before(utils.CombineClock(date, "22:00")) {
					continue
				}
			}
		}
		validated = append(validated, activity)
	}
	return validated
}

func paceBufferMinutes(style string) int {
	switch style {
	case StyleRelaxed:
		return 15
	case StyleAccelerated:
		return 5
	default:
		return 10
	}
}

func mealDuration(style string) time.Duration {
	switch style {
	case StyleRelaxed:
		return 2 * time.Hour
	case StyleAccelerated:
		return time.Hour
	default:
		return 90 * time.Minute
	}
}
