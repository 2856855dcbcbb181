package services

import (
	"sort"

	"wayfare/pkg/utils"
)

const (
	clusterRadiusKm = 2.0

	// missingPopularityRank sorts places without a popularity rank to the
	// back when picking by popularity.
	missingPopularityRank = 999999.0
)

// DistributeDays assigns the trip's places to day groups. Must-visit items
// are split as evenly as possible across days first, earliest days taking
// the remainder. Without must-visits, declared interests switch the additional
// pool between proximity clustering and popularity ordering.
//
// The result always has exactly `days` groups; days that could not be
// populated get an empty group, never a missing one.
func DistributeDays(mustVisit, additional []SchedulePlace, days, perDay int, hasInterests bool) [][]SchedulePlace {
	if days <= 0 {
		return nil
	}

	var groups [][]SchedulePlace
	if len(mustVisit) > 0 {
		groups = distributeWithMustVisit(mustVisit, additional, days, perDay)
	} else if hasInterests {
		groups = groupByProximity(additional, perDay)
	} else {
		groups = groupByPopularity(additional, days, perDay)
	}

	if len(groups) > days {
		groups = groups[:days]
	}
	for len(groups) < days {
		groups = append(groups, []SchedulePlace{})
	}
	return groups
}

func distributeWithMustVisit(mustVisit, additional []SchedulePlace, days, perDay int) [][]SchedulePlace {
	perDayMust := len(mustVisit) / days
	remainder := len(mustVisit) % days

	groups := make([][]SchedulePlace, 0, days)
	mustIdx := 0
	for day := 0; day < days; day++ {
		var group []SchedulePlace

		take := perDayMust
		if day < remainder {
			take++
		}
		for i := 0; i < take && mustIdx < len(mustVisit); i++ {
			group = append(group, mustVisit[mustIdx])
			mustIdx++
		}

		needed := perDay - len(group)
		if needed > 0 && len(additional) > 0 {
			start := day * needed
			for i := start; i < start+needed && i < len(additional); i++ {
				group = append(group, additional[i])
			}
		}

		groups = append(groups, group)
	}
	return groups
}

// groupByProximity clusters places so each day's stops sit within walking
// range of a seed: pick an unused place, absorb any unused place within 2 km
// until the day is full, then seed the next cluster. Places without
// coordinates ride along with the most recent cluster.
func groupByProximity(places []SchedulePlace, perDay int) [][]SchedulePlace {
	if len(places) == 0 {
		return nil
	}

	var withCoords, withoutCoords []SchedulePlace
	for _, p := range places {
		if _, _, ok := p.Coordinates(); ok {
			withCoords = append(withCoords, p)
		} else {
			withoutCoords = append(withoutCoords, p)
		}
	}

	var groups [][]SchedulePlace
	used := make([]bool, len(withCoords))

	for i, seed := range withCoords {
		if used[i] {
			continue
		}
		group := []SchedulePlace{seed}
		used[i] = true

		seedLat, seedLng, _ := seed.Coordinates()
		for j, other := range withCoords {
			if used[j] || len(group) >= perDay {
				continue
			}
			lat, lng, _ := other.Coordinates()
			if utils.HaversineKm(seedLat, seedLng, lat, lng) <= clusterRadiusKm {
				group = append(group, other)
				used[j] = true
			}
		}
		groups = append(groups, group)
	}

	for _, p := range withoutCoords {
		if len(groups) > 0 && len(groups[len(groups)-1]) < perDay {
			groups[len(groups)-1] = append(groups[len(groups)-1], p)
		} else {
			groups = append(groups, []SchedulePlace{p})
		}
	}
	return groups
}

// groupByPopularity fills earlier days with the most popular places, then
// greedily keeps each day's picks close to each other.
func groupByPopularity(places []SchedulePlace, days, perDay int) [][]SchedulePlace {
	if len(places) == 0 {
		groups := make([][]SchedulePlace, days)
		for i := range groups {
			groups[i] = []SchedulePlace{}
		}
		return groups
	}

	pool := make([]SchedulePlace, len(places))
	copy(pool, places)
	sort.SliceStable(pool, func(i, j int) bool {
		return popularityRank(pool[i]) < popularityRank(pool[j])
	})

	for len(pool) < days {
		pool = append(pool, pool[0])
	}

	pool = extendForVariety(pool, days, perDay)

	groups := make([][]SchedulePlace, 0, days)
	used := make([]bool, len(pool))

	for day := 0; day < days; day++ {
		var group []SchedulePlace

		target := perDay
		if target < 1 {
			target = 1
		}

		for attempts := 0; len(group) < target && attempts < len(pool)*2; attempts++ {
			idx := pickBestForDay(pool, used, group)
			if idx >= 0 {
				group = append(group, pool[idx])
				used[idx] = true
				continue
			}
			if len(group) == 0 {
				group = append(group, pool[day%len(pool)])
			}
			break
		}

		if len(group) == 0 {
			group = append(group, pool[day%len(pool)])
		}
		groups = append(groups, group)
	}
	return groups
}

// extendForVariety builds the working pool for day filling: one top-scored
// place guaranteed per day, more top places up to the day minimum, then the
// leftovers cycled forward and reversed for variety.
func extendForVariety(pool []SchedulePlace, days, perDay int) []SchedulePlace {
	minNeeded := days * 2
	target := days * perDay
	if minNeeded > target {
		target = minNeeded
	}

	scored := make([]SchedulePlace, len(pool))
	copy(scored, pool)
	sort.SliceStable(scored, func(i, j int) bool {
		return blendedScore(scored[i]) > blendedScore(scored[j])
	})

	var extended []SchedulePlace
	for day := 0; day < days && day < len(scored); day++ {
		extended = append(extended, scored[day])
	}

	topEnd := minNeeded
	if topEnd > len(scored) {
		topEnd = len(scored)
	}
	if days < topEnd {
		extended = append(extended, scored[days:topEnd]...)
	}

	if len(scored) > minNeeded {
		leftovers := scored[minNeeded:]
		forward := true
		for len(extended) < target {
			if forward {
				extended = append(extended, leftovers...)
			} else {
				for i := len(leftovers) - 1; i >= 0; i-- {
					extended = append(extended, leftovers[i])
				}
			}
			forward = !forward
		}
	} else {
		for i := 0; len(extended) < days; i++ {
			extended = append(extended, scored[i%len(scored)])
		}
	}
	return extended
}

// pickBestForDay finds the unused place with the lowest combined score:
// popularity rank plus a lightly weighted distance to the day's existing
// picks. Returns -1 when everything is used.
func pickBestForDay(pool []SchedulePlace, used []bool, group []SchedulePlace) int {
	best := -1
	bestScore := 0.0

	for i, candidate := range pool {
		if used[i] {
			continue
		}

		proximity := 0.0
		if len(group) > 0 {
			proximity = 10.0
			if cLat, cLng, ok := candidate.Coordinates(); ok {
				minDist := -1.0
				for _, existing := range group {
					if eLat, eLng, ok := existing.Coordinates(); ok {
						d := utils.HaversineKm(cLat, cLng, eLat, eLng)
						if minDist < 0 || d < minDist {
							minDist = d
						}
					}
				}
				if minDist >= 0 {
					proximity = minDist
				}
			}
		}

		score := popularityRank(candidate) + proximity*0.1
		if best < 0 || score < bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}

func popularityRank(sp SchedulePlace) float64 {
	p := sp.Popularity()
	if p <= 0 {
		return missingPopularityRank
	}
	return p
}

// blendedScore ranks by quality: rating dominates, popularity breaks ties.
func blendedScore(sp SchedulePlace) float64 {
	popularity := popularityRank(sp)
	popularityScore := 1 - popularity/1000000
	return sp.Rating()*0.7 + popularityScore*0.3
}
