package services

import (
	"context"
	"log"
	"strings"

	"wayfare/internal/models/db_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

// serviceBlacklist filters out listings that are services or logistics
// rather than visitable attractions.
var serviceBlacklist = []string{
	"taxi", "transfer", "transport", "car hire", "rental",
	"hotel booking", "room booking", "accommodation",
	"ultimate party", "party service", "event planning",
	"delivery", "courier", "shipping", "logistics",
}

// commonCountries is the last rung of the geography-widening ladder when a
// city and its country turn up nothing.
var commonCountries = []string{
	"United States", "USA", "UK", "United Kingdom",
	"France", "Germany", "Spain", "Italy", "Japan",
}

// PoolConfig holds the tuning constants of candidate selection. The exact
// numbers are trial-derived, so they live in one place instead of being
// scattered through the filter loop.
type PoolConfig struct {
	// CategoryLimits caps how many places of one category survive
	// filtering, keyed by travel style. Short and Long select on the
	// style-specific day threshold.
	CategoryLimitShort map[string]int
	CategoryLimitLong  map[string]int

	// ShortTripBonus loosens the category cap when a short trip is
	// starving for candidates.
	ShortTripBonus int
}

func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		CategoryLimitShort: map[string]int{
			StyleRelaxed:     4,
			StyleModerate:    3,
			StyleAccelerated: 2,
		},
		CategoryLimitLong: map[string]int{
			StyleRelaxed:     6,
			StyleModerate:    5,
			StyleAccelerated: 4,
		},
		ShortTripBonus: 2,
	}
}

// PlacesPerDay is the slot target per day for a travel style.
func PlacesPerDay(style string) int {
	switch style {
	case StyleModerate:
		return 4
	case StyleAccelerated:
		return 6
	default:
		return 2
	}
}

type PoolServiceInterface interface {
	// BuildPool selects additional candidates for a trip: everything the
	// itinerary will schedule beyond the traveler's pinned places.
	BuildPool(ctx context.Context, req PoolRequest) ([]SchedulePlace, error)
}

type PoolRequest struct {
	City      string
	Country   string
	Days      int
	Interests []string
	Budget    string
	Style     string
	MustVisit []SchedulePlace
}

type poolService struct {
	placeRepo repositories.PlaceRepository
	cfg       PoolConfig
}

func NewPoolService(placeRepo repositories.PlaceRepository) PoolServiceInterface {
	return &poolService{placeRepo: placeRepo, cfg: DefaultPoolConfig()}
}

func (s *poolService) BuildPool(ctx context.Context, req PoolRequest) ([]SchedulePlace, error) {
	needed := req.Days*PlacesPerDay(req.Style) - len(req.MustVisit)
	if needed <= 0 {
		return nil, nil
	}

	minNeeded := req.Days * 2
	raw, err := s.fetchWidened(ctx, req.City, req.Country, minNeeded)
	if err != nil {
		return nil, err
	}

	filtered := s.filter(raw, req)

	pool := sizePool(filtered, needed, req.Days)

	out := make([]SchedulePlace, 0, len(pool))
	for _, p := range pool {
		out = append(out, NewCandidate(p))
	}
	return out, nil
}

// fetchWidened walks the geography ladder: exact city-name variants, then
// partial city match, then country, then a fixed list of common countries.
// Each rung only runs while the pool is still under minNeeded.
func (s *poolService) fetchWidened(ctx context.Context, city, country string, minNeeded int) ([]db_models.Place, error) {
	seen := make(map[string]struct{})
	var all []db_models.Place

	merge := func(places []db_models.Place) {
		for _, p := range places {
			if _, dup := seen[p.PlaceID]; dup {
				continue
			}
			seen[p.PlaceID] = struct{}{}
			all = append(all, p)
		}
	}

	for _, variant := range cityNameVariations(city) {
		places, err := s.placeRepo.FindByCity(ctx, variant)
		if err != nil {
			return nil, err
		}
		merge(places)
	}

	if len(all) < minNeeded {
		for _, variant := range cityNameVariations(city) {
			places, err := s.placeRepo.FindByCityPartial(ctx, variant, 100)
			if err != nil {
				return nil, err
			}
			merge(places)
			if len(all) >= minNeeded {
				break
			}
		}
	}

	if len(all) < minNeeded {
		countryName := country
		if countryName == "" {
			for _, p := range all {
				if p.Country != "" {
					countryName = p.Country
					break
				}
			}
		}
		if countryName != "" {
			places, err := s.placeRepo.FindByCountry(ctx, countryName, 100)
			if err != nil {
				return nil, err
			}
			merge(places)
		}
	}

	if len(all) < minNeeded {
		for _, fallback := range commonCountries {
			places, err := s.placeRepo.FindByCountry(ctx, fallback, 50)
			if err != nil {
				return nil, err
			}
			merge(places)
			if len(all) >= minNeeded {
				break
			}
		}
	}

	return all, nil
}

func cityNameVariations(city string) []string {
	variants := []string{city}
	if strings.Contains(city, " ") {
		fields := strings.Fields(city)
		variants = append(variants,
			strings.ReplaceAll(city, " ", ""),
			fields[0],
			fields[len(fields)-1],
		)
	}

	seen := make(map[string]struct{}, len(variants))
	out := variants[:0]
	for _, v := range variants {
		key := strings.ToLower(v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}

func (s *poolService) filter(places []db_models.Place, req PoolRequest) []db_models.Place {
	var filtered []db_models.Place
	categoryCounts := make(map[string]int)

	for _, place := range places {
		if matchesMustVisit(place.Name, req.MustVisit) {
			continue
		}
		if !matchesInterests(place, req.Interests) {
			continue
		}
		if !budgetAllows(place.Price, req.Budget) {
			continue
		}
		if isBlacklisted(place) {
			continue
		}

		categoryKey := strings.ToLower(place.EffectiveCategory())
		if categoryKey != "" {
			limit := s.categoryLimit(req.Style, req.Days)
			if req.Days <= 3 && len(filtered) < req.Days*2 {
				limit += s.cfg.ShortTripBonus
			}
			if categoryCounts[categoryKey] >= limit {
				continue
			}
			categoryCounts[categoryKey]++
		}

		filtered = append(filtered, place)
	}

	if len(filtered) == 0 && len(places) > 0 {
		log.Printf("candidate pool for %q emptied by filters, %d raw places dropped", req.City, len(places))
	}
	return filtered
}

func (s *poolService) categoryLimit(style string, days int) int {
	short, ok := s.cfg.CategoryLimitShort[style]
	if !ok {
		short = s.cfg.CategoryLimitShort[StyleRelaxed]
	}
	long, ok := s.cfg.CategoryLimitLong[style]
	if !ok {
		long = s.cfg.CategoryLimitLong[StyleRelaxed]
	}

	threshold := 3
	if style == StyleModerate {
		threshold = 5
	}
	if days <= threshold {
		return short
	}
	return long
}

func matchesMustVisit(name string, mustVisit []SchedulePlace) bool {
	for _, mv := range mustVisit {
		if placeNamesSimilar(mv.Name(), name) {
			return true
		}
	}
	return false
}

// matchesInterests checks both categories and the name against each declared
// interest, in both containment directions. No interests means everything
// matches.
func matchesInterests(place db_models.Place, interests []string) bool {
	if len(interests) == 0 {
		return true
	}
	category := strings.ToLower(place.Category)
	wayfare := strings.ToLower(place.WayfareCategory)
	name := strings.ToLower(place.Name)
	for _, interest := range interests {
		in := strings.ToLower(interest)
		if in == "" {
			continue
		}
		if strings.Contains(category, in) || strings.Contains(wayfare, in) ||
			strings.Contains(name, in) {
			return true
		}
		if (category != "" && strings.Contains(in, category)) ||
			(wayfare != "" && strings.Contains(in, wayfare)) ||
			strings.Contains(in, name) {
			return true
		}
	}
	return false
}

func budgetAllows(price, budget string) bool {
	if strings.TrimSpace(price) == "" {
		return true
	}
	value := utils.ParsePrice(price)
	switch budget {
	case "low":
		return value < 20
	case "medium":
		return value < 50
	default:
		return true
	}
}

func isBlacklisted(place db_models.Place) bool {
	name := strings.ToLower(place.Name)
	category := strings.ToLower(place.WayfareCategory)
	for _, term := range serviceBlacklist {
		if strings.Contains(name, term) || strings.Contains(category, term) {
			return true
		}
	}
	return false
}

// sizePool cuts or cycles the filtered list to the slot count, then pads by
// duplicating the best candidate so no day is left without one.
func sizePool(filtered []db_models.Place, needed, days int) []db_models.Place {
	if len(filtered) == 0 {
		return nil
	}

	var pool []db_models.Place
	if needed > len(filtered) {
		pool = make([]db_models.Place, 0, needed)
		for len(pool) < needed {
			remaining := needed - len(pool)
			if remaining >= len(filtered) {
				pool = append(pool, filtered...)
			} else {
				pool = append(pool, filtered[:remaining]...)
			}
		}
	} else {
		pool = append(pool, filtered[:needed]...)
	}

	for len(pool) > 0 && len(pool) < days {
		pool = append(pool, pool[0])
	}
	return pool
}
