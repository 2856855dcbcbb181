package services

import (
	"wayfare/internal/models/db_models"
)

// SchedulePlace is the unit the pool, distributor and scheduler operate on.
// It is either a catalog place or a traveler-pinned must-visit entry; the
// accessors hide which one it is so downstream stages never branch on origin.
type SchedulePlace struct {
	place     *db_models.Place
	mustVisit *db_models.MustVisitItem
}

func NewCandidate(p db_models.Place) SchedulePlace {
	cp := p
	return SchedulePlace{place: &cp}
}

func NewMustVisit(item db_models.MustVisitItem) SchedulePlace {
	ci := item
	return SchedulePlace{mustVisit: &ci}
}

// NewResolvedMustVisit pins a catalog place that was matched against a
// traveler's must-visit request. Catalog data wins for every field the
// catalog has; the request contributes only its notes and provenance tag.
func NewResolvedMustVisit(p db_models.Place, notes, source string) SchedulePlace {
	cp := p
	if source == "" {
		source = "database"
	}
	item := db_models.MustVisitItem{
		PlaceID:      cp.PlaceID,
		PlaceName:    cp.Name,
		Notes:        notes,
		Source:       source,
		Address:      cp.Address,
		OpeningHours: cp.OpeningHours,
	}
	if lat, lng, ok := cp.Coordinates(); ok {
		item.Coordinates = &db_models.Coordinates{Lat: lat, Lng: lng}
	}
	return SchedulePlace{place: &cp, mustVisit: &item}
}

func (s SchedulePlace) IsMustVisit() bool {
	return s.mustVisit != nil
}

func (s SchedulePlace) ID() string {
	if s.place != nil {
		return s.place.PlaceID
	}
	return s.mustVisit.PlaceID
}

func (s SchedulePlace) Name() string {
	if s.place != nil {
		return s.place.Name
	}
	return s.mustVisit.PlaceName
}

func (s SchedulePlace) Notes() string {
	if s.mustVisit != nil {
		return s.mustVisit.Notes
	}
	return ""
}

// Category reports the curated category when one exists, falling back to
// the raw source category. Unresolved must-visits have no category.
func (s SchedulePlace) Category() string {
	if s.place != nil {
		return s.place.EffectiveCategory()
	}
	return ""
}

func (s SchedulePlace) Price() string {
	if s.place != nil {
		return s.place.Price
	}
	return ""
}

func (s SchedulePlace) Rating() float64 {
	if s.place != nil {
		return s.place.Rating
	}
	return 0
}

func (s SchedulePlace) Popularity() float64 {
	if s.place != nil {
		return s.place.Popularity
	}
	return 0
}

func (s SchedulePlace) Coordinates() (lat, lng float64, ok bool) {
	if s.place != nil {
		if lat, lng, ok = s.place.Coordinates(); ok {
			return lat, lng, true
		}
	}
	if s.mustVisit != nil && s.mustVisit.Coordinates != nil {
		return s.mustVisit.Coordinates.Lat, s.mustVisit.Coordinates.Lng, true
	}
	return 0, 0, false
}

func (s SchedulePlace) OpeningHours() map[string]string {
	if s.place != nil && len(s.place.OpeningHours) > 0 {
		return s.place.OpeningHours
	}
	if s.mustVisit != nil {
		return s.mustVisit.OpeningHours
	}
	return nil
}

func (s SchedulePlace) DurationMinutes() (int, bool) {
	if s.place != nil && s.place.DurationMinutes != nil {
		return *s.place.DurationMinutes, true
	}
	return 0, false
}
