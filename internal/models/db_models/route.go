package db_models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MustVisitItem is the resolved form of a must-include request. Coordinates,
// address and opening hours are populated only when a repository or geocoder
// match succeeded; PlaceID is always set, falling back to a generated opaque
// id when nothing matched.
type MustVisitItem struct {
	PlaceID      string            `json:"place_id"`
	PlaceName    string            `json:"place_name"`
	Notes        string            `json:"notes,omitempty"`
	Source       string            `json:"source,omitempty"`
	Coordinates  *Coordinates      `json:"coordinates,omitempty"`
	Address      string            `json:"address,omitempty"`
	OpeningHours map[string]string `json:"opening_hours,omitempty"`
}

// Activity is one schedule entry. The kind is carried in PlaceID by
// convention: "travel_NNN" for travel legs, "break_lunch"/"break_dinner"/
// "break_tea" for meal breaks, anything else is a visit.
type Activity struct {
	PlaceID   string `json:"place_id"`
	PlaceName string `json:"place_name"`
	Time      string `json:"time"` // "HH:MM", local to the trip day
	Notes     string `json:"notes,omitempty"`
}

type Day struct {
	Date       string     `json:"date"` // "2006-01-02"
	Activities []Activity `json:"activities"`
}

// Route is a generated itinerary: the trip request echoed back plus one Day
// per calendar date in the window.
type Route struct {
	BaseModel
	UserID      string `gorm:"index"`
	Title       string
	City        string
	CityID      string
	Country     string
	CountryID   string
	StartDate   string // "2006-01-02", inclusive
	EndDate     string // "2006-01-02", inclusive
	Budget      string
	TravelStyle string
	Category    string
	Season      string

	MustVisit datatypes.JSON `gorm:"type:jsonb"`
	Days      datatypes.JSON `gorm:"type:jsonb"`
}

func (r *Route) SetMustVisit(items []MustVisitItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	r.MustVisit = raw
	return nil
}

func (r *Route) GetMustVisit() ([]MustVisitItem, error) {
	var items []MustVisitItem
	if len(r.MustVisit) == 0 {
		return items, nil
	}
	err := json.Unmarshal(r.MustVisit, &items)
	return items, err
}

func (r *Route) SetDays(days []Day) error {
	raw, err := json.Marshal(days)
	if err != nil {
		return err
	}
	r.Days = raw
	return nil
}

func (r *Route) GetDays() ([]Day, error) {
	var days []Day
	if len(r.Days) == 0 {
		return days, nil
	}
	err := json.Unmarshal(r.Days, &days)
	return days, err
}
