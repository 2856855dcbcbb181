package db_models

import (
	"github.com/lib/pq"
)

// Place is a point of interest eligible for scheduling. Price, rating and
// popularity come from scraped sources, so price stays a free-form string
// and popularity is an open-ended rank where lower means more popular.
type Place struct {
	BaseModel
	PlaceID         string `gorm:"uniqueIndex"`
	Name            string
	City            string `gorm:"index"`
	Country         string `gorm:"index"`
	Category        string
	WayfareCategory string
	Price           string
	Rating          float64
	Popularity      float64

	// Both set or both nil; a half-populated pair reads as no coordinates.
	Latitude  *float64
	Longitude *float64

	// Weekday name -> "9:00 AM - 5:00 PM"
	OpeningHours map[string]string `gorm:"serializer:json"`

	DurationMinutes *int
	Address         string
	ImageURL        string
	Source          string
	Tags            pq.StringArray `gorm:"type:text[]"`
}

// Coordinates returns the coordinate pair when both axes are present.
func (p *Place) Coordinates() (lat, lng float64, ok bool) {
	if p.Latitude == nil || p.Longitude == nil {
		return 0, 0, false
	}
	return *p.Latitude, *p.Longitude, true
}

// EffectiveCategory prefers the normalized wayfare category over the raw
// scraped one.
func (p *Place) EffectiveCategory() string {
	if p.WayfareCategory != "" {
		return p.WayfareCategory
	}
	return p.Category
}
