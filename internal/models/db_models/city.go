package db_models

import "github.com/google/uuid"

type City struct {
	BaseModel
	Name      string `gorm:"index"`
	Country   string
	CountryID uuid.UUID
	Latitude  *float64
	Longitude *float64
	Active    bool `gorm:"default:true"`
}

func (c *City) Coordinates() (lat, lng float64, ok bool) {
	if c.Latitude == nil || c.Longitude == nil {
		return 0, 0, false
	}
	return *c.Latitude, *c.Longitude, true
}
