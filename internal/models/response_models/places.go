package response_models

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PlaceResponse struct {
	PlaceID         string               `json:"place_id"`
	Name            string               `json:"name"`
	City            string               `json:"city"`
	Country         string               `json:"country,omitempty"`
	Category        string               `json:"category,omitempty"`
	WayfareCategory string               `json:"wayfare_category,omitempty"`
	Price           string               `json:"price,omitempty"`
	Rating          float64              `json:"rating"`
	Popularity      float64              `json:"popularity"`
	Coordinates     *CoordinatesResponse `json:"coordinates,omitempty"`
	OpeningHours    map[string]string    `json:"opening_hours,omitempty"`
	DurationMinutes *int                 `json:"duration,omitempty"`
	Address         string               `json:"address,omitempty"`
	ImageURL        string               `json:"image_url,omitempty"`
}
