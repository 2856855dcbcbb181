package response_models

type CityResponse struct {
	CityID      string               `json:"city_id"`
	Name        string               `json:"name"`
	Country     string               `json:"country,omitempty"`
	Coordinates *CoordinatesResponse `json:"coordinates,omitempty"`
}
