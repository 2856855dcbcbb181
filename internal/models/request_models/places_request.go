package request_models

type SearchPlacesRequest struct {
	City      string   `json:"city" binding:"required"`
	Category  string   `json:"category,omitempty"`
	Name      string   `json:"name,omitempty"`
	Country   string   `json:"country,omitempty"`
	Budget    string   `json:"budget,omitempty" binding:"omitempty,oneof=low medium high"`
	MinRating *float64 `json:"min_rating,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
	Limit     int      `json:"limit,omitempty"`
}

type AutocompletePlacesRequest struct {
	City       string `json:"city" binding:"required"`
	SearchTerm string `json:"search_term" binding:"required"`
	Limit      int    `json:"limit,omitempty"`
}
