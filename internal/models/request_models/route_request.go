package request_models

type MustVisitRequest struct {
	PlaceID   string `json:"place_id,omitempty"`
	PlaceName string `json:"place_name" binding:"required"`
	Notes     string `json:"notes,omitempty"`
	Source    string `json:"source,omitempty"`
}

// Profile is the traveler's home-style profile driving candidate selection
// and pacing.
type Profile struct {
	Interests   []string `json:"interests"`
	Budget      string   `json:"budget" binding:"omitempty,oneof=low medium high"`
	TravelStyle string   `json:"travel_style" binding:"omitempty,oneof=relaxed moderate accelerated"`
}

type CreateRouteRequest struct {
	UserID    string             `json:"user_id"`
	Title     string             `json:"title" binding:"required"`
	City      string             `json:"city" binding:"required"`
	StartDate string             `json:"start_date" binding:"required"` // "2006-01-02"
	EndDate   string             `json:"end_date" binding:"required"`   // "2006-01-02", inclusive
	Category  string             `json:"category,omitempty"`
	Season    string             `json:"season,omitempty"` // derived from start month when empty
	Profile   Profile            `json:"profile"`
	MustVisit []MustVisitRequest `json:"must_visit"`
}
