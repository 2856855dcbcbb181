package response_models

type ActivityResponse struct {
	PlaceID   string `json:"place_id"`
	PlaceName string `json:"place_name"`
	Time      string `json:"time"`
	Notes     string `json:"notes,omitempty"`
}

type DayResponse struct {
	Date       string             `json:"date"`
	Activities []ActivityResponse `json:"activities"`
}

type MustVisitResponse struct {
	PlaceID   string `json:"place_id"`
	PlaceName string `json:"place_name"`
	Notes     string `json:"notes,omitempty"`
	Resolved  bool   `json:"resolved"`
}

type RouteResponse struct {
	RouteID   string `json:"route_id"`
	Title     string `json:"title"`
	City      string `json:"city"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Season    string `json:"season,omitempty"`
}

type RouteDetailResponse struct {
	RouteID     string              `json:"route_id"`
	Title       string              `json:"title"`
	City        string              `json:"city"`
	Country     string              `json:"country,omitempty"`
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`
	Budget      string              `json:"budget"`
	TravelStyle string              `json:"travel_style"`
	Category    string              `json:"category,omitempty"`
	Season      string              `json:"season,omitempty"`
	MustVisit   []MustVisitResponse `json:"must_visit"`
	Days        []DayResponse       `json:"days"`
}

type CreateRouteResponse struct {
	RouteID string `json:"route_id"`
}
