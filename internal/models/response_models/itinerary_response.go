package response_models

// Coordinate is a named map point as produced by the planner.
type Coordinate struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// TravelPlan is the decoded planner output. Both fields are optional on the
// wire; decoding defaults them rather than failing.
type TravelPlan struct {
	ItineraryText string       `json:"itinerary_text"`
	Coordinates   []Coordinate `json:"coordinates"`
}

type ItineraryResponse struct {
	ID            uint         `json:"id"`
	ItineraryText string       `json:"itinerary_text,omitempty"`
	Coordinates   []Coordinate `json:"coordinates,omitempty"`
	// Raw carries the stored blob verbatim when it does not parse as a plan.
	Raw       string `json:"raw,omitempty"`
	BudgetLog string `json:"budget_log,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

type GeneratedPlanResponse struct {
	ItineraryID uint       `json:"itinerary_id"`
	Plan        TravelPlan `json:"plan"`
}
