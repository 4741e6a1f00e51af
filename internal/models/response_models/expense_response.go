package response_models

type ExpenseResponse struct {
	ID          uint    `json:"id"`
	Item        string  `json:"item"`
	Amount      float64 `json:"amount"`
	ItineraryID *uint   `json:"itinerary_id,omitempty"`
	CreatedAt   int64   `json:"created_at"`
}

type TotalBudgetResponse struct {
	Total string `json:"total"`
}
