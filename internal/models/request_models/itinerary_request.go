package request_models

type GeneratePlanRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type AppendBudgetLogRequest struct {
	ItineraryID uint   `json:"itinerary_id" binding:"required"`
	Text        string `json:"text" binding:"required"`
}

type DeleteItineraryRequest struct {
	ItineraryID uint `json:"itinerary_id" binding:"required"`
}

type SelectItineraryRequest struct {
	ItineraryID uint `json:"itinerary_id" binding:"required"`
}
