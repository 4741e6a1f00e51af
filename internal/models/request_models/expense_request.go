package request_models

type AddExpenseRequest struct {
	Item        string  `json:"item" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	ItineraryID *uint   `json:"itinerary_id"`
}

type DeleteExpenseRequest struct {
	ExpenseID uint `json:"expense_id" binding:"required"`
}
