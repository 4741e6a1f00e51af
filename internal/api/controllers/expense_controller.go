package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type ExpenseController struct {
	expenseService services.ExpenseServiceInterface
}

func NewExpenseController(expenseService services.ExpenseServiceInterface) *ExpenseController {
	return &ExpenseController{
		expenseService: expenseService,
	}
}

// Add godoc
// @Summary Add an expense
// @Description Record an expense, optionally tied to an itinerary; with no itinerary given the session's selected trip applies
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body request_models.AddExpenseRequest true "Expense payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses/add [post]
func (e *ExpenseController) Add(c *gin.Context) {
	var req request_models.AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Item and amount are required")
		return
	}

	err := e.expenseService.Add(c.Request.Context(), c.GetUint("user_id"), req.Item, req.Amount, req.ItineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Expense recorded")
}

// List godoc
// @Summary List expenses
// @Description Fetch the user's expenses newest first, optionally filtered by itinerary
// @Tags Expenses
// @Produce json
// @Param itinerary_id query int false "Itinerary filter"
// @Success 200 {array} response_models.ExpenseResponse
// @Security BearerAuth
// @Router /expenses/list [get]
func (e *ExpenseController) List(c *gin.Context) {
	var itineraryID *uint
	if raw := c.Query("itinerary_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary id")
			return
		}
		parsed := uint(id)
		itineraryID = &parsed
	}

	expenses, err := e.expenseService.List(c.Request.Context(), c.GetUint("user_id"), itineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expenses, "Expenses fetched successfully")
}

// Total godoc
// @Summary Get total spending
// @Description Sum of all the user's expenses, formatted with two fractional digits
// @Tags Expenses
// @Produce json
// @Success 200 {object} response_models.TotalBudgetResponse
// @Security BearerAuth
// @Router /expenses/total [get]
func (e *ExpenseController) Total(c *gin.Context) {
	total, err := e.expenseService.Total(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.TotalBudgetResponse{Total: total}, "Total fetched successfully")
}

// Delete godoc
// @Summary Delete an expense
// @Description Remove one of the authenticated user's expenses
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body request_models.DeleteExpenseRequest true "Expense ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses/delete [post]
func (e *ExpenseController) Delete(c *gin.Context) {
	var req request_models.DeleteExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ExpenseID is required")
		return
	}

	if err := e.expenseService.Delete(c.Request.Context(), c.GetUint("user_id"), req.ExpenseID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Expense deleted")
}
