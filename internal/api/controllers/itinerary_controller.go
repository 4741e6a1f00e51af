package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// List godoc
// @Summary List itineraries
// @Description Fetch the authenticated user's itineraries in creation order
// @Tags Itineraries
// @Produce json
// @Success 200 {array} response_models.ItineraryResponse
// @Security BearerAuth
// @Router /itineraries/list [get]
func (i *ItineraryController) List(c *gin.Context) {
	itineraries, err := i.itineraryService.List(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// Latest godoc
// @Summary Get the latest itinerary
// @Description Fetch the most recently saved itinerary for the authenticated user
// @Tags Itineraries
// @Produce json
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/latest [get]
func (i *ItineraryController) Latest(c *gin.Context) {
	itinerary, err := i.itineraryService.Latest(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// AppendBudgetLog godoc
// @Summary Append to an itinerary's budget log
// @Description Concatenate text onto the itinerary's budget log, newline-separated
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.AppendBudgetLogRequest true "Itinerary ID and text"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/append-budget-log [post]
func (i *ItineraryController) AppendBudgetLog(c *gin.Context) {
	var req request_models.AppendBudgetLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ItineraryID and text are required")
		return
	}

	err := i.itineraryService.AppendBudgetLog(c.Request.Context(), c.GetUint("user_id"), req.ItineraryID, req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Budget log updated")
}

// Delete godoc
// @Summary Delete an itinerary
// @Description Remove one of the authenticated user's itineraries
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.DeleteItineraryRequest true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/delete [post]
func (i *ItineraryController) Delete(c *gin.Context) {
	var req request_models.DeleteItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ItineraryID is required")
		return
	}

	if err := i.itineraryService.Delete(c.Request.Context(), c.GetUint("user_id"), req.ItineraryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted")
}

// Select godoc
// @Summary Select the active itinerary
// @Description Mark an itinerary as the one new expenses are logged against
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.SelectItineraryRequest true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/select [post]
func (i *ItineraryController) Select(c *gin.Context) {
	var req request_models.SelectItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ItineraryID is required")
		return
	}

	if err := i.itineraryService.Select(c.Request.Context(), c.GetUint("user_id"), req.ItineraryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary selected")
}

// ClearSelection godoc
// @Summary Clear the active itinerary
// @Description Drop the session's itinerary selection
// @Tags Itineraries
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/clear-selection [post]
func (i *ItineraryController) ClearSelection(c *gin.Context) {
	i.itineraryService.ClearSelection(c.GetUint("user_id"))
	utils.RespondSuccess(c, nil, "Selection cleared")
}
