package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

// Generate godoc
// @Summary Generate an itinerary
// @Description Turn a free-text travel request into a structured plan and save it
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.GeneratePlanRequest true "Travel request"
// @Success 200 {object} response_models.GeneratedPlanResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/generate [post]
func (p *PlannerController) Generate(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Prompt is required")
		return
	}

	plan, err := p.plannerService.GeneratePlan(c.Request.Context(), c.GetUint("user_id"), req.Prompt)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Itinerary generated and saved")
}
