package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/utils"
)

// plannerSystemPrompt instructs the model to answer with a single JSON object
// of the plan shape. The model is not schema-enforced; decoding stays tolerant.
const plannerSystemPrompt = `你是一个专业的旅行规划助手。请根据用户的需求生成旅行计划。
必须返回纯 JSON 格式，不要包含任何其他文字。
JSON 格式如下：
{
    "itinerary_text": "详细的旅行计划文本，包括每天的行程安排、交通方式、住宿建议等，以及详细的费用预算分析",
    "coordinates": [
        {"name": "地点名称", "lat": 纬度, "lon": 经度}
    ]
}
coordinates 数组包含行程中主要地点的经纬度坐标，用于在地图上展示。`

type PlannerServiceInterface interface {
	GeneratePlan(ctx context.Context, userID uint, userRequest string) (*response_models.GeneratedPlanResponse, error)
}

type PlannerService struct {
	chat          utils.ChatClient
	itineraryRepo repositories.ItineraryRepository
}

func NewPlannerService(chat utils.ChatClient, itineraryRepo repositories.ItineraryRepository) PlannerServiceInterface {
	return &PlannerService{
		chat:          chat,
		itineraryRepo: itineraryRepo,
	}
}

// GeneratePlan sends the user's request to the chat endpoint, decodes the
// reply and persists the plan for the user in one go.
func (p *PlannerService) GeneratePlan(ctx context.Context, userID uint, userRequest string) (*response_models.GeneratedPlanResponse, error) {
	raw, err := p.chat.Complete(ctx, plannerSystemPrompt, userRequest)
	if err != nil {
		logrus.Errorf("Chat completion failed: %v", err)
		return nil, utils.ErrPlannerUnavailable
	}

	plan, err := DecodePlan(raw)
	if err != nil {
		logrus.Warnf("Planner reply did not decode: %v", err)
		return nil, utils.ErrMalformedPlan
	}

	content, err := json.Marshal(plan)
	if err != nil {
		return nil, utils.ErrMalformedPlan
	}

	itinerary := &db_models.Itinerary{
		UserID:  userID,
		Content: datatypes.JSON(content),
	}
	if err := p.itineraryRepo.Insert(ctx, itinerary); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.GeneratedPlanResponse{
		ItineraryID: itinerary.ID,
		Plan:        *plan,
	}, nil
}

// StripCodeFence removes a leading/trailing triple-backtick wrapper, with or
// without a json language tag.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[3:]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-3]
	}
	return strings.TrimSpace(s)
}

// DecodePlan parses a model reply into a TravelPlan. Missing fields default
// (empty text, no coordinates); anything that is not a JSON object fails.
func DecodePlan(raw string) (*response_models.TravelPlan, error) {
	cleaned := StripCodeFence(raw)

	var plan response_models.TravelPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	if plan.Coordinates == nil {
		plan.Coordinates = []response_models.Coordinate{}
	}
	return &plan, nil
}
