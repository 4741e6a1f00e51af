package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDFrom(c *gin.Context) string {
	if traceID, ok := c.Get("trace_id"); ok {
		if s, ok := traceID.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

// HandleServiceError maps domain sentinel errors to HTTP responses so
// controllers never branch on raw errors.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUsernameTaken):
		RespondError(c, http.StatusConflict, "Username already exists")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, ErrItineraryNotFound):
		RespondError(c, http.StatusNotFound, "Itinerary not found")
	case errors.Is(err, ErrExpenseNotFound):
		RespondError(c, http.StatusNotFound, "Expense not found")
	case errors.Is(err, ErrEmptyItem):
		RespondError(c, http.StatusBadRequest, "Expense item is required")
	case errors.Is(err, ErrInvalidAmount):
		RespondError(c, http.StatusBadRequest, "Expense amount must be positive")
	case errors.Is(err, ErrBadAudio):
		RespondError(c, http.StatusBadRequest, "Could not decode audio clip")
	case errors.Is(err, ErrPlannerUnavailable):
		RespondError(c, http.StatusBadGateway, "Itinerary generation is unavailable")
	case errors.Is(err, ErrMalformedPlan):
		RespondError(c, http.StatusBadGateway, "Itinerary generation returned an unusable plan")
	case errors.Is(err, ErrRecognitionFailed):
		RespondError(c, http.StatusBadGateway, "Speech recognition failed")
	case errors.Is(err, ErrResultTooShort):
		RespondError(c, http.StatusUnprocessableEntity, "Recognition result too short")
	case errors.Is(err, ErrSpeechDisabled):
		RespondError(c, http.StatusServiceUnavailable, "Speech transcription is not configured")
	case errors.Is(err, ErrDatabaseError):
		logrus.Errorf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logrus.Errorf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
