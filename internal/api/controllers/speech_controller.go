package controllers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/response_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type SpeechController struct {
	speechService services.SpeechServiceInterface
}

func NewSpeechController(speechService services.SpeechServiceInterface) *SpeechController {
	return &SpeechController{
		speechService: speechService,
	}
}

// Transcribe godoc
// @Summary Transcribe a voice recording
// @Description Convert an uploaded audio clip (wav or mp3) into text
// @Tags Speech
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio clip"
// @Success 200 {object} response_models.TranscriptionResponse
// @Failure 422 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Security BearerAuth
// @Router /speech/transcribe [post]
func (s *SpeechController) Transcribe(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Audio file is required")
		return
	}
	defer file.Close()

	clip, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read audio file")
		return
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")

	text, err := s.speechService.Transcribe(c.Request.Context(), clip, format)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.TranscriptionResponse{Text: text}, "Transcription successful")
}
