package planner_fx

import (
	"fmt"
	"strings"

	"go.uber.org/fx"

	"wayfarer/internal/config"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

var Module = fx.Provide(
	ProvideChatClient,
	ProvidePlannerService)

// ProvideChatClient creates a chat-completion client based on configuration.
// The default is any OpenAI-compatible endpoint (Qwen/DashScope included);
// Gemini is available as an alternate provider.
func ProvideChatClient(cfg *config.Config) (utils.ChatClient, error) {
	switch strings.ToLower(cfg.LLM.Provider) {
	case "openai":
		return utils.NewOpenAIChatClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model), nil
	case "gemini":
		client, err := utils.NewGeminiChatClient(cfg.LLM.APIKey, cfg.LLM.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported chat provider: %s. Use 'openai' or 'gemini'", cfg.LLM.Provider)
	}
}

func ProvidePlannerService(
	chat utils.ChatClient,
	itineraryRepo repositories.ItineraryRepository,
) services.PlannerServiceInterface {
	return services.NewPlannerService(chat, itineraryRepo)
}
