package speech_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"wayfarer/internal/config"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

var Module = fx.Provide(
	ProvideSpeechRecognizer,
	ProvideSpeechService)

// ProvideSpeechRecognizer wires the Baidu client when the credential triple is
// configured. Without it transcription stays disabled; the rest of the app is
// unaffected.
func ProvideSpeechRecognizer(cfg *config.Config) utils.SpeechRecognizer {
	if !cfg.Speech.Enabled() {
		logrus.Warn("Speech credentials not configured; voice transcription is disabled")
		return nil
	}
	return utils.NewBaiduSpeechClient(cfg.Speech.AppID, cfg.Speech.APIKey, cfg.Speech.SecretKey)
}

func ProvideSpeechService(recognizer utils.SpeechRecognizer) services.SpeechServiceInterface {
	return services.NewSpeechService(recognizer)
}
