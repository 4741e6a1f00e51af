package config

type Config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"travel_planning.db"`

	LLM    LLM
	Speech Speech
}

type LLM struct {
	Provider string `env:"LLM_PROVIDER" envDefault:"openai"`
	APIKey   string `env:"API_KEY"`
	BaseURL  string `env:"API_BASE_URL"`
	Model    string `env:"LLM_MODEL" envDefault:"qwen-plus"`
}

// Speech holds the Baidu short-speech credential triple. Transcription is an
// optional capability: when any of the three is missing it stays disabled.
type Speech struct {
	AppID     string `env:"BAIDU_APP_ID"`
	APIKey    string `env:"BAIDU_API_KEY"`
	SecretKey string `env:"BAIDU_SECRET_KEY"`
}

func (s Speech) Enabled() bool {
	return s.AppID != "" && s.APIKey != "" && s.SecretKey != ""
}
