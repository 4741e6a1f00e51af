package response_models

type TranscriptionResponse struct {
	Text string `json:"text"`
}
