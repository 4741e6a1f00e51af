package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// SpeechRecognizer is the narrow surface the transcription service needs from
// an ASR provider: PCM WAV in, candidate transcriptions out. A non-zero
// provider error code surfaces as an error.
type SpeechRecognizer interface {
	Recognize(ctx context.Context, wav []byte, sampleRate int) ([]string, error)
}

const (
	baiduTokenURL = "https://aip.baidubce.com/oauth/2.0/token"
	baiduASRURL   = "https://vop.baidu.com/server_api"

	// Mandarin short-speech model
	baiduDevPID = 1537
)

// BaiduSpeechClient implements SpeechRecognizer against Baidu's short-speech
// REST API: an oauth token request followed by a JSON recognize call.
type BaiduSpeechClient struct {
	appID     string
	apiKey    string
	secretKey string

	tokenURL   string
	asrURL     string
	httpClient *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewBaiduSpeechClient(appID, apiKey, secretKey string) *BaiduSpeechClient {
	return &BaiduSpeechClient{
		appID:      appID,
		apiKey:     apiKey,
		secretKey:  secretKey,
		tokenURL:   baiduTokenURL,
		asrURL:     baiduASRURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *BaiduSpeechClient) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	params := url.Values{}
	params.Set("grant_type", "client_credentials")
	params.Set("client_id", c.apiKey)
	params.Set("client_secret", c.secretKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("baidu token request: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
		Error       string `json:"error"`
		ErrorDesc   string `json:"error_description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("baidu token decode: %w", err)
	}
	if body.Error != "" || body.AccessToken == "" {
		return "", fmt.Errorf("baidu token error: %s %s", body.Error, body.ErrorDesc)
	}

	c.token = body.AccessToken
	// refresh well before the server-side expiry
	c.tokenExpiry = time.Now().Add(time.Duration(body.ExpiresIn) * time.Second / 2)
	return c.token, nil
}

func (c *BaiduSpeechClient) Recognize(ctx context.Context, wav []byte, sampleRate int) ([]string, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"format":  "wav",
		"rate":    sampleRate,
		"channel": 1,
		"cuid":    "wayfarer-" + c.appID,
		"token":   token,
		"dev_pid": baiduDevPID,
		"speech":  base64.StdEncoding.EncodeToString(wav),
		"len":     len(wav),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.asrURL, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("baidu asr request: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		ErrNo  int      `json:"err_no"`
		ErrMsg string   `json:"err_msg"`
		Result []string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("baidu asr decode: %w", err)
	}
	if body.ErrNo != 0 {
		return nil, fmt.Errorf("baidu asr error %d: %s", body.ErrNo, body.ErrMsg)
	}
	return body.Result, nil
}
