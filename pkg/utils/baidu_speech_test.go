package utils

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBaiduClient(tokenURL, asrURL string) *BaiduSpeechClient {
	c := NewBaiduSpeechClient("app-1", "key", "secret")
	c.tokenURL = tokenURL
	c.asrURL = asrURL
	return c
}

func TestBaiduRecognize(t *testing.T) {
	tokenCalls := 0
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		assert.Equal(t, "client_credentials", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "key", r.URL.Query().Get("client_id"))
		assert.Equal(t, "secret", r.URL.Query().Get("client_secret"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "tok-123",
			"expires_in":   2592000,
		})
	}))
	defer tokenServer.Close()

	speech := []byte("fake wav bytes")
	asrServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		assert.Equal(t, "wav", payload["format"])
		assert.EqualValues(t, 16000, payload["rate"])
		assert.EqualValues(t, 1, payload["channel"])
		assert.Equal(t, "tok-123", payload["token"])
		assert.EqualValues(t, 1537, payload["dev_pid"])
		assert.Equal(t, base64.StdEncoding.EncodeToString(speech), payload["speech"])
		assert.EqualValues(t, len(speech), payload["len"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"err_no": 0,
			"result": []string{"去云南玩一周"},
		})
	}))
	defer asrServer.Close()

	client := newTestBaiduClient(tokenServer.URL, asrServer.URL)

	result, err := client.Recognize(context.Background(), speech, 16000)
	require.NoError(t, err)
	assert.Equal(t, []string{"去云南玩一周"}, result)

	// second call reuses the cached token
	_, err = client.Recognize(context.Background(), speech, 16000)
	require.NoError(t, err)
	assert.Equal(t, 1, tokenCalls)
}

func TestBaiduRecognizeProviderError(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"access_token": "tok", "expires_in": 3600})
	}))
	defer tokenServer.Close()

	asrServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"err_no":  3301,
			"err_msg": "speech quality error",
		})
	}))
	defer asrServer.Close()

	client := newTestBaiduClient(tokenServer.URL, asrServer.URL)

	result, err := client.Recognize(context.Background(), []byte("bytes"), 16000)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3301")
}

func TestBaiduTokenError(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":             "invalid_client",
			"error_description": "unknown client id",
		})
	}))
	defer tokenServer.Close()

	client := newTestBaiduClient(tokenServer.URL, "http://unused.invalid")

	_, err := client.Recognize(context.Background(), []byte("bytes"), 16000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_client")
}
