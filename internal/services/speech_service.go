package services

import (
	"context"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"wayfarer/pkg/audio"
	"wayfarer/pkg/utils"
)

const (
	asrSampleRate      = 16000
	targetLoudnessDBFS = -20.0
	minResultRunes     = 3
)

type SpeechServiceInterface interface {
	Transcribe(ctx context.Context, clip []byte, format string) (string, error)
}

// SpeechService normalizes a recorded clip and hands it to the recognizer:
// decode, resample to 16kHz, downmix to mono, uniform gain to -20 dBFS RMS,
// re-encode as 16-bit PCM WAV. Everything stays in memory; there are no
// temporary files to clean up on any path.
type SpeechService struct {
	// nil when the credential triple is not configured
	recognizer utils.SpeechRecognizer
}

func NewSpeechService(recognizer utils.SpeechRecognizer) SpeechServiceInterface {
	return &SpeechService{recognizer: recognizer}
}

func (s *SpeechService) Transcribe(ctx context.Context, clip []byte, format string) (string, error) {
	if s.recognizer == nil {
		return "", utils.ErrSpeechDisabled
	}

	decoded, err := audio.Decode(clip, format)
	if err != nil {
		logrus.Warnf("Audio decode failed: %v", err)
		return "", utils.ErrBadAudio
	}

	decoded = decoded.Resample(asrSampleRate).Downmix()

	if level := decoded.RMSdBFS(); !math.IsInf(level, -1) {
		decoded.ApplyGain(targetLoudnessDBFS - level)
	}

	wav, err := decoded.EncodeWAV16()
	if err != nil {
		return "", fmt.Errorf("encode pcm: %w", err)
	}

	candidates, err := s.recognizer.Recognize(ctx, wav, asrSampleRate)
	if err != nil {
		logrus.Errorf("Recognition failed: %v", err)
		return "", utils.ErrRecognitionFailed
	}
	if len(candidates) == 0 {
		return "", utils.ErrRecognitionFailed
	}

	if utf8.RuneCountInString(candidates[0]) < minResultRunes {
		return "", utils.ErrResultTooShort
	}
	return candidates[0], nil
}
