package utils

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")

	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrExpenseNotFound   = errors.New("expense not found")

	ErrEmptyItem     = errors.New("expense item is required")
	ErrInvalidAmount = errors.New("expense amount must be positive")

	ErrPlannerUnavailable = errors.New("planner service unavailable")
	ErrMalformedPlan      = errors.New("planner returned a malformed plan")

	ErrSpeechDisabled    = errors.New("speech transcription is not configured")
	ErrBadAudio          = errors.New("could not decode audio clip")
	ErrRecognitionFailed = errors.New("speech recognition failed")
	ErrResultTooShort    = errors.New("recognition result too short")
)
