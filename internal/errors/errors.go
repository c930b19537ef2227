package errors

import (
	"errors"
	"fmt"
)

// Error types for common failure scenarios.
var (
	ErrDuplicateTrack   = errors.New("track already exists in library")
	ErrMissingTrack     = errors.New("track does not exist in library")
	ErrUnknownTrack     = errors.New("track does not exist in network")
	ErrNoSuchConnection = errors.New("connection does not exist")
	ErrNoPath           = errors.New("no path between tracks")
	ErrMalformedHistory = errors.New("malformed history playlist")
	ErrInvalidDocument  = errors.New("invalid network document")
)

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrMissingTrack), errors.Is(err, ErrUnknownTrack):
		return "Run 'mixmem track list' to see known tracks, or 'mixmem track add' to add one"
	case errors.Is(err, ErrDuplicateTrack):
		return "The track is already in the library; no action needed"
	case errors.Is(err, ErrNoSuchConnection):
		return "Run 'mixmem export' to inspect the current connections"
	case errors.Is(err, ErrMalformedHistory):
		return "History files must be named like 'HISTORY 2023-07-28.m3u8' or 'HISTORY 2023-07-28 (2).m3u8'"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	if suggestion := GetSuggestion(err); suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
