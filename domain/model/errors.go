package model

import "errors"

// Sentinel errors forming the failure taxonomy. Handlers map these to HTTP
// statuses at the endpoint boundary; nothing in the pipeline retries.
var (
	// ErrInvalidURL marks a client input error (400), not a fetch failure.
	ErrInvalidURL = errors.New("Invalid YouTube URL")

	// ErrVideoNotFound is returned when the video provider yields zero items (404).
	ErrVideoNotFound = errors.New("video not found")

	// ErrTranscriptUnavailable replaces any transcript provider failure with a
	// single sanitized message so provider-specific detail never leaks.
	ErrTranscriptUnavailable = errors.New("captions may be unavailable or video is private")

	// ErrResponseParse is returned when the model response is not well-formed
	// structured data.
	ErrResponseParse = errors.New("model response is not valid JSON")

	// ErrUnsupportedMode is returned by the prompt composer for any mode
	// outside the enumerated set; handlers map it to a client input error.
	ErrUnsupportedMode = errors.New("unsupported optimization type")
)
