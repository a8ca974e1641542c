// Package errors defines the user-visible error wrappers of the pipeline.
// Wrappers carry a human-readable message, the underlying cause, and an
// optional troubleshooting code that links to a wiki page.
package errors

import (
	"fmt"

	"github.com/palazzem/shoshin/internal/version"
)

const troubleshootingURL = "https://github.com/palazzem/shoshin/wiki/"

// withTroubleshooting appends a documentation link when a code is set.
// A zero code means no link.
func withTroubleshooting(message string, code int) string {
	if code == 0 {
		return message
	}
	return fmt.Sprintf("%s\n\nTo troubleshoot visit %s%s-%d", message, troubleshootingURL, version.Version, code)
}

// Kind tags the failure category of an AI-service call. Kinds are an
// internal detail: the CLI collapses every kind into one umbrella message,
// but callers that want to retry can still branch on them.
type Kind int

const (
	KindAPI Kind = iota
	KindTimeout
	KindConnection
	KindInvalidRequest
	KindAuthentication
	KindPermission
	KindRateLimit
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindConnection:
		return "connection"
	case KindInvalidRequest:
		return "invalid request"
	case KindAuthentication:
		return "authentication"
	case KindPermission:
		return "permission"
	case KindRateLimit:
		return "rate limit"
	default:
		return "api"
	}
}

// AIError wraps any failure returned by a hosted AI/ML endpoint. It is
// always fatal to the command that triggered it and never retried locally.
type AIError struct {
	Kind  Kind
	Code  int
	cause error
}

func NewAIError(kind Kind, cause error) *AIError {
	return &AIError{Kind: kind, cause: cause}
}

func (e *AIError) Error() string {
	msg := fmt.Sprintf("AI service request failed (%s): %v", e.Kind, e.cause)
	return withTroubleshooting(msg, e.Code)
}

func (e *AIError) Unwrap() error {
	return e.cause
}

// AudioExtractionError wraps any failure from the media-transcoding step.
// Stderr holds the tail of the transcoder output for diagnostics.
type AudioExtractionError struct {
	Code   int
	Stderr string
	cause  error
}

func NewAudioExtractionError(cause error, stderr string) *AudioExtractionError {
	return &AudioExtractionError{Stderr: stderr, cause: cause}
}

func (e *AudioExtractionError) Error() string {
	msg := fmt.Sprintf("error occurred during audio extraction: %v", e.cause)
	if e.Stderr != "" {
		msg = fmt.Sprintf("%s\n%s", msg, e.Stderr)
	}
	return withTroubleshooting(msg, e.Code)
}

func (e *AudioExtractionError) Unwrap() error {
	return e.cause
}
