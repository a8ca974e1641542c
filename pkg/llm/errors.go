package llm

import (
	"context"
	"errors"
	"net"
	"net/url"

	openai "github.com/sashabaranov/go-openai"

	sherrors "github.com/palazzem/shoshin/pkg/errors"
)

// wrapAIError collapses every failure mode of the hosted endpoints into an
// AIError, tagging it with the failure category so retry-aware callers can
// still tell a rate limit apart from a bad request.
func wrapAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return sherrors.NewAIError(kindFromStatus(apiErr.HTTPStatusCode), err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return sherrors.NewAIError(kindFromStatus(reqErr.HTTPStatusCode), err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return sherrors.NewAIError(sherrors.KindTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return sherrors.NewAIError(sherrors.KindTimeout, err)
		}
		return sherrors.NewAIError(sherrors.KindConnection, err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return sherrors.NewAIError(sherrors.KindConnection, err)
	}

	return sherrors.NewAIError(sherrors.KindAPI, err)
}

func kindFromStatus(status int) sherrors.Kind {
	switch status {
	case 400:
		return sherrors.KindInvalidRequest
	case 401:
		return sherrors.KindAuthentication
	case 403:
		return sherrors.KindPermission
	case 408:
		return sherrors.KindTimeout
	case 429:
		return sherrors.KindRateLimit
	default:
		return sherrors.KindAPI
	}
}
