// Package llm wraps the hosted OpenAI endpoints the pipeline depends on:
// speech-to-text, embeddings, and chat completions. Every endpoint failure
// is translated into a tagged AIError; callers never see raw client errors.
package llm

import (
	openai "github.com/sashabaranov/go-openai"
)

// ClientConfig carries the credentials shared by every hosted endpoint.
// BaseURL is overridable so tests can point the client at a local server.
type ClientConfig struct {
	APIKey  string
	BaseURL string
}

func newClient(config ClientConfig) *openai.Client {
	cfg := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		cfg.BaseURL = config.BaseURL
	}
	return openai.NewClientWithConfig(cfg)
}
