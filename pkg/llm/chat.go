package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

const (
	CompletionModel = openai.GPT3Dot5Turbo

	// DefaultMaxTokens bounds the completion budget when the caller does
	// not configure one.
	DefaultMaxTokens = 2048
)

// ChatConfig represents the configuration for a chat engine.
type ChatConfig struct {
	ClientConfig
	Model     string
	MaxTokens int
}

// ChatEngine sends prompts to the hosted chat-completion endpoint.
type ChatEngine struct {
	config ChatConfig
	client *openai.Client
}

func NewChatEngine(config ChatConfig) *ChatEngine {
	if config.Model == "" {
		config.Model = CompletionModel
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultMaxTokens
	}
	return &ChatEngine{
		config: config,
		client: newClient(config.ClientConfig),
	}
}

// Complete sends the prompt with the configured max-token budget and
// returns the generated text verbatim.
func (ce *ChatEngine) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := ce.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     ce.config.Model,
		MaxTokens: ce.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", wrapAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", wrapAIError(errors.New("no response generated"))
	}
	return resp.Choices[0].Message.Content, nil
}
