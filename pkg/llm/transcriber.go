package llm

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// Transcriber sends audio files to the hosted Whisper endpoint.
type Transcriber struct {
	client *openai.Client
}

func NewTranscriber(config ClientConfig) *Transcriber {
	return &Transcriber{client: newClient(config)}
}

// Transcribe uploads the audio file and returns the recognized text. A
// missing input file fails with a plain missing-file error, distinct from
// the AIError raised for endpoint failures.
func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("audio file %s: %w", audioPath, err)
	}

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
	})
	if err != nil {
		return "", wrapAIError(err)
	}
	return resp.Text, nil
}
