// Package media wraps the external ffmpeg transcoder.
package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	sherrors "github.com/palazzem/shoshin/pkg/errors"
)

// DefaultSampleRate is enough for speech recognition and keeps the upload
// payload small.
const DefaultSampleRate = 16000

// maxStderrLines bounds how much transcoder output ends up in the error.
const maxStderrLines = 10

type ExtractorConfig struct {
	SampleRate int
}

// Extractor pulls a mono MP3 audio track out of a video file by invoking
// ffmpeg. Transcoding failures are deterministic, so they are never retried.
type Extractor struct {
	config ExtractorConfig
}

func NewExtractor() Extractor {
	return NewExtractorWithConfig(ExtractorConfig{})
}

func NewExtractorWithConfig(config ExtractorConfig) Extractor {
	if config.SampleRate == 0 {
		config.SampleRate = DefaultSampleRate
	}
	return Extractor{config: config}
}

// Extract converts videoPath into a mono MP3 file at outputPath,
// overwriting any existing file. A missing input surfaces as a plain
// missing-file error; any transcoding failure is wrapped into an
// AudioExtractionError carrying the ffmpeg stderr tail.
func (e Extractor) Extract(ctx context.Context, videoPath, outputPath string) error {
	if _, err := os.Stat(videoPath); err != nil {
		return fmt.Errorf("video file %s: %w", videoPath, err)
	}

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y",
		"-i", videoPath,
		"-vn",
		"-acodec", "libmp3lame",
		"-ac", "1",
		"-ar", strconv.Itoa(e.config.SampleRate),
		outputPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return sherrors.NewAudioExtractionError(err, stderrTail(stderr.String()))
	}
	return nil
}

func stderrTail(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > maxStderrLines {
		lines = lines[len(lines)-maxStderrLines:]
	}
	return strings.Join(lines, "\n")
}
