// Package processor cleans raw transcripts and splits them into bounded
// chunks ready for embedding.
package processor

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/palazzem/shoshin/internal/models"
)

// DefaultSplitLength bounds a chunk to 100 words.
const DefaultSplitLength = 100

type ProcessorConfig struct {
	// Language is an ISO 639-1 code. It selects the abbreviation set used
	// for sentence-boundary detection.
	Language string
	// SplitLength is the maximum number of words per chunk.
	SplitLength int
}

// Processor normalizes whitespace, drops empty lines, and splits documents
// into word-bounded chunks only at sentence boundaries. Splitting is
// deterministic: identical input, language, and limit always yield the same
// chunks.
type Processor struct {
	config        ProcessorConfig
	abbreviations map[string]struct{}
}

func NewWithConfig(config ProcessorConfig) Processor {
	if config.SplitLength == 0 {
		config.SplitLength = DefaultSplitLength
	}
	if config.Language == "" {
		config.Language = "en"
	}
	return Processor{
		config:        config,
		abbreviations: abbreviationsFor(config.Language),
	}
}

// Clean processes each document in turn. Every output chunk carries a
// zero-based split id in its metadata and inherits the source metadata.
func (p Processor) Clean(documents []models.Document) ([]models.Document, error) {
	var cleaned []models.Document

	for _, doc := range documents {
		text := normalizeWhitespace(doc.Content)
		if text == "" {
			continue
		}

		for i, chunk := range p.splitIntoChunks(text) {
			metadata := make(map[string]string, len(doc.Metadata)+1)
			for k, v := range doc.Metadata {
				metadata[k] = v
			}
			metadata[models.MetaSplitID] = strconv.Itoa(i)
			cleaned = append(cleaned, models.New(chunk, metadata))
		}
	}

	return cleaned, nil
}

// normalizeWhitespace strips empty lines and redundant whitespace. Headers
// and footers are left untouched: transcripts have none.
func normalizeWhitespace(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, strings.Join(fields, " "))
	}
	return strings.Join(lines, " ")
}

// splitIntoChunks packs whole sentences into chunks of at most SplitLength
// words. A single sentence longer than the limit becomes its own chunk:
// sentence boundaries are never crossed.
func (p Processor) splitIntoChunks(text string) []string {
	var chunks []string
	var current []string
	currentWords := 0

	for _, sentence := range p.splitIntoSentences(text) {
		words := len(strings.Fields(sentence))
		if currentWords > 0 && currentWords+words > p.config.SplitLength {
			chunks = append(chunks, strings.Join(current, " "))
			current = nil
			currentWords = 0
		}
		current = append(current, sentence)
		currentWords += words
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks
}

func (p Processor) splitIntoSentences(text string) []string {
	words := strings.Fields(text)

	var sentences []string
	var current []string
	for _, word := range words {
		current = append(current, word)
		if p.endsSentence(word) {
			sentences = append(sentences, strings.Join(current, " "))
			current = nil
		}
	}
	if len(current) > 0 {
		sentences = append(sentences, strings.Join(current, " "))
	}

	return sentences
}

// endsSentence reports whether a word closes a sentence. Known
// abbreviations and single-letter initials do not, even though they end
// with a period.
func (p Processor) endsSentence(word string) bool {
	trimmed := strings.TrimRight(word, `"')]`+"”’")
	if trimmed == "" {
		return false
	}
	if strings.HasSuffix(trimmed, "!") || strings.HasSuffix(trimmed, "?") {
		return true
	}
	if !strings.HasSuffix(trimmed, ".") {
		return false
	}
	if _, ok := p.abbreviations[strings.ToLower(trimmed)]; ok {
		return false
	}
	runes := []rune(trimmed)
	if len(runes) == 2 && unicode.IsUpper(runes[0]) {
		return false
	}
	return true
}
