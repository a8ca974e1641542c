package processor

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Candidate languages match the abbreviation sets this package knows about.
var detectableLanguages = []lingua.Language{
	lingua.English,
	lingua.German,
	lingua.Italian,
	lingua.Spanish,
	lingua.French,
}

// DetectLanguage guesses the natural language of a text and returns its
// ISO 639-1 code. The second return value is false when no confident guess
// can be made.
func DetectLanguage(text string) (string, bool) {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(detectableLanguages...).
		Build()

	language, ok := detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(language.IsoCode639_1().String()), true
}
