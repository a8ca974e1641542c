package config

import (
	"fmt"
	"net/url"
	"regexp"
)

// DOCUMENTS_INDEX becomes a table name in the store, so it must be a
// plain SQL identifier.
var indexNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (s *Settings) Validate() []ValidationError {
	var errors []ValidationError

	if s.OpenAIAPIKey == "" {
		errors = append(errors, ValidationError{
			Field:   "OPENAI_API_KEY",
			Message: "an OpenAI API key is required",
		})
	}

	if s.DatabaseURL == "" {
		errors = append(errors, ValidationError{
			Field:   "DATABASE_URL",
			Message: "a database URL is required",
		})
	} else if _, err := url.Parse(s.DatabaseURL); err != nil {
		errors = append(errors, ValidationError{
			Field:   "DATABASE_URL",
			Message: "invalid database URL",
		})
	}

	if s.DefaultLanguage == "" {
		errors = append(errors, ValidationError{
			Field:   "DEFAULT_LANGUAGE",
			Message: "a default language is required",
		})
	}

	if s.PromptMaxTokens < 1 {
		errors = append(errors, ValidationError{
			Field:   "PROMPT_MAX_TOKENS",
			Message: "PROMPT_MAX_TOKENS must be positive",
		})
	}

	if !indexNameRe.MatchString(s.DocumentsIndex) {
		errors = append(errors, ValidationError{
			Field:   "DOCUMENTS_INDEX",
			Message: fmt.Sprintf("invalid index name: %q", s.DocumentsIndex),
		})
	}

	return errors
}
