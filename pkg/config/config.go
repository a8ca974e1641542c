// Package config loads process-wide settings from the environment and an
// optional .env file. Settings are constructed once at startup and passed
// by value to the components that need them; nothing in this package keeps
// global mutable state.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DefaultEnvFile is read when SHOSHIN_ENV_FILE is not set.
	DefaultEnvFile = ".env"

	defaultDatabaseURL     = "postgres://localhost:5432/shoshin?sslmode=disable"
	defaultLanguage        = "en"
	defaultPromptMaxTokens = 2048
	defaultDocumentsIndex  = "document"
)

// Settings holds every tunable the pipeline reads at startup.
type Settings struct {
	DatabaseURL     string
	DefaultLanguage string
	OpenAIAPIKey    string
	PromptMaxTokens int
	DocumentsIndex  string
	ProgressBar     bool
}

// Load reads settings from the process environment, after merging in the
// .env file selected by SHOSHIN_ENV_FILE. A missing .env file is not an
// error; a missing OPENAI_API_KEY is.
func Load() (Settings, error) {
	envFile := os.Getenv("SHOSHIN_ENV_FILE")
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	// godotenv never overrides variables already present in the
	// environment, so explicit exports win over the file.
	_ = godotenv.Load(envFile)

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("DATABASE_URL", defaultDatabaseURL)
	v.SetDefault("DEFAULT_LANGUAGE", defaultLanguage)
	v.SetDefault("PROMPT_MAX_TOKENS", defaultPromptMaxTokens)
	v.SetDefault("DOCUMENTS_INDEX", defaultDocumentsIndex)
	v.SetDefault("PROGRESS_BAR", true)

	settings := Settings{
		DatabaseURL:     v.GetString("DATABASE_URL"),
		DefaultLanguage: v.GetString("DEFAULT_LANGUAGE"),
		OpenAIAPIKey:    v.GetString("OPENAI_API_KEY"),
		PromptMaxTokens: v.GetInt("PROMPT_MAX_TOKENS"),
		DocumentsIndex:  v.GetString("DOCUMENTS_INDEX"),
		ProgressBar:     v.GetBool("PROGRESS_BAR"),
	}

	if errs := settings.Validate(); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return Settings{}, fmt.Errorf("invalid settings: %s", strings.Join(msgs, "; "))
	}
	return settings, nil
}
