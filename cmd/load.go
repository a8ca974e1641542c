package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/palazzem/shoshin/internal/models"
	"github.com/palazzem/shoshin/pkg/config"
	"github.com/palazzem/shoshin/pkg/llm"
	"github.com/palazzem/shoshin/pkg/processor"
	"github.com/palazzem/shoshin/pkg/store"
)

// storeBatchSize groups document writes per transaction.
const storeBatchSize = 100

var embeddingsLoadCmd = &cobra.Command{
	Use:   "embeddings-load <folder>",
	Short: "Clean every transcript in a folder and load it into the embedded document index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder := args[0]

		settings, err := config.Load()
		if err != nil {
			return err
		}

		noProgress, _ := cmd.Flags().GetBool("no-progress")
		showProgress := settings.ProgressBar && !noProgress

		documents, err := readDocuments(folder)
		if err != nil {
			return err
		}
		if len(documents) == 0 {
			return fmt.Errorf("no documents found in %s", folder)
		}

		language, _ := cmd.Flags().GetString("language")
		language = resolveLanguage(language, settings.DefaultLanguage, documents)

		proc := processor.NewWithConfig(processor.ProcessorConfig{Language: language})
		chunks, err := proc.Clean(documents)
		if err != nil {
			return err
		}

		vectorStore, err := store.NewWithConfig(cmd.Context(), store.VectorStoreConfig{
			ConnString: settings.DatabaseURL,
			Index:      settings.DocumentsIndex,
			VectorDim:  llm.EmbeddingDim,
		})
		if err != nil {
			return err
		}
		defer vectorStore.Close()

		storageBar := getProgressBar(len(chunks), "Storing documents", showProgress)
		for start := 0; start < len(chunks); start += storeBatchSize {
			end := min(start+storeBatchSize, len(chunks))
			if err := vectorStore.Store(cmd.Context(), chunks[start:end]); err != nil {
				return err
			}
			storageBar.Add(end - start)
		}
		storageBar.Finish()

		embedder := llm.NewEmbedder(llm.ClientConfig{APIKey: settings.OpenAIAPIKey})
		spinner := getSpinner("Computing embeddings", showProgress)
		embedded, err := vectorStore.UpdateEmbeddings(cmd.Context(), embedder)
		spinner.Finish()
		if err != nil {
			return err
		}

		color.Green("Loaded %d documents (%d chunks, %d embedded, language %q) into index %q",
			len(documents), len(chunks), embedded, language, settings.DocumentsIndex)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(embeddingsLoadCmd)
	embeddingsLoadCmd.Flags().StringP("language", "l", "", `transcript language (default: DEFAULT_LANGUAGE setting, "auto" to detect)`)
	embeddingsLoadCmd.Flags().Bool("no-progress", false, "disable progress bars")
}

// readDocuments loads every regular file in a folder as one document.
// Subdirectories are skipped, not recursed into.
func readDocuments(folder string) ([]models.Document, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", folder, err)
	}

	var documents []models.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(folder, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", entry.Name(), err)
		}
		documents = append(documents, models.New(string(data), map[string]string{
			"name": entry.Name(),
		}))
	}
	return documents, nil
}

// resolveLanguage picks the cleaning language: an explicit flag wins,
// "auto" runs detection over the loaded text, and everything else falls
// back to the configured default.
func resolveLanguage(flag, fallback string, documents []models.Document) string {
	switch flag {
	case "":
		return fallback
	case "auto":
		var sample strings.Builder
		for _, doc := range documents {
			sample.WriteString(doc.Content)
			sample.WriteString("\n")
		}
		if detected, ok := processor.DetectLanguage(sample.String()); ok {
			return detected
		}
		return fallback
	default:
		return flag
	}
}
