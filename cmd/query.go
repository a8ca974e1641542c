package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/palazzem/shoshin/pkg/config"
	"github.com/palazzem/shoshin/pkg/llm"
	"github.com/palazzem/shoshin/pkg/pipeline"
	"github.com/palazzem/shoshin/pkg/store"
)

var queryCmd = &cobra.Command{
	Use:   "query <question>",
	Short: "Answer a free-text question using the embedded document index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := args[0]

		settings, err := config.Load()
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

		embedder := llm.NewEmbedder(llm.ClientConfig{APIKey: settings.OpenAIAPIKey})
		chatEngine := llm.NewChatEngine(llm.ChatConfig{
			ClientConfig: llm.ClientConfig{APIKey: settings.OpenAIAPIKey},
			MaxTokens:    settings.PromptMaxTokens,
		})

		qa := pipeline.New(embedder, vectorStore, chatEngine)
		answer, err := qa.Answer(cmd.Context(), question)
		if err != nil {
			return err
		}

		fmt.Println(answer)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
