package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/palazzem/shoshin/pkg/config"
	"github.com/palazzem/shoshin/pkg/llm"
	"github.com/palazzem/shoshin/pkg/store"
)

var embeddingsResetCmd = &cobra.Command{
	Use:   "embeddings-reset",
	Short: "Delete every document from the embedded document index",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return err
		}

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Fprintf(cmd.OutOrStdout(), "This deletes all documents from index %q. Continue? [y/N] ", settings.DocumentsIndex)
			reader := bufio.NewReader(cmd.InOrStdin())
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
				return nil
			}
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

		if err := vectorStore.DeleteAll(cmd.Context()); err != nil {
			return err
		}

		color.Green("Index %q cleared", settings.DocumentsIndex)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(embeddingsResetCmd)
	embeddingsResetCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}
