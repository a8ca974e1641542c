package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/palazzem/shoshin/pkg/config"
	"github.com/palazzem/shoshin/pkg/llm"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audio_file>",
	Short: "Transcribe an MP3 audio file to text through the hosted speech-to-text endpoint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		audioFile := args[0]
		if err := requireExtension(audioFile, ".mp3"); err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = outputName(audioFile, ".txt")
		}

		settings, err := config.Load()
		if err != nil {
			return err
		}

		transcriber := llm.NewTranscriber(llm.ClientConfig{APIKey: settings.OpenAIAPIKey})
		transcription, err := transcriber.Transcribe(cmd.Context(), audioFile)
		if err != nil {
			return err
		}

		if err := os.WriteFile(output, []byte(transcription), 0o644); err != nil {
			return err
		}

		color.Green("Audio transcript saved in: %s", output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transcribeCmd)
	transcribeCmd.Flags().StringP("output", "o", "", "output file name (default: <audio_file>.txt)")
}
