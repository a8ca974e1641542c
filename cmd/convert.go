package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/palazzem/shoshin/pkg/media"
)

var convertCmd = &cobra.Command{
	Use:   "convert <video_file>",
	Short: "Extract the audio track from an MP4 video into an MP3 file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoFile := args[0]
		if err := requireExtension(videoFile, ".mp4"); err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = outputName(videoFile, ".mp3")
		}

		extractor := media.NewExtractor()
		if err := extractor.Extract(cmd.Context(), videoFile, output); err != nil {
			return err
		}

		color.Green("Audio track converted to: %s", output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("output", "o", "", "output file name (default: <video_file>.mp3)")
}
