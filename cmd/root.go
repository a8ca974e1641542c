// Package cmd wires the pipeline components into CLI subcommands. Internal
// error wrappers surface here as plain messages and a non-zero exit.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/palazzem/shoshin/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "shoshin",
	Short: "Convert course videos into a searchable, question-answerable knowledge base",
	Long: `Shoshin converts course videos into a searchable knowledge base in four
steps: extract the audio track from a video, transcribe speech to text,
load transcripts into an embedded document index, and answer free-text
questions about the material.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and maps any error to a user-facing
// message and a non-zero process exit.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
