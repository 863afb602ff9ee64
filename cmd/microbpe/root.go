package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "microbpe",
	Short: "A minimal byte-pair-encoding trainer and tokenizer",
	Long: `microbpe trains a byte-level BPE merge table from sample text and
uses it to encode and decode token ids.

There is no built-in vocabulary: every merge table is either trained from
scratch with "microbpe train" or supplied by the caller, and every
subcommand that encodes or decodes requires a merge table file produced
by train.

Available commands:
  train  - Learn a merge table from sample byte pieces
  encode - Encode text to token IDs
  decode - Decode token IDs to text
  vocab  - Print the vocabulary implied by a merge table
  info   - Display summary information about a merge table`,
	Example: `  # Train a merge table from one piece per line
  microbpe train --pieces corpus.txt --merges merges.tsv --num-merges 500

  # Encode text with that table
  microbpe encode --merges merges.tsv "Hello, world!"

  # Decode tokens back to text
  microbpe decode --merges merges.tsv 104 101 108 108 111`,
	SilenceUsage: true,
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("microbpe version %s\n", version)
		if commit != "none" {
			fmt.Printf("  commit:     %s\n", commit)
		}
		if buildDate != "unknown" {
			fmt.Printf("  built:      %s\n", buildDate)
		}
		if goVersion != "unknown" {
			fmt.Printf("  go version: %s\n", goVersion)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newTrainCmd())
	rootCmd.AddCommand(newEncodeCmd())
	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newVocabCmd())
	rootCmd.AddCommand(newInfoCmd())
}
