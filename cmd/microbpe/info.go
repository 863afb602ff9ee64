package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/microbpe"
)

var infoMerges string

// newInfoCmd creates the info subcommand.
func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Display summary information about a merge table",
		Long: `Display information about a merge table: vocabulary size, merge
count, and base alphabet size.`,
		Example: `  microbpe info --merges merges.tsv`,
		RunE:    runInfo,
	}

	cmd.Flags().StringVar(&infoMerges, "merges", "", "merge table file produced by train (required)")
	cmd.MarkFlagRequired("merges")

	return cmd
}

func runInfo(_ *cobra.Command, _ []string) error {
	merges, err := loadMerges(infoMerges)
	if err != nil {
		return err
	}

	tok, err := microbpe.NewTokenizer(merges)
	if err != nil {
		return fmt.Errorf("build tokenizer: %w", err)
	}

	fmt.Println("microbpe merge table")
	fmt.Println("====================")
	fmt.Println()
	fmt.Printf("  Base alphabet:   256 bytes\n")
	fmt.Printf("  Merges learned:  %d\n", len(merges))
	fmt.Printf("  Vocabulary size: %d\n", tok.VocabSize())
	return nil
}
