package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/agentstation/microbpe"
)

var (
	// Vocab command flags.
	vocabMerges   string
	vocabSpecials string
)

// newVocabCmd creates the vocab subcommand.
func newVocabCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Print the vocabulary implied by a merge table",
		Long: `Print every token id and its byte expansion, one per line.

Ids 0-255 are the raw byte values; ids 256 and above are merges, in the
order they were learned. If --specials is given, registered special
tokens are printed after the merge-derived vocabulary.`,
		Example: `  microbpe vocab --merges merges.tsv`,
		RunE:    runVocab,
	}

	cmd.Flags().StringVar(&vocabMerges, "merges", "", "merge table file produced by train (required)")
	cmd.Flags().StringVar(&vocabSpecials, "specials", "", "JSON file mapping special token strings to ids")
	cmd.MarkFlagRequired("merges")

	return cmd
}

func runVocab(_ *cobra.Command, _ []string) error {
	merges, err := loadMerges(vocabMerges)
	if err != nil {
		return err
	}
	specials, err := loadSpecialTokens(vocabSpecials)
	if err != nil {
		return err
	}

	var opts []microbpe.TokenizerOption
	if len(specials) > 0 {
		opts = append(opts, microbpe.WithSpecialTokens(specials))
	}
	tok, err := microbpe.NewTokenizer(merges, opts...)
	if err != nil {
		return fmt.Errorf("build tokenizer: %w", err)
	}

	flat := tok.FlatVocabulary()
	ids := make([]uint64, 0, len(flat))
	for id := range flat {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		fmt.Printf("%d\t%q\n", id, string(flat[id]))
	}
	return nil
}
