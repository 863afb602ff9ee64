package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/microbpe"
)

var (
	// Decode command flags.
	decMerges   string
	decSpecials string
)

// newDecodeCmd creates the decode subcommand.
func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [token_ids...]",
		Short: "Decode token IDs to text",
		Long: `Decode token IDs back to bytes using a trained merge table.

Token IDs can be provided as arguments or piped from stdin, separated
by any whitespace. Ids that are neither in-vocabulary nor a registered
special token are dropped with a warning on stderr.`,
		Example: `  # Decode token IDs from arguments
  microbpe decode --merges merges.tsv 104 101 108 108 111

  # Decode from encode output
  microbpe encode --merges merges.tsv "test" | microbpe decode --merges merges.tsv`,
		RunE: runDecode,
	}

	cmd.Flags().StringVar(&decMerges, "merges", "", "merge table file produced by train (required)")
	cmd.Flags().StringVar(&decSpecials, "specials", "", "JSON file mapping special token strings to ids")
	cmd.MarkFlagRequired("merges")

	return cmd
}

func runDecode(_ *cobra.Command, args []string) error {
	merges, err := loadMerges(decMerges)
	if err != nil {
		return err
	}
	specials, err := loadSpecialTokens(decSpecials)
	if err != nil {
		return err
	}

	opts := []microbpe.TokenizerOption{
		microbpe.WithWarnFunc(func(format string, a ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		}),
	}
	if len(specials) > 0 {
		opts = append(opts, microbpe.WithSpecialTokens(specials))
	}
	tok, err := microbpe.NewTokenizer(merges, opts...)
	if err != nil {
		return fmt.Errorf("build tokenizer: %w", err)
	}

	var ids []uint64
	if len(args) > 0 {
		for _, arg := range args {
			id, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid token id %q: %w", arg, err)
			}
			ids = append(ids, id)
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			id, err := strconv.ParseUint(scanner.Text(), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid token id %q: %w", scanner.Text(), err)
			}
			ids = append(ids, id)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	if len(ids) == 0 {
		return fmt.Errorf("no token ids provided")
	}

	os.Stdout.Write(tok.Decode(ids))
	return nil
}
