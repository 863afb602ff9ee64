package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/microbpe"
)

var (
	// Train command flags.
	trainPieces    string
	trainMerges    string
	trainNumMerges int
	trainMetrics   bool
)

// newTrainCmd creates the train subcommand.
func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Learn a merge table from sample byte pieces",
		Long: `Train a byte-level BPE merge table from sample text.

Each line of the pieces file is treated as one independent training
piece (merges never cross piece boundaries). Training stops after
--num-merges steps, or sooner if no mergeable pair remains.`,
		Example: `  # Train 500 merges from one piece per line
  microbpe train --pieces corpus.txt --merges merges.tsv --num-merges 500

  # Train from stdin
  cat corpus.txt | microbpe train --pieces - --merges merges.tsv`,
		RunE: runTrain,
	}

	cmd.Flags().StringVar(&trainPieces, "pieces", "", "file with one training piece per line, or - for stdin (required)")
	cmd.Flags().StringVar(&trainMerges, "merges", "", "output path for the learned merge table (required)")
	cmd.Flags().IntVar(&trainNumMerges, "num-merges", 100, "maximum number of merge steps to run")
	cmd.Flags().BoolVar(&trainMetrics, "metrics", false, "print training metrics to stderr")
	cmd.MarkFlagRequired("pieces")
	cmd.MarkFlagRequired("merges")

	return cmd
}

func runTrain(cmd *cobra.Command, _ []string) error {
	pieces, err := loadPieces(trainPieces)
	if err != nil {
		return err
	}
	if len(pieces) == 0 {
		return fmt.Errorf("no training pieces found in %s", trainPieces)
	}

	trainer, err := microbpe.NewTrainer(pieces)
	if err != nil {
		return fmt.Errorf("initialize trainer: %w", err)
	}

	start := time.Now()
	steps := 0
	for steps < trainNumMerges {
		if _, _, _, ok := trainer.Step(); !ok {
			break
		}
		steps++
	}

	if err := saveMerges(trainMerges, trainer.Merges()); err != nil {
		return err
	}

	fmt.Printf("learned %d merges -> %s\n", steps, trainMerges)
	if trainMetrics {
		fmt.Fprintf(cmd.ErrOrStderr(), "metrics:\n  latency: %s\n  merges/s: %d\n",
			formatLatency(time.Since(start)), calculateTPS(steps, time.Since(start)))
	}
	return nil
}
