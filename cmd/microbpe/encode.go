package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/microbpe"
)

var (
	// Encode command flags.
	encMerges   string
	encSpecials string
	encOutput   string
	encCount    bool
	encMetrics  bool
)

// newEncodeCmd creates the encode subcommand.
func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text to token IDs",
		Long: `Encode text into token IDs using a trained merge table.

If no text is provided as an argument, reads from stdin.

The output format can be:
  - space: Space-separated token IDs (default)
  - newline: One token ID per line
  - json: JSON array of token IDs`,
		Example: `  # Encode a simple string
  microbpe encode --merges merges.tsv "Hello, world!"

  # Encode from stdin
  echo "Hello, world!" | microbpe encode --merges merges.tsv

  # Output as JSON with a count
  microbpe encode --merges merges.tsv --output json --count "Hello"`,
		RunE: runEncode,
	}

	cmd.Flags().StringVar(&encMerges, "merges", "", "merge table file produced by train (required)")
	cmd.Flags().StringVar(&encSpecials, "specials", "", "JSON file mapping special token strings to ids")
	cmd.Flags().StringVarP(&encOutput, "output", "o", "space", "output format: space, newline, json")
	cmd.Flags().BoolVar(&encCount, "count", false, "show token count with output")
	cmd.Flags().BoolVar(&encMetrics, "metrics", false, "show performance metrics")
	cmd.MarkFlagRequired("merges")

	return cmd
}

func runEncode(cmd *cobra.Command, args []string) error {
	merges, err := loadMerges(encMerges)
	if err != nil {
		return err
	}
	specials, err := loadSpecialTokens(encSpecials)
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

	var input []byte
	if len(args) > 0 {
		input = []byte(strings.Join(args, " "))
	} else {
		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	start := time.Now()
	ids := tok.Encode(input)
	duration := time.Since(start)

	switch encOutput {
	case "json":
		output := map[string]any{"tokens": ids}
		if encCount {
			output["count"] = len(ids)
		}
		if encMetrics {
			output["metrics"] = map[string]any{
				"latency":     formatLatency(duration),
				"tps":         calculateTPS(len(ids), duration),
				"input_bytes": len(input),
			}
		}
		data, err := json.Marshal(output)
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		fmt.Println(string(data))
	case "newline":
		if encCount {
			fmt.Printf("count: %d\n", len(ids))
		}
		for _, id := range ids {
			fmt.Println(id)
		}
	case "space":
		if encCount {
			fmt.Printf("count: %d\n", len(ids))
			fmt.Print("tokens: ")
		}
		for i, id := range ids {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Print(id)
		}
		fmt.Println()
	default:
		return fmt.Errorf("unknown output format: %s", encOutput)
	}

	if encMetrics && encOutput != "json" {
		fmt.Fprintf(cmd.ErrOrStderr(), "metrics:\n  latency: %s\n  tps: %d\n  input_bytes: %d\n",
			formatLatency(duration), calculateTPS(len(ids), duration), len(input))
	}
	return nil
}
