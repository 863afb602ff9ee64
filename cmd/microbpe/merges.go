package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/agentstation/microbpe"
)

// loadMerges reads a merge table in the tab-separated "first\tsecond"
// format written by saveMerges, one merge per line in rank order.
func loadMerges(path string) ([]microbpe.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open merges file: %w", err)
	}
	defer f.Close()

	var merges []microbpe.Pair
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed merge line %q", line)
		}
		first, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed merge line %q: %w", line, err)
		}
		second, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed merge line %q: %w", line, err)
		}
		merges = append(merges, microbpe.Pair{First: first, Second: second})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read merges file: %w", err)
	}
	return merges, nil
}

// saveMerges writes merges in rank order, one "first\tsecond" pair per line.
func saveMerges(path string, merges []microbpe.Pair) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create merges file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, m := range merges {
		if _, err := fmt.Fprintf(w, "%d\t%d\n", m.First, m.Second); err != nil {
			return fmt.Errorf("write merges file: %w", err)
		}
	}
	return w.Flush()
}

// loadSpecialTokens reads a JSON object mapping token string to id.
func loadSpecialTokens(path string) (map[string]uint64, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open special tokens file: %w", err)
	}
	var tokens map[string]uint64
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, fmt.Errorf("parse special tokens file: %w", err)
	}
	return tokens, nil
}

// loadPieces reads one training piece per line from path, or from stdin
// when path is "-".
func loadPieces(path string) ([][]byte, error) {
	var f *os.File
	if path == "-" {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open pieces file: %w", err)
		}
		defer f.Close()
	}

	var pieces [][]byte
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		pieces = append(pieces, []byte(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read pieces file: %w", err)
	}
	return pieces, nil
}
