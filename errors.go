package microbpe

import (
	"errors"
	"fmt"
)

// Sentinel errors observable at the package boundary.
var (
	// ErrInputShape indicates a malformed top-level input: an empty
	// piece list, an empty merge list where one is required, or similar.
	ErrInputShape = errors.New("microbpe: invalid input shape")

	// ErrInvalidMerges indicates the merge-table validator rejected the
	// supplied table (out-of-range component or duplicate pair).
	ErrInvalidMerges = errors.New("microbpe: invalid merge table")

	// ErrNegativePair indicates a pair component could not have been
	// represented without an out-of-range (negative, pre-conversion)
	// value at the caller's boundary.
	ErrNegativePair = errors.New("microbpe: negative pair component")

	// ErrAlreadyInitialized indicates LoadMerges was called on a
	// Trainer that already has a non-empty merge list.
	ErrAlreadyInitialized = errors.New("microbpe: trainer already initialized")

	// ErrUnknownTokenID indicates a token id outside the vocabulary and
	// not registered as a special token was encountered during Decode.
	// This is non-fatal; the id is skipped.
	ErrUnknownTokenID = errors.New("microbpe: unknown token id")
)

// MergeError wraps ErrInvalidMerges with the offending index and the
// specific reason (out-of-range component vs. duplicate pair).
type MergeError struct {
	Op    string // "range" or "duplicate"
	Index int
	Pair  Pair
	Err   error
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("microbpe: invalid merge table: %s at index %d (%d,%d): %v",
		e.Op, e.Index, e.Pair.First, e.Pair.Second, e.Err)
}

func (e *MergeError) Unwrap() error { return e.Err }

// NewMergeError constructs a MergeError wrapping ErrInvalidMerges.
func NewMergeError(op string, index int, pair Pair) error {
	return &MergeError{Op: op, Index: index, Pair: pair, Err: ErrInvalidMerges}
}

// ConfigError represents an error in Trainer/Tokenizer configuration.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("microbpe: config error: %s=%v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// NewConfigError creates a new ConfigError.
func NewConfigError(field string, value any, err error) error {
	return &ConfigError{Field: field, Value: value, Err: err}
}
