package microbpe

// TokenizerOption configures a Tokenizer at construction time.
type TokenizerOption func(*tokenizerConfig) error

type tokenizerConfig struct {
	specialTokens map[string]uint64
	cacheSize     int
	warnf         func(format string, args ...any)
}

func defaultTokenizerConfig() *tokenizerConfig {
	return &tokenizerConfig{
		cacheSize: defaultCacheSize,
		warnf:     func(string, ...any) {},
	}
}

// WithSpecialTokens registers byte-string<->id bindings that bypass
// the merge mechanism entirely (spec.md §6). Encode checks whether its
// entire input matches a key verbatim before running the merge pass;
// Decode substitutes these bytes back in for their ids.
func WithSpecialTokens(tokens map[string]uint64) TokenizerOption {
	return func(cfg *tokenizerConfig) error {
		cfg.specialTokens = tokens
		return nil
	}
}

// WithCacheSize sets the approximate number of bytes the Tokenizer's
// Encode result cache may retain (summed over cached inputs and their
// encoded ids), evicting least-recently-used entries once the budget
// is exceeded. 0 (the default) means unlimited; the cache never evicts.
func WithCacheSize(size int) TokenizerOption {
	return func(cfg *tokenizerConfig) error {
		if size < 0 {
			return NewConfigError("cache_size", size, ErrInputShape)
		}
		cfg.cacheSize = size
		return nil
	}
}

// WithWarnFunc installs a callback invoked when Decode encounters an
// id that is neither in-vocabulary nor a registered special token
// (spec.md §7 UnknownTokenId, non-fatal). The default callback is a
// no-op; formats like fmt.Printf.
func WithWarnFunc(warnf func(format string, args ...any)) TokenizerOption {
	return func(cfg *tokenizerConfig) error {
		if warnf == nil {
			return NewConfigError("warn_func", nil, ErrInputShape)
		}
		cfg.warnf = warnf
		return nil
	}
}
