package microbpe

import "testing"

func TestWithCacheSizeRejectsNegative(t *testing.T) {
	_, err := NewTokenizer(nil, WithCacheSize(-1))
	if err == nil {
		t.Fatal("expected an error for a negative cache size")
	}
}

func TestWithWarnFuncRejectsNil(t *testing.T) {
	_, err := NewTokenizer(nil, WithWarnFunc(nil))
	if err == nil {
		t.Fatal("expected an error for a nil warn function")
	}
}

func TestWithCacheSizeBoundsTheCache(t *testing.T) {
	tok, err := NewTokenizer(nil, WithCacheSize(1))
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	if _, ok := tok.cache.(*lruCache); !ok {
		t.Fatalf("got %T, want *lruCache", tok.cache)
	}
}

func TestDefaultCacheIsUnbounded(t *testing.T) {
	tok, err := NewTokenizer(nil)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	if _, ok := tok.cache.(*simpleCache); !ok {
		t.Fatalf("got %T, want *simpleCache", tok.cache)
	}
}
