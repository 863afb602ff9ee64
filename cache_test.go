package microbpe

import "testing"

func TestSimpleCacheIsUnbounded(t *testing.T) {
	c := newSimpleCache()
	c.put("a", []uint64{1})
	c.put("b", []uint64{2})
	c.put("c", []uint64{3})

	for _, key := range []string{"a", "b", "c"} {
		if _, ok := c.get(key); !ok {
			t.Fatalf("expected %q to be cached", key)
		}
	}
}

func TestLRUCacheEvictsLeastRecentlyUsed(t *testing.T) {
	// Each one-byte key with a single cached id costs entryCost = 1+8 = 9
	// bytes; a budget of 20 admits two such entries but not three.
	c := newLRUCache(20)
	c.put("a", []uint64{1})
	c.put("b", []uint64{2})
	c.get("a") // touch a, making b the LRU entry

	c.put("c", []uint64{3})

	if _, ok := c.get("b"); ok {
		t.Fatal("expected b to be evicted")
	}
	if _, ok := c.get("a"); !ok {
		t.Fatal("expected a to survive (recently touched)")
	}
	if _, ok := c.get("c"); !ok {
		t.Fatal("expected c to be cached")
	}
}

func TestLRUCacheEvictsByApproximateByteBudgetNotEntryCount(t *testing.T) {
	// The budget is counted in bytes, not entries: two entries would fit
	// any count-based capacity of 64, but "long" alone costs 4+20*8 = 164
	// bytes, so every older entry is evicted and only the newest is kept.
	c := newLRUCache(64)
	c.put("short", []uint64{1, 2, 3})
	big := make([]uint64, 20)
	c.put("long", big) // costs far more than the remaining budget

	if _, ok := c.get("short"); ok {
		t.Fatal("expected the small entry to be evicted to make room for the large one")
	}
	if _, ok := c.get("long"); !ok {
		t.Fatal("expected the large entry to still be cached")
	}
}

func TestLRUCacheUpdatesExistingKey(t *testing.T) {
	c := newLRUCache(20)
	c.put("a", []uint64{1})
	c.put("a", []uint64{2})

	v, ok := c.get("a")
	if !ok || len(v) != 1 || v[0] != 2 {
		t.Fatalf("got %v, want [2]", v)
	}
}
