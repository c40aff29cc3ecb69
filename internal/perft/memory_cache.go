package perft

import "github.com/dgraph-io/ristretto/v2"

// memEntry is what MemoryCache actually stores. Because ristretto indexes by
// a 64-bit admission hash rather than the Key itself, every lookup re-checks
// key and depth for exact equality before trusting the stored count - this
// is what keeps a shard collision from ever returning the wrong answer.
type memEntry struct {
	key   Key
	depth int
	count int64
}

// MemoryCache is the in-process concurrent cache tier for perft: many perft
// workers may Get and Set the same cache concurrently, which ristretto
// provides directly instead of a hand-rolled sharded-mutex map.
type MemoryCache struct {
	rc *ristretto.Cache[uint64, memEntry]
}

// NewMemoryCache builds a memory cache sized for maxEntries resident
// (key,depth)->count pairs.
func NewMemoryCache(maxEntries int64) (*MemoryCache, error) {
	rc, err := ristretto.NewCache(&ristretto.Config[uint64, memEntry]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &MemoryCache{rc: rc}, nil
}

// Get looks up the leaf count for (key, depth). The second return is false
// on a miss or on a shard collision with a different key/depth.
func (c *MemoryCache) Get(key Key, depth int) (int64, bool) {
	e, ok := c.rc.Get(key.shardHash(depth))
	if !ok || e.depth != depth || e.key != key {
		return 0, false
	}
	return e.count, true
}

// Set records the leaf count for (key, depth).
func (c *MemoryCache) Set(key Key, depth int, count int64) {
	c.rc.Set(key.shardHash(depth), memEntry{key: key, depth: depth, count: count}, 1)
}

// Close releases the cache's background goroutines.
func (c *MemoryCache) Close() {
	c.rc.Close()
}
