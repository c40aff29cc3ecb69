package perft

import "github.com/hailam/chesscore/internal/board"

// Cache bundles the cache tiers CountCached consults, in order: the
// in-memory tier first (cheap, volatile), then the disk tier (slower,
// durable). Either may be nil; CountCached degrades to Count's plain
// recursion once both are absent.
type Cache struct {
	Memory *MemoryCache
	Disk   *DiskCache
}

// get consults the configured tiers in order, promoting a disk hit into the
// memory tier so the next lookup for the same (key, depth) is cheap.
func (c *Cache) get(key Key, depth int) (int64, bool) {
	if c == nil {
		return 0, false
	}
	if c.Memory != nil {
		if n, ok := c.Memory.Get(key, depth); ok {
			return n, true
		}
	}
	if c.Disk != nil {
		if n, ok := c.Disk.Get(key, depth); ok {
			if c.Memory != nil {
				c.Memory.Set(key, depth, n)
			}
			return n, true
		}
	}
	return 0, false
}

func (c *Cache) set(key Key, depth int, count int64) {
	if c == nil {
		return
	}
	if c.Memory != nil {
		c.Memory.Set(key, depth, count)
	}
	if c.Disk != nil {
		// Disk persistence failures never invalidate a perft run: the
		// result is still correct, just not remembered for next time.
		_ = c.Disk.Set(key, depth, count)
	}
}

// CountCached is Count with a before-recurse cache lookup and an
// after-compute cache insert at every node, keyed by the exact position
// state rather than a lossy hash of it.
func CountCached(pos *board.Position, depth int, cache *Cache) int64 {
	key := KeyOf(pos)
	if n, ok := cache.get(key, depth); ok {
		return n
	}

	var nodes int64
	if depth == 0 {
		nodes = 1
	} else {
		moves := pos.GenerateLegalMoves()
		if depth == 1 {
			nodes = int64(moves.Len())
		} else {
			for i := 0; i < moves.Len(); i++ {
				m := moves.Get(i)
				undo := pos.MakeMove(m)
				nodes += CountCached(pos, depth-1, cache)
				pos.UnmakeMove(m, undo)
			}
		}
	}

	cache.set(key, depth, nodes)
	return nodes
}
