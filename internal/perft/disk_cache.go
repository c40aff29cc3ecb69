package perft

import (
	"encoding/binary"

	"github.com/dgraph-io/badger/v4"
)

// DiskCache is a persistent (position, depth) -> leaf-count cache, so a long
// perft run can be interrupted and resumed without recomputing the subtrees
// it already finished. Badger keeps it crash-safe without a server process.
type DiskCache struct {
	db *badger.DB
}

// OpenDiskCache opens (creating if necessary) a Badger database at dir.
func OpenDiskCache(dir string) (*DiskCache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &DiskCache{db: db}, nil
}

// dbKey appends the search depth to the key's exact encoding, so the stored
// key - like the in-memory tier's comparison - is the full position state,
// never a lossy hash of it.
func dbKey(key Key, depth int) []byte {
	return append(key.Encode(), byte(depth))
}

// Get looks up the leaf count for (key, depth).
func (c *DiskCache) Get(key Key, depth int) (int64, bool) {
	var count int64
	var found bool

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(dbKey(key, depth))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			count = int64(binary.LittleEndian.Uint64(val))
			found = true
			return nil
		})
	})
	if err != nil {
		return 0, false
	}
	return count, found
}

// Set records the leaf count for (key, depth).
func (c *DiskCache) Set(key Key, depth int, count int64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(count))

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(dbKey(key, depth), buf[:])
	})
}

// Close flushes and closes the underlying database.
func (c *DiskCache) Close() error {
	return c.db.Close()
}
