// Command perft drives the move generator against known-good leaf counts.
// It is the direct consumer the core library exists to satisfy: given a
// FEN and a depth range, it counts legal-move-tree leaves at each depth and
// prints the count, the node rate and the elapsed time, the same role
// zurichess's sibling perft command plays for its own engine. It does not
// compare the counts against published figures.
//
// Examples:
//
//	$ perft --fen startpos --max_depth 6
//	$ perft --fen kiwipete --min_depth 4 --max_depth 4 --mode parallel
//	$ perft --fen startpos --max_depth 6 --mode cached --disk_cache ""
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/perft"
	"github.com/hailam/chesscore/internal/storage"
)

var (
	fenFlag      = flag.String("fen", "startpos", "position to search (FEN, or a known name)")
	minDepth     = flag.Int("min_depth", 1, "minimum depth to search (inclusive)")
	maxDepth     = flag.Int("max_depth", 5, "maximum depth to search (inclusive)")
	depthFlag    = flag.Int("depth", 0, "if non-zero, searches only this depth")
	splitFlag    = flag.Bool("split", false, "print the per-root-move leaf count at min_depth")
	mode         = flag.String("mode", "simple", "driver to use: simple, cached, or parallel")
	memCacheSize = flag.Int64("mem_cache_entries", 1<<20, "entries held by the in-memory cache tier (modes cached/parallel)")
	diskCacheDir = flag.String("disk_cache", "", "Badger directory for the persistent cache tier; \"\" disables it, \"default\" uses the platform data dir")
)

var known = map[string]string{
	"startpos": board.StartFEN,
	"kiwipete": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"duplain":  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

func main() {
	flag.Parse()
	log.SetFlags(0)

	fen := *fenFlag
	if named, ok := known[fen]; ok {
		fen = named
	}

	lo, hi := *minDepth, *maxDepth
	if *depthFlag != 0 {
		lo, hi = *depthFlag, *depthFlag
	}

	pos, err := board.ParseFEN(fen)
	if err != nil {
		log.Fatalf("invalid --fen: %v", err)
	}

	cache, closeCache, err := buildCache(*mode, *diskCacheDir, *memCacheSize)
	if err != nil {
		log.Fatalf("cache setup: %v", err)
	}
	if closeCache != nil {
		defer closeCache()
	}

	fmt.Printf("Searching FEN %q (mode=%s)\n", fen, *mode)
	fmt.Printf("%5s %16s %12s %8s\n", "depth", "nodes", "knps", "elapsed")
	fmt.Println("------+----------------+------------+--------")

	for d := lo; d <= hi; d++ {
		start := time.Now()
		count, err := run(*mode, pos, d, cache)
		elapsed := time.Since(start)
		if err != nil {
			log.Fatalf("depth %d: %v", d, err)
		}

		knps := float64(count) / elapsed.Seconds() / 1000
		fmt.Printf("%5d %16s %12.0f %8s\n", d, humanize.Comma(count), knps, elapsed)

		if *splitFlag && d == lo {
			printDivide(pos, d)
		}
	}
}

func run(mode string, pos *board.Position, depth int, cache *perft.Cache) (int64, error) {
	switch mode {
	case "simple":
		return perft.Count(pos, depth), nil
	case "cached":
		return perft.CountCached(pos, depth, cache), nil
	case "parallel":
		return perft.Parallel(pos, depth, cache)
	default:
		return 0, fmt.Errorf("unknown --mode %q (want simple, cached, or parallel)", mode)
	}
}

func buildCache(mode, diskDir string, memEntries int64) (*perft.Cache, func(), error) {
	if mode != "cached" && mode != "parallel" {
		return nil, nil, nil
	}

	mem, err := perft.NewMemoryCache(memEntries)
	if err != nil {
		return nil, nil, fmt.Errorf("memory cache: %w", err)
	}
	cache := &perft.Cache{Memory: mem}
	closers := []func(){mem.Close}

	if diskDir != "" {
		if diskDir == "default" {
			dir, err := storage.PerftCacheDir()
			if err != nil {
				return nil, nil, fmt.Errorf("resolving default disk cache dir: %w", err)
			}
			diskDir = dir
		}
		disk, err := perft.OpenDiskCache(diskDir)
		if err != nil {
			return nil, nil, fmt.Errorf("disk cache at %s: %w", diskDir, err)
		}
		cache.Disk = disk
		closers = append(closers, func() {
			if err := disk.Close(); err != nil {
				log.Printf("closing disk cache: %v", err)
			}
		})
		log.Printf("perft disk cache: %s", diskDir)
	}

	return cache, func() {
		for _, c := range closers {
			c()
		}
	}, nil
}

func printDivide(pos *board.Position, depth int) {
	div := perft.Divide(pos, depth)
	for m, n := range div {
		fmt.Printf("      %s: %s\n", m, humanize.Comma(n))
	}
}
