package perft

import (
	"testing"

	"github.com/hailam/chesscore/internal/board"
)

type scenario struct {
	name   string
	fen    string
	counts []int64 // index i = depth i+1
}

var scenarios = []scenario{
	{
		name:   "Initial",
		fen:    board.StartFEN,
		counts: []int64{20, 400, 8902, 197281},
	},
	{
		name:   "Kiwipete",
		fen:    "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		counts: []int64{48, 2039, 97862},
	},
	{
		name:   "Position3",
		fen:    "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		counts: []int64{14, 191, 2812, 43238},
	},
	{
		name:   "Position4",
		fen:    "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		counts: []int64{6, 264, 9467},
	},
	{
		name:   "Position5",
		fen:    "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		counts: []int64{44, 1486, 62379},
	},
	{
		name:   "Position6",
		fen:    "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		counts: []int64{46, 2079, 89890},
	},
}

func TestCount(t *testing.T) {
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			pos, err := board.ParseFEN(sc.fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			for i, want := range sc.counts {
				depth := i + 1
				got := Count(pos, depth)
				if got != want {
					t.Errorf("Count(depth=%d) = %d, want %d", depth, got, want)
				}
			}
		})
	}
}

func TestCountCachedMatchesCount(t *testing.T) {
	mem, err := NewMemoryCache(1 << 16)
	if err != nil {
		t.Fatalf("NewMemoryCache: %v", err)
	}
	defer mem.Close()
	cache := &Cache{Memory: mem}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			pos, err := board.ParseFEN(sc.fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			for i, want := range sc.counts {
				depth := i + 1
				got := CountCached(pos, depth, cache)
				if got != want {
					t.Errorf("CountCached(depth=%d) = %d, want %d", depth, got, want)
				}
				// Second call exercises the populated-cache path.
				if got2 := CountCached(pos, depth, cache); got2 != want {
					t.Errorf("CountCached(depth=%d) second call = %d, want %d", depth, got2, want)
				}
			}
		})
	}
}

func TestCountCachedNilCache(t *testing.T) {
	pos := board.NewPosition()
	if got := CountCached(pos, 3, nil); got != 8902 {
		t.Errorf("CountCached with nil cache = %d, want 8902", got)
	}
}

func TestParallelMatchesCount(t *testing.T) {
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			pos, err := board.ParseFEN(sc.fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			for i, want := range sc.counts {
				depth := i + 1
				got, err := Parallel(pos, depth, nil)
				if err != nil {
					t.Fatalf("Parallel(depth=%d): %v", depth, err)
				}
				if got != want {
					t.Errorf("Parallel(depth=%d) = %d, want %d", depth, got, want)
				}
			}
		})
	}
}

func TestParallelWithCache(t *testing.T) {
	mem, err := NewMemoryCache(1 << 16)
	if err != nil {
		t.Fatalf("NewMemoryCache: %v", err)
	}
	defer mem.Close()
	cache := &Cache{Memory: mem}

	pos := board.NewPosition()
	got, err := Parallel(pos, 4, cache)
	if err != nil {
		t.Fatalf("Parallel: %v", err)
	}
	if got != 197281 {
		t.Errorf("Parallel with cache (depth=4) = %d, want 197281", got)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	dc, err := OpenDiskCache(dir)
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	defer dc.Close()

	pos := board.NewPosition()
	key := KeyOf(pos)

	if _, ok := dc.Get(key, 3); ok {
		t.Fatal("expected miss on empty disk cache")
	}
	if err := dc.Set(key, 3, 8902); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := dc.Get(key, 3)
	if !ok || got != 8902 {
		t.Errorf("Get after Set = (%d, %v), want (8902, true)", got, ok)
	}

	// A different depth for the same key must miss.
	if _, ok := dc.Get(key, 4); ok {
		t.Error("expected miss for unset depth")
	}
}

func TestDivide(t *testing.T) {
	pos := board.NewPosition()
	div := Divide(pos, 2)

	var total int64
	for _, n := range div {
		total += n
	}
	if total != 400 {
		t.Errorf("sum of Divide(depth=2) = %d, want 400", total)
	}
	if len(div) != 20 {
		t.Errorf("Divide(depth=2) has %d root moves, want 20", len(div))
	}
}
