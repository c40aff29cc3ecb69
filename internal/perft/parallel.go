package perft

import (
	"golang.org/x/sync/errgroup"

	"github.com/hailam/chesscore/internal/board"
)

// Parallel fans the root's legal moves out across workers and sums their
// leaf counts. Each worker operates on its own structural copy of pos, so no
// mutable position state is shared, and the sum is order independent. cache
// may be nil for an uncached parallel run; ristretto and Badger are both
// already safe for concurrent access, so the same Cache can be handed to
// every worker without extra synchronization.
//
// Perft never cancels early, so workers never return an error; Wait always
// succeeds. errgroup is used here for its WaitGroup-plus-panic-safety
// bookkeeping, not for its error-cancellation behavior.
func Parallel(pos *board.Position, depth int, cache *Cache) (int64, error) {
	if depth == 0 {
		return 1, nil
	}

	moves := pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		return 0, nil
	}

	counts := make([]int64, moves.Len())
	var g errgroup.Group

	for i := 0; i < moves.Len(); i++ {
		i := i
		m := moves.Get(i)
		child := pos.Copy()

		g.Go(func() error {
			undo := child.MakeMove(m)
			defer child.UnmakeMove(m, undo)

			if cache != nil {
				counts[i] = CountCached(child, depth-1, cache)
			} else {
				counts[i] = Count(child, depth-1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, c := range counts {
		total += c
	}
	return total, nil
}
