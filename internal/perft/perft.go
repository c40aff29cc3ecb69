package perft

import "github.com/hailam/chesscore/internal/board"

// Count returns the number of leaf positions reachable from pos in exactly
// depth plies, recursing through MakeMove/UnmakeMove without consulting any
// cache. Depth 0 is always a single leaf - the position itself.
func Count(pos *board.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := pos.GenerateLegalMoves()
	if depth == 1 {
		return int64(moves.Len())
	}

	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := pos.MakeMove(m)
		nodes += Count(pos, depth-1)
		pos.UnmakeMove(m, undo)
	}
	return nodes
}

// Divide returns the leaf count contributed by each legal root move, the
// standard way to localize a move-generator discrepancy against a known-good
// engine: compare this map move-by-move instead of just the total.
func Divide(pos *board.Position, depth int) map[board.Move]int64 {
	moves := pos.GenerateLegalMoves()
	out := make(map[board.Move]int64, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := pos.MakeMove(m)
		out[m] = Count(pos, depth-1)
		pos.UnmakeMove(m, undo)
	}
	return out
}
