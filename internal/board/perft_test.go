package board

import "testing"

// leafCount is a minimal, uncached perft: the move generator's own
// correctness oracle. internal/perft builds cached and parallel drivers on
// top of the same MakeMove/GenerateLegalMoves/UnmakeMove cycle exercised
// here; this copy stays local to the board package so its tests never
// depend on a package that itself depends on board.
func leafCount(p *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := p.GenerateLegalMoves()
	if depth == 1 {
		return int64(moves.Len())
	}

	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := p.MakeMove(m)
		nodes += leafCount(p, depth-1)
		p.UnmakeMove(m, undo)
	}
	return nodes
}

// TestMoveGeneratorLeafCounts checks the generator against the published
// perft figures for a handful of positions chosen to stress different rules:
// the opening position, a position thick with castling/en-passant/pin
// interactions (Kiwipete), and a position built around en-passant captures
// specifically (Position 3). Depths are capped to what runs comfortably in
// a unit test; internal/perft's own tests use the same depths and add more
// positions.
func TestMoveGeneratorLeafCounts(t *testing.T) {
	cases := []struct {
		name   string
		fen    string
		counts []int64 // index i -> leaf count at depth i+1
	}{
		{
			name:   "starting position",
			fen:    StartFEN,
			counts: []int64{20, 400, 8902, 197281},
		},
		{
			name:   "kiwipete",
			fen:    "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
			counts: []int64{48, 2039, 97862},
		},
		{
			name:   "position 3 (en passant heavy)",
			fen:    "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
			counts: []int64{14, 191, 2812, 43238},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", tc.fen, err)
			}
			for i, want := range tc.counts {
				depth := i + 1
				if got := leafCount(pos, depth); got != want {
					t.Errorf("depth %d: got %d leaves, want %d", depth, got, want)
				}
			}
		})
	}
}

// TestEnPassantHorizontalPinIsIllegal covers the discovered-check corner
// case of en passant: a pawn sitting next to the pawn that just double-pushed
// looks like it has a legal capture until you notice that removing both pawns
// from the rank at once opens a straight line from an enemy rook to your own
// king.
//
// Position: black king a4, white pawn d4 (just pushed d2-d4, so the
// en-passant target is d3 and it is Black to move), black pawn e4, white
// rook h4. Capturing d3 e.p. would remove both the d4 and e4 pawns from
// rank 4, laying the h4 rook's attack straight onto the a4 king.
func TestEnPassantHorizontalPinIsIllegal(t *testing.T) {
	pos, err := ParseFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	for _, m := range pos.GenerateLegalMoves().Slice() {
		if m.IsEnPassant() {
			t.Errorf("%s should be illegal: capturing exposes the king to the rook on h4", m)
		}
	}

	// Black's only moves are the five open king steps (a3, a5, b3, b4, b5)
	// plus the quiet pawn push e4-e3 (the en passant capture itself is
	// excluded above).
	if got := leafCount(pos, 1); got != 6 {
		t.Errorf("leafCount(depth=1) = %d, want 6", got)
	}
	if got := leafCount(pos, 2); got != 94 {
		t.Errorf("leafCount(depth=2) = %d, want 94", got)
	}
}
