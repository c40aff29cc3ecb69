package board

import "testing"

// TestGameOverPredicates covers the three terminal states IsCheckmate,
// IsStalemate, and the "neither, game continues" case all feed from the same
// HasLegalMoves/InCheck pair, so a regression in one predicate often shows up
// as a false positive in its sibling.
func TestGameOverPredicates(t *testing.T) {
	cases := []struct {
		name      string
		fen       string
		checkmate bool
		stalemate bool
	}{
		{
			name:      "back rank mate, king boxed in by its own pawns",
			fen:       "R6k/6pp/8/8/8/8/8/K7 b - - 0 1",
			checkmate: true,
		},
		{
			name:      "check but king can capture the checker",
			fen:       "6Rk/8/8/8/8/8/8/K7 b - - 0 1",
			checkmate: false,
		},
		{
			name:      "classic stalemate, king not in check but no legal move",
			fen:       "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			stalemate: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", tc.fen, err)
			}
			pos.UpdateCheckers()

			if got := pos.IsCheckmate(); got != tc.checkmate {
				t.Errorf("IsCheckmate() = %v, want %v (legal moves: %d, in check: %v)",
					got, tc.checkmate, pos.GenerateLegalMoves().Len(), pos.InCheck())
			}
			if got := pos.IsStalemate(); got != tc.stalemate {
				t.Errorf("IsStalemate() = %v, want %v (legal moves: %d, in check: %v)",
					got, tc.stalemate, pos.GenerateLegalMoves().Len(), pos.InCheck())
			}
		})
	}
}
