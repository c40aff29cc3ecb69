package board

import "testing"

func TestMoveUCIStrings(t *testing.T) {
	cases := []struct {
		m    Move
		want string
	}{
		{NewMove(E2, E4), "e2e4"},
		{NewPromotion(E7, E8, Queen), "e7e8q"},
		{NewPromotion(A2, A1, Knight), "a2a1n"},
		{NewCastling(E1, G1), "e1g1"},
		{NewCastling(E8, C8), "e8c8"},
		{NewEnPassant(D5, E6), "d5e6"},
		{NoMove, "0000"},
	}
	for _, tc := range cases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("Move.String() = %q, want %q", got, tc.want)
		}
	}
}

func TestParseMoveDetectsSpecialMoves(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	m, err := ParseMove("e1g1", pos)
	if err != nil {
		t.Fatalf("ParseMove(e1g1): %v", err)
	}
	if !m.IsCastling() {
		t.Errorf("e1g1 with king on e1 should parse as castling")
	}

	m, err = ParseMove("e2a6", pos)
	if err != nil {
		t.Fatalf("ParseMove(e2a6): %v", err)
	}
	if m.IsCastling() || m.IsEnPassant() || m.IsPromotion() {
		t.Errorf("e2a6 should parse as a plain move, got flag %d", m.Flag()>>14)
	}

	if _, err := ParseMove("e7e8x", pos); err == nil {
		t.Error("expected error for bad promotion letter")
	}
	if _, err := ParseMove("e9", pos); err == nil {
		t.Error("expected error for truncated move string")
	}
}

func TestParseMoveEnPassant(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err := ParseMove("e5f6", pos)
	if err != nil {
		t.Fatalf("ParseMove(e5f6): %v", err)
	}
	if !m.IsEnPassant() {
		t.Error("e5f6 onto the en-passant target should parse as en passant")
	}
}
