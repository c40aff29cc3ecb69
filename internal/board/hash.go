package board

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Zobrist-style keys used to fold a position's state into a single value.
// Unlike a search engine's incrementally-maintained hash, Hash() below
// recomputes the fold from scratch on every call: there is no running key to
// keep in sync across MakeMove/UnmakeMove, so a position copied, mutated in
// place, or reached by any path always hashes the same way.
var (
	zobristPiece      [2][7][64]uint64
	zobristEnPassant  [8]uint64
	zobristCastling   [16]uint64
	zobristSideToMove uint64
)

func init() {
	initZobrist()
}

type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

// next implements xorshift64*.
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x98F107A2BEEF1234)

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}

	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.next()
	}

	for i := 0; i < 16; i++ {
		zobristCastling[i] = rng.next()
	}

	zobristSideToMove = rng.next()
}

// Hash returns a stable content-addressed hash of the position: same board,
// same side to move, same castling rights, and same en-passant target always
// fold to the same value, regardless of the path taken to reach it. It is
// recomputed fully on each call rather than maintained incrementally, so it
// stays correct across Copy, direct field mutation, and FEN round-trips alike.
//
// The halfmove clock and fullmove number are deliberately excluded: they
// don't affect which moves are legal from a position, so two positions that
// differ only in move counters are treated as the same position.
func (p *Position) Hash() uint64 {
	var fold uint64

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			bb.ForEach(func(sq Square) {
				fold ^= zobristPiece[c][pt][sq]
			})
		}
	}

	if p.EnPassant != NoSquare {
		fold ^= zobristEnPassant[p.EnPassant.FileOf()]
	}

	fold ^= zobristCastling[p.CastlingRights]

	if p.SideToMove == Black {
		fold ^= zobristSideToMove
	}

	// Run the xorshift fold through xxhash so the final value also mixes well
	// as a map/cache key, not just as a Zobrist-style equality fingerprint.
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], fold)
	return xxhash.Sum64(buf[:])
}
