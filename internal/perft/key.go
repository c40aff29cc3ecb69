// Package perft counts leaf positions reachable from a starting position at
// a fixed depth, the standard correctness oracle for a move generator.
package perft

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/hailam/chesscore/internal/board"
)

// Key is the total identity of a position as far as perft is concerned:
// every bitboard plus every other bit of state that affects which moves are
// legal from here. Two positions with equal Keys always have equal perft
// counts at any depth, regardless of the path taken to reach them. Unlike
// Position.Hash(), which folds this same state into a single 64-bit value
// for speed, Key keeps every field intact so a cache lookup can compare it
// for exact equality instead of trusting a hash not to collide.
type Key struct {
	Pieces         [2][6]board.Bitboard
	SideToMove     board.Color
	CastlingRights board.CastlingRights
	EnPassant      board.Square
}

// KeyOf extracts the cache key of a position.
func KeyOf(pos *board.Position) Key {
	return Key{
		Pieces:         pos.Pieces,
		SideToMove:     pos.SideToMove,
		CastlingRights: pos.CastlingRights,
		EnPassant:      pos.EnPassant,
	}
}

// encodedLen is the fixed width of Key.Encode's output: 12 bitboards, side,
// castling rights, en-passant square.
const encodedLen = 12*8 + 1 + 1 + 1

// Encode serializes the key to a fixed-width byte slice (each bitboard as a
// little-endian uint64, then side, castling rights and en-passant square).
// This, not a hash, is the value stored as the key in both cache tiers: a
// lookup that finds a matching entry has matched every bit of state, not a
// lossy digest of it.
func (k Key) Encode() []byte {
	buf := make([]byte, 0, encodedLen)
	for c := 0; c < 2; c++ {
		for pt := 0; pt < 6; pt++ {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(k.Pieces[c][pt]))
		}
	}
	buf = append(buf, byte(k.SideToMove), byte(k.CastlingRights), byte(k.EnPassant))
	return buf
}

// shardHash mixes the key and the search depth into a single value used
// only to pick a bucket in the in-memory cache tier. It is never treated as
// a substitute for Encode's exact equality check.
func (k Key) shardHash(depth int) uint64 {
	h := xxhash.Sum64(k.Encode())
	h ^= uint64(depth) * 0x9E3779B97F4A7C15
	return h
}
