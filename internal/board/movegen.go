package board

// GenerateLegalMoves generates all legal moves for the position.
func (p *Position) GenerateLegalMoves() *MoveList {
	ml := NewMoveList()
	p.AppendLegalMoves(ml)
	return ml
}

// AppendLegalMoves appends every legal move for the side to move to dst,
// for callers that reuse a move buffer across positions.
func (p *Position) AppendLegalMoves(dst *MoveList) {
	pseudo := NewMoveList()
	p.generateAllMoves(pseudo)
	p.filterLegalMoves(pseudo, dst)
}

// generateAllMoves generates all pseudo-legal moves.
func (p *Position) generateAllMoves(ml *MoveList) {
	us := p.SideToMove
	them := us.Other()
	occupied := p.AllOccupied
	enemies := p.Occupied[them]

	// Pawn moves
	p.generatePawnMoves(ml, us, enemies, occupied)

	// Knight moves
	knights := p.Pieces[us][Knight]
	for knights != 0 {
		from := knights.PopLSB()
		attacks := KnightAttacks(from) & ^p.Occupied[us]
		for attacks != 0 {
			to := attacks.PopLSB()
			ml.Add(NewMove(from, to))
		}
	}

	// Bishop moves
	bishops := p.Pieces[us][Bishop]
	for bishops != 0 {
		from := bishops.PopLSB()
		attacks := BishopAttacks(from, occupied) & ^p.Occupied[us]
		for attacks != 0 {
			to := attacks.PopLSB()
			ml.Add(NewMove(from, to))
		}
	}

	// Rook moves
	rooks := p.Pieces[us][Rook]
	for rooks != 0 {
		from := rooks.PopLSB()
		attacks := RookAttacks(from, occupied) & ^p.Occupied[us]
		for attacks != 0 {
			to := attacks.PopLSB()
			ml.Add(NewMove(from, to))
		}
	}

	// Queen moves
	queens := p.Pieces[us][Queen]
	for queens != 0 {
		from := queens.PopLSB()
		attacks := QueenAttacks(from, occupied) & ^p.Occupied[us]
		for attacks != 0 {
			to := attacks.PopLSB()
			ml.Add(NewMove(from, to))
		}
	}

	// King moves
	p.generateKingMoves(ml, us)

	// Castling
	p.generateCastlingMoves(ml, us)
}

// generatePawnMoves generates all pawn moves.
func (p *Position) generatePawnMoves(ml *MoveList, us Color, enemies, occupied Bitboard) {
	pawns := p.Pieces[us][Pawn]
	empty := ^occupied

	pushDir := 8 * us.ForwardStep()
	promotionRank := RankMask[us.PromotionRank()]
	// Rank a single push lands on from the start rank; only pushes through
	// here may continue to a double push.
	jumpRank := RankMask[us.PawnStartRank()+Rank(us.ForwardStep())]

	var push1, push2, attackL, attackR Bitboard
	if us == White {
		push1 = pawns.North() & empty
		push2 = (push1 & jumpRank).North() & empty
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & jumpRank).South() & empty
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
	}

	// Single pushes (non-promotion)
	nonPromo := push1 & ^promotionRank
	for nonPromo != 0 {
		to := nonPromo.PopLSB()
		from := Square(int(to) - pushDir)
		ml.Add(NewMove(from, to))
	}

	// Double pushes
	for push2 != 0 {
		to := push2.PopLSB()
		from := Square(int(to) - 2*pushDir)
		ml.Add(NewMove(from, to))
	}

	// Captures (non-promotion)
	nonPromoL := attackL & ^promotionRank
	for nonPromoL != 0 {
		to := nonPromoL.PopLSB()
		from := Square(int(to) - pushDir + 1)
		ml.Add(NewMove(from, to))
	}

	nonPromoR := attackR & ^promotionRank
	for nonPromoR != 0 {
		to := nonPromoR.PopLSB()
		from := Square(int(to) - pushDir - 1)
		ml.Add(NewMove(from, to))
	}

	// Promotions
	promoPush := push1 & promotionRank
	for promoPush != 0 {
		to := promoPush.PopLSB()
		from := Square(int(to) - pushDir)
		addPromotions(ml, from, to)
	}

	promoL := attackL & promotionRank
	for promoL != 0 {
		to := promoL.PopLSB()
		from := Square(int(to) - pushDir + 1)
		addPromotions(ml, from, to)
	}

	promoR := attackR & promotionRank
	for promoR != 0 {
		to := promoR.PopLSB()
		from := Square(int(to) - pushDir - 1)
		addPromotions(ml, from, to)
	}

	// En passant
	if p.EnPassant != NoSquare {
		epBB := SquareBB(p.EnPassant)
		var epAttackers Bitboard
		if us == White {
			epAttackers = (epBB.SouthWest() | epBB.SouthEast()) & pawns
		} else {
			epAttackers = (epBB.NorthWest() | epBB.NorthEast()) & pawns
		}
		for epAttackers != 0 {
			from := epAttackers.PopLSB()
			ml.Add(NewEnPassant(from, p.EnPassant))
		}
	}
}

// addPromotions adds all four promotion moves.
func addPromotions(ml *MoveList, from, to Square) {
	ml.Add(NewPromotion(from, to, Queen))
	ml.Add(NewPromotion(from, to, Rook))
	ml.Add(NewPromotion(from, to, Bishop))
	ml.Add(NewPromotion(from, to, Knight))
}

// generateKingMoves generates king moves (non-castling).
func (p *Position) generateKingMoves(ml *MoveList, us Color) {
	from := p.KingSquare[us]
	attacks := KingAttacks(from) & ^p.Occupied[us]

	for attacks != 0 {
		to := attacks.PopLSB()
		ml.Add(NewMove(from, to))
	}
}

// generateCastlingMoves generates castling moves. Both colors follow the
// same shape on their home rank: the squares between king and rook must be
// empty, and no square the king stands on or crosses may be attacked.
func (p *Position) generateCastlingMoves(ml *MoveList, us Color) {
	them := us.Other()
	home := us.HomeRank()
	kingFrom := SquareOf(FE, home)

	// Kingside (O-O)
	if p.CastlingRights.CanCastle(us, true) {
		fSq := SquareOf(FF, home)
		gSq := SquareOf(FG, home)
		if p.AllOccupied&(SquareBB(fSq)|SquareBB(gSq)) == 0 &&
			!p.IsSquareAttacked(kingFrom, them) &&
			!p.IsSquareAttacked(fSq, them) &&
			!p.IsSquareAttacked(gSq, them) {
			ml.Add(NewCastling(kingFrom, gSq))
		}
	}

	// Queenside (O-O-O)
	if p.CastlingRights.CanCastle(us, false) {
		bSq := SquareOf(FB, home)
		cSq := SquareOf(FC, home)
		dSq := SquareOf(FD, home)
		if p.AllOccupied&(SquareBB(bSq)|SquareBB(cSq)|SquareBB(dSq)) == 0 &&
			!p.IsSquareAttacked(kingFrom, them) &&
			!p.IsSquareAttacked(dSq, them) &&
			!p.IsSquareAttacked(cSq, them) {
			ml.Add(NewCastling(kingFrom, cSq))
		}
	}
}

// filterLegalMoves reduces a pseudo-legal move list to the legal subset.
//
// A move is legal iff: (a) if the king is moving, its destination is not
// attacked once the king itself is removed from the blocker set; (b) if the
// mover is pinned to the king, its destination stays on the pin ray; and
// (c) while in check, the destination addresses every checker - captures it
// or, for a single sliding checker, blocks the line to the king. Double check
// allows only king moves, since no single move can address two checkers at
// once.
func (p *Position) filterLegalMoves(ml, result *MoveList) {
	us := p.SideToMove
	them := us.Other()
	ksq := p.KingSquare[us]
	checkers := p.Checkers

	if checkers.PopCount() >= 2 {
		for i := 0; i < ml.Len(); i++ {
			m := ml.Get(i)
			if m.From() == ksq && p.kingMoveIsLegal(m, them) {
				result.Add(m)
			}
		}
		return
	}

	checkMask := Universe
	if checkers != 0 {
		checkerSq := checkers.LSB()
		checkMask = SquareBB(checkerSq) | Between(checkerSq, ksq)
	}

	var pinRay [64]Bitboard
	for sq := A1; sq <= H8; sq++ {
		pinRay[sq] = Universe
	}
	for _, pin := range p.ComputePins() {
		pinRay[pin.Pinned] = pin.Ray
	}

	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		from := m.From()

		if from == ksq {
			if m.IsCastling() || p.kingMoveIsLegal(m, them) {
				result.Add(m)
			}
			continue
		}

		if m.IsEnPassant() {
			if p.enPassantIsLegal(m, checkMask, pinRay[from]) {
				result.Add(m)
			}
			continue
		}

		if (checkMask&pinRay[from])&SquareBB(m.To()) != 0 {
			result.Add(m)
		}
	}
}

// kingMoveIsLegal reports whether a king move's destination is safe. The
// king's own square is removed from occupancy first, so a slider that was
// only stopped by the king itself still covers the square behind it.
func (p *Position) kingMoveIsLegal(m Move, them Color) bool {
	return p.AttacksByWithKingRemoved(them, m.From())&SquareBB(m.To()) == 0
}

// enPassantIsLegal validates an en passant capture against both the ordinary
// check/pin mask and the en-passant-specific discovered check: capturing
// removes two pawns from the same rank at once, which can open a rook or
// queen's line straight to the king even though neither pawn alone was pinned.
func (p *Position) enPassantIsLegal(m Move, checkMask, pinMask Bitboard) bool {
	us := p.SideToMove
	them := us.Other()
	from := m.From()
	to := m.To()

	var capturedSq Square
	if us == White {
		capturedSq = to - 8
	} else {
		capturedSq = to + 8
	}

	if checkMask&(SquareBB(to)|SquareBB(capturedSq)) == 0 {
		return false
	}
	if pinMask&SquareBB(to) == 0 {
		return false
	}

	ksq := p.KingSquare[us]
	if ksq.RankOf() == from.RankOf() {
		occ := (p.AllOccupied &^ SquareBB(from) &^ SquareBB(capturedSq)) | SquareBB(to)
		attackers := RookAttacks(ksq, occ) & (p.Pieces[them][Rook] | p.Pieces[them][Queen])
		if attackers&RankMask[ksq.RankOf()] != 0 {
			return false
		}
	}

	return true
}

// castleRookSquares maps a castling king move to the rook's origin and
// destination on the same rank: h-file to f-file kingside, a-file to d-file
// queenside.
func castleRookSquares(kingFrom, kingTo Square) (rookFrom, rookTo Square) {
	rank := kingFrom.RankOf()
	if kingTo > kingFrom {
		return SquareOf(FH, rank), SquareOf(FF, rank)
	}
	return SquareOf(FA, rank), SquareOf(FD, rank)
}

// MakeMove applies a move to the position and returns the undo information
// needed to reverse it. The position's hash is not touched here: Hash() is
// always recomputed on demand, so there is nothing to keep in sync.
func (p *Position) MakeMove(m Move) UndoInfo {
	undo := UndoInfo{
		CapturedPiece:  NoPiece,
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
		HalfMoveClock:  p.HalfMoveClock,
		Checkers:       p.Checkers,
		Valid:          false,
	}

	us := p.SideToMove
	them := us.Other()
	from := m.From()
	to := m.To()
	piece := p.PieceAt(from)

	if piece == NoPiece {
		return undo
	}

	undo.Valid = true
	pt := piece.Type()

	p.EnPassant = NoSquare

	if m.IsEnPassant() {
		var capturedSq Square
		if us == White {
			capturedSq = to - 8
		} else {
			capturedSq = to + 8
		}
		undo.CapturedSquare = capturedSq
		undo.CapturedPiece = p.removePiece(capturedSq)
	} else if captured := p.PieceAt(to); captured != NoPiece {
		undo.CapturedSquare = to
		undo.CapturedPiece = captured
		p.removePiece(to)
	}

	p.movePiece(from, to)

	if m.IsPromotion() {
		promoPt := m.Promotion()
		p.Pieces[us][Pawn] &^= SquareBB(to)
		p.Pieces[us][promoPt] |= SquareBB(to)
	}

	if m.IsCastling() {
		rookFrom, rookTo := castleRookSquares(from, to)
		p.movePiece(rookFrom, rookTo)
	}

	if pt == King {
		if us == White {
			p.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			p.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}

	if from == A1 || to == A1 {
		p.CastlingRights &^= WhiteQueenSideCastle
	}
	if from == H1 || to == H1 {
		p.CastlingRights &^= WhiteKingSideCastle
	}
	if from == A8 || to == A8 {
		p.CastlingRights &^= BlackQueenSideCastle
	}
	if from == H8 || to == H8 {
		p.CastlingRights &^= BlackKingSideCastle
	}

	if pt == Pawn && abs(int(to)-int(from)) == 16 {
		p.EnPassant = Square((int(from) + int(to)) / 2)
	}

	if pt == Pawn || undo.CapturedPiece != NoPiece {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	if us == Black {
		p.FullMoveNumber++
	}

	p.SideToMove = them
	p.UpdateCheckers()

	return undo
}

// UnmakeMove reverses a MakeMove call using its undo information.
func (p *Position) UnmakeMove(m Move, undo UndoInfo) {
	them := p.SideToMove
	us := them.Other()
	from := m.From()
	to := m.To()

	p.CastlingRights = undo.CastlingRights
	p.EnPassant = undo.EnPassant
	p.HalfMoveClock = undo.HalfMoveClock
	p.Checkers = undo.Checkers
	p.SideToMove = us

	if us == Black {
		p.FullMoveNumber--
	}

	if m.IsPromotion() {
		promoPt := m.Promotion()
		p.Pieces[us][promoPt] &^= SquareBB(to)
		p.Pieces[us][Pawn] |= SquareBB(to)
	}

	p.movePiece(to, from)

	if m.IsCastling() {
		rookFrom, rookTo := castleRookSquares(from, to)
		p.movePiece(rookTo, rookFrom)
	}

	if undo.CapturedPiece != NoPiece {
		p.setPiece(undo.CapturedPiece, undo.CapturedSquare)
	}
}

// HasLegalMoves returns true if the side to move has any legal moves.
func (p *Position) HasLegalMoves() bool {
	return p.GenerateLegalMoves().Len() > 0
}

// IsCheckmate returns true if the position is checkmate.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate returns true if the position is stalemate.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}

// IsDraw returns true if the position is a draw (stalemate, 50-move, insufficient material).
func (p *Position) IsDraw() bool {
	if p.IsStalemate() {
		return true
	}
	if p.HalfMoveClock >= 100 {
		return true
	}
	return p.IsInsufficientMaterial()
}

// IsInsufficientMaterial returns true if neither side can checkmate.
func (p *Position) IsInsufficientMaterial() bool {
	// If there are any pawns, rooks, or queens, sufficient material
	if p.Pieces[White][Pawn]|p.Pieces[Black][Pawn] != 0 ||
		p.Pieces[White][Rook]|p.Pieces[Black][Rook] != 0 ||
		p.Pieces[White][Queen]|p.Pieces[Black][Queen] != 0 {
		return false
	}

	// Count minor pieces
	wKnights := p.Pieces[White][Knight].PopCount()
	wBishops := p.Pieces[White][Bishop].PopCount()
	bKnights := p.Pieces[Black][Knight].PopCount()
	bBishops := p.Pieces[Black][Bishop].PopCount()

	// K vs K
	if wKnights+wBishops+bKnights+bBishops == 0 {
		return true
	}

	// K+minor vs K
	if wKnights+wBishops <= 1 && bKnights+bBishops == 0 {
		return true
	}
	if bKnights+bBishops <= 1 && wKnights+wBishops == 0 {
		return true
	}

	return false
}
