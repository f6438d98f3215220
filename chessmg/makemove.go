package chessmg

// MoveState snapshots the state a move destroys, so Undo can restore it
// exactly. Castling rights and the en passant target are recorded rather than
// recomputed: they are not always derivable from the resulting position.
type MoveState struct {
	captured      Piece
	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	rookFrom      Square
	rookTo        Square
}

// rookCastleSquares maps a castling king destination to the rook's move.
func rookCastleSquares(to Square) (from, dest Square) {
	switch to {
	case sqG1:
		return sqH1, sqF1
	case sqC1:
		return sqA1, sqD1
	case sqG8:
		return sqH8, sqF8
	case sqC8:
		return sqA8, sqD8
	}
	return NoSquare, NoSquare
}

// Apply mutates the board by the given move: origin cleared, destination set,
// any captured piece removed, and for the special kinds the rook shifted
// (castling), the passed pawn removed (en passant) or the pawn replaced by
// the promoted piece. Castling rights, en passant target, clocks and side to
// move are updated. The move must come from this position's move generator;
// Apply does not re-check legality.
func (b *Board) Apply(m Move) MoveState {
	st := MoveState{
		captured:      NoPiece,
		prevCastling:  b.castlingRights,
		prevEnPassant: b.enPassantSquare,
		prevHalfmove:  b.halfmoveClock,
		prevFullmove:  b.fullmoveNumber,
		rookFrom:      NoSquare,
		rookTo:        NoSquare,
	}

	from, to := m.From(), m.To()
	moved := m.MovedPiece()
	mover := b.sideToMove

	b.enPassantSquare = NoSquare

	switch m.Flags() {
	case FlagEnPassant:
		st.captured = b.removePiece(passedPawnSquare(to, mover))
	case FlagCastle:
		rFrom, rTo := rookCastleSquares(to)
		rook := b.removePiece(rFrom)
		b.addPiece(rTo, rook)
		st.rookFrom, st.rookTo = rFrom, rTo
	case FlagDoublePush:
		b.enPassantSquare = Square((int(from) + int(to)) / 2)
	default:
		if m.CapturedPiece() != NoPiece {
			st.captured = b.removePiece(to)
		}
	}

	b.removePiece(from)
	if promo := m.PromotionPiece(); promo != NoPiece {
		b.addPiece(to, promo)
	} else {
		b.addPiece(to, moved)
	}

	b.updateCastlingRights(moved, from, to, st.captured)

	if moved.Type() == PieceTypePawn || st.captured != NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if mover == Black {
		b.fullmoveNumber++
	}
	b.sideToMove = mover.Other()

	return st
}

// Undo reverses the most recent Apply of m, restoring the position, castling
// rights, en passant target, clocks and side to move bit-for-bit.
func (b *Board) Undo(m Move, st MoveState) {
	b.sideToMove = b.sideToMove.Other()
	mover := b.sideToMove

	from, to := m.From(), m.To()

	if st.rookFrom != NoSquare {
		rook := b.removePiece(st.rookTo)
		b.addPiece(st.rookFrom, rook)
	}

	b.removePiece(to)
	if m.PromotionPiece() != NoPiece {
		b.addPiece(from, PieceFromType(mover, PieceTypePawn))
	} else {
		b.addPiece(from, m.MovedPiece())
	}

	if st.captured != NoPiece {
		capSq := to
		if m.Flags() == FlagEnPassant {
			capSq = passedPawnSquare(to, mover)
		}
		b.addPiece(capSq, st.captured)
	}

	b.castlingRights = st.prevCastling
	b.enPassantSquare = st.prevEnPassant
	b.halfmoveClock = st.prevHalfmove
	b.fullmoveNumber = st.prevFullmove
}

// passedPawnSquare locates the pawn an en passant capture removes: one rank
// behind the destination, from the mover's point of view.
func passedPawnSquare(to Square, mover Color) Square {
	if mover == White {
		return to - 8
	}
	return to + 8
}

// updateCastlingRights clears rights when a king or rook leaves its home
// square, or when a rook is captured on one.
func (b *Board) updateCastlingRights(moved Piece, from, to Square, captured Piece) {
	switch moved {
	case WhiteKing:
		b.castlingRights &^= CastlingWhiteK | CastlingWhiteQ
	case BlackKing:
		b.castlingRights &^= CastlingBlackK | CastlingBlackQ
	case WhiteRook:
		if from == sqA1 {
			b.castlingRights &^= CastlingWhiteQ
		} else if from == sqH1 {
			b.castlingRights &^= CastlingWhiteK
		}
	case BlackRook:
		if from == sqA8 {
			b.castlingRights &^= CastlingBlackQ
		} else if from == sqH8 {
			b.castlingRights &^= CastlingBlackK
		}
	}
	if captured.Type() == PieceTypeRook {
		switch to {
		case sqA1:
			b.castlingRights &^= CastlingWhiteQ
		case sqH1:
			b.castlingRights &^= CastlingWhiteK
		case sqA8:
			b.castlingRights &^= CastlingBlackQ
		case sqH8:
			b.castlingRights &^= CastlingBlackK
		}
	}
}
