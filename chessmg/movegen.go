package chessmg

// PseudoLegalMoves returns every move obeying piece movement rules and
// blockers, without king-safety filtering. Castling candidates require the
// right, an empty path, the rook at home and the king out of check, but
// attacked-path checks are left to the legality filter. Enumeration order is
// unspecified.
func (b *Board) PseudoLegalMoves() []Move {
	return b.PseudoLegalMovesInto(make([]Move, 0, 64))
}

// PseudoLegalMovesInto appends pseudo-legal moves for the side to move into
// dst (truncated first) and returns it.
func (b *Board) PseudoLegalMovesInto(dst []Move) []Move {
	moves := dst[:0]
	side := b.sideToMove
	us := int(side)
	ownOcc := b.occupancy[us]
	oppOcc := b.occupancy[1-us]
	allOcc := ownOcc | oppOcc

	pawns := b.pawns[us]
	for pawns != 0 {
		moves = b.pawnMovesInto(moves, popLSB(&pawns), side, oppOcc, allOcc)
	}

	knights := b.knights[us]
	for knights != 0 {
		from := popLSB(&knights)
		moves = b.leaperMovesInto(moves, from, knightMoves[from]&^ownOcc, oppOcc)
	}

	bishops := b.bishops[us]
	for bishops != 0 {
		from := popLSB(&bishops)
		moves = b.leaperMovesInto(moves, from, bishopAttacks(from, allOcc)&^ownOcc, oppOcc)
	}

	rooks := b.rooks[us]
	for rooks != 0 {
		from := popLSB(&rooks)
		moves = b.leaperMovesInto(moves, from, rookAttacks(from, allOcc)&^ownOcc, oppOcc)
	}

	queens := b.queens[us]
	for queens != 0 {
		from := popLSB(&queens)
		targets := (rookAttacks(from, allOcc) | bishopAttacks(from, allOcc)) &^ ownOcc
		moves = b.leaperMovesInto(moves, from, targets, oppOcc)
	}

	if kbb := b.kings[us]; kbb != 0 {
		from := popLSB(&kbb)
		moves = b.leaperMovesInto(moves, from, kingMoves[from]&^ownOcc, oppOcc)
		moves = b.castlingMovesInto(moves, side)
	}

	return moves
}

// leaperMovesInto emits one move per set bit of targets; the same shape
// serves knights, sliders (pre-truncated targets) and plain king steps.
func (b *Board) leaperMovesInto(moves []Move, from int, targets, oppOcc uint64) []Move {
	moved := b.pieces[from]
	for targets != 0 {
		to := popLSB(&targets)
		captured := NoPiece
		if oppOcc>>uint(to)&1 != 0 {
			captured = b.pieces[to]
		}
		moves = append(moves, NewMove(Square(from), Square(to), moved, captured, NoPiece, FlagNone))
	}
	return moves
}

// pawnMovesInto handles pushes, double pushes, captures, en passant and
// promotion expansion for one pawn. Pawn geometry is computed per call from
// occupancy rather than a static move table: pushes depend on blockers and
// captures on enemy occupancy.
func (b *Board) pawnMovesInto(moves []Move, from int, side Color, oppOcc, allOcc uint64) []Move {
	moved := b.pieces[from]
	push, startRank, promoRank := 8, 1, 7
	if side == Black {
		push, startRank, promoRank = -8, 6, 0
	}

	one := from + push
	if allOcc>>uint(one)&1 == 0 {
		if one/8 == promoRank {
			moves = appendPromotions(moves, Square(from), Square(one), moved, NoPiece, side)
		} else {
			moves = append(moves, NewMove(Square(from), Square(one), moved, NoPiece, NoPiece, FlagNone))
			if from/8 == startRank {
				two := one + push
				if allOcc>>uint(two)&1 == 0 {
					moves = append(moves, NewMove(Square(from), Square(two), moved, NoPiece, NoPiece, FlagDoublePush))
				}
			}
		}
	}

	caps := pawnAttacks[side][from]
	targets := caps & oppOcc
	for targets != 0 {
		to := popLSB(&targets)
		captured := b.pieces[to]
		if to/8 == promoRank {
			moves = appendPromotions(moves, Square(from), Square(to), moved, captured, side)
		} else {
			moves = append(moves, NewMove(Square(from), Square(to), moved, captured, NoPiece, FlagNone))
		}
	}

	if b.enPassantSquare != NoSquare && caps&bb(b.enPassantSquare) != 0 {
		passed := PieceFromType(side.Other(), PieceTypePawn)
		moves = append(moves, NewMove(Square(from), b.enPassantSquare, moved, passed, NoPiece, FlagEnPassant))
	}

	return moves
}

func appendPromotions(moves []Move, from, to Square, moved, captured Piece, side Color) []Move {
	for _, pt := range [4]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight} {
		moves = append(moves, NewMove(from, to, moved, captured, PieceFromType(side, pt), FlagNone))
	}
	return moves
}

// castlingMovesInto adds castle candidates when the right is held, the squares
// between king and rook are empty, the rook is still at home and the king is
// not in check. Whether the king passes through or lands on an attacked
// square is the legality filter's concern.
func (b *Board) castlingMovesInto(moves []Move, side Color) []Move {
	if b.InCheck(side) {
		return moves
	}
	if side == White {
		if b.castlingRights&CastlingWhiteK != 0 &&
			b.pieces[sqF1] == NoPiece && b.pieces[sqG1] == NoPiece && b.pieces[sqH1] == WhiteRook {
			moves = append(moves, NewMove(sqE1, sqG1, WhiteKing, NoPiece, NoPiece, FlagCastle))
		}
		if b.castlingRights&CastlingWhiteQ != 0 &&
			b.pieces[sqD1] == NoPiece && b.pieces[sqC1] == NoPiece && b.pieces[sqB1] == NoPiece &&
			b.pieces[sqA1] == WhiteRook {
			moves = append(moves, NewMove(sqE1, sqC1, WhiteKing, NoPiece, NoPiece, FlagCastle))
		}
		return moves
	}
	if b.castlingRights&CastlingBlackK != 0 &&
		b.pieces[sqF8] == NoPiece && b.pieces[sqG8] == NoPiece && b.pieces[sqH8] == BlackRook {
		moves = append(moves, NewMove(sqE8, sqG8, BlackKing, NoPiece, NoPiece, FlagCastle))
	}
	if b.castlingRights&CastlingBlackQ != 0 &&
		b.pieces[sqD8] == NoPiece && b.pieces[sqC8] == NoPiece && b.pieces[sqB8] == NoPiece &&
		b.pieces[sqA8] == BlackRook {
		moves = append(moves, NewMove(sqE8, sqC8, BlackKing, NoPiece, NoPiece, FlagCastle))
	}
	return moves
}
