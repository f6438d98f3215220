package chessmg

// Status classifies the position for the side to move.
type Status uint8

const (
	StatusNormal Status = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
)

func (s Status) String() string {
	switch s {
	case StatusCheck:
		return "check"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	}
	return "normal"
}

// GameOver reports whether the status ends the game.
func (s Status) GameOver() bool { return s == StatusCheckmate || s == StatusStalemate }

// IsSquareAttacked reports whether any piece of the given side attacks sq
// under pseudo-legal movement rules (castling and en passant excluded).
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	return b.isSquareAttackedWithOcc(int(sq), by, b.AllOccupancy())
}

func (b *Board) isSquareAttackedWithOcc(sq int, by Color, occ uint64) bool {
	bi := int(by)
	// A pawn of 'by' attacks sq iff a pawn of the other color on sq would
	// attack the pawn's square; the reverse table answers that directly.
	if pawnAttacks[by.Other()][sq]&b.pawns[bi] != 0 {
		return true
	}
	if knightMoves[sq]&b.knights[bi] != 0 {
		return true
	}
	if kingMoves[sq]&b.kings[bi] != 0 {
		return true
	}
	if rookAttacks(sq, occ)&(b.rooks[bi]|b.queens[bi]) != 0 {
		return true
	}
	return bishopAttacks(sq, occ)&(b.bishops[bi]|b.queens[bi]) != 0
}

// AttackMask returns every square the given side currently attacks. It is
// recomputed from the position on each call, never cached.
func (b *Board) AttackMask(by Color) uint64 {
	bi := int(by)
	occ := b.AllOccupancy()
	var mask uint64
	for pieces := b.pawns[bi]; pieces != 0; {
		mask |= pawnAttacks[by][popLSB(&pieces)]
	}
	for pieces := b.knights[bi]; pieces != 0; {
		mask |= knightMoves[popLSB(&pieces)]
	}
	for pieces := b.kings[bi]; pieces != 0; {
		mask |= kingMoves[popLSB(&pieces)]
	}
	for pieces := b.bishops[bi]; pieces != 0; {
		mask |= bishopAttacks(popLSB(&pieces), occ)
	}
	for pieces := b.rooks[bi]; pieces != 0; {
		mask |= rookAttacks(popLSB(&pieces), occ)
	}
	for pieces := b.queens[bi]; pieces != 0; {
		sq := popLSB(&pieces)
		mask |= rookAttacks(sq, occ) | bishopAttacks(sq, occ)
	}
	return mask
}

// InCheck reports whether the given side's king is attacked.
func (b *Board) InCheck(c Color) bool {
	ksq := b.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return b.IsSquareAttacked(ksq, c.Other())
}

// LegalMoves returns every legal move for the side to move.
//
// Each pseudo-legal candidate is played out on a scratch copy of the board
// and kept only if the mover's king is not attacked afterwards. The copy is
// a plain value copy, so the real position is never aliased. This is
// deliberately exhaustive: pins, en passant discovered checks and king walks
// into sliders all fall out of the same simulation with no special cases.
func (b *Board) LegalMoves() []Move {
	return b.LegalMovesInto(make([]Move, 0, 64))
}

// LegalMovesInto appends the legal moves into dst (truncated first).
func (b *Board) LegalMovesInto(dst []Move) []Move {
	moves := b.PseudoLegalMovesInto(dst)
	mover := b.sideToMove

	// In-place filter; out never outruns the read index.
	out := moves[:0]
	for _, m := range moves {
		if m.Flags() == FlagCastle && !b.castlePathSafe(m) {
			continue
		}
		scratch := *b
		scratch.Apply(m)
		if !scratch.InCheck(mover) {
			out = append(out, m)
		}
	}
	return out
}

// castlePathSafe verifies the king's transit square is not attacked in the
// current position. Generation already rules out castling while in check, and
// the destination square is covered by the post-move simulation like any
// other king move.
func (b *Board) castlePathSafe(m Move) bool {
	transit := Square((int(m.From()) + int(m.To())) / 2)
	return !b.isSquareAttackedWithOcc(int(transit), b.sideToMove.Other(), b.AllOccupancy())
}

// HasLegalMoves reports whether the side to move has any legal move.
func (b *Board) HasLegalMoves() bool { return len(b.LegalMoves()) > 0 }

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool { return b.InCheck(b.sideToMove) && !b.HasLegalMoves() }

// InStalemate reports whether the side to move is stalemated.
func (b *Board) InStalemate() bool { return !b.InCheck(b.sideToMove) && !b.HasLegalMoves() }

// GameStatus classifies the current position for the side to move.
func (b *Board) GameStatus() Status {
	inCheck := b.InCheck(b.sideToMove)
	if b.HasLegalMoves() {
		if inCheck {
			return StatusCheck
		}
		return StatusNormal
	}
	if inCheck {
		return StatusCheckmate
	}
	return StatusStalemate
}

// Perft counts leaf nodes reachable in the given depth, the standard
// correctness harness for move generation.
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.LegalMoves() {
		st := b.Apply(m)
		nodes += Perft(b, depth-1)
		b.Undo(m, st)
	}
	return nodes
}

// PerftDivide returns per-root-move leaf counts, for debugging divergences.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.LegalMoves() {
		st := b.Apply(m)
		result[m] = Perft(b, depth-1)
		b.Undo(m, st)
	}
	return result
}
