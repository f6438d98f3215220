package chessmg

import "math/bits"

// Precomputed per-square attack masks for the leapers.
var knightMoves [64]uint64
var kingMoves [64]uint64

// pawnAttacks[color][sq] is the set of squares a pawn of that color attacks
// from sq. Read in reverse it answers "which pawns of color attack sq".
var pawnAttacks [2][64]uint64

// Directional rays for the sliders, excluding the origin square.
// Rook order: N, S, E, W. Bishop order: NE, NW, SE, SW.
var rookRays [64][4]uint64
var bishopRays [64][4]uint64

var rookDirections = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func init() {
	initLeaperTables()
	initPawnTables()
	initRayTables()
}

// leaperMask applies rank/file offsets with bounds checks, so a move can
// never wrap across the a/h file boundary.
func leaperMask(sq int, offsets [8][2]int) uint64 {
	rank, file := sq/8, sq%8
	var mask uint64
	for _, off := range offsets {
		r, f := rank+off[0], file+off[1]
		if r >= 0 && r < 8 && f >= 0 && f < 8 {
			mask |= uint64(1) << uint(r*8+f)
		}
	}
	return mask
}

func initLeaperTables() {
	for sq := 0; sq < 64; sq++ {
		knightMoves[sq] = leaperMask(sq, knightOffsets)
		kingMoves[sq] = leaperMask(sq, kingOffsets)
	}
}

func initPawnTables() {
	for sq := 0; sq < 64; sq++ {
		rank, file := sq/8, sq%8
		if rank < 7 {
			if file > 0 {
				pawnAttacks[White][sq] |= uint64(1) << uint((rank+1)*8+file-1)
			}
			if file < 7 {
				pawnAttacks[White][sq] |= uint64(1) << uint((rank+1)*8+file+1)
			}
		}
		if rank > 0 {
			if file > 0 {
				pawnAttacks[Black][sq] |= uint64(1) << uint((rank-1)*8+file-1)
			}
			if file < 7 {
				pawnAttacks[Black][sq] |= uint64(1) << uint((rank-1)*8+file+1)
			}
		}
	}
}

func initRayTables() {
	for sq := 0; sq < 64; sq++ {
		rank, file := sq/8, sq%8
		for d, dir := range rookDirections {
			var ray uint64
			for r, f := rank+dir[0], file+dir[1]; r >= 0 && r < 8 && f >= 0 && f < 8; r, f = r+dir[0], f+dir[1] {
				ray |= uint64(1) << uint(r*8+f)
			}
			rookRays[sq][d] = ray
		}
		for d, dir := range bishopDirections {
			var ray uint64
			for r, f := rank+dir[0], file+dir[1]; r >= 0 && r < 8 && f >= 0 && f < 8; r, f = r+dir[0], f+dir[1] {
				ray |= uint64(1) << uint(r*8+f)
			}
			bishopRays[sq][d] = ray
		}
	}
}

// firstBlocker picks the blocker nearest the origin. Rays toward higher
// square indices (N, E, NE, NW) scan from the low end, the rest from the top.
func firstBlocker(blockers uint64, ascending bool) int {
	if ascending {
		return bits.TrailingZeros64(blockers)
	}
	return 63 - bits.LeadingZeros64(blockers)
}

// rookAttacks returns the rook attack set from sq under the given occupancy,
// truncating each ray at (and including) its first blocker.
func rookAttacks(sq int, occ uint64) uint64 {
	var attacks uint64
	for d := 0; d < 4; d++ {
		ray := rookRays[sq][d]
		if blockers := ray & occ; blockers != 0 {
			first := firstBlocker(blockers, d == 0 || d == 2)
			ray &^= rookRays[first][d]
		}
		attacks |= ray
	}
	return attacks
}

// bishopAttacks is the diagonal counterpart of rookAttacks.
func bishopAttacks(sq int, occ uint64) uint64 {
	var attacks uint64
	for d := 0; d < 4; d++ {
		ray := bishopRays[sq][d]
		if blockers := ray & occ; blockers != 0 {
			first := firstBlocker(blockers, d == 0 || d == 1)
			ray &^= bishopRays[first][d]
		}
		attacks |= ray
	}
	return attacks
}

// KnightAttacks returns the knight move mask for a square.
func KnightAttacks(sq Square) uint64 { return knightMoves[int(sq)] }

// KingAttacks returns the king move mask for a square.
func KingAttacks(sq Square) uint64 { return kingMoves[int(sq)] }

// PawnAttacks returns the squares a pawn of the given color attacks from sq.
func PawnAttacks(c Color, sq Square) uint64 { return pawnAttacks[int(c)][int(sq)] }

// RookAttacks returns rook attacks from sq for an arbitrary occupancy mask.
func RookAttacks(sq Square, occ uint64) uint64 { return rookAttacks(int(sq), occ) }

// BishopAttacks returns bishop attacks from sq for an arbitrary occupancy mask.
func BishopAttacks(sq Square, occ uint64) uint64 { return bishopAttacks(int(sq), occ) }

// QueenAttacks returns the union of rook and bishop attacks from sq.
func QueenAttacks(sq Square, occ uint64) uint64 {
	return rookAttacks(int(sq), occ) | bishopAttacks(int(sq), occ)
}
