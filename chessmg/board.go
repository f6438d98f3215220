package chessmg

import "math/bits"

// Piece identifies a piece together with its color.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces set bit 8, so piece & 7 is the type and piece & 8 the side.
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is the colorless piece kind, used for table lookups and SAN.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece reports White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// PieceFromType combines a side and a colorless type into a Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	p := Piece(pt)
	if color == Black {
		p |= 8
	}
	return p
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// CastlingRights is a bitmask of the four independent castling permissions.
type CastlingRights uint8

const (
	CastlingWhiteK CastlingRights = 1 << iota
	CastlingWhiteQ
	CastlingBlackK
	CastlingBlackQ
)

// Square is a board position in little-endian rank-file order: 0 = a1, 63 = h8.
type Square int

const NoSquare Square = -1

// SquareAt builds a square from zero-based file and rank indices.
func SquareAt(file, rank int) Square { return Square(rank*8 + file) }

// File returns the zero-based file index (0 = a).
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the zero-based rank index (0 = rank 1).
func (sq Square) Rank() int { return int(sq) / 8 }

func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// Home squares referenced by castling and rights bookkeeping.
const (
	sqA1 Square = 0
	sqB1 Square = 1
	sqC1 Square = 2
	sqD1 Square = 3
	sqE1 Square = 4
	sqF1 Square = 5
	sqG1 Square = 6
	sqH1 Square = 7
	sqA8 Square = 56
	sqB8 Square = 57
	sqC8 Square = 58
	sqD8 Square = 59
	sqE8 Square = 60
	sqF8 Square = 61
	sqG8 Square = 62
	sqH8 Square = 63
)

// Bitboards is a copy of one side's piece bitboards, for read-only consumers.
type Bitboards struct {
	Pawns   uint64
	Knights uint64
	Bishops uint64
	Rooks   uint64
	Queens  uint64
	Kings   uint64
	All     uint64
}

// Board holds a full position: twelve piece bitboards (indexed by color), the
// side occupancy masks, a square-indexed mailbox kept in sync with them, and
// the non-placement state (side to move, castling rights, en passant target,
// move clocks). It is a plain value type: copying it yields an independent
// scratch position, which is what the legality filter relies on.
type Board struct {
	pawns   [2]uint64
	knights [2]uint64
	bishops [2]uint64
	rooks   [2]uint64
	queens  [2]uint64
	kings   [2]uint64

	occupancy [2]uint64

	pieces [64]Piece

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square

	halfmoveClock  int
	fullmoveNumber int
}

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// SetSideToMove overrides the side to play. Apply toggles it automatically.
func (b *Board) SetSideToMove(c Color) { b.sideToMove = c }

// CastlingRights returns the current castling permission mask.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// EnPassantSquare returns the en passant target square, or NoSquare. It is
// only ever set for the ply immediately following a double pawn push.
func (b *Board) EnPassantSquare() Square { return b.enPassantSquare }

// HalfmoveClock returns the half-move count since the last pawn move or capture.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter, incremented after Black moves.
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// AllOccupancy returns a bitboard of every occupied square.
func (b *Board) AllOccupancy() uint64 { return b.occupancy[0] | b.occupancy[1] }

// ColorOccupancy returns the occupancy bitboard for one side.
func (b *Board) ColorOccupancy(c Color) uint64 { return b.occupancy[int(c)] }

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b.pieces[int(sq)] }

// KingSquare returns the square of the given side's king, or NoSquare.
func (b *Board) KingSquare(c Color) Square {
	kbb := b.kings[int(c)]
	if kbb == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(kbb))
}

// SideBitboards returns a copy of one side's piece bitboards.
func (b *Board) SideBitboards(c Color) Bitboards {
	i := int(c)
	return Bitboards{
		Pawns:   b.pawns[i],
		Knights: b.knights[i],
		Bishops: b.bishops[i],
		Rooks:   b.rooks[i],
		Queens:  b.queens[i],
		Kings:   b.kings[i],
		All:     b.occupancy[i],
	}
}

// bb returns a bitboard with only the given square set.
func bb(sq Square) uint64 { return 1 << uint(sq) }

// popLSB removes the lowest set bit from the mask and returns its index.
func popLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}

func (b *Board) pieceSet(c Color, pt PieceType) *uint64 {
	i := int(c)
	switch pt {
	case PieceTypePawn:
		return &b.pawns[i]
	case PieceTypeKnight:
		return &b.knights[i]
	case PieceTypeBishop:
		return &b.bishops[i]
	case PieceTypeRook:
		return &b.rooks[i]
	case PieceTypeQueen:
		return &b.queens[i]
	case PieceTypeKing:
		return &b.kings[i]
	}
	return nil
}

// addPiece places a piece on an empty square, updating bitboards and mailbox.
func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	b.pieces[int(sq)] = p
	c := p.Color()
	b.occupancy[int(c)] |= bb(sq)
	*b.pieceSet(c, p.Type()) |= bb(sq)
}

// removePiece clears a square and returns the piece that was there.
func (b *Board) removePiece(sq Square) Piece {
	p := b.pieces[int(sq)]
	if p == NoPiece {
		return NoPiece
	}
	b.pieces[int(sq)] = NoPiece
	c := p.Color()
	b.occupancy[int(c)] &^= bb(sq)
	*b.pieceSet(c, p.Type()) &^= bb(sq)
	return p
}

// SetPiece puts a piece on a square, replacing whatever was there.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.removePiece(sq)
	b.addPiece(sq, p)
}

// ClearSquare removes any piece from a square.
func (b *Board) ClearSquare(sq Square) { _ = b.removePiece(sq) }

// Validate checks the occupancy invariant: the twelve piece bitboards must be
// pairwise disjoint, agree with the mailbox, and union to the occupancy masks.
func (b *Board) Validate() bool {
	var occ [2]uint64
	var sets [2][7]uint64
	for sq := 0; sq < 64; sq++ {
		p := b.pieces[sq]
		if p == NoPiece {
			continue
		}
		if p.Type() == PieceTypeNone || p.Type() > PieceTypeKing {
			return false
		}
		bit := uint64(1) << uint(sq)
		ci := int(p.Color())
		if occ[ci]&bit != 0 {
			return false
		}
		occ[ci] |= bit
		sets[ci][p.Type()] |= bit
	}
	if occ != b.occupancy {
		return false
	}
	for ci := 0; ci < 2; ci++ {
		if sets[ci][PieceTypePawn] != b.pawns[ci] ||
			sets[ci][PieceTypeKnight] != b.knights[ci] ||
			sets[ci][PieceTypeBishop] != b.bishops[ci] ||
			sets[ci][PieceTypeRook] != b.rooks[ci] ||
			sets[ci][PieceTypeQueen] != b.queens[ci] ||
			sets[ci][PieceTypeKing] != b.kings[ci] {
			return false
		}
	}
	return b.occupancy[0]&b.occupancy[1] == 0
}
