package chessmg

// Move packs a fully-specified move into 32 bits. A Move is immutable once
// built; it is the atomic unit applied to a Board.
type Move uint32

// Bitfield layout, LSB first.
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePieceShift   = 12 // 4 bits
	moveCaptureShift = 16 // 4 bits
	movePromoteShift = 20 // 4 bits
	moveFlagShift    = 24 // 2 bits
)

// Move flags. Promotion is carried by a non-zero promotion piece instead.
const (
	FlagNone       = 0
	FlagCastle     = 1
	FlagEnPassant  = 2
	FlagDoublePush = 3
)

// MoveKind is the classification exposed to callers: one value per special
// move shape, with promotions folded into a single kind (the promoted piece
// is queried separately).
type MoveKind uint8

const (
	KindNormal MoveKind = iota
	KindDoublePush
	KindCastleKingside
	KindCastleQueenside
	KindEnPassant
	KindPromotion
)

// NewMove assembles a Move from its components.
func NewMove(from, to Square, piece, captured, promotion Piece, flag uint8) Move {
	return Move(uint32(from&0x3F) |
		uint32(to&0x3F)<<moveToShift |
		uint32(piece&0xF)<<movePieceShift |
		uint32(captured&0xF)<<moveCaptureShift |
		uint32(promotion&0xF)<<movePromoteShift |
		uint32(flag&0x3)<<moveFlagShift)
}

// From returns the origin square.
func (m Move) From() Square { return Square(uint32(m) >> moveFromShift & 0x3F) }

// To returns the destination square.
func (m Move) To() Square { return Square(uint32(m) >> moveToShift & 0x3F) }

// MovedPiece returns the piece being moved.
func (m Move) MovedPiece() Piece { return Piece(uint32(m) >> movePieceShift & 0xF) }

// CapturedPiece returns the captured piece, or NoPiece. For en passant this
// is the passed pawn, which does not sit on the destination square.
func (m Move) CapturedPiece() Piece { return Piece(uint32(m) >> moveCaptureShift & 0xF) }

// PromotionPiece returns the piece a pawn promotes to, or NoPiece.
func (m Move) PromotionPiece() Piece { return Piece(uint32(m) >> movePromoteShift & 0xF) }

// Flags returns the raw special-move flag.
func (m Move) Flags() uint8 { return uint8(uint32(m) >> moveFlagShift & 0x3) }

// IsCapture reports whether the move captures, en passant included.
func (m Move) IsCapture() bool { return m.CapturedPiece() != NoPiece }

// Kind classifies the move.
func (m Move) Kind() MoveKind {
	switch m.Flags() {
	case FlagCastle:
		if m.To().File() > m.From().File() {
			return KindCastleKingside
		}
		return KindCastleQueenside
	case FlagEnPassant:
		return KindEnPassant
	case FlagDoublePush:
		return KindDoublePush
	}
	if m.PromotionPiece() != NoPiece {
		return KindPromotion
	}
	return KindNormal
}

// String renders the move in coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if promo := m.PromotionPiece(); promo != NoPiece {
		switch promo.Type() {
		case PieceTypeKnight:
			s += "n"
		case PieceTypeBishop:
			s += "b"
		case PieceTypeRook:
			s += "r"
		case PieceTypeQueen:
			s += "q"
		}
	}
	return s
}
