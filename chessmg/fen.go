package chessmg

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoard returns a board set up in the standard initial position.
func NewBoard() *Board {
	b, err := ParseFEN(FENStartPos)
	if err != nil {
		panic("chessmg: start position failed to parse: " + err.Error())
	}
	return b
}

// pieceFromChar converts a FEN character to the corresponding Piece constant.
func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// charFromPiece converts a Piece constant to its FEN character representation.
func charFromPiece(p Piece) byte {
	const white = " PNBRQK"
	const black = " pnbrqk"
	pt := p.Type()
	if pt == PieceTypeNone || pt > PieceTypeKing {
		return '?'
	}
	if p.Color() == Black {
		return black[pt]
	}
	return white[pt]
}

// FENChar returns the FEN letter for the piece, or '?' for NoPiece.
func (p Piece) FENChar() byte {
	if p == NoPiece {
		return '?'
	}
	return charFromPiece(p)
}

// ParseFEN parses a full FEN string into a new board. All six fields are
// required. Errors wrap ErrInvalidFen.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w: expected 6 fields, got %d", ErrInvalidFen, len(fields))
	}

	board := &Board{enPassantSquare: NoSquare}

	if err := board.parsePlacementField(fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		board.sideToMove = White
	case "b":
		board.sideToMove = Black
	default:
		return nil, fmt.Errorf("%w: side to move must be 'w' or 'b', got %q", ErrInvalidFen, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				board.castlingRights |= CastlingWhiteK
			case 'Q':
				board.castlingRights |= CastlingWhiteQ
			case 'k':
				board.castlingRights |= CastlingBlackK
			case 'q':
				board.castlingRights |= CastlingBlackQ
			default:
				return nil, fmt.Errorf("%w: bad castling rights character %q", ErrInvalidFen, ch)
			}
		}
	}

	if fields[3] != "-" {
		sq, err := parseSquareName(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: bad en passant square %q", ErrInvalidFen, fields[3])
		}
		if r := sq.Rank(); r != 2 && r != 5 {
			return nil, fmt.Errorf("%w: en passant square %s not on rank 3 or 6", ErrInvalidFen, sq)
		}
		board.enPassantSquare = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("%w: bad halfmove clock %q", ErrInvalidFen, fields[4])
	}
	board.halfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return nil, fmt.Errorf("%w: bad fullmove number %q", ErrInvalidFen, fields[5])
	}
	board.fullmoveNumber = fullmove

	if err := board.checkKings(); err != nil {
		return nil, err
	}
	return board, nil
}

// ParsePlacement builds a board from the placement field of a FEN string
// alone. The remaining state defaults to White to move, all four castling
// rights, no en passant target, clocks at the start of a game. Rights that
// the placement cannot support (king or rook off its home square) are
// dropped.
func ParsePlacement(placement string) (*Board, error) {
	board := &Board{
		enPassantSquare: NoSquare,
		castlingRights:  CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ,
		fullmoveNumber:  1,
	}
	if err := board.parsePlacementField(placement); err != nil {
		return nil, err
	}
	if err := board.checkKings(); err != nil {
		return nil, err
	}
	board.trimCastlingRights()
	return board, nil
}

func (b *Board) parsePlacementField(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: placement has %d ranks, want 8", ErrInvalidFen, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i // FEN lists rank 8 first
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return fmt.Errorf("%w: unrecognized piece character %q", ErrInvalidFen, ch)
			}
			if file >= 8 {
				return fmt.Errorf("%w: rank %d overflows 8 files", ErrInvalidFen, rank+1)
			}
			b.addPiece(SquareAt(file, rank), piece)
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d covers %d files, want 8", ErrInvalidFen, rank+1, file)
		}
	}
	return nil
}

func (b *Board) checkKings() error {
	for _, c := range []Color{White, Black} {
		kings := b.kings[int(c)]
		if kings == 0 {
			return fmt.Errorf("%w: %s has no king", ErrInvalidFen, c)
		}
		if kings&(kings-1) != 0 {
			return fmt.Errorf("%w: %s has more than one king", ErrInvalidFen, c)
		}
	}
	return nil
}

// trimCastlingRights drops rights whose king or rook is not on its home square.
func (b *Board) trimCastlingRights() {
	if b.pieces[sqE1] != WhiteKing {
		b.castlingRights &^= CastlingWhiteK | CastlingWhiteQ
	}
	if b.pieces[sqH1] != WhiteRook {
		b.castlingRights &^= CastlingWhiteK
	}
	if b.pieces[sqA1] != WhiteRook {
		b.castlingRights &^= CastlingWhiteQ
	}
	if b.pieces[sqE8] != BlackKing {
		b.castlingRights &^= CastlingBlackK | CastlingBlackQ
	}
	if b.pieces[sqH8] != BlackRook {
		b.castlingRights &^= CastlingBlackK
	}
	if b.pieces[sqA8] != BlackRook {
		b.castlingRights &^= CastlingBlackQ
	}
}

// parseSquareName converts algebraic square names like "e4" to a Square.
func parseSquareName(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("%w: bad square name %q", ErrInvalidFen, s)
	}
	return SquareAt(int(s[0]-'a'), int(s[1]-'1')), nil
}

// FEN serializes the full position as a six-field FEN string.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.pieces[rank*8+file]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.castlingRights&CastlingWhiteK != 0 {
			sb.WriteByte('K')
		}
		if b.castlingRights&CastlingWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if b.castlingRights&CastlingBlackK != 0 {
			sb.WriteByte('k')
		}
		if b.castlingRights&CastlingBlackQ != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.enPassantSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	return sb.String()
}
