package game

import (
	"fmt"

	"chess-rules/chessmg"
)

// parsedToken is a SAN token after grammar-level parsing, before it is
// resolved against the legal moves of a position. Coordinates the token does
// not carry are left negative.
type parsedToken struct {
	piece     chessmg.PieceType
	castle    chessmg.MoveKind // KindCastleKingside/Queenside, KindNormal otherwise
	fromFile  int
	fromRank  int
	to        chessmg.Square
	capture   bool
	promotion chessmg.PieceType
	suffix    byte // '+', '#', or 0
}

// parseToken parses one algebraic move token. The grammar is strict: pawn
// moves always name the source file ("e4", "exd5", "e8=Q"), piece moves are
// a piece letter, an optional file and/or rank disambiguator, an optional
// capture marker, and a destination square ("Nf3", "Nbd2", "Qd1xd8"), and
// castling is the literal "O-O" or "O-O-O". The king admits a capture marker
// but never a disambiguator. A trailing '+' or '#' is recorded for the
// caller to verify against the resulting position.
func parseToken(token string) (parsedToken, error) {
	tk := parsedToken{
		fromFile: -1,
		fromRank: -1,
		to:       chessmg.NoSquare,
	}
	if token == "" {
		return tk, fmt.Errorf("%w: empty token", ErrInvalidNotation)
	}

	if last := token[len(token)-1]; last == '+' || last == '#' {
		tk.suffix = last
		token = token[:len(token)-1]
		if token == "" {
			return tk, fmt.Errorf("%w: bare %q", ErrInvalidNotation, tk.suffix)
		}
	}

	switch token {
	case "O-O":
		tk.piece = chessmg.PieceTypeKing
		tk.castle = chessmg.KindCastleKingside
		return tk, nil
	case "O-O-O":
		tk.piece = chessmg.PieceTypeKing
		tk.castle = chessmg.KindCastleQueenside
		return tk, nil
	}

	head := token[0]
	switch {
	case head >= 'a' && head <= 'h':
		return parsePawnToken(tk, token)
	case head == 'N' || head == 'B' || head == 'R' || head == 'Q' || head == 'K':
		return parsePieceToken(tk, token)
	default:
		return tk, fmt.Errorf("%w: %q does not start a move", ErrInvalidNotation, token)
	}
}

func parsePawnToken(tk parsedToken, token string) (parsedToken, error) {
	tk.piece = chessmg.PieceTypePawn
	tk.fromFile = int(token[0] - 'a')

	body := token[1:]
	var rest string
	switch {
	case len(body) >= 1 && isRank(body[0]):
		tk.to = chessmg.SquareAt(tk.fromFile, int(body[0]-'1'))
		rest = body[1:]
	case len(body) >= 3 && body[0] == 'x' && isFile(body[1]) && isRank(body[2]):
		tk.capture = true
		tk.to = chessmg.SquareAt(int(body[1]-'a'), int(body[2]-'1'))
		rest = body[3:]
	default:
		return tk, fmt.Errorf("%w: bad pawn move %q", ErrInvalidNotation, token)
	}

	if rest == "" {
		return tk, nil
	}
	if len(rest) != 2 || rest[0] != '=' {
		return tk, fmt.Errorf("%w: trailing %q in %q", ErrInvalidNotation, rest, token)
	}
	switch rest[1] {
	case 'N':
		tk.promotion = chessmg.PieceTypeKnight
	case 'B':
		tk.promotion = chessmg.PieceTypeBishop
	case 'R':
		tk.promotion = chessmg.PieceTypeRook
	case 'Q':
		tk.promotion = chessmg.PieceTypeQueen
	default:
		return tk, fmt.Errorf("%w: bad promotion piece in %q", ErrInvalidNotation, token)
	}
	return tk, nil
}

func parsePieceToken(tk parsedToken, token string) (parsedToken, error) {
	switch token[0] {
	case 'N':
		tk.piece = chessmg.PieceTypeKnight
	case 'B':
		tk.piece = chessmg.PieceTypeBishop
	case 'R':
		tk.piece = chessmg.PieceTypeRook
	case 'Q':
		tk.piece = chessmg.PieceTypeQueen
	case 'K':
		tk.piece = chessmg.PieceTypeKing
	}

	// The destination square anchors the tail of the token; whatever sits
	// between it and the piece letter must be a capture marker preceded by
	// an optional disambiguator.
	body := token[1:]
	if len(body) < 2 || !isFile(body[len(body)-2]) || !isRank(body[len(body)-1]) {
		return tk, fmt.Errorf("%w: %q has no destination square", ErrInvalidNotation, token)
	}
	tk.to = chessmg.SquareAt(int(body[len(body)-2]-'a'), int(body[len(body)-1]-'1'))

	pre := body[:len(body)-2]
	if len(pre) > 0 && pre[len(pre)-1] == 'x' {
		tk.capture = true
		pre = pre[:len(pre)-1]
	}

	if len(pre) > 0 && tk.piece == chessmg.PieceTypeKing {
		return tk, fmt.Errorf("%w: king move %q cannot be disambiguated", ErrInvalidNotation, token)
	}
	switch len(pre) {
	case 0:
	case 1:
		switch {
		case isFile(pre[0]):
			tk.fromFile = int(pre[0] - 'a')
		case isRank(pre[0]):
			tk.fromRank = int(pre[0] - '1')
		default:
			return tk, fmt.Errorf("%w: bad disambiguator in %q", ErrInvalidNotation, token)
		}
	case 2:
		if !isFile(pre[0]) || !isRank(pre[1]) {
			return tk, fmt.Errorf("%w: bad disambiguator in %q", ErrInvalidNotation, token)
		}
		tk.fromFile = int(pre[0] - 'a')
		tk.fromRank = int(pre[1] - '1')
	default:
		return tk, fmt.Errorf("%w: bad disambiguator in %q", ErrInvalidNotation, token)
	}
	return tk, nil
}

func isFile(c byte) bool { return c >= 'a' && c <= 'h' }
func isRank(c byte) bool { return c >= '1' && c <= '8' }

// resolveMove finds the unique legal move the token denotes. No match is an
// illegal move, more than one is ambiguous notation.
func resolveMove(legal []chessmg.Move, tk parsedToken) (chessmg.Move, error) {
	var match chessmg.Move
	count := 0
	for _, m := range legal {
		if tokenMatches(m, tk) {
			match = m
			count++
		}
	}
	switch count {
	case 1:
		return match, nil
	case 0:
		return 0, ErrIllegalMove
	default:
		return 0, ErrAmbiguousMove
	}
}

func tokenMatches(m chessmg.Move, tk parsedToken) bool {
	kind := m.Kind()
	if tk.castle != chessmg.KindNormal {
		return kind == tk.castle
	}
	if kind == chessmg.KindCastleKingside || kind == chessmg.KindCastleQueenside {
		return false
	}
	if m.MovedPiece().Type() != tk.piece || m.To() != tk.to {
		return false
	}
	// Capture notation is strict in both directions: "exd5" must take and
	// "d5" must not. En passant counts as a capture.
	if m.IsCapture() != tk.capture {
		return false
	}
	if m.PromotionPiece().Type() != tk.promotion {
		return false
	}
	if tk.fromFile >= 0 && m.From().File() != tk.fromFile {
		return false
	}
	if tk.fromRank >= 0 && m.From().Rank() != tk.fromRank {
		return false
	}
	return true
}
