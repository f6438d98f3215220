package game

import (
	"strings"

	"chess-rules/chessmg"
)

var pieceLetters = map[chessmg.PieceType]string{
	chessmg.PieceTypeKnight: "N",
	chessmg.PieceTypeBishop: "B",
	chessmg.PieceTypeRook:   "R",
	chessmg.PieceTypeQueen:  "Q",
	chessmg.PieceTypeKing:   "K",
}

// encodeSAN renders a move in standard algebraic notation. legal is the full
// legal move list of the position the move is played from, used to pick the
// minimal disambiguator; result is the status of the position after the move,
// used for the '+' or '#' suffix.
func encodeSAN(m chessmg.Move, legal []chessmg.Move, result chessmg.Status) string {
	var sb strings.Builder

	switch m.Kind() {
	case chessmg.KindCastleKingside:
		sb.WriteString("O-O")
	case chessmg.KindCastleQueenside:
		sb.WriteString("O-O-O")
	default:
		pt := m.MovedPiece().Type()
		if pt == chessmg.PieceTypePawn {
			if m.IsCapture() {
				sb.WriteByte('a' + byte(m.From().File()))
				sb.WriteByte('x')
			}
			sb.WriteString(m.To().String())
			if promo := m.PromotionPiece().Type(); promo != chessmg.PieceTypeNone {
				sb.WriteByte('=')
				sb.WriteString(pieceLetters[promo])
			}
			break
		}
		sb.WriteString(pieceLetters[pt])
		sb.WriteString(disambiguator(m, legal))
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To().String())
	}

	switch result {
	case chessmg.StatusCheck:
		sb.WriteByte('+')
	case chessmg.StatusCheckmate:
		sb.WriteByte('#')
	}
	return sb.String()
}

// disambiguator returns the minimal source qualifier for a piece move: empty
// when no sibling move shares the piece and destination, the file when it
// settles the matter, the rank when files clash, both when neither alone does.
func disambiguator(m chessmg.Move, legal []chessmg.Move) string {
	sameDest, sameFile, sameRank := false, false, false
	for _, other := range legal {
		if other == m || other.To() != m.To() || other.MovedPiece() != m.MovedPiece() {
			continue
		}
		sameDest = true
		if other.From().File() == m.From().File() {
			sameFile = true
		}
		if other.From().Rank() == m.From().Rank() {
			sameRank = true
		}
	}
	if !sameDest {
		return ""
	}
	file := string([]byte{'a' + byte(m.From().File())})
	rank := string([]byte{'1' + byte(m.From().Rank())})
	switch {
	case !sameFile:
		return file
	case !sameRank:
		return rank
	default:
		return file + rank
	}
}
