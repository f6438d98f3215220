// Package game drives a chess game over the chessmg rules core: it accepts
// algebraic notation, resolves it against the legal moves of the current
// position, and keeps the move history needed to take moves back.
package game

import (
	"fmt"

	"golang.org/x/exp/slices"

	"chess-rules/chessmg"
)

// HistoryEntry records one played move together with the state snapshot
// needed to take it back.
type HistoryEntry struct {
	Move chessmg.Move
	SAN  string

	state chessmg.MoveState
}

// Session is a single game in progress. It is not safe for concurrent use.
type Session struct {
	board   *chessmg.Board
	history []HistoryEntry
	legal   []chessmg.Move
	status  chessmg.Status
}

// NewSession starts a game from the standard initial position.
func NewSession() *Session {
	return newSession(chessmg.NewBoard())
}

// NewSessionFromFEN starts a game from a full FEN string.
func NewSessionFromFEN(fen string) (*Session, error) {
	b, err := chessmg.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return newSession(b), nil
}

// NewSessionFromPlacement starts a game from the placement field of a FEN
// string alone; see chessmg.ParsePlacement for the defaults applied.
func NewSessionFromPlacement(placement string) (*Session, error) {
	b, err := chessmg.ParsePlacement(placement)
	if err != nil {
		return nil, err
	}
	return newSession(b), nil
}

func newSession(b *chessmg.Board) *Session {
	s := &Session{board: b}
	s.refresh()
	return s
}

// refresh recomputes the legal move cache and status from the board. Status
// is always derived from the position, never carried across moves, so undo
// needs no special handling.
func (s *Session) refresh() {
	s.legal = s.board.LegalMovesInto(s.legal[:0])
	inCheck := s.board.InCheck(s.board.SideToMove())
	switch {
	case len(s.legal) > 0 && inCheck:
		s.status = chessmg.StatusCheck
	case len(s.legal) > 0:
		s.status = chessmg.StatusNormal
	case inCheck:
		s.status = chessmg.StatusCheckmate
	default:
		s.status = chessmg.StatusStalemate
	}
}

// MakeMove plays one move given in algebraic notation and returns the status
// of the resulting position. The session is unchanged on error. A trailing
// '+' or '#' in the token is optional, but when present it must match the
// actual outcome: '+' demands check that is not mate, '#' demands checkmate.
func (s *Session) MakeMove(token string) (chessmg.Status, error) {
	if s.status.GameOver() {
		return s.status, fmt.Errorf("%w: position is %s", ErrGameOver, s.status)
	}

	tk, err := parseToken(token)
	if err != nil {
		return s.status, err
	}
	m, err := resolveMove(s.legal, tk)
	if err != nil {
		return s.status, fmt.Errorf("%w: %s", err, token)
	}

	// Simulate first: the SAN record and the suffix validation both need the
	// status of the resulting position before the real board moves.
	scratch := *s.board
	scratch.Apply(m)
	result := scratch.GameStatus()
	if err := checkSuffix(tk.suffix, result); err != nil {
		return s.status, fmt.Errorf("%w: %s", err, token)
	}
	san := encodeSAN(m, s.legal, result)

	st := s.board.Apply(m)
	if !s.board.Validate() {
		s.board.Undo(m, st)
		return s.status, chessmg.ErrInconsistentPosition
	}

	s.history = append(s.history, HistoryEntry{Move: m, SAN: san, state: st})
	s.refresh()
	return s.status, nil
}

func checkSuffix(suffix byte, result chessmg.Status) error {
	switch suffix {
	case 0:
		return nil
	case '+':
		if result != chessmg.StatusCheck {
			return fmt.Errorf("%w: '+' but position is %s", ErrInvalidNotation, result)
		}
	case '#':
		if result != chessmg.StatusCheckmate {
			return fmt.Errorf("%w: '#' but position is %s", ErrInvalidNotation, result)
		}
	}
	return nil
}

// UndoMove takes back the most recently played move.
func (s *Session) UndoMove() error {
	if len(s.history) == 0 {
		return ErrNoHistory
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.board.Undo(last.Move, last.state)
	s.refresh()
	return nil
}

// LegalMoves returns a copy of the legal moves in the current position.
func (s *Session) LegalMoves() []chessmg.Move {
	return slices.Clone(s.legal)
}

// LegalMovesSAN returns the legal moves rendered in algebraic notation,
// sorted for stable display.
func (s *Session) LegalMovesSAN() []string {
	out := make([]string, 0, len(s.legal))
	for _, m := range s.legal {
		scratch := *s.board
		scratch.Apply(m)
		out = append(out, encodeSAN(m, s.legal, scratch.GameStatus()))
	}
	slices.Sort(out)
	return out
}

// Status reports the standing of the current position.
func (s *Session) Status() chessmg.Status { return s.status }

// SideToMove reports which side is to play.
func (s *Session) SideToMove() chessmg.Color { return s.board.SideToMove() }

// Ply is the number of half-moves played so far.
func (s *Session) Ply() int { return len(s.history) }

// History returns a copy of the moves played so far.
func (s *Session) History() []HistoryEntry {
	return slices.Clone(s.history)
}

// PieceAt reports the piece on a square of the current position.
func (s *Session) PieceAt(sq chessmg.Square) chessmg.Piece { return s.board.PieceAt(sq) }

// FEN serializes the current position.
func (s *Session) FEN() string { return s.board.FEN() }
