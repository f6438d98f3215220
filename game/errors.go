package game

import "errors"

var (
	// ErrInvalidNotation reports a token that is not well-formed algebraic
	// notation, or whose check/mate suffix contradicts the position.
	ErrInvalidNotation = errors.New("invalid move notation")

	// ErrIllegalMove reports well-formed notation that matches no legal move.
	ErrIllegalMove = errors.New("illegal move")

	// ErrAmbiguousMove reports notation that matches more than one legal move.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrGameOver reports a move attempted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrNoHistory reports an undo with no moves to take back.
	ErrNoHistory = errors.New("no moves to undo")
)
