package chessmg

import "errors"

var (
	// ErrInvalidFen rejects a malformed FEN or piece-placement string. No
	// board is constructed when it is returned.
	ErrInvalidFen = errors.New("invalid fen")

	// ErrInconsistentPosition signals a broken occupancy invariant. It marks
	// an engine defect, not bad input.
	ErrInconsistentPosition = errors.New("inconsistent position")
)
