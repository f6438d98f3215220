package chessmg_test

import (
	"errors"
	"testing"

	"chess-rules/chessmg"
)

func TestNewBoard_StartPosition(t *testing.T) {
	b := chessmg.NewBoard()
	if b.SideToMove() != chessmg.White {
		t.Fatalf("expected White to move")
	}
	if b.EnPassantSquare() != chessmg.NoSquare {
		t.Fatalf("no en passant square at the start")
	}
	all := chessmg.CastlingWhiteK | chessmg.CastlingWhiteQ | chessmg.CastlingBlackK | chessmg.CastlingBlackQ
	if b.CastlingRights() != all {
		t.Fatalf("expected all castling rights, got %v", b.CastlingRights())
	}
	if p := b.PieceAt(chessmg.SquareAt(4, 0)); p != chessmg.WhiteKing {
		t.Fatalf("expected white king on e1, got %v", p)
	}
	if p := b.PieceAt(chessmg.SquareAt(3, 7)); p != chessmg.BlackQueen {
		t.Fatalf("expected black queen on d8, got %v", p)
	}
	if !b.Validate() {
		t.Fatalf("start position failed validation")
	}
	if got := b.FEN(); got != chessmg.FENStartPos {
		t.Fatalf("FEN round trip: got %q, want %q", got, chessmg.FENStartPos)
	}
}

func TestParseFEN_RoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K3 b - - 42 77",
	}
	for _, fen := range fens {
		b, err := chessmg.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if !b.Validate() {
			t.Fatalf("parsed position %q fails validation", fen)
		}
		if got := b.FEN(); got != fen {
			t.Fatalf("round trip of %q produced %q", fen, got)
		}
	}
}

func TestParseFEN_Rejects(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",              // missing clocks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",                   // seven ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",          // bad piece char
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",         // nine files
		"rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",           // seven files
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",          // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1",          // bad rights
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1",         // bad ep square
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1",         // ep not on rank 3/6
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1",          // bad halfmove
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0",          // fullmove < 1
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQoBNR w KQkq - 0 1",          // lowercase o
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1BNR w KQkq - 0 1",          // white king missing
		"rnbqkbnr/pppppppp/8/8/3K4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",        // two white kings
	}
	for _, fen := range bad {
		if _, err := chessmg.ParseFEN(fen); !errors.Is(err, chessmg.ErrInvalidFen) {
			t.Fatalf("ParseFEN(%q): expected ErrInvalidFen, got %v", fen, err)
		}
	}
}

func TestParsePlacement_Defaults(t *testing.T) {
	b, err := chessmg.ParsePlacement("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	if err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	if b.SideToMove() != chessmg.White {
		t.Fatalf("placement setup must give White the move")
	}
	if b.EnPassantSquare() != chessmg.NoSquare {
		t.Fatalf("placement setup must not set an en passant square")
	}
	all := chessmg.CastlingWhiteK | chessmg.CastlingWhiteQ | chessmg.CastlingBlackK | chessmg.CastlingBlackQ
	if b.CastlingRights() != all {
		t.Fatalf("home-square placement keeps all rights, got %v", b.CastlingRights())
	}
	if b.HalfmoveClock() != 0 || b.FullmoveNumber() != 1 {
		t.Fatalf("placement setup clocks: got %d/%d, want 0/1", b.HalfmoveClock(), b.FullmoveNumber())
	}
}

// Rights that the placement cannot support are dropped rather than kept as
// dead flags.
func TestParsePlacement_TrimsImpossibleRights(t *testing.T) {
	// White rook missing from a1, black king off e8.
	b, err := chessmg.ParsePlacement("rnbq1bnr/ppppkppp/8/8/8/8/PPPPPPPP/1NBQKBNR")
	if err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	rights := b.CastlingRights()
	if rights&chessmg.CastlingWhiteQ != 0 {
		t.Fatalf("white queenside right kept without an a1 rook")
	}
	if rights&chessmg.CastlingWhiteK == 0 {
		t.Fatalf("white kingside right dropped with king and rook at home")
	}
	if rights&(chessmg.CastlingBlackK|chessmg.CastlingBlackQ) != 0 {
		t.Fatalf("black rights kept with the king off e8")
	}
}

func TestParsePlacement_Rejects(t *testing.T) {
	bad := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP",          // seven ranks
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR", // nine empties
		"rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", // black king missing
	}
	for _, placement := range bad {
		if _, err := chessmg.ParsePlacement(placement); !errors.Is(err, chessmg.ErrInvalidFen) {
			t.Fatalf("ParsePlacement(%q): expected ErrInvalidFen, got %v", placement, err)
		}
	}
}

func TestSetPieceAndClearSquare(t *testing.T) {
	b, err := chessmg.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	d4 := chessmg.SquareAt(3, 3)
	b.SetPiece(d4, chessmg.WhiteQueen)
	if b.PieceAt(d4) != chessmg.WhiteQueen || !b.Validate() {
		t.Fatalf("SetPiece broke the position")
	}
	b.SetPiece(d4, chessmg.BlackKnight)
	if b.PieceAt(d4) != chessmg.BlackKnight || !b.Validate() {
		t.Fatalf("replacing a piece broke the position")
	}
	b.ClearSquare(d4)
	if b.PieceAt(d4) != chessmg.NoPiece || !b.Validate() {
		t.Fatalf("ClearSquare broke the position")
	}
}
