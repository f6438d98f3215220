package chessmg_test

import (
	"testing"

	"chess-rules/chessmg"
)

func mustParse(t *testing.T, fen string) *chessmg.Board {
	t.Helper()
	b, err := chessmg.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func findMove(moves []chessmg.Move, uci string) (chessmg.Move, bool) {
	for _, m := range moves {
		if m.String() == uci {
			return m, true
		}
	}
	return 0, false
}

func TestPseudoLegal_StartPosition(t *testing.T) {
	b := chessmg.NewBoard()
	moves := b.PseudoLegalMoves()
	if len(moves) != 20 {
		t.Fatalf("start position: got %d pseudo-legal moves, want 20", len(moves))
	}
	for _, uci := range []string{"e2e4", "e2e3", "g1f3", "b1a3", "a2a4"} {
		if _, ok := findMove(moves, uci); !ok {
			t.Fatalf("start position move %s missing", uci)
		}
	}
	if _, ok := findMove(moves, "e1g1"); ok {
		t.Fatalf("castling generated with f1 and g1 occupied")
	}
}

func TestPseudoLegal_DoublePushBlocked(t *testing.T) {
	// Knight on e3 blocks both e2e3 and e2e4.
	b := mustParse(t, "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1")
	moves := b.PseudoLegalMoves()
	if _, ok := findMove(moves, "e2e3"); ok {
		t.Fatalf("push onto an occupied square generated")
	}
	if _, ok := findMove(moves, "e2e4"); ok {
		t.Fatalf("double push through a blocker generated")
	}
}

func TestPseudoLegal_DoublePushOnlyFromStartRank(t *testing.T) {
	b := mustParse(t, "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1")
	moves := b.PseudoLegalMoves()
	if _, ok := findMove(moves, "e3e5"); ok {
		t.Fatalf("double push generated from a non-start rank")
	}
	m, ok := findMove(moves, "e3e4")
	if !ok {
		t.Fatalf("single push e3e4 missing")
	}
	if m.Kind() != chessmg.KindNormal {
		t.Fatalf("single push classified as %v", m.Kind())
	}
}

func TestPseudoLegal_EnPassantGenerated(t *testing.T) {
	// Black just played d7d5; white pawn on e5 may take en passant on d6.
	b := mustParse(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	moves := b.PseudoLegalMoves()
	m, ok := findMove(moves, "e5d6")
	if !ok {
		t.Fatalf("en passant capture e5d6 missing")
	}
	if m.Kind() != chessmg.KindEnPassant {
		t.Fatalf("e5d6 classified as %v, want en passant", m.Kind())
	}
	if !m.IsCapture() || m.CapturedPiece() != chessmg.BlackPawn {
		t.Fatalf("en passant must record the passed pawn as captured")
	}
}

func TestPseudoLegal_NoEnPassantWithoutTarget(t *testing.T) {
	b := mustParse(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3")
	if _, ok := findMove(b.PseudoLegalMoves(), "e5d6"); ok {
		t.Fatalf("en passant generated with no target square set")
	}
}

func TestPseudoLegal_PromotionExpansion(t *testing.T) {
	// White pawn on b7 can push to b8 or capture on a8.
	b := mustParse(t, "r3k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	moves := b.PseudoLegalMoves()
	for _, uci := range []string{"b7b8q", "b7b8r", "b7b8b", "b7b8n", "b7a8q", "b7a8r", "b7a8b", "b7a8n"} {
		m, ok := findMove(moves, uci)
		if !ok {
			t.Fatalf("promotion %s missing", uci)
		}
		if m.Kind() != chessmg.KindPromotion {
			t.Fatalf("%s classified as %v, want promotion", uci, m.Kind())
		}
	}
	if _, ok := findMove(moves, "b7b8"); ok {
		t.Fatalf("bare pawn push to the last rank generated without promotion")
	}
}

func TestPseudoLegal_CastlingCandidates(t *testing.T) {
	b := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	moves := b.PseudoLegalMoves()
	ks, ok := findMove(moves, "e1g1")
	if !ok {
		t.Fatalf("kingside castle missing")
	}
	if ks.Kind() != chessmg.KindCastleKingside {
		t.Fatalf("e1g1 classified as %v", ks.Kind())
	}
	qs, ok := findMove(moves, "e1c1")
	if !ok {
		t.Fatalf("queenside castle missing")
	}
	if qs.Kind() != chessmg.KindCastleQueenside {
		t.Fatalf("e1c1 classified as %v", qs.Kind())
	}

	// Without the right, the same geometry yields no candidate.
	b = mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1")
	moves = b.PseudoLegalMoves()
	if _, ok := findMove(moves, "e1g1"); ok {
		t.Fatalf("kingside castle generated without the right")
	}
	if _, ok := findMove(moves, "e1c1"); ok {
		t.Fatalf("queenside castle generated without the right")
	}
}

func TestPseudoLegal_CastlingBlocked(t *testing.T) {
	// Bishop on f1 and knight on b1 block both sides.
	b := mustParse(t, "r3k2r/8/8/8/8/8/8/RN2KB1R w KQkq - 0 1")
	moves := b.PseudoLegalMoves()
	if _, ok := findMove(moves, "e1g1"); ok {
		t.Fatalf("kingside castle generated through an occupied f1")
	}
	if _, ok := findMove(moves, "e1c1"); ok {
		t.Fatalf("queenside castle generated through an occupied b1")
	}
}

func TestPseudoLegal_CastlingNeedsHomeRook(t *testing.T) {
	// Rights linger in the FEN but the rooks are gone.
	b := mustParse(t, "4k3/8/8/8/8/8/8/4K3 w KQ - 0 1")
	moves := b.PseudoLegalMoves()
	if _, ok := findMove(moves, "e1g1"); ok {
		t.Fatalf("castle generated without a rook on h1")
	}
	if _, ok := findMove(moves, "e1c1"); ok {
		t.Fatalf("castle generated without a rook on a1")
	}
}

func TestPseudoLegal_CapturesRecordVictim(t *testing.T) {
	b := mustParse(t, "4k3/8/8/3r4/8/8/3R4/4K3 w - - 0 1")
	moves := b.PseudoLegalMoves()
	m, ok := findMove(moves, "d2d5")
	if !ok {
		t.Fatalf("rook capture d2d5 missing")
	}
	if m.CapturedPiece() != chessmg.BlackRook {
		t.Fatalf("capture victim not recorded")
	}
	if _, ok := findMove(moves, "d2d6"); ok {
		t.Fatalf("rook slid past an enemy blocker")
	}
}

func BenchmarkPseudoLegalMoves(b *testing.B) {
	board, err := chessmg.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	buf := make([]chessmg.Move, 0, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = board.PseudoLegalMovesInto(buf)
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	board, err := chessmg.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	buf := make([]chessmg.Move, 0, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = board.LegalMovesInto(buf)
	}
}
