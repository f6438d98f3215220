package chessmg_test

import (
	"testing"

	"chess-rules/chessmg"
)

// Published perft node counts; any divergence pins down a generator or
// apply/undo defect. PerftDivide narrows it to a root move.
func TestPerft_KnownPositions(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		depth int
		nodes uint64
	}{
		{"startpos d1", chessmg.FENStartPos, 1, 20},
		{"startpos d2", chessmg.FENStartPos, 2, 400},
		{"startpos d3", chessmg.FENStartPos, 3, 8902},
		{"startpos d4", chessmg.FENStartPos, 4, 197281},

		// Castling and en passant heavy.
		{"kiwipete d1", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
		{"kiwipete d2", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
		{"kiwipete d3", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},

		// Pins and en passant edge cases.
		{"endgame d1", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 1, 14},
		{"endgame d2", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, 191},
		{"endgame d3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
		{"endgame d4", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43238},

		// Promotion heavy.
		{"promotions d1", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 1, 6},
		{"promotions d2", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 2, 264},
		{"promotions d3", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 3, 9467},
	}

	for _, c := range cases {
		b := mustParse(t, c.fen)
		if got := chessmg.Perft(b, c.depth); got != c.nodes {
			t.Fatalf("%s: got %d nodes, want %d", c.name, got, c.nodes)
		}
		// Perft walks with Apply/Undo on the real board; it must come back.
		if got := b.FEN(); got != c.fen {
			t.Fatalf("%s: perft mutated the board: %q", c.name, got)
		}
	}
}

func TestPerftDivide_SumsToPerft(t *testing.T) {
	b := chessmg.NewBoard()
	div := chessmg.PerftDivide(b, 3)
	if len(div) != 20 {
		t.Fatalf("divide at the start position has %d root moves, want 20", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 8902 {
		t.Fatalf("divide sums to %d, want 8902", sum)
	}
}
