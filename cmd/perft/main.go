// Command perft counts move-generation leaf nodes for a position, the
// standard harness for validating a chess move generator. With -crosscheck
// it runs the same count over an independent generator and compares.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"chess-rules/chessmg"
)

func main() {
	fen := flag.String("fen", chessmg.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	crosscheck := flag.Bool("crosscheck", false, "Compare node counts against an independent move generator")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := chessmg.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := chessmg.PerftDivide(board, *depth)
		moves := make([]chessmg.Move, 0, len(div))
		var sum uint64
		for m, n := range div {
			moves = append(moves, m)
			sum += n
		}
		sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, div[m])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := chessmg.Perft(board, *depth)
	elapsed := time.Since(start)
	fmt.Printf("depth %d \tnodes %d \ttime %s \tnps %.0f\n",
		*depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())

	if *crosscheck {
		ref := dragontoothmg.ParseFen(*fen)
		refNodes := referencePerft(&ref, *depth)
		if refNodes != nodes {
			fmt.Fprintf(os.Stderr, "MISMATCH: reference generator counts %d nodes\n", refNodes)
			os.Exit(1)
		}
		fmt.Printf("crosscheck ok: reference generator agrees (%d nodes)\n", refNodes)
	}
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}
