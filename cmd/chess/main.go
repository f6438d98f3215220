// Command chess is an interactive shell for playing a game from the
// terminal. Moves are entered in algebraic notation; a handful of commands
// (moves, fen, undo, quit) inspect and control the session.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"chess-rules/chessmg"
	"chess-rules/game"
)

var log = slog.Default().With("package", "main")

func main() {
	placement := flag.String("fen", "", "Starting position as the placement field of a FEN string")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	log = slog.Default().With("package", "main")

	var session *game.Session
	if *placement == "" {
		session = game.NewSession()
	} else {
		var err error
		session, err = game.NewSessionFromPlacement(*placement)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad starting position: %v\n", err)
			os.Exit(2)
		}
	}

	fmt.Println("Enter moves in algebraic notation (e4, Nf3, O-O).")
	fmt.Println("Commands: moves, fen, undo, quit")

	printBoard(session)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s> ", session.SideToMove())
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "quit", "exit":
			return
		case "moves":
			fmt.Println(strings.Join(session.LegalMovesSAN(), " "))
		case "fen":
			fmt.Println(session.FEN())
		case "undo":
			if err := session.UndoMove(); err != nil {
				fmt.Println(err)
				continue
			}
			printBoard(session)
		default:
			status, err := session.MakeMove(line)
			if err != nil {
				fmt.Println(err)
				continue
			}
			log.Debug("move played", "san", line, "ply", session.Ply(), "fen", session.FEN())
			printBoard(session)
			switch status {
			case chessmg.StatusCheck:
				fmt.Printf("%s is in check\n", session.SideToMove())
			case chessmg.StatusCheckmate:
				fmt.Printf("checkmate, %s wins\n", session.SideToMove().Other())
				return
			case chessmg.StatusStalemate:
				fmt.Println("stalemate, draw")
				return
			}
		}
	}
}

func printBoard(s *game.Session) {
	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			p := s.PieceAt(chessmg.SquareAt(file, rank))
			if p == chessmg.NoPiece {
				fmt.Print(" .")
			} else {
				fmt.Printf(" %c", p.FENChar())
			}
		}
		fmt.Println()
	}
	fmt.Println("   a b c d e f g h")
}
