package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-arbiter-go/internal/config"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
	"github.com/lgbarn/chess-arbiter-go/internal/notation"
	"github.com/lgbarn/chess-arbiter-go/internal/output"
	"github.com/lgbarn/chess-arbiter-go/internal/session"
)

// runInteractive plays one game from in, a line of moves at a time. An
// illegal move discards the rest of its line and the player is asked
// again. Besides moves a line may hold one of the commands board, fen,
// moves or quit. At end of input or once the game is decided the final
// board and summary are written.
func runInteractive(in io.Reader, cfg *config.Config) error {
	game, err := session.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	w := cfg.OutputFile
	scanner := bufio.NewScanner(in)

	for !game.Outcome().IsOver() {
		fmt.Fprintf(w, "%s to move: ", game.Board().ToMove.Lower())
		if !scanner.Scan() {
			fmt.Fprintln(w)
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "quit", "exit":
			return finishInteractive(game, cfg)
		case "board":
			output.DrawBoard(w, game.Board())
			continue
		case "fen":
			fmt.Fprintln(w, game.FEN())
			continue
		case "moves":
			moves, err := game.LegalMoves()
			if err != nil {
				return err
			}
			fmt.Fprintln(w, strings.Join(moves, " "))
			continue
		}

		for _, token := range notation.Tokens(line) {
			if _, err := game.Play(token); err != nil {
				if errors.IsFatal(err) {
					return err
				}
				fmt.Fprintf(w, "illegal move: %v\n", err)
				break
			}
			if game.Outcome().IsOver() {
				break
			}
		}
		if cfg.Output.DrawBoard {
			output.DrawBoard(w, game.Board())
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return finishInteractive(game, cfg)
}

// finishInteractive writes the final board and the summary line.
func finishInteractive(game *session.Game, cfg *config.Config) error {
	output.DrawBoard(cfg.OutputFile, game.Board())
	fmt.Fprintln(cfg.OutputFile, output.Summary(game.Outcome()))
	if cfg.Output.SVGFile != "" {
		return writeSVGFile(cfg, game.Board())
	}
	return nil
}
