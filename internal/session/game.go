// Package session referees a single game: it owns the board, plays move
// tokens through decode, resolve, apply and classify, and records the
// history of plies.
package session

import (
	"fmt"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/config"
	"github.com/lgbarn/chess-arbiter-go/internal/engine"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
	"github.com/lgbarn/chess-arbiter-go/internal/notation"
)

// Ply is one half-move that has been played.
type Ply struct {
	Number     int          // 1-based ply index within the game
	MoveNumber uint         // fullmove number the ply belongs to
	Colour     chess.Colour // side that moved
	Move       chess.Move   // the resolved move
	SAN        string       // the move rendered in SAN
	FEN        string       // position after the ply
}

// Game is a single refereed game. A Game is not safe for concurrent use.
type Game struct {
	cfg      *config.Config
	board    *chess.Board
	plies    []Ply
	outcome  chess.Outcome
	number   int
	startFEN string
}

// New starts a game from the standard initial position.
func New(cfg *config.Config) *Game {
	return &Game{
		cfg:      cfg,
		board:    engine.NewInitialBoard(),
		startFEN: engine.InitialFEN,
	}
}

// NewFromFEN starts a game from the given position. A position that is
// already decided is accepted; every move played from it fails with
// ErrGameOver.
func NewFromFEN(cfg *config.Config, fen string) (*Game, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	outcome, err := engine.Classify(board)
	if err != nil {
		return nil, err
	}
	return &Game{cfg: cfg, board: board, outcome: outcome, startFEN: engine.BoardToFEN(board)}, nil
}

// NewFromConfig starts a game from cfg.Input.StartFEN, or from the initial
// position when none is set.
func NewFromConfig(cfg *config.Config) (*Game, error) {
	if cfg.Input.StartFEN == "" {
		return New(cfg), nil
	}
	return NewFromFEN(cfg, cfg.Input.StartFEN)
}

// StartFEN returns the position the game started from.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// Number returns the game number set by SetNumber.
func (g *Game) Number() int {
	return g.number
}

// SetNumber sets the game number reported in errors.
func (g *Game) SetNumber(n int) {
	g.number = n
}

// Board returns a copy of the current position.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// Outcome reports whether the side to move has been mated or stalemated.
func (g *Game) Outcome() chess.Outcome {
	return g.outcome
}

// History returns the plies played so far.
func (g *Game) History() []Ply {
	plies := make([]Ply, len(g.plies))
	copy(plies, g.plies)
	return plies
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board)
}

// Play decodes and plays one move token. On error the position is
// unchanged and the error is a *errors.MoveError.
func (g *Game) Play(token string) (*Ply, error) {
	if g.outcome.IsOver() {
		return nil, g.moveError(token, errors.ErrGameOver)
	}
	move, err := notation.DecodeMove(token)
	if err != nil {
		return nil, g.moveError(token, err)
	}
	return g.PlayMove(move)
}

// PlayMove resolves and plays an already decoded move.
func (g *Game) PlayMove(move *chess.Move) (*Ply, error) {
	if g.outcome.IsOver() {
		return nil, g.moveError(move.Text, errors.ErrGameOver)
	}
	if err := engine.ResolveMove(g.board, move); err != nil {
		return nil, g.moveError(move.Text, err)
	}

	before := g.board.Copy()
	if err := engine.ApplyMove(g.board, move); err != nil {
		*g.board = *before
		return nil, g.moveError(move.Text, err)
	}

	outcome, err := engine.Classify(g.board)
	if err != nil {
		*g.board = *before
		return nil, g.moveError(move.Text, err)
	}
	switch {
	case outcome.Kind == chess.Checkmate:
		move.CheckStatus = chess.Mate
	case engine.IsInCheck(g.board, g.board.ToMove):
		move.CheckStatus = chess.Check
	}

	san, err := notation.FormatMove(before, move)
	if err != nil {
		*g.board = *before
		return nil, g.moveError(move.Text, err)
	}

	ply := Ply{
		Number:     len(g.plies) + 1,
		MoveNumber: before.MoveNumber,
		Colour:     before.ToMove,
		Move:       *move,
		SAN:        san,
		FEN:        engine.BoardToFEN(g.board),
	}
	g.plies = append(g.plies, ply)
	g.outcome = outcome
	g.comment(&ply)
	return &ply, nil
}

// PlayAll plays tokens in order and stops at the first error. It returns
// the number of plies played.
func (g *Game) PlayAll(tokens []string) (int, error) {
	for i, token := range tokens {
		if _, err := g.Play(token); err != nil {
			return i, err
		}
	}
	return len(tokens), nil
}

// LegalMoves lists the legal moves of the side to move in the configured
// notation.
func (g *Game) LegalMoves() ([]string, error) {
	moves, err := engine.LegalMoves(g.board)
	if err != nil {
		return nil, err
	}

	list := make([]string, 0, len(moves))
	for i := range moves {
		m := &moves[i]
		if g.cfg != nil && g.cfg.Output.Format == config.LALG {
			list = append(list, m.LongString())
			continue
		}
		scratch := g.board.Copy()
		trial := *m
		if err := engine.ApplyMove(scratch, &trial); err != nil {
			return nil, err
		}
		status, err := engine.CheckStatusOf(scratch)
		if err != nil {
			return nil, err
		}
		m.CheckStatus = status
		san, err := notation.FormatMove(g.board, m)
		if err != nil {
			return nil, err
		}
		list = append(list, san)
	}
	return list, nil
}

// Moves returns the moves played so far in the configured notation.
func (g *Game) Moves() []string {
	list := make([]string, len(g.plies))
	for i := range g.plies {
		if g.cfg != nil && g.cfg.Output.Format == config.LALG {
			list[i] = g.plies[i].Move.LongString()
		} else {
			list[i] = g.plies[i].SAN
		}
	}
	return list
}

func (g *Game) moveError(token string, err error) error {
	return &errors.MoveError{
		Err:      err,
		GameNum:  g.number,
		PlyNum:   len(g.plies) + 1,
		Side:     g.board.ToMove.Lower(),
		MoveText: token,
	}
}

// comment writes per-ply commentary at verbosity 2 and above.
func (g *Game) comment(ply *Ply) {
	if g.cfg == nil || g.cfg.Verbosity < 2 || g.cfg.LogFile == nil {
		return
	}
	dots := "."
	if ply.Colour == chess.Black {
		dots = "..."
	}
	text := ply.SAN
	if g.cfg.Output.Format == config.LALG {
		text = ply.Move.LongString()
	}
	fmt.Fprintf(g.cfg.LogFile, "%d%s %s\n", ply.MoveNumber, dots, text)
}
