// Package output renders refereed games: move lists, board diagrams,
// result summaries and JSON or SVG documents.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/config"
	"github.com/lgbarn/chess-arbiter-go/internal/session"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// Summary describes the outcome of a game.
func Summary(outcome chess.Outcome) string {
	switch outcome.Kind {
	case chess.Checkmate:
		if outcome.Winner == chess.White {
			return "white wins by checkmate"
		}
		return "black wins by checkmate"
	case chess.Stalemate:
		return "draw by stalemate"
	}
	return "game incomplete"
}

// ResultTag returns the PGN-style result token of an outcome.
func ResultTag(outcome chess.Outcome) string {
	switch outcome.Kind {
	case chess.Checkmate:
		if outcome.Winner == chess.White {
			return "1-0"
		}
		return "0-1"
	case chess.Stalemate:
		return "1/2-1/2"
	}
	return "*"
}

// DrawBoard writes a text diagram of the board, rank 8 at the top, white
// pieces in upper case and black in lower case.
func DrawBoard(w io.Writer, board *chess.Board) {
	fmt.Fprint(w, "\n   a b c d e f g h\n")
	fmt.Fprint(w, "  -----------------\n")

	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		fmt.Fprintf(w, "%c| ", rank)
		for col := chess.Col('a'); col <= 'h'; col++ {
			fmt.Fprintf(w, "%c ", pieceChar(board.Get(col, rank)))
		}
		fmt.Fprintf(w, "|%c\n", rank)
	}

	fmt.Fprint(w, "  -----------------\n")
	fmt.Fprint(w, "   a b c d e f g h\n\n")
}

// pieceChar returns the diagram letter of a square's content.
func pieceChar(p chess.Piece) byte {
	if p == chess.Empty {
		return '.'
	}
	c := chess.ExtractPiece(p).Letter()
	if chess.ExtractColour(p) == chess.Black {
		c += 'a' - 'A'
	}
	return c
}

// OutputGame writes a game as text: the numbered move list with the
// result token, the summary line, the rejected move if there was one, and
// whichever of diagram, FEN and legal moves the configuration asks for.
func OutputGame(game *session.Game, gameErr error, cfg *config.Config) error {
	w := cfg.OutputFile

	outputMoves(game, cfg, w)
	fmt.Fprintln(w, Summary(game.Outcome()))
	if gameErr != nil {
		fmt.Fprintf(w, "rejected: %v\n", gameErr)
	}

	if cfg.Output.DrawBoard {
		DrawBoard(w, game.Board())
	}
	if cfg.Output.ShowFEN {
		fmt.Fprintf(w, "FEN: %s\n", game.FEN())
	}
	if cfg.Output.ListMoves {
		moves, err := game.LegalMoves()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Legal moves: %s\n", strings.Join(moves, " "))
	}

	// Blank line between games
	fmt.Fprintln(w)
	return nil
}

// outputMoves writes the numbered move list followed by the result token.
func outputMoves(game *session.Game, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))

	moves := game.Moves()
	for i, ply := range game.History() {
		if ply.Colour == chess.White {
			ow.Write(fmt.Sprintf("%d.", ply.MoveNumber))
		} else if i == 0 {
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", ply.MoveNumber))
		}
		ow.Write(moves[i])
	}
	ow.Write(ResultTag(game.Outcome()))
	ow.NewLine()
}
