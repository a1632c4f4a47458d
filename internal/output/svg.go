package output

import (
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
)

// SVGOptions controls the SVG diagram.
type SVGOptions struct {
	SquareSize  int  // side of one square in pixels
	Coordinates bool // label files and ranks along the edges
}

const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
)

// Figurines indexed by piece kind.
var (
	whiteGlyphs = [...]string{chess.Pawn: "♙", chess.Knight: "♘", chess.Bishop: "♗", chess.Rook: "♖", chess.Queen: "♕", chess.King: "♔"}
	blackGlyphs = [...]string{chess.Pawn: "♟", chess.Knight: "♞", chess.Bishop: "♝", chess.Rook: "♜", chess.Queen: "♛", chess.King: "♚"}
)

// WriteSVG draws the board as an SVG document, rank 8 at the top.
func WriteSVG(w io.Writer, board *chess.Board, opts SVGOptions) {
	size := opts.SquareSize
	if size <= 0 {
		size = 45
	}
	margin := 0
	if opts.Coordinates {
		margin = size / 2
	}
	side := 8*size + 2*margin

	canvas := svg.New(w)
	canvas.Start(side, side)
	canvas.Rect(0, 0, side, side, "fill:#ffffff")

	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		y := margin + int('8'-rank)*size
		for col := chess.Col('a'); col <= 'h'; col++ {
			x := margin + int(col-'a')*size
			style := darkSquare
			if (int(col-'a')+int(rank-'1'))%2 == 1 {
				style = lightSquare
			}
			canvas.Rect(x, y, size, size, style)

			piece := board.Get(col, rank)
			if piece == chess.Empty {
				continue
			}
			canvas.Text(x+size/2, y+size*4/5, glyph(piece),
				"text-anchor:middle;font-size:"+strconv.Itoa(size*4/5)+"px")
		}
	}

	if opts.Coordinates {
		label := "text-anchor:middle;font-size:" + strconv.Itoa(size/3) + "px;fill:#333333"
		for i := 0; i < 8; i++ {
			file := string(rune('a' + i))
			rank := string(rune('8' - i))
			canvas.Text(margin+i*size+size/2, side-margin/3, file, label)
			canvas.Text(margin/2, margin+i*size+size/2+size/8, rank, label)
		}
	}
	canvas.End()
}

// glyph returns the figurine of a coloured piece.
func glyph(p chess.Piece) string {
	kind := chess.ExtractPiece(p)
	if chess.ExtractColour(p) == chess.White {
		return whiteGlyphs[kind]
	}
	return blackGlyphs[kind]
}
