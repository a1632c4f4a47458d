package testutil

import (
	"testing"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
)

// BoardFromPieces builds a board holding only the listed pieces, with no
// castling rights and no en-passant target. Each placement is a piece
// letter followed by a square, upper case for White and lower case for
// Black: "Ke1", "pe7", "Qd1".
// It calls t.Fatal on a malformed placement.
func BoardFromPieces(t *testing.T, toMove chess.Colour, placements ...string) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	board.ToMove = toMove
	for _, p := range placements {
		colour, piece, sq, ok := parsePlacement(p)
		if !ok {
			t.Fatalf("bad placement %q", p)
		}
		if board.At(sq) != chess.Empty {
			t.Fatalf("placement %q: square %s already occupied", p, sq)
		}
		board.Put(sq, chess.MakeColouredPiece(colour, piece))
	}
	return board
}

// InitialBoard returns a board set up in the standard starting position.
func InitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

// Square parses an algebraic square name such as "e4".
// It calls t.Fatal if the name is not on the board.
func Square(t *testing.T, name string) chess.Square {
	t.Helper()
	if len(name) != 2 {
		t.Fatalf("bad square %q", name)
	}
	sq := chess.Sq(chess.Col(name[0]), chess.Rank(name[1]))
	if !sq.Valid() {
		t.Fatalf("bad square %q", name)
	}
	return sq
}

// AssertPiece fails if the square does not hold the expected coloured piece.
func AssertPiece(t *testing.T, board *chess.Board, square string, want chess.Piece) {
	t.Helper()
	got := board.At(Square(t, square))
	if got != want {
		t.Errorf("%s = %s, want %s", square, describePiece(got), describePiece(want))
	}
}

// AssertEmpty fails if the square is occupied.
func AssertEmpty(t *testing.T, board *chess.Board, square string) {
	t.Helper()
	AssertPiece(t, board, square, chess.Empty)
}

func parsePlacement(p string) (chess.Colour, chess.Piece, chess.Square, bool) {
	if len(p) != 3 {
		return 0, chess.Empty, chess.Square{}, false
	}
	letter := p[0]
	colour := chess.White
	if letter >= 'a' && letter <= 'z' {
		colour = chess.Black
		letter -= 'a' - 'A'
	}
	var piece chess.Piece
	switch letter {
	case 'P':
		piece = chess.Pawn
	case 'N':
		piece = chess.Knight
	case 'B':
		piece = chess.Bishop
	case 'R':
		piece = chess.Rook
	case 'Q':
		piece = chess.Queen
	case 'K':
		piece = chess.King
	default:
		return 0, chess.Empty, chess.Square{}, false
	}
	sq := chess.Sq(chess.Col(p[1]), chess.Rank(p[2]))
	if !sq.Valid() {
		return 0, chess.Empty, chess.Square{}, false
	}
	return colour, piece, sq, true
}

func describePiece(p chess.Piece) string {
	if p == chess.Empty {
		return "empty"
	}
	return chess.ExtractColour(p).Lower() + " " + chess.ExtractPiece(p).String()
}
