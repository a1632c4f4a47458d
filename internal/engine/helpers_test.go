package engine

import (
	"testing"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
)

// mustFEN parses a FEN string or aborts the test.
func mustFEN(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// sq converts "e4" into a square.
func sq(name string) chess.Square {
	return chess.Sq(chess.Col(name[0]), chess.Rank(name[1]))
}

// pieceMove builds an unresolved move of piece to the named square.
// Options may carry a disambiguator as "from=<file|rank|square>",
// "x" for a declared capture and "=<letter>" for a promotion.
func pieceMove(piece chess.Piece, to string, opts ...string) *chess.Move {
	m := chess.NewMove()
	m.Piece = piece
	m.ToCol = chess.Col(to[0])
	m.ToRank = chess.Rank(to[1])
	for _, opt := range opts {
		switch {
		case opt == "x":
			m.Capture = true
		case len(opt) == 2 && opt[0] == '=':
			m.Promotion = ConvertFENCharToPiece(opt[1])
		case len(opt) > 5 && opt[:5] == "from=":
			for _, c := range opt[5:] {
				if c >= 'a' && c <= 'h' {
					m.FromCol = chess.Col(c)
				} else {
					m.FromRank = chess.Rank(c)
				}
			}
		}
	}
	return m
}

// castleMove builds an unresolved castling move.
func castleMove(kind chess.CastleKind) *chess.Move {
	m := chess.NewMove()
	m.Castle = kind
	m.Piece = chess.King
	m.Text = kind.String()
	return m
}

// play resolves and applies a move, aborting the test on failure.
func play(t *testing.T, board *chess.Board, move *chess.Move) {
	t.Helper()
	if err := ResolveMove(board, move); err != nil {
		t.Fatalf("ResolveMove(%s %s) failed: %v", move.Piece, move.To(), err)
	}
	if err := ApplyMove(board, move); err != nil {
		t.Fatalf("ApplyMove(%s) failed: %v", move.LongString(), err)
	}
}
