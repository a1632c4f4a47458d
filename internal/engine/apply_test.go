package engine

import (
	"testing"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
	"github.com/lgbarn/chess-arbiter-go/internal/testutil"
)

func TestApplyMove_EnPassant(t *testing.T) {
	board := mustFEN(t, "4k3/8/8/8/4p3/8/3P4/4K3 w - - 0 1")

	play(t, board, pieceMove(chess.Pawn, "d4"))
	ep, ok := board.EnPassantSquare()
	testutil.AssertTrue(t, ok, "double push records an en-passant target")
	testutil.AssertEqual(t, ep.String(), "d3")

	capture := pieceMove(chess.Pawn, "d3", "x", "from=e")
	play(t, board, capture)

	testutil.AssertEmpty(t, board, "d4")
	testutil.AssertEmpty(t, board, "e4")
	testutil.AssertPiece(t, board, "d3", chess.B(chess.Pawn))
	testutil.AssertFalse(t, board.EnPassant, "target cleared after the capture")
	testutil.AssertEqual(t, capture.Captured, chess.W(chess.Pawn))
}

func TestApplyMove_EnPassantExpires(t *testing.T) {
	board := mustFEN(t, "4k3/8/8/8/4p3/8/3P4/4K3 w - - 0 1")

	play(t, board, pieceMove(chess.Pawn, "d4"))
	play(t, board, pieceMove(chess.King, "f7"))
	testutil.AssertFalse(t, board.EnPassant, "any other move clears the target")
	play(t, board, pieceMove(chess.King, "e2"))

	err := ResolveMove(board, pieceMove(chess.Pawn, "d3", "x"))
	testutil.AssertErrorIs(t, err, errors.ErrCaptureOnEmptySquare)
}

func TestApplyMove_Castling(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		kind       chess.CastleKind
		king, rook string
		vacated    []string
		colour     chess.Colour
	}{
		{"white kingside", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", chess.Kingside, "g1", "f1", []string{"e1", "h1"}, chess.White},
		{"white queenside", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", chess.Queenside, "c1", "d1", []string{"e1", "a1", "b1"}, chess.White},
		{"black kingside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", chess.Kingside, "g8", "f8", []string{"e8", "h8"}, chess.Black},
		{"black queenside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", chess.Queenside, "c8", "d8", []string{"e8", "a8", "b8"}, chess.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			play(t, board, castleMove(tt.kind))

			testutil.AssertPiece(t, board, tt.king, chess.MakeColouredPiece(tt.colour, chess.King))
			testutil.AssertPiece(t, board, tt.rook, chess.MakeColouredPiece(tt.colour, chess.Rook))
			for _, s := range tt.vacated {
				testutil.AssertEmpty(t, board, s)
			}
			testutil.AssertFalse(t, board.CanCastle(tt.colour, chess.Kingside), "kingside right cleared")
			testutil.AssertFalse(t, board.CanCastle(tt.colour, chess.Queenside), "queenside right cleared")
			testutil.AssertTrue(t, board.CanCastle(tt.colour.Opposite(), chess.Kingside), "opponent keeps its rights")
			testutil.AssertEqual(t, board.ToMove, tt.colour.Opposite())
		})
	}
}

func TestApplyMove_CastlingStaleRights(t *testing.T) {
	board := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	move := castleMove(chess.Kingside)
	testutil.AssertNoError(t, ResolveMove(board, move))

	board.WhiteKingside = false
	before := board.Copy()
	err := ApplyMove(board, move)
	testutil.AssertErrorIs(t, err, errors.ErrCastlingRightsRevoked)
	testutil.AssertTrue(t, board.Equal(before), "board untouched on failure")
}

func TestApplyMove_RoundTrip(t *testing.T) {
	board := mustFEN(t, InitialFEN)
	for _, m := range []*chess.Move{
		pieceMove(chess.Pawn, "e4"),
		pieceMove(chess.Pawn, "e5"),
		pieceMove(chess.Knight, "f3"),
		pieceMove(chess.Knight, "c6"),
		pieceMove(chess.Bishop, "b5"),
	} {
		play(t, board, m)
	}

	want := testutil.InitialBoard()
	relocate := func(from, to string) {
		want.Put(sq(to), want.At(sq(from)))
		want.Put(sq(from), chess.Empty)
	}
	relocate("e2", "e4")
	relocate("e7", "e5")
	relocate("g1", "f3")
	relocate("b8", "c6")
	relocate("f1", "b5")
	want.ToMove = chess.Black
	want.MoveNumber = 3

	testutil.AssertEqual(t, board, want)
	testutil.AssertEqual(t, BoardToFEN(board), "r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 0 3")
}

func TestApplyMove_Promotion(t *testing.T) {
	tests := []struct {
		name  string
		opts  []string
		want  chess.Piece
		check bool
	}{
		{"default queen", nil, chess.W(chess.Queen), true},
		{"rook", []string{"=R"}, chess.W(chess.Rook), true},
		{"bishop", []string{"=B"}, chess.W(chess.Bishop), false},
		{"knight", []string{"=N"}, chess.W(chess.Knight), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
			play(t, board, pieceMove(chess.Pawn, "a8", tt.opts...))

			testutil.AssertPiece(t, board, "a8", tt.want)
			testutil.AssertEmpty(t, board, "a7")
			testutil.AssertEqual(t, IsInCheck(board, chess.Black), tt.check)
		})
	}
}

func TestApplyMove_CastlingRights(t *testing.T) {
	const fen = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	tests := []struct {
		name  string
		moves []*chess.Move
		want  [4]bool // K Q k q
	}{
		{"kingside rook moves", []*chess.Move{pieceMove(chess.Rook, "g1")}, [4]bool{false, true, true, true}},
		{"queenside rook moves", []*chess.Move{pieceMove(chess.Rook, "b1")}, [4]bool{true, false, true, true}},
		{"king moves", []*chess.Move{pieceMove(chess.King, "f1")}, [4]bool{false, false, true, true}},
		{"rook captures rook", []*chess.Move{pieceMove(chess.Rook, "h8", "x")}, [4]bool{false, true, false, true}},
		{
			name:  "rook returns home",
			moves: []*chess.Move{pieceMove(chess.Rook, "h2"), pieceMove(chess.King, "d8"), pieceMove(chess.Rook, "h1")},
			want:  [4]bool{false, true, false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, fen)
			for _, m := range tt.moves {
				play(t, board, m)
			}
			got := [4]bool{board.WhiteKingside, board.WhiteQueenside, board.BlackKingside, board.BlackQueenside}
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestApplyMove_Refusals(t *testing.T) {
	board := mustFEN(t, InitialFEN)
	before := board.Copy()

	unresolved := pieceMove(chess.Pawn, "e4")
	err := ApplyMove(board, unresolved)
	testutil.AssertErrorIs(t, err, errors.ErrIncompleteMove)
	testutil.AssertTrue(t, errors.IsFatal(err))

	testutil.AssertErrorIs(t, ApplyMove(board, nil), errors.ErrIncompleteMove)

	wrongSide := pieceMove(chess.Pawn, "e5")
	wrongSide.SetFrom(sq("e7"), chess.B(chess.Pawn))
	testutil.AssertErrorIs(t, ApplyMove(board, wrongSide), errors.ErrIllegalMove)

	stale := pieceMove(chess.Knight, "f3")
	stale.SetFrom(sq("e4"), chess.W(chess.Knight))
	testutil.AssertErrorIs(t, ApplyMove(board, stale), errors.ErrIncompleteMove)

	ontoOwn := pieceMove(chess.Knight, "d2")
	ontoOwn.SetFrom(sq("b1"), chess.W(chess.Knight))
	testutil.AssertErrorIs(t, ApplyMove(board, ontoOwn), errors.ErrIllegalSameColorTarget)

	badPromotion := pieceMove(chess.Knight, "c3", "=Q")
	badPromotion.SetFrom(sq("b1"), chess.W(chess.Knight))
	testutil.AssertErrorIs(t, ApplyMove(board, badPromotion), errors.ErrInvalidPromotion)

	testutil.AssertTrue(t, board.Equal(before), "board untouched by refused moves")
}

func TestApplyMove_MoveNumber(t *testing.T) {
	board := mustFEN(t, InitialFEN)
	play(t, board, pieceMove(chess.Pawn, "e4"))
	testutil.AssertEqual(t, board.MoveNumber, uint(1))
	play(t, board, pieceMove(chess.Pawn, "e5"))
	testutil.AssertEqual(t, board.MoveNumber, uint(2))
	testutil.AssertEqual(t, board.ToMove, chess.White)
}

func TestScratchIsIndependent(t *testing.T) {
	board := mustFEN(t, InitialFEN)
	scratch := board.Scratch()
	scratch.Put(sq("e2"), chess.Empty)
	scratch.ToMove = chess.Black
	scratch.WhiteKingside = false

	testutil.AssertPiece(t, board, "e2", chess.W(chess.Pawn))
	testutil.AssertEqual(t, board.ToMove, chess.White)
	testutil.AssertTrue(t, board.WhiteKingside)
}
