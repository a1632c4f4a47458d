package engine

import "github.com/lgbarn/chess-arbiter-go/internal/chess"

// GenerateMoves returns the pseudo-legal moves of the piece on sq: moves
// that follow the piece's movement rules without regard to whether they
// leave the mover's king attacked. Castling candidates are the exception:
// they are only produced when fully valid, including attack checks.
// Every returned move is complete. Far-rank pawn moves carry Queen as a
// placeholder promotion piece.
func GenerateMoves(board *chess.Board, sq chess.Square) []chess.Move {
	piece := board.At(sq)
	if piece == chess.Empty || !sq.Valid() {
		return nil
	}
	colour := chess.ExtractColour(piece)

	switch kind := chess.ExtractPiece(piece); kind {
	case chess.Pawn:
		return generatePawnMoves(board, sq, colour)
	case chess.Knight:
		return generateStepMoves(board, sq, kind, colour)
	case chess.Bishop, chess.Rook, chess.Queen:
		return generateSlidingMoves(board, sq, kind, colour)
	case chess.King:
		moves := generateStepMoves(board, sq, kind, colour)
		for _, castle := range []chess.CastleKind{chess.Kingside, chess.Queenside} {
			if m, err := castlingCandidate(board, colour, castle); err == nil {
				moves = append(moves, m)
			}
		}
		return moves
	}
	return nil
}

// newCandidate builds a complete move from sq to to for the given piece.
func newCandidate(board *chess.Board, kind chess.Piece, moving chess.Piece, from, to chess.Square) chess.Move {
	m := *chess.NewMove()
	m.Piece = kind
	m.ToCol = to.Col
	m.ToRank = to.Rank
	m.Capture = board.At(to) != chess.Empty
	m.SetFrom(from, moving)
	return m
}

// generatePawnMoves produces pushes, double pushes, captures and en-passant captures.
func generatePawnMoves(board *chess.Board, sq chess.Square, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	pawn := chess.MakeColouredPiece(colour, chess.Pawn)
	dir := chess.ColourOffset(colour)
	farRank := chess.PromotionRank(colour)

	add := func(m chess.Move) {
		if m.ToRank == farRank {
			m.Promotion = chess.Queen
		}
		moves = append(moves, m)
	}

	one := sq.Offset(0, dir)
	if one.Valid() && board.At(one) == chess.Empty {
		add(newCandidate(board, chess.Pawn, pawn, sq, one))

		two := sq.Offset(0, 2*dir)
		if sq.Rank == chess.PawnStartRank(colour) && board.At(two) == chess.Empty {
			m := newCandidate(board, chess.Pawn, pawn, sq, two)
			m.DoublePush = true
			add(m)
		}
	}

	epSquare, hasEP := board.EnPassantSquare()
	for _, dc := range []int{-1, 1} {
		to := sq.Offset(dc, dir)
		if !to.Valid() {
			continue
		}
		target := board.At(to)
		switch {
		case chess.IsColour(target, colour.Opposite()):
			add(newCandidate(board, chess.Pawn, pawn, sq, to))
		case target == chess.Empty && hasEP && to == epSquare &&
			board.At(to.Offset(0, -dir)) == chess.MakeColouredPiece(colour.Opposite(), chess.Pawn):
			m := newCandidate(board, chess.Pawn, pawn, sq, to)
			m.Capture = true
			m.EnPassant = true
			add(m)
		}
	}

	return moves
}

// generateStepMoves produces knight and king steps onto squares not held by a friendly piece.
func generateStepMoves(board *chess.Board, sq chess.Square, kind chess.Piece, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	moving := chess.MakeColouredPiece(colour, kind)
	for _, d := range stepOffsets(kind) {
		to := step(sq, d)
		if !to.Valid() || chess.IsColour(board.At(to), colour) {
			continue
		}
		moves = append(moves, newCandidate(board, kind, moving, sq, to))
	}
	return moves
}

// generateSlidingMoves walks each ray until the board edge or an occupied
// square, which is included only when it holds an enemy piece.
func generateSlidingMoves(board *chess.Board, sq chess.Square, kind chess.Piece, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	moving := chess.MakeColouredPiece(colour, kind)
	for _, d := range slidingDirs(kind) {
		for to := step(sq, d); to.Valid(); to = step(to, d) {
			target := board.At(to)
			if target == chess.Empty {
				moves = append(moves, newCandidate(board, kind, moving, sq, to))
				continue
			}
			if chess.ExtractColour(target) != colour {
				moves = append(moves, newCandidate(board, kind, moving, sq, to))
			}
			break // Blocked
		}
	}
	return moves
}
