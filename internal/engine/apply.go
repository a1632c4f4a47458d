package engine

import (
	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// ApplyMove applies a resolved move to the board and updates the board state.
// The move must be complete (see ResolveMove); every check runs before the
// first write, so the board is untouched when an error is returned. Errors
// here mean the caller skipped or bypassed resolution.
func ApplyMove(board *chess.Board, move *chess.Move) error {
	if move == nil || !move.IsComplete() {
		return errors.ErrIncompleteMove
	}

	colour := chess.ExtractColour(move.Moving)
	if colour != board.ToMove {
		return errors.Wrapf(errors.ErrIllegalMove, "%s moved but %s is to move", colour.Lower(), board.ToMove.Lower())
	}

	if move.IsCastle() {
		if err := applyCastle(board, move, colour); err != nil {
			return err
		}
		board.ClearEnPassant()
		finishPly(board, colour)
		return nil
	}

	from := move.From()
	to := move.To()
	if board.At(from) != move.Moving {
		return errors.Wrapf(errors.ErrIncompleteMove, "%s does not hold a %s %s", from, colour.Lower(), pieceName(move.Piece))
	}
	if chess.IsColour(board.At(to), colour) {
		return errors.Wrapf(errors.ErrIllegalSameColorTarget, "%s", to)
	}

	placed, err := placedPiece(move, colour)
	if err != nil {
		return err
	}

	dir := chess.ColourOffset(colour)
	captured := board.At(to)
	if move.EnPassant {
		// The captured pawn sits beside the origin, not on the destination.
		victim := to.Offset(0, -dir)
		captured = board.At(victim)
		board.Put(victim, chess.Empty)
	} else if move.Capture {
		board.Put(to, chess.Empty)
	}

	board.Put(to, placed)
	board.Put(from, chess.Empty)

	if move.Piece == chess.Pawn && abs(int(to.Rank)-int(from.Rank)) == 2 {
		board.SetEnPassant(from.Offset(0, dir))
	} else {
		board.ClearEnPassant()
	}

	if move.Piece == chess.King {
		board.RevokeCastling(colour, chess.Kingside)
		board.RevokeCastling(colour, chess.Queenside)
	}
	updateCastlingRightsForSquare(board, from)
	updateCastlingRightsForSquare(board, to)

	move.Captured = captured
	finishPly(board, colour)
	return nil
}

// placedPiece returns the piece that ends up on the destination square,
// validating any promotion.
func placedPiece(move *chess.Move, colour chess.Colour) (chess.Piece, error) {
	reachesFarRank := move.Piece == chess.Pawn && move.ToRank == chess.PromotionRank(colour)

	if !move.IsPromotion() {
		if reachesFarRank {
			// Default to queen
			return chess.MakeColouredPiece(colour, chess.Queen), nil
		}
		return move.Moving, nil
	}

	if !reachesFarRank {
		return chess.Empty, errors.Wrapf(errors.ErrInvalidPromotion, "%s cannot promote on %s", pieceName(move.Piece), move.To())
	}
	switch move.Promotion {
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		return chess.MakeColouredPiece(colour, move.Promotion), nil
	}
	return chess.Empty, errors.Wrapf(errors.ErrInvalidPromotion, "cannot promote to %s", pieceName(move.Promotion))
}

// finishPly advances the move counter and passes the turn.
func finishPly(board *chess.Board, colour chess.Colour) {
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
}
