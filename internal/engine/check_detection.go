package engine

import (
	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// IsAttacked reports whether the given colour's king is attacked.
// It fails with ErrKingMissing if that colour has no king on the board.
func IsAttacked(board *chess.Board, colour chess.Colour) (bool, error) {
	king, ok := board.FindKing(colour)
	if !ok {
		return false, errors.Wrapf(errors.ErrKingMissing, "%s king", colour.Lower())
	}
	return SquareAttacked(board, king, colour.Opposite()), nil
}

// IsInCheck returns true if the given colour's king is in check.
// A board without that king is reported as not in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	attacked, err := IsAttacked(board, colour)
	return err == nil && attacked
}

// SquareAttacked returns true if the square is attacked by the given colour.
func SquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	queen := chess.MakeColouredPiece(byColour, chess.Queen)

	// Orthogonal rays: the first occupied square decides, friend or foe.
	if rayHits(board, sq, orthogonalDirs, rook, queen) {
		return true
	}

	// Diagonal rays.
	if rayHits(board, sq, diagonalDirs, bishop, queen) {
		return true
	}

	// Knight attacks
	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, d := range knightOffsets {
		if s := step(sq, d); s.Valid() && board.At(s) == knight {
			return true
		}
	}

	// Pawn attacks come from the rank one step toward the attacker's side.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnRank := -chess.ColourOffset(byColour)
	for _, dc := range []int{-1, 1} {
		if s := sq.Offset(dc, pawnRank); s.Valid() && board.At(s) == pawn {
			return true
		}
	}

	// King attacks
	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, d := range kingOffsets {
		if s := step(sq, d); s.Valid() && board.At(s) == king {
			return true
		}
	}

	return false
}

// rayHits walks each direction from sq and reports whether the first
// occupied square holds one of the given attackers.
func rayHits(board *chess.Board, sq chess.Square, dirs []direction, attackers ...chess.Piece) bool {
	for _, d := range dirs {
		for s := step(sq, d); s.Valid(); s = step(s, d) {
			piece := board.At(s)
			if piece == chess.Empty {
				continue
			}
			for _, a := range attackers {
				if piece == a {
					return true
				}
			}
			break // Blocked
		}
	}
	return false
}
