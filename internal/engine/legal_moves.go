package engine

import "github.com/lgbarn/chess-arbiter-go/internal/chess"

// promotionPieces lists the pieces a pawn may promote to.
var promotionPieces = []chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// HasLegalMoves returns true if the given colour has at least one legal move.
// It stops at the first move found.
func HasLegalMoves(board *chess.Board, colour chess.Colour) (bool, error) {
	found := false
	err := forEachLegalMove(board, colour, func(chess.Move) bool {
		found = true
		return false
	})
	return found, err
}

// LegalMoves returns every legal move of the side to move. Promotions are
// expanded into one move per promotion piece.
func LegalMoves(board *chess.Board) ([]chess.Move, error) {
	var moves []chess.Move
	err := forEachLegalMove(board, board.ToMove, func(m chess.Move) bool {
		if m.IsPromotion() {
			for _, p := range promotionPieces {
				m.Promotion = p
				moves = append(moves, m)
			}
			return true
		}
		moves = append(moves, m)
		return true
	})
	return moves, err
}

// LeavesKingAttacked plays move on a scratch copy of the board and reports
// whether the mover's king is attacked afterwards. Neither board nor move
// is modified.
func LeavesKingAttacked(board *chess.Board, move *chess.Move) (bool, error) {
	colour := chess.ExtractColour(move.Moving)
	scratch := board.Scratch()
	scratch.ToMove = colour

	trial := *move
	if err := ApplyMove(&scratch.Board, &trial); err != nil {
		return false, err
	}
	return IsAttacked(&scratch.Board, colour)
}

// forEachLegalMove calls fn for every pseudo-legal move of colour that does
// not leave its king attacked, until fn returns false.
func forEachLegalMove(board *chess.Board, colour chess.Colour, fn func(chess.Move) bool) error {
	if _, err := IsAttacked(board, colour); err != nil {
		return err
	}

	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			sq := chess.Sq(col, rank)
			if !chess.IsColour(board.At(sq), colour) {
				continue
			}

			for _, m := range GenerateMoves(board, sq) {
				attacked, err := LeavesKingAttacked(board, &m)
				if err != nil {
					return err
				}
				if attacked {
					continue
				}
				if !fn(m) {
					return nil
				}
			}
		}
	}
	return nil
}
