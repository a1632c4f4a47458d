package engine

import "github.com/lgbarn/chess-arbiter-go/internal/chess"

// Classify reports the state of the game for the side to move: in
// progress while it has a legal move, otherwise checkmate if its king is
// attacked and stalemate if not.
func Classify(board *chess.Board) (chess.Outcome, error) {
	colour := board.ToMove

	attacked, err := IsAttacked(board, colour)
	if err != nil {
		return chess.Outcome{}, err
	}
	mobile, err := HasLegalMoves(board, colour)
	if err != nil {
		return chess.Outcome{}, err
	}

	switch {
	case mobile:
		return chess.Outcome{Kind: chess.InProgress}, nil
	case attacked:
		return chess.Outcome{Kind: chess.Checkmate, Winner: colour.Opposite()}, nil
	default:
		return chess.Outcome{Kind: chess.Stalemate}, nil
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	outcome, err := Classify(board)
	return err == nil && outcome.Kind == chess.Checkmate
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	outcome, err := Classify(board)
	return err == nil && outcome.Kind == chess.Stalemate
}

// CheckStatusOf reports whether the side to move is in check or mated.
func CheckStatusOf(board *chess.Board) (chess.CheckStatus, error) {
	outcome, err := Classify(board)
	if err != nil {
		return chess.NoCheck, err
	}
	if outcome.Kind == chess.Checkmate {
		return chess.Mate, nil
	}
	if IsInCheck(board, board.ToMove) {
		return chess.Check, nil
	}
	return chess.NoCheck, nil
}
