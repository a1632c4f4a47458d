package engine

import "github.com/lgbarn/chess-arbiter-go/internal/chess"

// direction is a (file, rank) step.
type direction [2]int

var (
	orthogonalDirs = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs   = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs      = append(append([]direction{}, orthogonalDirs...), diagonalDirs...)
	knightOffsets  = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = []direction{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// slidingDirs returns the ray directions of a sliding piece kind.
func slidingDirs(piece chess.Piece) []direction {
	switch piece {
	case chess.Bishop:
		return diagonalDirs
	case chess.Rook:
		return orthogonalDirs
	case chess.Queen:
		return queenDirs
	}
	return nil
}

// stepOffsets returns the fixed offsets of a stepping piece kind.
func stepOffsets(piece chess.Piece) []direction {
	switch piece {
	case chess.Knight:
		return knightOffsets
	case chess.King:
		return kingOffsets
	}
	return nil
}

// step returns the square one step from sq in direction d.
func step(sq chess.Square, d direction) chess.Square {
	return sq.Offset(d[0], d[1])
}

// pieceName returns the lowercase name of a piece kind for messages.
func pieceName(piece chess.Piece) string {
	switch piece {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	}
	return "piece"
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
