package hashing

import "github.com/lgbarn/chess-arbiter-go/internal/chess"

// Zobrist keys. They are generated from a fixed seed so hashes are stable
// between runs.
var (
	pieceKeys     [2][chess.NumPieceValues][8][8]uint64
	sideKey       uint64
	castlingKeys  [4]uint64
	enPassantKeys [8]uint64
)

func init() {
	var state uint64 = 0x9e3779b97f4a7c15
	next := func() uint64 {
		// splitmix64
		state += 0x9e3779b97f4a7c15
		z := state
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		return z ^ (z >> 31)
	}

	for colour := range pieceKeys {
		for piece := range pieceKeys[colour] {
			for col := range pieceKeys[colour][piece] {
				for rank := range pieceKeys[colour][piece][col] {
					pieceKeys[colour][piece][col][rank] = next()
				}
			}
		}
	}
	sideKey = next()
	for i := range castlingKeys {
		castlingKeys[i] = next()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = next()
	}
}

// GenerateZobristHash hashes the full position: placement, side to move,
// castling rights and en-passant file.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			p := board.Get(col, rank)
			if p == chess.Empty {
				continue
			}
			hash ^= pieceKeys[chess.ExtractColour(p)][chess.ExtractPiece(p)][col-'a'][rank-'1']
		}
	}

	if board.ToMove == chess.White {
		hash ^= sideKey
	}
	rights := []bool{board.WhiteKingside, board.WhiteQueenside, board.BlackKingside, board.BlackQueenside}
	for i, ok := range rights {
		if ok {
			hash ^= castlingKeys[i]
		}
	}
	if sq, ok := board.EnPassantSquare(); ok {
		hash ^= enPassantKeys[sq.Col-'a']
	}
	return hash
}

// WeakHash is a cheap placement-only hash used as a second check when two
// Zobrist hashes collide.
func WeakHash(board *chess.Board) uint64 {
	var hash uint64
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			p := board.Get(col, rank)
			if p == chess.Empty {
				continue
			}
			sq := uint64(col-'a')*8 + uint64(rank-'1')
			hash += uint64(p) * (sq + 1) * 0x100000001b3
		}
	}
	return hash
}
