// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Lower returns the lowercase colour name used in game summaries.
func (c Colour) Lower() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type, or a coloured piece when built
// with MakeColouredPiece.
type Piece int

const (
	Empty Piece = iota // Empty square, carries no colour
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p > King {
		p = ExtractPiece(p)
	}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsSlider reports whether the piece kind moves along rays.
func (p Piece) IsSlider() bool {
	return p == Bishop || p == Rook || p == Queen
}

// CastleKind distinguishes castling moves from ordinary ones.
type CastleKind int

const (
	NoCastle CastleKind = iota
	Kingside
	Queenside
)

// String returns the SAN form of a castling kind.
func (k CastleKind) String() string {
	switch k {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	default:
		return ""
	}
}

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// Valid reports whether the rank is on the board.
func (r Rank) Valid() bool {
	return r >= FirstRank && r <= LastRank
}

// Valid reports whether the column is on the board.
func (c Col) Valid() bool {
	return c >= FirstCol && c <= LastCol
}

// RankConvert converts a rank character to a board array index, or -1.
func RankConvert(rank Rank) int {
	if rank.Valid() {
		return int(rank - RankBase)
	}
	return -1
}

// ColConvert converts a column character to a board array index, or -1.
func ColConvert(col Col) int {
	if col.Valid() {
		return int(col - ColBase)
	}
	return -1
}

// ToRank converts a board array index back to a rank character.
func ToRank(r int) Rank {
	return Rank(r + RankBase)
}

// ToCol converts a board array index back to a column character.
func ToCol(c int) Col {
	return Col(c + ColBase)
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank of the given colour.
func HomeRank(colour Colour) Rank {
	if colour == White {
		return '1'
	}
	return '8'
}

// PawnStartRank returns the rank pawns of the given colour start on.
func PawnStartRank(colour Colour) Rank {
	if colour == White {
		return '2'
	}
	return '7'
}

// PromotionRank returns the far rank for pawns of the given colour.
func PromotionRank(colour Colour) Rank {
	return HomeRank(colour.Opposite())
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
// The result is meaningless for Empty.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsColour reports whether the square content is a piece of the given colour.
func IsColour(colouredPiece Piece, colour Colour) bool {
	return colouredPiece != Empty && ExtractColour(colouredPiece) == colour
}

// CheckStatus indicates whether a move gives check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Mate
)

// OutcomeKind classifies the state of a game for the side to move.
type OutcomeKind int

const (
	InProgress OutcomeKind = iota
	Checkmate
	Stalemate
)

// Outcome is the classifier result. Winner is only set for Checkmate.
type Outcome struct {
	Kind   OutcomeKind
	Winner Colour
}

// IsOver reports whether the game has ended.
func (o Outcome) IsOver() bool {
	return o.Kind != InProgress
}
