package chess

// Square names a board square by its character coordinates.
type Square struct {
	Col  Col
	Rank Rank
}

// Sq builds a Square from character coordinates.
func Sq(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// Valid reports whether the square is on the board.
func (s Square) Valid() bool {
	return s.Col.Valid() && s.Rank.Valid()
}

// Offset returns the square dc files and dr ranks away. The result may be
// off the board; check Valid.
func (s Square) Offset(dc, dr int) Square {
	return Square{Col: Col(int(s.Col) + dc), Rank: Rank(int(s.Rank) + dr)}
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(s.Col), byte(s.Rank)})
}

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The board squares, Squares[file][rank] with file 0-7 = a-h and
	// rank 0-7 = 1-8.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// The current move number.
	MoveNumber uint

	// Castling rights. A right only records that the king and the rook
	// involved have not moved; it says nothing about attacks.
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool

	// Is EnPassant capture possible? If so then EPRank and EPCol have
	// the square on which this can be made.
	EnPassant bool
	EPRank    Rank
	EPCol     Col
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[col][0] = W(backRank[col])
		b.Squares[col][1] = W(Pawn)
		b.Squares[col][6] = B(Pawn)
		b.Squares[col][7] = B(backRank[col])
	}

	b.WhiteKingside = true
	b.WhiteQueenside = true
	b.BlackKingside = true
	b.BlackQueenside = true

	b.ToMove = White
	b.MoveNumber = 1
	b.ClearEnPassant()
}

// Clear empties every square. Side to move and rights are left alone.
func (b *Board) Clear() {
	for col := 0; col < BoardSize; col++ {
		for rank := 0; rank < BoardSize; rank++ {
			b.Squares[col][rank] = Empty
		}
	}
}

// Get returns the piece at the given coordinates (using char coords 'a'-'h', '1'-'8').
// Squares off the board read as Empty.
func (b *Board) Get(col Col, rank Rank) Piece {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c < 0 || r < 0 {
		return Empty
	}
	return b.Squares[c][r]
}

// Set places a piece at the given coordinates.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c >= 0 && r >= 0 {
		b.Squares[c][r] = piece
	}
}

// At returns the piece on a square.
func (b *Board) At(sq Square) Piece {
	return b.Get(sq.Col, sq.Rank)
}

// Put places a piece on a square.
func (b *Board) Put(sq Square, piece Piece) {
	b.Set(sq.Col, sq.Rank, piece)
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := MakeColouredPiece(colour, King)
	for col := Col('a'); col <= 'h'; col++ {
		for rank := Rank('1'); rank <= '8'; rank++ {
			if b.Get(col, rank) == king {
				return Sq(col, rank), true
			}
		}
	}
	return Square{}, false
}

// CanCastle reports whether the castling right for colour and kind is still held.
func (b *Board) CanCastle(colour Colour, kind CastleKind) bool {
	switch {
	case colour == White && kind == Kingside:
		return b.WhiteKingside
	case colour == White && kind == Queenside:
		return b.WhiteQueenside
	case colour == Black && kind == Kingside:
		return b.BlackKingside
	case colour == Black && kind == Queenside:
		return b.BlackQueenside
	}
	return false
}

// RevokeCastling permanently clears one castling right.
func (b *Board) RevokeCastling(colour Colour, kind CastleKind) {
	switch {
	case colour == White && kind == Kingside:
		b.WhiteKingside = false
	case colour == White && kind == Queenside:
		b.WhiteQueenside = false
	case colour == Black && kind == Kingside:
		b.BlackKingside = false
	case colour == Black && kind == Queenside:
		b.BlackQueenside = false
	}
}

// EnPassantSquare returns the en-passant target, if any.
func (b *Board) EnPassantSquare() (Square, bool) {
	if !b.EnPassant {
		return Square{}, false
	}
	return Sq(b.EPCol, b.EPRank), true
}

// SetEnPassant records the square a pawn just skipped over.
func (b *Board) SetEnPassant(sq Square) {
	b.EnPassant = true
	b.EPCol = sq.Col
	b.EPRank = sq.Rank
}

// ClearEnPassant removes the en-passant target.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPCol = 0
	b.EPRank = 0
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Scratch is a throwaway board used for look-ahead. It is always a full
// value copy, so mutating it never reaches the board it came from.
type Scratch struct {
	Board
}

// Scratch returns a look-ahead copy of the board.
func (b *Board) Scratch() *Scratch {
	return &Scratch{Board: *b}
}

// Equal reports whether two boards hold the same position and state.
func (b *Board) Equal(other *Board) bool {
	return *b == *other
}

// CastlingRoute describes the squares involved in one castling move.
type CastlingRoute struct {
	KingFrom Square
	KingTo   Square
	RookFrom Square
	RookTo   Square
	// Between lists the squares strictly between king and rook.
	Between []Square
	// Passes lists the squares the king steps onto, in order.
	Passes []Square
}

// CastlingRouteFor returns the fixed castling geometry for colour and kind.
func CastlingRouteFor(colour Colour, kind CastleKind) CastlingRoute {
	rank := HomeRank(colour)
	if kind == Queenside {
		return CastlingRoute{
			KingFrom: Sq('e', rank),
			KingTo:   Sq('c', rank),
			RookFrom: Sq('a', rank),
			RookTo:   Sq('d', rank),
			Between:  []Square{Sq('b', rank), Sq('c', rank), Sq('d', rank)},
			Passes:   []Square{Sq('d', rank), Sq('c', rank)},
		}
	}
	return CastlingRoute{
		KingFrom: Sq('e', rank),
		KingTo:   Sq('g', rank),
		RookFrom: Sq('h', rank),
		RookTo:   Sq('f', rank),
		Between:  []Square{Sq('f', rank), Sq('g', rank)},
		Passes:   []Square{Sq('f', rank), Sq('g', rank)},
	}
}
