package chess

// Move describes a single move. The notation layer fills the declared
// fields; the resolver fills the source square and the derived flags.
type Move struct {
	// The move text (e.g., "Nf3", "e4", "O-O").
	Text string

	// The kind of piece being moved (Pawn, Knight, ...).
	Piece Piece

	// Destination square.
	ToCol  Col
	ToRank Rank

	// Optional disambiguators. Zero means not supplied.
	FromCol  Col
	FromRank Rank

	// Whether the move was declared as a capture.
	Capture bool

	// The piece promoted to (Empty if not a promotion).
	Promotion Piece

	// Castling kind (NoCastle for ordinary moves).
	Castle CastleKind

	// Resolved origin square.
	SourceCol  Col
	SourceRank Rank

	// The coloured piece that moves, set on resolution.
	Moving Piece

	// EnPassant is set by the resolver when the capture takes a pawn
	// that just made a double push.
	EnPassant bool

	// DoublePush is set for a pawn advancing two squares.
	DoublePush bool

	// Resolved is true once the origin square is known.
	Resolved bool

	// The piece removed by this move (Empty if none), set on apply.
	Captured Piece

	// Whether this move gives check or checkmate, set by the session.
	CheckStatus CheckStatus
}

// NewMove creates a new empty move.
func NewMove() *Move {
	return &Move{
		Promotion:   Empty,
		Captured:    Empty,
		CheckStatus: NoCheck,
	}
}

// To returns the destination square.
func (m *Move) To() Square {
	return Sq(m.ToCol, m.ToRank)
}

// From returns the resolved origin square.
func (m *Move) From() Square {
	return Sq(m.SourceCol, m.SourceRank)
}

// SetFrom records the resolved origin square and moving piece.
func (m *Move) SetFrom(sq Square, moving Piece) {
	m.SourceCol = sq.Col
	m.SourceRank = sq.Rank
	m.Moving = moving
	m.Resolved = true
}

// IsComplete reports whether the move can be handed to the mutator.
func (m *Move) IsComplete() bool {
	return m.Resolved && m.From().Valid() && m.To().Valid() && m.Moving != Empty
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return m.Promotion != Empty
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	return m.Castle != NoCastle
}

// Reset clears every field the resolver writes, so a move can be resolved again.
func (m *Move) Reset() {
	m.SourceCol = 0
	m.SourceRank = 0
	m.Moving = Empty
	m.EnPassant = false
	m.DoublePush = false
	m.Resolved = false
	m.Captured = Empty
	m.CheckStatus = NoCheck
}

// LongString renders the resolved move in long algebraic form, e.g. "e2e4"
// or "e7e8q".
func (m *Move) LongString() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(rune(m.Promotion.Letter() - 'A' + 'a'))
	}
	return s
}
