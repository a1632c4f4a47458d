package engine

import (
	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// castlingCandidate returns the castling move for colour and kind if it is
// fully valid: right held, king and rook on their home squares, every
// square between them empty, king not in check and not attacked on either
// square it steps onto. The first failing condition is returned as an error.
func castlingCandidate(board *chess.Board, colour chess.Colour, kind chess.CastleKind) (chess.Move, error) {
	route := chess.CastlingRouteFor(colour, kind)
	king := chess.MakeColouredPiece(colour, chess.King)
	rook := chess.MakeColouredPiece(colour, chess.Rook)

	if !board.CanCastle(colour, kind) {
		return chess.Move{}, errors.Wrapf(errors.ErrCastlingRightsRevoked, "%s %s", colour.Lower(), kind)
	}
	if board.At(route.KingFrom) != king {
		return chess.Move{}, errors.Wrapf(errors.ErrCastlingRightsRevoked, "%s king not on %s", colour.Lower(), route.KingFrom)
	}
	if board.At(route.RookFrom) != rook {
		return chess.Move{}, errors.Wrapf(errors.ErrCastlingRookMissing, "no %s rook on %s", colour.Lower(), route.RookFrom)
	}
	for _, sq := range route.Between {
		if board.At(sq) != chess.Empty {
			return chess.Move{}, errors.Wrapf(errors.ErrCastlingPathBlocked, "%s occupied", sq)
		}
	}

	inCheck, err := IsAttacked(board, colour)
	if err != nil {
		return chess.Move{}, err
	}
	if inCheck {
		return chess.Move{}, errors.Wrapf(errors.ErrCastlingThroughCheck, "%s king in check", colour.Lower())
	}

	// Walk the king one square at a time on a scratch copy.
	scratch := board.Scratch()
	from := route.KingFrom
	for _, sq := range route.Passes {
		scratch.Put(from, chess.Empty)
		scratch.Put(sq, king)
		attacked, err := IsAttacked(&scratch.Board, colour)
		if err != nil {
			return chess.Move{}, err
		}
		if attacked {
			return chess.Move{}, errors.Wrapf(errors.ErrCastlingThroughCheck, "%s attacked", sq)
		}
		from = sq
	}

	m := *chess.NewMove()
	m.Text = kind.String()
	m.Piece = chess.King
	m.Castle = kind
	m.ToCol = route.KingTo.Col
	m.ToRank = route.KingTo.Rank
	m.SetFrom(route.KingFrom, king)
	return m, nil
}

// applyCastle relocates king and rook in one update and clears both of the
// mover's castling rights.
func applyCastle(board *chess.Board, move *chess.Move, colour chess.Colour) error {
	if !board.CanCastle(colour, move.Castle) {
		return errors.Wrapf(errors.ErrCastlingRightsRevoked, "%s %s", colour.Lower(), move.Castle)
	}

	route := chess.CastlingRouteFor(colour, move.Castle)
	king := chess.MakeColouredPiece(colour, chess.King)
	rook := chess.MakeColouredPiece(colour, chess.Rook)
	if board.At(route.KingFrom) != king {
		return errors.Wrapf(errors.ErrIncompleteMove, "%s king not on %s", colour.Lower(), route.KingFrom)
	}
	if board.At(route.RookFrom) != rook {
		return errors.Wrapf(errors.ErrCastlingRookMissing, "no %s rook on %s", colour.Lower(), route.RookFrom)
	}

	board.Put(route.KingFrom, chess.Empty)
	board.Put(route.RookFrom, chess.Empty)
	board.Put(route.KingTo, king)
	board.Put(route.RookTo, rook)

	board.RevokeCastling(colour, chess.Kingside)
	board.RevokeCastling(colour, chess.Queenside)
	move.Captured = chess.Empty
	return nil
}

// updateCastlingRightsForSquare removes the castling right tied to a corner
// square once a piece leaves it or is captured on it.
func updateCastlingRightsForSquare(board *chess.Board, sq chess.Square) {
	switch sq {
	case chess.Sq('a', '1'):
		board.RevokeCastling(chess.White, chess.Queenside)
	case chess.Sq('h', '1'):
		board.RevokeCastling(chess.White, chess.Kingside)
	case chess.Sq('a', '8'):
		board.RevokeCastling(chess.Black, chess.Queenside)
	case chess.Sq('h', '8'):
		board.RevokeCastling(chess.Black, chess.Kingside)
	}
}
