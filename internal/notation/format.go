package notation

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/engine"
)

// FormatMove renders a resolved move in SAN. The board is the position
// before the move. A source file or rank is written only when another
// piece of the same kind could legally reach the same square, and the
// suffix follows the move's CheckStatus.
func FormatMove(board *chess.Board, move *chess.Move) (string, error) {
	var sb strings.Builder

	switch {
	case move.IsCastle():
		sb.WriteString(move.Castle.String())

	case move.Piece == chess.Pawn:
		if move.Capture || move.EnPassant {
			sb.WriteByte(byte(move.SourceCol))
			sb.WriteByte('x')
		}
		sb.WriteString(move.To().String())
		if move.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(move.Promotion.Letter())
		}

	default:
		sb.WriteByte(move.Piece.Letter())
		prefix, err := disambiguation(board, move)
		if err != nil {
			return "", err
		}
		sb.WriteString(prefix)
		if move.Capture {
			sb.WriteByte('x')
		}
		sb.WriteString(move.To().String())
	}

	switch move.CheckStatus {
	case chess.Check:
		sb.WriteByte('+')
	case chess.Mate:
		sb.WriteByte('#')
	}
	return sb.String(), nil
}

// disambiguation returns the shortest source prefix that singles out the
// moving piece among its legal rivals: file, then rank, then both.
func disambiguation(board *chess.Board, move *chess.Move) (string, error) {
	legal, err := engine.LegalMoves(board)
	if err != nil {
		return "", err
	}

	from := move.From()
	rivals := slices.DeleteFunc(legal, func(m chess.Move) bool {
		return m.Piece != move.Piece || m.To() != move.To() || m.From() == from || m.IsCastle()
	})
	if len(rivals) == 0 {
		return "", nil
	}

	sameFile := slices.ContainsFunc(rivals, func(m chess.Move) bool { return m.SourceCol == from.Col })
	if !sameFile {
		return string(byte(from.Col)), nil
	}
	sameRank := slices.ContainsFunc(rivals, func(m chess.Move) bool { return m.SourceRank == from.Rank })
	if !sameRank {
		return string(byte(from.Rank)), nil
	}
	return from.String(), nil
}
