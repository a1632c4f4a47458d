package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// ResolveMove determines which piece makes a partially specified move and
// completes the move accordingly: origin square, moving piece, en-passant
// and double-push flags, and the default promotion piece. The board is
// only read. On error the move is left unresolved.
func ResolveMove(board *chess.Board, move *chess.Move) error {
	if move == nil {
		return errors.Wrap(errors.ErrIllegalMove, "no move")
	}
	move.Reset()
	colour := board.ToMove

	if move.IsCastle() {
		return resolveCastle(board, move, colour)
	}

	to := move.To()
	if !to.Valid() {
		return errors.Wrapf(errors.ErrIllegalMove, "destination %q off the board", string([]byte{byte(move.ToCol), byte(move.ToRank)}))
	}

	target := board.At(to)
	if chess.IsColour(target, colour) {
		return errors.Wrapf(errors.ErrIllegalSameColorTarget, "%s", describe(move, colour))
	}
	if move.IsPromotion() && move.Piece != chess.Pawn {
		return errors.Wrapf(errors.ErrInvalidPromotion, "%s", describe(move, colour))
	}

	var err error
	switch move.Piece {
	case chess.Pawn:
		err = resolvePawn(board, move, colour)
	case chess.Knight, chess.King:
		err = resolveStep(board, move, colour)
	case chess.Bishop, chess.Rook, chess.Queen:
		err = resolveSlide(board, move, colour)
	default:
		err = errors.Wrapf(errors.ErrIllegalMove, "unknown piece %v", move.Piece)
	}
	if err != nil {
		move.Reset()
	}
	return err
}

// describe renders the move for error messages, e.g. "white rook to d4".
func describe(move *chess.Move, colour chess.Colour) string {
	return fmt.Sprintf("%s %s to %s", colour.Lower(), pieceName(move.Piece), move.To())
}

// resolveCastle takes the generator's validated castling candidate, so
// resolution enforces exactly the conditions move generation does.
func resolveCastle(board *chess.Board, move *chess.Move, colour chess.Colour) error {
	candidate, err := castlingCandidate(board, colour, move.Castle)
	if err != nil {
		return err
	}
	move.Piece = chess.King
	move.ToCol = candidate.ToCol
	move.ToRank = candidate.ToRank
	move.Capture = false
	move.SetFrom(candidate.From(), candidate.Moving)
	return nil
}

// resolvePawn finds the pawn making a push or a capture.
func resolvePawn(board *chess.Board, move *chess.Move, colour chess.Colour) error {
	to := move.To()
	dir := chess.ColourOffset(colour)
	pawn := chess.MakeColouredPiece(colour, chess.Pawn)

	if err := resolvePromotion(move, colour); err != nil {
		return err
	}

	if !move.Capture {
		if board.At(to) != chess.Empty {
			return errors.Wrapf(errors.ErrNoPawnCanMove, "%s: destination occupied", describe(move, colour))
		}
		if move.FromCol != 0 && move.FromCol != move.ToCol {
			return errors.Wrapf(errors.ErrDisambiguationMismatch, "%s from file %c", describe(move, colour), move.FromCol)
		}

		var origin chess.Square
		oneBehind := to.Offset(0, -dir)
		twoBehind := to.Offset(0, -2*dir)
		switch {
		case board.At(oneBehind) == pawn:
			origin = oneBehind
		case int(to.Rank) == int(chess.PawnStartRank(colour))+2*dir &&
			board.At(oneBehind) == chess.Empty && board.At(twoBehind) == pawn:
			origin = twoBehind
			move.DoublePush = true
		default:
			return errors.Wrapf(errors.ErrNoPawnCanMove, "%s", describe(move, colour))
		}
		if move.FromRank != 0 && move.FromRank != origin.Rank {
			return errors.Wrapf(errors.ErrDisambiguationMismatch, "%s from rank %c", describe(move, colour), move.FromRank)
		}
		return finishResolution(board, move, colour, []chess.Square{origin}, pawnErrors)
	}

	var candidates []chess.Square
	for _, dc := range []int{-1, 1} {
		if sq := to.Offset(dc, -dir); sq.Valid() && board.At(sq) == pawn {
			candidates = append(candidates, sq)
		}
	}

	if ep, ok := board.EnPassantSquare(); ok && ep == to {
		if board.At(to.Offset(0, -dir)) != chess.MakeColouredPiece(colour.Opposite(), chess.Pawn) {
			return errors.Wrapf(errors.ErrNoPawnCanCapture, "%s: no pawn to take en passant", describe(move, colour))
		}
		move.EnPassant = true
		return finishResolution(board, move, colour, candidates, pawnCaptureErrors)
	}

	if board.At(to) == chess.Empty {
		return errors.Wrapf(errors.ErrCaptureOnEmptySquare, "%s", describe(move, colour))
	}
	return finishResolution(board, move, colour, candidates, pawnCaptureErrors)
}

// resolvePromotion checks the promotion piece against the destination rank.
// A pawn reaching the far rank without one promotes to a queen.
func resolvePromotion(move *chess.Move, colour chess.Colour) error {
	if move.ToRank != chess.PromotionRank(colour) {
		if move.IsPromotion() {
			return errors.Wrapf(errors.ErrInvalidPromotion, "%s is not the last rank", move.To())
		}
		return nil
	}
	switch move.Promotion {
	case chess.Empty:
		move.Promotion = chess.Queen
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
	default:
		return errors.Wrapf(errors.ErrInvalidPromotion, "cannot promote to %s", pieceName(move.Promotion))
	}
	return nil
}

// resolveStep searches outward from the destination with the piece's
// fixed offsets; a friendly piece of the right kind one hop away is a
// candidate.
func resolveStep(board *chess.Board, move *chess.Move, colour chess.Colour) error {
	to := move.To()
	piece := chess.MakeColouredPiece(colour, move.Piece)

	var candidates []chess.Square
	for _, d := range stepOffsets(move.Piece) {
		if sq := step(to, d); sq.Valid() && board.At(sq) == piece {
			candidates = append(candidates, sq)
		}
	}
	markCapture(board, move)
	return finishResolution(board, move, colour, candidates, pieceErrors)
}

// resolveSlide scans each ray outward from the destination. Only the
// nearest occupied square of a ray can be the origin, since sliding
// pieces cannot pass a blocker. A partial disambiguator restricts the
// scan to rays heading toward the given file or rank.
func resolveSlide(board *chess.Board, move *chess.Move, colour chess.Colour) error {
	to := move.To()
	piece := chess.MakeColouredPiece(colour, move.Piece)
	partial := (move.FromCol != 0) != (move.FromRank != 0)

	var candidates []chess.Square
	excluded := false
	for _, d := range slidingDirs(move.Piece) {
		sq, found := firstOccupied(board, to, d)
		if !found || board.At(sq) != piece {
			continue
		}
		if partial && !rayTowards(move, to, d) {
			excluded = true
			continue
		}
		candidates = append(candidates, sq)
	}

	markCapture(board, move)
	if len(candidates) == 0 && excluded {
		return errors.Wrapf(errors.ErrDisambiguationMismatch, "%s", describe(move, colour))
	}
	return finishResolution(board, move, colour, candidates, pieceErrors)
}

// firstOccupied returns the first non-empty square from sq in direction d.
func firstOccupied(board *chess.Board, sq chess.Square, d direction) (chess.Square, bool) {
	for s := step(sq, d); s.Valid(); s = step(s, d) {
		if board.At(s) != chess.Empty {
			return s, true
		}
	}
	return chess.Square{}, false
}

// rayTowards reports whether direction d from the destination heads toward
// the supplied source file or rank.
func rayTowards(move *chess.Move, to chess.Square, d direction) bool {
	if move.FromCol != 0 && sign(int(move.FromCol)-int(to.Col)) != d[0] {
		return false
	}
	if move.FromRank != 0 && sign(int(move.FromRank)-int(to.Rank)) != d[1] {
		return false
	}
	return true
}

// markCapture derives the capture flag for piece moves: taking an enemy
// piece is a capture whether or not it was written, and a declared
// capture needs something to take.
func markCapture(board *chess.Board, move *chess.Move) {
	if board.At(move.To()) != chess.Empty {
		move.Capture = true
	}
}

// resolutionErrors names the failures reported for each way a candidate
// search can go wrong.
type resolutionErrors struct {
	none      error
	ambiguous error
}

var (
	pieceErrors       = resolutionErrors{none: errors.ErrNoPieceCanMove, ambiguous: errors.ErrAmbiguousMove}
	pawnErrors        = resolutionErrors{none: errors.ErrNoPawnCanMove, ambiguous: errors.ErrAmbiguousMove}
	pawnCaptureErrors = resolutionErrors{none: errors.ErrNoPawnCanCapture, ambiguous: errors.ErrAmbiguousCapture}
)

// finishResolution narrows the candidates to exactly one origin:
// disambiguators first, then discarding candidates whose move would leave
// the mover's king attacked. It records the origin on success.
func finishResolution(board *chess.Board, move *chess.Move, colour chess.Colour, candidates []chess.Square, errs resolutionErrors) error {
	if move.Capture && board.At(move.To()) == chess.Empty && !move.EnPassant {
		return errors.Wrapf(errors.ErrCaptureOnEmptySquare, "%s", describe(move, colour))
	}
	if len(candidates) == 0 {
		return errors.Wrapf(errs.none, "%s", describe(move, colour))
	}

	disambiguated := move.FromCol != 0 || move.FromRank != 0
	if disambiguated {
		candidates = slices.DeleteFunc(candidates, func(sq chess.Square) bool {
			return (move.FromCol != 0 && sq.Col != move.FromCol) ||
				(move.FromRank != 0 && sq.Rank != move.FromRank)
		})
		if len(candidates) == 0 {
			return errors.Wrapf(errors.ErrDisambiguationMismatch, "%s", describe(move, colour))
		}
	}

	moving := chess.MakeColouredPiece(colour, move.Piece)
	var kingErr error
	candidates = slices.DeleteFunc(candidates, func(sq chess.Square) bool {
		if kingErr != nil {
			return true
		}
		trial := *move
		trial.SetFrom(sq, moving)
		attacked, err := LeavesKingAttacked(board, &trial)
		if err != nil {
			kingErr = err
			return true
		}
		return attacked
	})
	if kingErr != nil {
		return kingErr
	}
	if len(candidates) == 0 {
		return errors.Wrapf(errors.ErrKingLeftInCheck, "%s", describe(move, colour))
	}

	if len(candidates) > 1 {
		if disambiguated {
			return errors.Wrapf(errors.ErrDisambiguationMismatch, "%s: %d pieces still match", describe(move, colour), len(candidates))
		}
		return errors.Wrapf(errs.ambiguous, "%s: %s", describe(move, colour), squareList(candidates))
	}

	move.SetFrom(candidates[0], moving)
	return nil
}

// squareList joins square names for messages.
func squareList(squares []chess.Square) string {
	s := ""
	for i, sq := range squares {
		if i > 0 {
			s += " or "
		}
		s += sq.String()
	}
	return s
}
