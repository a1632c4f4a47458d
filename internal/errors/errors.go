// Package errors provides sentinel errors and error types for the arbiter.
// It defines every way a move can be rejected and structured error types
// that preserve context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for move resolution and application.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalSameColorTarget indicates the destination holds a piece of the mover's colour.
	ErrIllegalSameColorTarget = errors.New("destination occupied by own piece")

	// ErrNoPieceCanMove indicates no piece of the declared type can reach the destination.
	ErrNoPieceCanMove = errors.New("no piece can move")

	// ErrAmbiguousMove indicates several pieces can reach the destination and no disambiguator was given.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrDisambiguationMismatch indicates the disambiguator matches no candidate, or more than one.
	ErrDisambiguationMismatch = errors.New("disambiguation does not match")

	// ErrNoPawnCanMove indicates no pawn can advance to the destination.
	ErrNoPawnCanMove = errors.New("no pawn can move")

	// ErrNoPawnCanCapture indicates no pawn can capture on the destination.
	ErrNoPawnCanCapture = errors.New("no pawn can capture")

	// ErrAmbiguousCapture indicates two pawns can capture and no source file was given.
	ErrAmbiguousCapture = errors.New("ambiguous pawn capture")

	// ErrCaptureOnEmptySquare indicates a capture was declared on an empty square.
	ErrCaptureOnEmptySquare = errors.New("capture on empty square")

	// ErrCastlingRookMissing indicates the rook is not on its home square.
	ErrCastlingRookMissing = errors.New("castling rook missing")

	// ErrCastlingPathBlocked indicates a piece stands between king and rook.
	ErrCastlingPathBlocked = errors.New("castling path blocked")

	// ErrCastlingRightsRevoked indicates the king or rook has already moved.
	ErrCastlingRightsRevoked = errors.New("castling rights revoked")

	// ErrCastlingThroughCheck indicates the king is in check or would pass through an attacked square.
	ErrCastlingThroughCheck = errors.New("castling out of or through check")

	// ErrKingLeftInCheck indicates the move would leave the mover's king attacked.
	ErrKingLeftInCheck = errors.New("move leaves king in check")

	// ErrInvalidPromotion indicates a promotion on the wrong rank, by a non-pawn, or to an invalid piece.
	ErrInvalidPromotion = errors.New("invalid promotion")

	// ErrKingMissing indicates a side has no king. This is corrupted state, not a user error.
	ErrKingMissing = errors.New("king missing")

	// ErrIncompleteMove indicates a move was applied before its origin was resolved.
	ErrIncompleteMove = errors.New("move is not resolved")

	// ErrGameOver indicates a move was played after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrParseFailure indicates a move token that could not be decoded.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// IsFatal reports whether err means the game state is corrupted and the
// session should be abandoned rather than re-prompting for a move.
func IsFatal(err error) bool {
	return errors.Is(err, ErrKingMissing) || errors.Is(err, ErrIncompleteMove)
}

// MoveError wraps errors with game context, including game number,
// ply position, side to move and move text. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	GameNum  int    // 1-based game number in the input (0 if not applicable)
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	Side     string // Side to move ("white"/"black"), if known
	MoveText string // The move text that caused the error (if applicable)
	File     string // Source file name (if known)
	Line     int    // Line number in source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	}

	if e.GameNum > 0 {
		parts = append(parts, fmt.Sprintf("game %d", e.GameNum))
	}

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.Side != "" {
		parts = append(parts, e.Side)
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a move token that could not be decoded.
type ParseError struct {
	Err      error  // The underlying error
	Token    string // The token being decoded
	Column   int    // Column number within the token (1-based)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Token != "" {
		loc := fmt.Sprintf("%q", e.Token)
		if e.Column > 0 {
			loc += fmt.Sprintf(" column %d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
