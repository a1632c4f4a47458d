package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Distinct verifies that no two sentinels compare equal,
// so errors.Is can tell every rejection reason apart.
func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{
		ErrIllegalSameColorTarget,
		ErrNoPieceCanMove,
		ErrAmbiguousMove,
		ErrDisambiguationMismatch,
		ErrNoPawnCanMove,
		ErrNoPawnCanCapture,
		ErrAmbiguousCapture,
		ErrCaptureOnEmptySquare,
		ErrCastlingRookMissing,
		ErrCastlingPathBlocked,
		ErrCastlingRightsRevoked,
		ErrCastlingThroughCheck,
		ErrKingLeftInCheck,
		ErrInvalidPromotion,
		ErrKingMissing,
		ErrIncompleteMove,
		ErrGameOver,
		ErrIllegalMove,
		ErrInvalidFEN,
		ErrParseFailure,
		ErrInvalidConfig,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("resolving Nbd7: %w", ErrAmbiguousMove)

	if !errors.Is(wrapped, ErrAmbiguousMove) {
		t.Errorf("errors.Is(wrapped, ErrAmbiguousMove) = false, want true")
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"king missing", ErrKingMissing, true},
		{"wrapped king missing", Wrap(ErrKingMissing, "classify"), true},
		{"incomplete move", ErrIncompleteMove, true},
		{"ambiguous move", ErrAmbiguousMove, false},
		{"castling blocked", &MoveError{Err: ErrCastlingPathBlocked, PlyNum: 9}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFatal(tt.err); got != tt.want {
				t.Errorf("IsFatal(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:      ErrNoPieceCanMove,
				GameNum:  5,
				PlyNum:   12,
				Side:     "black",
				MoveText: "Nxe5",
				File:     "games.txt",
				Line:     42,
			},
			contains: []string{"game 5", "ply 12", "black", "Nxe5", "games.txt:42", "no piece can move"},
		},
		{
			name: "minimal context",
			err: &MoveError{
				Err:    ErrParseFailure,
				PlyNum: 1,
			},
			contains: []string{"ply 1", "parse failure"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_NoContext(t *testing.T) {
	err := &MoveError{Err: ErrGameOver}
	if got := err.Error(); got != ErrGameOver.Error() {
		t.Errorf("MoveError.Error() = %q, want %q", got, ErrGameOver.Error())
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrCastlingThroughCheck,
		GameNum:  3,
		PlyNum:   24,
		MoveText: "O-O-O",
	}

	wrapped := fmt.Errorf("refereeing failed: %w", moveErr)

	var extractedErr *MoveError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract MoveError")
	}

	if extractedErr.PlyNum != 24 {
		t.Errorf("extractedErr.PlyNum = %d, want 24", extractedErr.PlyNum)
	}
	if extractedErr.MoveText != "O-O-O" {
		t.Errorf("extractedErr.MoveText = %q, want %q", extractedErr.MoveText, "O-O-O")
	}
	if !errors.Is(wrapped, ErrCastlingThroughCheck) {
		t.Error("errors.Is(wrapped, ErrCastlingThroughCheck) = false, want true")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrParseFailure,
		Token:    "Zf3",
		Column:   1,
		Expected: "piece letter or file",
		Got:      "'Z'",
	}

	msg := err.Error()

	for _, want := range []string{`"Zf3"`, "column 1", "expected piece letter or file", "parse failure"} {
		if !strings.Contains(msg, want) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, want)
		}
	}
	if !errors.Is(err, ErrParseFailure) {
		t.Error("errors.Is(parseErr, ErrParseFailure) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "reading start position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "reading start position") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "move %d in game %d", 15, 3)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "move 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
