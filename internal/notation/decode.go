// Package notation converts between move text and chess.Move descriptors.
package notation

import (
	"strings"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// isCol returns true if c is a valid column (file) character.
func isCol(c byte) bool {
	return c >= 'a' && c <= 'h'
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

// isPiece returns the piece type named by c, or Empty.
func isPiece(c byte) chess.Piece {
	switch c {
	case 'K':
		return chess.King
	case 'Q', 'D': // D = Dutch/German Queen
		return chess.Queen
	case 'R', 'T': // T = Dutch/German Rook
		return chess.Rook
	case 'N', 'S': // S = German Knight
		return chess.Knight
	case 'B', 'L': // L = Dutch/German Bishop
		return chess.Bishop
	}
	return chess.Empty
}

// isPromotionPiece also accepts lowercase letters, as in "e8q".
func isPromotionPiece(c byte) chess.Piece {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return isPiece(c)
}

// isCapture returns true if c is a capture character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isSuffix returns true if c is a check or annotation character.
func isSuffix(c byte) bool {
	return c == '+' || c == '#' || c == '!' || c == '?'
}

// DecodeMove parses one move token into a partial move: piece kind,
// destination, optional source file and rank, capture flag, castling kind
// and promotion piece. Nothing is checked against a board.
func DecodeMove(moveString string) (*chess.Move, error) {
	move := chess.NewMove()
	move.Text = moveString

	pos := 0

	currentChar := func() byte {
		if pos >= len(moveString) {
			return 0
		}
		return moveString[pos]
	}

	advance := func() {
		if pos < len(moveString) {
			pos++
		}
	}

	fail := func(expected string) (*chess.Move, error) {
		got := "end of move"
		if c := currentChar(); c != 0 {
			got = "'" + string(c) + "'"
		}
		return nil, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Token:    moveString,
			Column:   pos + 1,
			Expected: expected,
			Got:      got,
		}
	}

	// destination reads a file and rank pair.
	destination := func() bool {
		if !isCol(currentChar()) {
			return false
		}
		move.ToCol = chess.Col(currentChar())
		advance()
		if !isRank(currentChar()) {
			return false
		}
		move.ToRank = chess.Rank(currentChar())
		advance()
		return true
	}

	switch c := currentChar(); {
	case isCol(c):
		// Pawn move: e4, exd5, ed5, e2e4, e8=Q, e8Q
		move.Piece = chess.Pawn
		col := chess.Col(c)
		advance()

		if isRank(currentChar()) {
			rank := chess.Rank(currentChar())
			advance()
			if isCapture(currentChar()) {
				move.Capture = true
				advance()
			} else if currentChar() == '-' {
				advance()
				if !isCol(currentChar()) {
					return fail("destination square")
				}
			}
			if isCol(currentChar()) {
				move.FromCol = col
				move.FromRank = rank
				if !destination() {
					return fail("destination square")
				}
			} else if move.Capture {
				return fail("destination square")
			} else {
				move.ToCol = col
				move.ToRank = rank
			}
		} else {
			if isCapture(currentChar()) {
				move.Capture = true
				advance()
			}
			move.FromCol = col
			if !destination() {
				return fail("destination square")
			}
		}

		// A pawn changing file always captures.
		if move.FromCol != 0 && move.FromCol != move.ToCol {
			move.Capture = true
		}

		if currentChar() == '=' {
			advance()
			if isPromotionPiece(currentChar()) == chess.Empty {
				return fail("promotion piece")
			}
		}
		if piece := isPromotionPiece(currentChar()); piece != chess.Empty {
			move.Promotion = piece
			advance()
		}

	case isPiece(c) != chess.Empty:
		// Piece move: Nf3, Nbd2, R1a3, Qh4xe1, Bxc6
		move.Piece = isPiece(c)
		advance()

		var col chess.Col
		var rank chess.Rank
		if isCol(currentChar()) {
			col = chess.Col(currentChar())
			advance()
		}
		if isRank(currentChar()) {
			rank = chess.Rank(currentChar())
			advance()
		}
		if isCapture(currentChar()) {
			move.Capture = true
			advance()
		} else if currentChar() == '-' && col != 0 && rank != 0 {
			advance()
			if !isCol(currentChar()) {
				return fail("destination square")
			}
		}

		if isCol(currentChar()) {
			// What was read so far is the source.
			move.FromCol = col
			move.FromRank = rank
			if !destination() {
				return fail("destination square")
			}
		} else if col != 0 && rank != 0 && !move.Capture {
			move.ToCol = col
			move.ToRank = rank
		} else {
			return fail("destination square")
		}

	case isCastlingChar(c):
		// O-O, O-O-O, 0-0
		count := 0
		for isCastlingChar(currentChar()) {
			count++
			advance()
			if currentChar() == '-' {
				advance()
			}
		}
		switch count {
		case 2:
			move.Castle = chess.Kingside
		case 3:
			move.Castle = chess.Queenside
		default:
			return fail("O-O or O-O-O")
		}
		move.Piece = chess.King

	default:
		return fail("a move")
	}

	// Allow trailing checks and annotations.
	for isSuffix(currentChar()) {
		advance()
	}

	rest := moveString[pos:]
	if rest != "" && !(move.Piece == chess.Pawn && move.Capture && (rest == "ep" || rest == "e.p.")) {
		return fail("end of move")
	}

	return move, nil
}

// IsMoveNumber reports whether token is a move number such as "12." or "12...".
func IsMoveNumber(token string) bool {
	digits := 0
	for digits < len(token) && token[digits] >= '0' && token[digits] <= '9' {
		digits++
	}
	return digits > 0 && digits < len(token) && strings.Trim(token[digits:], ".") == ""
}

// IsResult reports whether token is a game result marker.
func IsResult(token string) bool {
	switch token {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}

// Tokens splits a line of movetext into move tokens. Move numbers, result
// markers and comments in braces are dropped, and a number glued to its
// move ("1.e4") is split off.
func Tokens(line string) []string {
	var tokens []string
	inComment := false
	for _, field := range strings.Fields(line) {
		if inComment {
			if strings.HasSuffix(field, "}") {
				inComment = false
			}
			continue
		}
		if strings.HasPrefix(field, "{") {
			inComment = !strings.HasSuffix(field, "}")
			continue
		}
		if i := strings.LastIndexByte(field, '.'); i >= 0 && i < len(field)-1 && IsMoveNumber(field[:i+1]) {
			field = field[i+1:]
		}
		if IsMoveNumber(field) || IsResult(field) || field == "ep" || field == "e.p." {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}
