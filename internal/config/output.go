package config

import (
	"fmt"

	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format is the notation used for move lists and commentary.
	Format MoveFormat

	// JSON writes one JSON document per game instead of text.
	JSON bool

	// MaxLineLength wraps move lists in text output.
	MaxLineLength uint

	// DrawBoard prints a text diagram of each final position.
	DrawBoard bool

	// ShowFEN prints the FEN of each final position.
	ShowFEN bool

	// MarkDuplicates reports games whose final position and ply count
	// repeat an earlier game in the same input.
	MarkDuplicates bool

	// ListMoves prints the legal moves of each final position.
	ListMoves bool

	// SVGFile, if set, receives an SVG diagram of the last game's final position.
	SVGFile string

	// SVGSquareSize is the side of one square in the SVG diagram, in pixels.
	SVGSquareSize int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        SAN,
		MaxLineLength: 80,
		SVGSquareSize: 45,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength < 10 {
		return fmt.Errorf("line length %d too short: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	if o.SVGSquareSize < 8 {
		return fmt.Errorf("svg square size %d too small: %w", o.SVGSquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
