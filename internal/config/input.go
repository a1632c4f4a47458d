package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// Supported input encodings.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin1"
	EncodingCP1252 = "cp1252"
)

// InputConfig holds settings for reading games.
type InputConfig struct {
	// StartFEN is the position every game starts from. Empty means the
	// standard initial position.
	StartFEN string

	// Encoding of the move text (utf-8, latin1, cp1252).
	Encoding string

	// Interactive re-prompts for a move after an illegal one instead of
	// abandoning the game.
	Interactive bool
}

// NewInputConfig creates an InputConfig with default values.
func NewInputConfig() *InputConfig {
	return &InputConfig{
		Encoding: EncodingUTF8,
	}
}

// Validate checks that the input configuration is valid.
func (i *InputConfig) Validate() error {
	switch strings.ToLower(i.Encoding) {
	case EncodingUTF8, "utf8", EncodingLatin1, "iso-8859-1", EncodingCP1252, "windows-1252":
		return nil
	}
	return fmt.Errorf("unsupported encoding %q: %w", i.Encoding, errors.ErrInvalidConfig)
}
