// Package config provides configuration for the chess arbiter.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// MoveFormat represents the notation used when writing moves.
type MoveFormat int

const (
	SAN  MoveFormat = iota // Standard Algebraic Notation
	LALG                   // Long algebraic (e2e4)
)

// String returns the flag name of the format.
func (f MoveFormat) String() string {
	if f == LALG {
		return "lalg"
	}
	return "san"
}

// ParseMoveFormat converts a flag value into a MoveFormat.
func ParseMoveFormat(s string) (MoveFormat, error) {
	switch s {
	case "san", "SAN":
		return SAN, nil
	case "lalg", "LALG", "uci", "UCI":
		return LALG, nil
	}
	return SAN, fmt.Errorf("unknown move format %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game summaries, 2=running commentary

	// Workers is the number of games refereed in parallel.
	Workers int

	Input  InputConfig
	Output OutputConfig

	// File handling
	OutputFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    1,
		Input:      *NewInputConfig(),
		Output:     *NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the stream diagnostics are written to.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("worker count %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Input.Interactive && c.Workers > 1 {
		return fmt.Errorf("interactive mode plays one game at a time: %w", errors.ErrInvalidConfig)
	}
	if err := c.Input.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}
