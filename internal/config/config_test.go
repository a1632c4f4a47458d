package config

import (
	"bytes"
	"testing"

	"github.com/lgbarn/chess-arbiter-go/internal/errors"
	"github.com/lgbarn/chess-arbiter-go/internal/testutil"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != SAN {
		t.Errorf("Format = %v, want %v", cfg.Format, SAN)
	}
	if cfg.DrawBoard {
		t.Error("DrawBoard should be false by default")
	}
	if cfg.ListMoves {
		t.Error("ListMoves should be false by default")
	}
	if cfg.JSON {
		t.Error("JSON should be false by default")
	}
	if cfg.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.MaxLineLength)
	}
	if cfg.SVGFile != "" {
		t.Errorf("SVGFile = %q, want empty", cfg.SVGFile)
	}
	if cfg.SVGSquareSize != 45 {
		t.Errorf("SVGSquareSize = %d, want 45", cfg.SVGSquareSize)
	}
}

// TestInputConfig_Defaults verifies InputConfig has sensible defaults
func TestInputConfig_Defaults(t *testing.T) {
	cfg := NewInputConfig()

	if cfg.Encoding != EncodingUTF8 {
		t.Errorf("Encoding = %q, want %q", cfg.Encoding, EncodingUTF8)
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if cfg.Interactive {
		t.Error("Interactive should be false by default")
	}
}

// TestConfig_Validate verifies whole-config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"several workers", func(c *Config) { c.Workers = 8 }, false},
		{"latin1 input", func(c *Config) { c.Input.Encoding = "Latin1" }, false},
		{"windows-1252 input", func(c *Config) { c.Input.Encoding = "windows-1252" }, false},
		{"no workers", func(c *Config) { c.Workers = 0 }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"unknown encoding", func(c *Config) { c.Input.Encoding = "ebcdic" }, true},
		{"short lines", func(c *Config) { c.Output.MaxLineLength = 4 }, true},
		{"tiny svg squares", func(c *Config) { c.Output.SVGSquareSize = 2 }, true},
		{"interactive with workers", func(c *Config) { c.Input.Interactive = true; c.Workers = 4 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			}
		})
	}
}

func TestParseMoveFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    MoveFormat
		wantErr bool
	}{
		{"san", SAN, false},
		{"lalg", LALG, false},
		{"uci", LALG, false},
		{"xml", SAN, true},
	}

	for _, tt := range tests {
		got, err := ParseMoveFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMoveFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseMoveFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)
	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}

	logBuf := &bytes.Buffer{}
	cfg.SetLogFile(logBuf)
	if cfg.LogFile != logBuf {
		t.Error("SetLogFile did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithMoveFormat(LALG).
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithEncoding(EncodingLatin1).
		WithBoardDiagram(true).
		WithMoveList(true).
		WithDuplicates(true).
		WithSVG("final.svg").
		WithWorkers(3).
		WithOutput(out).
		WithVerbosity(2).
		Build()

	if cfg.Output.Format != LALG {
		t.Errorf("Format = %v, want LALG", cfg.Output.Format)
	}
	if cfg.Input.StartFEN == "" {
		t.Error("StartFEN should be set")
	}
	if cfg.Input.Encoding != EncodingLatin1 {
		t.Errorf("Encoding = %q, want %q", cfg.Input.Encoding, EncodingLatin1)
	}
	if !cfg.Output.DrawBoard || !cfg.Output.ListMoves || !cfg.Output.MarkDuplicates {
		t.Error("DrawBoard, ListMoves and MarkDuplicates should be true")
	}
	if cfg.Output.SVGFile != "final.svg" {
		t.Errorf("SVGFile = %q, want final.svg", cfg.Output.SVGFile)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
