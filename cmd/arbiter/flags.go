// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chess-arbiter-go/internal/config"
)

var (
	// Input options
	startFEN    = flag.String("fen", "", "Start every game from this FEN position")
	interactive = flag.Bool("i", false, "Interactive: read moves from stdin and re-prompt after an illegal move")
	encoding    = flag.String("encoding", config.EncodingUTF8, "Input text encoding: utf-8, latin1, cp1252")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("W", "san", "Move notation: san, lalg")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	lineLength   = flag.Int("w", 80, "Maximum line length")

	// Final position
	drawBoard = flag.Bool("b", false, "Draw the final board of each game")
	showFEN   = flag.Bool("F", false, "Print the FEN of each final position")
	listMoves = flag.Bool("moves", false, "List the legal moves of each final position")
	svgFile   = flag.String("svg", "", "Write the final board of the last game as SVG to this file")
	svgSize   = flag.Int("svgsize", 45, "SVG square size in pixels")

	// Duplicate detection
	markDuplicates = flag.Bool("D", false, "Report games ending in the same position after the same number of plies as an earlier game")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 quiet, 1 game summaries, 2 move commentary")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no game count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("j", 0, "Number of games refereed in parallel (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyInputFlags(cfg)
	if err := applyOutputFormatFlags(cfg); err != nil {
		return err
	}

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	cfg.OutputFilename = *outputFile

	cfg.Workers = *workers
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
		if cfg.Input.Interactive {
			cfg.Workers = 1
		}
	}
	return nil
}

// applyInputFlags configures where games start and how input is read.
func applyInputFlags(cfg *config.Config) {
	cfg.Input.StartFEN = *startFEN
	cfg.Input.Interactive = *interactive
	cfg.Input.Encoding = *encoding
}

// applyOutputFormatFlags configures output format settings.
func applyOutputFormatFlags(cfg *config.Config) error {
	format, err := config.ParseMoveFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.JSON = *jsonOutput
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	cfg.Output.DrawBoard = *drawBoard
	cfg.Output.ShowFEN = *showFEN
	cfg.Output.ListMoves = *listMoves
	cfg.Output.MarkDuplicates = *markDuplicates
	cfg.Output.SVGFile = *svgFile
	cfg.Output.SVGSquareSize = *svgSize
	return nil
}
