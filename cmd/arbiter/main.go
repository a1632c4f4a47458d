// arbiter referees chess games written in algebraic notation: it checks
// every move for legality, reports the first illegal one and announces
// checkmate or stalemate.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-arbiter-go/internal/config"
	"github.com/lgbarn/chess-arbiter-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-arbiter-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Reject a bad -fen once instead of once per game
	if _, err := session.NewFromConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: start position: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	var err error
	if cfg.Input.Interactive {
		err = runInteractive(decodeInput(os.Stdin, cfg.Input.Encoding), cfg)
	} else {
		var stats gameStats
		stats, err = processAllInputs(cfg)
		if cfg.Verbosity > 0 {
			reportStatistics(cfg, stats)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// processAllInputs referees the games in every input file, or stdin.
func processAllInputs(cfg *config.Config) (gameStats, error) {
	args := flag.Args()

	if len(args) == 0 {
		return processInput(decodeInput(os.Stdin, cfg.Input.Encoding), "stdin", cfg)
	}

	var total gameStats
	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
			continue
		}

		stats, err := processInput(decodeInput(file, cfg.Input.Encoding), filename, cfg)
		file.Close() //nolint:errcheck,gosec // G104: cleanup on exit
		total.add(stats)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(cfg *config.Config, stats gameStats) {
	fmt.Fprintf(cfg.LogFile, "%d game(s) refereed: %d checkmate, %d stalemate, %d incomplete, %d with an illegal move.\n",
		stats.games, stats.checkmates, stats.stalemates, stats.incomplete, stats.rejected)
	if cfg.Output.MarkDuplicates {
		fmt.Fprintf(cfg.LogFile, "%d duplicate(s).\n", stats.duplicates)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: arbiter [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Referees chess games given one per line in algebraic notation.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove notations (-W):\n")
	fmt.Fprintf(os.Stderr, "  san    Standard Algebraic Notation (default)\n")
	fmt.Fprintf(os.Stderr, "  lalg   Long algebraic (e2e4)\n")
}
