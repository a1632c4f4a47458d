package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/config"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
	"github.com/lgbarn/chess-arbiter-go/internal/hashing"
	"github.com/lgbarn/chess-arbiter-go/internal/notation"
	"github.com/lgbarn/chess-arbiter-go/internal/output"
	"github.com/lgbarn/chess-arbiter-go/internal/session"
	"github.com/lgbarn/chess-arbiter-go/internal/worker"
)

// gameStats counts refereed games by how they ended.
type gameStats struct {
	games      int
	checkmates int
	stalemates int
	incomplete int
	rejected   int
	duplicates int
}

func (s *gameStats) add(other gameStats) {
	s.games += other.games
	s.checkmates += other.checkmates
	s.stalemates += other.stalemates
	s.incomplete += other.incomplete
	s.rejected += other.rejected
	s.duplicates += other.duplicates
}

// record counts one finished result.
func (s *gameStats) record(r worker.ProcessResult) {
	s.games++
	switch {
	case r.Rejected != nil || r.Error != nil:
		s.rejected++
	case r.Game.Outcome().Kind == chess.Checkmate:
		s.checkmates++
	case r.Game.Outcome().Kind == chess.Stalemate:
		s.stalemates++
	default:
		s.incomplete++
	}
}

// decodeInput wraps r so that Latin-1 and Windows-1252 move files are
// read as UTF-8.
func decodeInput(r io.Reader, encoding string) io.Reader {
	switch strings.ToLower(encoding) {
	case config.EncodingLatin1, "iso-8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	case config.EncodingCP1252, "windows-1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder())
	}
	return r
}

// readGames splits the input into one work item per game. Each non-blank
// line holds one game; lines starting with '#' and PGN tag lines are
// skipped.
func readGames(r io.Reader) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == '#' || text[0] == '[' {
			continue
		}
		tokens := notation.Tokens(text)
		if len(tokens) == 0 {
			continue
		}
		items = append(items, worker.WorkItem{Tokens: tokens, Line: line, Index: len(items)})
	}
	return items, scanner.Err()
}

// processInput referees every game in r.
//
// Concurrency model: games are refereed by pool workers, each on its own
// session.Game, but every result is consumed by this goroutine and
// written in input order. The GameWriter is only touched from here.
func processInput(r io.Reader, name string, cfg *config.Config) (gameStats, error) {
	var stats gameStats

	items, err := readGames(r)
	if err != nil {
		return stats, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(items) == 0 {
		return stats, nil
	}

	bufferSize := len(items)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPoolWithOptions(worker.RefereeFunc(cfg),
		worker.WithWorkers(cfg.Workers),
		worker.WithBufferSize(bufferSize))
	pool.Start()

	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	writer := output.NewGameWriter(cfg.OutputFile, cfg)
	var detector *hashing.DuplicateDetector
	if cfg.Output.MarkDuplicates {
		detector = hashing.NewDuplicateDetector()
	}
	var last *session.Game
	var fatal error

	reorder := worker.NewReorderer(func(r worker.ProcessResult) {
		if fatal != nil {
			return
		}
		stats.record(r)
		if r.Error != nil {
			logResult(cfg, name, r)
			if errors.IsFatal(r.Error) {
				fatal = r.Error
				pool.Stop()
			}
			return
		}
		if r.Rejected != nil {
			logResult(cfg, name, r)
		}
		if detector != nil {
			if first := detector.CheckAndAdd(r.Game.Board(), r.Plies, r.Index+1); first != 0 {
				stats.duplicates++
				if cfg.Verbosity > 0 {
					fmt.Fprintf(cfg.LogFile, "%s:%d: game %d duplicates game %d\n", name, r.Line, r.Index+1, first)
				}
			}
		}
		if err := writer.WriteGame(r.Game, r.Rejected); err != nil {
			fatal = err
			pool.Stop()
			return
		}
		last = r.Game
	})
	for result := range pool.Results() {
		reorder.Add(result)
	}
	reorder.Drain()

	if err := writer.Close(); err != nil && fatal == nil {
		fatal = err
	}
	if fatal != nil {
		return stats, fatal
	}
	if last != nil && cfg.Output.SVGFile != "" {
		if err := writeSVGFile(cfg, last.Board()); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// logResult reports a game that could not be refereed to the end.
func logResult(cfg *config.Config, name string, r worker.ProcessResult) {
	if cfg.Verbosity < 1 || cfg.LogFile == nil {
		return
	}
	err := r.Rejected
	if r.Error != nil {
		err = r.Error
	}
	fmt.Fprintf(cfg.LogFile, "%s:%d: %v\n", name, r.Line, err)
}

// writeSVGFile writes the board to the configured SVG file.
func writeSVGFile(cfg *config.Config, board *chess.Board) error {
	file, err := os.Create(cfg.Output.SVGFile)
	if err != nil {
		return fmt.Errorf("creating svg file: %w", err)
	}
	output.WriteSVG(file, board, output.SVGOptions{
		SquareSize:  cfg.Output.SVGSquareSize,
		Coordinates: true,
	})
	return file.Close()
}
