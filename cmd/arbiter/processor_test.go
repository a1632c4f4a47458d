package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/lgbarn/chess-arbiter-go/internal/config"
)

func testConfig(out, log *bytes.Buffer) *config.Config {
	return config.NewConfigBuilder().
		WithOutput(out).
		WithLog(log).
		WithWorkers(4).
		Build()
}

const sampleGames = `# three games
1. e4 e5 2. Nf3 Nc6 3. Bb5 *
[Event "skipped"]

1. f3 e5 2. g4 Qh4# 0-1
1. e4 e5 2. Ke3
`

func TestReadGames(t *testing.T) {
	items, err := readGames(strings.NewReader(sampleGames))
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, []string{"e4", "e5", "Nf3", "Nc6", "Bb5"}, items[0].Tokens)
	assert.Equal(t, 2, items[0].Line)
	assert.Equal(t, 0, items[0].Index)
	assert.Equal(t, 5, items[1].Line)
	assert.Equal(t, 2, items[2].Index)
}

func TestProcessInput(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)

	stats, err := processInput(strings.NewReader(sampleGames), "games.txt", cfg)
	require.NoError(t, err)
	assert.Equal(t, gameStats{games: 3, checkmates: 1, incomplete: 1, rejected: 1}, stats)

	want := "1. e4 e5 2. Nf3 Nc6 3. Bb5 *\ngame incomplete\n\n" +
		"1. f3 e5 2. g4 Qh4# 0-1\nblack wins by checkmate\n\n" +
		"1. e4 e5 *\ngame incomplete\n"
	assert.True(t, strings.HasPrefix(out.String(), want), "output:\n%s", out.String())
	assert.Contains(t, out.String(), `rejected: game 3, ply 3, white, move "Ke3"`)
	assert.Contains(t, log.String(), "games.txt:6: ")
}

func TestProcessInput_OrderIndependentOfWorkers(t *testing.T) {
	var games strings.Builder
	for i := 0; i < 40; i++ {
		if i%3 == 0 {
			games.WriteString("f3 e5 g4 Qh4\n")
		} else {
			games.WriteString("d4 d5 c4\n")
		}
	}

	var serial, parallel bytes.Buffer
	cfg := testConfig(&serial, &bytes.Buffer{})
	cfg.Workers = 1
	_, err := processInput(strings.NewReader(games.String()), "serial", cfg)
	require.NoError(t, err)

	cfg = testConfig(&parallel, &bytes.Buffer{})
	cfg.Workers = 8
	_, err = processInput(strings.NewReader(games.String()), "parallel", cfg)
	require.NoError(t, err)

	assert.Equal(t, serial.String(), parallel.String())
}

func TestProcessInput_StartFENAndSVG(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out, &bytes.Buffer{})
	cfg.Input.StartFEN = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
	cfg.Output.SVGFile = filepath.Join(t.TempDir(), "final.svg")

	stats, err := processInput(strings.NewReader("Ra8\n"), "stdin", cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.checkmates)
	assert.Contains(t, out.String(), "1. Ra8# 1-0\nwhite wins by checkmate\n")

	data, err := os.ReadFile(cfg.Output.SVGFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "♖")
}

func TestProcessInput_JSON(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out, &bytes.Buffer{})
	cfg.Output.JSON = true

	_, err := processInput(strings.NewReader("e4 e5\nf3 e5 g4 Qh4\n"), "stdin", cfg)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"games": [`)
	assert.Contains(t, out.String(), `"result": "0-1"`)
	assert.Equal(t, 1, strings.Count(out.String(), `"games"`))
}

func TestProcessInput_Duplicates(t *testing.T) {
	var log bytes.Buffer
	cfg := testConfig(&bytes.Buffer{}, &log)
	cfg.Output.MarkDuplicates = true

	input := "Nf3 Nc6 Nc3 Nf6\nNc3 Nf6 Nf3 Nc6\ne4 e5\nNf3 Nf6 Ng1 Ng8\n"
	stats, err := processInput(strings.NewReader(input), "games.txt", cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.duplicates)
	assert.Contains(t, log.String(), "games.txt:2: game 2 duplicates game 1\n")
	assert.NotContains(t, log.String(), "game 4 duplicates")
}

func TestDecodeInput(t *testing.T) {
	// "Nf3 ½" with the vulgar fraction in Latin-1
	raw, err := charmap.ISO8859_1.NewEncoder().String("Nf3 ½")
	require.NoError(t, err)

	tests := []struct {
		encoding string
		want     string
	}{
		{config.EncodingLatin1, "Nf3 ½"},
		{config.EncodingCP1252, "Nf3 ½"},
		{config.EncodingUTF8, raw},
	}

	for _, tt := range tests {
		t.Run(tt.encoding, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := buf.ReadFrom(decodeInput(strings.NewReader(raw), tt.encoding))
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestGameStatsAdd(t *testing.T) {
	total := gameStats{games: 1, checkmates: 1}
	total.add(gameStats{games: 2, stalemates: 1, rejected: 1})
	assert.Equal(t, gameStats{games: 3, checkmates: 1, stalemates: 1, rejected: 1}, total)
}

func TestReportStatistics(t *testing.T) {
	var log bytes.Buffer
	cfg := testConfig(&bytes.Buffer{}, &log)
	reportStatistics(cfg, gameStats{games: 4, checkmates: 1, stalemates: 1, incomplete: 1, rejected: 1})
	assert.Equal(t, "4 game(s) refereed: 1 checkmate, 1 stalemate, 1 incomplete, 1 with an illegal move.\n", log.String())
}
