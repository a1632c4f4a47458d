package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/session"
)

// JSONGame represents a refereed game in JSON format.
type JSONGame struct {
	Number     int        `json:"number,omitempty"`
	InitialFEN string     `json:"initialFEN"`
	Moves      []JSONMove `json:"moves,omitempty"`
	PlyCount   int        `json:"plyCount"`
	Result     string     `json:"result"`
	Summary    string     `json:"summary"`
	FinalFEN   string     `json:"finalFEN"`
	Rejected   string     `json:"rejected,omitempty"`
	LegalMoves []string   `json:"legalMoves,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber uint   `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castle     string `json:"castle,omitempty"`
	FEN        string `json:"fen"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a refereed game to JSON format. gameErr is the
// rejected move that ended the game early, if any.
func GameToJSON(game *session.Game, gameErr error, listMoves bool) (*JSONGame, error) {
	history := game.History()
	jg := &JSONGame{
		Number:     game.Number(),
		InitialFEN: game.StartFEN(),
		Moves:      make([]JSONMove, 0, len(history)),
		PlyCount:   len(history),
		Result:     ResultTag(game.Outcome()),
		Summary:    Summary(game.Outcome()),
		FinalFEN:   game.FEN(),
	}
	for i := range history {
		jg.Moves = append(jg.Moves, convertPly(&history[i]))
	}
	if gameErr != nil {
		jg.Rejected = gameErr.Error()
	}
	if listMoves {
		moves, err := game.LegalMoves()
		if err != nil {
			return nil, err
		}
		jg.LegalMoves = moves
	}
	return jg, nil
}

// convertPly converts one played ply.
func convertPly(ply *session.Ply) JSONMove {
	m := &ply.Move
	jm := JSONMove{
		MoveNumber: ply.MoveNumber,
		Color:      ply.Colour.Lower(),
		SAN:        ply.SAN,
		UCI:        m.LongString(),
		From:       m.From().String(),
		To:         m.To().String(),
		Piece:      pieceTypeName(m.Piece),
		FEN:        ply.FEN,
	}
	if m.Captured != chess.Empty {
		jm.Captured = pieceTypeName(chess.ExtractPiece(m.Captured))
	}
	if m.IsPromotion() {
		jm.Promotion = pieceTypeName(m.Promotion)
	}
	switch m.Castle {
	case chess.Kingside:
		jm.Castle = "kingside"
	case chess.Queenside:
		jm.Castle = "queenside"
	}
	return jm
}

// pieceTypeName returns the lower-case name of a piece kind.
func pieceTypeName(p chess.Piece) string {
	return strings.ToLower(p.String())
}

// encodeJSON writes v indented, one document per call.
func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
