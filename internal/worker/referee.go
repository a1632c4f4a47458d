package worker

import (
	"github.com/lgbarn/chess-arbiter-go/internal/config"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
	"github.com/lgbarn/chess-arbiter-go/internal/session"
)

// RefereeFunc returns a ProcessFunc that plays each work item on a fresh
// session.Game started from the configured position. Game numbers are
// 1-based item indices.
func RefereeFunc(cfg *config.Config) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Index: item.Index, Line: item.Line}

		game, err := session.NewFromConfig(cfg)
		if err != nil {
			result.Error = err
			return result
		}
		game.SetNumber(item.Index + 1)
		result.Game = game

		result.Plies, err = game.PlayAll(item.Tokens)
		if err == nil {
			return result
		}
		if me, ok := err.(*errors.MoveError); ok {
			me.Line = item.Line
		}
		if errors.IsFatal(err) {
			result.Error = err
		} else {
			result.Rejected = err
		}
		return result
	}
}
