package agent

import (
	"github.com/wangwang2111/quoridor-game/experiments/metrics"
	"github.com/wangwang2111/quoridor-game/game"
)

type Agent interface {
	// FindMove returns a move for the side to move and performance metrics
	// (if collected) from the selection process
	FindMove(state *game.GameState) (game.Move, metrics.SearchMetric)
}
