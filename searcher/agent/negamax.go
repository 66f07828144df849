package agent

import (
	"github.com/wangwang2111/quoridor-game/experiments/metrics"
	"github.com/wangwang2111/quoridor-game/game"
	"github.com/wangwang2111/quoridor-game/searcher"
)

type negamaxAgent struct {
	searcher *searcher.Negamax
}

// NewNegamaxAgent returns an agent that plays the searcher's best move.
func NewNegamaxAgent(n *searcher.Negamax) Agent {
	return negamaxAgent{searcher: n}
}

func (a negamaxAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric) {
	move, ok, metric := a.searcher.FindMove(state)
	if !ok {
		panic("asked for a move in a decided position")
	}
	return move, metric
}
