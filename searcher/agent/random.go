package agent

import (
	"golang.org/x/exp/rand"

	"github.com/wangwang2111/quoridor-game/experiments/metrics"
	"github.com/wangwang2111/quoridor-game/game"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a uniform-random baseline agent for experiment
// matchups.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("asked for a move in a decided position")
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}
