package searcher

import (
	"math"

	"github.com/wangwang2111/quoridor-game/experiments/metrics"
	"github.com/wangwang2111/quoridor-game/game"
)

// WinScore is the terminal score for a decided position. It is flat: a win
// scores the same at any remaining depth.
const WinScore = 1_000_000.0

type Option func(n *Negamax)

func WithDepth(depth int) Option {
	return func(n *Negamax) {
		if depth > 0 {
			n.depth = depth
		}
	}
}

func WithMetrics() Option {
	return func(n *Negamax) {
		n.metrics = metrics.NewCollector()
	}
}

// Negamax is a depth-limited negamax searcher with alpha-beta pruning and
// heuristic move ordering. It mutates the searched state in place along
// each simulated line and restores it from a snapshot on backtrack, so a
// state handed to it must not be shared with a concurrent caller.
type Negamax struct {
	depth   int
	metrics metrics.Collector
}

func NewNegamax(options ...Option) *Negamax {
	n := &Negamax{ // Default values
		depth:   2,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(n)
	}
	return n
}

// FindMove runs a full-window search from the root and returns the best
// move with collected metrics. The second result is false when the
// position is already decided and no move exists.
func (n *Negamax) FindMove(state *game.GameState) (game.Move, bool, metrics.SearchMetric) {
	n.metrics.Start(n.depth)
	score, best := n.Search(state, n.depth, math.Inf(-1), math.Inf(1))
	metric := n.metrics.Complete(score)
	if best == nil {
		return game.Move{}, false, metric
	}
	return *best, true, metric
}

// Search scores state for the side to move. A decided winner returns
// ±WinScore with no move at any depth; depth 0 returns the static
// evaluation. Otherwise each ordered move is applied against a snapshot,
// scored by negated recursion over the swapped window, and restored; the
// loop stops on a fail-soft alpha-beta cutoff.
func (n *Negamax) Search(state *game.GameState, depth int, alpha, beta float64) (float64, *game.Move) {
	n.metrics.AddNode()

	if winner, decided := state.Winner(); decided {
		if winner == state.ToMove {
			return WinScore, nil
		}
		return -WinScore, nil
	}
	if depth == 0 {
		return state.Evaluate(), nil
	}

	bestScore := math.Inf(-1)
	var bestMove *game.Move

	for _, mv := range OrderedMoves(state) {
		snap := state.Snapshot()
		if err := state.Apply(mv); err != nil {
			panic(err) // unreachable: mv came from the legal move set
		}
		score, _ := n.Search(state, depth-1, -beta, -alpha)
		score = -score
		state.Restore(snap)

		if score > bestScore {
			bestScore = score
			bestMove = &mv
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			n.metrics.AddCutoff()
			break
		}
	}

	return bestScore, bestMove
}
