package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/wangwang2111/quoridor-game/experiments/metrics"
	"github.com/wangwang2111/quoridor-game/game"
	"github.com/wangwang2111/quoridor-game/meta"
	"github.com/wangwang2111/quoridor-game/searcher/agent"
)

// Engine drives a local synchronous game between two agents. Each engine
// owns its game state outright, so independently constructed engines can
// run concurrently.
type Engine struct {
	ID       uuid.UUID
	State    *game.GameState
	Agents   [2]agent.Agent
	MaxTurns int
}

func LocalEngine(agents [2]agent.Agent, boardSize int) *Engine {
	return &Engine{
		ID:       uuid.New(),
		State:    game.NewGameState(boardSize),
		Agents:   agents,
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the game loop until a winner is decided or the turn cap is
// hit. Returns the winner index (-1 for a capped draw) and per-move
// metrics.
func (e *Engine) Run() (int, []metrics.MoveMetric) {
	log.Info().Str("game", e.ID.String()).Msgf("player %d is starting on a %dx%d board", e.State.ToMove, e.State.N, e.State.N)

	var moveMetrics []metrics.MoveMetric
	turnCount := 1
	for turnCount <= e.MaxTurns {
		if _, decided := e.State.Winner(); decided {
			break
		}

		mover := e.State.ToMove
		move, metric := e.Agents[mover].FindMove(e.State)
		if err := e.State.Apply(move); err != nil {
			panic(fmt.Sprintf("agent for player %d returned an illegal move: %v", mover, err))
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turnCount,
			Player:       mover,
			SearchMetric: metric,
		})

		log.Debug().Str("game", e.ID.String()).Int("turn", turnCount).Int("player", mover).Msgf("played %+v", move)
		turnCount++
	}

	if winner, decided := e.State.Winner(); decided {
		log.Info().Str("game", e.ID.String()).Msgf("player %d wins after %d moves", winner, len(moveMetrics))
		return winner, moveMetrics
	}

	log.Info().Str("game", e.ID.String()).Msgf("no winner after %d moves", len(moveMetrics))
	return -1, moveMetrics
}
