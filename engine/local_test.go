package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wangwang2111/quoridor-game/searcher"
	"github.com/wangwang2111/quoridor-game/searcher/agent"
)

func TestLocalEngine(t *testing.T) {
	t.Run("depth-1 self-play reaches a result", func(t *testing.T) {
		agents := [2]agent.Agent{
			agent.NewNegamaxAgent(searcher.NewNegamax(searcher.WithDepth(1), searcher.WithMetrics())),
			agent.NewNegamaxAgent(searcher.NewNegamax(searcher.WithDepth(1), searcher.WithMetrics())),
		}
		e := LocalEngine(agents, 5)

		winner, moveMetrics := e.Run()
		require.Contains(t, []int{-1, 0, 1}, winner)
		require.NotEmpty(t, moveMetrics)
		require.LessOrEqual(t, len(moveMetrics), e.MaxTurns)
		for i, m := range moveMetrics {
			require.Equal(t, i+1, m.Step)
			require.Equal(t, i%2, m.Player, "Players alternate from player 0")
		}
	})

	t.Run("turn cap stops an undecided game", func(t *testing.T) {
		agents := [2]agent.Agent{
			agent.NewRandomAgent(1),
			agent.NewRandomAgent(2),
		}
		e := LocalEngine(agents, 5)
		e.MaxTurns = 4 // Too few turns for either pawn to cross a 5x5 board

		winner, moveMetrics := e.Run()
		require.Equal(t, -1, winner)
		require.Len(t, moveMetrics, 4)
	})

	t.Run("each engine owns an independent game", func(t *testing.T) {
		agents := [2]agent.Agent{
			agent.NewRandomAgent(3),
			agent.NewRandomAgent(4),
		}
		e1 := LocalEngine(agents, 5)
		e2 := LocalEngine(agents, 5)

		require.NotEqual(t, e1.ID, e2.ID)
		require.NotSame(t, e1.State, e2.State)
	})
}
