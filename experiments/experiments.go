package experiments

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wangwang2111/quoridor-game/engine"
	"github.com/wangwang2111/quoridor-game/experiments/metrics"
	"github.com/wangwang2111/quoridor-game/meta"
	"github.com/wangwang2111/quoridor-game/searcher"
	"github.com/wangwang2111/quoridor-game/searcher/agent"
)

const NumGames = 10 // Per match up

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 1, BoardSize: meta.BOARD_SIZE},
	{ID: 2, Depth: 2, BoardSize: meta.BOARD_SIZE},
	{ID: 3, Depth: 3, BoardSize: meta.BOARD_SIZE},
}

// RunDepthToStrength pairs each search depth against the depth-1 baseline
// to measure how playing strength scales with depth.
func RunDepthToStrength() {
	baseline := metrics.AgentConfig{ID: 0, Depth: 1, BoardSize: meta.BOARD_SIZE}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	runExperiment("depth_to_strength", append(depthConfigs, baseline), matchUps, NumGames)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, games int) {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics writer")
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		log.Fatal().Err(err).Msg("failed to write agent configs")
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	gameID := 0
	for _, matchUp := range matchUps {
		log.Info().Msgf("matchup: agent %d vs agent %d", matchUp[0].ID, matchUp[1].ID)
		for i := 0; i < games; i++ {
			gameID++
			record, moves := runGame(gameID, matchUp[0], matchUp[1])
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)
			log.Info().Msgf("game %d over, winner %d", gameID, record.Winner)
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write move records")
	}
	log.Info().Msgf("experiment %q written to %s", name, writer.BaseDir())
}

func runGame(id int, config1, config2 metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord) {
	agents := [2]agent.Agent{
		agent.NewNegamaxAgent(searcher.NewNegamax(searcher.WithDepth(config1.Depth), searcher.WithMetrics())),
		agent.NewNegamaxAgent(searcher.NewNegamax(searcher.WithDepth(config2.Depth), searcher.WithMetrics())),
	}

	e := engine.LocalEngine(agents, config1.BoardSize)
	start := time.Now()
	winner, moveMetrics := e.Run()
	end := time.Now()

	record := metrics.GameRecord{
		ID:     id,
		Agent1: config1.ID,
		Agent2: config2.ID,
		GameMetric: metrics.GameMetric{
			StartingPlayer: 0,
			Winner:         winner,
			StartTime:      start,
			EndTime:        end,
			Duration:       end.Sub(start),
			TotalMoves:     len(moveMetrics),
		},
	}

	moves := make([]metrics.MoveRecord, len(moveMetrics))
	for i, m := range moveMetrics {
		moves[i] = metrics.MoveRecord{Game: id, MoveMetric: m}
	}
	return record, moves
}
