package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wangwang2111/quoridor-game/engine"
	"github.com/wangwang2111/quoridor-game/experiments"
	"github.com/wangwang2111/quoridor-game/game"
	"github.com/wangwang2111/quoridor-game/meta"
	"github.com/wangwang2111/quoridor-game/searcher"
	"github.com/wangwang2111/quoridor-game/searcher/agent"
)

func main() {
	size := flag.Int("size", meta.BOARD_SIZE, "board size")
	depth := flag.Int("depth", meta.SEARCH_DEPTH, "negamax search depth")
	games := flag.Int("games", 1, "number of self-play games")
	verbose := flag.Bool("v", false, "log every move")
	experiment := flag.String("experiment", "", "run the experiment declared in a YAML config instead of a demo")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if *experiment != "" {
		if err := experiments.RunFromConfig(*experiment); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	gs := game.NewGameState(*size)
	fmt.Printf("Initial legal pawn moves: %d\n", len(gs.LegalPawnMoves()))
	fmt.Printf("Initial legal wall moves: %d\n", len(gs.LegalWallMoves()))

	n := searcher.NewNegamax(searcher.WithDepth(*depth), searcher.WithMetrics())
	move, ok, metric := n.FindMove(gs)
	if ok {
		fmt.Printf("Search suggests: %+v (score %.1f, %d nodes in %s)\n", move, metric.BestScore, metric.Nodes, metric.Duration)
	}

	fmt.Printf("Running %d self-play game(s) at depth %d...\n", *games, *depth)
	for i := 0; i < *games; i++ {
		winner := runGame(*size, *depth)
		if winner < 0 {
			fmt.Printf("Game %d over! No winner within the turn cap\n", i+1)
		} else {
			fmt.Printf("Game %d over! Winner: player %d\n", i+1, winner)
		}
	}
}

func runGame(size, depth int) int {
	agents := [2]agent.Agent{
		agent.NewNegamaxAgent(searcher.NewNegamax(searcher.WithDepth(depth))),
		agent.NewNegamaxAgent(searcher.NewNegamax(searcher.WithDepth(depth))),
	}
	e := engine.LocalEngine(agents, size)
	winner, _ := e.Run()
	return winner
}
