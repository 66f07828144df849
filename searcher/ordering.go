package searcher

import (
	"sort"

	"github.com/wangwang2111/quoridor-game/game"
)

// wallBreaksPath deprioritizes a wall whose tentative placement leaves a
// pawn without a goal distance. Move generation's own connectivity check
// should make this unreachable.
const wallBreaksPath = -999

type scoredMove struct {
	score int
	move  game.Move
}

// OrderedMoves returns the legal moves sorted most-promising-first to bias
// alpha-beta toward early cutoffs. Wall moves are scored by the post-
// placement distance differential (opponent's distance minus mover's).
// Every pawn move carries the identical pre-move baseline differential:
// the ordering does not discriminate among pawn destinations.
func OrderedMoves(state *game.GameState) []game.Move {
	moves := state.LegalMoves()

	me := state.ToMove
	you := 1 - me
	myGoal := state.GoalRows(me)
	oppGoal := state.GoalRows(you)

	wallDelta := func(w game.Wall) int {
		if err := state.Board.PlaceWall(w); err != nil {
			return wallBreaksPath
		}
		dMe, okMe := state.Board.AStarDistToGoal(state.Pawns[me], myGoal)
		dYou, okYou := state.Board.AStarDistToGoal(state.Pawns[you], oppGoal)
		state.Board.RemoveWall(w)
		if !okMe || !okYou {
			return wallBreaksPath
		}
		return dYou - dMe
	}

	dMe0, _ := state.Board.AStarDistToGoal(state.Pawns[me], myGoal)
	dYou0, _ := state.Board.AStarDistToGoal(state.Pawns[you], oppGoal)
	baseline := dYou0 - dMe0

	scored := make([]scoredMove, len(moves))
	for i, mv := range moves {
		if mv.Kind == game.PawnMoveKind {
			scored[i] = scoredMove{score: baseline, move: mv}
		} else {
			scored[i] = scoredMove{score: wallDelta(mv.Wall), move: mv}
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ordered := make([]game.Move, len(scored))
	for i, s := range scored {
		ordered[i] = s.move
	}
	return ordered
}
