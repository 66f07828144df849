package game

// Evaluate scores the position for the side to move: positive is good for
// the player whose turn it is, matching the sign-flip convention the
// negamax search expects. The score is ten times the goal-distance
// differential plus a small bias for walls in hand.
//
// Both distances exist whenever the wall-placement connectivity invariant
// has been upheld; if one is missing the evaluation degrades to a neutral
// 0 rather than failing deep inside a search tree.
func (gs *GameState) Evaluate() float64 {
	me := gs.ToMove
	you := 1 - me

	dMe, okMe := gs.Board.AStarDistToGoal(gs.Pawns[me], gs.GoalRows(me))
	dYou, okYou := gs.Board.AStarDistToGoal(gs.Pawns[you], gs.GoalRows(you))
	if !okMe || !okYou {
		return 0
	}
	return float64(dYou-dMe)*10.0 + float64(gs.WallsLeft[me]-gs.WallsLeft[you])*0.5
}
