package game

import "fmt"

// wallsPerPlayer is each side's placement budget in the standard game.
const wallsPerPlayer = 10

// GameState is the full game state: one owned board, both pawn positions,
// remaining wall budgets, and the player to move. Player 0 starts on the
// top back row and races to row N-1; player 1 starts on the bottom back
// row and races to row 0. The state is mutated in place for the lifetime
// of a game or search and must not be shared between concurrent callers;
// give each worker its own Copy.
type GameState struct {
	Board     *Board
	N         int
	Pawns     [2]Coord
	WallsLeft [2]int
	ToMove    int
}

// NewGameState returns the standard opening position on an n x n board.
// The standard game assumes n odd so each pawn starts at the midpoint of
// its back row.
func NewGameState(n int) *GameState {
	return &GameState{
		Board:     NewBoard(n),
		N:         n,
		Pawns:     [2]Coord{{0, n / 2}, {n - 1, n / 2}},
		WallsLeft: [2]int{wallsPerPlayer, wallsPerPlayer},
		ToMove:    0,
	}
}

// Copy returns an independent deep clone for concurrent game runners.
func (gs *GameState) Copy() *GameState {
	return &GameState{
		Board:     gs.Board.Copy(),
		N:         gs.N,
		Pawns:     gs.Pawns,
		WallsLeft: gs.WallsLeft,
		ToMove:    gs.ToMove,
	}
}

// GoalRows returns the rows the given player's pawn must reach to win.
func (gs *GameState) GoalRows(player int) []int {
	if player == 0 {
		return []int{gs.N - 1}
	}
	return []int{0}
}

// InBounds reports whether p is a cell on the board.
func (gs *GameState) InBounds(p Coord) bool {
	return p.Row >= 0 && p.Row < gs.N && p.Col >= 0 && p.Col < gs.N
}

// LegalPawnMoves enumerates the destinations the player to move may step
// to: unblocked neighbors, a straight jump over an adjacent opponent, or
// the diagonal side-steps around the opponent when the straight jump is
// blocked or off the board. Results are deduplicated.
func (gs *GameState) LegalPawnMoves() []Coord {
	me := gs.ToMove
	myp := gs.Pawns[me]
	opp := gs.Pawns[1-me]

	moves := make([]Coord, 0, 5)
	for _, q := range gs.Board.Neighbors(myp) {
		if q != opp {
			moves = append(moves, q)
			continue
		}

		dr := opp.Row - myp.Row
		dc := opp.Col - myp.Col
		jump := Coord{opp.Row + dr, opp.Col + dc}
		if gs.InBounds(jump) && !gs.Board.BlockedEdge(opp, jump) {
			moves = append(moves, jump)
			continue
		}

		// Straight jump unavailable: side-step to the opponent's
		// neighbors perpendicular to the approach direction.
		sides := [4]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
		for _, d := range sides {
			if dr != 0 && d.Row != 0 {
				continue
			}
			if dc != 0 && d.Col != 0 {
				continue
			}
			side := Coord{opp.Row + d.Row, opp.Col + d.Col}
			if !gs.InBounds(side) {
				continue
			}
			if gs.Board.BlockedEdge(opp, side) || gs.Board.BlockedEdge(myp, opp) {
				continue
			}
			moves = append(moves, side)
		}
	}

	uniq := moves[:0]
	seen := make(map[Coord]struct{}, len(moves))
	for _, m := range moves {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		uniq = append(uniq, m)
	}
	return uniq
}

// LegalWallMoves enumerates every wall the player to move may place: the
// anchor must be free, the budget positive, and both players must keep a
// path to their goal rows once the wall is tentatively placed. This is the
// dominant cost center of the engine: O(N^2) candidates, each probed with
// two reachability queries.
func (gs *GameState) LegalWallMoves() []Wall {
	if gs.WallsLeft[gs.ToMove] <= 0 {
		return nil
	}
	var cand []Wall
	for r := 0; r < gs.N-1; r++ {
		for c := 0; c < gs.N-1; c++ {
			for _, o := range [2]Orientation{Horizontal, Vertical} {
				w := Wall{Row: r, Col: c, Orient: o}
				if !gs.Board.WallLegal(w) {
					continue
				}
				if err := gs.Board.PlaceWall(w); err != nil {
					panic(err) // unreachable: legality checked above
				}
				ok := gs.Board.PathExistsFor(gs.Pawns[0], gs.GoalRows(0)) &&
					gs.Board.PathExistsFor(gs.Pawns[1], gs.GoalRows(1))
				gs.Board.RemoveWall(w)
				if ok {
					cand = append(cand, w)
				}
			}
		}
	}
	return cand
}

// LegalMoves returns the full legal move set, pawn moves first.
func (gs *GameState) LegalMoves() []Move {
	pawn := gs.LegalPawnMoves()
	walls := gs.LegalWallMoves()
	moves := make([]Move, 0, len(pawn)+len(walls))
	for _, p := range pawn {
		moves = append(moves, PawnMove(p))
	}
	for _, w := range walls {
		moves = append(moves, WallMove(w))
	}
	return moves
}

// Apply plays mv for the player to move and flips the turn. The move's own
// preconditions are validated directly: a pawn move must be in the pawn
// move set, a wall move must pass the anchor, budget and both-players
// connectivity checks. Returns ErrIllegalMove on a contract violation, in
// which case the state is unchanged.
func (gs *GameState) Apply(mv Move) error {
	switch mv.Kind {
	case PawnMoveKind:
		legal := false
		for _, q := range gs.LegalPawnMoves() {
			if q == mv.To {
				legal = true
				break
			}
		}
		if !legal {
			return fmt.Errorf("%w: pawn to (%d,%d)", ErrIllegalMove, mv.To.Row, mv.To.Col)
		}
		gs.Pawns[gs.ToMove] = mv.To

	case WallMoveKind:
		w := mv.Wall
		if gs.WallsLeft[gs.ToMove] <= 0 {
			return fmt.Errorf("%w: player %d has no walls left", ErrIllegalMove, gs.ToMove)
		}
		if err := gs.Board.PlaceWall(w); err != nil {
			return fmt.Errorf("%w: %v", ErrIllegalMove, err)
		}
		if !gs.Board.PathExistsFor(gs.Pawns[0], gs.GoalRows(0)) ||
			!gs.Board.PathExistsFor(gs.Pawns[1], gs.GoalRows(1)) {
			gs.Board.RemoveWall(w)
			return fmt.Errorf("%w: wall (%d,%d,%s) cuts a pawn off from its goal", ErrIllegalMove, w.Row, w.Col, w.Orient)
		}
		gs.WallsLeft[gs.ToMove]--

	default:
		return fmt.Errorf("%w: unknown move kind %d", ErrIllegalMove, mv.Kind)
	}

	gs.ToMove ^= 1
	return nil
}

// Snapshot is an opaque full-state capture used as the sole undo mechanism
// during search: pawns, both wall arrays, budgets and turn.
type Snapshot struct {
	pawns     [2]Coord
	hWalls    []bool
	vWalls    []bool
	wallsLeft [2]int
	toMove    int
}

// Snapshot captures the complete current state.
func (gs *GameState) Snapshot() Snapshot {
	hw := make([]bool, len(gs.Board.hWalls))
	copy(hw, gs.Board.hWalls)
	vw := make([]bool, len(gs.Board.vWalls))
	copy(vw, gs.Board.vWalls)
	return Snapshot{
		pawns:     gs.Pawns,
		hWalls:    hw,
		vWalls:    vw,
		wallsLeft: gs.WallsLeft,
		toMove:    gs.ToMove,
	}
}

// Restore reinstates a snapshot taken from this state.
func (gs *GameState) Restore(s Snapshot) {
	gs.Pawns = s.pawns
	copy(gs.Board.hWalls, s.hWalls)
	copy(gs.Board.vWalls, s.vWalls)
	gs.WallsLeft = s.wallsLeft
	gs.ToMove = s.toMove
}

// Winner returns the winning player index, or false while the game is
// undecided. Player 0 wins on row N-1, player 1 on row 0.
func (gs *GameState) Winner() (int, bool) {
	if gs.Pawns[0].Row == gs.N-1 {
		return 0, true
	}
	if gs.Pawns[1].Row == 0 {
		return 1, true
	}
	return 0, false
}
