package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalPawnMoves(t *testing.T) {
	t.Run("opening position", func(t *testing.T) {
		gs := NewGameState(9)
		require.ElementsMatch(t,
			[]Coord{{1, 4}, {0, 3}, {0, 5}},
			gs.LegalPawnMoves())
	})

	t.Run("straight jump over adjacent opponent", func(t *testing.T) {
		gs := NewGameState(9)
		gs.Pawns[0] = Coord{3, 4}
		gs.Pawns[1] = Coord{4, 4}

		moves := gs.LegalPawnMoves()
		require.Contains(t, moves, Coord{5, 4}, "Jump destination should be legal")
		require.NotContains(t, moves, Coord{4, 4}, "Occupied cell is not a destination")
	})

	t.Run("diagonal side-steps when the jump is blocked", func(t *testing.T) {
		gs := NewGameState(9)
		gs.Pawns[0] = Coord{3, 4}
		gs.Pawns[1] = Coord{4, 4}
		require.NoError(t, gs.Board.PlaceWall(Wall{Row: 4, Col: 4, Orient: Horizontal}))

		moves := gs.LegalPawnMoves()
		require.NotContains(t, moves, Coord{5, 4}, "Blocked jump destination should be excluded")
		require.Contains(t, moves, Coord{4, 3})
		require.Contains(t, moves, Coord{4, 5})
	})

	t.Run("jump off the board falls back to side-steps", func(t *testing.T) {
		gs := NewGameState(9)
		gs.Pawns[0] = Coord{7, 0}
		gs.Pawns[1] = Coord{8, 0}
		gs.ToMove = 0

		moves := gs.LegalPawnMoves()
		require.NotContains(t, moves, Coord{9, 0}, "Jump destination is off the board")
		require.Contains(t, moves, Coord{8, 1}, "Side-step around the edge opponent")
	})

	t.Run("blocked mover-opponent edge disables side-steps", func(t *testing.T) {
		gs := NewGameState(9)
		gs.Pawns[0] = Coord{3, 4}
		gs.Pawns[1] = Coord{4, 4}
		// The opponent is unreachable: both the shared edge and (trivially)
		// any route through it are walled off.
		require.NoError(t, gs.Board.PlaceWall(Wall{Row: 3, Col: 4, Orient: Horizontal}))

		moves := gs.LegalPawnMoves()
		require.NotContains(t, moves, Coord{4, 3})
		require.NotContains(t, moves, Coord{4, 5})
		require.NotContains(t, moves, Coord{5, 4})
	})
}

func TestLegalWallMoves(t *testing.T) {
	t.Run("fresh board offers every anchor twice", func(t *testing.T) {
		gs := NewGameState(9)
		require.Len(t, gs.LegalWallMoves(), 2*8*8)
	})

	t.Run("empty budget yields no wall moves", func(t *testing.T) {
		gs := NewGameState(9)
		gs.WallsLeft[0] = 0
		require.Empty(t, gs.LegalWallMoves())
	})

	t.Run("connectivity invariant holds for every candidate", func(t *testing.T) {
		gs := NewGameState(9)
		gs.Pawns[0] = Coord{0, 0}
		require.NoError(t, gs.Board.PlaceWall(Wall{Row: 0, Col: 0, Orient: Horizontal}))
		require.NoError(t, gs.Board.PlaceWall(Wall{Row: 2, Col: 0, Orient: Horizontal}))

		for _, w := range gs.LegalWallMoves() {
			require.NoError(t, gs.Board.PlaceWall(w))
			require.True(t, gs.Board.PathExistsFor(gs.Pawns[0], gs.GoalRows(0)),
				"Wall %+v should leave player 0 a path", w)
			require.True(t, gs.Board.PathExistsFor(gs.Pawns[1], gs.GoalRows(1)),
				"Wall %+v should leave player 1 a path", w)
			gs.Board.RemoveWall(w)
		}
	})

	t.Run("sealing wall is excluded", func(t *testing.T) {
		gs := NewGameState(9)
		gs.Pawns[0] = Coord{0, 0}
		require.NoError(t, gs.Board.PlaceWall(Wall{Row: 0, Col: 0, Orient: Horizontal}))

		// V(0,1) would seal cells (0,0) and (0,1) with player 0 inside.
		require.NotContains(t, gs.LegalWallMoves(), Wall{Row: 0, Col: 1, Orient: Vertical})
	})
}

func TestLegalMoves(t *testing.T) {
	gs := NewGameState(9)
	moves := gs.LegalMoves()
	require.Len(t, moves, 3+128)
	for _, mv := range moves[:3] {
		require.Equal(t, PawnMoveKind, mv.Kind, "Pawn moves should come first")
	}
	for _, mv := range moves[3:] {
		require.Equal(t, WallMoveKind, mv.Kind)
	}
}

func TestApply(t *testing.T) {
	t.Run("pawn move updates position and flips the turn", func(t *testing.T) {
		gs := NewGameState(9)
		require.NoError(t, gs.Apply(PawnMove(Coord{1, 4})))
		require.Equal(t, Coord{1, 4}, gs.Pawns[0])
		require.Equal(t, 1, gs.ToMove)
	})

	t.Run("wall move places the wall and decrements the budget", func(t *testing.T) {
		gs := NewGameState(9)
		w := Wall{Row: 4, Col: 4, Orient: Horizontal}
		require.NoError(t, gs.Apply(WallMove(w)))
		require.Equal(t, 9, gs.WallsLeft[0])
		require.True(t, gs.Board.BlockedEdge(Coord{4, 4}, Coord{5, 4}))
		require.Equal(t, 1, gs.ToMove)
	})

	t.Run("illegal pawn move is rejected without side effects", func(t *testing.T) {
		gs := NewGameState(9)
		err := gs.Apply(PawnMove(Coord{5, 5}))
		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, Coord{0, 4}, gs.Pawns[0])
		require.Equal(t, 0, gs.ToMove)
	})

	t.Run("wall move without budget is rejected", func(t *testing.T) {
		gs := NewGameState(9)
		gs.WallsLeft[0] = 0
		err := gs.Apply(WallMove(Wall{Row: 4, Col: 4, Orient: Horizontal}))
		require.ErrorIs(t, err, ErrIllegalMove)
		require.False(t, gs.Board.BlockedEdge(Coord{4, 4}, Coord{5, 4}),
			"Board should be untouched")
		require.Equal(t, 0, gs.ToMove)
	})

	t.Run("wall move breaking connectivity is rejected and retracted", func(t *testing.T) {
		gs := NewGameState(9)
		gs.Pawns[0] = Coord{0, 0}
		require.NoError(t, gs.Board.PlaceWall(Wall{Row: 0, Col: 0, Orient: Horizontal}))

		err := gs.Apply(WallMove(Wall{Row: 0, Col: 1, Orient: Vertical}))
		require.ErrorIs(t, err, ErrIllegalMove)
		require.False(t, gs.Board.BlockedEdge(Coord{0, 1}, Coord{0, 2}),
			"Probed wall should be retracted on rejection")
		require.Equal(t, 10, gs.WallsLeft[0])
		require.Equal(t, 0, gs.ToMove)
	})

	t.Run("occupied anchor is rejected", func(t *testing.T) {
		gs := NewGameState(9)
		require.NoError(t, gs.Apply(WallMove(Wall{Row: 4, Col: 4, Orient: Horizontal})))
		err := gs.Apply(WallMove(Wall{Row: 4, Col: 4, Orient: Vertical}))
		require.ErrorIs(t, err, ErrIllegalMove)
	})
}

func TestSnapshotRestore(t *testing.T) {
	gs := NewGameState(9)
	require.NoError(t, gs.Apply(WallMove(Wall{Row: 2, Col: 3, Orient: Vertical})))

	snap := gs.Snapshot()
	before := gs.Copy()

	require.NoError(t, gs.Apply(PawnMove(Coord{7, 4})))
	require.NoError(t, gs.Apply(WallMove(Wall{Row: 6, Col: 6, Orient: Horizontal})))
	gs.Restore(snap)

	require.Equal(t, before.Pawns, gs.Pawns)
	require.Equal(t, before.WallsLeft, gs.WallsLeft)
	require.Equal(t, before.ToMove, gs.ToMove)
	require.Equal(t, before.Board.hWalls, gs.Board.hWalls)
	require.Equal(t, before.Board.vWalls, gs.Board.vWalls)
}

func TestWinner(t *testing.T) {
	t.Run("undecided", func(t *testing.T) {
		gs := NewGameState(9)
		_, decided := gs.Winner()
		require.False(t, decided)
	})

	t.Run("player 0 on the far row", func(t *testing.T) {
		gs := NewGameState(9)
		gs.Pawns[0] = Coord{8, 2}
		winner, decided := gs.Winner()
		require.True(t, decided)
		require.Equal(t, 0, winner)
	})

	t.Run("player 1 on row zero", func(t *testing.T) {
		gs := NewGameState(9)
		gs.Pawns[1] = Coord{0, 6}
		winner, decided := gs.Winner()
		require.True(t, decided)
		require.Equal(t, 1, winner)
	})
}

func TestStateCopy(t *testing.T) {
	gs := NewGameState(9)
	clone := gs.Copy()

	require.NoError(t, clone.Apply(WallMove(Wall{Row: 0, Col: 0, Orient: Horizontal})))
	require.Equal(t, 10, gs.WallsLeft[0], "Original budget should be untouched")
	require.False(t, gs.Board.BlockedEdge(Coord{0, 0}, Coord{1, 0}),
		"Original board should be untouched")
}
