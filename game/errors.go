package game

import "errors"

var (
	// ErrInvalidWallPlacement is returned by Board.PlaceWall for an
	// out-of-bounds anchor or an anchor already holding a wall of either
	// orientation. Callers are expected to check WallLegal first; hitting
	// this error indicates a caller-contract violation, not a recoverable
	// runtime condition.
	ErrInvalidWallPlacement = errors.New("invalid wall placement")

	// ErrIllegalMove is returned by GameState.Apply for a move that fails
	// its own legality preconditions, e.g. a mis-synchronized search state.
	ErrIllegalMove = errors.New("illegal move")
)
