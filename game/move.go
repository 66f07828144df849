package game

// Coord is a 0-indexed (row, column) cell position on the board.
type Coord struct {
	Row int
	Col int
}

// Orientation of a wall segment on the lattice between cells.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "H"
	}
	return "V"
}

// Wall is a 2-cell-spanning blocker anchored at (Row, Col) with
// 0 <= Row, Col < N-1. A horizontal wall blocks the two vertical edges
// between rows Row and Row+1 at columns Col and Col+1; a vertical wall
// blocks the two horizontal edges between columns Col and Col+1 at rows
// Row and Row+1.
type Wall struct {
	Row    int
	Col    int
	Orient Orientation
}

// MoveKind tags a Move as a pawn step or a wall placement.
type MoveKind uint8

const (
	PawnMoveKind MoveKind = iota
	WallMoveKind
)

// Move is the tagged variant consumed by move generation, application and
// search. It is a plain comparable value: To is meaningful for pawn moves,
// Wall for wall moves.
type Move struct {
	Kind MoveKind
	To   Coord
	Wall Wall
}

// PawnMove returns a pawn move to the given destination cell.
func PawnMove(to Coord) Move {
	return Move{Kind: PawnMoveKind, To: to}
}

// WallMove returns a wall placement move.
func WallMove(w Wall) Move {
	return Move{Kind: WallMoveKind, Wall: w}
}
