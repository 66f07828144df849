package game

import (
	"container/heap"
	"fmt"
)

// Board is the movement graph: an N x N grid of cells whose edges are
// dynamically removed and restored by wall placement. Wall anchors are
// stored as two fixed-size boolean arrays of (N-1)^2 entries so that
// tentative placements during legality probing and search are O(1) to
// toggle and trivial to copy for independent workers.
type Board struct {
	N      int
	hWalls []bool
	vWalls []bool
}

// NewBoard returns an empty board of the given size.
func NewBoard(n int) *Board {
	span := (n - 1) * (n - 1)
	return &Board{
		N:      n,
		hWalls: make([]bool, span),
		vWalls: make([]bool, span),
	}
}

// Copy returns an independent clone. Required before handing the board to
// a concurrent worker: the original is mutated in place during probing.
func (b *Board) Copy() *Board {
	hw := make([]bool, len(b.hWalls))
	copy(hw, b.hWalls)
	vw := make([]bool, len(b.vWalls))
	copy(vw, b.vWalls)
	return &Board{N: b.N, hWalls: hw, vWalls: vw}
}

func (b *Board) anchorInBounds(r, c int) bool {
	return r >= 0 && r < b.N-1 && c >= 0 && c < b.N-1
}

func (b *Board) anchor(r, c int) int {
	return r*(b.N-1) + c
}

// hWallAt reports a horizontal wall anchored at (r, c). Out-of-bounds
// anchors hold nothing, which lets edge checks probe both covering anchors
// without bounds bookkeeping.
func (b *Board) hWallAt(r, c int) bool {
	return b.anchorInBounds(r, c) && b.hWalls[b.anchor(r, c)]
}

func (b *Board) vWallAt(r, c int) bool {
	return b.anchorInBounds(r, c) && b.vWalls[b.anchor(r, c)]
}

// WallLegal reports whether w has an in-bounds anchor not already holding a
// wall of either orientation. Same-anchor placements are the only illegal
// conflicts ("overlap" for the same orientation, "cross" for the other);
// adjacent-anchor walls of the same orientation are allowed, matching the
// game's rules.
func (b *Board) WallLegal(w Wall) bool {
	if !b.anchorInBounds(w.Row, w.Col) {
		return false
	}
	i := b.anchor(w.Row, w.Col)
	return !b.hWalls[i] && !b.vWalls[i]
}

// PlaceWall adds w to the board. Returns ErrInvalidWallPlacement when
// WallLegal(w) is false.
func (b *Board) PlaceWall(w Wall) error {
	if !b.WallLegal(w) {
		return fmt.Errorf("%w: anchor (%d,%d) orientation %s", ErrInvalidWallPlacement, w.Row, w.Col, w.Orient)
	}
	if w.Orient == Horizontal {
		b.hWalls[b.anchor(w.Row, w.Col)] = true
	} else {
		b.vWalls[b.anchor(w.Row, w.Col)] = true
	}
	return nil
}

// RemoveWall clears w's anchor. Removing an absent wall is a no-op.
func (b *Board) RemoveWall(w Wall) {
	if !b.anchorInBounds(w.Row, w.Col) {
		return
	}
	if w.Orient == Horizontal {
		b.hWalls[b.anchor(w.Row, w.Col)] = false
	} else {
		b.vWalls[b.anchor(w.Row, w.Col)] = false
	}
}

// BlockedEdge reports whether movement between a and c is blocked. Pairs
// that are not orthogonally adjacent have no lattice edge and report
// blocked. The predicate is symmetric in its arguments.
//
// A horizontal move at row r between columns cmin and cmin+1 crosses a
// segment covered by a vertical wall anchored at (r, cmin) or (r-1, cmin):
// a single vertical wall spans two rows, so either covering anchor blocks
// the segment. Vertical moves mirror this with horizontal-wall anchors.
func (b *Board) BlockedEdge(a, c Coord) bool {
	if a.Row == c.Row {
		if abs(a.Col-c.Col) != 1 {
			return true
		}
		cmin := min(a.Col, c.Col)
		return b.vWallAt(a.Row, cmin) || b.vWallAt(a.Row-1, cmin)
	}
	if a.Col == c.Col {
		if abs(a.Row-c.Row) != 1 {
			return true
		}
		rmin := min(a.Row, c.Row)
		return b.hWallAt(rmin, a.Col) || b.hWallAt(rmin, a.Col-1)
	}
	return true
}

// Neighbors returns the up-to-4 orthogonally adjacent in-bounds cells not
// separated from p by a blocked edge.
func (b *Board) Neighbors(p Coord) []Coord {
	out := make([]Coord, 0, 4)
	cand := [4]Coord{
		{p.Row - 1, p.Col},
		{p.Row + 1, p.Col},
		{p.Row, p.Col - 1},
		{p.Row, p.Col + 1},
	}
	for _, q := range cand {
		if q.Row < 0 || q.Row >= b.N || q.Col < 0 || q.Col >= b.N {
			continue
		}
		if !b.BlockedEdge(p, q) {
			out = append(out, q)
		}
	}
	return out
}

// openItem is an A* frontier entry. seq breaks f-score ties in insertion
// order.
type openItem struct {
	f    int
	g    int
	cell Coord
	seq  int
}

type openQueue []openItem

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q openQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *openQueue) Push(x any) { *q = append(*q, x.(openItem)) }

func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// AStarDistToGoal returns the shortest hop count from start to the nearest
// cell whose row is in goalRows, and false when no goal row is reachable.
// The heuristic min |row - goalRow| is admissible and consistent since any
// move changes the row by at most one.
func (b *Board) AStarDistToGoal(start Coord, goalRows []int) (int, bool) {
	h := func(p Coord) int {
		best := b.N
		for _, gr := range goalRows {
			if d := abs(p.Row - gr); d < best {
				best = d
			}
		}
		return best
	}
	idx := func(p Coord) int { return p.Row*b.N + p.Col }

	bestG := make([]int, b.N*b.N)
	for i := range bestG {
		bestG[i] = -1
	}
	closed := make([]bool, b.N*b.N)

	open := &openQueue{}
	seq := 0
	push := func(g int, p Coord) {
		heap.Push(open, openItem{f: g + h(p), g: g, cell: p, seq: seq})
		seq++
	}
	bestG[idx(start)] = 0
	push(0, start)

	for open.Len() > 0 {
		cur := heap.Pop(open).(openItem)
		if closed[idx(cur.cell)] {
			continue
		}
		for _, gr := range goalRows {
			if cur.cell.Row == gr {
				return cur.g, true
			}
		}
		closed[idx(cur.cell)] = true
		for _, next := range b.Neighbors(cur.cell) {
			ng := cur.g + 1
			if prev := bestG[idx(next)]; prev == -1 || ng < prev {
				bestG[idx(next)] = ng
				push(ng, next)
			}
		}
	}
	return 0, false
}

// PathExistsFor reports whether any goal row is reachable from start.
func (b *Board) PathExistsFor(start Coord, goalRows []int) bool {
	_, ok := b.AStarDistToGoal(start, goalRows)
	return ok
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
