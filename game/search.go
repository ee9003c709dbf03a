package game

import "container/heap"

// SearchFunc is the pluggable shortest-path strategy the controller depends
// on. Implementations must never include a wall cell in the returned path,
// must return the cells from a neighbor of start up to and including goal,
// must return an empty path when goal is unreachable, a wall, out of bounds,
// or equal to start, and must be deterministic for fixed inputs.
type SearchFunc func(g Grid, start, goal Tile) []Tile

// Connectivity selects neighbor adjacency: orthogonal only, or including
// diagonals.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity, including diagonals.
	Conn8
)

// offsets returns the neighbor offset table in a fixed order; the order is
// part of the search tie-breaking rule.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	}
	return [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
}

// heuristic is Manhattan distance for Conn4 and Chebyshev for Conn8, both
// admissible under unit step cost.
func (c Connectivity) heuristic(a, b Tile) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if c == Conn8 {
		if dx > dy {
			return dx
		}
		return dy
	}
	return dx + dy
}

// NewAStar returns an A* SearchFunc over the given connectivity. Every step
// costs 1. Ties between equal-f nodes break on insertion order, so results
// are deterministic for a fixed grid and endpoints.
func NewAStar(conn Connectivity) SearchFunc {
	return func(g Grid, start, goal Tile) []Tile {
		if start == goal || !g.Walkable(start) || !g.Walkable(goal) {
			return nil
		}

		offsets := conn.offsets()
		open := &searchHeap{}
		heap.Init(open)
		heap.Push(open, &searchNode{tile: start})

		costSoFar := map[Tile]int{start: 0}
		cameFrom := map[Tile]Tile{}
		closed := map[Tile]bool{}
		seq := 0

		for open.Len() > 0 {
			current := heap.Pop(open).(*searchNode)
			if current.tile == goal {
				return reconstruct(cameFrom, start, goal)
			}
			if closed[current.tile] {
				continue
			}
			closed[current.tile] = true

			for _, d := range offsets {
				next := Tile{X: current.tile.X + d[0], Y: current.tile.Y + d[1]}
				if !g.Walkable(next) || closed[next] {
					continue
				}
				cost := costSoFar[current.tile] + 1
				if prev, seen := costSoFar[next]; seen && cost >= prev {
					continue
				}
				costSoFar[next] = cost
				cameFrom[next] = current.tile
				seq++
				heap.Push(open, &searchNode{
					tile:     next,
					priority: cost + conn.heuristic(next, goal),
					seq:      seq,
				})
			}
		}
		return nil
	}
}

// reconstruct walks the parent chain from goal back to start and returns the
// path excluding start, including goal.
func reconstruct(cameFrom map[Tile]Tile, start, goal Tile) []Tile {
	var rev []Tile
	for t := goal; t != start; t = cameFrom[t] {
		rev = append(rev, t)
	}
	path := make([]Tile, len(rev))
	for i, t := range rev {
		path[len(rev)-1-i] = t
	}
	return path
}

// searchNode is an open-set entry ordered by f-score, then insertion order.
type searchNode struct {
	tile     Tile
	priority int
	seq      int
}

type searchHeap []*searchNode

func (h searchHeap) Len() int { return len(h) }
func (h searchHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}
func (h searchHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *searchHeap) Push(x any) {
	*h = append(*h, x.(*searchNode))
}

func (h *searchHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
