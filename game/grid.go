package game

import (
	"math"
	"math/rand"
)

// Cell weights. A wall cell can never appear on a path.
const (
	WeightWall     = 0
	WeightWalkable = 1
)

// Cell is a single grid location with a traversability weight.
type Cell struct {
	Weight int
}

// Tile addresses a cell in grid space: X is the row, Y is the column.
// Screen space swaps the axes (a row runs vertically on screen); the Mapper
// owns that transform.
type Tile struct {
	X, Y int
}

// Grid is a square arrangement of cells for one round, indexed [row][col].
// It is owned by the controller; the search function only reads it for the
// lifetime of one query.
type Grid [][]Cell

// NewGrid generates a fresh size×size grid. Each cell is walkable iff a draw
// of floor(rand * 1/wallFrequency) is nonzero, so wallFrequency is roughly
// the fraction of wall cells. The returned tile is the first walkable cell
// in row-major order, used as the initial player position; if the draw
// produced no walkable cell at all, cell (0,0) is forced walkable so the
// player tile is always valid. Degenerate sizes (0, 1) are accepted.
func NewGrid(rng *rand.Rand, size int, wallFrequency float64) (Grid, Tile) {
	g := make(Grid, size)
	first := Tile{-1, -1}
	for row := 0; row < size; row++ {
		g[row] = make([]Cell, size)
		for col := 0; col < size; col++ {
			weight := WeightWalkable
			if wallFrequency > 0 && math.Floor(rng.Float64()*(1/wallFrequency)) == 0 {
				weight = WeightWall
			}
			g[row][col] = Cell{Weight: weight}
			if weight != WeightWall && first.X < 0 {
				first = Tile{X: row, Y: col}
			}
		}
	}
	if first.X < 0 {
		first = Tile{}
		if size > 0 {
			g[0][0] = Cell{Weight: WeightWalkable}
		}
	}
	return g, first
}

// Size returns the number of cells per side.
func (g Grid) Size() int {
	return len(g)
}

// At returns the cell at t. The caller must ensure t is in bounds.
func (g Grid) At(t Tile) Cell {
	return g[t.X][t.Y]
}

// Walkable reports whether t is in bounds and not a wall.
func (g Grid) Walkable(t Tile) bool {
	if t.X < 0 || t.X >= len(g) || t.Y < 0 || t.Y >= len(g) {
		return false
	}
	return g[t.X][t.Y].Weight != WeightWall
}
