package game

import "math"

// ScreenPoint is a pixel-space point on the render surface.
type ScreenPoint struct {
	X, Y float64
}

// Mapper converts between grid-tile coordinates and pixel coordinates on a
// fixed square render surface. Tile.X is a row and rows run vertically on
// screen, so the transform swaps axes in both directions; the swap must stay
// consistent or paths render mirrored across the diagonal.
type Mapper struct {
	Surface float64
}

// ScreenToTile maps a pixel position to the tile containing it.
// Out-of-range positions map to out-of-range tiles, never an error.
func (m Mapper) ScreenToTile(p ScreenPoint, gridSize int) Tile {
	if gridSize <= 0 {
		return Tile{}
	}
	cell := m.Surface / float64(gridSize)
	return Tile{
		X: int(math.Floor(p.Y / cell)),
		Y: int(math.Floor(p.X / cell)),
	}
}

// TileToScreen maps a tile to the pixel position of its cell center, the
// inverse of ScreenToTile up to flooring.
func (m Mapper) TileToScreen(t Tile, gridSize int) ScreenPoint {
	if gridSize <= 0 {
		return ScreenPoint{}
	}
	cell := m.Surface / float64(gridSize)
	return ScreenPoint{
		X: float64(t.Y)*cell + cell/2,
		Y: float64(t.X)*cell + cell/2,
	}
}

// CellSize returns the side length of one cell in pixels.
func (m Mapper) CellSize(gridSize int) float64 {
	if gridSize <= 0 {
		return 0
	}
	return m.Surface / float64(gridSize)
}
