package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Option-nudging bounds; regeneration clamps to these.
const (
	minGridSize      = 2
	maxGridSize      = 60
	gridSizeStep     = 2
	minWallFrequency = 0.0
	maxWallFrequency = 0.9
	wallFreqStep     = 0.05
)

// handleInput maps pointer and key events to controller commands. Tiles
// outside the grid are rejected here; the controller never bounds-checks.
func (g *Game) handleInput() {
	cx, cy := ebiten.CursorPosition()
	tile := g.mapper.ScreenToTile(ScreenPoint{X: float64(cx), Y: float64(cy)}, g.controller.Config().GridSize)
	size := g.controller.GridSnapshot().Size()
	inGrid := tile.X >= 0 && tile.X < size && tile.Y >= 0 && tile.Y < size

	if inGrid {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.controller.CommitPath(tile)
			g.hasHover = false
		} else if !g.hasHover || tile != g.hoverTile {
			g.controller.PreviewPath(tile)
			g.hoverTile = tile
			g.hasHover = true
		}
	} else if g.hasHover {
		g.controller.PreviewPath(Tile{-1, -1}) // clears the preview line
		g.hasHover = false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.regenerate(WithGridSize(clampInt(g.controller.Config().GridSize-gridSizeStep, minGridSize, maxGridSize)))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.regenerate(WithGridSize(clampInt(g.controller.Config().GridSize+gridSizeStep, minGridSize, maxGridSize)))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.regenerate(WithWallFrequency(clampFloat(g.controller.Config().WallFrequency-wallFreqStep, minWallFrequency, maxWallFrequency)))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.regenerate(WithWallFrequency(clampFloat(g.controller.Config().WallFrequency+wallFreqStep, minWallFrequency, maxWallFrequency)))
	}
}

// regenerate forwards option patches and drops any stale hover state.
func (g *Game) regenerate(opts ...Option) {
	g.controller.Regenerate(opts...)
	g.hasHover = false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
