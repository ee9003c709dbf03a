package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CanvasRenderer is the Ebiten render port. It caches the latest grid
// snapshot and preview polyline and draws them each frame, along with the
// player marker owned by the animator.
type CanvasRenderer struct {
	surface float64
	anim    *PlayerAnimator

	grid Grid
	path []ScreenPoint
}

// NewCanvasRenderer creates a renderer over a square surface of the given
// pixel size, drawing the player marker at the animator's position.
func NewCanvasRenderer(surfaceSize int, anim *PlayerAnimator) *CanvasRenderer {
	return &CanvasRenderer{
		surface: float64(surfaceSize),
		anim:    anim,
	}
}

// DrawGrid replaces the cached grid snapshot.
func (r *CanvasRenderer) DrawGrid(g Grid) {
	r.grid = g
}

// DrawPath replaces the cached preview polyline; empty clears it.
func (r *CanvasRenderer) DrawPath(points []ScreenPoint) {
	r.path = points
}

// PlacePlayer snaps the player marker to a fixed position.
func (r *CanvasRenderer) PlacePlayer(p ScreenPoint) {
	r.anim.Snap(p)
}

// Render draws the grid, the preview polyline, and the player marker.
func (r *CanvasRenderer) Render(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	size := r.grid.Size()
	if size == 0 {
		return
	}
	cell := float32(r.surface / float64(size))

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			clr := colorFloor
			if r.grid[row][col].Weight == WeightWall {
				clr = colorWall
			}
			// Screen x comes from the column, y from the row.
			x := float32(col) * cell
			y := float32(row) * cell
			vector.DrawFilledRect(screen, x, y, cell, cell, clr, false)
		}
	}

	// Grid lines over the tiles
	for i := 0; i <= size; i++ {
		p := float32(i) * cell
		vector.StrokeLine(screen, p, 0, p, float32(r.surface), 1, colorGridLine, false)
		vector.StrokeLine(screen, 0, p, float32(r.surface), p, 1, colorGridLine, false)
	}

	for i := 1; i < len(r.path); i++ {
		from, to := r.path[i-1], r.path[i]
		vector.StrokeLine(screen,
			float32(from.X), float32(from.Y),
			float32(to.X), float32(to.Y),
			2, colorPath, true)
	}

	radius := cell * 0.35
	if radius < 2 {
		radius = 2
	}
	pos := r.anim.Pos()
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, colorPlayer, true)
}
