package game

import "time"

// RenderPort receives computed drawing data from the controller. Rendering
// internals are the implementation's responsibility.
type RenderPort interface {
	// DrawGrid replaces the rendered grid with a fresh snapshot.
	DrawGrid(g Grid)

	// DrawPath replaces the preview polyline; an empty slice clears it.
	DrawPath(points []ScreenPoint)

	// PlacePlayer puts the player marker at a fixed position, discarding
	// any in-flight motion.
	PlacePlayer(p ScreenPoint)
}

// AnimationPort moves the player marker along an ordered sequence of screen
// points over the given duration. Easing and interpolation are the
// implementation's responsibility.
type AnimationPort interface {
	MovePlayer(points []ScreenPoint, d time.Duration)
}
