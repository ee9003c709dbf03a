package game

import "time"

// PlayerAnimator moves the player marker along a sequence of screen points
// with piecewise-linear interpolation, advanced by frame delta time. It
// retains the final waypoint after the move completes so the marker never
// disappears between moves.
type PlayerAnimator struct {
	points   []ScreenPoint
	duration time.Duration
	elapsed  time.Duration
	pos      ScreenPoint
}

// NewPlayerAnimator creates an animator resting at the origin.
func NewPlayerAnimator() *PlayerAnimator {
	return &PlayerAnimator{}
}

// MovePlayer starts a move along points over d. A move with fewer than two
// points or a non-positive duration snaps to the last point immediately.
func (a *PlayerAnimator) MovePlayer(points []ScreenPoint, d time.Duration) {
	if len(points) == 0 {
		return
	}
	if len(points) < 2 || d <= 0 {
		a.Snap(points[len(points)-1])
		return
	}
	a.points = points
	a.duration = d
	a.elapsed = 0
	a.pos = points[0]
}

// Snap teleports the marker, cancelling any in-flight move.
func (a *PlayerAnimator) Snap(p ScreenPoint) {
	a.points = nil
	a.pos = p
}

// Active reports whether a move is in flight.
func (a *PlayerAnimator) Active() bool {
	return a.points != nil
}

// Pos returns the marker's current screen position.
func (a *PlayerAnimator) Pos() ScreenPoint {
	return a.pos
}

// Update advances an in-flight move by dt. The path is parameterized by
// segment so each leg takes an equal share of the total duration.
func (a *PlayerAnimator) Update(dt time.Duration) {
	if a.points == nil {
		return
	}
	a.elapsed += dt
	if a.elapsed >= a.duration {
		a.Snap(a.points[len(a.points)-1])
		return
	}

	segments := len(a.points) - 1
	progress := float64(a.elapsed) / float64(a.duration) * float64(segments)
	i := int(progress)
	if i >= segments {
		i = segments - 1
	}
	frac := progress - float64(i)
	from, to := a.points[i], a.points[i+1]
	a.pos = ScreenPoint{
		X: from.X + (to.X-from.X)*frac,
		Y: from.Y + (to.Y-from.Y)*frac,
	}
}
