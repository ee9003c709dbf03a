package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// recorder captures every port call the controller makes.
type recorder struct {
	gridDraws []Grid
	pathDraws [][]ScreenPoint
	placed    []ScreenPoint
	moves     []moveCall
}

type moveCall struct {
	points   []ScreenPoint
	duration time.Duration
}

func (r *recorder) DrawGrid(g Grid)           { r.gridDraws = append(r.gridDraws, g) }
func (r *recorder) DrawPath(p []ScreenPoint)  { r.pathDraws = append(r.pathDraws, p) }
func (r *recorder) PlacePlayer(p ScreenPoint) { r.placed = append(r.placed, p) }
func (r *recorder) MovePlayer(p []ScreenPoint, d time.Duration) {
	r.moves = append(r.moves, moveCall{points: p, duration: d})
}

// calls counts all recorded port activity, for lock-exclusion checks.
func (r *recorder) calls() int {
	return len(r.gridDraws) + len(r.pathDraws) + len(r.placed) + len(r.moves)
}

// fakeClock stands in for time.Now so lock deadlines advance only on demand.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// newTestController builds a controller over an open 4x4 grid with a wall at
// (0,1), the player at (0,0), and a fake clock.
func newTestController(t *testing.T) (*Controller, *recorder, *fakeClock) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.GridSize = 4
	cfg.WallFrequency = 0 // fully walkable, wall injected below
	cfg.Seed = 1
	rec := &recorder{}
	c := NewController(cfg, NewAStar(Conn4), rec, rec)
	clock := &fakeClock{t: time.Unix(1000, 0)}
	c.now = clock.now
	c.grid[0][1] = Cell{Weight: WeightWall}
	require.Equal(t, Tile{X: 0, Y: 0}, c.Player())
	require.Equal(t, StateIdle, c.State())
	return c, rec, clock
}

// TestController_InitialDraw verifies construction draws the grid, clears
// the path, and places the player at the first walkable tile's cell center.
func TestController_InitialDraw(t *testing.T) {
	c, rec, _ := newTestController(t)
	require.Len(t, rec.gridDraws, 1)
	require.Len(t, rec.pathDraws, 1)
	require.Empty(t, rec.pathDraws[0])
	require.Len(t, rec.placed, 1)
	want := c.mapper.TileToScreen(Tile{X: 0, Y: 0}, 4)
	require.Equal(t, want, rec.placed[0])
}

// TestController_PreviewPrependsPlayer verifies the preview polyline starts
// at the player's cell center and ends at the hovered tile's center.
func TestController_PreviewPrependsPlayer(t *testing.T) {
	c, rec, _ := newTestController(t)
	c.PreviewPath(Tile{X: 2, Y: 2})
	line := rec.pathDraws[len(rec.pathDraws)-1]
	require.NotEmpty(t, line)
	require.Equal(t, c.mapper.TileToScreen(Tile{X: 0, Y: 0}, 4), line[0])
	require.Equal(t, c.mapper.TileToScreen(Tile{X: 2, Y: 2}, 4), line[len(line)-1])
	require.Equal(t, StateIdle, c.State())
	require.Equal(t, Tile{X: 0, Y: 0}, c.Player())
}

// TestController_PreviewUnreachableClears verifies an unreachable hover
// forwards an empty polyline and changes nothing else.
func TestController_PreviewUnreachableClears(t *testing.T) {
	c, rec, _ := newTestController(t)
	c.PreviewPath(Tile{X: 0, Y: 1}) // the wall
	line := rec.pathDraws[len(rec.pathDraws)-1]
	require.Empty(t, line)
	require.Empty(t, rec.moves)
	require.Equal(t, Tile{X: 0, Y: 0}, c.Player())
}

// TestController_CommitMovesPlayer replays the single-wall scenario: the
// committed path avoids the wall, ends at the goal, and the player tile
// updates immediately at commit time.
func TestController_CommitMovesPlayer(t *testing.T) {
	c, rec, _ := newTestController(t)
	c.CommitPath(Tile{X: 3, Y: 3})

	require.Len(t, rec.moves, 1)
	move := rec.moves[0]
	require.Equal(t, c.cfg.MoveDuration, move.duration)
	// Player center first, goal center last, wall center absent.
	require.Equal(t, c.mapper.TileToScreen(Tile{X: 0, Y: 0}, 4), move.points[0])
	require.Equal(t, c.mapper.TileToScreen(Tile{X: 3, Y: 3}, 4), move.points[len(move.points)-1])
	require.NotContains(t, move.points, c.mapper.TileToScreen(Tile{X: 0, Y: 1}, 4))

	require.Equal(t, Tile{X: 3, Y: 3}, c.Player())
	require.Equal(t, StateMoving, c.State())
}

// TestController_CommitOwnTile verifies clicking the player's tile is a
// silent no-op.
func TestController_CommitOwnTile(t *testing.T) {
	c, rec, _ := newTestController(t)
	before := rec.calls()
	c.CommitPath(c.Player())
	require.Equal(t, before, rec.calls())
	require.Equal(t, StateIdle, c.State())
	require.Equal(t, Tile{X: 0, Y: 0}, c.Player())
}

// TestController_CommitUnreachable verifies clicking a wall is a silent
// no-op.
func TestController_CommitUnreachable(t *testing.T) {
	c, rec, _ := newTestController(t)
	before := rec.calls()
	c.CommitPath(Tile{X: 0, Y: 1})
	require.Equal(t, before, rec.calls())
	require.Equal(t, StateIdle, c.State())
}

// TestController_LockExclusion verifies that while the lock holds, preview
// and commit have zero observable effect, and that the lock releases exactly
// when the move duration elapses.
func TestController_LockExclusion(t *testing.T) {
	c, rec, clock := newTestController(t)
	c.CommitPath(Tile{X: 3, Y: 3})

	before := rec.calls()
	clock.advance(c.cfg.MoveDuration / 2)

	c.PreviewPath(Tile{X: 1, Y: 1})
	c.CommitPath(Tile{X: 1, Y: 1})
	require.Equal(t, before, rec.calls())
	require.Equal(t, Tile{X: 3, Y: 3}, c.Player())
	require.Equal(t, StateMoving, c.State())

	clock.advance(c.cfg.MoveDuration)
	require.Equal(t, StateIdle, c.State())

	c.CommitPath(Tile{X: 1, Y: 1})
	require.Equal(t, Tile{X: 1, Y: 1}, c.Player())
}

// TestController_RegenerateMidLock verifies regeneration during the lock
// window forces Idle immediately and produces a fresh grid of the requested
// size with a valid player tile.
func TestController_RegenerateMidLock(t *testing.T) {
	c, rec, _ := newTestController(t)
	c.CommitPath(Tile{X: 3, Y: 3})
	require.Equal(t, StateMoving, c.State())

	c.Regenerate(WithGridSize(8))

	require.Equal(t, StateIdle, c.State())
	require.Equal(t, 8, c.GridSnapshot().Size())
	require.True(t, c.GridSnapshot().Walkable(c.Player()))

	// Full redraw: new grid, cleared path, player placed.
	require.Equal(t, c.grid, rec.gridDraws[len(rec.gridDraws)-1])
	require.Empty(t, rec.pathDraws[len(rec.pathDraws)-1])
	require.Equal(t, c.mapper.TileToScreen(c.Player(), 8), rec.placed[len(rec.placed)-1])
}

// TestController_RegenerateMergesOptions verifies regenerate patches only
// the supplied keys.
func TestController_RegenerateMergesOptions(t *testing.T) {
	c, _, _ := newTestController(t)
	c.Regenerate(WithWallFrequency(0.25))
	require.Equal(t, 4, c.Config().GridSize)
	require.Equal(t, 0.25, c.Config().WallFrequency)

	c.Regenerate(WithGridSize(10))
	require.Equal(t, 10, c.Config().GridSize)
	require.Equal(t, 0.25, c.Config().WallFrequency)

	c.Regenerate()
	require.Equal(t, 10, c.Config().GridSize)
	require.Equal(t, 0.25, c.Config().WallFrequency)
}
