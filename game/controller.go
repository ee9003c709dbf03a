package game

import (
	"math/rand"
	"time"
)

// State is the controller's movement state.
type State int

const (
	// StateIdle accepts preview and commit commands.
	StateIdle State = iota
	// StateMoving rejects all path commands until the lock deadline passes.
	StateMoving
)

// Controller orchestrates path preview and commit against the grid through a
// pluggable search function, and owns the movement-lock state machine. All
// fields are single-owner and mutated only on the caller's stack; there are
// no timers or goroutines. The lock is a deadline checked against the clock,
// so clearing it is idempotent and a regenerate during the lock window simply
// zeroes the deadline.
type Controller struct {
	cfg    Config
	rng    *rand.Rand
	search SearchFunc
	mapper Mapper
	render RenderPort
	anim   AnimationPort

	grid        Grid
	player      Tile
	lockedUntil time.Time

	now func() time.Time
}

// NewController generates the initial grid, places the player on the first
// walkable tile, and draws the opening frame through the render port.
func NewController(cfg Config, search SearchFunc, render RenderPort, anim AnimationPort) *Controller {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	c := &Controller{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		search: search,
		mapper: Mapper{Surface: float64(cfg.SurfaceSize)},
		render: render,
		anim:   anim,
		now:    time.Now,
	}
	c.reset()
	return c
}

// reset regenerates the grid from the current config, clears the lock, and
// redraws everything.
func (c *Controller) reset() {
	c.grid, c.player = NewGrid(c.rng, c.cfg.GridSize, c.cfg.WallFrequency)
	c.lockedUntil = time.Time{}
	c.render.DrawGrid(c.grid)
	c.render.DrawPath(nil)
	c.render.PlacePlayer(c.mapper.TileToScreen(c.player, c.grid.Size()))
}

// State reports whether the controller currently accepts path commands.
func (c *Controller) State() State {
	if !c.lockedUntil.IsZero() && c.now().Before(c.lockedUntil) {
		return StateMoving
	}
	return StateIdle
}

// Player returns the current player tile.
func (c *Controller) Player() Tile {
	return c.player
}

// GridSnapshot returns the current grid. Callers must treat it as read-only.
func (c *Controller) GridSnapshot() Grid {
	return c.grid
}

// Config returns the current configuration, including merged option patches.
func (c *Controller) Config() Config {
	return c.cfg
}

// PreviewPath queries a path from the player to the hovered tile and
// forwards it, player tile prepended, to the render port as a polyline.
// An unreachable hover clears the preview line. Ignored while moving.
func (c *Controller) PreviewPath(hover Tile) {
	if c.State() == StateMoving {
		return
	}
	path := c.search(c.grid, c.player, hover)
	if len(path) == 0 {
		c.render.DrawPath(nil)
		return
	}
	c.render.DrawPath(c.toScreen(append([]Tile{c.player}, path...)))
}

// CommitPath queries a path to the clicked tile and, if one exists, hands it
// to the animation port, moves the player tile to the path's end, and locks
// further commands for the move duration. The position updates at commit
// time, not at animation completion. A click on an unreachable or identical
// tile is a silent no-op, as is any click while moving.
func (c *Controller) CommitPath(click Tile) {
	if c.State() == StateMoving {
		return
	}
	path := c.search(c.grid, c.player, click)
	if len(path) == 0 {
		return
	}
	c.anim.MovePlayer(c.toScreen(append([]Tile{c.player}, path...)), c.cfg.MoveDuration)
	c.player = path[len(path)-1]
	c.lockedUntil = c.now().Add(c.cfg.MoveDuration)
	c.render.DrawPath(nil)
}

// Regenerate merges the supplied option patches into the configuration and
// rebuilds the grid. Allowed in any state: an in-flight movement lock is
// discarded, the player is reset to the new grid's first walkable tile, and
// the full grid is redrawn with the preview cleared.
func (c *Controller) Regenerate(opts ...Option) {
	for _, opt := range opts {
		opt(&c.cfg)
	}
	c.reset()
}

// toScreen maps a tile path to cell-center screen points.
func (c *Controller) toScreen(path []Tile) []ScreenPoint {
	points := make([]ScreenPoint, len(path))
	for i, t := range path {
		points[i] = c.mapper.TileToScreen(t, c.grid.Size())
	}
	return points
}
