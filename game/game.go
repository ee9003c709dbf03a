package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game wires the controller, renderer, and animator into the Ebiten loop.
type Game struct {
	controller *Controller
	renderer   *CanvasRenderer
	animator   *PlayerAnimator
	mapper     Mapper

	lastUpdateTime time.Time
	hoverTile      Tile
	hasHover       bool
}

// New creates a game instance: animator, renderer, and a controller using
// A* over the configured connectivity.
func New(cfg Config) *Game {
	animator := NewPlayerAnimator()
	renderer := NewCanvasRenderer(cfg.SurfaceSize, animator)

	conn := Conn4
	if cfg.Diagonal {
		conn = Conn8
	}
	controller := NewController(cfg, NewAStar(conn), renderer, animator)

	return &Game{
		controller:     controller,
		renderer:       renderer,
		animator:       animator,
		mapper:         Mapper{Surface: float64(cfg.SurfaceSize)},
		lastUpdateTime: time.Now(),
	}
}

// Update handles input and advances the player animation.
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdateTime)
	g.lastUpdateTime = now

	g.handleInput()
	g.animator.Update(dt)
	return nil
}

// Draw renders the grid, path preview, player, and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen)
	g.drawHUD(screen)
}

// Layout reports the fixed square render surface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.controller.Config().SurfaceSize
	return size, size
}
