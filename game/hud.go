package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD text layout
const (
	hudStatusX  = 6
	hudStatusY  = 16
	hudHelpX    = 6
	hudHelpYOff = 18
)

const hudHelp = "hover: preview  click: move  G: new grid  [/]: size  -/=: walls"

// drawHUD draws the status line and key help over the grid.
func (g *Game) drawHUD(screen *ebiten.Image) {
	state := "idle"
	if g.controller.State() == StateMoving {
		state = "moving"
	}
	cfg := g.controller.Config()
	player := g.controller.Player()
	status := fmt.Sprintf("grid %dx%d | walls %.0f%% | player (%d,%d) | %s",
		cfg.GridSize, cfg.GridSize, cfg.WallFrequency*100, player.X, player.Y, state)
	text.Draw(screen, status, basicfont.Face7x13, hudStatusX, hudStatusY, colorHUDText)
	ebitenutil.DebugPrintAt(screen, hudHelp, hudHelpX, cfg.SurfaceSize-hudHelpYOff)
}
