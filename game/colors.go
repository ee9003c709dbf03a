package game

import "image/color"

// Color constants
var (
	colorBackground = color.NRGBA{R: 3, G: 5, B: 16, A: 255}
	colorFloor      = color.NRGBA{R: 34, G: 40, B: 56, A: 255}
	colorWall       = color.NRGBA{R: 10, G: 12, B: 22, A: 255}
	colorGridLine   = color.NRGBA{R: 20, G: 26, B: 44, A: 255}
	colorPath       = color.NRGBA{R: 120, G: 210, B: 255, A: 255}
	colorPlayer     = color.NRGBA{R: 180, G: 255, B: 200, A: 255}
	colorHUDText    = color.NRGBA{R: 220, G: 226, B: 240, A: 255}
)
