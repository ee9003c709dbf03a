// Command gridwalker opens an interactive pathfinding demo window: hover a
// cell to preview the shortest path from the player, click to walk it.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"gridwalker/game"
)

var (
	gridSize      = flag.Int("grid-size", 0, "cells per grid side (default from config)")
	wallFrequency = flag.Float64("wall-frequency", -1, "fraction of cells generated as walls, 0..0.9")
	surfaceSize   = flag.Int("surface", 0, "render surface side length in pixels")
	moveMs        = flag.Int("move-ms", 0, "player move duration in milliseconds")
	seed          = flag.Int64("seed", 0, "grid generation seed (0 = time-derived)")
	diagonal      = flag.Bool("diagonal", false, "allow diagonal movement")
)

func main() {
	flag.Parse()

	cfg := game.DefaultConfig()
	if *gridSize > 0 {
		cfg.GridSize = *gridSize
	}
	if *wallFrequency >= 0 {
		cfg.WallFrequency = *wallFrequency
	}
	if *surfaceSize > 0 {
		cfg.SurfaceSize = *surfaceSize
	}
	if *moveMs > 0 {
		cfg.MoveDuration = time.Duration(*moveMs) * time.Millisecond
	}
	cfg.Seed = *seed
	cfg.Diagonal = *diagonal

	g := game.New(cfg)

	ebiten.SetWindowSize(cfg.SurfaceSize, cfg.SurfaceSize)
	ebiten.SetWindowTitle("Grid Walker")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
