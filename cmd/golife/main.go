//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"golife/internal/app"
	"golife/internal/core"
	"golife/internal/seed"
	"golife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatal("too many arguments: expected at most one pattern file")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sim := life.New(cfg.Cols(), cfg.Rows())

	// Build the initial board up front so every seeding failure is
	// reported before a window exists, and so the R key can restore a
	// file-loaded pattern without touching the filesystem again.
	initial := core.NewGrid(cfg.Cols(), cfg.Rows())
	fromFile := flag.NArg() == 1
	if fromFile {
		if err := seed.FromFile(flag.Arg(0), initial); err != nil {
			log.Fatal(err)
		}
	}
	reseed := func(s int64) {
		switch {
		case fromFile:
			sim.Grid().CopyFrom(initial)
		case cfg.Fill == "noise":
			seed.Noise(sim.Grid(), s, cfg.NoiseScale, cfg.Density)
		default:
			seed.Random(sim.Grid(), s)
		}
	}
	reseed(cfg.Seed)

	game := app.New(sim, cfg, reseed)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.FPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
