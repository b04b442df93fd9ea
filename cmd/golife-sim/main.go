// golife-sim runs the simulation loop without a window: same seeding,
// same frames-per-tick gating, same wall-clock pacing, with a nop
// renderer. Useful for timing the loop and for soak-testing patterns.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"golife/internal/app"
	"golife/internal/core"
	"golife/internal/seed"
	"golife/internal/sims/life"
)

type countingSim struct {
	core.Sim
	steps int
}

func (s *countingSim) Step() {
	s.Sim.Step()
	s.steps++
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 600, "number of frames to run before exiting")
	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatal("too many arguments: expected at most one pattern file")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if *frames < 0 {
		log.Fatalf("frame count must not be negative, got %d", *frames)
	}

	sim := life.New(cfg.Cols(), cfg.Rows())
	switch {
	case flag.NArg() == 1:
		if err := seed.FromFile(flag.Arg(0), sim.Grid()); err != nil {
			log.Fatal(err)
		}
	case cfg.Fill == "noise":
		seed.Noise(sim.Grid(), cfg.Seed, cfg.NoiseScale, cfg.Density)
	default:
		seed.Random(sim.Grid(), cfg.Seed)
	}

	csim := &countingSim{Sim: sim}
	loop := core.NewLoop(csim, cfg.FPS, cfg.FramesPerTick())

	rendered := 0
	start := time.Now()
	loop.Run(
		func() bool { return rendered >= *frames },
		func([]uint8) { rendered++ },
	)
	elapsed := time.Since(start)

	fmt.Printf("%d frames in %v (target %d fps), %d generations, %d cells alive\n",
		rendered, elapsed.Round(time.Millisecond), cfg.FPS, csim.steps, sim.Grid().Population())
}
