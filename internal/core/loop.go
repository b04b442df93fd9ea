package core

import "time"

// Loop drives a simulation at a wall-clock frame rate, rendering every
// frame and stepping the simulation once per frames-per-tick frames.
// The loop is strictly sequential: poll, render, step, sleep. It owns
// the live simulation; renderers only ever see a read-only cell view.
type Loop struct {
	sim   Sim
	gate  *FrameGate
	pacer *FramePacer
	now   func() time.Time
}

// NewLoop constructs a loop targeting fps rendered frames per second
// with one simulation step every framesPerTick frames.
func NewLoop(sim Sim, fps, framesPerTick int) *Loop {
	return &Loop{
		sim:   sim,
		gate:  NewFrameGate(framesPerTick),
		pacer: NewFramePacer(fps),
		now:   time.Now,
	}
}

// Run iterates until quit reports true. Each iteration renders the
// current cells, advances the simulation when the gate fires, and
// sleeps off the rest of the frame budget. Quit is observed only at
// the top of an iteration, so termination latency is at most one
// frame interval. Run returns normally; there is nothing to fail.
func (l *Loop) Run(quit func() bool, render func(cells []uint8)) {
	for {
		start := l.now()
		if quit() {
			return
		}
		render(l.sim.Cells())
		if l.gate.Tick() {
			l.sim.Step()
		}
		l.pacer.Wait(start)
	}
}
