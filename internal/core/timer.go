package core

import "time"

// FrameGate decides on which rendered frames the simulation advances.
// It counts frames modulo a frames-per-tick ratio and fires on zero,
// so the first frame of a run always steps.
type FrameGate struct {
	framesPerTick int
	frame         int
}

// NewFrameGate constructs a gate firing once every framesPerTick frames.
func NewFrameGate(framesPerTick int) *FrameGate {
	if framesPerTick <= 0 {
		framesPerTick = 1
	}
	return &FrameGate{framesPerTick: framesPerTick}
}

// Tick advances the frame counter and reports whether the simulation
// should step on this frame.
func (g *FrameGate) Tick() bool {
	fire := g.frame == 0
	g.frame = (g.frame + 1) % g.framesPerTick
	return fire
}

// FramePacer sleeps off the remainder of each frame's time budget to
// hold a target frame rate. Best effort only: a frame that overruns
// its budget gets a zero sleep, never a catch-up.
type FramePacer struct {
	interval time.Duration
	sleep    func(time.Duration)
}

// NewFramePacer constructs a pacer targeting the given frames-per-second.
func NewFramePacer(fps int) *FramePacer {
	if fps <= 0 {
		fps = 60
	}
	return &FramePacer{
		interval: time.Second / time.Duration(fps),
		sleep:    time.Sleep,
	}
}

// Interval returns the target duration of one frame.
func (p *FramePacer) Interval() time.Duration { return p.interval }

// Delay returns how long to sleep after a frame that took elapsed.
func (p *FramePacer) Delay(elapsed time.Duration) time.Duration {
	if elapsed >= p.interval {
		return 0
	}
	return p.interval - elapsed
}

// Wait blocks until the frame started at start has used up its budget.
func (p *FramePacer) Wait(start time.Time) {
	if d := p.Delay(time.Since(start)); d > 0 {
		p.sleep(d)
	}
}
