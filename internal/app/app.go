//go:build ebiten

package app

import (
	"image/color"
	"time"

	"golife/internal/core"
	"golife/internal/render"
	"golife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the simulation to the ebiten.Game interface. Ebiten owns
// the frame pacing (SetTPS in main); Update applies the frames-per-tick
// gate so the simulation advances at its own slower rate while Draw
// repaints every frame.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	gate    *core.FrameGate
	cfg     *Config
	reseed  func(seed int64)

	paused     bool
	tickOnce   bool
	generation int
}

// New constructs a Game for the provided simulation. The reseed
// callback restores the initial state; when nil, sim.Reset is used.
func New(sim core.Sim, cfg *Config, reseed func(seed int64)) *Game {
	size := sim.Size()
	if reseed == nil {
		reseed = sim.Reset
	}
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(),
		gate:    core.NewFrameGate(cfg.FramesPerTick()),
		cfg:     cfg,
		reseed:  reseed,
	}
}

// Reset restores the initial board and restarts the tick gate.
func (g *Game) Reset(seed int64) {
	g.reseed(seed)
	g.gate = core.NewFrameGate(g.cfg.FramesPerTick())
	g.generation = 0
	g.tickOnce = false
}

// Update handles input and advances the simulation on gated frames.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.cfg.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.hud.Update()

	if g.paused {
		if g.tickOnce {
			g.step()
			g.tickOnce = false
		}
		return nil
	}
	if g.gate.Tick() {
		g.step()
	}
	return nil
}

func (g *Game) step() {
	g.sim.Step()
	g.generation++
}

// Draw renders the current board, one filled square per living cell.
func (g *Game) Draw(screen *ebiten.Image) {
	cells := g.sim.Cells()
	g.painter.Blit(screen, cells, g.cfg.CellColor(), color.Black, g.cfg.CellSize)
	g.hud.Draw(screen, g.generation, population(cells))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func population(cells []uint8) int {
	n := 0
	for _, c := range cells {
		if c != 0 {
			n++
		}
	}
	return n
}
