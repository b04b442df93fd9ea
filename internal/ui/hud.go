//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUD shows live simulation counters in the window corner.
type HUD struct {
	visible bool
}

// NewHUD constructs a HUD, hidden until toggled.
func NewHUD() *HUD { return &HUD{} }

// Update handles HUD key bindings.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders the counters onto screen when the HUD is visible.
func (h *HUD) Draw(screen *ebiten.Image, generation, population int) {
	if h == nil || !h.visible {
		return
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("generation %d\npopulation %d", generation, population), 4, 4)
}
