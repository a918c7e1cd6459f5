//go:build !ebiten

package ui

import "github.com/payneba/wfc-visualizer/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns a stub HUD in the headless build.
func NewHUD(core.Model) *HUD { return &HUD{} }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, bool) {}
