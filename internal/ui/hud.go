//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/payneba/wfc-visualizer/internal/core"
)

// HUD prints run status in the top-left corner of the view.
type HUD struct {
	model core.Model
}

// NewHUD constructs a HUD for the provided model.
func NewHUD(model core.Model) *HUD {
	return &HUD{model: model}
}

// Draw renders the status line.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	st := h.model.State()
	status := "running"
	col := color.RGBA{R: 230, G: 230, B: 230, A: 255}
	switch {
	case st.HasContradiction:
		status = "contradiction"
		col = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	case st.IsComplete:
		status = "done"
	case paused:
		status = "paused"
	}
	line := fmt.Sprintf("%s  step %d  %d/%d cells  %d patterns  [%s]",
		h.model.Name(), st.Steps, st.CollapsedCount, st.TotalCells, st.PatternCount, status)
	text.Draw(screen, line, basicfont.Face7x13, 4, 14, col)
}
