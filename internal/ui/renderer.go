package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/terraplot/internal/tiles"
	"github.com/samdwyer/terraplot/internal/wave"
)

// Renderer draws finished plots to the screen.
type Renderer struct {
	screen   *Screen
	registry *tiles.Registry
}

// NewRenderer creates a renderer using the given screen and tileset.
func NewRenderer(screen *Screen, registry *tiles.Registry) *Renderer {
	return &Renderer{screen: screen, registry: registry}
}

// Render draws the plot with a status line underneath. Each tile
// occupies two terminal columns; colors come from the tileset registry.
func (r *Renderer) Render(plot *wave.Plot, status string) {
	r.screen.Clear()

	for y := 0; y < plot.Size(); y++ {
		for x := 0; x < plot.Size(); x++ {
			kind := plot.At(x, y)
			style := tcell.StyleDefault.Foreground(r.registry.Color(kind))
			for i, ch := range []rune(kind.Glyph()) {
				r.screen.SetContent(x*2+i, y, ch, style)
			}
		}
	}

	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawText(0, plot.Size()+1, status, statusStyle)

	r.screen.Show()
}
