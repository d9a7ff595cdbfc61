package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/tkhalil/sealquest/internal/entity"
	"github.com/tkhalil/sealquest/internal/quest"
	"github.com/tkhalil/sealquest/internal/questdata"
	"github.com/tkhalil/sealquest/internal/world"
)

const progressBarWidth = 20

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	catalog *questdata.Registry
}

// NewRenderer creates a new renderer for the given screen and catalog.
func NewRenderer(screen *Screen, catalog *questdata.Registry) *Renderer {
	return &Renderer{screen: screen, catalog: catalog}
}

// Render draws the desert, hero, and quest status to the screen.
func (r *Renderer) Render(desert *world.Desert, hero *entity.Hero, state *quest.GameState, message string, complete bool) {
	r.screen.Clear()

	recovered := make(map[quest.Region]bool)
	for _, f := range state.Fragments() {
		if f.Recovered() {
			recovered[f.Region()] = true
		}
	}

	// Draw terrain
	for y := 0; y < desert.Height; y++ {
		for x := 0; x < desert.Width; x++ {
			tile := desert.GetTile(x, y)
			if tile == world.TileShrine {
				r.drawShrine(desert, x, y, recovered)
				continue
			}
			r.screen.SetContent(x, y, tile.Rune(), r.getTileStyle(tile))
		}
	}

	// Draw hero on top
	heroStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(hero.X, hero.Y, hero.Symbol, heroStyle)

	r.drawStatus(desert, state, message, complete)

	r.screen.Show()
}

// drawShrine renders a shrine tile using its catalog glyph and color.
// Recovered shrines dim to show there is nothing left to collect.
func (r *Renderer) drawShrine(desert *world.Desert, x, y int, recovered map[quest.Region]bool) {
	glyph := world.TileShrine.Rune()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

	if region, ok := desert.ShrineAt(x, y); ok {
		if def := r.catalog.GetByRegion(region); def != nil {
			glyph = def.GlyphRune()
			style = tcell.StyleDefault.Foreground(def.TCellColor()).Bold(true)
		}
		if recovered[region] {
			style = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
		}
	}

	r.screen.SetContent(x, y, glyph, style)
}

// drawStatus renders the status line, progress bar, and message below the map.
func (r *Renderer) drawStatus(desert *world.Desert, state *quest.GameState, message string, complete bool) {
	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	hero := state.Hero()
	status := fmt.Sprintf("%s the %s | Seal fragments: %d/%d (%.0f%%)",
		hero.Name(), hero.Role(), state.Recovered(), state.Total(), state.Progress()*100)
	r.screen.DrawText(0, desert.Height, status, textStyle)

	r.drawProgressBar(0, desert.Height+1, state.Progress())

	if complete {
		banner := "The seal is whole again. Press q to leave the sands."
		r.screen.DrawText(0, desert.Height+2, banner, tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
		return
	}
	if message != "" {
		r.screen.DrawText(0, desert.Height+2, message, textStyle)
	}
}

// drawProgressBar renders the recovery fraction as a fixed-width bar.
func (r *Renderer) drawProgressBar(x, y int, progress float64) {
	filled := int(progress*progressBarWidth + 0.5)

	barStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	emptyStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)

	r.screen.SetContent(x, y, '[', tcell.StyleDefault)
	for i := 0; i < progressBarWidth; i++ {
		if i < filled {
			r.screen.SetContent(x+1+i, y, '=', barStyle)
		} else {
			r.screen.SetContent(x+1+i, y, '-', emptyStyle)
		}
	}
	r.screen.SetContent(x+1+progressBarWidth, y, ']', tcell.StyleDefault)
}

// getTileStyle returns the appropriate style for a terrain tile.
func (r *Renderer) getTileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileSand:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TileDune:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGoldenrod)
	case world.TileMountain:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileWater:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case world.TilePalm:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	default:
		return tcell.StyleDefault
	}
}
