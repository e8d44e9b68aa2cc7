package sim

import (
	"fmt"
	"math"

	"github.com/fcarvajalbrown/Cacaroids/internal/core"
)

// Terminal cells are roughly twice as tall as wide; horizontal offsets
// are stretched and ring heights squashed so shapes read as round.
const aspectRatio = 2.0

// Glyphs per hazard tier.
var tierGlyphs = map[Tier]rune{
	TierLarge:  '#',
	TierMedium: 'o',
	TierSmall:  '*',
}

var tierColors = map[Tier]core.Color{
	TierLarge:  core.ColorYellow,
	TierMedium: core.ColorOrange,
	TierSmall:  core.ColorBrightYellow,
}

// Render draws the current state into the screen buffer. It reads a
// snapshot and never mutates simulation state, so the platform may call
// it at any point between ticks.
func (s *Simulation) Render(dst *core.Screen) {
	dst.Clear()

	snap := s.Snapshot()

	for _, h := range snap.Hazards {
		drawHazard(dst, h)
	}

	for _, p := range snap.Projectiles {
		dst.SetColored(int(p.Pos.X), int(p.Pos.Y), '•', core.ColorBrightWhite)
	}

	drawShip(dst, snap.Ship)
	drawHUD(dst, snap)

	switch {
	case snap.Phase == PhaseGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	case snap.Phase == PhaseVictory:
		drawCenteredBox(dst, "FIELD CLEARED!", fmt.Sprintf("Score: %d  |  Press R to play again", snap.Score))
	case snap.Paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawHUD draws the score line along the top row.
func drawHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Score: %d   Hazards: %d", snap.Score, len(snap.Hazards))
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

// drawShip draws the ship as a center marker with a nose dot showing the
// heading, or a wreck marker when dead.
func drawShip(dst *core.Screen, ship ShipView) {
	x := int(ship.Pos.X)
	y := int(ship.Pos.Y)

	if !ship.Alive {
		dst.SetColored(x, y, 'X', core.ColorBrightRed)
		return
	}

	dst.SetColored(x, y, '@', core.ColorBrightCyan)

	nose := core.FromAngle(ship.Heading).Scale(2)
	dst.SetColored(x+int(math.Round(nose.X*aspectRatio)), y+int(math.Round(nose.Y)), '+', core.ColorCyan)
}

// drawHazard draws a hazard as a ring of tier glyphs around its center.
// Ring points rotate with the hazard's spin.
func drawHazard(dst *core.Screen, h HazardView) {
	glyph := tierGlyphs[h.Tier]
	color := tierColors[h.Tier]

	steps := core.Max(6, int(h.Radius*4))
	for i := 0; i < steps; i++ {
		a := h.Rotation + float64(i)*2*math.Pi/float64(steps)
		px := h.Pos.X + math.Cos(a)*h.Radius*aspectRatio
		py := h.Pos.Y + math.Sin(a)*h.Radius*0.5
		dst.SetColored(int(math.Round(px)), int(math.Round(py)), glyph, color)
	}

	dst.SetColored(int(h.Pos.X), int(h.Pos.Y), glyph, color)
}

// drawCenteredBox draws a bordered message box in the middle of the screen.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawHLine(boxX+1, boxY, boxW-2, '-')
	dst.DrawHLine(boxX+1, boxY+boxH-1, boxW-2, '-')
	for y := boxY + 1; y < boxY+boxH-1; y++ {
		dst.Set(boxX, y, '|')
		dst.DrawHLine(boxX+1, y, boxW-2, ' ')
		dst.Set(boxX+boxW-1, y, '|')
	}
	for _, corner := range [][2]int{
		{boxX, boxY},
		{boxX + boxW - 1, boxY},
		{boxX, boxY + boxH - 1},
		{boxX + boxW - 1, boxY + boxH - 1},
	} {
		dst.Set(corner[0], corner[1], '+')
	}

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawTextColored(subtitleX, boxY+3, subtitle, core.ColorGray)
}
