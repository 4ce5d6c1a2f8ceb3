package game

import (
	"fmt"

	"github.com/mysticalg/ManicWilly/internal/core"
)

// Visual characters for world elements.
const (
	platformChar = '▀'
	wallChar     = '█'
	stairChar    = '≡'
	itemChar     = '◆'
	enemyChar    = 'Ω'
	playerChar   = '@'
	floorChar    = '═'
)

// Render draws the current frame into the screen buffer, projecting the
// fixed world onto however many cells the terminal offers.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.Snapshot()
	switch snap.Phase {
	case PhaseSplash:
		g.renderSplash(dst, snap)
	case PhaseWin:
		g.renderWin(dst, snap)
	default:
		g.renderRoom(dst, snap)
	}
}

func (g *Game) renderSplash(dst *core.Screen, snap Snapshot) {
	h := dst.Height()
	dst.DrawTextCenteredColored(h/4, "M A N I C W I L L Y", core.ColorBrightWhite)
	dst.DrawTextCenteredColored(h/4+2, "Jet-set inspired platformer", core.ColorBrightBlue)
	dst.DrawTextCenteredColored(h/4+4, "Press ENTER to start", core.ColorBrightYellow)
	dst.DrawTextCentered(h/4+6, fmt.Sprintf("Collect all %d items. Target clear time: ~%d minutes",
		snap.Total, snap.TargetClearMinutes))
}

func (g *Game) renderWin(dst *core.Screen, snap Snapshot) {
	h := dst.Height()
	dst.DrawTextCenteredColored(h/2-2, "All items collected!", core.ColorBrightYellow)
	dst.DrawTextCenteredColored(h/2, fmt.Sprintf("Clear time: %.1fs", snap.Elapsed), core.ColorBrightWhite)
	dst.DrawTextCenteredColored(h/2+2, "Press ENTER to exit", core.ColorBrightBlue)
}

func (g *Game) renderRoom(dst *core.Screen, snap Snapshot) {
	p := newProjector(g.cfg.World.Width, g.cfg.World.Height, dst.Width(), dst.Height())

	// Floor line
	floorY := p.celY(g.cfg.World.Height - g.cfg.World.FloorMargin)
	dst.DrawHLine(0, floorY, dst.Width(), floorChar, core.ColorGray)

	for _, plat := range snap.Platforms {
		p.fillRect(dst, plat, platformChar, core.ColorCyan)
	}
	for _, wall := range snap.Walls {
		p.fillRect(dst, wall, wallChar, core.ColorBlue)
	}
	for _, stair := range snap.Stairs {
		p.fillRect(dst, stair.Rect, stairChar, core.ColorOrange)
	}
	for _, item := range snap.Items {
		dst.SetCell(p.celX(item.X), p.celY(item.Y), itemChar, core.ColorBrightYellow)
	}
	for _, enemy := range snap.Enemies {
		p.fillRect(dst, enemy, enemyChar, core.ColorGreen)
	}

	playerColor := core.ColorBrightWhite
	if snap.Pose == PoseClimbing {
		playerColor = core.ColorBrightCyan
	}
	p.fillRect(dst, snap.Player, playerChar, playerColor)

	// HUD
	dst.DrawTextColored(1, 0, snap.RoomName, core.ColorBrightWhite)
	hud := fmt.Sprintf("Items: %d/%d   Time: %.1fs   Target: ~%dm",
		snap.Collected, snap.Total, snap.Elapsed, snap.TargetClearMinutes)
	dst.DrawText(1, 1, hud)

	if snap.Paused {
		dst.DrawTextCenteredColored(dst.Height()/2, " PAUSED - press P to resume ", core.ColorBrightYellow)
	}
}

// projector maps world pixels onto terminal cells.
type projector struct {
	scaleX, scaleY float64
}

func newProjector(worldW, worldH float64, screenW, screenH int) projector {
	return projector{
		scaleX: float64(screenW) / worldW,
		scaleY: float64(screenH) / worldH,
	}
}

func (p projector) celX(x float64) int {
	return int(x * p.scaleX)
}

func (p projector) celY(y float64) int {
	return int(y * p.scaleY)
}

// fillRect draws a world rect as at least one cell so thin geometry stays
// visible on small terminals.
func (p projector) fillRect(dst *core.Screen, r core.Rect, fill rune, c core.Color) {
	x := p.celX(r.X)
	y := p.celY(r.Y)
	w := core.Max(1, p.celX(r.Right())-x)
	h := core.Max(1, p.celY(r.Bottom())-y)
	dst.FillRect(x, y, w, h, fill, c)
}
