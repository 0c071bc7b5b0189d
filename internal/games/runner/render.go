package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/hurdle/internal/core"
)

// Rendering characters
const (
	GroundChar = '▔'
	PlayerChar = '█'
	PlayerHead = '◆'
)

// hudRows is the number of screen rows above the stage.
const hudRows = 1

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(l Layout, dst *core.Screen) viewport {
	h := dst.Height() - hudRows
	if h < 1 || l.StageWidth <= 0 || l.StageHeight <= 0 {
		return viewport{}
	}
	return viewport{
		sx: float64(dst.Width()) / l.StageWidth,
		sy: float64(h) / l.StageHeight,
	}
}

// box converts a world rect to the cells it covers. Anything visible is at
// least one cell wide and tall.
func (v viewport) box(r core.Rect) core.Box {
	x0 := int(math.Floor(r.Left * v.sx))
	x1 := int(math.Ceil(r.Right * v.sx))
	y0 := int(math.Floor(r.Top*v.sy)) + hudRows
	y1 := int(math.Ceil(r.Bottom*v.sy)) + hudRows
	return core.NewBox(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func (v viewport) row(y float64) int {
	return int(math.Round(y*v.sy)) + hudRows
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.w == nil {
		return
	}

	l := g.w.layout
	v := newViewport(l, dst)
	now := g.w.sched.Now()

	// Ground stays on screen even when it sits on the stage's bottom edge.
	ground := core.Clamp(v.row(l.GroundY), hudRows, dst.Height()-1)
	dst.DrawHLine(0, ground, dst.Width(), GroundChar, core.ColorGray)

	// Obstacles
	for _, o := range g.w.live.snapshot() {
		dst.FillBox(v.box(l.ObstacleRect(*o, now)), o.Shape.Glyph, o.Shape.Color)
	}

	g.drawPlayer(dst, v)

	// HUD
	st := g.w.state
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", st.Score))
	speed := fmt.Sprintf(" Speed: %.2fs ", st.Speed.Seconds())
	dst.DrawText(dst.Width()-len(speed)-2, 0, speed)

	switch st.Phase {
	case PhaseIdle:
		g.drawCenteredMessage(dst, "HURDLE", "Press Enter to start  |  Space to jump")
	case PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", st.Score))
	}
}

// drawPlayer draws the player body with a head marker on its top row.
func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	b := v.box(g.w.layout.PlayerRect(g.w.state.Jumping))
	dst.FillBox(b, PlayerChar, core.ColorCyan)
	dst.SetColored(b.Right()-1, b.Y, PlayerHead, core.ColorWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewBox((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillBox(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle)
}
