package runner

import (
	"math"

	"github.com/vovakirdan/jumpy-jack/internal/core"
)

// Glyphs for terminal rendering
const (
	PlayerChar     = '█'
	PlayerLeg1     = '╱'
	PlayerLeg2     = '╲'
	ObstacleChar   = '▓'
	GroundBaseChar = '▒'
	GroundChar     = '═'
	GroundMark     = '╤'
	CloudText      = "~~~~"
)

// groundMarkSpacing is the world distance between ground ticks. Ticks are
// anchored to the tile, so they slide with the ground.
const groundMarkSpacing = 64

// Clouds are placed at fixed fractions of a background tile.
var cloudAnchors = []core.Vec2{
	{X: 0.08, Y: 0.12},
	{X: 0.35, Y: 0.22},
	{X: 0.62, Y: 0.08},
	{X: 0.86, Y: 0.30},
}

// cellMapper converts world coordinates to screen cells.
type cellMapper struct {
	sx, sy float64
}

func newCellMapper(dst *core.Screen, world core.Vec2) cellMapper {
	return cellMapper{
		sx: float64(dst.Width()) / world.X,
		sy: float64(dst.Height()) / world.Y,
	}
}

func (m cellMapper) point(p core.Vec2) (int, int) {
	return int(math.Floor(p.X * m.sx)), int(math.Floor(p.Y * m.sy))
}

// rect maps a world rectangle to the cells it touches, at least one cell wide and tall.
func (m cellMapper) rect(r core.Rect) core.CellRect {
	x0 := int(math.Floor(r.X * m.sx))
	y0 := int(math.Floor(r.Y * m.sy))
	x1 := int(math.Ceil(r.Right() * m.sx))
	y1 := int(math.Ceil(r.Bottom() * m.sy))
	return core.CellRect{X: x0, Y: y0, W: core.Max(x1-x0, 1), H: core.Max(y1-y0, 1)}
}

// Render draws a snapshot onto a terminal screen buffer, scaling the world to fit.
func Render(dst *core.Screen, sn Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || sn.World.X <= 0 || sn.World.Y <= 0 {
		return
	}
	m := newCellMapper(dst, sn.World)

	for _, d := range sn.Drawables {
		switch d.Kind {
		case KindBackground:
			drawBackgroundTile(dst, m, d.Rect)
		case KindGroundBase:
			dst.DrawRect(m.rect(d.Rect), GroundBaseChar, core.ColorBrown)
		case KindGround:
			drawGroundTile(dst, m, d.Rect)
		case KindPlayer:
			drawPlayer(dst, m, d)
		case KindObstacle:
			dst.DrawRect(m.rect(d.Rect), ObstacleChar, core.ColorBrightRed)
		}
	}

	var banner, prompt string
	for _, t := range sn.Texts {
		switch t.Kind {
		case TextScore:
			text := " " + t.Content + " "
			x, y := m.point(t.Pos)
			// Keep the score on screen on very narrow terminals
			x = core.Clamp(x, 0, core.Max(dst.Width()-len(text), 0))
			dst.DrawText(x, y, text, core.ColorWhite)
		case TextBanner:
			banner = t.Content
		case TextPrompt:
			prompt = t.Content
		}
	}

	if sn.Ended {
		drawCenteredMessage(dst, banner, prompt)
	}
}

func drawBackgroundTile(dst *core.Screen, m cellMapper, tile core.Rect) {
	for _, a := range cloudAnchors {
		x, y := m.point(core.Vec2{X: tile.X + a.X*tile.W, Y: tile.Y + a.Y*tile.H})
		dst.DrawText(x, y, CloudText, core.ColorGray)
	}
}

func drawGroundTile(dst *core.Screen, m cellMapper, tile core.Rect) {
	cells := m.rect(tile)
	for cx := cells.X; cx < cells.Right(); cx++ {
		if cx < 0 || cx >= dst.Width() {
			continue
		}
		// Sample the world x at the cell center to find the tick under it
		worldX := (float64(cx) + 0.5) / m.sx
		local := worldX - tile.X
		if local < 0 || local >= tile.W {
			continue
		}
		r := GroundChar
		if int(local)%groundMarkSpacing < int(math.Ceil(1/m.sx)) {
			r = GroundMark
		}
		dst.SetColored(cx, cells.Y, r, core.ColorYellow)
	}
}

func drawPlayer(dst *core.Screen, m cellMapper, d Drawable) {
	cells := m.rect(d.Rect)
	dst.DrawRect(cells, PlayerChar, core.ColorGreen)
	if cells.H < 2 || cells.W < 2 {
		return
	}
	// Legs on the bottom row alternate with the run cycle
	legY := cells.Bottom() - 1
	dst.DrawHLine(cells.X, legY, cells.W, ' ', core.ColorDefault)
	if d.Frame%2 == 0 {
		dst.SetColored(cells.X, legY, PlayerLeg1, core.ColorGreen)
		dst.SetColored(cells.Right()-1, legY, PlayerLeg2, core.ColorGreen)
	} else {
		dst.SetColored(cells.X+cells.W/2-1, legY, PlayerLeg1, core.ColorGreen)
		dst.SetColored(cells.X+cells.W/2, legY, PlayerLeg2, core.ColorGreen)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.CellRect{X: boxX, Y: boxY, W: boxW, H: boxH}
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title, core.ColorBrightRed)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle, core.ColorWhite)
}
