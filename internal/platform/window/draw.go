package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/jumpy-jack/internal/core"
	"github.com/vovakirdan/jumpy-jack/internal/runner"
)

var (
	skyColor        = color.NRGBA{135, 200, 235, 255}
	cloudColor      = color.NRGBA{245, 248, 252, 255}
	groundBaseColor = color.NRGBA{110, 72, 40, 255}
	groundColor     = color.NRGBA{90, 160, 70, 255}
	groundMarkColor = color.NRGBA{60, 120, 50, 255}
	playerColor     = color.NRGBA{240, 190, 60, 255}
	legColor        = color.NRGBA{60, 60, 90, 255}
	obstacleColor   = color.NRGBA{200, 60, 50, 255}
	panelColor      = color.NRGBA{20, 20, 30, 200}
	hudColor        = color.White
)

// basicfont.Face7x13 glyph metrics
const (
	glyphW = 7
	glyphH = 13
)

// Cloud puffs relative to a background tile, as fractions of its size.
var clouds = []core.Rect{
	{X: 0.08, Y: 0.12, W: 0.14, H: 0.06},
	{X: 0.42, Y: 0.22, W: 0.10, H: 0.05},
	{X: 0.70, Y: 0.08, W: 0.16, H: 0.07},
}

const groundMarkSpacing = 64

func fillRect(dst *ebiten.Image, r core.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// Draw presents the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	sn := g.snapshot

	for _, d := range sn.Drawables {
		switch d.Kind {
		case runner.KindBackground:
			drawBackground(screen, d.Rect)
		case runner.KindGroundBase:
			fillRect(screen, d.Rect, groundBaseColor)
		case runner.KindGround:
			drawGround(screen, d.Rect)
		case runner.KindPlayer:
			drawPlayer(screen, d)
		case runner.KindObstacle:
			fillRect(screen, d.Rect, obstacleColor)
		}
	}

	if sn.Ended {
		fillRect(screen, core.NewRect(0, 0, sn.World.X, sn.World.Y), panelColor)
	}

	for _, t := range sn.Texts {
		drawText(screen, t)
	}
}

func drawBackground(dst *ebiten.Image, tile core.Rect) {
	for _, c := range clouds {
		fillRect(dst, core.NewRect(tile.X+c.X*tile.W, tile.Y+c.Y*tile.H, c.W*tile.W, c.H*tile.H), cloudColor)
	}
}

func drawGround(dst *ebiten.Image, tile core.Rect) {
	fillRect(dst, core.NewRect(tile.X, tile.Y, tile.W, 12), groundColor)
	for x := 0.0; x < tile.W; x += groundMarkSpacing {
		fillRect(dst, core.NewRect(tile.X+x, tile.Y, 4, 12), groundMarkColor)
	}
}

func drawPlayer(dst *ebiten.Image, d runner.Drawable) {
	r := d.Rect
	legH := r.H / 6
	fillRect(dst, core.NewRect(r.X, r.Y, r.W, r.H-legH), playerColor)

	// Legs swap stride every other run frame
	stride := r.W / 4
	if d.Frame%2 == 1 {
		stride = r.W / 8
	}
	legW := r.W / 5
	fillRect(dst, core.NewRect(r.X+r.W/2-stride-legW/2, r.Bottom()-legH, legW, legH), legColor)
	fillRect(dst, core.NewRect(r.X+r.W/2+stride-legW/2, r.Bottom()-legH, legW, legH), legColor)
}

func drawText(dst *ebiten.Image, t runner.Text) {
	x := int(t.Pos.X)
	if t.Centered {
		x -= len(t.Content) * glyphW / 2
	}
	// text.Draw positions by baseline
	text.Draw(dst, t.Content, basicfont.Face7x13, x, int(t.Pos.Y)+glyphH, hudColor)
}
