package runner

import "github.com/vovakirdan/jumpy-jack/internal/core"

// ScrollingLayer fakes an endless strip with two tiles of equal width.
// When a tile has fully scrolled past the left edge it is moved to sit
// right after its sibling.
type ScrollingLayer struct {
	A, B  core.Vec2 // Top-left corners of the two tiles
	TileW float64
	TileH float64
	Speed float64 // Per tick, positive = leftward scroll
}

// NewScrollingLayer lays out two adjacent tiles starting at x = 0.
func NewScrollingLayer(y, tileW, tileH, speed float64) ScrollingLayer {
	return ScrollingLayer{
		A:     core.Vec2{X: 0, Y: y},
		B:     core.Vec2{X: tileW, Y: y},
		TileW: tileW,
		TileH: tileH,
		Speed: speed,
	}
}

// Advance scrolls both tiles by one tick and wraps any tile that left the screen.
//
// B is checked against A's already wrapped position. At speeds close to the
// tile width both tiles can leave in the same tick and end up overlapping;
// default speeds are far from that.
func (l *ScrollingLayer) Advance() {
	l.A.X -= l.Speed
	l.B.X -= l.Speed

	if l.A.X+l.TileW < 0 {
		l.A.X = l.B.X + l.TileW
	}
	if l.B.X+l.TileW < 0 {
		l.B.X = l.A.X + l.TileW
	}
}

// Tiles returns the rectangles of both tiles, A first.
func (l ScrollingLayer) Tiles() [2]core.Rect {
	size := core.Vec2{X: l.TileW, Y: l.TileH}
	return [2]core.Rect{core.RectAt(l.A, size), core.RectAt(l.B, size)}
}
