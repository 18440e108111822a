package runner

import (
	"github.com/vovakirdan/jumpy-jack/internal/config"
	"github.com/vovakirdan/jumpy-jack/internal/core"
)

// Obstacle is a flying hazard that moves left at a constant speed.
type Obstacle struct {
	Pos   core.Vec2 // Top-left corner
	Size  core.Vec2
	Speed float64 // Per tick, negative = leftward
}

// Advance moves the obstacle by one tick.
func (o *Obstacle) Advance() {
	o.Pos.X += o.Speed
}

// OffScreen reports whether the obstacle is past the right edge of the screen.
func (o Obstacle) OffScreen(screenW float64) bool {
	return o.Pos.X > screenW
}

// OffLeft reports whether the obstacle has fully left the screen on the left.
func (o Obstacle) OffLeft() bool {
	return o.Pos.X+o.Size.X < 0
}

// Culled applies the configured cull edge.
func (o Obstacle) Culled(edge string, screenW float64) bool {
	if edge == config.CullLeft {
		return o.OffLeft()
	}
	return o.OffScreen(screenW)
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.RectAt(o.Pos, o.Size)
}
