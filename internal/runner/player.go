package runner

import "github.com/vovakirdan/jumpy-jack/internal/core"

// Player is the runner's hitbox with vertical physics.
type Player struct {
	Pos     core.Vec2 // Top-left corner
	Size    core.Vec2
	VelY    float64
	Jumping bool
}

// Grounded reports whether the player is standing on the ground.
func (p Player) Grounded() bool {
	return !p.Jumping
}

// Jump launches the player with the given upward (negative) velocity.
// Ignored while airborne. Returns whether the jump happened.
func (p *Player) Jump(velocity float64) bool {
	if p.Jumping {
		return false
	}
	p.VelY = velocity
	p.Jumping = true
	return true
}

// PhysicsTick applies gravity and moves the player by one tick.
// Gravity is applied even when grounded; ClampToGround cancels it.
func (p *Player) PhysicsTick(gravity float64) {
	p.VelY += gravity
	p.Pos.Y += p.VelY
}

// ClampToGround snaps the player onto the ground once it reaches groundY.
func (p *Player) ClampToGround(groundY float64) {
	if p.Pos.Y >= groundY {
		p.Pos.Y = groundY
		p.VelY = 0
		p.Jumping = false
	}
}

// Reset puts the player back on the spawn point, grounded and at rest.
func (p *Player) Reset(spawn core.Vec2) {
	p.Pos = spawn
	p.VelY = 0
	p.Jumping = false
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.RectAt(p.Pos, p.Size)
}
