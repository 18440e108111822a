// Package config provides YAML-based game configuration loading for the runner.
// Presentation settings (window title, frame cap) live next to simulation
// constants so a single file describes a complete setup.
package config

// RunnerConfig contains all configuration for the runner game.
type RunnerConfig struct {
	Seed      int64           `yaml:"seed"` // 0 = time-based
	World     WorldConfig     `yaml:"world"`
	Physics   RunnerPhysics   `yaml:"physics"`
	Player    RunnerPlayer    `yaml:"player"`
	Obstacles RunnerObstacles `yaml:"obstacles"`
	Layers    RunnerLayers    `yaml:"layers"`
	Scoring   RunnerScoring   `yaml:"scoring"`
	Window    WindowConfig    `yaml:"window"`
}

// WorldConfig defines the logical play field in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerPhysics defines per-tick physics constants.
// Velocities are added to positions once per tick, without scaling by dt.
type RunnerPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"`
}

// RunnerPlayer defines the player hitbox and spawn point.
type RunnerPlayer struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	XDivisor float64 `yaml:"x_divisor"` // Spawn x = world width / x_divisor
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Cull edges decide when an obstacle leaves the live set.
const (
	CullRight = "right" // x > world width
	CullLeft  = "left"  // x + width < 0
)

// RunnerObstacles defines obstacle spawning and motion.
type RunnerObstacles struct {
	Speed         float64 `yaml:"speed"`          // Per tick, negative = leftward
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds
	MinY          float64 `yaml:"min_y"`
	CullEdge      string  `yaml:"cull_edge"`
	Sizes         []Size  `yaml:"sizes"`
}

// RunnerLayers defines the two scrolling layers.
type RunnerLayers struct {
	Background BackgroundLayer `yaml:"background"`
	Ground     GroundLayer     `yaml:"ground"`
}

// BackgroundLayer is sized from the background texture metadata.
type BackgroundLayer struct {
	Speed         float64 `yaml:"speed"`
	TextureWidth  float64 `yaml:"texture_width"`
	TextureHeight float64 `yaml:"texture_height"`
	Scale         float64 `yaml:"scale"`
}

// GroundLayer tiles are one world width wide.
type GroundLayer struct {
	Speed  float64 `yaml:"speed"`
	Height float64 `yaml:"height"`
}

// RunnerScoring defines the score accumulator.
type RunnerScoring struct {
	Interval float64 `yaml:"interval"` // Seconds of running time per point
}

// WindowConfig holds presentation-only settings.
type WindowConfig struct {
	Title string `yaml:"title"`
	FPS   int    `yaml:"fps"`
}

// GroundY returns the player's resting y (top edge) for this config.
func (c RunnerConfig) GroundY() float64 {
	return c.World.Height - c.Layers.Ground.Height - c.Player.Height
}

// SpawnMaxY returns the lowest top edge an obstacle of the given height may spawn at.
func (c RunnerConfig) SpawnMaxY(height float64) float64 {
	return c.World.Height - c.Layers.Ground.Height - height
}
