package runner

import (
	"math/rand"

	"github.com/vovakirdan/jumpy-jack/internal/config"
	"github.com/vovakirdan/jumpy-jack/internal/core"
)

// Spawner emits obstacles on a fixed timer.
type Spawner struct {
	timer    float64
	interval float64
	sizes    []core.Vec2
	speed    float64
	minY     float64
	worldW   float64
	floorY   float64 // Top edge of the ground strip
	rng      *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
// The rng is shared with the session and never reseeded.
func NewSpawner(cfg config.RunnerConfig, rng *rand.Rand) *Spawner {
	sizes := make([]core.Vec2, len(cfg.Obstacles.Sizes))
	for i, s := range cfg.Obstacles.Sizes {
		sizes[i] = core.Vec2{X: s.Width, Y: s.Height}
	}
	return &Spawner{
		interval: cfg.Obstacles.SpawnInterval,
		sizes:    sizes,
		speed:    cfg.Obstacles.Speed,
		minY:     cfg.Obstacles.MinY,
		worldW:   cfg.World.Width,
		floorY:   cfg.World.Height - cfg.Layers.Ground.Height,
		rng:      rng,
	}
}

// Tick advances the spawn timer by dt and returns a new obstacle when it fires.
// At most one obstacle is produced per call.
func (sp *Spawner) Tick(dt float64) (Obstacle, bool) {
	sp.timer += dt
	if !elapsed(sp.timer, sp.interval) {
		return Obstacle{}, false
	}
	sp.timer = 0

	size := sp.sizes[sp.rng.Intn(len(sp.sizes))]

	// Fully off the right edge, somewhere between min_y and the ground
	x := sp.worldW + size.X
	maxY := sp.floorY - size.Y
	y := sp.minY + sp.rng.Float64()*(maxY-sp.minY)

	return Obstacle{
		Pos:   core.Vec2{X: x, Y: y},
		Size:  size,
		Speed: sp.speed,
	}, true
}

// Timer returns the seconds accumulated towards the next spawn.
func (sp *Spawner) Timer() float64 {
	return sp.timer
}
