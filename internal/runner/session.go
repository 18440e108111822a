// Package runner implements the Jumpy Jack endless runner simulation.
// The player jumps over obstacles flying in from the right while the
// background and ground scroll past. The package holds pure logic; the
// platform layer delivers input events and presents snapshots.
package runner

import (
	"math/rand"

	"github.com/vovakirdan/jumpy-jack/internal/config"
	"github.com/vovakirdan/jumpy-jack/internal/core"
)

// TickSeconds is the fixed simulation step. Physics constants are tuned for
// it, so delivering frames at a different rate changes game speed.
const TickSeconds = 1.0 / 60.0

// timerEpsilon absorbs float drift when summing TickSeconds, so that 30
// ticks count as 0.5 s and 6 ticks as 0.1 s.
const timerEpsilon = 1e-9

// elapsed reports whether an accumulated timer has reached its interval.
func elapsed(timer, interval float64) bool {
	return timer+timerEpsilon >= interval
}

// Player run animation
const (
	runFrames        = 8
	runFrameInterval = 0.1 // Seconds per frame
)

// State is the session's game state.
type State int

const (
	StateRunning State = iota
	StateEnded
)

// String returns a human-readable name for the state.
func (s State) String() string {
	if s == StateEnded {
		return "ended"
	}
	return "running"
}

// Session is the root aggregate of one play-through. It is created once and
// reset in place on restart.
type Session struct {
	cfg        config.RunnerConfig
	seed       int64
	state      State
	score      int
	scoreTimer float64
	spawner    *Spawner
	obstacles  []Obstacle
	player     Player
	spawn      core.Vec2 // Player spawn point
	groundY    float64   // Player resting y
	background ScrollingLayer
	ground     ScrollingLayer
	animTimer  float64
	animFrame  int
	frame      uint64 // Frames stepped since construction, including ENDED ones

	// OnEnd is called once when a run ends, with the final score.
	OnEnd func(score int)
	// OnRestart is called after the session has been reset by a restart.
	OnRestart func()
}

// New creates a session from a validated config. The seed feeds the obstacle
// RNG once; restarts keep drawing from the same stream.
func New(cfg config.RunnerConfig, seed int64) *Session {
	rng := rand.New(rand.NewSource(seed))

	bg := cfg.Layers.Background
	groundH := cfg.Layers.Ground.Height

	s := &Session{
		cfg:     cfg,
		seed:    seed,
		state:   StateRunning,
		spawner: NewSpawner(cfg, rng),
		spawn: core.Vec2{
			X: cfg.World.Width / cfg.Player.XDivisor,
			Y: cfg.GroundY(),
		},
		groundY: cfg.GroundY(),
		background: NewScrollingLayer(0,
			bg.TextureWidth*bg.Scale, bg.TextureHeight*bg.Scale, bg.Speed),
		ground: NewScrollingLayer(cfg.World.Height-groundH,
			cfg.World.Width, groundH, cfg.Layers.Ground.Speed),
		obstacles: make([]Obstacle, 0, 16),
	}
	s.player = Player{Size: core.Vec2{X: cfg.Player.Width, Y: cfg.Player.Height}}
	s.player.Reset(s.spawn)
	return s
}

// Dispatch applies one input event. Jump only acts while running and restart
// only while ended; everything else is ignored. Returns false for a close
// request, which tells the caller to stop the loop.
func (s *Session) Dispatch(ev core.Event) bool {
	switch ev.Type {
	case core.EventClosed:
		return false
	case core.EventKeyPressed:
		switch ev.Key {
		case core.KeyJump:
			if s.state == StateRunning {
				s.player.Jump(s.cfg.Physics.JumpVelocity)
			}
		case core.KeyRestart:
			if s.state == StateEnded {
				s.restart()
			}
		}
	}
	return true
}

// Step advances the simulation by one tick. Nothing moves while ended.
func (s *Session) Step() {
	s.frame++
	if s.state != StateRunning {
		return
	}

	s.animate()

	s.background.Advance()
	s.ground.Advance()

	s.player.PhysicsTick(s.cfg.Physics.Gravity)
	s.player.ClampToGround(s.groundY)

	if o, ok := s.spawner.Tick(TickSeconds); ok {
		s.obstacles = append(s.obstacles, o)
	}
	s.advanceObstacles()

	s.collide()
	// The tick that ends the run still scores
	s.accumulateScore(TickSeconds)

	if s.state == StateEnded && s.OnEnd != nil {
		s.OnEnd(s.score)
	}
}

// Frame runs one full frame: dispatch every event, step once and snapshot.
// The returned bool is false when a close event was seen; the frame still
// completes so the caller can present the last snapshot.
func (s *Session) Frame(events []core.Event) (Snapshot, bool) {
	open := true
	for _, ev := range events {
		if !s.Dispatch(ev) {
			open = false
		}
	}
	s.Step()
	return s.Snapshot(), open
}

// restart resets score, obstacles and player. Scroll layers, the spawn and
// score timers and the RNG carry over.
func (s *Session) restart() {
	s.state = StateRunning
	s.score = 0
	s.obstacles = s.obstacles[:0]
	s.player.Reset(s.spawn)
	if s.OnRestart != nil {
		s.OnRestart()
	}
}

// animate advances the player's run cycle.
func (s *Session) animate() {
	s.animTimer += TickSeconds
	if elapsed(s.animTimer, runFrameInterval) {
		s.animTimer = 0
		s.animFrame = (s.animFrame + 1) % runFrames
	}
}

// advanceObstacles moves every obstacle and drops the culled ones in place.
func (s *Session) advanceObstacles() {
	live := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.Advance()
		if !o.Culled(s.cfg.Obstacles.CullEdge, s.cfg.World.Width) {
			live = append(live, o)
		}
	}
	s.obstacles = live
}

// collide ends the run if the player touches any obstacle.
func (s *Session) collide() {
	hitbox := s.player.Rect()
	for _, o := range s.obstacles {
		if hitbox.Intersects(o.Rect()) {
			s.state = StateEnded
			return
		}
	}
}

// accumulateScore adds dt of running time and awards a point per interval.
func (s *Session) accumulateScore(dt float64) {
	s.scoreTimer += dt
	if elapsed(s.scoreTimer, s.cfg.Scoring.Interval) {
		s.scoreTimer = 0
		s.score++
	}
}

// State returns the current game state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Seed returns the seed the session was created with.
func (s *Session) Seed() int64 {
	return s.seed
}

// Frames returns the number of frames stepped so far.
func (s *Session) Frames() uint64 {
	return s.frame
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.player
}

// Obstacles returns a copy of the live obstacles in spawn order.
func (s *Session) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// Config returns the config the session runs with.
func (s *Session) Config() config.RunnerConfig {
	return s.cfg
}
