package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Seed: 0,
		World: WorldConfig{
			Width:  960,
			Height: 540,
		},
		Physics: RunnerPhysics{
			Gravity:      1.0,
			JumpVelocity: -22,
		},
		Player: RunnerPlayer{
			Width:    50,
			Height:   90,
			XDivisor: 3.7,
		},
		Obstacles: RunnerObstacles{
			Speed:         -10,
			SpawnInterval: 0.5,
			MinY:          150,
			CullEdge:      CullRight,
			Sizes: []Size{
				{Width: 40, Height: 20},
				{Width: 50, Height: 40},
				{Width: 30, Height: 50},
				{Width: 10, Height: 50},
				{Width: 20, Height: 60},
				{Width: 60, Height: 70},
				{Width: 30, Height: 80},
			},
		},
		Layers: RunnerLayers{
			Background: BackgroundLayer{
				Speed:         4,
				TextureWidth:  480,
				TextureHeight: 270,
				Scale:         2,
			},
			Ground: GroundLayer{
				Speed:  8,
				Height: 80,
			},
		},
		Scoring: RunnerScoring{
			Interval: 1.0,
		},
		Window: WindowConfig{
			Title: "Jumpy Jack",
			FPS:   60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
