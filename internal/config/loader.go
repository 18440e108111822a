package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Load reads the runner configuration, applies environment overrides and
// validates the result. Any error here is fatal for the caller: the game
// must not start with broken layout metadata.
func Load(customPath string) (RunnerConfig, error) {
	cfg, err := LoadRunner(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.jumpy/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
// Files are decoded over the defaults, so they only need the keys they change.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/runner.yaml"); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode unmarshals YAML on top of the hardcoded defaults.
func decode(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultRunnerConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jumpy", "configs", filename)
}

// envOverrides lists the settings that may come from the environment.
// Unset variables leave the loaded value untouched.
type envOverrides struct {
	Seed         int64   `env:"JUMPY_SEED"`
	FPS          int     `env:"JUMPY_FPS"`
	CullEdge     string  `env:"JUMPY_CULL_EDGE"`
	ScreenWidth  float64 `env:"JUMPY_SCREEN_WIDTH"`
	ScreenHeight float64 `env:"JUMPY_SCREEN_HEIGHT"`
}

// ApplyEnv overrides config values from JUMPY_* environment variables.
func ApplyEnv(cfg *RunnerConfig) error {
	o := envOverrides{
		Seed:         cfg.Seed,
		FPS:          cfg.Window.FPS,
		CullEdge:     cfg.Obstacles.CullEdge,
		ScreenWidth:  cfg.World.Width,
		ScreenHeight: cfg.World.Height,
	}
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	cfg.Seed = o.Seed
	cfg.Window.FPS = o.FPS
	cfg.Obstacles.CullEdge = o.CullEdge
	cfg.World.Width = o.ScreenWidth
	cfg.World.Height = o.ScreenHeight
	return nil
}

// Parse decodes and validates a config stored as YAML, such as the one
// saved with a recording. Environment overrides are not applied.
func Parse(data []byte) (RunnerConfig, error) {
	cfg, err := decode(data)
	if err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders the config back to YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Validate checks that the layout metadata describes a playable field.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.Layers.Ground.Height <= 0 || c.Layers.Ground.Height >= c.World.Height {
		errs = append(errs, fmt.Errorf("ground height %v must be in (0, %v)", c.Layers.Ground.Height, c.World.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.XDivisor <= 0 {
		errs = append(errs, fmt.Errorf("player x_divisor must be positive, got %v", c.Player.XDivisor))
	}
	if c.GroundY() < 0 {
		errs = append(errs, fmt.Errorf("player does not fit above the ground"))
	}
	if c.Obstacles.Speed >= 0 {
		errs = append(errs, fmt.Errorf("obstacle speed must be negative, got %v", c.Obstacles.Speed))
	}
	if c.Obstacles.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("spawn interval must be positive, got %v", c.Obstacles.SpawnInterval))
	}
	if c.Obstacles.CullEdge != CullRight && c.Obstacles.CullEdge != CullLeft {
		errs = append(errs, fmt.Errorf("unknown cull edge %q", c.Obstacles.CullEdge))
	}
	if len(c.Obstacles.Sizes) == 0 {
		errs = append(errs, errors.New("obstacle size catalog is empty"))
	}
	for i, s := range c.Obstacles.Sizes {
		if s.Width <= 0 || s.Height <= 0 {
			errs = append(errs, fmt.Errorf("obstacle size %d must be positive, got %vx%v", i, s.Width, s.Height))
			continue
		}
		if c.SpawnMaxY(s.Height) < c.Obstacles.MinY {
			errs = append(errs, fmt.Errorf("obstacle size %d (height %v) has no room between min_y %v and the ground", i, s.Height, c.Obstacles.MinY))
		}
	}
	bg := c.Layers.Background
	if bg.TextureWidth <= 0 || bg.TextureHeight <= 0 || bg.Scale <= 0 {
		errs = append(errs, fmt.Errorf("background texture metadata must be positive"))
	}
	if bg.Speed < 0 || c.Layers.Ground.Speed < 0 {
		errs = append(errs, errors.New("layer speeds must not be negative"))
	}
	if c.Scoring.Interval <= 0 {
		errs = append(errs, fmt.Errorf("score interval must be positive, got %v", c.Scoring.Interval))
	}
	if c.Window.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.Window.FPS))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
