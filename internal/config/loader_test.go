package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg RunnerConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded defaults drifted from DefaultRunnerConfig():\n got %+v\nwant %+v", cfg, DefaultRunnerConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestDerivedLayout(t *testing.T) {
	cfg := DefaultRunnerConfig()

	if got := cfg.GroundY(); got != 370 {
		t.Errorf("GroundY() = %v, expected 370", got)
	}
	if got := cfg.SpawnMaxY(80); got != 380 {
		t.Errorf("SpawnMaxY(80) = %v, expected 380", got)
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("world:\n  width: 640\n  height: 360\nobstacles:\n  speed: -4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.World.Width != 640 || cfg.World.Height != 360 {
		t.Errorf("world = %+v, expected 640x360", cfg.World)
	}
	if cfg.Obstacles.Speed != -4 {
		t.Errorf("obstacle speed = %v, expected -4", cfg.Obstacles.Speed)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("seed: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() with a one-key file failed: %v", err)
	}

	want := DefaultRunnerConfig()
	want.Seed = 7
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Load() = %+v, expected defaults with seed 7", cfg)
	}
}

func TestLoadRunnerOverridesNestedKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	def := DefaultRunnerConfig()
	if cfg.Physics.Gravity != 2 {
		t.Errorf("gravity = %v, expected 2", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpVelocity != def.Physics.JumpVelocity {
		t.Errorf("jump velocity = %v, expected default %v", cfg.Physics.JumpVelocity, def.Physics.JumpVelocity)
	}
	if len(cfg.Obstacles.Sizes) != len(def.Obstacles.Sizes) {
		t.Errorf("catalog has %d sizes, expected the %d defaults", len(cfg.Obstacles.Sizes), len(def.Obstacles.Sizes))
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRunnerBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("JUMPY_SEED", "99")
	t.Setenv("JUMPY_CULL_EDGE", "left")
	t.Setenv("JUMPY_FPS", "30")

	cfg := DefaultRunnerConfig()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}

	if cfg.Seed != 99 {
		t.Errorf("Seed = %d, expected 99", cfg.Seed)
	}
	if cfg.Obstacles.CullEdge != CullLeft {
		t.Errorf("CullEdge = %q, expected %q", cfg.Obstacles.CullEdge, CullLeft)
	}
	if cfg.Window.FPS != 30 {
		t.Errorf("FPS = %d, expected 30", cfg.Window.FPS)
	}
	// Untouched values survive
	if cfg.World.Width != 960 {
		t.Errorf("World.Width = %v, expected 960", cfg.World.Width)
	}
}

func TestApplyEnvBadValue(t *testing.T) {
	t.Setenv("JUMPY_FPS", "fast")

	cfg := DefaultRunnerConfig()
	if err := ApplyEnv(&cfg); err == nil {
		t.Fatal("expected error for non-numeric JUMPY_FPS")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
		substr string
	}{
		{"zero world", func(c *RunnerConfig) { c.World.Width = 0 }, "world size"},
		{"ground too tall", func(c *RunnerConfig) { c.Layers.Ground.Height = 540 }, "ground height"},
		{"positive obstacle speed", func(c *RunnerConfig) { c.Obstacles.Speed = 3 }, "obstacle speed"},
		{"empty catalog", func(c *RunnerConfig) { c.Obstacles.Sizes = nil }, "catalog is empty"},
		{"no spawn room", func(c *RunnerConfig) { c.Obstacles.MinY = 400 }, "no room"},
		{"bad cull edge", func(c *RunnerConfig) { c.Obstacles.CullEdge = "top" }, "cull edge"},
		{"missing texture", func(c *RunnerConfig) { c.Layers.Background.TextureWidth = 0 }, "background texture"},
		{"zero score interval", func(c *RunnerConfig) { c.Scoring.Interval = 0 }, "score interval"},
		{"zero fps", func(c *RunnerConfig) { c.Window.FPS = 0 }, "fps"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.substr) {
				t.Errorf("error %q does not mention %q", err, tc.substr)
			}
		})
	}
}

func TestMarshalIncludesCullEdge(t *testing.T) {
	data, err := Marshal(DefaultRunnerConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "cull_edge: right") {
		t.Errorf("marshalled YAML missing cull_edge:\n%s", data)
	}
}

func TestParseRoundTrip(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Seed = 99
	cfg.Obstacles.CullEdge = CullLeft

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("Parse(Marshal(cfg)) = %+v, expected %+v", got, cfg)
	}
}

func TestParsePartial(t *testing.T) {
	cfg, err := Parse([]byte("obstacles:\n  cull_edge: left\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	want := DefaultRunnerConfig()
	want.Obstacles.CullEdge = CullLeft
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Parse() = %+v, expected defaults with left cull edge", cfg)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	if _, err := Parse([]byte("world: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
	if _, err := Parse([]byte("world:\n  width: 0\n")); err == nil {
		t.Error("expected validation error")
	}
}
