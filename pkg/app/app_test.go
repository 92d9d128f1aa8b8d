package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/gonewx/tubeflow/internal/fluid"
	"github.com/gonewx/tubeflow/pkg/config"
	"github.com/gonewx/tubeflow/pkg/embedded"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "simulation.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestNewApp_FromFile(t *testing.T) {
	path := writeConfig(t, `
defaults:
  containerWidth: 250
  containerHeight: 150
  tubeLength: 80
`)

	a, err := NewApp(Config{ConfigPath: path, Seed: 42})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	want := fluid.Params{ContainerWidth: 250, ContainerHeight: 150, TubeLength: 80}
	if got := a.controller.Params(); got != want {
		t.Errorf("params = %+v, want %+v", got, want)
	}
	if a.sceneManager == nil {
		t.Error("scene manager should be created")
	}
}

func TestNewApp_Overrides(t *testing.T) {
	path := writeConfig(t, "{}\n")

	a, err := NewApp(Config{
		ConfigPath: path,
		Overrides: func(p *fluid.Params) {
			p.TubeLength = 500 // 超出范围，应被限制到 200
			p.TJunction = true
		},
	})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	got := a.controller.Params()
	if got.TubeLength != 200 {
		t.Errorf("tube length = %v, want 200 (clamped)", got.TubeLength)
	}
	if !got.TJunction {
		t.Error("t-junction override was not applied")
	}
	if _, ok := a.controller.System().BranchEnd(); !ok {
		t.Error("particle system should have a branch end")
	}
}

func TestNewApp_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "constants:\n  maxParticles: 0\n")

	_, err := NewApp(Config{ConfigPath: path})
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("NewApp() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadConfig_Embedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		DefaultConfigPath: &fstest.MapFile{Data: []byte("controls:\n  tubeLength: { min: 60, max: 180 }\n")},
	})

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Controls.TubeLength != (config.Range{Min: 60, Max: 180}) {
		t.Errorf("tube range = %+v, want {60 180}", cfg.Controls.TubeLength)
	}
}

func TestLoadConfig_EmbeddedMissing(t *testing.T) {
	embedded.Init(fstest.MapFS{})

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if *cfg != *config.Default() {
		t.Errorf("config = %+v, want defaults", *cfg)
	}
}

func TestLayout(t *testing.T) {
	a := &App{}
	w, h := a.Layout(1920, 1080)
	if w != config.WindowWidth || h != config.WindowHeight {
		t.Errorf("Layout() = %dx%d, want %dx%d", w, h, config.WindowWidth, config.WindowHeight)
	}
}
