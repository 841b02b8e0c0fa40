package config

import (
	"testing"
	"time"

	"github.com/rjld-da/Game-SimpleSnake/internal/snake"
)

func TestGameConfigDefaults(t *testing.T) {
	cfg := GameConfig()
	want := snake.DefaultConfig()
	if cfg.GridSize != want.GridSize || cfg.MaxTargets != want.MaxTargets ||
		cfg.TickInterval != want.TickInterval {
		t.Errorf("GameConfig = %+v, want defaults", cfg)
	}
}

func TestGameConfigOverrides(t *testing.T) {
	t.Setenv("SNAKE_GRID_SIZE", "30")
	t.Setenv("SNAKE_MAX_TARGETS", "15")
	t.Setenv("SNAKE_TICK_INTERVAL", "100ms")

	cfg := GameConfig()
	if cfg.GridSize != 30 {
		t.Errorf("GridSize = %d", cfg.GridSize)
	}
	if cfg.MaxTargets != 15 {
		t.Errorf("MaxTargets = %d", cfg.MaxTargets)
	}
	if cfg.TickInterval != 100*time.Millisecond {
		t.Errorf("TickInterval = %v", cfg.TickInterval)
	}

	// Start positions follow the resized grid.
	if len(cfg.StartBody) != 1 || cfg.StartBody[0] != (snake.Cell{X: 15, Y: 15}) {
		t.Errorf("StartBody = %v", cfg.StartBody)
	}
	if cfg.StartTarget != (snake.Cell{X: 22, Y: 15}) {
		t.Errorf("StartTarget = %v", cfg.StartTarget)
	}

	// The rederived config must construct cleanly.
	if _, err := snake.NewEngine(cfg); err != nil {
		t.Errorf("rederived config rejected: %v", err)
	}
}

func TestGameConfigInvalidGridPassedThrough(t *testing.T) {
	t.Setenv("SNAKE_GRID_SIZE", "-5")
	cfg := GameConfig()
	if cfg.GridSize != -5 {
		t.Errorf("GridSize = %d, want -5 passed through for engine validation", cfg.GridSize)
	}
	if _, err := snake.NewEngine(cfg); err == nil {
		t.Error("engine accepted a negative grid")
	}
}
