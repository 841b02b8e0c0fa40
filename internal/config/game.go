package config

import (
	"github.com/rjld-da/Game-SimpleSnake/internal/snake"
)

// GameConfig builds the engine configuration from SNAKE_* environment
// variables, falling back to the standard 20x20, 10-target, 150ms game.
// Invalid values (a non-positive grid, a zero interval) are passed through
// unchanged so engine construction reports them as configuration errors.
func GameConfig() snake.Config {
	cfg := snake.DefaultConfig()
	cfg.GridSize = GetEnvInt("SNAKE_GRID_SIZE", cfg.GridSize)
	cfg.MaxTargets = GetEnvInt("SNAKE_MAX_TARGETS", cfg.MaxTargets)
	cfg.TickInterval = GetEnvDuration("SNAKE_TICK_INTERVAL", cfg.TickInterval)

	// Re-derive the start positions when the grid size changed, keeping
	// the same center-ish body and target placement as the defaults.
	if cfg.GridSize != snake.DefaultGridSize && cfg.GridSize > 0 {
		mid := cfg.GridSize / 2
		cfg.StartBody = []snake.Cell{{X: mid, Y: mid}}
		tx := mid + cfg.GridSize/4
		if tx >= cfg.GridSize {
			tx = cfg.GridSize - 1
		}
		cfg.StartTarget = snake.Cell{X: tx, Y: mid}
	}
	return cfg
}
