package loop

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rjld-da/Game-SimpleSnake/internal/input"
	"github.com/rjld-da/Game-SimpleSnake/internal/snake"
)

func newTestState(t *testing.T, mutate func(*snake.Config)) *State {
	t.Helper()
	cfg := snake.DefaultConfig()
	cfg.Rand = rand.New(rand.NewSource(1))
	if mutate != nil {
		mutate(&cfg)
	}
	engine, err := snake.NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return NewState(engine)
}

func TestApplyQuitStopsLoop(t *testing.T) {
	s := newTestState(t, nil)
	s.Apply(input.Input{Quit: true})
	if s.Running {
		t.Error("Running still true after quit")
	}
}

func TestApplySpaceStartsFromIdle(t *testing.T) {
	s := newTestState(t, nil)
	s.Apply(input.Input{Space: true})
	if got := s.Engine.Phase(); got != snake.PhaseActive {
		t.Errorf("phase = %v, want active", got)
	}
}

func TestApplySpaceIgnoredWhileActive(t *testing.T) {
	s := newTestState(t, func(c *snake.Config) {
		c.StartTarget = snake.Cell{X: 11, Y: 10}
	})
	s.Apply(input.Input{Space: true})
	s.Advance(s.Engine.TickInterval()) // Eats the target, score 1

	s.Apply(input.Input{Space: true})
	if s.Engine.Score() != 1 {
		t.Errorf("score = %d, want 1: space mid-run must not restart", s.Engine.Score())
	}
}

func TestApplyDirectionSteersEngine(t *testing.T) {
	s := newTestState(t, nil)
	s.Apply(input.Input{Space: true})
	s.Apply(input.Input{Dir: input.KeyDown})
	s.Advance(s.Engine.TickInterval())

	if head := s.Engine.Body()[0]; head != (snake.Cell{X: 10, Y: 11}) {
		t.Errorf("head = %v, want (10,11)", head)
	}
}

func TestApplyRestartResetsFromTerminalPhase(t *testing.T) {
	s := newTestState(t, func(c *snake.Config) {
		c.StartBody = []snake.Cell{{X: 0, Y: 5}}
		c.StartDirection = snake.DirLeft
	})
	s.Apply(input.Input{Space: true})
	s.Advance(s.Engine.TickInterval()) // Into the wall

	s.Apply(input.Input{Restart: true})
	if got := s.Engine.Phase(); got != snake.PhaseIdle {
		t.Errorf("phase = %v, want idle", got)
	}
}

func TestApplyEscapeIgnoredWhileActive(t *testing.T) {
	s := newTestState(t, func(c *snake.Config) {
		c.StartTarget = snake.Cell{X: 11, Y: 10}
	})
	s.Apply(input.Input{Space: true})
	s.Advance(s.Engine.TickInterval()) // Eats the target, score 1

	// A stray escape press mid-run (e.g. from terminal noise) must not
	// wipe the game.
	s.Apply(input.Input{Escape: true})
	if got := s.Engine.Phase(); got != snake.PhaseActive {
		t.Fatalf("phase = %v, want active after escape mid-run", got)
	}
	s.Apply(input.Input{Restart: true})
	if s.Engine.Score() != 1 {
		t.Errorf("score = %d, want 1: restart mid-run must not reset", s.Engine.Score())
	}
}

func TestAdvanceHonorsTickCadence(t *testing.T) {
	s := newTestState(t, nil)
	s.Apply(input.Input{Space: true})
	start := s.Engine.Body()[0]

	s.Advance(s.Engine.TickInterval() - time.Millisecond)
	if head := s.Engine.Body()[0]; head != start {
		t.Errorf("engine ticked before the interval elapsed: head %v", head)
	}

	s.Advance(2 * time.Millisecond)
	if head := s.Engine.Body()[0]; head == start {
		t.Error("engine did not tick after the interval elapsed")
	}
}

func TestAdvanceCatchesUpOnSlowFrames(t *testing.T) {
	s := newTestState(t, nil)
	s.Apply(input.Input{Space: true})

	s.Advance(3 * s.Engine.TickInterval())
	if head := s.Engine.Body()[0]; head != (snake.Cell{X: 13, Y: 10}) {
		t.Errorf("head = %v, want (13,10) after three catch-up ticks", head)
	}
}

func TestAdvanceIdleDoesNotAccumulate(t *testing.T) {
	s := newTestState(t, nil)
	s.Advance(10 * s.Engine.TickInterval())
	s.Apply(input.Input{Space: true})
	s.Advance(time.Millisecond)

	if head := s.Engine.Body()[0]; head != (snake.Cell{X: 10, Y: 10}) {
		t.Errorf("idle time leaked into the tick accumulator: head %v", head)
	}
}

func TestEatingSpawnsParticles(t *testing.T) {
	s := newTestState(t, func(c *snake.Config) {
		c.StartTarget = snake.Cell{X: 11, Y: 10}
	})
	s.Apply(input.Input{Space: true})
	s.Advance(s.Engine.TickInterval())

	if !s.LastResult.Ate {
		t.Fatalf("target not eaten: %+v", s.LastResult)
	}
	if !s.Effects.Active() {
		t.Error("no particles after eating a target")
	}
}

func TestDeathSpawnsParticles(t *testing.T) {
	s := newTestState(t, func(c *snake.Config) {
		c.StartBody = []snake.Cell{{X: 0, Y: 5}}
		c.StartDirection = snake.DirLeft
	})
	s.Apply(input.Input{Space: true})
	s.Advance(s.Engine.TickInterval())

	if s.Engine.Phase() != snake.PhaseLost {
		t.Fatalf("phase = %v, want lost", s.Engine.Phase())
	}
	if !s.Effects.Active() {
		t.Error("no particles after dying")
	}
}

func TestEffectsExpire(t *testing.T) {
	e := NewEffects()
	e.Burst(10, 10, 5, 8.0, 0.3)
	if !e.Active() {
		t.Fatal("burst produced no particles")
	}
	e.Update(time.Second)
	if e.Active() {
		t.Error("particles outlived their lifetime")
	}
}
