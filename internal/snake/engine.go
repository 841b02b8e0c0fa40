// Package snake implements the game-state engine for a grid snake game.
//
// The engine is a pure state machine: an external driver calls Tick at a
// fixed cadence and SetDirection on input events. It has no timers, no I/O
// and no goroutines of its own. All calls must come from a single goroutine;
// drivers that run input and ticking concurrently have to serialize access
// themselves.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Defaults for Config. Overridable at construction for testing and tuning.
const (
	DefaultGridSize     = 20
	DefaultMaxTargets   = 10
	DefaultTickInterval = 150 * time.Millisecond
)

// ErrInvalidConfig is wrapped by all construction-time validation failures.
var ErrInvalidConfig = errors.New("snake: invalid configuration")

// Phase is the engine lifecycle phase.
type Phase uint8

const (
	PhaseIdle    Phase = iota // Reset, not yet started
	PhaseActive               // Ticking
	PhaseWon                  // Score reached MaxTargets
	PhaseLost                 // Wall or self collision
	PhaseStalled              // No free cell left for a target
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseStalled:
		return "stalled"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the run. Terminal phases only
// transition back through Start or Reset.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost || p == PhaseStalled
}

// EndReason says why a run ended, when it did.
type EndReason uint8

const (
	EndNone     EndReason = iota
	EndWall               // Head left the grid
	EndSelf               // Head hit the body
	EndWin                // Score reached MaxTargets
	EndGridFull           // No free cell left to place a target
)

// String returns the reason name.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndWall:
		return "wall"
	case EndSelf:
		return "self"
	case EndWin:
		return "win"
	case EndGridFull:
		return "grid full"
	default:
		return "unknown"
	}
}

// TickResult reports the outcome of a single Tick call.
type TickResult struct {
	Phase  Phase
	Score  int
	Ate    bool      // A target was consumed this tick
	Ended  bool      // The run ended this tick
	Reason EndReason // Valid when Ended is true
}

// Config holds the engine construction parameters.
type Config struct {
	GridSize       int           // Grid is GridSize x GridSize cells
	MaxTargets     int           // Targets to consume for a win
	TickInterval   time.Duration // Suggested tick cadence for drivers
	StartBody      []Cell        // Head-first body after a reset
	StartDirection Direction
	StartTarget    Cell // Re-validated on every reset, see Engine.Reset
	Rand           *rand.Rand
}

// DefaultConfig returns the standard 20x20, 10-target game.
func DefaultConfig() Config {
	return Config{
		GridSize:       DefaultGridSize,
		MaxTargets:     DefaultMaxTargets,
		TickInterval:   DefaultTickInterval,
		StartBody:      []Cell{{X: 10, Y: 10}},
		StartDirection: DirRight,
		StartTarget:    Cell{X: 15, Y: 10},
	}
}

func (c Config) validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("%w: grid size %d", ErrInvalidConfig, c.GridSize)
	}
	if c.MaxTargets <= 0 {
		return fmt.Errorf("%w: max targets %d", ErrInvalidConfig, c.MaxTargets)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %v", ErrInvalidConfig, c.TickInterval)
	}
	if len(c.StartBody) == 0 {
		return fmt.Errorf("%w: empty start body", ErrInvalidConfig)
	}
	seen := make(map[Cell]struct{}, len(c.StartBody))
	for _, cell := range c.StartBody {
		if cell.X < 0 || cell.X >= c.GridSize || cell.Y < 0 || cell.Y >= c.GridSize {
			return fmt.Errorf("%w: start body cell %v outside %dx%d grid",
				ErrInvalidConfig, cell, c.GridSize, c.GridSize)
		}
		if _, dup := seen[cell]; dup {
			return fmt.Errorf("%w: start body cell %v repeated", ErrInvalidConfig, cell)
		}
		seen[cell] = struct{}{}
	}
	if c.StartDirection > DirLeft {
		return fmt.Errorf("%w: direction %d", ErrInvalidConfig, c.StartDirection)
	}
	return nil
}

// Engine owns the authoritative game state. Create one with NewEngine; it
// comes up reset and idle.
type Engine struct {
	cfg Config
	rng *rand.Rand

	body     []Cell // Head first
	occupied map[Cell]struct{}
	dir      Direction // Direction committed at the last tick
	pending  Direction // Direction to commit at the next tick
	target   Cell
	score    int
	phase    Phase

	// Set when a reset could not place a target because the start body
	// fills the grid. Start transitions straight to PhaseStalled.
	noFreeCell bool
}

// NewEngine validates cfg and returns a reset engine in PhaseIdle.
// If cfg.Rand is nil the engine seeds its own source from the clock; pass a
// seeded source for reproducible target placement.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.StartBody = append([]Cell(nil), cfg.StartBody...)

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := &Engine{
		cfg:      cfg,
		rng:      rng,
		occupied: make(map[Cell]struct{}, len(cfg.StartBody)+1),
	}
	e.Reset()
	return e, nil
}

// Reset reinitializes the whole state atomically: body, direction, score and
// target return to their configured start values and the phase becomes
// PhaseIdle. The configured start target is not trusted blindly: if it lies
// outside the grid or on the start body, a fresh one is spawned.
func (e *Engine) Reset() {
	e.body = append(e.body[:0], e.cfg.StartBody...)
	clear(e.occupied)
	for _, cell := range e.body {
		e.occupied[cell] = struct{}{}
	}
	e.dir = e.cfg.StartDirection
	e.pending = e.cfg.StartDirection
	e.score = 0
	e.phase = PhaseIdle
	e.noFreeCell = false

	n := e.cfg.GridSize
	t := e.cfg.StartTarget
	_, taken := e.occupied[t]
	if taken || t.X < 0 || t.X >= n || t.Y < 0 || t.Y >= n {
		spawned, err := SpawnTarget(e.rng, n, e.occupied)
		if err != nil {
			e.noFreeCell = true
			return
		}
		t = spawned
	}
	e.target = t
}

// Start begins a run. It is a no-op while the engine is active; from idle or
// any terminal phase it performs an implicit Reset and then activates, so
// every Start is guaranteed a clean run. If the start body fills the entire
// grid there is nowhere to place a target and the engine goes straight to
// PhaseStalled.
func (e *Engine) Start() {
	if e.phase == PhaseActive {
		return
	}
	e.Reset()
	if e.noFreeCell {
		e.phase = PhaseStalled
		return
	}
	e.phase = PhaseActive
}

// SetDirection updates the direction committed at the next tick. A direction
// opposite to the current one is ignored silently; reversal attempts are
// normal input, not errors. Between ticks the last accepted call wins.
func (e *Engine) SetDirection(d Direction) {
	if d > DirLeft || d == e.dir.Opposite() {
		return
	}
	e.pending = d
}

// Tick advances the game by one step. Outside PhaseActive it is a no-op and
// returns the current phase and score unchanged. Tick never fails: walls,
// self collisions, wins and grid exhaustion are all expressed through the
// returned TickResult and the phase.
func (e *Engine) Tick() TickResult {
	res := TickResult{Phase: e.phase, Score: e.score}
	if e.phase != PhaseActive {
		return res
	}

	e.dir = e.pending
	head := e.body[0].Step(e.dir)

	n := e.cfg.GridSize
	if head.X < 0 || head.X >= n || head.Y < 0 || head.Y >= n {
		return e.end(&res, PhaseLost, EndWall)
	}
	// The tail cell counts too: it only vacates on a non-consuming tick,
	// and whether this tick consumes is unknown until the head moves.
	if _, hit := e.occupied[head]; hit {
		return e.end(&res, PhaseLost, EndSelf)
	}

	e.body = append(e.body, Cell{})
	copy(e.body[1:], e.body)
	e.body[0] = head
	e.occupied[head] = struct{}{}

	if head != e.target {
		tail := e.body[len(e.body)-1]
		e.body = e.body[:len(e.body)-1]
		delete(e.occupied, tail)
		return res
	}

	e.score++
	res.Score = e.score
	res.Ate = true
	if e.score >= e.cfg.MaxTargets {
		return e.end(&res, PhaseWon, EndWin)
	}
	next, err := SpawnTarget(e.rng, n, e.occupied)
	if err != nil {
		// Unreachable with the default config (body tops out at 11 of
		// 400 cells) but mandatory for arbitrary ones.
		return e.end(&res, PhaseStalled, EndGridFull)
	}
	e.target = next
	return res
}

func (e *Engine) end(res *TickResult, phase Phase, reason EndReason) TickResult {
	e.phase = phase
	res.Phase = phase
	res.Ended = true
	res.Reason = reason
	return *res
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase { return e.phase }

// Score returns the number of targets consumed this run.
func (e *Engine) Score() int { return e.score }

// Target returns the current target cell.
func (e *Engine) Target() Cell { return e.target }

// Body returns a copy of the body cells, head first.
func (e *Engine) Body() []Cell {
	return append([]Cell(nil), e.body...)
}

// Len returns the current body length without copying.
func (e *Engine) Len() int { return len(e.body) }

// GridSize returns the configured grid dimension.
func (e *Engine) GridSize() int { return e.cfg.GridSize }

// MaxTargets returns the configured win threshold.
func (e *Engine) MaxTargets() int { return e.cfg.MaxTargets }

// TickInterval returns the cadence the driver should call Tick at.
func (e *Engine) TickInterval() time.Duration { return e.cfg.TickInterval }
