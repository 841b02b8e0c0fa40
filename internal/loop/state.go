package loop

import (
	"time"

	"github.com/rjld-da/Game-SimpleSnake/internal/input"
	"github.com/rjld-da/Game-SimpleSnake/internal/snake"
)

// State holds all driver-side state for a single game session: the engine,
// the input stream and the visual effects. The engine is only ever touched
// from the loop goroutine.
type State struct {
	Engine      *snake.Engine
	InputStream *input.Stream
	Running     bool
	LastResult  snake.TickResult
	Effects     Effects

	tickAccum time.Duration
}

// NewState creates driver state around an engine.
func NewState(engine *snake.Engine) *State {
	return &State{
		Engine:  engine,
		Running: true,
		Effects: NewEffects(),
	}
}

// Apply maps a frame's input onto engine commands.
func (s *State) Apply(inp input.Input) {
	if inp.Quit {
		s.Running = false
		return
	}

	if d, ok := directionFor(inp.Dir); ok {
		s.Engine.SetDirection(d)
	}

	phase := s.Engine.Phase()
	if (inp.Space || inp.Enter) && phase != snake.PhaseActive {
		input.ResetKeyInput(s.InputStream)
		s.Effects.Clear()
		s.LastResult = snake.TickResult{}
		s.tickAccum = 0
		s.Engine.Start()
		return
	}
	if (inp.Restart || inp.Escape) && phase != snake.PhaseActive {
		s.Effects.Clear()
		s.LastResult = snake.TickResult{}
		s.tickAccum = 0
		s.Engine.Reset()
	}
}

// Advance accumulates frame time, ticks the engine at its configured cadence
// and updates effects. Multiple engine ticks can happen in one slow frame.
func (s *State) Advance(delta time.Duration) {
	s.Effects.Update(delta)

	if s.Engine.Phase() != snake.PhaseActive {
		s.tickAccum = 0
		return
	}

	s.tickAccum += delta
	interval := s.Engine.TickInterval()
	for s.tickAccum >= interval {
		s.tickAccum -= interval
		res := s.Engine.Tick()
		s.react(res)
		if res.Phase != snake.PhaseActive {
			s.tickAccum = 0
			break
		}
	}
}

// react spawns effects for tick outcomes. Engine state is never touched here.
func (s *State) react(res snake.TickResult) {
	s.LastResult = res

	head := s.Engine.Body()[0]
	cx := float64(head.X*2) + 1
	cy := float64(head.Y*2) + 1

	if res.Ate {
		s.Effects.Burst(cx, cy, 8, 10.0, 0.4)
	}
	if res.Ended && (res.Reason == snake.EndWall || res.Reason == snake.EndSelf) {
		s.Effects.Burst(cx, cy, 20, 16.0, 0.8)
	}
}

// directionFor maps a direction key to an engine direction.
func directionFor(k input.Key) (snake.Direction, bool) {
	switch k {
	case input.KeyUp:
		return snake.DirUp, true
	case input.KeyRight:
		return snake.DirRight, true
	case input.KeyDown:
		return snake.DirDown, true
	case input.KeyLeft:
		return snake.DirLeft, true
	default:
		return 0, false
	}
}
