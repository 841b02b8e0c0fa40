// Package loop provides the terminal game loop driving a snake engine.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/rjld-da/Game-SimpleSnake/internal/draw"
	"github.com/rjld-da/Game-SimpleSnake/internal/input"
	"github.com/rjld-da/Game-SimpleSnake/internal/snake"
)

// Frames are drawn faster than the engine ticks so input feels immediate and
// particles animate smoothly; the engine cadence comes from its own config.
const targetFPS = 30
const targetFrameTime = time.Second / targetFPS

// Options configures a game session.
type Options struct {
	// Config for the engine. Nil means snake.DefaultConfig().
	Config *snake.Config

	// TermSizeFunc reports the terminal size each frame. Nil means the
	// local stdout terminal.
	TermSizeFunc draw.TermSizeFunc
}

// Run starts the game loop with the default configuration, reading keys from
// r and drawing to w. Blocks until the player quits or r closes.
func Run(r *bufio.Reader, w io.Writer) error {
	return RunWithOptions(r, w, Options{})
}

// RunWithOptions starts the game loop with the standard Input → Update → Draw
// cycle. The caller is responsible for putting the terminal into raw mode.
func RunWithOptions(r *bufio.Reader, w io.Writer, opts Options) error {
	cfg := snake.DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	engine, err := snake.NewEngine(cfg)
	if err != nil {
		return err
	}

	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}

	state := NewState(engine)
	state.InputStream = input.StartStream(r)
	defer state.InputStream.Close()

	canvas := draw.NewGridCanvas(engine.GridSize())
	cw := draw.NewChunkWriter(w, 0, 0)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	lastTime := time.Now()

	for state.Running {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		inp := input.ReadInput(state.InputStream)
		state.Apply(inp)

		// ===== UPDATE PHASE =====
		tooSmall := updateLayout(canvas, cw, sizeFunc)
		state.Advance(delta)

		// ===== DRAW PHASE =====
		if err := drawFrame(state, cw, canvas, tooSmall); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// updateLayout re-centers the playfield for the current terminal size and
// reports whether the terminal is too small to fit it.
func updateLayout(canvas *draw.Canvas, cw *draw.ChunkWriter, sizeFunc draw.TermSizeFunc) bool {
	termWidth, termHeight, err := sizeFunc()
	if err != nil || termWidth <= 0 || termHeight <= 0 {
		// Size unknown: draw at the origin and hope for the best.
		canvas.SetOffset(0, 0)
		cw.SetOffset(0, 0)
		return false
	}

	if termWidth < canvas.TerminalWidth() || termHeight < canvas.TerminalHeight() {
		return true
	}

	offsetCol := (termWidth - canvas.TerminalWidth()) / 2
	offsetRow := (termHeight - canvas.TerminalHeight()) / 2
	canvas.SetOffset(offsetCol, offsetRow)
	cw.SetOffset(offsetCol, offsetRow)
	return false
}
