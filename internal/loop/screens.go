package loop

import (
	"fmt"

	"github.com/rjld-da/Game-SimpleSnake/internal/draw"
	"github.com/rjld-da/Game-SimpleSnake/internal/snake"
)

// drawFrame clears the screen and draws the playfield plus the overlay for
// the current phase, then flushes everything in one chunked write.
func drawFrame(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas, tooSmall bool) error {
	draw.ClearScreen(cw)

	if tooSmall {
		cw.SetOffset(0, 0)
		cw.WriteAt(1, 1, "Terminal too small for the playfield.")
		cw.WriteAt(1, 2, "Enlarge the window, or press Q to quit.")
		return cw.Flush()
	}

	canvas.Clear()
	drawPlayfield(state, canvas)
	state.Effects.Draw(canvas)
	canvas.RenderBorder(cw)
	canvas.Render(cw)

	switch state.Engine.Phase() {
	case snake.PhaseIdle:
		drawStartScreen(cw, canvas)
	case snake.PhaseActive:
		drawPlayingHUD(state, cw, canvas)
	case snake.PhaseWon:
		drawWonScreen(state, cw, canvas)
	case snake.PhaseLost:
		drawLostScreen(state, cw, canvas)
	case snake.PhaseStalled:
		drawStalledScreen(cw, canvas)
	}

	return cw.Flush()
}

// drawPlayfield draws the body solid and the target as a checker mark.
func drawPlayfield(state *State, canvas *draw.Canvas) {
	for _, cell := range state.Engine.Body() {
		canvas.FillCell(cell.X, cell.Y)
	}
	if state.Engine.Phase() != snake.PhaseIdle {
		t := state.Engine.Target()
		canvas.MarkCell(t.X, t.Y)
	}
}

// writeCentered writes text horizontally centered on the given playfield row.
func writeCentered(cw *draw.ChunkWriter, canvas *draw.Canvas, row int, text string) {
	col := canvas.TerminalWidth()/2 - len(text)/2 + 1
	if col < 1 {
		col = 1
	}
	cw.WriteAt(col, row, text)
}

// hudRow returns the row for the score line: just above the playfield when
// there is room, otherwise the first playfield row.
func hudRow(canvas *draw.Canvas) int {
	if canvas.OffsetRow() >= 2 {
		return -1 // One row above the border
	}
	return 0
}

// drawStartScreen draws the title screen over the idle playfield.
func drawStartScreen(cw *draw.ChunkWriter, canvas *draw.Canvas) {
	centerY := canvas.TerminalHeight() / 2
	writeCentered(cw, canvas, centerY-2, "S N A K E")
	writeCentered(cw, canvas, centerY+1, "Press SPACE to Start")
	writeCentered(cw, canvas, centerY+3, "WASD or Arrows to steer, Q to quit")
}

// drawPlayingHUD draws the in-game score line.
func drawPlayingHUD(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	text := fmt.Sprintf("Score: %d/%d", state.Engine.Score(), state.Engine.MaxTargets())
	cw.WriteAt(1, hudRow(canvas), text)
}

// drawWonScreen draws the victory screen.
func drawWonScreen(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	centerY := canvas.TerminalHeight() / 2
	writeCentered(cw, canvas, centerY-2, "Y O U   W I N")
	writeCentered(cw, canvas, centerY, fmt.Sprintf("All %d targets eaten", state.Engine.MaxTargets()))
	writeCentered(cw, canvas, centerY+2, "Press SPACE to play again")
}

// drawLostScreen draws the game over screen with the collision reason.
func drawLostScreen(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	centerY := canvas.TerminalHeight() / 2
	writeCentered(cw, canvas, centerY-2, "G A M E   O V E R")

	var cause string
	switch state.LastResult.Reason {
	case snake.EndWall:
		cause = "You hit the wall"
	case snake.EndSelf:
		cause = "You bit yourself"
	default:
		cause = "You crashed"
	}
	writeCentered(cw, canvas, centerY, fmt.Sprintf("%s - Score: %d", cause, state.Engine.Score()))
	writeCentered(cw, canvas, centerY+2, "Press SPACE to Restart")
}

// drawStalledScreen covers the grid-exhaustion terminal phase. Unreachable
// with the default configuration, but arbitrary configs can get here.
func drawStalledScreen(cw *draw.ChunkWriter, canvas *draw.Canvas) {
	centerY := canvas.TerminalHeight() / 2
	writeCentered(cw, canvas, centerY-1, "B O A R D   F U L L")
	writeCentered(cw, canvas, centerY+1, "No space left for a target - Press SPACE to Restart")
}
