package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Block characters for half-block rendering.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a drawing buffer for a square playfield of grid cells, rendered
// with half-block characters at 2x vertical resolution. Each grid cell maps
// to a 2x2 sub-pixel block, which comes out as 2 terminal columns by 1 row,
// close to square in most fonts.
type Canvas struct {
	gridSize       int
	termWidth      int    // Playfield columns: gridSize * 2
	termHeight     int    // Playfield rows: gridSize
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x]

	// Offset for centering the playfield when the terminal is larger.
	// 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder // Reusable buffer for batching render output
}

// CellPixels is the edge length of one grid cell in sub-pixels.
const CellPixels = 2

// NewGridCanvas creates a canvas for a gridSize x gridSize playfield.
func NewGridCanvas(gridSize int) *Canvas {
	termWidth := gridSize * CellPixels
	termHeight := gridSize
	return &Canvas{
		gridSize:       gridSize,
		termWidth:      termWidth,
		termHeight:     termHeight,
		subPixelHeight: termHeight * 2,
		pixels:         make([]bool, termHeight*2*termWidth),
	}
}

// SetOffset sets the column and row offset for centering the playfield.
// Offsets are 0-based terminal positions: the playfield starts at
// (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// GridSize returns the playfield dimension in cells.
func (c *Canvas) GridSize() int { return c.gridSize }

// TerminalWidth returns the playfield width in terminal columns.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the playfield height in terminal rows.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// SetPixel sets a sub-pixel. Out-of-range coordinates are ignored.
func (c *Canvas) SetPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// SetFloat sets a sub-pixel from float coordinates (for particle effects).
func (c *Canvas) SetFloat(x, y float64) {
	c.SetPixel(int(math.Round(x)), int(math.Round(y)))
}

// FillCell fills the grid cell at (x, y) solid.
func (c *Canvas) FillCell(x, y int) {
	px, py := x*CellPixels, y*CellPixels
	for dy := 0; dy < CellPixels; dy++ {
		for dx := 0; dx < CellPixels; dx++ {
			c.SetPixel(px+dx, py+dy)
		}
	}
}

// MarkCell fills the grid cell at (x, y) with a diagonal checker, visually
// distinct from FillCell's solid block. Used for the target.
func (c *Canvas) MarkCell(x, y int) {
	px, py := x*CellPixels, y*CellPixels
	c.SetPixel(px, py)
	c.SetPixel(px+1, py+1)
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1400 bytes stays under typical MTU size for smooth SSH transmission.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using half-block characters.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 12) // Estimate ~12 bytes per cell

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := (row*2 + 1) * c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue // Skip empty cells
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// RenderBorder draws a box border around the playfield. Requires at least one
// free column and row of offset on each side; otherwise the border is skipped
// on that axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	buf.Grow((c.termWidth+2)*2 + c.termHeight*2*12)

	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, strings.Repeat("─", c.termWidth))
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, strings.Repeat("─", c.termWidth))
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, strings.Repeat("─", c.termWidth))
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, strings.Repeat("─", c.termWidth))
		}
	}

	if hasH {
		startRow := top + 1
		endRow := bottom
		if !hasV {
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	io.WriteString(w, buf.String())
}
