// Package input reads keyboard bytes from a terminal in raw mode and turns
// them into per-frame input state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Key identifies a direction key. KeyNone means no direction key is held.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyRight
	KeyDown
	KeyLeft
)

// Input represents the current frame's input state. Dir is the most recently
// pressed direction key, so feeding it to the engine every frame naturally
// gives last-write-wins direction handling.
type Input struct {
	Quit    bool
	Space   bool
	Enter   bool
	Escape  bool
	Restart bool
	Dir     Key
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit    time.Time
	up      time.Time
	right   time.Time
	down    time.Time
	left    time.Time
	space   time.Time
	enter   time.Time
	escape  time.Time
	restart time.Time
}

// Stream delivers input bytes via a channel and tracks key press times.
// carry holds an incomplete escape-sequence prefix left over from the
// previous frame's drain.
type Stream struct {
	ch    chan byte
	done  chan struct{}
	carry []byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:   make(chan byte, 128),
		done: make(chan struct{}),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Close releases the reader goroutine. It may still be blocked on the
// underlying reader, but exits as soon as that read returns.
func (s *Stream) Close() {
	close(s.done)
}

// ReadInput drains all available bytes from the stream (non-blocking),
// handles CSI escape sequences for arrow keys and returns the resulting
// input state for this frame.
func ReadInput(s *Stream) Input {
	now := time.Now()
	buf := s.carry
	s.carry = nil
	fresh := false

	// Drain all available bytes
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				goto parse
			}
			buf = append(buf, b)
			fresh = true
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			applyByteToState(&s.state, b, now)
			continue
		}

		// ESC may open a CSI arrow sequence whose bytes arrive split
		// across frames. A torn prefix at the end of this frame's bytes
		// is held back to complete on the next drain; only an ESC that
		// was already held once with nothing following counts as a real
		// Escape press.
		tail := buf[i+1:]
		if len(tail) == 0 || (len(tail) == 1 && tail[0] == '[') {
			if fresh {
				s.carry = append(s.carry, buf[i:]...)
				break
			}
			s.state.escape = now
			continue
		}
		if tail[0] == '[' {
			switch tail[1] {
			case 'A':
				s.state.up = now
			case 'B':
				s.state.down = now
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			}
			i += 2
			continue
		}
		s.state.escape = now
	}

	return Input{
		Quit:    now.Sub(s.state.quit) < keyHoldDuration,
		Space:   now.Sub(s.state.space) < keyHoldDuration,
		Enter:   now.Sub(s.state.enter) < keyHoldDuration,
		Escape:  now.Sub(s.state.escape) < keyHoldDuration,
		Restart: now.Sub(s.state.restart) < keyHoldDuration,
		Dir:     latestDirection(&s.state, now),
	}
}

// latestDirection picks the most recently pressed direction key still inside
// the hold window.
func latestDirection(state *keyState, now time.Time) Key {
	best := KeyNone
	var bestAt time.Time
	consider := func(k Key, at time.Time) {
		if now.Sub(at) < keyHoldDuration && at.After(bestAt) {
			best = k
			bestAt = at
		}
	}
	consider(KeyUp, state.up)
	consider(KeyRight, state.right)
	consider(KeyDown, state.down)
	consider(KeyLeft, state.left)
	return best
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	case 'r', 'R':
		state.restart = now
	}
}

// ResetKeyInput drains any buffered bytes and clears key state, so stale
// presses from a previous screen don't leak into a fresh run.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.carry = nil
	for {
		select {
		case _, ok := <-s.ch:
			if !ok {
				s.state = keyState{}
				return
			}
		default:
			s.state = keyState{}
			return
		}
	}
}
