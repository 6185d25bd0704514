// Package input turns raw terminal bytes into per-frame key state.
package input

import (
	"io"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only repeat keys, so a paddle keeps moving between repeats for this long.
const keyHoldDuration = 80 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	P1Up    bool
	P1Down  bool
	P2Up    bool
	P2Down  bool
	Space   bool
	Enter   bool
	Closed  bool // The underlying reader returned an error (disconnect, EOF)
	Pressed []byte
}

// Start reports whether a start/confirm key was pressed.
func (i Input) Start() bool {
	return i.Space || i.Enter
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit   time.Time
	p1Up   time.Time
	p1Down time.Time
	p2Up   time.Time
	p2Down time.Time
	space  time.Time
	enter  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.ByteReader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Reset forgets all held keys, so a key used to leave a screen does not leak into the next one.
func Reset(s *Stream) {
	s.state = keyState{}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	return readInputAt(s, time.Now())
}

func readInputAt(s *Stream, now time.Time) Input {
	var buf []byte

	// Drain all available bytes
drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	// Parse the collected bytes and update key state timestamps
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// Check for escape sequences (arrow keys, etc.)
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			// CSI sequence: ESC [ <code>
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.p2Up = now
				i += 2
				continue
			case 'B': // Down arrow
				s.state.p2Down = now
				i += 2
				continue
			}
		}

		// Single byte handling - update key state
		applyByteToState(&s.state, b, now)
	}

	// Build input from key state - keys are "pressed" if seen within hold duration
	return Input{
		Quit:    now.Sub(s.state.quit) < keyHoldDuration,
		P1Up:    now.Sub(s.state.p1Up) < keyHoldDuration,
		P1Down:  now.Sub(s.state.p1Down) < keyHoldDuration,
		P2Up:    now.Sub(s.state.p2Up) < keyHoldDuration,
		P2Down:  now.Sub(s.state.p2Down) < keyHoldDuration,
		Space:   now.Sub(s.state.space) < keyHoldDuration,
		Enter:   now.Sub(s.state.enter) < keyHoldDuration,
		Closed:  s.closed,
		Pressed: buf,
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl+C arrives as a byte in raw mode
		state.quit = now
	case 'w', 'W':
		state.p1Up = now
	case 's', 'S':
		state.p1Down = now
	case 'i', 'I':
		state.p2Up = now
	case 'k', 'K':
		state.p2Down = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	}
}
