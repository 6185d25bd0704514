// Package loop runs a local two-player match in a terminal.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/effect"
	"github.com/tomz197/pong/internal/input"
)

// Options configures Run.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Tuning       config.Tuning
	Logger       *log.Logger
	Clock        effect.Clock
	Rand         *rand.Rand
}

// Run plays matches with the standard Input → Update → Draw cycle until Q is pressed,
// the input stream ends or ctx is cancelled.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	state := NewState(StateOptions{
		Tuning: opts.Tuning,
		Clock:  opts.Clock,
		Rand:   opts.Rand,
		Logger: logger,
	})
	stream := input.StartStream(bufio.NewReader(r))

	// Create canvas with clamped dimensions for max render resolution
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, CourtWidth, CourtHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	out := draw.NewChunkWriter(w, offsetCol, offsetRow)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)
	defer draw.ClearScreen(w)

	lastTime := time.Now()

	for {
		frameStart := time.Now()
		delta := min(frameStart.Sub(lastTime), MaxFrameDelta)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Quit || in.Closed {
			logger.Debug("input finished", "quit", in.Quit, "closed", in.Closed)
			return nil
		}

		// ===== UPDATE PHASE =====
		phase := state.Phase
		if err := state.Step(in, delta); err != nil {
			return err
		}
		if state.Phase != phase {
			input.Reset(stream)
		}
		updateScreen(canvas, out, termSizeFunc)

		// ===== DRAW PHASE =====
		if err := drawFrame(state, canvas, out); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		wait := TargetFrameTime - time.Since(frameStart)
		if wait < 0 {
			wait = 0
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// Size errors keep the previous layout.
func updateScreen(canvas *draw.Canvas, out *draw.ChunkWriter, termSizeFunc draw.TermSizeFunc) {
	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas.Resize(renderWidth, renderHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	out.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, MaxTermWidth)
	renderHeight = min(termHeight, MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// drawFrame redraws the whole screen in a single flush.
func drawFrame(state *State, canvas *draw.Canvas, out *draw.ChunkWriter) error {
	draw.ClearScreen(out)
	canvas.Clear()

	if canvas.TerminalWidth() < MinTermWidth || canvas.TerminalHeight() < MinTermHeight {
		out.WriteCentered(canvas.TerminalWidth(), canvas.TerminalHeight()/2+1, "Terminal too small")
		return out.Flush()
	}

	drawScreen(state, canvas)
	canvas.Render(out)
	canvas.RenderBorder(out)

	return out.Flush()
}
