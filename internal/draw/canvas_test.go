package draw

import (
	"bytes"
	"strings"
	"testing"
)

func newTestCanvas() *Canvas {
	// 1:1 horizontal, 2 sub-pixels per row: logical 40x20 on a 40x10 terminal.
	return NewScaledCanvas(40, 10, 40, 20)
}

func TestCanvas_FillRectUsesCurrentColor(t *testing.T) {
	c := newTestCanvas()
	c.SetColor(ColorRed)
	c.FillRect(10, 10, 4, 4)

	if got := c.pixel(10, 10); got != ColorRed {
		t.Errorf("center pixel = %d, want %d", got, ColorRed)
	}
	if got := c.pixel(8, 8); got != ColorRed {
		t.Errorf("corner pixel = %d, want %d", got, ColorRed)
	}
	if got := c.pixel(20, 10); got != ColorNone {
		t.Errorf("outside pixel = %d, want none", got)
	}
}

func TestCanvas_SetColorNoneFallsBackToWhite(t *testing.T) {
	c := newTestCanvas()
	c.SetColor(ColorNone)
	if c.Color() != ColorWhite {
		t.Errorf("Color() = %d, want white", c.Color())
	}
}

func TestCanvas_ClearResetsPixelsTextAndColor(t *testing.T) {
	c := newTestCanvas()
	c.SetColor(ColorGreen)
	c.FillRect(5, 5, 2, 2)
	c.DrawText("hello", 2, AlignLeft)
	c.Clear()

	for i, p := range c.pixels {
		if p != ColorNone {
			t.Fatalf("pixel %d = %d after Clear", i, p)
		}
	}
	if len(c.texts) != 0 {
		t.Errorf("texts = %d after Clear, want 0", len(c.texts))
	}
	if c.Color() != ColorWhite {
		t.Errorf("Color() = %d after Clear, want white", c.Color())
	}
}

func TestCanvas_DrawTextAlignment(t *testing.T) {
	tests := []struct {
		name    string
		align   Align
		wantCol int
	}{
		{"left", AlignLeft, 2},
		{"center", AlignCenter, 18},
		{"right", AlignRight, 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas()
			c.DrawText("score", 6, tt.align)
			if len(c.texts) != 1 {
				t.Fatalf("texts = %d, want 1", len(c.texts))
			}
			got := c.texts[0]
			if got.col != tt.wantCol {
				t.Errorf("col = %d, want %d", got.col, tt.wantCol)
			}
			if got.row != 4 {
				t.Errorf("row = %d, want 4", got.row)
			}
		})
	}
}

func TestCanvas_RenderEmitsColorBlocksAndText(t *testing.T) {
	c := newTestCanvas()
	c.SetColor(ColorCyan)
	c.FillRect(10, 10, 2, 2)
	c.SetColor(ColorYellow)
	c.DrawText("P1: 3", 2, AlignLeft)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	if !strings.Contains(out, fgSeq(ColorCyan)) {
		t.Error("missing cyan foreground sequence")
	}
	if !strings.ContainsRune(out, BlockFull) {
		t.Error("missing full block for filled cell")
	}
	if !strings.Contains(out, fgSeq(ColorYellow)+"P1: 3") {
		t.Error("missing coloured text overlay")
	}
	if !strings.HasSuffix(out, ansiReset) {
		t.Error("output does not reset attributes")
	}
}

func TestCanvas_RenderEmptyIsEmpty(t *testing.T) {
	c := newTestCanvas()
	var buf bytes.Buffer
	c.Render(&buf)
	if buf.Len() != 0 {
		t.Errorf("empty canvas rendered %q", buf.String())
	}
}

func TestCanvas_ResizeKeepsLogicalSpace(t *testing.T) {
	c := newTestCanvas()
	c.Resize(80, 20)
	if c.TerminalWidth() != 80 || c.TerminalHeight() != 20 {
		t.Fatalf("terminal = %dx%d, want 80x20", c.TerminalWidth(), c.TerminalHeight())
	}
	col, row := c.LogicalToTerminal(20, 10)
	if col != 41 || row != 11 {
		t.Errorf("LogicalToTerminal(20, 10) = (%d, %d), want (41, 11)", col, row)
	}
}

func TestChunkWriter_OffsetAndFlush(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 2, 1)
	cw.WriteAt(1, 1, "x")
	cw.WriteCentered(10, 3, "ab")

	if buf.Len() != 0 {
		t.Fatal("ChunkWriter wrote before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	want := "\033[2;3Hx\033[4;7Hab"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
