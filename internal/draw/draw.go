// Package draw renders the court to an ANSI terminal.
package draw

import (
	"fmt"
	"io"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Color is an ANSI 256-colour palette index. ColorNone marks an unset pixel.
type Color uint8

const (
	ColorNone    Color = 0
	ColorGray    Color = 8
	ColorRed     Color = 9
	ColorGreen   Color = 10
	ColorYellow  Color = 11
	ColorBlue    Color = 12
	ColorMagenta Color = 13
	ColorCyan    Color = 14
	ColorWhite   Color = 15
)

// Align positions text horizontally on the canvas.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ANSI attribute sequences.
const (
	ansiReset   = "\033[0m"
	ansiResetBg = "\033[49m"
)

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

func fgSeq(c Color) string {
	return fmt.Sprintf("\033[38;5;%dm", c)
}

func bgSeq(c Color) string {
	return fmt.Sprintf("\033[48;5;%dm", c)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
