package loop

import "time"

// Court resolution in logical units. Rendering scales it to the terminal.
const (
	CourtWidth  = 120
	CourtHeight = 80 // Sub-pixels, so 40 terminal rows
)

// Max render resolution. Larger terminals get a centred, bordered court.
const (
	MaxTermWidth  = 240
	MaxTermHeight = 60
)

// Smallest terminal the court is drawn in.
const (
	MinTermWidth  = 40
	MinTermHeight = 12
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	MaxFrameDelta   = 40 * time.Millisecond // Longer stalls are simulated as this much
)

// Court layout
const (
	hudHeight     = 6 // Band above the top wall holding the scores
	wallThickness = 4
	paddleInset   = 8 // Distance of a paddle centre from its side of the court
	paddleWidth   = 2
	targetSize    = 4
)
