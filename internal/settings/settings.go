// Package settings holds the validated knobs shared by the renderer, the
// color engine, and the output layers.
package settings

import "fmt"

// Output modes.
const (
	ModeFile        = "file"
	ModeInteractive = "interactive"
)

// Rendering controls how frames are produced.
type Rendering struct {
	Dithering       bool
	FramesPerSecond float32
	LoopDuration    float32 // seconds until the animation loops
	PaletteSize     int     // 0 = engine default
	Width           int
	Height          int
}

// Output controls where frames go.
type Output struct {
	Mode    string // ModeFile or ModeInteractive
	Path    string // output file, ModeFile only
	Verbose bool
}

// Plasma bundles everything a run needs.
type Plasma struct {
	Rendering Rendering
	Output    Output
}

// Per-mode defaults.  File output favors small dithered GIFs; interactive
// favors resolution and construction speed over palette quality.
var defaults = map[string]Rendering{
	ModeFile: {
		Dithering:       true,
		FramesPerSecond: 10,
		LoopDuration:    60,
		PaletteSize:     64,
		Width:           320,
		Height:          240,
	},
	ModeInteractive: {
		Dithering:       false,
		FramesPerSecond: 16,
		LoopDuration:    60,
		PaletteSize:     0,
		Width:           640,
		Height:          480,
	},
}

// DefaultRendering returns the default rendering settings for a mode.
func DefaultRendering(mode string) Rendering {
	r, ok := defaults[mode]
	if !ok {
		r = defaults[ModeInteractive]
	}
	return r
}

// Validate rejects settings the engine would panic on.
func (r Rendering) Validate() error {
	if r.PaletteSize != 0 && (r.PaletteSize < 2 || r.PaletteSize > 65535) {
		return fmt.Errorf("palette size %d out of range [2, 65535]", r.PaletteSize)
	}
	if r.FramesPerSecond <= 0 {
		return fmt.Errorf("frames per second must be positive, got %v", r.FramesPerSecond)
	}
	if r.LoopDuration <= 0 {
		return fmt.Errorf("loop duration must be positive, got %v", r.LoopDuration)
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("dimensions must be positive, got %dx%d", r.Width, r.Height)
	}
	return nil
}
