// Package encoder writes rendered frames out as files: looping animated
// GIFs built around the color engine's own palette, and single-frame PNGs.
// No quantization happens here — frames arrive already reduced to the
// palette, so encoding is a straight index mapping.
package encoder

import (
	"fmt"
	"image"
	stdgif "image/gif"
	"io"

	"github.com/chewxy/math32"

	"github.com/cmounce/plasma/internal/color"
	"github.com/cmounce/plasma/internal/render"
)

// MaxGIFColors is the capacity of a GIF color table.
const MaxGIFColors = 256

// GIFAnimation accumulates palette-indexed frames for a looping GIF.
type GIFAnimation struct {
	palette []color.Color
	delay   int // hundredths of a second per frame
	frames  []*image.Paletted
}

// NewGIFAnimation prepares an animation using the given global palette.
func NewGIFAnimation(palette []color.Color, fps float32) (*GIFAnimation, error) {
	if len(palette) > MaxGIFColors {
		return nil, fmt.Errorf("palette has %d colors; GIF supports at most %d",
			len(palette), MaxGIFColors)
	}
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %v", fps)
	}
	delay := int(math32.Round(100 / fps))
	if delay < 1 {
		delay = 1
	}
	return &GIFAnimation{palette: palette, delay: delay}, nil
}

// AddFrame appends a frame.  Every pixel must already be a palette color.
func (g *GIFAnimation) AddFrame(img *render.Image) {
	g.frames = append(g.frames, img.ToPaletted(g.palette))
}

// FrameCount returns the number of frames added so far.
func (g *GIFAnimation) FrameCount() int {
	return len(g.frames)
}

// Encode writes the assembled animation, looping forever.
func (g *GIFAnimation) Encode(w io.Writer) error {
	if len(g.frames) == 0 {
		return fmt.Errorf("gif: no frames added")
	}
	anim := &stdgif.GIF{
		Image:     g.frames,
		Delay:     make([]int, len(g.frames)),
		LoopCount: 0, // loop forever
	}
	for i := range anim.Delay {
		anim.Delay[i] = g.delay
	}
	if err := stdgif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}
