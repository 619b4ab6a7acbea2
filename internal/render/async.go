package render

import (
	"github.com/cmounce/plasma/internal/genetics"
	"github.com/cmounce/plasma/internal/settings"
)

// AsyncRenderer renders frames on a background goroutine so an interactive
// UI never blocks on ColorMapper construction.  Requests are
// latest-wins: when the UI falls behind, the worker fast-forwards through
// the backlog and renders only the newest request.
type AsyncRenderer struct {
	requests  chan request
	images    chan *Image
	genome    *genetics.Genome
	genomeSet bool
}

type request struct {
	genome *genetics.Genome // nil = keep the current renderer
	width  int
	height int
	time   float32
}

// NewAsyncRenderer starts the background worker.  Call Close when done.
func NewAsyncRenderer(s settings.Rendering) *AsyncRenderer {
	ar := &AsyncRenderer{
		requests: make(chan request, 16),
		images:   make(chan *Image, 1),
	}
	go ar.worker(s)
	return ar
}

// SetGenome queues a genome swap; the next Render rebuilds the renderer.
func (ar *AsyncRenderer) SetGenome(genome genetics.Genome) {
	ar.genome = &genome
	ar.genomeSet = true
}

// Render requests a frame.  SetGenome must have been called at least once.
func (ar *AsyncRenderer) Render(width, height int, time float32) {
	if !ar.genomeSet {
		panic("render: SetGenome must be called before Render")
	}
	genome := ar.genome
	ar.genome = nil // send the genome only once per swap
	ar.requests <- request{genome: genome, width: width, height: height, time: time}
}

// GetImage returns the most recently finished frame, or nil if none is
// ready.  It never blocks.
func (ar *AsyncRenderer) GetImage() *Image {
	select {
	case img := <-ar.images:
		return img
	default:
		return nil
	}
}

// Close stops the background worker.
func (ar *AsyncRenderer) Close() {
	close(ar.requests)
}

func (ar *AsyncRenderer) worker(s settings.Rendering) {
	var renderer *Renderer
	for req := range ar.requests {
		// Fast-forward through any backlog to the latest request,
		// carrying the newest genome seen along the way.
	drain:
		for {
			select {
			case next, ok := <-ar.requests:
				if !ok {
					break drain
				}
				if next.genome == nil {
					next.genome = req.genome
				}
				req = next
			default:
				break drain
			}
		}

		if req.genome != nil {
			renderer = NewRenderer(*req.genome, s)
		}
		img := NewImage(req.width, req.height)
		renderer.Render(img, req.time)

		// Replace any unclaimed frame with the fresh one.
		select {
		case <-ar.images:
		default:
		}
		ar.images <- img
	}
}
