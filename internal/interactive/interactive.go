// Package interactive runs the breeding window: it shows the current
// genome's animation and lets the user steer evolution from the keyboard.
// Frames come from an AsyncRenderer so keyboard input stays responsive
// while the next frame renders in the background.
package interactive

import (
	"fmt"
	stdcolor "image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/cmounce/plasma/internal/fastmath"
	"github.com/cmounce/plasma/internal/genetics"
	"github.com/cmounce/plasma/internal/render"
	"github.com/cmounce/plasma/internal/settings"
)

const (
	startingPopulationSize = 8
	maxPopulationSize      = 32
)

// Game is the ebiten game loop around a population of genomes.
type Game struct {
	rng        *rand.Rand
	population *genetics.Population
	current    genetics.Genome
	renderer   *render.AsyncRenderer

	width  int
	height int

	texture *ebiten.Image
	pixels  []byte // RGBA staging buffer for texture uploads

	epoch         time.Time
	frameDeadline float64 // seconds since epoch when the next frame is due
	frameDelay    float64
	timeScale     float64

	status string
}

// New builds the game state. Seeds become the initial population; with no
// seeds the population starts from random genomes.
func New(s settings.Rendering, seeds []genetics.Genome) *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if len(seeds) == 0 {
		for i := 0; i < startingPopulationSize; i++ {
			seeds = append(seeds, genetics.RandGenome(rng))
		}
	}
	maxSize := maxPopulationSize
	if len(seeds) > maxSize {
		maxSize = len(seeds)
	}
	population := genetics.NewPopulation(maxSize)
	for _, genome := range seeds {
		population.Add(rng, genome)
	}

	g := &Game{
		rng:        rng,
		population: population,
		renderer:   render.NewAsyncRenderer(s),
		width:      s.Width,
		height:     s.Height,
		pixels:     make([]byte, s.Width*s.Height*4),
		frameDelay: 1 / float64(s.FramesPerSecond),
		timeScale:  1 / float64(s.LoopDuration),
	}
	g.setGenome(seeds[0])
	return g
}

// setGenome switches to a new genome and restarts the animation clock.
func (g *Game) setGenome(genome genetics.Genome) {
	g.current = genome
	g.epoch = time.Now()
	g.frameDeadline = 0
	g.renderer.SetGenome(genome)
	g.renderer.Render(g.width, g.height, 0)
}

func (g *Game) clockSeconds() float64 {
	return time.Since(g.epoch).Seconds()
}

// approve keeps the current genome in the breeding pool and moves on to a
// freshly bred child.
func (g *Game) approve() {
	g.population.Add(g.rng, g.current)
	g.setGenome(g.population.Breed(g.rng))
	g.status = "approved"
}

// reject discards the current genome and breeds a replacement.
func (g *Game) reject() {
	g.setGenome(g.population.Breed(g.rng))
	g.status = "rejected"
}

func (g *Game) randomize() {
	g.setGenome(genetics.RandGenome(g.rng))
	g.status = "randomized"
}

func (g *Game) export() {
	b64 := g.current.ToBase64()
	fmt.Println(b64)
	g.status = "exported " + b64
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		g.approve()
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		g.reject()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.randomize()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.export()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}

	// Display frames on the wall-clock schedule, not the tick rate. When
	// a frame is due and ready, show it and queue the render for the next
	// deadline so the background renderer stays one frame ahead.
	if g.frameDeadline <= g.clockSeconds() {
		if img := g.renderer.GetImage(); img != nil {
			g.frameDeadline = g.clockSeconds() + g.frameDelay
			nextTime := fastmath.Wrap(float32(g.frameDeadline * g.timeScale))
			g.renderer.Render(g.width, g.height, nextTime)
			g.uploadFrame(img)
		}
	}
	return nil
}

// uploadFrame copies a packed RGB frame into the GPU texture.
func (g *Game) uploadFrame(img *render.Image) {
	if g.texture == nil {
		g.texture = ebiten.NewImage(img.Width, img.Height)
	}
	for i := 0; i < img.Width*img.Height; i++ {
		src := i * 3
		dst := i * 4
		g.pixels[dst] = img.Pix[src]
		g.pixels[dst+1] = img.Pix[src+1]
		g.pixels[dst+2] = img.Pix[src+2]
		g.pixels[dst+3] = 0xff
	}
	g.texture.WritePixels(g.pixels)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.texture != nil {
		screen.DrawImage(g.texture, nil)
	}

	help := "Keys: + approve   - reject   R random   P print genome   Esc quit"
	text.Draw(screen, help, basicfont.Face7x13, 6, 16, stdcolor.White)
	info := fmt.Sprintf("population %d   %s", g.population.Size(), g.status)
	text.Draw(screen, info, basicfont.Face7x13, 6, 32, stdcolor.White)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until the user quits.
func Run(s settings.Rendering, seeds []genetics.Genome) error {
	game := New(s, seeds)
	defer game.renderer.Close()

	ebiten.SetWindowSize(s.Width, s.Height)
	ebiten.SetWindowTitle("plasma")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("interactive window: %w", err)
	}
	return nil
}
