package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chewxy/math32"
	"github.com/spf13/cobra"

	"github.com/cmounce/plasma/internal/encoder"
	"github.com/cmounce/plasma/internal/genetics"
	"github.com/cmounce/plasma/internal/hasher"
	"github.com/cmounce/plasma/internal/render"
	"github.com/cmounce/plasma/internal/settings"
)

var (
	renderOut     string
	renderWidth   int
	renderHeight  int
	renderFPS     float32
	renderLoop    float32
	renderPalette int
	renderDither  bool
	renderScale   int
	renderSeed    int64
)

var renderCmd = &cobra.Command{
	Use:   "render [genome]",
	Short: "Render a genome to an animated GIF or a PNG still",
	Long: `Renders a genome to a file. GENOME is a Base64 string; when omitted,
a random genome is generated and printed so the result can be reproduced.

The default output is a looping GIF whose filename is derived from the
genome, so rendering the same genome twice overwrites the same file.
An output path ending in .png renders a single frame instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	def := settings.DefaultRendering(settings.ModeFile)
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output file (default plasma-<genome hash>.gif)")
	renderCmd.Flags().IntVar(&renderWidth, "width", def.Width, "width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", def.Height, "height in pixels")
	renderCmd.Flags().Float32VarP(&renderFPS, "fps", "f", def.FramesPerSecond, "frames per second")
	renderCmd.Flags().Float32VarP(&renderLoop, "loop", "l", def.LoopDuration, "seconds until the animation loops")
	renderCmd.Flags().IntVarP(&renderPalette, "palette", "p", def.PaletteSize, "palette size (0 = engine default)")
	renderCmd.Flags().BoolVarP(&renderDither, "dithering", "d", def.Dithering, "ordered dithering")
	renderCmd.Flags().IntVarP(&renderScale, "scale", "s", 1, "integer upscale factor for PNG output")
	renderCmd.Flags().Int64Var(&renderSeed, "seed", 0, "random seed for generated genomes (0 = time)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	genome, err := resolveGenome(args)
	if err != nil {
		return err
	}

	s := settings.Rendering{
		Dithering:       renderDither,
		FramesPerSecond: renderFPS,
		LoopDuration:    renderLoop,
		PaletteSize:     renderPalette,
		Width:           renderWidth,
		Height:          renderHeight,
	}
	if err := s.Validate(); err != nil {
		return err
	}

	outPath := renderOut
	if outPath == "" {
		outPath = fmt.Sprintf("plasma-%s.gif", hasher.ContentHash(genome.Bytes(), 12))
	}

	logVerbose("genome:  %s", genome.ToBase64())
	logVerbose("output:  %s", outPath)
	logVerbose("size:    %dx%d, palette %d, dithering %v", s.Width, s.Height, s.PaletteSize, s.Dithering)

	start := time.Now()
	r := render.NewRenderer(genome, s)
	logVerbose("color tables built in %s", time.Since(start).Round(time.Millisecond))

	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".png":
		err = renderPNG(r, s, outPath)
	default:
		err = renderGIF(r, s, outPath)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s  (genome %s, %s)\n",
		outPath, genome.ToBase64(), time.Since(start).Round(time.Millisecond))
	return nil
}

// resolveGenome parses the genome argument, or generates a random genome
// when none is given.
func resolveGenome(args []string) (genetics.Genome, error) {
	if len(args) == 1 {
		genome, err := genetics.FromBase64(args[0])
		if err != nil {
			return genetics.Genome{}, fmt.Errorf("parse genome %q: %w", args[0], err)
		}
		return genome, nil
	}
	seed := renderSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	genome := genetics.RandGenome(rand.New(rand.NewSource(seed)))
	fmt.Printf("generated genome: %s\n", genome.ToBase64())
	return genome, nil
}

func renderGIF(r *render.Renderer, s settings.Rendering, path string) error {
	palette := r.Palette()
	if len(palette) > encoder.MaxGIFColors {
		return fmt.Errorf("palette has %d colors; GIF output needs --palette <= %d",
			len(palette), encoder.MaxGIFColors)
	}
	anim, err := encoder.NewGIFAnimation(palette, s.FramesPerSecond)
	if err != nil {
		return err
	}

	frameCount := int(math32.Round(s.LoopDuration * s.FramesPerSecond))
	img := render.NewImage(s.Width, s.Height)
	for i := 0; i < frameCount; i++ {
		r.Render(img, float32(i)/float32(frameCount))
		anim.AddFrame(img)
		if (i+1)%50 == 0 {
			logVerbose("rendered %d/%d frames", i+1, frameCount)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()
	if err := anim.Encode(f); err != nil {
		return err
	}
	logVerbose("wrote %d frames", anim.FrameCount())
	return nil
}

func renderPNG(r *render.Renderer, s settings.Rendering, path string) error {
	if renderScale < 1 {
		return fmt.Errorf("scale must be >= 1, got %d", renderScale)
	}
	img := render.NewImage(s.Width, s.Height)
	r.Render(img, 0)
	return encoder.SavePNG(encoder.Upscale(img, renderScale), path)
}
