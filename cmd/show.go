package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmounce/plasma/internal/genetics"
	"github.com/cmounce/plasma/internal/interactive"
	"github.com/cmounce/plasma/internal/settings"
)

var (
	showWidth   int
	showHeight  int
	showFPS     float32
	showLoop    float32
	showPalette int
	showDither  bool
)

var showCmd = &cobra.Command{
	Use:   "show [genome]...",
	Short: "Open a window and breed patterns interactively",
	Long: `Opens an animated window seeded with the given genomes, or with a
random population when none are given.

Press + to approve the pattern on screen (it joins the breeding pool and
a child takes its place), - to reject it, R for a fresh random pattern,
and P to print the current genome's Base64 string to stdout.`,
	RunE: runShow,
}

func init() {
	def := settings.DefaultRendering(settings.ModeInteractive)
	showCmd.Flags().IntVar(&showWidth, "width", def.Width, "window width in pixels")
	showCmd.Flags().IntVar(&showHeight, "height", def.Height, "window height in pixels")
	showCmd.Flags().Float32VarP(&showFPS, "fps", "f", def.FramesPerSecond, "frames per second")
	showCmd.Flags().Float32VarP(&showLoop, "loop", "l", def.LoopDuration, "seconds until the animation loops")
	showCmd.Flags().IntVarP(&showPalette, "palette", "p", def.PaletteSize, "palette size (0 = engine default)")
	showCmd.Flags().BoolVarP(&showDither, "dithering", "d", def.Dithering, "ordered dithering")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	var seeds []genetics.Genome
	for _, arg := range args {
		genome, err := genetics.FromBase64(arg)
		if err != nil {
			return fmt.Errorf("parse genome %q: %w", arg, err)
		}
		seeds = append(seeds, genome)
	}

	s := settings.Rendering{
		Dithering:       showDither,
		FramesPerSecond: showFPS,
		LoopDuration:    showLoop,
		PaletteSize:     showPalette,
		Width:           showWidth,
		Height:          showHeight,
	}
	if err := s.Validate(); err != nil {
		return err
	}

	logVerbose("window:  %dx%d @ %v fps", s.Width, s.Height, s.FramesPerSecond)
	logVerbose("seeds:   %d genomes", len(seeds))
	return interactive.Run(s, seeds)
}
