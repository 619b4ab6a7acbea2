package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmounce/plasma/internal/colormap"
	"github.com/cmounce/plasma/internal/genetics"
	"github.com/cmounce/plasma/internal/hasher"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <genome>...",
	Short: "Decode genomes and show what they express",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	for _, arg := range args {
		genome, err := genetics.FromBase64(arg)
		if err != nil {
			return fmt.Errorf("parse genome %q: %w", arg, err)
		}
		printGenome(genome)
	}
	return nil
}

func printGenome(genome genetics.Genome) {
	fmt.Println()
	fmt.Printf("  Genome:  %s\n", genome.ToBase64())
	fmt.Printf("  Hash:    %s\n", hasher.ContentHash(genome.Bytes(), 12))
	fmt.Println()

	fmt.Printf("  Pattern genes (%d):\n", len(genome.Pattern.Genes))
	for i, gene := range genome.Pattern.Genes {
		fmt.Printf("    wave %d   %x\n", i, gene.Data)
	}
	fmt.Println()

	active := 0
	fmt.Printf("  Color genes (%d):\n", len(genome.Color.Genes))
	for i, gene := range genome.Color.Genes {
		point, ok := colormap.ControlPointFromGene(gene)
		if !ok {
			fmt.Printf("    gene %d   %x  (inactive)\n", i, gene.Data)
			continue
		}
		active++
		c := point.Color.ToGamma()
		fmt.Printf("    gene %d   %x  position %.3f  #%02x%02x%02x\n",
			i, gene.Data, point.Position, c.R, c.G, c.B)
	}
	fmt.Println()

	if active == 0 {
		fmt.Println("  No active control points; the gradient falls back to solid gray.")
	} else {
		fmt.Printf("  %d active control point(s)\n", active)
	}
	fmt.Println()
}
