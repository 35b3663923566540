package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/argoprssm/internal/argo"
	"github.com/alexiusacademia/argoprssm/internal/convert"
	"github.com/alexiusacademia/argoprssm/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	plotFile   string
	plotBeam   int
	plotOutDir string
	plotFormat string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Draw converted beam sections",
	Long: `Convert one ARGO file in memory and draw each beam section with its
rib axis, rib top, stress points and bars. One image is written per beam,
named after the section.

Examples:
  argoprssm plot --file Data/RAW/S2_24.03p
  argoprssm plot -f S2_24.03p --beam 2 -o plots --format svg`,
	Run: runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().StringVarP(&plotFile, "file", "f", "", "Path to ARGO file [required]")
	plotCmd.MarkFlagRequired("file")

	plotCmd.Flags().IntVarP(&plotBeam, "beam", "b", 0, "Beam number to draw (0 draws all)")
	plotCmd.Flags().StringVarP(&plotOutDir, "output", "o", ".", "Output directory")
	plotCmd.Flags().StringVar(&plotFormat, "format", "png", "Image format (png, svg, pdf)")
}

func runPlot(cmd *cobra.Command, args []string) {
	format := strings.ToLower(strings.TrimPrefix(plotFormat, "."))
	switch format {
	case "png", "svg", "pdf":
	default:
		fmt.Printf("Error: unknown format %q (use png, svg or pdf)\n", plotFormat)
		os.Exit(1)
	}

	doc, err := argo.LoadFile(plotFile, nil)
	if err != nil {
		fmt.Printf("Error decoding %s: %v\n", plotFile, err)
		os.Exit(1)
	}
	res, err := convert.Convert(doc)
	if err != nil {
		fmt.Printf("Error converting %s: %v\n", plotFile, err)
		os.Exit(1)
	}

	drawn := 0
	for i, b := range res.Beams {
		if plotBeam != 0 && b.Number != plotBeam {
			continue
		}
		out := filepath.Join(plotOutDir, b.Name+"."+format)
		if err := diagram.ExportBeamSection(diagram.FromBeam(b, res.Document.Beams[i]), out); err != nil {
			fmt.Printf("Error drawing beam %d: %v\n", b.Number, err)
			os.Exit(1)
		}
		fmt.Printf("  ✓ Diagram exported to: %s\n", out)
		drawn++
	}
	if drawn == 0 {
		fmt.Printf("Error: no beam %d in %s (%d beams)\n", plotBeam, plotFile, len(res.Beams))
		os.Exit(1)
	}
}
