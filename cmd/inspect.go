package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/argoprssm/internal/argo"
	"github.com/alexiusacademia/argoprssm/internal/convert"
	"github.com/alexiusacademia/argoprssm/internal/diag"
	"github.com/alexiusacademia/argoprssm/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	inspectFile        string
	inspectLogLevel    string
	inspectShowDiagram bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the decoded contents of an ARGO file",
	Long: `Decode one ARGO file and print its file code, global parameters,
per-beam record counts and the section properties of each beam. Nothing
is written.

Examples:
  argoprssm inspect --file Data/RAW/S2_24.03p
  argoprssm inspect -f S2_24.03p --diagram --log-level debug`,
	Run: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectFile, "file", "f", "", "Path to ARGO file [required]")
	inspectCmd.MarkFlagRequired("file")

	inspectCmd.Flags().StringVar(&inspectLogLevel, "log-level", "warn", "Log level on stderr; debug traces the decoder")
	inspectCmd.Flags().BoolVar(&inspectShowDiagram, "diagram", false, "Show ASCII section outlines")
}

func runInspect(cmd *cobra.Command, args []string) {
	logger := diag.NewLogger(os.Stderr, inspectLogLevel)
	doc, err := argo.LoadFile(inspectFile, logger.Tracer("argo", inspectFile))
	if err != nil {
		fmt.Printf("Error decoding %s: %v\n", inspectFile, err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     ARGO FILE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fc := doc.FileCode
	fmt.Println("FILE CODE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  File:\t%s\n", fc.FileName)
	load := fc.LoadName
	if fc.LoadYear > 0 {
		load = fmt.Sprintf("%s (%d)", fc.LoadName, fc.LoadYear)
	}
	fmt.Fprintf(w, "  Load standard:\t%s %s\n", fc.LoadCode, load)
	fmt.Fprintf(w, "  Main ribs:\t%d\n", fc.RibCount)
	fmt.Fprintf(w, "  Span:\t%d m\n", fc.SpanLength)
	fmt.Fprintf(w, "  Serial:\t%d\n", fc.Serial)
	if fc.TypeSuffix != "" {
		fmt.Fprintf(w, "  Type:\t%s %s\n", fc.TypeSuffix, fc.Description)
	}
	w.Flush()
	fmt.Println()

	if len(doc.Comments) > 0 {
		fmt.Println("COMMENTS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, c := range doc.Comments {
			fmt.Printf("  %s\n", c)
		}
		fmt.Println()
	}

	gp := &doc.Params
	fmt.Println("GLOBAL PARAMETERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Concrete strength:\t%.1f MPa\n", gp.ConcreteStrength)
	fmt.Fprintf(w, "  Steel types:\ttensile %.0f, compressed %.0f, slab %.0f, stirrups %.0f\n",
		gp.TensileSteelType, gp.CompressedSteelType, gp.SlabSteelType, gp.StirrupSteelType)
	fmt.Fprintf(w, "  Support axes:\t%.1f / %.1f cm\n", gp.SupportAxis1, gp.SupportAxis2)
	fmt.Fprintf(w, "  Full length:\t%.1f cm\n", gp.FullLength)
	fmt.Fprintf(w, "  Beams:\t%d at %v cm\n", gp.BeamCount, gp.BeamCoordinates)
	fmt.Fprintf(w, "  Ballast / sleeper:\t%.0f / %.0f\n", gp.BallastType, gp.SleeperType)
	fmt.Fprintf(w, "  Track axes Z:\t%.1f, %.1f cm\n", gp.TrackAxisZ[0], gp.TrackAxisZ[1])
	fmt.Fprintf(w, "  Ballast contour:\t%d points\n", len(gp.BallastContour))
	if doc.PrintCopies != nil {
		fmt.Fprintf(w, "  Print copies:\t%d\n", *doc.PrintCopies)
	}
	fmt.Fprintf(w, "  Detailed pass:\t%s\n", yesNo(doc.Detailed != nil))
	w.Flush()
	fmt.Println()

	fmt.Println("BEAM RECORDS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam\tContour\tChanged\tSlab bars\tForces\tBends\tStirrups\tTensile\tCompressed\n")
	fmt.Fprintf(w, "  ────\t───────\t───────\t─────────\t──────\t─────\t────────\t───────\t──────────\n")
	for _, b := range doc.Beams {
		fmt.Fprintf(w, "  %d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			b.Number, len(b.Contour), len(b.ChangedPoints), len(b.Slab.Bars), len(b.ConcentratedForces),
			len(b.Bends), len(b.StirrupSections), len(b.TensileBars), len(b.CompressedBars))
	}
	w.Flush()
	fmt.Println()

	res, err := convert.Convert(doc)
	if err != nil {
		fmt.Printf("Error converting: %v\n", err)
		os.Exit(1)
	}
	printBeamTable(res)
	printWarnings(res.Warnings)

	if inspectShowDiagram {
		for i, b := range res.Beams {
			g := b.Geometry
			data := diagram.FromBeam(b, res.Document.Beams[i])
			fmt.Print(diagram.DrawASCIISection(data, 40))
			fmt.Println()
			fmt.Print(diagram.DrawSummaryBox(b.Name, []string{
				fmt.Sprintf("Area      %.0f mm²", g.Props.Area),
				fmt.Sprintf("Iyy       %.4g mm⁴", g.Props.Iyy),
				fmt.Sprintf("Izz       %.4g mm⁴", g.Props.Izz),
				fmt.Sprintf("Rib       %.0f × %.0f mm", g.RibWidth, g.RibHeight()),
				fmt.Sprintf("Binding   (%.2f, %.2f)", b.Binding.X, b.Binding.Y),
			}))
			fmt.Println()
			fmt.Print(diagram.DrawWidthProfile(data, 40))
		}
		fmt.Println()
	}
}
