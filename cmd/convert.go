package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/alexiusacademia/argoprssm/internal/batch"
	"github.com/alexiusacademia/argoprssm/internal/convert"
	"github.com/alexiusacademia/argoprssm/internal/diag"
	"github.com/alexiusacademia/argoprssm/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	convertFile        string
	convertOutDir      string
	convertLogLevel    string
	convertShowDiagram bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert one ARGO file to PRSSM",
	Long: `Decode one ARGO file and write the PRSSM document next to it, or
into the directory given with --output. The output name replaces the dots
of the input name with underscores and appends ".prssm".

Examples:
  argoprssm convert --file Data/RAW/S2_24.03p
  argoprssm convert -f S2_24.03p -o out --diagram`,
	Run: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertFile, "file", "f", "", "Path to ARGO file [required]")
	convertCmd.MarkFlagRequired("file")

	convertCmd.Flags().StringVarP(&convertOutDir, "output", "o", "", "Output directory (default: next to the input)")
	convertCmd.Flags().StringVar(&convertLogLevel, "log-level", "warn", "Log level on stderr (debug, info, warn, error)")
	convertCmd.Flags().BoolVar(&convertShowDiagram, "diagram", false, "Show ASCII section outlines")
}

func runConvert(cmd *cobra.Command, args []string) {
	dir, name := filepath.Split(convertFile)
	out := convertOutDir
	if out == "" {
		out = dir
	}
	runner := &batch.Runner{RawDir: dir, OutDir: out, Workers: 1, Logger: diag.NewLogger(os.Stderr, convertLogLevel)}

	res := runner.ConvertFile(context.Background(), name)
	if !res.OK() {
		fmt.Printf("Error converting %s: %v\n", convertFile, res.Err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     ARGO → PRSSM CONVERSION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Input:  %s\n", convertFile)
	fmt.Printf("  Output: %s\n", res.Output)
	fmt.Println()

	printBeamTable(res.Result)
	printWarnings(res.Result.Warnings)

	if convertShowDiagram {
		for i, b := range res.Result.Beams {
			fmt.Print(diagram.DrawASCIISection(diagram.FromBeam(b, res.Result.Document.Beams[i]), 40))
		}
		fmt.Println()
	}
}

// printBeamTable lists the placement and section properties of each
// converted beam.
func printBeamTable(res *convert.Result) {
	fmt.Println("BEAMS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam\tSection\tPosition (mm)\tStep (mm)\tMirrored\tLong.\tTrans.\tBars\n")
	fmt.Fprintf(w, "  ────\t───────\t─────────────\t─────────\t────────\t─────\t──────\t────\n")
	for _, b := range res.Beams {
		bars := "detailed"
		if b.Estimated {
			bars = "estimated"
		}
		fmt.Fprintf(w, "  %d\t%s\t%.0f\t%.0f\t%s\t%d\t%d\t%s\n",
			b.Number, b.Name, b.Position, b.Step, yesNo(b.Geometry.Mirrored), b.Longitudinal, b.Transverse, bars)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section\tArea (mm²)\tIyy (mm⁴)\tIzz (mm⁴)\tIt (mm⁴)\tRib width\tRib height\n")
	fmt.Fprintf(w, "  ───────\t──────────\t─────────\t─────────\t────────\t─────────\t──────────\n")
	for _, b := range res.Beams {
		g := b.Geometry
		fmt.Fprintf(w, "  %s\t%.0f\t%.4g\t%.4g\t%.4g\t%.0f\t%.0f\n",
			b.Name, g.Props.Area, g.Props.Iyy, g.Props.Izz, g.Props.It, g.RibWidth, g.RibHeight())
	}
	w.Flush()
	fmt.Println()
}

func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Println("WARNINGS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for _, msg := range warnings {
		fmt.Printf("  ⚠ %s\n", msg)
	}
	fmt.Println()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
