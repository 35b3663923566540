package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/alexiusacademia/argoprssm/internal/batch"
	"github.com/alexiusacademia/argoprssm/internal/config"
	"github.com/alexiusacademia/argoprssm/internal/diag"
	"github.com/alexiusacademia/argoprssm/internal/report"
	"github.com/spf13/cobra"
)

var (
	batchEnvFile  string
	batchRawDir   string
	batchOutDir   string
	batchWorkers  int
	batchLogLevel string
	batchReport   string
	batchQuiet    bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert every ARGO file under a directory",
	Long: `Find the ARGO files under the input directory and convert them in
parallel. Outputs keep the input's sub-directory layout. A file that fails
is reported and skipped; the others are still converted.

Settings come from defaults, then the .env file and ARGO_* environment
variables, then the flags below.

Examples:
  argoprssm batch
  argoprssm batch --raw Data/RAW --out Data/PRSSM --workers 8
  argoprssm batch --report all --log-level debug`,
	Run: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchEnvFile, "env", ".env", "Path to .env file")
	batchCmd.Flags().StringVarP(&batchRawDir, "raw", "r", "", "Input directory (ARGO_RAW_DIR)")
	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "", "Output directory (ARGO_OUT_DIR)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Parallel workers (ARGO_WORKERS)")
	batchCmd.Flags().StringVar(&batchLogLevel, "log-level", "", "Log level: debug, info, warn, error (ARGO_LOG_LEVEL)")
	batchCmd.Flags().StringVar(&batchReport, "report", "", "Report: none, xlsx, pdf, all (ARGO_REPORT)")
	batchCmd.Flags().BoolVarP(&batchQuiet, "quiet", "q", false, "Only print the totals")
}

func runBatch(cmd *cobra.Command, args []string) {
	cfg, err := batchConfig(cmd)
	if err != nil {
		fmt.Printf("Error in configuration: %v\n", err)
		os.Exit(1)
	}

	files, err := batch.Discover(cfg.RawDir)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", cfg.RawDir, err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     ARGO → PRSSM BATCH CONVERSION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Input:\t%s\n", cfg.RawDir)
	fmt.Fprintf(w, "  Output:\t%s\n", cfg.OutDir)
	fmt.Fprintf(w, "  Files:\t%d\n", len(files))
	fmt.Fprintf(w, "  Workers:\t%d\n", cfg.Workers)
	w.Flush()
	fmt.Println()

	if len(files) == 0 {
		fmt.Println("  No ARGO files found.")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := batch.New(cfg, diag.NewLogger(os.Stderr, cfg.LogLevel))
	sum := runner.Run(ctx, files)

	if !batchQuiet {
		fmt.Println("FILES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, f := range sum.Files {
			if f.OK() {
				fmt.Printf("  ✓ %s → %s\n", f.Path, f.Output)
			} else {
				fmt.Printf("  ✗ %s [%s]\n", f.Path, f.Code)
			}
		}
		fmt.Println()
	}

	printTotals(sum)

	if cfg.WantsXLSX() {
		writeReport(filepath.Join(cfg.OutDir, "report.xlsx"), sum, report.WriteWorkbook)
	}
	if cfg.WantsPDF() {
		writeReport(filepath.Join(cfg.OutDir, "report.pdf"), sum, report.WritePDF)
	}

	if sum.Failed > 0 {
		os.Exit(1)
	}
}

// batchConfig layers the flags that were set on top of config.Load.
func batchConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(batchEnvFile)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("raw") {
		cfg.RawDir = batchRawDir
	}
	if flags.Changed("out") {
		cfg.OutDir = batchOutDir
	}
	if flags.Changed("workers") {
		cfg.Workers = batchWorkers
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = batchLogLevel
	}
	if flags.Changed("report") {
		cfg.Report = batchReport
	}
	return cfg, cfg.Validate()
}

func printTotals(sum *batch.Summary) {
	fmt.Println("TOTALS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Converted:\t%d\n", sum.Succeeded)
	fmt.Fprintf(w, "  Failed:\t%d\n", sum.Failed)
	fmt.Fprintf(w, "  Total:\t%d\n", sum.Total())
	fmt.Fprintf(w, "  Elapsed:\t%s\n", sum.Elapsed.Round(time.Millisecond))

	counts := sum.CountByCode()
	codes := make([]diag.Code, 0, len(counts))
	for c := range counts {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	for _, c := range codes {
		fmt.Fprintf(w, "    %s:\t%d\n", c, counts[c])
	}
	w.Flush()
	fmt.Println()

	if errs := sum.Errors(batch.MaxListedErrors); len(errs) > 0 {
		fmt.Printf("ERRORS (first %d):\n", batch.MaxListedErrors)
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, e := range errs {
			fmt.Printf("  • %s\n", e)
		}
		if sum.Failed > len(errs) {
			fmt.Printf("  ... and %d more\n", sum.Failed-len(errs))
		}
		fmt.Println()
	}
}

func writeReport(path string, sum *batch.Summary, write func(io.Writer, *batch.Summary) error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Printf("Error writing report: %v\n", err)
		return
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("Error writing report: %v\n", err)
		return
	}
	if err := write(f, sum); err != nil {
		f.Close()
		fmt.Printf("Error writing report %s: %v\n", path, err)
		return
	}
	if err := f.Close(); err != nil {
		fmt.Printf("Error writing report %s: %v\n", path, err)
		return
	}
	fmt.Printf("  Report written to: %s\n", path)
}
