package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/argoprssm/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "argoprssm",
	Short: "ARGO to PRSSM bridge beam converter",
	Long: `argoprssm - ARGO legacy bridge beam converter

A CLI tool that reads legacy ARGO beam files (cp866 text) and
writes PRSSM span documents.

This tool helps bridge engineers:
  - Decode ARGO files into beams, contours and reinforcement
  - Compute section properties of arbitrary beam profiles
  - Convert whole directories of ARGO files in parallel
  - Export section drawings and xlsx/pdf batch reports`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   argoprssm v%-45s║\n", version.Version)
		fmt.Println("  ║   ARGO to PRSSM Bridge Beam Converter                     ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Commands:")
		fmt.Println("    • convert   convert one ARGO file")
		fmt.Println("    • batch     convert every ARGO file under a directory")
		fmt.Println("    • inspect   print the decoded contents of a file")
		fmt.Println("    • plot      draw converted beam sections")
		fmt.Println()
		fmt.Println("  Use 'argoprssm --help' to see all flags.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
